package ocr

import (
	"regexp"
	"strings"

	"github.com/gptfleet/hellsnap/internal/models"
)

// nameMisreads maps digits and symbols Tesseract commonly produces in place
// of scoreboard name glyphs to their likely intended letters.
var nameMisreads = map[string]string{
	"2": "Z", "3": "E", "4": "A", "5": "S", "6": "G", "7": "T", "8": "B", "9": "G",
	"|": "I", "@": "A", "$": "S", "&": "E", "!": "I", "£": "E", "€": "E",
}

var (
	trailingArtifactRe = regexp.MustCompile(`([A-Za-z0-9])([A-Z])$`)
	whitespaceRe       = regexp.MustCompile(`\s+`)
	nonNameRe          = regexp.MustCompile(`[^A-Za-z0-9\s]`)
	nonDigitRe         = regexp.MustCompile(`[^\d]`)
	nonPercentRe       = regexp.MustCompile(`[^\d.%]`)
)

// junkNames are single-glyph readings that mean the name column was empty.
var junkNames = map[string]bool{"0": true, ".": true, "a": true}

// Clean normalizes raw OCR text for a field. zeroProne suppresses the B-to-8
// correction on integer fields whose true value is usually zero. An empty
// result means the field could not be read and should default downstream.
func Clean(text string, field models.Field, zeroProne bool) string {
	if text == "" {
		return ""
	}

	switch field.Kind() {
	case models.KindName:
		return cleanName(text)
	case models.KindPercent:
		return nonPercentRe.ReplaceAllString(text, "")
	default:
		return cleanInteger(text, zeroProne)
	}
}

func cleanName(text string) string {
	for wrong, right := range nameMisreads {
		text = strings.ReplaceAll(text, wrong, right)
	}
	text = strings.ReplaceAll(text, "_", " ")
	text = trailingArtifactRe.ReplaceAllString(text, "$1")
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	text = nonNameRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func cleanInteger(text string, zeroProne bool) string {
	replacer := strings.NewReplacer("O", "0", "o", "0", "l", "1", "I", "1", "S", "5")
	text = replacer.Replace(text)
	if !zeroProne {
		text = strings.ReplaceAll(text, "B", "8")
	}
	return nonDigitRe.ReplaceAllString(text, "")
}

// IsJunkName reports whether a cleaned name is a known empty-column artifact.
func IsJunkName(name string) bool {
	return junkNames[strings.ToLower(strings.TrimSpace(name))]
}
