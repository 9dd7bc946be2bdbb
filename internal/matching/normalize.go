package matching

import (
	"regexp"
	"strings"
)

var (
	bracketedRe   = regexp.MustCompile(`<.*?>`)
	edgeDigitsRe  = regexp.MustCompile(`^[\d_]+|[\d_]+$`)
	nonAlphanumRe = regexp.MustCompile(`[^a-z0-9]`)
)

// NormalizeName reduces a display or OCR name to the lowercase alphanumeric
// core used for all comparisons: bracketed segments, leading/trailing
// digit/underscore runs, and punctuation are all noise on scoreboards.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = bracketedRe.ReplaceAllString(name, "")
	name = edgeDigitsRe.ReplaceAllString(name, "")
	return nonAlphanumRe.ReplaceAllString(name, "")
}
