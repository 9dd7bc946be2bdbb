package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/gptfleet/hellsnap/internal/models"
	"github.com/otiai10/gosseract/v2"
)

const (
	nameWhitelist    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ<>#0123456789_ "
	numericWhitelist = ".0123456789%"
	digitWhitelist   = "0123456789"
)

// TesseractReader reads text from image segments using a local Tesseract
// installation via gosseract.
type TesseractReader struct {
	language string
}

// NewTesseractReader creates a reader using the English language pack.
func NewTesseractReader() *TesseractReader {
	return &TesseractReader{language: "eng"}
}

// ReadText runs one OCR pass over the segment. Name fields use a restricted
// alphanumeric whitelist with single-line segmentation; numeric fields use a
// digit/percent whitelist. A non-empty blacklist switches to the recheck
// configuration: digits only, single-character segmentation.
func (r *TesseractReader) ReadText(img image.Image, opts ReadOptions) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(r.language); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}

	if opts.Blacklist != "" {
		_ = client.SetWhitelist(digitWhitelist)
		_ = client.SetBlacklist(opts.Blacklist)
		_ = client.SetPageSegMode(gosseract.PSM_SINGLE_CHAR)
	} else if opts.Kind == models.KindName {
		_ = client.SetWhitelist(nameWhitelist)
		_ = client.SetPageSegMode(gosseract.PSM_SINGLE_LINE)
	} else {
		_ = client.SetWhitelist(numericWhitelist)
		_ = client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode segment: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: %w", err)
	}
	return strings.TrimSpace(text), nil
}
