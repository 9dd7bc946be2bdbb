package ocr

//go:generate mockgen -package=mocks -destination=mocks/mock_ocr.go github.com/gptfleet/hellsnap/internal/ocr Extractor,TextReader

import (
	"context"
	"image"

	"github.com/gptfleet/hellsnap/internal/models"
	"github.com/gptfleet/hellsnap/internal/regions"
)

// Extractor turns a screenshot plus its mapped field regions into per-player
// stat records.
type Extractor interface {
	// ExtractPlayers reads every mapped field for every player column and
	// assembles cleaned records. Unreadable fields degrade to zero values;
	// this never fails on OCR problems.
	ExtractPlayers(ctx context.Context, img image.Image, regionMap map[string]regions.Box) ([]*models.PlayerStatRecord, error)
}

// ReadOptions selects the character set and segmentation mode for one read.
type ReadOptions struct {
	// Kind picks the field-type character whitelist
	Kind models.FieldKind

	// Blacklist excludes specific characters, used by the ambiguous-digit
	// recheck pass
	Blacklist string
}

// TextReader performs a single optical read over an image segment.
type TextReader interface {
	ReadText(img image.Image, opts ReadOptions) (string, error)
}
