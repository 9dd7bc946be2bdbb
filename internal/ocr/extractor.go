package ocr

import (
	"context"
	"errors"
	"image"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gptfleet/hellsnap/internal/models"
	"github.com/gptfleet/hellsnap/internal/regions"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	defaultParallelism    = 2
	defaultAmbiguousDigit = '8'
)

// Config holds configuration for the extractor.
type Config struct {
	// Reader performs individual OCR passes
	Reader TextReader

	// ZeroProneFields are integer fields whose true value is usually zero
	// and which Tesseract tends to misread as the ambiguous digit.
	// Defaults to Melee Kills and Samples Extracted.
	ZeroProneFields []models.Field

	// AmbiguousDigit is the digit zero-prone fields get misread as.
	// Defaults to '8'.
	AmbiguousDigit rune

	// Parallelism bounds how many player columns extract concurrently.
	// Defaults to 2.
	Parallelism int
}

type extractor struct {
	reader         TextReader
	zeroProne      map[models.Field]bool
	ambiguousDigit rune
	parallelism    int
}

// New creates an extractor.
func New(cfg *Config) (*extractor, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Reader == nil {
		return nil, errors.New("text reader cannot be nil")
	}

	zeroProneFields := cfg.ZeroProneFields
	if zeroProneFields == nil {
		zeroProneFields = []models.Field{models.FieldMeleeKills, models.FieldSamplesExtracted}
	}
	zeroProne := make(map[models.Field]bool, len(zeroProneFields))
	for _, f := range zeroProneFields {
		zeroProne[f] = true
	}

	ambiguousDigit := cfg.AmbiguousDigit
	if ambiguousDigit == 0 {
		ambiguousDigit = defaultAmbiguousDigit
	}

	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = defaultParallelism
	}

	return &extractor{
		reader:         cfg.Reader,
		zeroProne:      zeroProne,
		ambiguousDigit: ambiguousDigit,
		parallelism:    parallelism,
	}, nil
}

// ExtractPlayers reads and cleans every field for every player column found
// in the region map. Player columns extract in parallel; OCR failures on a
// field degrade to zero values and never abort the submission.
func (e *extractor) ExtractPlayers(ctx context.Context, img image.Image, regionMap map[string]regions.Box) ([]*models.PlayerStatRecord, error) {
	playerCount := 0
	for {
		if _, ok := regionMap[regions.Label(playerCount, models.FieldName)]; !ok {
			break
		}
		playerCount++
	}
	if playerCount == 0 {
		return nil, errors.New("region map contains no player columns")
	}

	records := make([]*models.PlayerStatRecord, playerCount)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)
	for i := 0; i < playerCount; i++ {
		g.Go(func() error {
			records[i] = e.extractPlayer(gctx, img, regionMap, i)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (e *extractor) extractPlayer(ctx context.Context, img image.Image, regionMap map[string]regions.Box, playerIndex int) *models.PlayerStatRecord {
	record := &models.PlayerStatRecord{ClanName: "N/A"}

	for _, field := range models.ScannedFields {
		label := regions.Label(playerIndex, field)
		box, ok := regionMap[label]
		if !ok {
			log.Debug().Str("label", label).Msg("no region mapped for field")
			continue
		}

		raw := e.extractField(ctx, img, box, field)
		cleaned := Clean(raw, field, e.zeroProne[field])
		if cleaned == "" {
			log.Debug().Str("label", label).Str("raw", raw).Msg("field unreadable, defaulting")
			continue
		}

		if field == models.FieldName {
			if !IsJunkName(cleaned) {
				record.PlayerName = cleaned
			}
			continue
		}

		value, err := strconv.Atoi(cleaned)
		if err != nil {
			log.Debug().Str("label", label).Str("cleaned", cleaned).Msg("non-numeric stat, defaulting")
			continue
		}
		record.SetInt(field, value)
	}

	record.RecalcAccuracy()
	return record
}

// extractField crops the field's segment and walks the preprocessing chain
// until a pass yields text. Zero-prone fields whose reading is just the
// ambiguous digit get one recheck with that digit excluded; a differing
// recheck wins. An unreadable field returns "".
func (e *extractor) extractField(ctx context.Context, img image.Image, box regions.Box, field models.Field) string {
	segment := imaging.Crop(img, image.Rect(box.Left, box.Top, box.Right, box.Bottom))

	for _, variant := range preprocessVariants {
		if ctx.Err() != nil {
			return ""
		}

		text, err := e.reader.ReadText(variant.apply(segment), ReadOptions{Kind: field.Kind()})
		if err != nil {
			log.Warn().Err(err).Str("field", string(field)).Str("variant", variant.name).Msg("ocr pass failed")
			continue
		}
		if text == "" {
			continue
		}

		if e.zeroProne[field] && e.isAmbiguousReading(text) {
			recheck, err := e.reader.ReadText(variant.apply(segment), ReadOptions{
				Kind:      models.KindInteger,
				Blacklist: string(e.ambiguousDigit),
			})
			if err == nil && recheck != "" && recheck != text {
				log.Debug().Str("field", string(field)).Str("first", text).Str("recheck", recheck).
					Msg("ambiguous digit recheck preferred")
				return recheck
			}
		}
		return text
	}
	return ""
}

// isAmbiguousReading reports whether text is one or two repeats of the
// ambiguous digit, e.g. "8" or "88".
func (e *extractor) isAmbiguousReading(text string) bool {
	if len(text) == 0 || len(text) > 2 {
		return false
	}
	return strings.Count(text, string(e.ambiguousDigit)) == len(text)
}
