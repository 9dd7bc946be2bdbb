package ocr_test

import (
	"context"
	"image"
	"testing"

	"github.com/gptfleet/hellsnap/internal/models"
	"github.com/gptfleet/hellsnap/internal/ocr"
	"github.com/gptfleet/hellsnap/internal/regions"
	"github.com/stretchr/testify/suite"
)

// scriptedReader feeds canned OCR responses keyed by read options, letting
// tests drive the fallback chain without a Tesseract install.
type scriptedReader struct {
	fn    func(img image.Image, opts ocr.ReadOptions) (string, error)
	calls int
}

func (r *scriptedReader) ReadText(img image.Image, opts ocr.ReadOptions) (string, error) {
	r.calls++
	return r.fn(img, opts)
}

type ExtractorTestSuite struct {
	suite.Suite
	ctx context.Context
	img image.Image
}

func (s *ExtractorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.img = image.NewNRGBA(image.Rect(0, 0, 1920, 1080))
}

func TestExtractorTestSuite(t *testing.T) {
	suite.Run(t, new(ExtractorTestSuite))
}

func (s *ExtractorTestSuite) newExtractor(reader ocr.TextReader) ocr.Extractor {
	extractor, err := ocr.New(&ocr.Config{Reader: reader, Parallelism: 1})
	s.Require().NoError(err)
	return extractor
}

func (s *ExtractorTestSuite) regionMap(fields ...models.Field) map[string]regions.Box {
	m := make(map[string]regions.Box)
	for i, f := range fields {
		m[regions.Label(0, f)] = regions.Box{Left: i * 20, Top: 0, Right: i*20 + 10, Bottom: 10}
	}
	return m
}

func (s *ExtractorTestSuite) TestNilConfig() {
	_, err := ocr.New(nil)
	s.Error(err)

	_, err = ocr.New(&ocr.Config{})
	s.Error(err)
}

func (s *ExtractorTestSuite) TestAccuracyDerivedFromShots() {
	numericReplies := []string{"92", "81"} // Shots Fired, Shots Hit
	reader := &scriptedReader{fn: func(_ image.Image, opts ocr.ReadOptions) (string, error) {
		if opts.Kind == models.KindName {
			return "DiveLeader", nil
		}
		reply := numericReplies[0]
		numericReplies = numericReplies[1:]
		return reply, nil
	}}

	records, err := s.newExtractor(reader).ExtractPlayers(s.ctx, s.img,
		s.regionMap(models.FieldName, models.FieldShotsFired, models.FieldShotsHit))
	s.Require().NoError(err)
	s.Require().Len(records, 1)

	s.Equal("DiveLeader", records[0].PlayerName)
	s.Equal(92, records[0].ShotsFired)
	s.Equal(81, records[0].ShotsHit)
	s.Equal("88.0%", records[0].Accuracy)
}

func (s *ExtractorTestSuite) TestShotsHitClampedToShotsFired() {
	numericReplies := []string{"10", "15"}
	reader := &scriptedReader{fn: func(_ image.Image, opts ocr.ReadOptions) (string, error) {
		if opts.Kind == models.KindName {
			return "Hero", nil
		}
		reply := numericReplies[0]
		numericReplies = numericReplies[1:]
		return reply, nil
	}}

	records, err := s.newExtractor(reader).ExtractPlayers(s.ctx, s.img,
		s.regionMap(models.FieldName, models.FieldShotsFired, models.FieldShotsHit))
	s.Require().NoError(err)

	s.Equal(10, records[0].ShotsHit)
	s.Equal("100.0%", records[0].Accuracy)
}

func (s *ExtractorTestSuite) TestFallbackChainStopsAtFirstText() {
	emptyPasses := 0
	reader := &scriptedReader{fn: func(_ image.Image, opts ocr.ReadOptions) (string, error) {
		if opts.Kind == models.KindName {
			return "Hero", nil
		}
		if emptyPasses < 3 {
			emptyPasses++
			return "", nil
		}
		return "7", nil
	}}

	records, err := s.newExtractor(reader).ExtractPlayers(s.ctx, s.img,
		s.regionMap(models.FieldName, models.FieldKills))
	s.Require().NoError(err)

	s.Equal(7, records[0].Kills)
	s.Equal(3, emptyPasses)
}

func (s *ExtractorTestSuite) TestUnreadableFieldDefaultsToZero() {
	reader := &scriptedReader{fn: func(_ image.Image, opts ocr.ReadOptions) (string, error) {
		if opts.Kind == models.KindName {
			return "Hero", nil
		}
		return "", nil
	}}

	records, err := s.newExtractor(reader).ExtractPlayers(s.ctx, s.img,
		s.regionMap(models.FieldName, models.FieldKills, models.FieldShotsFired))
	s.Require().NoError(err)

	s.Equal(0, records[0].Kills)
	s.Equal(0, records[0].ShotsFired)
	s.Equal("0.0%", records[0].Accuracy)
}

func (s *ExtractorTestSuite) TestZeroProneRecheckPreferred() {
	reader := &scriptedReader{fn: func(_ image.Image, opts ocr.ReadOptions) (string, error) {
		if opts.Kind == models.KindName {
			return "Hero", nil
		}
		if opts.Blacklist == "8" {
			return "0", nil
		}
		return "8", nil
	}}

	records, err := s.newExtractor(reader).ExtractPlayers(s.ctx, s.img,
		s.regionMap(models.FieldName, models.FieldMeleeKills))
	s.Require().NoError(err)

	s.Equal(0, records[0].MeleeKills)
}

func (s *ExtractorTestSuite) TestZeroProneRecheckOnlyForAmbiguousReading() {
	reader := &scriptedReader{fn: func(_ image.Image, opts ocr.ReadOptions) (string, error) {
		if opts.Kind == models.KindName {
			return "Hero", nil
		}
		if opts.Blacklist != "" {
			s.Fail("recheck pass must not run for an unambiguous reading")
		}
		return "3", nil
	}}

	records, err := s.newExtractor(reader).ExtractPlayers(s.ctx, s.img,
		s.regionMap(models.FieldName, models.FieldMeleeKills))
	s.Require().NoError(err)

	s.Equal(3, records[0].MeleeKills)
}

func (s *ExtractorTestSuite) TestJunkNameCleared() {
	reader := &scriptedReader{fn: func(_ image.Image, opts ocr.ReadOptions) (string, error) {
		if opts.Kind == models.KindName {
			return "0", nil
		}
		return "1", nil
	}}

	records, err := s.newExtractor(reader).ExtractPlayers(s.ctx, s.img,
		s.regionMap(models.FieldName, models.FieldKills))
	s.Require().NoError(err)

	s.Empty(records[0].PlayerName)
	s.Equal(1, records[0].Kills)
}

func (s *ExtractorTestSuite) TestMultiplePlayerColumns() {
	reader := &scriptedReader{fn: func(_ image.Image, opts ocr.ReadOptions) (string, error) {
		if opts.Kind == models.KindName {
			return "Hero", nil
		}
		return "5", nil
	}}

	mapper, err := regions.New(&regions.Config{})
	s.Require().NoError(err)
	regionMap := mapper.MapRegions(1920, 1080)

	records, err := s.newExtractor(reader).ExtractPlayers(s.ctx, s.img, regionMap)
	s.Require().NoError(err)
	s.Len(records, regions.DefaultPlayerCount)
	for _, record := range records {
		s.Equal("Hero", record.PlayerName)
		s.Equal(5, record.Kills)
	}
}
