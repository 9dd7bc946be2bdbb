package ocr

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// grayRect fills a uniform gray canvas with one darker rectangle, mimicking
// a scoreboard glyph on a bright cell.
func grayRect(w, h, bg, fg int, rect image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(bg)
			if image.Pt(x, y).In(rect) {
				v = uint8(fg)
			}
			img.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func TestAdaptiveThresholdInvertedPolarity(t *testing.T) {
	img := grayRect(40, 40, 200, 20, image.Rect(20, 20, 30, 30))
	out := adaptiveThreshold(img, 31, 2)

	// Dark glyph pixels come out white, bright background comes out black.
	assert.Equal(t, 255, grayValue(out.At(24, 24)))
	assert.Equal(t, 0, grayValue(out.At(2, 2)))
	assert.Equal(t, 0, grayValue(out.At(37, 5)))
}

func TestBinarizePolarity(t *testing.T) {
	img := grayRect(8, 8, 220, 30, image.Rect(0, 0, 4, 8))
	out := binarize(img, 128)

	// Global threshold keeps the plain polarity: dark stays black.
	assert.Equal(t, 0, grayValue(out.At(1, 1)))
	assert.Equal(t, 255, grayValue(out.At(6, 1)))
}
