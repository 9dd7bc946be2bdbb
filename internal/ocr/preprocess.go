package ocr

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// preprocessVariant is one step of the ordered fallback chain tried when a
// field read comes back empty.
type preprocessVariant struct {
	name  string
	apply func(image.Image) image.Image
}

// preprocessVariants is the ordered fallback chain. The unmodified segment is
// tried first; each later variant trades fidelity for legibility.
var preprocessVariants = []preprocessVariant{
	{"original", func(img image.Image) image.Image { return img }},
	{"grayscale", func(img image.Image) image.Image { return imaging.Grayscale(img) }},
	{"otsu_threshold", func(img image.Image) image.Image {
		gray := imaging.Grayscale(img)
		return binarize(gray, otsuThreshold(gray))
	}},
	{"grayscale_blur", func(img image.Image) image.Image {
		return imaging.Blur(imaging.Grayscale(img), 1.5)
	}},
	{"adaptive_threshold", func(img image.Image) image.Image {
		return adaptiveThreshold(imaging.Grayscale(img), 31, 2)
	}},
	{"brightness_contrast", func(img image.Image) image.Image {
		boosted := imaging.AdjustContrast(imaging.Grayscale(img), 50)
		return imaging.AdjustBrightness(boosted, 12)
	}},
}

func grayValue(c color.Color) int {
	r, g, b, _ := c.RGBA()
	return int((r + g + b) / 3 >> 8)
}

// binarize performs a global threshold on a grayscale image.
func binarize(img image.Image, threshold int) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var v uint8 = 255
			if grayValue(img.At(x, y)) <= threshold {
				v = 0
			}
			out.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return out
}

// otsuThreshold computes the global threshold that maximizes between-class
// variance of the gray histogram.
func otsuThreshold(img image.Image) int {
	var hist [256]int
	b := img.Bounds()
	total := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hist[grayValue(img.At(x, y))]++
			total++
		}
	}
	if total == 0 {
		return 127
	}

	sum := 0.0
	for i, c := range hist {
		sum += float64(i) * float64(c)
	}

	var sumB, wB float64
	best, bestVar := 127, 0.0
	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > bestVar {
			bestVar = between
			best = t
		}
	}
	return best
}

// adaptiveThreshold performs a mean adaptive threshold using an integral
// image over the given window.
func adaptiveThreshold(img image.Image, window int, bias int) *image.NRGBA {
	if window < 3 {
		window = 3
	}
	if window%2 == 0 {
		window++
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	out := imaging.New(w, h, color.NRGBA{255, 255, 255, 255})
	if w == 0 || h == 0 {
		return out
	}
	half := window / 2

	ints := make([]int, w*h)
	for y := 0; y < h; y++ {
		rowSum := 0
		for x := 0; x < w; x++ {
			rowSum += grayValue(img.At(img.Bounds().Min.X+x, img.Bounds().Min.Y+y))
			idx := y*w + x
			if y == 0 {
				ints[idx] = rowSum
			} else {
				ints[idx] = ints[(y-1)*w+x] + rowSum
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0, y0 := x-half, y-half
			x1, y1 := x+half, y+half
			if x0 < 0 {
				x0 = 0
			}
			if y0 < 0 {
				y0 = 0
			}
			if x1 >= w {
				x1 = w - 1
			}
			if y1 >= h {
				y1 = h - 1
			}
			sum := ints[y1*w+x1]
			if x0 > 0 {
				sum -= ints[y1*w+x0-1]
			}
			if y0 > 0 {
				sum -= ints[(y0-1)*w+x1]
			}
			if x0 > 0 && y0 > 0 {
				sum += ints[(y0-1)*w+x0-1]
			}
			mean := sum / ((x1 - x0 + 1) * (y1 - y0 + 1))
			th := mean - bias
			if th < 0 {
				th = 0
			}
			pix := grayValue(img.At(img.Bounds().Min.X+x, img.Bounds().Min.Y+y))
			// Inverted binary output: dark glyphs on a bright background
			// come out white on black.
			c := color.NRGBA{0, 0, 0, 255}
			if pix <= th {
				c = color.NRGBA{255, 255, 255, 255}
			}
			out.Set(x, y, c)
		}
	}
	return out
}
