package kmeans

import (
	"image"
	"image/color"
	"math"
)

// Pixels returns the RGB values (0..255) of img as points in row-major
// order. If maxHeight > 0 and the image is taller, it is first downsampled
// with nearest-neighbour sampling to maxHeight rows, keeping the aspect
// ratio.
func Pixels(img image.Image, maxHeight int) [][]float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	outW, outH := w, h
	if maxHeight > 0 && h > maxHeight {
		outH = maxHeight
		outW = max(1, w*maxHeight/h)
	}
	out := make([][]float64, 0, outW*outH)
	for y := 0; y < outH; y++ {
		sy := b.Min.Y + y*h/outH
		for x := 0; x < outW; x++ {
			sx := b.Min.X + x*w/outW
			r, g, bl, _ := img.At(sx, sy).RGBA()
			out = append(out, []float64{float64(r >> 8), float64(g >> 8), float64(bl >> 8)})
		}
	}
	return out
}

// Quantize returns a copy of img in which every pixel is replaced by the
// colour of its nearest centroid. Centroids must have at least three
// coordinates (R, G, B); further ones are ignored.
func Quantize(img image.Image, centroids [][]float64) *image.RGBA {
	b := img.Bounds()
	palette := Palette(centroids)
	rgb := make([][]float64, len(centroids))
	for i, c := range centroids {
		rgb[i] = c[:3]
	}
	out := image.NewRGBA(b)
	p := make([]float64, 3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			p[0], p[1], p[2] = float64(r>>8), float64(g>>8), float64(bl>>8)
			out.SetRGBA(x, y, palette[Nearest(p, rgb)])
		}
	}
	return out
}

// Palette converts centroids to opaque colours.
func Palette(centroids [][]float64) []color.RGBA {
	out := make([]color.RGBA, len(centroids))
	for i, c := range centroids {
		out[i] = color.RGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: 0xff}
	}
	return out
}

func channel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
