package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// GuideColor is the default outline colour: semi-transparent red.
var GuideColor = color.NRGBA{R: 255, G: 0, B: 0, A: 160}

// DrawGuides returns a copy of img with a one-pixel outline drawn along the
// inside edge of every rectangle. Outlines are alpha-blended over the image.
// Empty rectangles are skipped; rectangles are clipped to the image.
func DrawGuides(img image.Image, rects []image.Rectangle, c color.NRGBA) *image.NRGBA {
	result := imaging.Clone(img)
	bounds := result.Bounds()

	for _, r := range rects {
		r = r.Intersect(bounds)
		if r.Empty() {
			continue
		}

		// Horizontal edges
		for x := r.Min.X; x < r.Max.X; x++ {
			blendPixel(result, x, r.Min.Y, c)
			if r.Max.Y-1 != r.Min.Y {
				blendPixel(result, x, r.Max.Y-1, c)
			}
		}

		// Vertical edges, corners already drawn
		for y := r.Min.Y + 1; y < r.Max.Y-1; y++ {
			blendPixel(result, r.Min.X, y, c)
			if r.Max.X-1 != r.Min.X {
				blendPixel(result, r.Max.X-1, y, c)
			}
		}
	}

	return result
}

// blendPixel composites c over the pixel at (x, y).
func blendPixel(img *image.NRGBA, x, y int, c color.NRGBA) {
	dst := img.NRGBAAt(x, y)
	a := float64(c.A) / 255
	inv := 1 - a

	outA := a + float64(dst.A)/255*inv
	if outA == 0 {
		img.SetNRGBA(x, y, color.NRGBA{})
		return
	}
	mix := func(s, d uint8) uint8 {
		v := (float64(s)*a + float64(d)*float64(dst.A)/255*inv) / outA
		return uint8(v + 0.5)
	}
	img.SetNRGBA(x, y, color.NRGBA{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: uint8(outA*255 + 0.5),
	})
}
