package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Crop copies the rectangle r out of img. The result is anchored at (0,0).
// Parts of r outside img are dropped.
func Crop(img image.Image, r image.Rectangle) *image.NRGBA {
	return imaging.Crop(img, r)
}

// ErrUnsupportedMode is returned by Paste for pictures that are neither RGB nor RGBA.
type ErrUnsupportedMode struct {
	Mode Mode
}

func (e ErrUnsupportedMode) Error() string {
	return fmt.Sprintf("undefined situation, image mode: %s", e.Mode)
}

// Paste places p onto dst with its top-left corner at pos and returns the result.
//
// RGB pictures replace the covered pixels. RGBA pictures are alpha-composited
// over dst. Any other mode leaves dst untouched and returns ErrUnsupportedMode.
// Pixels falling outside dst are clipped.
func Paste(dst *image.NRGBA, p *Picture, pos image.Point) (*image.NRGBA, error) {
	switch p.Mode {
	case ModeRGB:
		return imaging.Paste(dst, p.Image, pos), nil
	case ModeRGBA:
		return imaging.Overlay(dst, p.Image, pos, 1.0), nil
	}
	return dst, ErrUnsupportedMode{Mode: p.Mode}
}

// Replace writes src into dst at pos without blending, alpha channel included.
func Replace(dst *image.NRGBA, src image.Image, pos image.Point) *image.NRGBA {
	return imaging.Paste(dst, src, pos)
}

// FadeHalf gives p an alpha channel at half opacity and halves its colour
// channels, as if blended 50% toward transparent black. This is a coarse
// opacity model; it does not scale alpha by a requested amount.
func FadeHalf(p *Picture) *Picture {
	faded := imaging.AdjustFunc(p.Image, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 0x7f}
	})
	return &Picture{Image: faded, Mode: ModeRGBA}
}
