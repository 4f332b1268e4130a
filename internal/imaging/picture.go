package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Mode is the pixel format of a picture.
//
// Only ModeRGB and ModeRGBA can be composited. The remaining modes are kept so
// that callers can report which unsupported format they were handed.
type Mode string

const (
	ModeRGB     Mode = "RGB"
	ModeRGBA    Mode = "RGBA"
	ModeGray    Mode = "L"
	ModePalette Mode = "P"
	ModeCMYK    Mode = "CMYK"
	ModeOther   Mode = "?"
)

// ModeOf classifies a decoded image.
//
// NRGBA images always carry alpha. Premultiplied RGBA images count as RGBA only
// when they contain a non-opaque pixel, since the PNG decoder produces them for
// truecolor files without an alpha channel. JPEG (YCbCr) decodes as RGB.
func ModeOf(img image.Image) Mode {
	switch m := img.(type) {
	case *image.NRGBA, *image.NRGBA64:
		return ModeRGBA
	case *image.RGBA:
		if m.Opaque() {
			return ModeRGB
		}
		return ModeRGBA
	case *image.RGBA64:
		if m.Opaque() {
			return ModeRGB
		}
		return ModeRGBA
	case *image.YCbCr:
		return ModeRGB
	case *image.NYCbCrA:
		return ModeRGBA
	case *image.Gray, *image.Gray16:
		return ModeGray
	case *image.Paletted:
		return ModePalette
	case *image.CMYK:
		return ModeCMYK
	}
	return ModeOther
}

// Picture is a mutable NRGBA raster tagged with the mode it was created in.
type Picture struct {
	Image *image.NRGBA
	Mode  Mode
}

// NewPicture copies img into a fresh NRGBA buffer anchored at (0,0).
func NewPicture(img image.Image) *Picture {
	return &Picture{Image: imaging.Clone(img), Mode: ModeOf(img)}
}

// Solid creates a picture of the given size filled with c.
func Solid(size image.Point, c color.NRGBA, mode Mode) *Picture {
	w, h := size.X, size.Y
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Picture{Image: imaging.New(w, h, c), Mode: mode}
}

// HasAlpha reports whether the picture is in RGBA mode.
func (p *Picture) HasAlpha() bool {
	return p.Mode == ModeRGBA
}

// Size returns the width and height in pixels.
func (p *Picture) Size() image.Point {
	return p.Image.Bounds().Size()
}

// Clone returns a deep copy.
func (p *Picture) Clone() *Picture {
	return &Picture{Image: imaging.Clone(p.Image), Mode: p.Mode}
}
