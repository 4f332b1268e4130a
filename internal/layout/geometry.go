package layout

import (
	"fmt"
	"image"
	"math"
)

// Geometry is the resolved header/body split and margin thicknesses of an image.
type Geometry struct {
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	HBRatio float64 `json:"hbratio"`

	HeaderHeight int `json:"header_height"`
	BodyHeight   int `json:"body_height"`

	Header AreaMargins `json:"header"`
	Body   AreaMargins `json:"body"`
}

// Compute resolves cfg against an image of the given size.
//
// The header takes floor(height * hbratio) rows from the top and the body takes
// every remaining row, so the two areas always tile the image without a gap.
func Compute(width, height int, cfg Config) (*Geometry, error) {
	ratio := cfg.Ratio()
	if !(ratio > 0 && ratio <= 1) {
		return nil, fmt.Errorf("%w: hbratio must be in (0,1], got %v", ErrInvalidRatio, ratio)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	g := &Geometry{
		Width:        width,
		Height:       height,
		HBRatio:      ratio,
		HeaderHeight: int(math.Floor(float64(height) * ratio)),
	}
	g.BodyHeight = height - g.HeaderHeight

	reqHeader, reqBody := cfg.Requested()

	var err error
	if g.Header, err = resolveArea("header", reqHeader, width, g.HeaderHeight); err != nil {
		return nil, err
	}
	if g.Body, err = resolveArea("body", reqBody, width, g.BodyHeight); err != nil {
		return nil, err
	}
	return g, nil
}

// HeaderRect is the whole header area.
func (g *Geometry) HeaderRect() image.Rectangle {
	return rect(0, 0, g.Width, g.HeaderHeight)
}

// BodyRect is the whole body area.
func (g *Geometry) BodyRect() image.Rectangle {
	return rect(0, g.HeaderHeight, g.Width, g.HeaderHeight+g.BodyHeight)
}

// ImageRect is the whole image.
func (g *Geometry) ImageRect() image.Rectangle {
	return rect(0, 0, g.Width, g.Height)
}

// rect builds a rectangle without the corner swapping done by image.Rect.
func rect(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}
