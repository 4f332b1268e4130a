package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Fixed fill colours used by overlay and image operations.
var (
	// BlankColor is the translucent gray laid over a region by a "blank" overlay.
	BlankColor = color.NRGBA{R: 150, G: 150, B: 150, A: 150}

	// ErrorColor fills a region whose overlay colour was malformed.
	ErrorColor = color.NRGBA{R: 220, G: 255, B: 120, A: 230}

	// MissingColor fills a region whose overlay or picture could not be opened.
	MissingColor = color.NRGBA{R: 255, G: 0, B: 255, A: 230}
)

// ColorFromComponents builds a colour from 3 (RGB) or 4 (RGBA) components in
// 0-255. The returned mode is ModeRGB for 3 components and ModeRGBA for 4.
func ColorFromComponents(c []int) (color.NRGBA, Mode, error) {
	if len(c) < 3 || len(c) > 4 {
		return color.NRGBA{}, "", fmt.Errorf("colour needs 3 or 4 components, got %d", len(c))
	}
	for i, v := range c {
		if v < 0 || v > 255 {
			return color.NRGBA{}, "", fmt.Errorf("colour component %d out of range 0-255: %d", i, v)
		}
	}

	out := color.NRGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 255}
	if len(c) == 3 {
		return out, ModeRGB, nil
	}
	out.A = uint8(c[3])
	return out, ModeRGBA, nil
}

// ParseColor parses "#RRGGBB", "#RGB" or "#RRGGBBAA" (leading '#' optional)
// and returns the colour as components, ready for ColorFromComponents.
func ParseColor(s string) ([]int, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if hex == "" {
		return nil, fmt.Errorf("empty color string")
	}

	alpha := -1
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = int(a)
		hex = hex[:6]
	}
	if len(hex) != 3 && len(hex) != 6 {
		return nil, fmt.Errorf("invalid color %q: want 3, 6 or 8 hex digits", s)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	if alpha < 0 {
		return []int{int(r), int(g), int(b)}, nil
	}
	return []int{int(r), int(g), int(b), alpha}, nil
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult contains a sampled color value in multiple representations.
type ColorResult struct {
	X    int       `json:"x"`
	Y    int       `json:"y"`
	Hex  string    `json:"hex"` // "#RRGGBB", alpha excluded
	RGBA RGBAColor `json:"rgba"`
	HSL  HSLColor  `json:"hsl"`
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Coordinates are 0-based with origin at the image's top-left corner. The
// color is reported with straight (non-premultiplied) components.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	c := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}

	return &ColorResult{
		X:    x,
		Y:    y,
		Hex:  strings.ToUpper(c.Hex()),
		RGBA: RGBAColor{R: n.R, G: n.G, B: n.B, A: n.A},
		HSL:  HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}, nil
}
