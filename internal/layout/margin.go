package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrBoundaryExceeded is matched by every *BoundaryError.
var ErrBoundaryExceeded = errors.New("value exceeds boundary")

// ErrInvalidRatio is returned when hbratio is outside (0,1].
var ErrInvalidRatio = errors.New("invalid header/body ratio")

// BoundaryError reports a margin that does not fit its area.
type BoundaryError struct {
	Area      string  // "header" or "body"
	Side      string  // "left", "right", "top", "bottom", or "left+right" / "top+bottom"
	Dimension string  // "width" or "height"
	Limit     int     // size of the governing dimension in pixels
	Value     float64 // offending value as given (or the summed thickness for opposing sides)
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("%v! %s %s = %d, given %s value = %v",
		ErrBoundaryExceeded, e.Area, e.Dimension, e.Limit, e.Side, e.Value)
}

func (e *BoundaryError) Unwrap() error {
	return ErrBoundaryExceeded
}

// Margin is a resolved margin thickness.
type Margin struct {
	// Requested is the value as configured.
	Requested float64 `json:"requested"`

	// Thickness is the margin width in whole pixels.
	Thickness int `json:"thickness"`

	// Factor is Thickness relative to the governing dimension. For fractional
	// input it is the input itself; for pixel input it is recomputed from the
	// floored thickness.
	Factor float64 `json:"factor"`
}

// ResolveMargin converts a requested margin value into a pixel thickness.
//
// Values below 1 are fractions: thickness = floor(value * dimension).
// Values of 1 or more are pixel counts: thickness = floor(value) and the factor
// is recomputed from it. Negative values and values above dimension fail with a
// *BoundaryError.
func ResolveMargin(area, side string, value float64, dimension int) (Margin, error) {
	if value < 0 || value > float64(dimension) || math.IsNaN(value) {
		return Margin{}, &BoundaryError{
			Area:      area,
			Side:      side,
			Dimension: governingDimension(side),
			Limit:     dimension,
			Value:     value,
		}
	}

	if value < 1 {
		return Margin{
			Requested: value,
			Thickness: int(math.Floor(value * float64(dimension))),
			Factor:    value,
		}, nil
	}

	thickness := int(math.Floor(value))
	factor := 0.0
	if dimension > 0 {
		factor = float64(thickness) / float64(dimension)
	}
	return Margin{Requested: value, Thickness: thickness, Factor: factor}, nil
}

// AreaMargins holds the four resolved margins of one area.
type AreaMargins struct {
	Left   Margin `json:"left"`
	Right  Margin `json:"right"`
	Top    Margin `json:"top"`
	Bottom Margin `json:"bottom"`
}

func resolveArea(area string, req Margins, width, height int) (AreaMargins, error) {
	var m AreaMargins
	var err error

	if m.Left, err = ResolveMargin(area, "left", req.Left, width); err != nil {
		return m, err
	}
	if m.Right, err = ResolveMargin(area, "right", req.Right, width); err != nil {
		return m, err
	}
	if m.Top, err = ResolveMargin(area, "top", req.Top, height); err != nil {
		return m, err
	}
	if m.Bottom, err = ResolveMargin(area, "bottom", req.Bottom, height); err != nil {
		return m, err
	}

	// Opposing margins must leave a non-negative content area.
	if sum := m.Left.Thickness + m.Right.Thickness; sum > width {
		return m, &BoundaryError{Area: area, Side: "left+right", Dimension: "width", Limit: width, Value: float64(sum)}
	}
	if sum := m.Top.Thickness + m.Bottom.Thickness; sum > height {
		return m, &BoundaryError{Area: area, Side: "top+bottom", Dimension: "height", Limit: height, Value: float64(sum)}
	}
	return m, nil
}

func governingDimension(side string) string {
	switch side {
	case "top", "bottom", "top+bottom":
		return "height"
	default:
		return "width"
	}
}
