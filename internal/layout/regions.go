package layout

import "image"

// Part names one of the three areas a region can be looked up in.
type Part string

const (
	PartFull   Part = "full"
	PartHeader Part = "header"
	PartBody   Part = "body"
)

// Parts lists the parts in table order.
var Parts = []Part{PartFull, PartHeader, PartBody}

// Region names. The four side names without suffix are aliases that follow the
// include-margins flag.
const (
	RegionFull       = "full"
	RegionInner      = "inner"
	RegionLeft       = "left"
	RegionRight      = "right"
	RegionTop        = "top"
	RegionBottom     = "bottom"
	RegionLeftIncl   = "left-incl"
	RegionLeftExcl   = "left-excl"
	RegionRightIncl  = "right-incl"
	RegionRightExcl  = "right-excl"
	RegionTopIncl    = "top-incl"
	RegionTopExcl    = "top-excl"
	RegionBottomIncl = "bottom-incl"
	RegionBottomExcl = "bottom-excl"
)

// RegionNames lists every region name in table order.
var RegionNames = []string{
	RegionFull, RegionInner,
	RegionLeftIncl, RegionLeftExcl,
	RegionRightIncl, RegionRightExcl,
	RegionTopIncl, RegionTopExcl,
	RegionBottomIncl, RegionBottomExcl,
	RegionLeft, RegionRight, RegionTop, RegionBottom,
}

// Region is one named rectangle of the table.
//
// Defined is false for the placeholder entries of the full part (inner, left
// and right variants) which have no meaningful rectangle.
type Region struct {
	Size    image.Point     `json:"size"`
	Origin  image.Point     `json:"origin"`
	Rect    image.Rectangle `json:"rect"`
	Defined bool            `json:"defined"`
}

func newRegion(r image.Rectangle) Region {
	return Region{Size: r.Size(), Origin: r.Min, Rect: r, Defined: true}
}

// Regions is the fixed set of rectangles of one part.
type Regions struct {
	Full  Region
	Inner Region

	LeftIncl   Region
	LeftExcl   Region
	RightIncl  Region
	RightExcl  Region
	TopIncl    Region
	TopExcl    Region
	BottomIncl Region
	BottomExcl Region

	// Aliases, bound to the -incl or -excl variants.
	Left   Region
	Right  Region
	Top    Region
	Bottom Region
}

func (r *Regions) bind(include bool) {
	if include {
		r.Left, r.Right, r.Top, r.Bottom = r.LeftIncl, r.RightIncl, r.TopIncl, r.BottomIncl
		return
	}
	r.Left, r.Right, r.Top, r.Bottom = r.LeftExcl, r.RightExcl, r.TopExcl, r.BottomExcl
}

// Lookup returns the region with the given name.
func (r *Regions) Lookup(name string) (Region, bool) {
	switch name {
	case RegionFull:
		return r.Full, true
	case RegionInner:
		return r.Inner, true
	case RegionLeftIncl:
		return r.LeftIncl, true
	case RegionLeftExcl:
		return r.LeftExcl, true
	case RegionRightIncl:
		return r.RightIncl, true
	case RegionRightExcl:
		return r.RightExcl, true
	case RegionTopIncl:
		return r.TopIncl, true
	case RegionTopExcl:
		return r.TopExcl, true
	case RegionBottomIncl:
		return r.BottomIncl, true
	case RegionBottomExcl:
		return r.BottomExcl, true
	case RegionLeft:
		return r.Left, true
	case RegionRight:
		return r.Right, true
	case RegionTop:
		return r.Top, true
	case RegionBottom:
		return r.Bottom, true
	}
	return Region{}, false
}

// areaRegions enumerates the rectangles of an area a with margins m.
func areaRegions(a image.Rectangle, m AreaMargins) Regions {
	l, r, t, b := m.Left.Thickness, m.Right.Thickness, m.Top.Thickness, m.Bottom.Thickness
	x0, y0, x1, y1 := a.Min.X, a.Min.Y, a.Max.X, a.Max.Y

	return Regions{
		Full:  newRegion(a),
		Inner: newRegion(rect(x0+l, y0+t, x1-r, y1-b)),

		LeftIncl:   newRegion(rect(x0, y0, x0+l, y1)),
		LeftExcl:   newRegion(rect(x0, y0+t, x0+l, y1-b)),
		RightIncl:  newRegion(rect(x1-r, y0, x1, y1)),
		RightExcl:  newRegion(rect(x1-r, y0+t, x1, y1-b)),
		TopIncl:    newRegion(rect(x0, y0, x1, y0+t)),
		TopExcl:    newRegion(rect(x0+l, y0, x1-r, y0+t)),
		BottomIncl: newRegion(rect(x0, y1-b, x1, y1)),
		BottomExcl: newRegion(rect(x0+l, y1-b, x1-r, y1)),
	}
}

// fullRegions builds the full part from the header and body records. Its top
// variants are the header's full/inner areas and its bottom variants the
// body's; inner, left and right stay undefined.
func fullRegions(g *Geometry, header, body Regions) Regions {
	return Regions{
		Full:       newRegion(g.ImageRect()),
		TopIncl:    header.Full,
		TopExcl:    header.Inner,
		BottomIncl: body.Full,
		BottomExcl: body.Inner,
	}
}
