package background

import (
	"image"

	"github.com/ironsheep/backdrop-mcp/internal/imaging"
	"github.com/ironsheep/backdrop-mcp/internal/layout"
)

// Dimensions returns the size and origin of a region after resolution.
// Undefined placeholder regions are reported and yield zero values.
func (b *Background) Dimensions(part, region string) (size, origin image.Point) {
	res := b.table.Resolve(part, region)
	if res.UnknownPart {
		b.warn("dimensions", "undefined part of the image specified, using full", "part", part)
	}
	if res.UnknownRegion {
		b.warn("dimensions", "undefined region of the image part specified, using full", "region", region)
	}

	reg := b.table.Region(res)
	if !reg.Defined {
		b.warn("dimensions", "region has no rectangle", "part", string(res.Part), "region", res.Region)
		return image.Point{}, image.Point{}
	}
	return reg.Size, reg.Origin
}

// Regions lists every (part, region) pair with the aliases bound to the
// current include-margins flag.
func (b *Background) Regions() []layout.Entry {
	b.table.Refresh()
	return b.table.Entries()
}

// Snapshot returns a copy of the working buffer, or nil once closed.
func (b *Background) Snapshot() *image.NRGBA {
	if b.closed {
		return nil
	}
	return imaging.Crop(b.im, b.im.Bounds())
}

// Preview returns a copy of the working buffer. With guides, the full and
// inner rectangles of the header and body are outlined in imaging.GuideColor.
func (b *Background) Preview(guides bool) *image.NRGBA {
	snap := b.Snapshot()
	if snap == nil || !guides {
		return snap
	}

	t := b.table
	rects := []image.Rectangle{
		t.Header.Full.Rect, t.Header.Inner.Rect,
		t.Body.Full.Rect, t.Body.Inner.Rect,
	}
	return imaging.DrawGuides(snap, rects, imaging.GuideColor)
}

// Sample reads the working buffer at (x, y) in image coordinates.
func (b *Background) Sample(x, y int) (*imaging.ColorResult, error) {
	if b.closed {
		return nil, ErrClosed
	}
	return imaging.SampleColor(b.im, x, y)
}
