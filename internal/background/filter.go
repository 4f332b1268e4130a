package background

import (
	"github.com/ironsheep/backdrop-mcp/internal/imaging"
)

// FilterOp names a filter operation.
type FilterOp string

const (
	FilterNone FilterOp = "None"
	FilterRaw  FilterOp = "raw"
	FilterBlur FilterOp = "blur"
	FilterMax  FilterOp = "maxFilter"
	FilterMin  FilterOp = "minFilter"
)

// DefaultBlurRadius is the blur radius used when none is given.
const DefaultBlurRadius = 6

// FilterOps lists the recognised operations.
var FilterOps = []FilterOp{FilterNone, FilterRaw, FilterBlur, FilterMax, FilterMin}

// Filter crops the region, runs op over it and pastes the result back in place.
//
// FilterRaw restores the region from the pristine source, discarding earlier
// edits. FilterBlur uses int(value) as the Gaussian radius. FilterMax and
// FilterMin take the per-channel maximum or minimum over every 3x3 neighbourhood.
// FilterNone and the empty string copy the region unchanged. Unknown operations
// are reported and treated as FilterNone.
func (b *Background) Filter(op FilterOp, part, region string, value float64) {
	res, reg, ok := b.resolve("filter", part, region)
	if !ok {
		return
	}

	kernel, radius := imaging.KernelPass, 0.0
	switch op {
	case FilterNone, "", FilterRaw:
	case FilterBlur:
		kernel, radius = imaging.KernelGaussian, float64(int(value))
	case FilterMax:
		kernel = imaging.KernelMax
	case FilterMin:
		kernel = imaging.KernelMin
	default:
		b.warn("filter", "invalid operation, setting to None", "operation", string(op))
		op = FilterNone
	}
	if op == "" {
		op = FilterNone
	}

	src := b.im
	if op == FilterRaw {
		src = b.pristine
	}
	filtered := imaging.Apply(imaging.Crop(src, reg.Rect), kernel, radius)
	b.im = imaging.Replace(b.im, filtered, reg.Origin)

	b.info("filter", "filter applied",
		"operation", string(op), "part", string(res.Part), "region", res.Region)
}
