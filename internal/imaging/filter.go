package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/channel"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// Kernel names a neighbourhood filter.
type Kernel string

const (
	// KernelPass copies the image unchanged (a Gaussian blur of radius 0).
	KernelPass Kernel = "pass"

	// KernelGaussian blurs with the given radius.
	KernelGaussian Kernel = "gaussian"

	// KernelMax sets each channel of a pixel to the maximum of that channel
	// over its 3x3 neighbourhood.
	KernelMax Kernel = "max"

	// KernelMin sets each channel of a pixel to the minimum of that channel
	// over its 3x3 neighbourhood.
	KernelMin Kernel = "min"
)

// Apply runs the kernel over img and returns a new NRGBA image anchored at (0,0).
// radius is only used by KernelGaussian; a radius of 0 or less copies the input.
// Unknown kernels behave like KernelPass.
func Apply(img image.Image, k Kernel, radius float64) *image.NRGBA {
	if img.Bounds().Empty() {
		return imaging.Clone(img)
	}

	switch k {
	case KernelGaussian:
		if radius <= 0 {
			return imaging.Clone(img)
		}
		return imaging.Clone(blur.Gaussian(img, radius))
	case KernelMax:
		return perChannel(img, effect.Dilate)
	case KernelMin:
		return perChannel(img, effect.Erode)
	}
	return imaging.Clone(img)
}

// perChannel runs a rank filter of radius 1 over the R, G, B and A planes of
// img separately and recombines them. On a grey plane the rank of a pixel is
// its value, so each channel gets its own maximum or minimum.
func perChannel(img image.Image, rank func(image.Image, float64) *image.RGBA) *image.NRGBA {
	src := imaging.Clone(img)
	// Extract copies raw Pix bytes; viewing the straight NRGBA bytes as RGBA
	// keeps them from being premultiplied.
	raw := &image.RGBA{Pix: src.Pix, Stride: src.Stride, Rect: src.Rect}

	out := image.NewNRGBA(src.Rect)
	planes := []channel.Channel{channel.Red, channel.Green, channel.Blue, channel.Alpha}
	for offset, c := range planes {
		filtered := rank(channel.Extract(raw, c), 1)
		for i := 0; i < len(out.Pix); i += 4 {
			out.Pix[i+offset] = filtered.Pix[i]
		}
	}
	return out
}
