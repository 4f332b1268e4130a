package imaging

import (
	"image"
	"image/color"
	"testing"
)

// spotImage returns a 7x7 opaque image of bg with a single fg pixel at the centre.
func spotImage(bg, fg color.NRGBA) *image.NRGBA {
	img := Solid(image.Pt(7, 7), bg, ModeRGB).Image
	img.SetNRGBA(3, 3, fg)
	return img
}

func TestApply(t *testing.T) {
	black := color.NRGBA{A: 255}

	t.Run("pass copies", func(t *testing.T) {
		src := spotImage(black, white)
		out := Apply(src, KernelPass, 6)
		if out.NRGBAAt(3, 3) != white || out.NRGBAAt(3, 2) != black {
			t.Error("pass kernel changed pixels")
		}
		out.SetNRGBA(0, 0, white)
		if src.NRGBAAt(0, 0) != black {
			t.Error("Apply returned the input buffer")
		}
	})

	t.Run("max spreads bright pixel", func(t *testing.T) {
		out := Apply(spotImage(black, white), KernelMax, 0)
		if got := out.NRGBAAt(3, 2); got.R < 250 {
			t.Errorf("neighbour above centre: got %v, want bright", got)
		}
		if got := out.NRGBAAt(0, 0); got.R != 0 {
			t.Errorf("far corner: got %v, want black", got)
		}
	})

	t.Run("min spreads dark pixel", func(t *testing.T) {
		out := Apply(spotImage(white, black), KernelMin, 0)
		if got := out.NRGBAAt(4, 3); got.R > 5 {
			t.Errorf("neighbour right of centre: got %v, want dark", got)
		}
		if got := out.NRGBAAt(6, 6); got.R != 255 {
			t.Errorf("far corner: got %v, want white", got)
		}
	})

	t.Run("gaussian softens", func(t *testing.T) {
		out := Apply(spotImage(black, white), KernelGaussian, 2)
		if got := out.NRGBAAt(3, 3); got.R == 255 {
			t.Error("centre pixel should lose intensity after blur")
		}
		if got := out.NRGBAAt(3, 2); got.R == 0 {
			t.Error("neighbour should pick up intensity after blur")
		}
		if out.Bounds() != image.Rect(0, 0, 7, 7) {
			t.Errorf("bounds: got %v", out.Bounds())
		}
	})

	t.Run("gaussian zero radius copies", func(t *testing.T) {
		out := Apply(spotImage(black, white), KernelGaussian, 0)
		if out.NRGBAAt(3, 3) != white {
			t.Error("radius 0 should leave the image unchanged")
		}
	})

	t.Run("empty image", func(t *testing.T) {
		out := Apply(image.NewNRGBA(image.Rect(0, 0, 0, 0)), KernelGaussian, 6)
		if !out.Bounds().Empty() {
			t.Errorf("bounds: got %v, want empty", out.Bounds())
		}
	})
}

// seamImage returns a w x h image with the left half left and the right half right.
func seamImage(w, h int, left, right color.NRGBA) *image.NRGBA {
	img := Solid(image.Pt(w, h), left, ModeRGB).Image
	for y := 0; y < h; y++ {
		for x := w / 2; x < w; x++ {
			img.SetNRGBA(x, y, right)
		}
	}
	return img
}

func TestApply_RankPerChannel(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}

	tests := []struct {
		name string
		src  *image.NRGBA
		k    Kernel
		x, y int
		want color.NRGBA
	}{
		{"max mixes channels at seam", seamImage(10, 4, red, blue), KernelMax, 4, 1, color.NRGBA{255, 0, 255, 255}},
		{"min mixes channels at seam", seamImage(10, 4, red, blue), KernelMin, 5, 1, color.NRGBA{0, 0, 0, 255}},
		{"max away from seam", seamImage(10, 4, red, blue), KernelMax, 1, 1, red},
		{"min away from seam", seamImage(10, 4, red, blue), KernelMin, 8, 2, blue},
		{
			"alpha is its own channel",
			seamImage(10, 4, color.NRGBA{200, 10, 10, 40}, color.NRGBA{20, 100, 10, 220}),
			KernelMax, 4, 1,
			color.NRGBA{200, 100, 10, 220},
		},
		{
			"straight values are kept",
			seamImage(10, 4, color.NRGBA{200, 10, 10, 40}, color.NRGBA{20, 100, 10, 220}),
			KernelMin, 0, 0,
			color.NRGBA{200, 10, 10, 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Apply(tt.src, tt.k, 0)
			if got := out.NRGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
