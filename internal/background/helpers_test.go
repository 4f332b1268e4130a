package background

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/backdrop-mcp/internal/logging"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
	gray  = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
)

// solidImage returns an opaque RGBA image, which classifies as RGB.
func solidImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// writePNG encodes img into dir/name and returns the path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
	return path
}

// mapOpener serves pictures from memory.
type mapOpener map[string]image.Image

func (m mapOpener) Load(path string) (image.Image, error) {
	if img, ok := m[path]; ok {
		return img, nil
	}
	return nil, fmt.Errorf("failed to open image: %w", os.ErrNotExist)
}

// newTestBackground builds a background over img with a recorder attached.
// The construction diagnostic is drained before returning.
func newTestBackground(t *testing.T, img image.Image, opts Options) (*Background, *logging.Recorder) {
	t.Helper()
	rec := logging.NewRecorder(nil)
	opts.Reporter = rec
	if opts.Opener == nil {
		opts.Opener = mapOpener{}
	}

	b, err := New("slide.png", img, opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	rec.Drain()
	return b, rec
}

func pixel(b *Background, x, y int) color.NRGBA {
	return b.im.NRGBAAt(x, y)
}

func expectWarnings(t *testing.T, rec *logging.Recorder, want int) []logging.Diagnostic {
	t.Helper()
	warnings := rec.Warnings()
	if len(warnings) != want {
		t.Errorf("warnings: got %d, want %d: %+v", len(warnings), want, warnings)
	}
	rec.Drain()
	return warnings
}
