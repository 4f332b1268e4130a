package background

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/ironsheep/backdrop-mcp/internal/imaging"
	"github.com/ironsheep/backdrop-mcp/internal/layout"
	"github.com/ironsheep/backdrop-mcp/internal/logging"
)

// ErrClosed is returned by Save once Close has released the image buffers.
var ErrClosed = errors.New("background is closed")

// Options configures a Background.
type Options struct {
	// Config holds the margin layout. Unset values take the layout defaults.
	Config layout.Config

	// Reporter receives every diagnostic. Nil logs to stderr.
	Reporter logging.Reporter

	// Opener loads the source image and secondary pictures. Nil decodes from
	// disk without caching.
	Opener imaging.Opener

	// Silent suppresses info diagnostics. Warnings are always reported.
	Silent bool
}

// Background is a source image together with its region table.
//
// All drawing operations mutate the working buffer in place. A pristine copy of
// the source is kept for the "raw" filter. A Background is not safe for
// concurrent use.
type Background struct {
	name string
	path string

	im       *image.NRGBA
	pristine *image.NRGBA
	mode     imaging.Mode

	table *layout.Table

	reporter logging.Reporter
	opener   imaging.Opener
	silent   bool
	closed   bool
}

type decodeOpener struct{}

func (decodeOpener) Load(path string) (image.Image, error) {
	return imaging.Decode(path)
}

// Open loads the image at path and computes its region table.
//
// The file must carry a recognised image extension. Load failures, an invalid
// hbratio and margin boundary violations are returned as errors.
func Open(path string, opts Options) (*Background, error) {
	if _, ok := imaging.FormatFromPath(path); !ok {
		return nil, fmt.Errorf("unrecognised image extension %q: %s", filepath.Ext(path), path)
	}

	opener := opts.Opener
	if opener == nil {
		opener = decodeOpener{}
	}
	img, err := opener.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open background %s: %w", path, err)
	}

	b, err := New(path, img, opts)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// New builds a background from an already decoded image. name is used for
// diagnostics and as the default output name on Save.
func New(name string, img image.Image, opts Options) (*Background, error) {
	size := img.Bounds().Size()
	g, err := layout.Compute(size.X, size.Y, opts.Config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(name), err)
	}

	pic := imaging.NewPicture(img)
	b := &Background{
		name:     filepath.Base(name),
		path:     name,
		im:       pic.Image,
		pristine: pic.Clone().Image,
		mode:     pic.Mode,
		table:    layout.NewTable(g),
		reporter: opts.Reporter,
		opener:   opts.Opener,
		silent:   opts.Silent,
	}
	if b.reporter == nil {
		b.reporter = logging.NewLogger("pbc")
	}
	if b.opener == nil {
		b.opener = decodeOpener{}
	}

	b.info("open", "opened background",
		"width", g.Width, "height", g.Height,
		"header_height", g.HeaderHeight, "body_height", g.BodyHeight)
	return b, nil
}

// Name returns the base name of the source image.
func (b *Background) Name() string {
	return b.name
}

// Path returns the path the background was opened from.
func (b *Background) Path() string {
	return b.path
}

// Size returns the image width and height.
func (b *Background) Size() image.Point {
	return image.Pt(b.table.Geometry.Width, b.table.Geometry.Height)
}

// Mode returns the pixel mode of the source image.
func (b *Background) Mode() imaging.Mode {
	return b.mode
}

// Geometry returns the resolved header/body split and margin thicknesses.
func (b *Background) Geometry() *layout.Geometry {
	return b.table.Geometry
}

// Closed reports whether Close has been called.
func (b *Background) Closed() bool {
	return b.closed
}

// Close releases the image buffers. The region table stays available.
func (b *Background) Close() error {
	if b.closed {
		return nil
	}
	b.im = nil
	b.pristine = nil
	b.closed = true
	b.info("close", "closed background")
	return nil
}

// resolve validates (part, region) for op. Unknown names are reported and
// replaced by "full". ok is false when the background is closed or the region
// is an undefined placeholder; the caller must skip the operation.
func (b *Background) resolve(op, part, region string) (layout.Resolution, layout.Region, bool) {
	res := b.table.Resolve(part, region)
	if res.UnknownPart {
		b.warn(op, "undefined part of the image specified, using full", "part", part)
	}
	if res.UnknownRegion {
		b.warn(op, "undefined region of the image part specified, using full", "region", region)
	}

	reg := b.table.Region(res)
	if !reg.Defined {
		b.warn(op, "region has no rectangle, skipping", "part", string(res.Part), "region", res.Region)
		return res, reg, false
	}
	if b.closed {
		b.warn(op, "background is closed, skipping")
		return res, reg, false
	}
	return res, reg, true
}

func (b *Background) info(op, msg string, keysAndValues ...interface{}) {
	if b.silent {
		return
	}
	b.emit(logging.KindInfo, op, msg, keysAndValues...)
}

func (b *Background) warn(op, msg string, keysAndValues ...interface{}) {
	b.emit(logging.KindWarning, op, msg, keysAndValues...)
}

func (b *Background) emit(kind logging.Kind, op, msg string, keysAndValues ...interface{}) {
	d := logging.Diagnostic{Kind: kind, Op: op, Message: msg, Image: b.name}
	if len(keysAndValues) > 1 {
		d.Fields = make(map[string]interface{}, len(keysAndValues)/2)
		for i := 0; i+1 < len(keysAndValues); i += 2 {
			d.Fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
		}
	}
	b.reporter.Report(d)
}
