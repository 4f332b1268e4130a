package background

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/ironsheep/backdrop-mcp/internal/imaging"
)

type sourceKind int

const (
	sourceBlank sourceKind = iota
	sourceColor
	sourceFile
)

// Source is what Overlay lays over a region: the blank gray sheet, a solid
// colour or a picture file.
type Source struct {
	kind  sourceKind
	color []int
	path  string
}

// Blank is a translucent gray sheet that lowers the contrast of the region.
func Blank() Source {
	return Source{kind: sourceBlank}
}

// Color is a solid sheet. Three components give an opaque RGB sheet, four an
// RGBA sheet that is alpha-composited.
func Color(c ...int) Source {
	return Source{kind: sourceColor, color: append([]int(nil), c...)}
}

// File is a picture loaded from path.
func File(path string) Source {
	return Source{kind: sourceFile, path: path}
}

// ParseSource reads the textual form used by recipes and tools: "blank", a
// hex colour starting with '#', or a file path. A malformed hex colour yields a
// colour source with no components, which Overlay reports.
func ParseSource(s string) Source {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || strings.EqualFold(s, "blank"):
		return Blank()
	case strings.HasPrefix(s, "#"):
		c, err := imaging.ParseColor(s)
		if err != nil {
			return Color()
		}
		return Color(c...)
	}
	return File(s)
}

func (s Source) String() string {
	switch s.kind {
	case sourceBlank:
		return "blank"
	case sourceColor:
		return fmt.Sprint(s.color)
	}
	return s.path
}

// Overlay lays src over the region, anchored at its origin.
//
// Solid sheets are sized to the region. A colour with the wrong number of
// components or a component outside 0-255 is reported and replaced by
// imaging.ErrorColor; a picture that cannot be opened is reported and replaced
// by an imaging.MissingColor sheet. Pictures are not clipped to the region.
func (b *Background) Overlay(src Source, part, region string) {
	res, reg, ok := b.resolve("overlay", part, region)
	if !ok {
		return
	}

	var pic *imaging.Picture
	var operation string
	switch src.kind {
	case sourceBlank:
		pic = imaging.Solid(reg.Size, imaging.BlankColor, imaging.ModeRGBA)
		operation = "blank"
	case sourceColor:
		c, mode, err := imaging.ColorFromComponents(src.color)
		if err != nil {
			b.warn("overlay", "invalid color given", "color", src.String(), "error", err.Error())
			c, mode = imaging.ErrorColor, imaging.ModeRGBA
			operation = "ERROR"
		} else {
			operation = "color"
		}
		pic = imaging.Solid(reg.Size, c, mode)
	default:
		pic, operation = b.openPicture("overlay", src.path, reg.Size)
	}

	if !b.paste("overlay", pic, reg.Origin) {
		return
	}
	b.info("overlay", "overlay applied",
		"operation", operation, "part", string(res.Part), "region", res.Region)
}

// openPicture loads path through the opener. On failure the failure is
// reported and a MissingColor sheet of size placeholder is returned instead.
func (b *Background) openPicture(op, path string, placeholder image.Point) (*imaging.Picture, string) {
	img, err := b.opener.Load(path)
	if err != nil {
		b.warn(op, "could not open image, using placeholder", "path", path, "error", err.Error())
		return imaging.Solid(placeholder, imaging.MissingColor, imaging.ModeRGBA), "??image??"
	}
	return imaging.NewPicture(img), "image"
}

// paste composites pic onto the working buffer at pos. Pictures in a mode that
// cannot be pasted are reported and leave the buffer untouched.
func (b *Background) paste(op string, pic *imaging.Picture, pos image.Point) bool {
	out, err := imaging.Paste(b.im, pic, pos)
	if err != nil {
		var unsupported imaging.ErrUnsupportedMode
		if errors.As(err, &unsupported) {
			b.warn(op, "undefined situation, unsupported image mode", "mode", string(unsupported.Mode))
			return false
		}
		b.warn(op, "paste failed", "error", err.Error())
		return false
	}
	b.im = out
	return true
}
