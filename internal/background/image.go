package background

import (
	"image"
	"image/color"
	"strings"

	"github.com/ironsheep/backdrop-mcp/internal/imaging"
)

// Borders selects whether Image clips the picture to the region.
type Borders int

const (
	// BordersOn clips the picture to the region. It is the zero value.
	BordersOn Borders = iota

	// BordersOff pastes the picture at the region origin and lets it run past
	// the region edges.
	BordersOff

	// BordersInvalid is produced by ParseBorders for unrecognised input.
	BordersInvalid Borders = -1
)

// ParseBorders maps user input onto a Borders value.
func ParseBorders(s string) Borders {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "true", "on", "crop", "clip":
		return BordersOn
	case "false", "off", "paste":
		return BordersOff
	}
	return BordersInvalid
}

// Opaque is the transparency value at which Image leaves pictures untouched.
const Opaque = 255

// ImageOptions describes a picture placement.
type ImageOptions struct {
	// Picture is the path of the picture. Empty pastes nothing.
	Picture string

	Part   string
	Region string

	Borders Borders

	// Anchor moves the picture's top-left corner to an absolute image
	// position. It only applies with BordersOn; the result is still clipped
	// to the region.
	Anchor *image.Point

	// Transparency below Opaque fades a picture that has no alpha channel.
	// Nil means Opaque.
	Transparency *int
}

// Transparency returns a pointer to v, for filling ImageOptions literals.
func Transparency(v int) *int {
	return &v
}

// Image places a picture inside a region.
//
// With BordersOn the picture is pasted at the region origin (or at Anchor) and
// everything outside the region is discarded. With BordersOff it is pasted at
// the region origin unclipped. A picture that cannot be opened is replaced by a
// MissingColor sheet of the region's size. With no picture at all a
// transparent sheet is composited, which leaves the region unchanged.
//
// When Transparency is below Opaque and the picture has no alpha channel, the
// picture gets one and is blended halfway toward full transparency. The
// transparency amount itself is not used beyond that threshold.
func (b *Background) Image(opts ImageOptions) {
	res, reg, ok := b.resolve("image", opts.Part, opts.Region)
	if !ok {
		return
	}

	var pic *imaging.Picture
	if opts.Picture == "" {
		b.warn("image", "no image specified")
		pic = imaging.Solid(b.Size(), color.NRGBA{}, imaging.ModeRGBA)
	} else {
		pic, _ = b.openPicture("image", opts.Picture, reg.Size)
	}

	if opts.Transparency != nil && *opts.Transparency < Opaque && !pic.HasAlpha() {
		pic = imaging.FadeHalf(pic)
	}

	var operation string
	switch opts.Borders {
	case BordersOn:
		pos := reg.Origin
		operation = "crop"
		if opts.Anchor != nil {
			pos = *opts.Anchor
			operation = "anchor"
		}

		scratch, err := imaging.Paste(b.im, pic, pos)
		if err != nil {
			b.warn("image", "undefined situation, unsupported image mode", "mode", string(pic.Mode))
			return
		}
		b.im = imaging.Replace(b.im, imaging.Crop(scratch, reg.Rect), reg.Origin)
	case BordersOff:
		if !b.paste("image", pic, reg.Origin) {
			return
		}
		operation = "paste"
	default:
		b.warn("image", "invalid borders value", "borders", int(opts.Borders))
		return
	}

	b.info("image", "image applied",
		"operation", operation, "part", string(res.Part), "region", res.Region)
}
