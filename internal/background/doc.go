// Package background composes presentation backgrounds.
//
// A Background wraps a source image and its region table (see package
// layout). Operations address a rectangle by part ("full", "header", "body")
// and region name ("inner", "left-incl", "top", ...) and draw into it:
//
//	bg, err := background.Open("slide.png", background.Options{})
//	if err != nil {
//		return err
//	}
//	defer bg.Close()
//
//	bg.Filter(background.FilterBlur, "body", "inner", background.DefaultBlurRadius)
//	bg.Overlay(background.Blank(), "header", "full")
//	bg.Image(background.ImageOptions{Picture: "logo.png", Part: "header", Region: "left"})
//	path, err := bg.Save("")
//
// # Diagnostics
//
// Only construction and Save return errors. Every other problem (an unknown
// part or region, a malformed colour, a missing picture, an unsupported pixel
// mode) is reported to the configured logging.Reporter as a warning and a
// fallback is used: the whole image, a pass-through filter or a placeholder
// sheet. Successful operations report an info diagnostic unless Silent is set.
//
// # Margins
//
// The side aliases left, right, top and bottom follow the include-margins
// flag. With margins included they name the bands spanning the whole area;
// with margins excluded they name the bands between the perpendicular
// margins. See Margins, Toggle and SetIncludeMargins.
package background
