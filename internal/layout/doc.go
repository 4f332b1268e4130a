// Package layout computes the region geometry of a presentation background.
//
// An image is split into a header band on top and a body band below it. Each
// band has four margins (left, right, top, bottom), given either as a fraction
// of the governing dimension (width for left/right, height for top/bottom) or as
// a pixel count. From the resolved thicknesses the package derives a Table of
// named rectangles for the parts "full", "header" and "body":
//
//	full         the whole area
//	inner        the content area, the area minus all four margins
//	<side>-incl  margin band spanning the full extent of its side
//	<side>-excl  margin band clipped to the content area's extent
//	<side>       alias for -incl or -excl, following the include-margins flag
//
// The "full" part maps top-incl/top-excl to the header's full/inner areas and
// bottom-incl/bottom-excl to the body's. Its inner, left and right entries are
// placeholders with Defined set to false.
//
// # Coordinate System
//
// Rectangles use image.Rectangle: Min is inclusive, Max is exclusive, (0,0) is
// the top-left corner of the image.
//
// # Errors
//
// Compute fails with a *BoundaryError when a margin is negative, larger than
// its governing dimension, or when opposing margins overlap. Resolve never
// fails; unknown names are reported on the Resolution and replaced by "full".
package layout
