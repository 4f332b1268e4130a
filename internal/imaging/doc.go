// Package imaging provides the raster primitives behind background composition.
//
// Every operation works on *image.NRGBA buffers anchored at (0,0), with the
// origin at the top-left corner, X increasing rightward and Y increasing
// downward. Rectangles are half-open: Min is inclusive and Max is exclusive.
//
// # Pictures and Modes
//
// A Picture pairs a raster with the Mode it was decoded or created in. Only
// ModeRGB and ModeRGBA can be pasted: RGB pictures replace the pixels they
// cover while RGBA pictures are alpha-composited. Paletted, grayscale and
// CMYK sources are reported through ErrUnsupportedMode instead of being
// silently converted.
//
// # Filters
//
// Apply runs one of a small set of neighbourhood kernels (pass, gaussian,
// max, min) over an image. Kernels return a new buffer; the input is never
// modified.
//
// # Colors
//
// Colors enter as 3 or 4 integer components (see ColorFromComponents) or as
// hex strings (see ParseColor). SampleColor reports a pixel as hex, straight
// RGBA and HSL.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The remaining functions are
// stateless; a Picture must not be mutated from several goroutines at once.
package imaging
