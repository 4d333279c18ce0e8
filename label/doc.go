// Package label renders short runs of styled text onto an ARGB32 pixel
// surface for framebuffer-style UIs with no windowing system.
//
// A Label owns its text, color, alignment and width constraint, plus one
// font face loaded at construction time. Mutators recompute the cached
// bounding box while the label is visible and request a redraw from the
// display that owns the pixel memory; the host then calls Draw with the
// destination buffer and a clip rectangle.
//
// Text is treated as single-byte character codes with explicit '\n' line
// separators. There is no shaping, kerning or word wrapping.
package label
