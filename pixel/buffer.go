// Package pixel provides the ARGB32 pixel surface labels render into and
// the damage-notification interface of the display that owns it.
package pixel

import (
	"errors"
	"image"
)

// ErrInvalidDimensions is returned when width or height is negative.
var ErrInvalidDimensions = errors.New("pixel: invalid dimensions")

// Buffer is a caller-owned ARGB32 pixel surface.
//
// Pixels are stored row-major as 0xAARRGGBB words. Renderers read and write
// within the declared bounds and never resize or reallocate the buffer.
//
// Buffer is not safe for concurrent use; the host drives a single
// synchronous redraw loop.
type Buffer struct {
	pix    []uint32
	width  int
	height int
}

// New creates a buffer of the given dimensions. A zero-sized buffer is
// valid; drawing into it is a no-op.
func New(width, height int) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buffer{
		pix:    make([]uint32, width*height),
		width:  width,
		height: height,
	}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Bounds returns the buffer extent as a rectangle anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Pix returns the backing pixel slice, row-major, 0xAARRGGBB.
func (b *Buffer) Pix() []uint32 { return b.pix }

// At returns the pixel at (x, y), or 0 outside the bounds.
func (b *Buffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0
	}
	return b.pix[y*b.width+x]
}

// Set writes the pixel at (x, y). Writes outside the bounds are dropped.
func (b *Buffer) Set(x, y int, argb uint32) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = argb
}

// Display is the external owner of a pixel surface. A visible label holds a
// Display to request redraws of damaged areas; it never draws through it
// directly.
//
// DrawArea notifies the display that area needs to be repainted. The display
// is expected to eventually call back into every control overlapping the
// area, label included.
type Display interface {
	DrawArea(area image.Rectangle)
}
