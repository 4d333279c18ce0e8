package face

import (
	"image"
	"image/color"

	"golang.org/x/image/math/fixed"
)

// Glyph is a rasterized character: an 8-bit coverage bitmap plus the
// positioning data needed to place it relative to the pen.
type Glyph struct {
	// Pix holds coverage bytes, row-major. Pix[y*Stride+x] is the
	// opacity of the pixel at (x, y), 0 transparent, 255 opaque.
	Pix    []uint8
	Stride int

	// Width and Height are the bitmap dimensions in pixels.
	Width  int
	Height int

	// Left is the horizontal offset from the pen position to the bitmap
	// left edge. Negative for glyphs that render left of the pen.
	Left int

	// Top is the distance from the baseline up to the bitmap top edge.
	// Bitmaps hang from the baseline: place the top row at pen.y - Top.
	Top int

	// Advance is how far the pen moves after this glyph, in 26.6 fixed
	// point.
	Advance fixed.Int26_6
}

// Rasterize renders a single-byte character code through the active size.
// It reports false if the font has no usable glyph for the code; callers
// skip such characters.
func (f *Face) Rasterize(c byte) (Glyph, bool) {
	dr, mask, maskp, advance, ok := f.sized.Glyph(fixed.Point26_6{}, rune(c))
	if !ok {
		return Glyph{}, false
	}

	g := Glyph{
		Width:   dr.Dx(),
		Height:  dr.Dy(),
		Left:    dr.Min.X,
		Top:     -dr.Min.Y,
		Advance: advance,
	}
	g.Stride = g.Width
	g.Pix = make([]uint8, g.Width*g.Height)

	switch m := mask.(type) {
	case *image.Alpha:
		for y := 0; y < g.Height; y++ {
			off := m.PixOffset(maskp.X, maskp.Y+y)
			copy(g.Pix[y*g.Stride:(y+1)*g.Stride], m.Pix[off:off+g.Width])
		}
	default:
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				a := color.AlphaModel.Convert(mask.At(maskp.X+x, maskp.Y+y)).(color.Alpha)
				g.Pix[y*g.Stride+x] = a.A
			}
		}
	}
	return g, true
}
