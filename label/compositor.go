package label

import (
	"image"
	"image/color"

	"golang.org/x/image/math/fixed"

	"github.com/neonkingfr/plymouth/face"
	"github.com/neonkingfr/plymouth/pixel"
)

// Draw rasterizes the label text and alpha-blends it into buf.
//
// Hidden labels, bounding boxes that do not overlap clip, and zero-height
// buffers are all no-ops. Writes are clipped to the buffer bounds; the
// buffer is never resized.
func (l *Label) Draw(buf *pixel.Buffer, clip image.Rectangle) {
	if l.hidden {
		return
	}

	// Strict overlap test: reject only when the box lies entirely to one
	// side of the clip region. A box touching the clip edge still draws.
	if l.area.Min.X > clip.Max.X || l.area.Min.Y > clip.Max.Y ||
		l.area.Max.X < clip.Min.X || l.area.Max.Y < clip.Min.Y {
		return
	}

	if buf.Height() == 0 {
		return
	}

	renderText(l.face, buf, l.area, l.alignment, l.text, l.color)
}

// renderText walks each line of text, rasterizes each character and blends
// its bitmap into buf at the pen position.
//
// The pen is kept in 26.6 fixed point. Within the box, each line starts at
// the left edge shifted by the alignment share of the slack between the box
// width and the line width. The first baseline sits one ascender below the
// box top; later lines advance by the face line height.
func renderText(r Rasterizer, buf *pixel.Buffer, area image.Rectangle, align Alignment, text string, col RGBA) {
	m := r.Metrics()
	boxWidth := area.Dx()

	penY := fixed.I(area.Min.Y) + m.Ascent

	for t := text; t != ""; {
		penX := fixed.I(area.Min.X)

		switch align {
		case AlignCenter:
			penX += fixed.Int26_6(boxWidth-WidthOfLine(r, t)) << 5
		case AlignRight:
			penX += fixed.Int26_6(boxWidth-WidthOfLine(r, t)) << 6
		}

		i := 0
		for ; i < len(t) && t[i] != '\n'; i++ {
			g, ok := r.Rasterize(t[i])
			if !ok {
				Logger().Debug("label: skipping unrenderable character",
					"code", t[i])
				continue
			}

			// A negative left bearing grows the advance instead of
			// moving the pen back; the bitmap is placed at the pen
			// with no offset. A positive bearing shifts the bitmap
			// right as usual.
			extraAdvance, bearingX := 0, 0
			if g.Left < 0 {
				extraAdvance = -g.Left
			} else {
				bearingX = g.Left
			}

			blendGlyph(buf, g,
				penX.Floor()+bearingX,
				penY.Floor()-g.Top,
				col)

			penX += g.Advance + fixed.I(extraAdvance)
		}
		if i < len(t) {
			i++ // skip the newline
		}
		t = t[i:]

		penY += m.Height
	}
}

// blendGlyph alpha-blends a coverage bitmap into buf with its top-left
// corner at (x0, y0), clipped to the buffer bounds on all sides.
//
// Per pixel: effective alpha a = labelAlpha * coverage/255, each color
// channel becomes (1-a)*dst + a*src, and the destination alpha is
// overwritten with a*255. Destination alpha is deliberately not
// accumulated.
func blendGlyph(buf *pixel.Buffer, g face.Glyph, x0, y0 int, col RGBA) {
	width, height := buf.Width(), buf.Height()

	xStart := max(x0, 0)
	yStart := max(y0, 0)
	xEnd := min(x0+g.Width, width)
	yEnd := min(y0+g.Height, height)
	if xStart >= xEnd || yStart >= yEnd {
		return
	}

	src := col.Color().(color.NRGBA)
	rs, gs, bs := src.R, src.G, src.B

	pix := buf.Pix()
	for y := yStart; y < yEnd; y++ {
		row := g.Pix[(y-y0)*g.Stride:]
		for x := xStart; x < xEnd; x++ {
			cov := row[x-x0]
			alpha := float32(col.A) * (float32(cov) / 255)
			inv := 1 - alpha

			dst := pix[y*width+x]
			rd := uint8(inv*float32(uint8(dst>>16)) + alpha*float32(rs) + 0.5)
			gd := uint8(inv*float32(uint8(dst>>8)) + alpha*float32(gs) + 0.5)
			bd := uint8(inv*float32(uint8(dst)) + alpha*float32(bs) + 0.5)
			ad := uint8(alpha*255 + 0.5)

			pix[y*width+x] = uint32(ad)<<24 | uint32(rd)<<16 | uint32(gd)<<8 | uint32(bd)
		}
	}
}
