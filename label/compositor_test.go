package label

import (
	"image"
	"testing"

	"github.com/neonkingfr/plymouth/face"
	"github.com/neonkingfr/plymouth/pixel"
)

func newBuffer(t *testing.T, w, h int) *pixel.Buffer {
	t.Helper()

	b, err := pixel.New(w, h)
	if err != nil {
		t.Fatalf("failed to create %dx%d buffer: %v", w, h, err)
	}
	return b
}

// markerColumns returns the x coordinates of non-zero pixels in row y.
func markerColumns(b *pixel.Buffer, y int) []int {
	var cols []int
	for x := 0; x < b.Width(); x++ {
		if b.At(x, y) != 0 {
			cols = append(cols, x)
		}
	}
	return cols
}

func TestRenderText_AlignmentPenOffset(t *testing.T) {
	// A single-pixel marker glyph: 1x1 bitmap at the ascender, 5px
	// advance. With a 20px box and a 5px line, the expected pen offsets
	// are 0, (20-5)/2 and 20-5.
	r := newFakeRasterizer(map[byte]face.Glyph{
		'm': solidGlyph(1, 1, 0, 8, 5),
	})
	area := image.Rect(0, 0, 20, 10)
	white := RGBA{R: 1, G: 1, B: 1, A: 1}

	tests := []struct {
		name  string
		align Alignment
		wantX int
	}{
		{"left", AlignLeft, 0},
		{"center", AlignCenter, 7},
		{"right", AlignRight, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newBuffer(t, 40, 20)
			renderText(r, buf, area, tt.align, "m", white)

			cols := markerColumns(buf, 0)
			if len(cols) != 1 || cols[0] != tt.wantX {
				t.Errorf("marker drawn at columns %v, want [%d]", cols, tt.wantX)
			}
		})
	}
}

func TestRenderText_NegativeBearingDefersAdvance(t *testing.T) {
	// 'j' reaches 2px left of the pen. It is drawn at the pen position
	// with no offset, and the 2px are added to the next advance instead.
	r := newFakeRasterizer(map[byte]face.Glyph{
		'j': solidGlyph(1, 1, -2, 8, 4),
		'm': solidGlyph(1, 1, 0, 8, 4),
	})
	buf := newBuffer(t, 40, 20)

	renderText(r, buf, image.Rect(0, 0, 20, 10), AlignLeft, "jm", RGBA{R: 1, G: 1, B: 1, A: 1})

	cols := markerColumns(buf, 0)
	want := []int{0, 6}
	if len(cols) != 2 || cols[0] != want[0] || cols[1] != want[1] {
		t.Errorf("markers drawn at columns %v, want %v", cols, want)
	}
}

func TestRenderText_PositiveBearingOffsetsBitmap(t *testing.T) {
	r := newFakeRasterizer(map[byte]face.Glyph{
		'm': solidGlyph(1, 1, 3, 8, 5),
	})
	buf := newBuffer(t, 40, 20)

	renderText(r, buf, image.Rect(0, 0, 20, 10), AlignLeft, "m", RGBA{R: 1, G: 1, B: 1, A: 1})

	cols := markerColumns(buf, 0)
	if len(cols) != 1 || cols[0] != 3 {
		t.Errorf("marker drawn at columns %v, want [3]", cols)
	}
}

func TestRenderText_BaselinePlacement(t *testing.T) {
	// Bitmap top 5px above the baseline; the baseline sits at the 8px
	// ascender, so the top row lands at y = 8 - 5 = 3.
	r := newFakeRasterizer(map[byte]face.Glyph{
		'm': solidGlyph(1, 1, 0, 5, 5),
	})
	buf := newBuffer(t, 40, 20)

	renderText(r, buf, image.Rect(0, 0, 20, 10), AlignLeft, "m", RGBA{R: 1, G: 1, B: 1, A: 1})

	if got := buf.At(0, 3); got == 0 {
		t.Error("no pixel at (0, 3)")
	}
	for y := 0; y < buf.Height(); y++ {
		if y != 3 && buf.At(0, y) != 0 {
			t.Errorf("unexpected pixel at (0, %d)", y)
		}
	}
}

func TestRenderText_LineAdvance(t *testing.T) {
	// Second line baseline advances by the 10px face height:
	// row = ascender + height - top = 8 + 10 - 8 = 10.
	r := newFakeRasterizer(map[byte]face.Glyph{
		'm': solidGlyph(1, 1, 0, 8, 5),
	})
	buf := newBuffer(t, 40, 30)

	renderText(r, buf, image.Rect(0, 0, 20, 20), AlignLeft, "m\nm", RGBA{R: 1, G: 1, B: 1, A: 1})

	if buf.At(0, 0) == 0 {
		t.Error("first line marker missing at (0, 0)")
	}
	if buf.At(0, 10) == 0 {
		t.Error("second line marker missing at (0, 10)")
	}
}

func TestBlendGlyph_Formula(t *testing.T) {
	g := face.Glyph{
		Width:  2,
		Height: 2,
		Stride: 2,
		Pix:    []uint8{0, 51, 128, 255},
	}
	col := RGBA{R: 0.5, G: 0.25, B: 1, A: 0.8}

	buf := newBuffer(t, 2, 2)
	dst := uint32(0xff804020)
	for i := range buf.Pix() {
		buf.Pix()[i] = dst
	}

	blendGlyph(buf, g, 0, 0, col)

	rs := uint8(col.R * 255)
	gs := uint8(col.G * 255)
	bs := uint8(col.B * 255)
	for i, cov := range g.Pix {
		alpha := float32(col.A) * (float32(cov) / 255)
		inv := 1 - alpha
		wantR := uint8(inv*float32(uint8(dst>>16)) + alpha*float32(rs) + 0.5)
		wantG := uint8(inv*float32(uint8(dst>>8)) + alpha*float32(gs) + 0.5)
		wantB := uint8(inv*float32(uint8(dst)) + alpha*float32(bs) + 0.5)
		wantA := uint8(alpha*255 + 0.5)
		want := uint32(wantA)<<24 | uint32(wantR)<<16 | uint32(wantG)<<8 | uint32(wantB)

		if got := buf.Pix()[i]; got != want {
			t.Errorf("pixel %d (coverage %d) = %#08x, want %#08x", i, cov, got, want)
		}
	}
}

func TestBlendGlyph_ZeroCoverageLeavesColorChannels(t *testing.T) {
	g := face.Glyph{Width: 1, Height: 1, Stride: 1, Pix: []uint8{0}}

	buf := newBuffer(t, 1, 1)
	buf.Pix()[0] = 0xff804020

	blendGlyph(buf, g, 0, 0, RGBA{R: 1, G: 1, B: 1, A: 1})

	// Zero coverage keeps the color channels but overwrites the
	// destination alpha with zero. Destination alpha is not accumulated.
	if got := buf.Pix()[0]; got != 0x00804020 {
		t.Errorf("pixel = %#08x, want 0x00804020", got)
	}
}

func TestBlendGlyph_ClipsToBuffer(t *testing.T) {
	g := solidGlyph(4, 4, 0, 0, 4)
	buf := newBuffer(t, 3, 3)

	// Overhangs every edge in turn. Must never write outside the buffer.
	blendGlyph(buf, g, -2, -2, RGBA{R: 1, G: 1, B: 1, A: 1})
	blendGlyph(buf, g, 2, 2, RGBA{R: 1, G: 1, B: 1, A: 1})
	blendGlyph(buf, g, 5, 0, RGBA{R: 1, G: 1, B: 1, A: 1})
	blendGlyph(buf, g, 0, 5, RGBA{R: 1, G: 1, B: 1, A: 1})

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			inTopLeft := x <= 1 && y <= 1
			inBottomRight := x == 2 && y == 2
			if got := buf.At(x, y); (got != 0) != (inTopLeft || inBottomRight) {
				t.Errorf("unexpected pixel state at (%d, %d): %#08x", x, y, got)
			}
		}
	}
}
