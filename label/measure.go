package label

import (
	"strings"

	"golang.org/x/image/font"

	"github.com/neonkingfr/plymouth/face"
)

// Rasterizer supplies glyphs and metrics for measurement and drawing.
// *face.Face implements it; tests substitute synthetic glyph sources.
type Rasterizer interface {
	// Rasterize renders a single-byte character code. It reports false
	// for characters without a usable glyph; those contribute nothing.
	Rasterize(c byte) (face.Glyph, bool)

	// Metrics returns the font metrics at the active size.
	Metrics() font.Metrics
}

var _ Rasterizer = (*face.Face)(nil)

// WidthOfLine measures the advance width, in whole pixels, of text up to
// the first '\n' or the end of the string.
//
// The pen never moves backward during drawing, so a glyph whose left
// bearing is negative (like 'j' in many fonts) grows the line by the
// magnitude of the bearing instead. Characters that fail to rasterize are
// skipped.
func WidthOfLine(r Rasterizer, text string) int {
	width := 0
	for i := 0; i < len(text) && text[i] != '\n'; i++ {
		g, ok := r.Rasterize(text[i])
		if !ok {
			continue
		}
		width += g.Advance.Floor()
		if g.Left < 0 {
			width += -g.Left
		}
	}
	return width
}

// measureText computes the bounding-box dimensions for text: the maximum
// line width (raised to minWidth when constrained) and the sum of per-line
// ascender-to-descender spans. Empty lines contribute zero width but a full
// line of height.
func measureText(r Rasterizer, text string, minWidth int) (width, height int) {
	m := r.Metrics()
	lineHeight := (m.Ascent + m.Descent).Floor()

	for t := text; t != ""; {
		w := WidthOfLine(r, t)
		if w > width {
			width = w
		}
		height += lineHeight

		nl := strings.IndexByte(t, '\n')
		if nl < 0 {
			break
		}
		t = t[nl+1:]
	}

	if width < minWidth {
		width = minWidth
	}
	return width, height
}
