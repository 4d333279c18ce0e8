package label

import (
	"fmt"
	"image"

	"github.com/neonkingfr/plymouth/face"
	"github.com/neonkingfr/plymouth/pixel"
)

// Alignment specifies horizontal text alignment within the bounding box.
type Alignment int

const (
	// AlignLeft aligns each line to the left edge of the box (default).
	AlignLeft Alignment = iota
	// AlignCenter centers each line within the box.
	AlignCenter
	// AlignRight aligns each line to the right edge of the box.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Unconstrained is the width value meaning no minimum width constraint.
const Unconstrained = -1

// Control is the capability surface a host binds label controls to. It is
// implemented by *Label; hosts hold it instead of a concrete type so test
// doubles and alternative renderers can stand in.
type Control interface {
	Show(d pixel.Display, x, y int)
	Hide()
	Hidden() bool
	SetText(text string)
	SetAlignment(a Alignment)
	SetWidth(width int)
	SetFont(desc string)
	SetColor(r, g, b, a float64)
	Draw(buf *pixel.Buffer, clip image.Rectangle)
	Width() int
	Height() int
	Close() error
}

// Label is a text control rendered into a host-owned pixel buffer.
//
// A Label is created hidden, with no text and an unconstrained width. The
// font face is loaded once at construction; construction is the only
// operation that can fail. All methods must be called from a single
// goroutine.
type Label struct {
	display pixel.Display
	area    image.Rectangle

	alignment Alignment
	minWidth  int

	face *face.Face

	text  string
	color RGBA

	hidden bool
}

var _ Control = (*Label)(nil)

// New creates a hidden label with the default font. The font file comes
// from the configured resolver, falling back to the fixed fallback path
// when the resolver fails or its result cannot be loaded. If the fallback
// cannot be loaded either, New fails and no label is created.
func New(opts ...Option) (*Label, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Label{
		hidden:   true,
		minWidth: Unconstrained,
	}

	var f *face.Face
	path, err := cfg.resolver.Resolve()
	if err == nil {
		f, err = face.Load(path)
	}
	if err != nil {
		Logger().Info("label: trying font fallback",
			"error", err, "fallback", cfg.fallbackPath)
		f, err = face.Load(cfg.fallbackPath)
		if err != nil {
			return nil, fmt.Errorf("label: load font: %w", err)
		}
	}
	l.face = f

	return l, nil
}

// Close releases the font face and the owned text. The label must not be
// used afterwards.
func (l *Label) Close() error {
	l.text = ""
	if l.face == nil {
		return nil
	}
	err := l.face.Close()
	l.face = nil
	return err
}

// Width returns the cached bounding-box width. It is only meaningful while
// the label is visible.
func (l *Label) Width() int { return l.area.Dx() }

// Height returns the cached bounding-box height. It is only meaningful
// while the label is visible.
func (l *Label) Height() int { return l.area.Dy() }

// Hidden reports whether the label is hidden.
func (l *Label) Hidden() bool { return l.hidden }

// Bounds returns the cached bounding box.
func (l *Label) Bounds() image.Rectangle { return l.area }

// layout recomputes the bounding-box dimensions from the current text,
// face and width constraint. The origin is left untouched; only Show moves
// it. Hidden labels are not measured.
func (l *Label) layout() {
	if l.hidden {
		return
	}
	w, h := measureText(l.face, l.text, l.minWidth)
	l.area.Max = l.area.Min.Add(image.Pt(w, h))
}

// invalidate relayouts if requested and asks the display to repaint the
// area the label occupied before the change.
func (l *Label) invalidate(relayout bool) {
	if l.hidden || l.display == nil {
		return
	}
	dirty := l.area
	if relayout {
		l.layout()
	}
	l.display.DrawArea(dirty)
}

// Show makes the label visible on the given display with its bounding-box
// origin at (x, y), recomputing the layout. Showing an already visible
// label repositions and reassociates it; the previously occupied area is
// then exposed for repainting. On the first show there is no previous area
// and no stale damage is issued.
func (l *Label) Show(d pixel.Display, x, y int) {
	old := l.area

	l.display = d
	l.area = image.Rectangle{
		Min: image.Pt(x, y),
		Max: image.Pt(x+old.Dx(), y+old.Dy()),
	}
	l.hidden = false

	l.layout()

	if !old.Empty() {
		l.display.DrawArea(old)
	}
}

// Hide makes the label invisible, asks the display to repaint the area it
// occupied, and drops the display association.
func (l *Label) Hide() {
	l.hidden = true
	if l.display != nil {
		l.display.DrawArea(l.area)
	}
	l.display = nil
}

// SetText replaces the label text. Lines are separated by '\n'.
func (l *Label) SetText(text string) {
	l.text = text
	l.invalidate(true)
}

// SetAlignment sets the per-line alignment within the bounding box.
func (l *Label) SetAlignment(a Alignment) {
	if l.alignment == a {
		return
	}
	l.alignment = a
	l.invalidate(true)
}

// SetWidth sets the minimum bounding-box width in pixels, or Unconstrained.
// Alignment is computed against the actual box width, which may exceed it.
func (l *Label) SetWidth(width int) {
	if l.minWidth == width {
		return
	}
	l.minWidth = width
	l.invalidate(true)
}

// SetFont applies a font description of the form "Family 1[,Family 2[,..]]
// <size>[px]". Only the size is applied; family selection is not supported.
// An unparsable or missing size token keeps the current size.
func (l *Label) SetFont(desc string) {
	l.face.SetSize(desc)
	l.invalidate(true)
}

// SetColor sets the text color. Components are in [0, 1]. Color changes
// never affect layout.
func (l *Label) SetColor(r, g, b, a float64) {
	l.color = RGBA{R: r, G: g, B: b, A: a}
	l.invalidate(false)
}
