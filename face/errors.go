package face

import "errors"

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("face: empty font data")
