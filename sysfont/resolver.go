// Package sysfont locates a usable font file on the host system.
//
// The default resolver asks the system font index for a generic sans-serif
// face. When that query is unavailable (minimal environments like an
// initrd have no font index) callers fall back to the fixed Fallback path.
package sysfont

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-text/typesetting/fontscan"
)

// Fallback is the font file consulted when the system font query is
// unavailable or its result cannot be loaded. There is no retry beyond it.
const Fallback = "/usr/share/fonts/fallback.ttf"

// ErrNoMatch is returned when the system font index has no usable match.
var ErrNoMatch = errors.New("sysfont: no matching system font")

// Resolver locates a font file for a label to load. Implementations return
// a filesystem path or an error; they never apply the fallback themselves.
type Resolver interface {
	Resolve() (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func() (string, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve() (string, error) { return f() }

// Match resolves fonts through the system font index.
//
// The zero value queries the default sans-serif family.
type Match struct {
	// Family is the family queried for. Empty means "sans-serif".
	Family string
}

// Resolve implements Resolver. Scanning the system fonts populates an
// on-disk index under the user cache directory; subsequent calls reuse it.
func (m Match) Resolve() (string, error) {
	family := m.Family
	if family == "" {
		family = "sans-serif"
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("sysfont: resolve font cache dir: %w", err)
	}

	fm := fontscan.NewFontMap(log.New(io.Discard, "", 0))
	if err := fm.UseSystemFonts(cacheDir); err != nil {
		return "", fmt.Errorf("sysfont: scan system fonts: %w", err)
	}

	location, ok := fm.FindSystemFont(family)
	if !ok {
		return "", ErrNoMatch
	}
	return location.File, nil
}
