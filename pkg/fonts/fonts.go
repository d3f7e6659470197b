// Package fonts registers the two faces used by rendered documents and
// measures text set in them.
//
// Poppins is loaded from a font directory when present. Any failure to read
// or parse a file falls back to the Go fonts compiled into the binary, so a
// registry always has a usable regular and bold face.
package fonts

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Style selects a face.
type Style int

const (
	Regular Style = iota
	Bold
)

func (s Style) String() string {
	if s == Bold {
		return "bold"
	}
	return "regular"
}

// File names looked up in the font directory.
const (
	RegularFile = "Poppins-Regular.ttf"
	BoldFile    = "Poppins-Bold.ttf"
)

// Font family names written into documents.
const (
	PreferredFamily = "Poppins"
	FallbackFamily  = "Go"
)

// FamilyStack is the CSS font-family list used for every text element.
const FamilyStack = `'Poppins', 'Go', 'Helvetica', sans-serif`

// measureSize is the point size faces are rasterised at for measurement.
// Widths scale linearly, so one face per font is enough.
const measureSize = 100

// Font is a registered face.
type Font struct {
	Family string
	Style  Style
	// Source is the file the face was loaded from, or "builtin".
	Source string
	// Fallback is true when the built-in face replaced the preferred one.
	Fallback bool
	// Err explains why the fallback was used. It is informational only.
	Err error

	data []byte

	mu   sync.Mutex
	face font.Face

	b64     string
	b64Once sync.Once
}

// Data returns the raw TTF bytes.
func (f *Font) Data() []byte { return f.data }

// Base64 returns the TTF bytes base64 encoded, for data URIs.
// The result is cached after first computation.
func (f *Font) Base64() string {
	f.b64Once.Do(func() {
		f.b64 = base64.StdEncoding.EncodeToString(f.data)
	})
	return f.b64
}

// Width returns the advance width of s in points when set at size.
func (f *Font) Width(s string, size float64) float64 {
	if s == "" || size <= 0 {
		return 0
	}
	f.mu.Lock()
	adv := font.MeasureString(f.face, s)
	f.mu.Unlock()
	return fixedToFloat(adv) * size / measureSize
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Registry holds the regular and bold faces.
type Registry struct {
	regular *Font
	bold    *Font
}

// Load registers fonts from dir. It never fails: faces that cannot be
// loaded are replaced by the built-in Go fonts and flagged as fallbacks.
func Load(dir string) *Registry {
	return &Registry{
		regular: loadFace(dir, RegularFile, Regular, goregular.TTF),
		bold:    loadFace(dir, BoldFile, Bold, gobold.TTF),
	}
}

// Builtin returns a registry using only the built-in Go fonts.
func Builtin() *Registry {
	return &Registry{
		regular: mustBuiltin(Regular, goregular.TTF, nil),
		bold:    mustBuiltin(Bold, gobold.TTF, nil),
	}
}

// Face returns the font for a style.
func (r *Registry) Face(s Style) *Font {
	if s == Bold {
		return r.bold
	}
	return r.regular
}

// Fonts returns both faces, regular first.
func (r *Registry) Fonts() []*Font {
	return []*Font{r.regular, r.bold}
}

// Width measures s in the given style and size.
func (r *Registry) Width(s string, style Style, size float64) float64 {
	return r.Face(style).Width(s, size)
}

// Fallback reports whether any face fell back to the built-in font.
func (r *Registry) Fallback() bool {
	return r.regular.Fallback || r.bold.Fallback
}

func loadFace(dir, name string, style Style, builtin []byte) *Font {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return mustBuiltin(style, builtin, err)
	}
	face, err := newFace(data)
	if err != nil {
		return mustBuiltin(style, builtin, fmt.Errorf("parse %s: %w", path, err))
	}
	return &Font{
		Family: PreferredFamily,
		Style:  style,
		Source: path,
		data:   data,
		face:   face,
	}
}

func mustBuiltin(style Style, data []byte, cause error) *Font {
	face, err := newFace(data)
	if err != nil {
		// The Go fonts are compiled in; failing to parse them is a broken build.
		panic(fmt.Sprintf("fonts: built-in %s face: %v", style, err))
	}
	return &Font{
		Family:   FallbackFamily,
		Style:    style,
		Source:   "builtin",
		Fallback: cause != nil,
		Err:      cause,
		data:     data,
		face:     face,
	}
}

func newFace(data []byte) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    measureSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
