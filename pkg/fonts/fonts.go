// Package fonts provides the font files used to measure and paint legend text.
//
// The Go font family (regular and bold) ships with golang.org/x/image, so the
// OpenType text metrics in [github.com/matzehuels/legendkit/pkg/textmetrics]
// and the SVG sink can agree on glyph advances without any system fonts.
// The SVG sink can embed the same files as base64 @font-face rules.
package fonts

import (
	"encoding/base64"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// GoRegularTTF returns the regular-weight TTF data used for legend items.
func GoRegularTTF() []byte {
	return goregular.TTF
}

// GoBoldTTF returns the bold TTF data used for legend titles.
func GoBoldTTF() []byte {
	return gobold.TTF
}

// Cache for base64-encoded fonts (computed once on first access).
var (
	regularBase64     string
	regularBase64Once sync.Once
	boldBase64        string
	boldBase64Once    sync.Once
)

// GoRegularBase64 returns the regular TTF data as a base64 string.
// The result is cached after first computation.
func GoRegularBase64() string {
	regularBase64Once.Do(func() {
		regularBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return regularBase64
}

// GoBoldBase64 returns the bold TTF data as a base64 string.
// The result is cached after first computation.
func GoBoldBase64() string {
	boldBase64Once.Do(func() {
		boldBase64 = base64.StdEncoding.EncodeToString(gobold.TTF)
	})
	return boldBase64
}

// FontFamily is the CSS font-family name used for embedded Go fonts.
const FontFamily = "Go"

// ItemFontFamily is the default font stack for legend items.
const ItemFontFamily = `'Go', 'Segoe UI', helvetica, arial, sans-serif`

// TitleFontFamily is the default font stack for legend titles.
const TitleFontFamily = `'Go', 'Segoe UI Semibold', helvetica, arial, sans-serif`
