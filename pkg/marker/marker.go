// Package marker is the catalog of legend glyph shapes.
//
// Every shape has an SVG path drawn around the origin at its nominal size,
// a stroke width, and a spacing width used by the layout engine. Renderers
// scale the path by [Catalog.Scale] so every glyph occupies the same icon box.
package marker

import "strings"

// Shape names a glyph.
type Shape string

const (
	Circle    Shape = "circle"
	Square    Shape = "square"
	Diamond   Shape = "diamond"
	Triangle  Shape = "triangle"
	X         Shape = "x"
	LongDash  Shape = "longDash"
	ShortDash Shape = "shortDash"
)

// Shapes lists every known shape.
var Shapes = []Shape{Circle, Square, Diamond, Triangle, X, LongDash, ShortDash}

// ParseShape converts a case-insensitive name into a Shape.
func ParseShape(s string) (Shape, bool) {
	for _, sh := range Shapes {
		if strings.EqualFold(string(sh), s) {
			return sh, true
		}
	}
	return "", false
}

// IsLine reports whether the shape is drawn as a horizontal stroke.
func (s Shape) IsLine() bool { return s == LongDash || s == ShortDash }

type glyph struct {
	path        string
	strokeWidth float64
	size        float64
}

var glyphs = map[Shape]glyph{
	Circle:    {path: "M 0 0 m -5 0 a 5 5 0 1 0 10 0 a 5 5 0 1 0 -10 0", strokeWidth: 0, size: 10},
	Square:    {path: "M -5 -5 l 10 0 l 0 10 l -10 0 z", strokeWidth: 0, size: 10},
	Diamond:   {path: "M -5 0 l 5 -5 l 5 5 l -5 5 z", strokeWidth: 0, size: 10},
	Triangle:  {path: "M -5 4.33 l 5 -8.66 l 5 8.66 z", strokeWidth: 0, size: 10},
	X:         {path: "M -4 -4 L 4 4 M -4 4 L 4 -4", strokeWidth: 2, size: 8},
	LongDash:  {path: "M -7.5 0 L 7.5 0", strokeWidth: 2, size: 15},
	ShortDash: {path: "M -3 0 L 3 0", strokeWidth: 2, size: 6},
}

// Catalog looks up glyph geometry. The zero value is not usable; build one
// with [NewCatalog].
type Catalog struct {
	iconRadius    float64
	lineIconWidth float64
}

// NewCatalog returns a catalog whose icons fit a circle of iconRadius, with
// long dashes drawn lineIconWidth wide.
func NewCatalog(iconRadius, lineIconWidth float64) *Catalog {
	return &Catalog{iconRadius: iconRadius, lineIconWidth: lineIconWidth}
}

func lookup(s Shape) glyph {
	if g, ok := glyphs[s]; ok {
		return g
	}
	return glyphs[Circle]
}

// Path returns the SVG path of the shape. Unknown shapes fall back to a circle.
func (c *Catalog) Path(s Shape) string { return lookup(s).path }

// StrokeWidth returns the outline width the shape is drawn with.
func (c *Catalog) StrokeWidth(s Shape) float64 { return lookup(s).strokeWidth }

// Size returns the nominal extent of the unscaled path.
func (c *Catalog) Size(s Shape) float64 { return lookup(s).size }

// Width returns the horizontal space the glyph occupies in a legend row.
func (c *Catalog) Width(s Shape) float64 {
	if s == LongDash {
		return c.lineIconWidth
	}
	return c.iconRadius * 2
}

// Scale returns the factor that maps the nominal path onto Width.
func (c *Catalog) Scale(s Shape) float64 {
	size := c.Size(s)
	if size <= 0 {
		return 1
	}
	return c.Width(s) / size
}
