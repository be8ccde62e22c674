package model

import (
	"strconv"

	"github.com/matzehuels/legendkit/pkg/marker"
)

// NoLayer is the Key.Layer value of a data point without a layer number.
const NoLayer = -1

// LineStyle is the stroke pattern of a line-series glyph.
// The zero value means the series is not a line and its glyph is filled.
type LineStyle string

const (
	LineStyleNone    LineStyle = ""
	LineStyleSolid   LineStyle = "solid"
	LineStyleDashed  LineStyle = "dashed"
	LineStyleDotted  LineStyle = "dotted"
	LineStyleDotDash LineStyle = "dotdash"
	LineStyleDashDot LineStyle = "dashdot"
)

// DashArray returns the SVG stroke-dasharray for the style, or "" for a
// continuous stroke.
func (s LineStyle) DashArray() string {
	switch s {
	case LineStyleDashed:
		return "7,5"
	case LineStyleDotted:
		return "2.5,3.1"
	case LineStyleDotDash:
		return "2.5,3.1,7,3.1"
	case LineStyleDashDot:
		return "7,3.1,2.5,3.1"
	}
	return ""
}

// Key identifies a data point within one legend.
type Key struct {
	Identity string `json:"identity"`
	Layer    int    `json:"layer"`
}

// String renders the key as "identity" or "identity#layer".
func (k Key) String() string {
	if k.Layer == NoLayer {
		return k.Identity
	}
	return k.Identity + "#" + strconv.Itoa(k.Layer)
}

// DataPoint is one legend item.
type DataPoint struct {
	Identity    string       `json:"identity"`
	Label       string       `json:"label"`
	Color       string       `json:"color"`
	Marker      marker.Shape `json:"marker,omitempty"`
	LineStyle   LineStyle    `json:"line_style,omitempty"`
	LayerNumber *int         `json:"layer_number,omitempty"`

	// Tooltip overrides the hover text. When empty the original, untruncated
	// label is used.
	Tooltip string `json:"tooltip,omitempty"`

	PrimaryMeasure   string `json:"primary_measure,omitempty"`
	PrimaryTrend     Trend  `json:"primary_indicator,omitempty"`
	PrimaryTooltip   string `json:"primary_tooltip,omitempty"`
	SecondaryMeasure string `json:"secondary_measure,omitempty"`
	SecondaryTrend   Trend  `json:"secondary_indicator,omitempty"`
	SecondaryTooltip string `json:"secondary_tooltip,omitempty"`
}

// Key returns the identity/layer pair of the point.
func (p DataPoint) Key() Key {
	k := Key{Identity: p.Identity, Layer: NoLayer}
	if p.LayerNumber != nil {
		k.Layer = *p.LayerNumber
	}
	return k
}

// MarkerShape returns the glyph shape, defaulting to a circle.
func (p DataPoint) MarkerShape() marker.Shape {
	if p.Marker == "" {
		return marker.Circle
	}
	return p.Marker
}

// IsLine reports whether the glyph is stroked as a line series.
func (p DataPoint) IsLine() bool { return p.LineStyle != LineStyleNone }

func (p DataPoint) clone() DataPoint {
	c := p
	if p.LayerNumber != nil {
		n := *p.LayerNumber
		c.LayerNumber = &n
	}
	return c
}
