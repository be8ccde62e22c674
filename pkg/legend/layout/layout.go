package layout

import (
	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/marker"
	"github.com/matzehuels/legendkit/pkg/textmetrics"
)

// Layout is the complete geometry of one legend draw. Coordinates of
// titles, items and arrows are relative to the legend group; the group
// itself is placed at Anchor plus CenterOffset inside the parent viewport.
type Layout struct {
	Position model.Position `json:"position"`

	// NumberOfItems is how many points of the current page fit.
	NumberOfItems int `json:"number_of_items"`

	// StartIndex is the index of Items[0] in the data points.
	StartIndex int `json:"start_index"`

	Title            *TitleLayout      `json:"title,omitempty"`
	NavigationArrows []NavigationArrow `json:"navigation_arrows,omitempty"`
	Items            []ItemLayout      `json:"items"`

	// Footprint is the space the legend reserves in its parent.
	Footprint model.Viewport `json:"footprint"`
	// Visible is the space actually covered by title, items and arrows.
	Visible      model.Viewport `json:"visible"`
	Anchor       model.Point    `json:"anchor"`
	CenterOffset model.Point    `json:"center_offset"`

	ItemFont  textmetrics.Font `json:"item_font"`
	TitleFont textmetrics.Font `json:"title_font"`

	// Truncations counts strings shortened with an ellipsis.
	Truncations int `json:"truncations,omitempty"`
}

// Translate returns the offset of the legend group inside its parent.
func (l Layout) Translate() model.Point {
	return model.Point{X: l.Anchor.X + l.CenterOffset.X, Y: l.Anchor.Y + l.CenterOffset.Y}
}

// Item returns the layout record for key, if that point is on the page.
func (l Layout) Item(key model.Key) (ItemLayout, bool) {
	for _, it := range l.Items {
		if it.Key == key {
			return it, true
		}
	}
	return ItemLayout{}, false
}

// TitleLayout positions the legend title and its optional measure titles.
type TitleLayout struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Text    string  `json:"text"`
	Tooltip string  `json:"tooltip"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`

	Primary   *TitleLine `json:"primary,omitempty"`
	Secondary *TitleLine `json:"secondary,omitempty"`
}

// Rows returns the number of lines the title block occupies.
func (t *TitleLayout) Rows() int {
	if t == nil {
		return 0
	}
	n := 1
	if t.Primary != nil {
		n++
	}
	if t.Secondary != nil {
		n++
	}
	return n
}

// TitleLine is a primary or secondary measure title.
type TitleLine struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Text    string  `json:"text"`
	Tooltip string  `json:"tooltip"`
}

// ItemLayout is the computed geometry of one data point.
type ItemLayout struct {
	Key   model.Key `json:"key"`
	Index int       `json:"index"`

	Shape      marker.Shape `json:"shape"`
	GlyphWidth float64      `json:"glyph_width"`
	Glyph      model.Point  `json:"glyph"`
	Text       model.Point  `json:"text"`

	Label     string `json:"label"`
	Tooltip   string `json:"tooltip"`
	Truncated bool   `json:"truncated,omitempty"`

	Primary   *MeasureLayout `json:"primary,omitempty"`
	Secondary *MeasureLayout `json:"secondary,omitempty"`
}

// MeasureLayout is one measure row of an item.
type MeasureLayout struct {
	Text      string      `json:"text"`
	Tooltip   string      `json:"tooltip"`
	Truncated bool        `json:"truncated,omitempty"`
	Pos       model.Point `json:"pos"`
	Trend     model.Trend `json:"trend"`

	// Indicator is the top-left corner of the trend triangle.
	Indicator model.Point `json:"indicator"`
}

// Direction names a navigation arrow.
type Direction string

const (
	Increase Direction = "Increase"
	Decrease Direction = "Decrease"
)

// ParseDirection accepts "increase"/"next" and "decrease"/"prev" in any case.
func ParseDirection(s string) (Direction, bool) {
	switch normalizeWord(s) {
	case "increase", "next", "forward":
		return Increase, true
	case "decrease", "prev", "previous", "back":
		return Decrease, true
	}
	return "", false
}

// NavigationArrow is a pagination control.
type NavigationArrow struct {
	X               float64   `json:"x"`
	Y               float64   `json:"y"`
	Path            string    `json:"path"`
	RotateTransform string    `json:"rotate_transform"`
	DataType        Direction `json:"data_type"`
}
