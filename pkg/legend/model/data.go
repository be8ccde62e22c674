package model

// PrimaryType controls whether the primary measure row is shown.
type PrimaryType string

const (
	PrimaryNone       PrimaryType = "None"
	PrimaryValue      PrimaryType = "Value"
	PrimaryPercentage PrimaryType = "Percentage"
	PrimaryBoth       PrimaryType = "Both"
)

// ShowsPrimary reports whether primary measures are displayed.
// The zero value behaves like PrimaryNone.
func (t PrimaryType) ShowsPrimary() bool {
	return t != "" && t != PrimaryNone
}

// Data is the full input of one legend draw.
type Data struct {
	Title      string      `json:"title,omitempty"`
	DataPoints []DataPoint `json:"data_points"`

	// FontSize is in points. Zero selects the default size.
	FontSize   float64 `json:"font_size,omitempty"`
	FontFamily string  `json:"font_family,omitempty"`
	LabelColor string  `json:"label_color,omitempty"`

	PrimaryType        PrimaryType `json:"primary_type,omitempty"`
	PrimaryTitle       string      `json:"primary_title,omitempty"`
	SecondaryTitle     string      `json:"secondary_title,omitempty"`
	PrimaryUpColor     string      `json:"primary_up_color,omitempty"`
	PrimaryDownColor   string      `json:"primary_down_color,omitempty"`
	SecondaryUpColor   string      `json:"secondary_up_color,omitempty"`
	SecondaryDownColor string      `json:"secondary_down_color,omitempty"`
}

// Clone returns a deep copy, so callers can hand the copy to code that
// edits points without affecting the original.
func (d Data) Clone() Data {
	c := d
	if d.DataPoints != nil {
		c.DataPoints = make([]DataPoint, len(d.DataPoints))
		for i, p := range d.DataPoints {
			c.DataPoints[i] = p.clone()
		}
	}
	return c
}

// HasSecondary reports whether any point carries a secondary measure.
func (d Data) HasSecondary() bool {
	for _, p := range d.DataPoints {
		if p.SecondaryMeasure != "" {
			return true
		}
	}
	return false
}

// Viewport is a width/height pair in pixels.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsEmpty reports whether either dimension is zero or negative.
func (v Viewport) IsEmpty() bool { return v.Width <= 0 || v.Height <= 0 }

// Point is a pixel coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
