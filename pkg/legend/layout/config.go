package layout

import (
	"github.com/matzehuels/legendkit/pkg/errors"
	"github.com/matzehuels/legendkit/pkg/fonts"
)

// Config holds the fixed dimensions the layout engine works with. All
// lengths are pixels except DefaultFontSize, which is in points.
type Config struct {
	IconRadius      float64 `toml:"icon_radius" json:"icon_radius"`
	LineIconWidth   float64 `toml:"line_icon_width" json:"line_icon_width"`
	MaxTextLength   float64 `toml:"max_text_length" json:"max_text_length"`
	MaxTitleLength  float64 `toml:"max_title_length" json:"max_title_length"`
	TextIconPadding float64 `toml:"text_icon_padding" json:"text_icon_padding"`
	TitlePadding    float64 `toml:"title_padding" json:"title_padding"`
	EdgeMargin      float64 `toml:"edge_margin" json:"edge_margin"`
	MaxWidthFactor  float64 `toml:"max_width_factor" json:"max_width_factor"`
	TopHeight       float64 `toml:"top_height" json:"top_height"`
	ArrowOffset     float64 `toml:"arrow_offset" json:"arrow_offset"`
	ArrowHeight     float64 `toml:"arrow_height" json:"arrow_height"`
	ArrowWidth      float64 `toml:"arrow_width" json:"arrow_width"`
	DefaultFontSize float64 `toml:"default_font_size" json:"default_font_size"`

	// IndicatorAllowance is added to the text width of items that show a
	// measure row, leaving room for the trend triangle.
	IndicatorAllowance float64 `toml:"indicator_allowance" json:"indicator_allowance"`
	IndicatorSize      float64 `toml:"indicator_size" json:"indicator_size"`
	IndicatorGap       float64 `toml:"indicator_gap" json:"indicator_gap"`

	// IconYRatio and TextYRatio align glyph centres with the text baseline.
	IconYRatio float64 `toml:"icon_y_ratio" json:"icon_y_ratio"`
	TextYRatio float64 `toml:"text_y_ratio" json:"text_y_ratio"`

	// Scrollable enables pagination arrows. Without it the legend shows the
	// items that fit and silently drops the rest.
	Scrollable bool `toml:"scrollable" json:"scrollable"`

	ItemFontFamily  string `toml:"item_font_family" json:"item_font_family"`
	TitleFontFamily string `toml:"title_font_family" json:"title_font_family"`
}

// DefaultConfig returns the standard legend dimensions.
func DefaultConfig() Config {
	return Config{
		IconRadius:         5,
		LineIconWidth:      15,
		MaxTextLength:      60,
		MaxTitleLength:     80,
		TextIconPadding:    5,
		TitlePadding:       15,
		EdgeMargin:         10,
		MaxWidthFactor:     0.3,
		TopHeight:          24,
		ArrowOffset:        10,
		ArrowHeight:        15,
		ArrowWidth:         7.5,
		DefaultFontSize:    8,
		IndicatorAllowance: 15,
		IndicatorSize:      7,
		IndicatorGap:       3,
		IconYRatio:         0.52,
		TextYRatio:         0.35,
		Scrollable:         true,
		ItemFontFamily:     fonts.ItemFontFamily,
		TitleFontFamily:    fonts.TitleFontFamily,
	}
}

// Validate rejects negative lengths and a width factor outside (0, 1].
func (c Config) Validate() error {
	lengths := []struct {
		name string
		v    float64
	}{
		{"icon_radius", c.IconRadius},
		{"line_icon_width", c.LineIconWidth},
		{"max_text_length", c.MaxTextLength},
		{"max_title_length", c.MaxTitleLength},
		{"text_icon_padding", c.TextIconPadding},
		{"title_padding", c.TitlePadding},
		{"edge_margin", c.EdgeMargin},
		{"top_height", c.TopHeight},
		{"arrow_offset", c.ArrowOffset},
		{"arrow_height", c.ArrowHeight},
		{"arrow_width", c.ArrowWidth},
		{"indicator_allowance", c.IndicatorAllowance},
		{"indicator_size", c.IndicatorSize},
		{"indicator_gap", c.IndicatorGap},
	}
	for _, l := range lengths {
		if l.v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must not be negative, got %v", l.name, l.v)
		}
	}
	if c.DefaultFontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "default_font_size must be positive, got %v", c.DefaultFontSize)
	}
	if c.MaxWidthFactor <= 0 || c.MaxWidthFactor > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_width_factor must be in (0, 1], got %v", c.MaxWidthFactor)
	}
	return nil
}
