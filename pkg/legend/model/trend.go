package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Trend is the direction shown by a measure's indicator glyph.
type Trend int

const (
	// TrendUnset keeps the indicator glyph but paints it transparent.
	TrendUnset Trend = iota
	TrendUp
	TrendDown
)

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	}
	return ""
}

// Visible reports whether the indicator glyph is painted opaque.
func (t Trend) Visible() bool { return t != TrendUnset }

// MarshalJSON encodes up/down as true/false and unset as "".
func (t Trend) MarshalJSON() ([]byte, error) {
	switch t {
	case TrendUp:
		return []byte("true"), nil
	case TrendDown:
		return []byte("false"), nil
	}
	return []byte(`""`), nil
}

// UnmarshalJSON accepts booleans, "", null, and the strings "up"/"down".
func (t *Trend) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "true":
		*t = TrendUp
		return nil
	case "false":
		*t = TrendDown
		return nil
	case "null":
		*t = TrendUnset
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("trend: %w", err)
	}
	switch strings.ToLower(s) {
	case "":
		*t = TrendUnset
	case "up", "true":
		*t = TrendUp
	case "down", "false":
		*t = TrendDown
	default:
		return fmt.Errorf("trend: unknown value %q", s)
	}
	return nil
}
