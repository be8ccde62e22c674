package textmetrics

import (
	"sort"
	"unicode/utf8"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// Font describes how a run of text is drawn.
type Font struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"` // points
	Bold   bool    `json:"bold,omitempty"`
}

// Pixels returns the font size in pixels.
func (f Font) Pixels() float64 { return PointsToPixels(f.Size) }

// PointsToPixels converts a size in points to pixels.
func PointsToPixels(pt float64) float64 { return pt * 96 / 72 }

// Metrics measures text for layout.
type Metrics interface {
	// MeasureWidth returns the advance width of text in pixels.
	MeasureWidth(text string, f Font) (float64, error)
	// EstimateHeight returns the line height of f in pixels.
	EstimateHeight(f Font) (float64, error)
	// Truncate shortens text with an ellipsis so it is at most maxWidth wide.
	Truncate(text string, f Font, maxWidth float64) (string, error)
}

// Truncate implements ellipsis truncation over any width function. The
// width of a prefix is assumed to grow with its length.
func Truncate(width func(string) (float64, error), text string, maxWidth float64) (string, error) {
	w, err := width(text)
	if err != nil {
		return "", err
	}
	if w <= maxWidth {
		return text, nil
	}

	runes := []rune(text)
	var measureErr error
	// Number of prefix runes that no longer fit together with the ellipsis.
	n := sort.Search(len(runes), func(k int) bool {
		if measureErr != nil {
			return true
		}
		w, err := width(string(runes[:k]) + Ellipsis)
		if err != nil {
			measureErr = err
			return true
		}
		return w > maxWidth
	})
	if measureErr != nil {
		return "", measureErr
	}
	if n == 0 {
		return "", nil
	}
	return string(runes[:n-1]) + Ellipsis, nil
}

// IsTruncated reports whether s ends with the ellipsis produced by Truncate
// while original does not.
func IsTruncated(original, s string) bool {
	if s == original {
		return false
	}
	if s == "" {
		return original != ""
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return string(r) == Ellipsis
}
