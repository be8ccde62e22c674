package textmetrics

import "github.com/mattn/go-runewidth"

// Default ratios of the estimator, relative to the font size in pixels.
const (
	DefaultCharWidthRatio = 0.55
	DefaultBoldFactor     = 1.1
	DefaultLineHeight     = 1.2
)

// cells counts display columns independent of the process locale, so
// ambiguous-width runes such as the ellipsis always count as one cell.
var cells = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Estimator approximates text width from the number of display cells.
// It never fails.
type Estimator struct {
	CharWidthRatio float64
	BoldFactor     float64
	LineHeight     float64
}

// NewEstimator returns an estimator with the default ratios.
func NewEstimator() *Estimator {
	return &Estimator{
		CharWidthRatio: DefaultCharWidthRatio,
		BoldFactor:     DefaultBoldFactor,
		LineHeight:     DefaultLineHeight,
	}
}

func (e *Estimator) cellWidth(f Font) float64 {
	w := f.Pixels() * e.CharWidthRatio
	if f.Bold {
		w *= e.BoldFactor
	}
	return w
}

// MeasureWidth implements Metrics.
func (e *Estimator) MeasureWidth(text string, f Font) (float64, error) {
	return float64(cells.StringWidth(text)) * e.cellWidth(f), nil
}

// EstimateHeight implements Metrics.
func (e *Estimator) EstimateHeight(f Font) (float64, error) {
	return f.Pixels() * e.LineHeight, nil
}

// Truncate implements Metrics.
func (e *Estimator) Truncate(text string, f Font, maxWidth float64) (string, error) {
	return Truncate(func(s string) (float64, error) { return e.MeasureWidth(s, f) }, text, maxWidth)
}

var _ Metrics = (*Estimator)(nil)
