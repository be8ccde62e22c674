package layout

import (
	"errors"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/textmetrics"
)

// fixedMetrics measures every rune as 6px wide and every line as 12px high.
type fixedMetrics struct{}

func (fixedMetrics) MeasureWidth(text string, _ textmetrics.Font) (float64, error) {
	return 6 * float64(utf8.RuneCountInString(text)), nil
}

func (fixedMetrics) EstimateHeight(textmetrics.Font) (float64, error) { return 12, nil }

func (m fixedMetrics) Truncate(text string, f textmetrics.Font, maxWidth float64) (string, error) {
	return textmetrics.Truncate(func(s string) (float64, error) { return m.MeasureWidth(s, f) }, text, maxWidth)
}

var errBroken = errors.New("metrics unavailable")

type brokenMetrics struct{ fixedMetrics }

func (brokenMetrics) MeasureWidth(string, textmetrics.Font) (float64, error) { return 0, errBroken }

func newTestEngine() *Engine {
	return New(DefaultConfig(), fixedMetrics{}, nil)
}

func points(labels ...string) []model.DataPoint {
	out := make([]model.DataPoint, len(labels))
	for i, l := range labels {
		out[i] = model.DataPoint{Identity: "p" + strconv.Itoa(i), Label: l, Color: "#336699"}
	}
	return out
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }
