package layout

import (
	"math"

	"github.com/matzehuels/legendkit/pkg/errors"
	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/marker"
	"github.com/matzehuels/legendkit/pkg/textmetrics"
)

// pass carries everything derived once per Compute call.
type pass struct {
	cfg     Config
	metrics textmetrics.Metrics
	catalog *marker.Catalog

	data      model.Data
	parent    model.Viewport
	pos       model.Position
	state     State
	autoWidth bool

	itemFont  textmetrics.Font
	titleFont textmetrics.Font
	fontPx    float64
	defaultPx float64
	delta     float64 // growth of the font over the default, never negative

	showPrimary   bool
	showSecondary bool

	truncations int
}

func (p *pass) measureRows() int {
	n := 0
	if p.showPrimary {
		n++
	}
	if p.showSecondary {
		n++
	}
	return n
}

func (p *pass) width(text string, f textmetrics.Font) (float64, error) {
	if text == "" {
		return 0, nil
	}
	w, err := p.metrics.MeasureWidth(text, f)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeMetrics, err, "measure %q", text)
	}
	return w, nil
}

// fit returns text unchanged when it is at most limit wide, and its
// ellipsis-truncated form otherwise.
func (p *pass) fit(text string, f textmetrics.Font, limit float64) (string, bool, error) {
	w, err := p.width(text, f)
	if err != nil {
		return "", false, err
	}
	if w <= limit {
		return text, false, nil
	}
	t, err := p.metrics.Truncate(text, f, math.Max(0, limit))
	if err != nil {
		return "", false, errors.Wrap(errors.ErrCodeMetrics, err, "truncate %q", text)
	}
	if !textmetrics.IsTruncated(text, t) {
		return t, false, nil
	}
	p.truncations++
	return t, true, nil
}

// naturalWidth is the widest of the label and the shown measures, plus room
// for trend indicators when any measure row is shown.
func (p *pass) naturalWidth(pt model.DataPoint) (float64, error) {
	w, err := p.width(pt.Label, p.itemFont)
	if err != nil {
		return 0, err
	}
	if p.showPrimary {
		pw, err := p.width(pt.PrimaryMeasure, p.itemFont)
		if err != nil {
			return 0, err
		}
		w = math.Max(w, pw)
	}
	if p.showSecondary {
		sw, err := p.width(pt.SecondaryMeasure, p.itemFont)
		if err != nil {
			return 0, err
		}
		w = math.Max(w, sw)
	}
	if p.measureRows() > 0 {
		w += p.cfg.IndicatorAllowance
	}
	return w, nil
}

// newItem fills the text fields of an item, truncating each string
// independently against limit. Positions are set by the caller.
func (p *pass) newItem(index int, pt model.DataPoint, limit float64, truncate bool) (ItemLayout, error) {
	it := ItemLayout{
		Key:        pt.Key(),
		Index:      index,
		Shape:      pt.MarkerShape(),
		GlyphWidth: p.catalog.Width(pt.MarkerShape()),
		Label:      pt.Label,
		Tooltip:    pt.Tooltip,
	}
	if it.Tooltip == "" {
		it.Tooltip = pt.Label
	}
	if p.showPrimary {
		it.Primary = &MeasureLayout{Text: pt.PrimaryMeasure, Tooltip: orDefault(pt.PrimaryTooltip, pt.PrimaryMeasure), Trend: pt.PrimaryTrend}
	}
	if p.showSecondary {
		it.Secondary = &MeasureLayout{Text: pt.SecondaryMeasure, Tooltip: orDefault(pt.SecondaryTooltip, pt.SecondaryMeasure), Trend: pt.SecondaryTrend}
	}
	if !truncate {
		return it, nil
	}

	var err error
	if it.Label, it.Truncated, err = p.fit(pt.Label, p.itemFont, limit); err != nil {
		return it, err
	}
	for _, m := range []*MeasureLayout{it.Primary, it.Secondary} {
		if m == nil {
			continue
		}
		if m.Text, m.Truncated, err = p.fit(m.Text, p.itemFont, limit); err != nil {
			return it, err
		}
	}
	return it, nil
}

// placeIndicator puts the trend triangle right of the measure text.
func (p *pass) placeIndicator(m *MeasureLayout) error {
	w, err := p.width(m.Text, p.itemFont)
	if err != nil {
		return err
	}
	m.Indicator = model.Point{
		X: m.Pos.X + w + p.cfg.IndicatorGap,
		Y: m.Pos.Y - p.cfg.IndicatorSize,
	}
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
