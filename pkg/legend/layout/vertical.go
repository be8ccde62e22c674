package layout

import (
	"math"

	"github.com/matzehuels/legendkit/pkg/legend/model"
)

// vertical places the page's points top to bottom below the title. It
// returns the items that fit, the resolved legend width and the height the
// items cover.
//
// Unlike the horizontal pass, each item is truncated against the same
// ceiling only when its own text is wider than that ceiling. In auto-width
// mode the ceiling derives from a fraction of the parent width and the
// legend shrinks to the widest item; otherwise the last resolved width is
// kept so paging does not resize the legend.
func (p *pass) vertical(page []model.DataPoint, start int, title *TitleLayout) ([]ItemLayout, float64, float64, error) {
	c := p.cfg
	rowHeight := p.defaultPx + 2*c.TextIconPadding + p.delta
	rows := 1 + p.measureRows()

	running := c.TopHeight / 2
	if title != nil {
		running += title.Height * float64(title.Rows())
	}
	limit := p.parent.Height
	if c.Scrollable {
		if p.state.StartIndex > 0 {
			running += c.ArrowOffset
		}
		limit -= c.ArrowHeight
	}

	fraction := p.parent.Width * c.MaxWidthFactor
	fixed := !p.autoWidth && p.state.LastWidth > 0
	bound := fraction
	if fixed {
		bound = p.state.LastWidth
	}

	var widest float64
	items := make([]ItemLayout, 0, len(page))
	for i, pt := range page {
		if running+float64(rows-1)*rowHeight+rowHeight/2 > limit {
			break
		}
		iconShift := c.TextIconPadding + p.catalog.Width(pt.MarkerShape())/2 + p.delta
		ceiling := math.Max(0, bound-2*iconShift-c.EdgeMargin)

		natural, err := p.naturalWidth(pt)
		if err != nil {
			return nil, 0, 0, err
		}
		it, err := p.newItem(start+i, pt, ceiling, natural > ceiling)
		if err != nil {
			return nil, 0, 0, err
		}
		it.Glyph = model.Point{X: iconShift, Y: running}
		it.Text = model.Point{X: 2 * iconShift, Y: running + p.fontPx*c.TextYRatio}
		y := it.Text.Y
		for _, m := range []*MeasureLayout{it.Primary, it.Secondary} {
			if m == nil {
				continue
			}
			y += rowHeight
			m.Pos = model.Point{X: it.Text.X, Y: y}
			if err := p.placeIndicator(m); err != nil {
				return nil, 0, 0, err
			}
		}

		widest = math.Max(widest, natural+2*iconShift)
		items = append(items, it)
		running += float64(rows) * rowHeight
	}

	width := p.state.LastWidth
	if !fixed {
		width = fraction
		if w := math.Ceil(widest + c.EdgeMargin); w < fraction {
			width = w
		}
	}
	return items, width, running, nil
}
