package layout

import (
	"math"

	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/marker"
)

// horizontal places the page's points left to right after the title and
// returns the items that fit together with the width they cover.
//
// Every item gets the same text budget: the space left after the title,
// split evenly over the page but never below MaxTextLength. An item whose
// text fits consumes its natural width; otherwise its strings are truncated
// and it consumes exactly the budget. Placement stops at the first item that
// would cross the right edge.
func (p *pass) horizontal(page []model.DataPoint, start int, title *TitleLayout) ([]ItemLayout, float64, error) {
	c := p.cfg
	baseline := c.TopHeight / 2
	fontMargin := c.TextIconPadding + p.delta

	var occupied float64
	if title != nil {
		occupied = title.Width
	}
	limit := p.parent.Width
	if c.Scrollable {
		if p.state.StartIndex > 0 {
			occupied += c.ArrowOffset
		}
		limit -= c.ArrowOffset
	}

	budget := c.MaxTextLength
	if n := float64(len(page)); n > 0 {
		available := math.Max(0, limit-occupied)
		pad := p.catalog.Width(marker.Circle) + fontMargin + 2*c.TextIconPadding
		budget = math.Max(c.MaxTextLength, math.Floor((available-pad*n)/n))
	}

	labelY := baseline + p.delta/2
	glyphY := baseline - c.IconRadius*c.IconYRatio + p.delta/2
	primaryY := 2*baseline + p.delta/2
	secondaryY := primaryY
	if p.showPrimary {
		secondaryY += baseline
	}

	items := make([]ItemLayout, 0, len(page))
	for i, pt := range page {
		markerWidth := p.catalog.Width(pt.MarkerShape())
		pad := markerWidth + fontMargin + 2*c.TextIconPadding

		natural, err := p.naturalWidth(pt)
		if err != nil {
			return nil, 0, err
		}
		fits := natural <= budget
		consumed := budget + pad
		if fits {
			consumed = natural + pad
		}
		if occupied+consumed > limit {
			break
		}

		it, err := p.newItem(start+i, pt, budget, !fits)
		if err != nil {
			return nil, 0, err
		}
		it.Glyph = model.Point{X: occupied + markerWidth/2, Y: glyphY}
		it.Text = model.Point{X: occupied + markerWidth + fontMargin, Y: labelY}
		if it.Primary != nil {
			it.Primary.Pos = model.Point{X: it.Text.X, Y: primaryY}
			if err := p.placeIndicator(it.Primary); err != nil {
				return nil, 0, err
			}
		}
		if it.Secondary != nil {
			it.Secondary.Pos = model.Point{X: it.Text.X, Y: secondaryY}
			if err := p.placeIndicator(it.Secondary); err != nil {
				return nil, 0, err
			}
		}

		items = append(items, it)
		occupied += consumed
	}
	return items, occupied, nil
}

// horizontalHeight is the height of a row legend including measure rows.
func (p *pass) horizontalHeight() float64 {
	return p.cfg.TopHeight + p.delta + float64(p.measureRows())*p.cfg.TopHeight/2
}
