package layout

import (
	"math"

	"github.com/matzehuels/legendkit/pkg/errors"
)

// titleMaxWidth is the widest a title line may be before truncation.
func (p *pass) titleMaxWidth() float64 {
	c := p.cfg
	if IsTopOrBottom(p.pos) {
		fontMargin := c.TextIconPadding + p.delta
		shift := c.IconRadius + fontMargin + c.TextIconPadding + c.IconRadius
		return math.Max(0, p.parent.Width*c.MaxWidthFactor-shift-c.EdgeMargin)
	}
	if p.delta == 0 {
		return c.MaxTitleLength
	}
	// Larger fonts get proportionally more room.
	return c.MaxTitleLength + c.MaxTitleLength/p.defaultPx*p.delta
}

// title lays out the title block, or returns nil when there is no title.
// Each line is truncated on its own; the block is as wide as its widest line.
func (p *pass) title() (*TitleLayout, error) {
	d := p.data
	if d.Title == "" {
		return nil, nil
	}
	height, err := p.metrics.EstimateHeight(p.titleFont)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMetrics, err, "title height")
	}

	t := &TitleLayout{Text: d.Title, Tooltip: d.Title, Height: height}
	if p.showPrimary && d.PrimaryTitle != "" {
		t.Primary = &TitleLine{Text: d.PrimaryTitle, Tooltip: d.PrimaryTitle}
	}
	if p.showSecondary && d.SecondaryTitle != "" {
		t.Secondary = &TitleLine{Text: d.SecondaryTitle, Tooltip: d.SecondaryTitle}
	}

	maxWidth := p.titleMaxWidth()
	if err := p.truncateTitle(t, maxWidth, maxWidth); err != nil {
		return nil, err
	}

	if IsTopOrBottom(p.pos) {
		t.Width += p.cfg.TitlePadding
		baseline := p.cfg.TopHeight / 2
		t.Y = baseline + p.delta/2
		// Measure titles share the rows of the measures they head.
		row := 2.0
		if p.showPrimary {
			if t.Primary != nil {
				t.Primary.Y = row*baseline + p.delta/2
			}
			row++
		}
		if t.Secondary != nil {
			t.Secondary.Y = row*baseline + p.delta/2
		}
		return t, nil
	}

	t.Y = height
	row := 2.0
	if t.Primary != nil {
		t.Primary.Y = row * height
		row++
	}
	if t.Secondary != nil {
		t.Secondary.Y = row * height
	}
	return t, nil
}

// retitle re-truncates a vertical title once the legend width is known.
func (p *pass) retitle(t *TitleLayout, legendWidth float64) error {
	if t == nil {
		return nil
	}
	t.Text = t.Tooltip
	if t.Primary != nil {
		t.Primary.Text = t.Primary.Tooltip
	}
	if t.Secondary != nil {
		t.Secondary.Text = t.Secondary.Tooltip
	}
	return p.truncateTitle(t, legendWidth, math.Max(0, legendWidth-p.cfg.EdgeMargin))
}

// truncateTitle fits the title to titleMax and the measure titles to
// measureMax, then sets Width to the widest resulting line.
func (p *pass) truncateTitle(t *TitleLayout, titleMax, measureMax float64) error {
	var err error
	if t.Text, _, err = p.fit(t.Text, p.titleFont, titleMax); err != nil {
		return err
	}
	width, err := p.width(t.Text, p.titleFont)
	if err != nil {
		return err
	}
	for _, line := range []*TitleLine{t.Primary, t.Secondary} {
		if line == nil {
			continue
		}
		if line.Text, _, err = p.fit(line.Text, p.titleFont, measureMax); err != nil {
			return err
		}
		w, err := p.width(line.Text, p.titleFont)
		if err != nil {
			return err
		}
		width = math.Max(width, w)
	}
	t.Width = width
	return nil
}
