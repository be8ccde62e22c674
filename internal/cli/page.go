package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/marker"
	"github.com/matzehuels/legendkit/pkg/pipeline"
)

var (
	pagerDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	pagerArrowStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	pagerHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	trendUpStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	trendDownStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

// pageCommand creates the interactive pager.
func (c *CLI) pageCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "page [data.json]",
		Short: "Browse the pages of a legend in the terminal",
		Long: `Browse the pages of a legend in the terminal.

The legend is laid out for the viewport exactly as 'render' would lay it
out. ←/→ follow the navigation arrows, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPage(cmd.Context(), args[0], flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *CLI) runPage(ctx context.Context, input string, flags layoutFlags) error {
	opts := c.baseOptions()
	if err := flags.apply(&opts); err != nil {
		return err
	}
	data, err := pipeline.Load(input, &opts)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}

	runner, err := c.newRunner()
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	l, st, err := runner.ComputeLayout(ctx, data, opts)
	if err != nil {
		return err
	}
	for i := 0; i < opts.Page && l.HasNext(); i++ {
		if l, st, err = runner.Paginate(ctx, data, st, layout.Increase, opts); err != nil {
			return err
		}
	}

	m := newPagerModel(ctx, runner, data, opts, l, st)
	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// pagerModel - Interactive legend pager
// =============================================================================

// paginator is the part of the pipeline runner the pager uses.
type paginator interface {
	Paginate(ctx context.Context, data model.Data, st layout.State, d layout.Direction, opts pipeline.Options) (layout.Layout, layout.State, error)
}

// pagerModel is the bubbletea model for browsing legend pages.
type pagerModel struct {
	ctx    context.Context
	runner paginator
	data   model.Data
	opts   pipeline.Options
	points map[model.Key]model.DataPoint

	layout layout.Layout
	state  layout.State
	err    error
}

func newPagerModel(ctx context.Context, runner paginator, data model.Data, opts pipeline.Options, l layout.Layout, st layout.State) pagerModel {
	points := make(map[model.Key]model.DataPoint, len(data.DataPoints))
	for _, p := range data.DataPoints {
		points[p.Key()] = p
	}
	return pagerModel{ctx: ctx, runner: runner, data: data, opts: opts, points: points, layout: l, state: st}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l", "n", "pgdown":
		if m.layout.HasNext() {
			return m.navigate(layout.Increase), nil
		}
	case "left", "h", "p", "pgup":
		if m.layout.HasPrevious() {
			return m.navigate(layout.Decrease), nil
		}
	}
	return m, nil
}

func (m pagerModel) navigate(d layout.Direction) pagerModel {
	l, st, err := m.runner.Paginate(m.ctx, m.data, m.state, d, m.opts)
	if err != nil {
		m.err = err
		return m
	}
	m.layout, m.state, m.err = l, st, nil
	return m
}

func (m pagerModel) View() string {
	var b strings.Builder

	title := "Legend"
	if t := m.layout.Title; t != nil {
		title = t.Tooltip
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("  ")
	b.WriteString(pagerDimStyle.Render(fmt.Sprintf("%s · %gx%g", m.layout.Position, m.opts.Width, m.opts.Height)))
	b.WriteString("\n")
	b.WriteString(pagerDimStyle.Render("←/→ page  q quit"))
	b.WriteString("\n\n")

	if len(m.layout.Items) == 0 {
		b.WriteString(pagerDimStyle.Render("  (legend hidden)"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.itemTable())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.arrowHint(layout.Decrease, "◀"))
	b.WriteString(" ")
	b.WriteString(pageRange(m.layout, len(m.data.DataPoints)))
	b.WriteString(" ")
	b.WriteString(m.arrowHint(layout.Increase, "▶"))
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styleIconError.Render(iconError + " " + m.err.Error()))
	}
	return b.String()
}

func (m pagerModel) arrowHint(d layout.Direction, glyph string) string {
	shown := (d == layout.Increase && m.layout.HasNext()) || (d == layout.Decrease && m.layout.HasPrevious())
	if shown {
		return pagerArrowStyle.Render(glyph)
	}
	return pagerDimStyle.Render(" ")
}

func (m pagerModel) itemTable() string {
	headers := []string{"", "Label"}
	if m.data.PrimaryType.ShowsPrimary() {
		headers = append(headers, orDash(m.data.PrimaryTitle))
	}
	if m.data.HasSecondary() {
		headers = append(headers, orDash(m.data.SecondaryTitle))
	}

	rows := make([][]string, 0, len(m.layout.Items))
	for _, it := range m.layout.Items {
		p := m.points[it.Key]
		glyph := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(glyphRune(it, p))
		label := it.Label
		if it.Truncated {
			label = StyleTruncated.Render(label)
		}
		row := []string{glyph, label}
		if m.data.PrimaryType.ShowsPrimary() {
			row = append(row, measureCell(it.Primary))
		}
		if m.data.HasSecondary() {
			row = append(row, measureCell(it.Secondary))
		}
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return pagerHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}

func glyphRune(it layout.ItemLayout, p model.DataPoint) string {
	if p.IsLine() {
		return "━━"
	}
	switch it.Shape {
	case marker.Square:
		return "■"
	case marker.Diamond:
		return "◆"
	case marker.Triangle:
		return "▲"
	case marker.X:
		return "✕"
	}
	return "●"
}

func measureCell(ml *layout.MeasureLayout) string {
	if ml == nil {
		return ""
	}
	switch ml.Trend {
	case model.TrendUp:
		return ml.Text + " " + trendUpStyle.Render("▲")
	case model.TrendDown:
		return ml.Text + " " + trendDownStyle.Render("▼")
	}
	return ml.Text
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
