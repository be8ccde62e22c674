package sink

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strconv"

	"github.com/matzehuels/legendkit/pkg/fonts"
	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/marker"
)

const (
	defaultLabelColor = "#666666"
	defaultUpColor    = "#1aab40"
	defaultDownColor  = "#d64554"
	arrowColor        = "#666666"
)

// navigationJS turns arrow clicks into a "legendnavigate" event carrying
// the arrow's direction. Hosts listen for it and re-lay out the legend.
const navigationJS = `
    document.querySelectorAll('.navArrow').forEach(el => {
      el.addEventListener('click', () => el.dispatchEvent(new CustomEvent('legendnavigate', {
        bubbles: true, detail: { direction: el.dataset.type }
      })));
    });`

const navigationCSS = `
    .navArrow { cursor: pointer; }
    .legendItem text { user-select: none; }`

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	catalog       *marker.Catalog
	canvas        *model.Viewport
	background    string
	embedFonts    bool
	interactive   bool
	indicatorSize float64
}

// WithCanvas paints the legend at its anchor inside a canvas of the parent
// size instead of cropping the output to the legend footprint.
func WithCanvas(vp model.Viewport) SVGOption { return func(r *svgRenderer) { r.canvas = &vp } }

func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }
func WithFontEmbedding() SVGOption          { return func(r *svgRenderer) { r.embedFonts = true } }
func WithInteraction() SVGOption            { return func(r *svgRenderer) { r.interactive = true } }
func WithCatalog(c *marker.Catalog) SVGOption {
	return func(r *svgRenderer) { r.catalog = c }
}
func WithIndicatorSize(s float64) SVGOption { return func(r *svgRenderer) { r.indicatorSize = s } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	cfg := layout.DefaultConfig()
	r := svgRenderer{indicatorSize: cfg.IndicatorSize}
	for _, opt := range opts {
		opt(&r)
	}
	if r.catalog == nil {
		r.catalog = marker.NewCatalog(cfg.IconRadius, cfg.LineIconWidth)
	}
	return r
}

// RenderSVG paints a layout. data must be the data the layout was computed
// from; items are matched with their data points by key.
func RenderSVG(l layout.Layout, data model.Data, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	width, height := l.Footprint.Width, l.Footprint.Height
	var origin model.Point
	if r.canvas != nil {
		width, height = r.canvas.Width, r.canvas.Height
		origin = l.Translate()
	} else {
		origin = l.CenterOffset
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(width), num(height), num(width), num(height))

	if r.embedFonts {
		renderFontFaces(&buf)
	}
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", html.EscapeString(r.background))
	}

	fmt.Fprintf(&buf, `  <g class="legend" transform="translate(%s, %s)">`+"\n", num(origin.X), num(origin.Y))
	labelColor := data.LabelColor
	if labelColor == "" {
		labelColor = defaultLabelColor
	}
	if l.Title != nil {
		renderTitle(&buf, l, labelColor)
	}

	points := make(map[model.Key]model.DataPoint, len(data.DataPoints))
	for _, p := range data.DataPoints {
		points[p.Key()] = p
	}
	for _, it := range l.Items {
		r.renderItem(&buf, l, it, points[it.Key], data, labelColor)
	}
	for _, a := range l.NavigationArrows {
		fmt.Fprintf(&buf, `    <path class="navArrow" data-type="%s" d="%s" transform="translate(%s, %s) %s" fill="%s"/>`+"\n",
			a.DataType, a.Path, num(a.X), num(a.Y), a.RotateTransform, arrowColor)
	}
	buf.WriteString("  </g>\n")

	if r.interactive {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", navigationCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", navigationJS)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderFontFaces(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>\n    @font-face { font-family: '%s'; font-weight: normal; src: url(data:font/ttf;base64,%s); }\n",
		fonts.FontFamily, fonts.GoRegularBase64())
	fmt.Fprintf(buf, "    @font-face { font-family: '%s'; font-weight: bold; src: url(data:font/ttf;base64,%s); }\n  </style>\n",
		fonts.FontFamily, fonts.GoBoldBase64())
}

func renderTitle(buf *bytes.Buffer, l layout.Layout, color string) {
	t := l.Title
	f := l.TitleFont
	writeText(buf, "legendTitle", t.X, t.Y, f.Family, f.Pixels(), true, color, t.Text, t.Tooltip)
	for _, line := range []*layout.TitleLine{t.Primary, t.Secondary} {
		if line == nil {
			continue
		}
		writeText(buf, "legendTitle measureTitle", line.X, line.Y, f.Family, f.Pixels(), true, color, line.Text, line.Tooltip)
	}
}

func (r *svgRenderer) renderItem(buf *bytes.Buffer, l layout.Layout, it layout.ItemLayout, p model.DataPoint, data model.Data, labelColor string) {
	fmt.Fprintf(buf, `    <g class="legendItem" data-key="%s">`+"\n", html.EscapeString(it.Key.String()))

	scale := r.catalog.Scale(it.Shape)
	glyph := fmt.Sprintf(`d="%s" transform="translate(%s, %s) scale(%s)"`,
		r.catalog.Path(it.Shape), num(it.Glyph.X), num(it.Glyph.Y), num(scale))
	color := html.EscapeString(p.Color)
	switch {
	case p.IsLine() || it.Shape.IsLine():
		sw := max(2, r.catalog.StrokeWidth(it.Shape)) / scale
		dash := ""
		if da := p.LineStyle.DashArray(); da != "" {
			dash = fmt.Sprintf(` stroke-dasharray="%s"`, da)
		}
		fmt.Fprintf(buf, `      <path class="legendIcon" %s fill="none" stroke="%s" stroke-width="%s"%s/>`+"\n",
			glyph, color, num(sw), dash)
	case r.catalog.StrokeWidth(it.Shape) > 0:
		fmt.Fprintf(buf, `      <path class="legendIcon" %s fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
			glyph, color, num(r.catalog.StrokeWidth(it.Shape)/scale))
	default:
		fmt.Fprintf(buf, `      <path class="legendIcon" %s fill="%s"/>`+"\n", glyph, color)
	}

	f := l.ItemFont
	writeText(buf, "legendText", it.Text.X, it.Text.Y, f.Family, f.Pixels(), false, labelColor, it.Label, it.Tooltip)
	if it.Primary != nil {
		r.renderMeasure(buf, l, it.Primary, "primary", labelColor, data.PrimaryUpColor, data.PrimaryDownColor)
	}
	if it.Secondary != nil {
		r.renderMeasure(buf, l, it.Secondary, "secondary", labelColor, data.SecondaryUpColor, data.SecondaryDownColor)
	}
	buf.WriteString("    </g>\n")
}

func (r *svgRenderer) renderMeasure(buf *bytes.Buffer, l layout.Layout, m *layout.MeasureLayout, kind, labelColor, up, down string) {
	f := l.ItemFont
	writeText(buf, "legendMeasure "+kind, m.Pos.X, m.Pos.Y, f.Family, f.Pixels(), false, labelColor, m.Text, m.Tooltip)

	color, opacity := orDefault(up, defaultUpColor), "1"
	switch m.Trend {
	case model.TrendDown:
		color = orDefault(down, defaultDownColor)
	case model.TrendUnset:
		opacity = "0"
	}
	fmt.Fprintf(buf, `      <path class="indicator %s" d="%s" fill="%s" fill-opacity="%s"/>`+"\n",
		kind, indicatorPath(m.Indicator, r.indicatorSize, m.Trend), html.EscapeString(color), opacity)
}

// indicatorPath is a triangle in the s by s box at top-left p, pointing
// down for TrendDown and up otherwise.
func indicatorPath(p model.Point, s float64, t model.Trend) string {
	x, y := p.X, p.Y
	if t == model.TrendDown {
		return fmt.Sprintf("M%s %s L%s %s L%s %s Z", num(x), num(y), num(x+s), num(y), num(x+s/2), num(y+s))
	}
	return fmt.Sprintf("M%s %s L%s %s L%s %s Z", num(x), num(y+s), num(x+s/2), num(y), num(x+s), num(y+s))
}

func writeText(buf *bytes.Buffer, class string, x, y float64, family string, px float64, bold bool, color, text, tooltip string) {
	weight := ""
	if bold {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(buf, `      <text class="%s" x="%s" y="%s" font-family="%s" font-size="%spx"%s fill="%s"><title>%s</title>%s</text>`+"\n",
		class, num(x), num(y), html.EscapeString(family), num(px), weight, html.EscapeString(color),
		html.EscapeString(tooltip), html.EscapeString(text))
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
