package layout

import (
	"math"

	"github.com/matzehuels/legendkit/pkg/errors"
	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/marker"
	"github.com/matzehuels/legendkit/pkg/textmetrics"
)

// Engine computes legend layouts. It holds no per-legend state and is safe
// for concurrent use when its Metrics implementation is.
type Engine struct {
	cfg     Config
	metrics textmetrics.Metrics
	catalog *marker.Catalog
}

// New returns an engine measuring text with m. A nil catalog selects one
// sized from cfg.
func New(cfg Config, m textmetrics.Metrics, catalog *marker.Catalog) *Engine {
	if catalog == nil {
		catalog = marker.NewCatalog(cfg.IconRadius, cfg.LineIconWidth)
	}
	return &Engine{cfg: cfg, metrics: m, catalog: catalog}
}

// Config returns the dimensions the engine lays out with.
func (e *Engine) Config() Config { return e.cfg }

// Catalog returns the marker catalog used for glyph widths.
func (e *Engine) Catalog() *marker.Catalog { return e.catalog }

// Metrics returns the text measurer.
func (e *Engine) Metrics() textmetrics.Metrics { return e.metrics }

// Compute lays out data inside parent, starting from the page recorded in
// prev, and returns the layout together with the state for the next draw.
//
// autoWidth lets a column legend shrink to its content; arrow navigation
// passes false so the width resolved by the previous draw is kept.
//
// data is never modified. On error no layout is produced and prev is
// returned unchanged.
func (e *Engine) Compute(data model.Data, parent model.Viewport, prev State, autoWidth bool) (Layout, State, error) {
	st := prev
	st.Position = Normalize(st.Position)
	points := data.DataPoints

	if len(points) == 0 {
		st.Position = model.PositionNone
		st.StartIndex = 0
		st.History = nil
		st.Footprint = model.Viewport{}
		st.Visible = model.Viewport{}
		return Layout{Position: model.PositionNone, Items: []ItemLayout{}}, st, nil
	}
	if err := checkKeys(points); err != nil {
		return Layout{}, prev, err
	}
	st = st.clamp(len(points))

	if st.Position == model.PositionNone || parent.IsEmpty() {
		st.Footprint = model.Viewport{}
		st.Visible = model.Viewport{}
		return Layout{Position: st.Position, StartIndex: st.StartIndex, Items: []ItemLayout{}}, st, nil
	}

	p := e.newPass(data, parent, st, autoWidth)
	title, err := p.title()
	if err != nil {
		return Layout{}, prev, err
	}

	var (
		items     []ItemLayout
		footprint model.Viewport
		visible   model.Viewport
	)
	page := points[st.StartIndex:]
	if IsTopOrBottom(st.Position) {
		var occupied float64
		if items, occupied, err = p.horizontal(page, st.StartIndex, title); err != nil {
			return Layout{}, prev, err
		}
		footprint = model.Viewport{Width: parent.Width, Height: p.horizontalHeight()}
		visible = model.Viewport{Width: occupied, Height: footprint.Height}
	} else {
		var width, used float64
		if items, width, used, err = p.vertical(page, st.StartIndex, title); err != nil {
			return Layout{}, prev, err
		}
		if err := p.retitle(title, width); err != nil {
			return Layout{}, prev, err
		}
		footprint = model.Viewport{Width: width, Height: parent.Height}
		visible = model.Viewport{Width: width, Height: math.Min(used, parent.Height)}
		st.LastWidth = width
	}

	var dirs []Direction
	if e.cfg.Scrollable {
		st, dirs = st.paginate(len(items), len(points))
	} else {
		st.WindowSize = len(items)
	}
	st.Footprint = footprint
	st.Visible = visible

	l := Layout{
		Position:         st.Position,
		NumberOfItems:    len(items),
		StartIndex:       st.StartIndex,
		Title:            title,
		NavigationArrows: p.arrows(dirs, title, footprint),
		Items:            items,
		Footprint:        footprint,
		Visible:          visible,
		ItemFont:         p.itemFont,
		TitleFont:        p.titleFont,
		Truncations:      p.truncations,
	}
	l.Anchor, l.CenterOffset = anchor(st.Position, parent, footprint, visible, l.HasNext())
	return l, st, nil
}

func (e *Engine) newPass(data model.Data, parent model.Viewport, st State, autoWidth bool) *pass {
	size := data.FontSize
	if size <= 0 {
		size = e.cfg.DefaultFontSize
	}
	itemFamily, titleFamily := e.cfg.ItemFontFamily, e.cfg.TitleFontFamily
	if data.FontFamily != "" {
		itemFamily, titleFamily = data.FontFamily, data.FontFamily
	}
	p := &pass{
		cfg:           e.cfg,
		metrics:       e.metrics,
		catalog:       e.catalog,
		data:          data,
		parent:        parent,
		pos:           st.Position,
		state:         st,
		autoWidth:     autoWidth,
		itemFont:      textmetrics.Font{Family: itemFamily, Size: size},
		titleFont:     textmetrics.Font{Family: titleFamily, Size: size, Bold: true},
		fontPx:        textmetrics.PointsToPixels(size),
		defaultPx:     textmetrics.PointsToPixels(e.cfg.DefaultFontSize),
		showPrimary:   data.PrimaryType.ShowsPrimary(),
		showSecondary: data.HasSecondary(),
	}
	p.delta = math.Max(0, p.fontPx-p.defaultPx)
	return p
}

// anchor places the legend group along the parent edge its position names
// and, for centered positions, centres the covered area along the legend's
// axis. A legend that still has a next page fills its axis and is not
// centred.
func anchor(pos model.Position, parent, footprint, visible model.Viewport, hasNext bool) (model.Point, model.Point) {
	var at, center model.Point
	if isBottom(pos) {
		at.Y = parent.Height - footprint.Height
	}
	if isRight(pos) {
		at.X = parent.Width - footprint.Width
	}
	if !IsCentered(pos) || hasNext {
		return at, center
	}
	if IsTopOrBottom(pos) {
		center.X = math.Max(0, (parent.Width-visible.Width)/2)
	} else {
		center.Y = math.Max(0, (parent.Height-visible.Height)/2)
	}
	return at, center
}

func checkKeys(points []model.DataPoint) error {
	seen := make(map[model.Key]int, len(points))
	for i, pt := range points {
		k := pt.Key()
		if j, ok := seen[k]; ok {
			return errors.New(errors.ErrCodeDuplicateKey, "data points %d and %d share key %q", j, i, k)
		}
		seen[k] = i
	}
	return nil
}

// HasNext reports whether the layout shows an Increase arrow.
func (l Layout) HasNext() bool { return l.hasArrow(Increase) }

// HasPrevious reports whether the layout shows a Decrease arrow.
func (l Layout) HasPrevious() bool { return l.hasArrow(Decrease) }

func (l Layout) hasArrow(d Direction) bool {
	for _, a := range l.NavigationArrows {
		if a.DataType == d {
			return true
		}
	}
	return false
}
