package legend

import (
	"github.com/matzehuels/legendkit/pkg/errors"
	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/legend/model"
)

// Widget is one legend instance.
type Widget struct {
	engine    *layout.Engine
	requested model.Position
	state     layout.State

	data   model.Data
	parent model.Viewport
	drawn  bool
}

// NewWidget returns a Top legend laid out by engine.
func NewWidget(engine *layout.Engine) *Widget {
	return &Widget{
		engine:    engine,
		requested: model.PositionTop,
		state:     layout.NewState(model.PositionTop),
	}
}

// SetOrientation sets the placement used by the next draw. The empty
// position means Top.
func (w *Widget) SetOrientation(p model.Position) {
	w.requested = layout.Normalize(p)
	w.state.Position = w.requested
}

// GetOrientation returns the placement of the last draw. It is None after
// drawing empty data.
func (w *Widget) GetOrientation() model.Position { return w.state.Position }

// IsVisible reports whether the legend is shown at all.
func (w *Widget) IsVisible() bool { return w.state.Position != model.PositionNone }

// Footprint returns the space the legend reserves in its parent.
func (w *Widget) Footprint() model.Viewport { return w.state.Footprint }

// State returns a copy of the pagination and sizing state.
func (w *Widget) State() layout.State { return w.state }

// ComputeLayout lays out data in parent, letting column legends shrink to
// their content.
func (w *Widget) ComputeLayout(data model.Data, parent model.Viewport) (layout.Layout, error) {
	w.data = data.Clone()
	w.parent = parent
	w.drawn = true
	return w.relayout(w.state, true)
}

// Navigate moves one page in direction d and lays out the last data again
// at the current width.
func (w *Widget) Navigate(d layout.Direction) (layout.Layout, error) {
	if !w.drawn {
		return layout.Layout{}, errors.New(errors.ErrCodeInvalidInput, "legend has not been drawn")
	}
	return w.relayout(w.state.Advance(d), false)
}

// ResetInteractionState is called by hosts when selections are cleared.
// The legend keeps no selection state, so it does nothing.
func (w *Widget) ResetInteractionState() {}

func (w *Widget) relayout(st layout.State, autoWidth bool) (layout.Layout, error) {
	// Empty data hides the legend for that draw only.
	st.Position = w.requested
	l, next, err := w.engine.Compute(w.data, w.parent, st, autoWidth)
	if err != nil {
		return layout.Layout{}, err
	}
	w.state = next
	return l, nil
}
