// Package legend provides a stateful legend widget for chart visuals.
//
// A [Widget] wraps the pure layout engine in
// [github.com/matzehuels/legendkit/pkg/legend/layout] and keeps what a
// legend must remember between draws: its placement, the visible page and
// the width resolved by the last auto-width draw.
//
//	w := legend.NewWidget(layout.New(layout.DefaultConfig(), textmetrics.NewEstimator(), nil))
//	w.SetOrientation(model.PositionRight)
//	l, err := w.ComputeLayout(data, model.Viewport{Width: 800, Height: 600})
//	margin := w.Footprint() // reserve this space in the chart area
//
// When the user clicks a navigation arrow, call [Widget.Navigate] with the
// arrow's direction. It re-lays out the last data without resizing the
// legend.
//
// Painting is done by the sinks in
// [github.com/matzehuels/legendkit/pkg/legend/sink].
//
// A Widget is not safe for concurrent use. Each draw reads and then writes
// the widget state, so calls must be serialised by the host.
package legend
