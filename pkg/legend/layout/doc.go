// Package layout computes the geometry of a chart legend.
//
// # Overview
//
// Given legend data, the viewport of the parent chart area and the state of
// the previous draw, [Engine.Compute] decides how many items of the current
// page fit, where every glyph, label, measure row and trend indicator goes,
// which strings are truncated with an ellipsis, and which pagination arrows
// are shown. It returns a [Layout] value and the [State] for the next draw;
// nothing is mutated in place.
//
//	engine := layout.New(layout.DefaultConfig(), textmetrics.NewEstimator(), nil)
//	l, next, err := engine.Compute(data, model.Viewport{Width: 640, Height: 400},
//	    layout.NewState(model.PositionTop), true)
//
// # Orientation
//
// Top and bottom positions (and their centered variants) lay items out in a
// row; left and right positions in a column. See [IsTopOrBottom],
// [IsLeftOrRight] and [IsCentered]. An unset position means Top.
//
// # Row legends
//
// Items are placed left to right after the title. The text budget per item
// is the remaining width split evenly over the page, never less than
// [Config.MaxTextLength]. Items that fit consume their natural width,
// others are truncated and consume the budget. The first item that would
// cross the right edge ends the page.
//
// # Column legends
//
// Items are stacked below the title, one row per item plus one row per
// shown measure. With auto width the legend shrinks to its widest item but
// never exceeds [Config.MaxWidthFactor] of the parent width; during arrow
// navigation the previous width is kept.
//
// # Pagination
//
// [State.StartIndex] selects the first item of the page and is clamped to
// the data on every pass. [State.Advance] jumps by the size of the last
// computed page. On the last page the jump size is rolled back to the
// previous page's size, so one Increase followed by one Decrease always
// returns to the starting page.
//
// # Errors
//
// A failing [textmetrics.Metrics] aborts the pass with an
// [errors.ErrCodeMetrics] error and no partial layout. Two data points with
// the same identity and layer fail with [errors.ErrCodeDuplicateKey].
//
// [errors.ErrCodeMetrics]: github.com/matzehuels/legendkit/pkg/errors
// [errors.ErrCodeDuplicateKey]: github.com/matzehuels/legendkit/pkg/errors
package layout
