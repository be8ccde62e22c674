// Package pkg provides the core libraries of legendkit, a chart legend
// layout engine.
//
// # Overview
//
// Given the series of a chart, a placement and the pixel size of the chart
// area, legendkit decides which items fit, truncates labels that are too
// long, adds navigation arrows when the legend spans several pages, and
// reports how much space the legend takes from the chart. Painting is a
// thin step on top of the computed geometry.
//
// # Architecture
//
// The data flow:
//
//	Data document (JSON)
//	         ↓
//	    [io] package (decode, validate, fill identities)
//	         ↓
//	    [legend/layout] package (measure, place, paginate)
//	         ↓
//	    [legend/sink] package (SVG, PNG, PDF, JSON)
//
// [pipeline] wires the stages together with caching and is shared by the
// CLI and the HTTP server.
//
// # Quick Start
//
//	engine := layout.New(layout.DefaultConfig(), textmetrics.NewEstimator(), nil)
//	w := legend.NewWidget(engine)
//	w.SetOrientation(model.PositionRight)
//
//	l, err := w.ComputeLayout(data, model.Viewport{Width: 800, Height: 600})
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(l, data)
//
//	// Follow the Increase arrow.
//	if l.HasNext() {
//	    l, err = w.Navigate(layout.Increase)
//	}
//
// # Main Packages
//
// [legend/model] - Input types: data points, positions, trends, viewports.
//
// [legend/layout] - The engine. Horizontal (top/bottom) and vertical
// (left/right) placement, label and title truncation, measure rows,
// arrow pagination and the [layout.State] carried between draws.
//
// [legend] - A stateful widget that remembers the placement and the current
// page across redraws.
//
// [legend/sink] - Output formats. SVG is native; PNG and PDF go through
// rsvg-convert.
//
// [textmetrics] - Text measurement and truncation, from OpenType fonts or a
// cell-width estimate.
//
// [marker] - Legend glyph shapes and their SVG paths.
//
// ## Infrastructure
//
// [pipeline] - layout → render with caching, pagination and hooks.
//
// [cache] - File, Redis and no-op caches keyed by content hashes.
//
// [session] - Server-side pager sessions (memory, file, Redis).
//
// [config] - TOML settings.
//
// [observability] - Hook registry for layout, render, cache and HTTP events.
//
// [errors] - Coded errors with HTTP status mapping.
//
// # Testing
//
//	go test ./pkg/...            # All tests
//	go test -run Example ./...   # Examples only
//
// Redis-backed tests run when LEGENDKIT_REDIS_URL is set.
//
// [legend]: https://pkg.go.dev/github.com/matzehuels/legendkit/pkg/legend
// [legend/model]: https://pkg.go.dev/github.com/matzehuels/legendkit/pkg/legend/model
// [legend/layout]: https://pkg.go.dev/github.com/matzehuels/legendkit/pkg/legend/layout
// [legend/sink]: https://pkg.go.dev/github.com/matzehuels/legendkit/pkg/legend/sink
// [layout.State]: https://pkg.go.dev/github.com/matzehuels/legendkit/pkg/legend/layout#State
// [textmetrics]: https://pkg.go.dev/github.com/matzehuels/legendkit/pkg/textmetrics
// [marker]: https://pkg.go.dev/github.com/matzehuels/legendkit/pkg/marker
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/legendkit/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/legendkit/pkg/cache
// [session]: https://pkg.go.dev/github.com/matzehuels/legendkit/pkg/session
// [config]: https://pkg.go.dev/github.com/matzehuels/legendkit/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/legendkit/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/legendkit/pkg/errors
//
// [io]: https://pkg.go.dev/github.com/matzehuels/legendkit/pkg/io
package pkg
