// Package sink paints computed legend layouts.
//
// # Overview
//
// A "sink" turns a [layout.Layout] and the [model.Data] it was computed from
// into an output format:
//
//   - SVG: vector output, optionally with embedded fonts and arrow events
//   - JSON: the layout with every item zipped with its data point
//   - PDF and PNG: converted from SVG (requires rsvg-convert)
//
// Items are matched with data points by [model.Key], so a sink never relies
// on the order of either slice.
//
// # SVG Output
//
//	svg := sink.RenderSVG(l, data,
//	    sink.WithFontEmbedding(),
//	    sink.WithCanvas(parent),
//	)
//
// Without [WithCanvas] the SVG is cropped to the legend footprint. With it
// the SVG has the parent size and the legend is drawn at its anchor, which
// is useful for previews.
//
// Each navigation arrow carries a data-type attribute of "Increase" or
// "Decrease". With [WithInteraction] a click dispatches a bubbling
// "legendnavigate" DOM event whose detail.direction is that value; the host
// answers it by calling [legend.Widget.Navigate] and repainting.
//
// # SVG Options
//
//   - [WithCanvas]: Paint inside a canvas of the parent size
//   - [WithBackground]: Fill the canvas with a color
//   - [WithFontEmbedding]: Embed the Go fonts used for measurement
//   - [WithInteraction]: Emit arrow click events
//   - [WithCatalog]: Marker catalog matching the layout engine's
//   - [WithIndicatorSize]: Side of trend triangles (default 7)
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [legend.Widget.Navigate]: github.com/matzehuels/legendkit/pkg/legend
package sink
