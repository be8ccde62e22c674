// Package textmetrics measures and truncates legend text.
//
// The layout engine consumes text measurement through the [Metrics]
// interface. Two implementations are provided:
//
//   - [Estimator]: a fast heuristic that counts display cells (East Asian
//     wide characters count twice) and multiplies by a per-cell width derived
//     from the font size. No font files are needed.
//   - [OpenType]: exact advance widths from the Go font family, parsed with
//     golang.org/x/image/font/opentype. Titles use the bold face.
//
// Font sizes are expressed in points and converted with [PointsToPixels]
// (96 pixels per 72 points).
//
// # Truncation
//
// [Truncate] shortens text to the longest prefix that still fits the target
// width once [Ellipsis] is appended. Text that already fits is returned
// unchanged; if not even the ellipsis fits, the result is empty.
package textmetrics
