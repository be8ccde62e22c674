// Package model defines the input data of a legend: the ordered data points
// shown as legend items, the legend-wide text settings, the placement of the
// legend relative to its parent chart area, and viewport sizes.
//
// Values in this package are plain data. They carry JSON tags so a legend
// can be described in a document and loaded by [github.com/matzehuels/legendkit/pkg/io].
// The layout engine never mutates them; it returns per-item layout records
// keyed by [Key] instead.
//
// # Keys
//
// Each data point is identified by its Identity plus an optional LayerNumber.
// The pair must be unique within one legend; it is the stable key a renderer
// uses to match layout records with data points across redraws.
//
// # Trends
//
// Measures may carry a [Trend]. It is tri-state: up, down, or unset. An unset
// trend still produces an indicator glyph, painted fully transparent, so
// items keep identical structure whether or not a trend is known.
package model
