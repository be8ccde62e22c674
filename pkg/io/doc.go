// Package io reads legend data documents and writes computed layouts.
//
// # JSON Format
//
// A data document is a [model.Data] object with two optional extra fields,
// the placement and the parent viewport:
//
//	{
//	  "title": "Revenue by region",
//	  "position": "right-center",
//	  "viewport": {"width": 800, "height": 400},
//	  "primary_type": "Value",
//	  "data_points": [
//	    {"identity": "emea", "label": "EMEA", "color": "#2e86de",
//	     "primary_measure": "1.2M", "primary_indicator": true},
//	    {"label": "APAC", "color": "#ee5253", "marker": "square"}
//	  ]
//	}
//
// Points without an identity are given a UUID derived from their index and
// label, so every point has a key that stays the same across loads. Marker names and positions are
// matched case-insensitively; "top-center" and "TopCenter" are the same.
//
// # Import
//
// Use [ImportJSON] to read a document from a file path, or [ReadJSON] to
// read from any io.Reader. Both validate font size, labels, markers, the
// position and the viewport.
//
// # Export
//
// [WriteJSON] writes a document back, including generated identities, so
// a second run produces the same keys. [WriteLayoutJSON] and
// [ExportLayoutJSON] write a computed layout zipped with its data points,
// in the same form as the JSON sink.
package io
