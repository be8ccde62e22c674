package sink

import (
	"encoding/json"

	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/legend/model"
)

// Document is the JSON form of a painted legend: the layout plus each
// placed item zipped with its data point.
type Document struct {
	Layout layout.Layout `json:"layout"`
	Items  []PlacedItem  `json:"items"`
}

// PlacedItem pairs a data point with its layout record.
type PlacedItem struct {
	Point  model.DataPoint   `json:"point"`
	Layout layout.ItemLayout `json:"layout"`
}

// NewDocument zips the layout's items with the data points they belong to.
// Items whose key is missing from data are skipped.
func NewDocument(l layout.Layout, data model.Data) Document {
	points := make(map[model.Key]model.DataPoint, len(data.DataPoints))
	for _, p := range data.DataPoints {
		points[p.Key()] = p
	}
	doc := Document{Layout: l, Items: make([]PlacedItem, 0, len(l.Items))}
	for _, it := range l.Items {
		p, ok := points[it.Key]
		if !ok {
			continue
		}
		doc.Items = append(doc.Items, PlacedItem{Point: p, Layout: it})
	}
	return doc
}

// RenderJSON encodes the layout and its data as an indented Document.
func RenderJSON(l layout.Layout, data model.Data) ([]byte, error) {
	return json.MarshalIndent(NewDocument(l, data), "", "  ")
}
