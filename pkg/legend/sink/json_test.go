package sink

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/legendkit/pkg/legend/model"
)

func TestRenderJSON(t *testing.T) {
	data := testData()
	l := compute(t, data, model.Viewport{Width: 600, Height: 200}, model.PositionLeft)

	out, err := RenderJSON(l, data)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not a Document: %v", err)
	}
	if len(doc.Items) != l.NumberOfItems {
		t.Fatalf("Items = %d, want %d", len(doc.Items), l.NumberOfItems)
	}
	for _, it := range doc.Items {
		if it.Point.Key() != it.Layout.Key {
			t.Errorf("item %v zipped with point %v", it.Layout.Key, it.Point.Key())
		}
	}
	if doc.Items[1].Point.PrimaryTrend != model.TrendDown {
		t.Errorf("trend lost in JSON: %v", doc.Items[1].Point.PrimaryTrend)
	}
}

func TestNewDocumentSkipsUnknownKeys(t *testing.T) {
	data := testData()
	l := compute(t, data, model.Viewport{Width: 600, Height: 200}, model.PositionTop)
	data.DataPoints = data.DataPoints[:1]

	doc := NewDocument(l, data)
	if len(doc.Items) != 1 || doc.Items[0].Point.Identity != "a" {
		t.Errorf("Items = %+v, want only point a", doc.Items)
	}
}
