package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/legend/sink"
)

// WriteJSON encodes a document and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(doc Document, w io.Writer) error {
	return encode(w, doc)
}

// WriteLayoutJSON writes a layout zipped with its data points to w.
func WriteLayoutJSON(l layout.Layout, data model.Data, w io.Writer) error {
	return encode(w, sink.NewDocument(l, data))
}

// ExportLayoutJSON writes a layout zipped with its data points to the file
// at path.
func ExportLayoutJSON(l layout.Layout, data model.Data, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayoutJSON(l, data, f)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
