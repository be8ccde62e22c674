package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/matzehuels/legendkit/pkg/errors"
	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/marker"
)

// Document is a legend data file.
type Document struct {
	model.Data
	Position model.Position `json:"position,omitempty"`
	Viewport model.Viewport `json:"viewport,omitzero"`
}

// ReadJSON decodes a document from r.
//
// ReadJSON returns an error if the JSON is malformed, a marker or the
// position is unknown, the font size or viewport is out of range, or a label
// cannot be rendered. Points without an identity receive a UUID derived from
// their index and label, so reading the same document twice yields the same
// keys.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode")
	}
	if err := normalize(&doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// ImportJSON reads a document from the file at path.
func ImportJSON(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func normalize(doc *Document) error {
	if doc.Position != "" {
		p, ok := model.ParsePosition(string(doc.Position))
		if !ok {
			return errors.New(errors.ErrCodeInvalidPosition, "unknown position %q", doc.Position)
		}
		doc.Position = p
	}
	if err := errors.ValidateViewport(doc.Viewport.Width, doc.Viewport.Height); err != nil {
		return err
	}
	if err := errors.ValidateFontSize(doc.FontSize); err != nil {
		return err
	}
	if err := errors.ValidateLabel(doc.Title); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "title")
	}

	for i := range doc.DataPoints {
		p := &doc.DataPoints[i]
		if p.Identity == "" {
			p.Identity = derivedIdentity(i, p.Label)
		}
		if err := errors.ValidateLabel(p.Label); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "data point %d", i)
		}
		if p.Marker != "" {
			s, ok := marker.ParseShape(string(p.Marker))
			if !ok {
				return errors.New(errors.ErrCodeInvalidInput, "data point %d: unknown marker %q", i, p.Marker)
			}
			p.Marker = s
		}
	}
	return nil
}

// derivedIdentity is a name-based (SHA-1) UUID of the point's index and label.
func derivedIdentity(index int, label string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strconv.Itoa(index)+"\x00"+label)).String()
}
