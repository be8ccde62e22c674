package pipeline

import (
	"io"

	legendio "github.com/matzehuels/legendkit/pkg/io"
	"github.com/matzehuels/legendkit/pkg/legend/model"
)

// Load reads the legend document at path. Position and viewport stored in
// the document fill the matching options when those are unset.
func Load(path string, opts *Options) (model.Data, error) {
	doc, err := legendio.ImportJSON(path)
	if err != nil {
		return model.Data{}, err
	}
	opts.applyDocument(doc)
	return doc.Data, nil
}

// Read is Load for an already open document.
func Read(r io.Reader, opts *Options) (model.Data, error) {
	doc, err := legendio.ReadJSON(r)
	if err != nil {
		return model.Data{}, err
	}
	opts.applyDocument(doc)
	return doc.Data, nil
}

func (o *Options) applyDocument(doc legendio.Document) {
	if o.Position == "" {
		o.Position = doc.Position
	}
	if o.Width == 0 && o.Height == 0 {
		o.Width, o.Height = doc.Viewport.Width, doc.Viewport.Height
	}
}
