package pipeline

import (
	"fmt"

	"github.com/matzehuels/legendkit/pkg/cache"
	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/legend/model"
)

// ComputeLayout lays out data with engine for the viewport, page and
// position in opts. It does not touch any cache.
func ComputeLayout(engine *layout.Engine, data model.Data, opts Options) (layout.Layout, layout.State, error) {
	return engine.Compute(data, opts.Viewport(), opts.InitialState(), !opts.FixedWidth)
}

// engineHash identifies everything about an engine that changes layouts:
// its dimensions and the kind of text measurer.
func engineHash(engine *layout.Engine) string {
	h, _ := cache.HashJSON(struct {
		Config  layout.Config `json:"config"`
		Metrics string        `json:"metrics"`
	}{engine.Config(), fmt.Sprintf("%T", engine.Metrics())})
	return h
}
