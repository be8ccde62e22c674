package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/legendkit/pkg/cache"
	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/observability"
	"github.com/matzehuels/legendkit/pkg/textmetrics"
)

// Runner runs the pipeline with caching and observability.
// Both the CLI and the HTTP server use it.
//
// The Runner is stateless except for the cache and logger: legend state
// travels in Options.State and Result.State. Multiple goroutines can share
// one Runner when its engine's metrics are safe for concurrent use.
type Runner struct {
	Engine *layout.Engine
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil engine measures text with the
// estimator and default dimensions, a nil cache disables caching and a nil
// keyer selects the DefaultKeyer.
func NewRunner(engine *layout.Engine, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if engine == nil {
		engine = layout.New(layout.DefaultConfig(), textmetrics.NewEstimator(), nil)
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Engine: engine,
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// cachedLayout is the cache entry of the layout stage.
type cachedLayout struct {
	Layout layout.Layout `json:"layout"`
	State  layout.State  `json:"state"`
}

// Execute runs layout and render, advancing opts.Page pages first.
func (r *Runner) Execute(ctx context.Context, data model.Data, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Stats: Stats{Points: len(data.DataPoints)}}
	result.DataHash, _ = cache.HashJSON(data)

	// Stage 1: Layout
	layoutStart := time.Now()
	l, st, hit, err := r.ComputeLayoutWithCacheInfo(ctx, data, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.CacheInfo.LayoutHit = hit
	for range opts.Page {
		if !l.HasNext() {
			break
		}
		if l, st, err = r.Paginate(ctx, data, st, layout.Increase, opts); err != nil {
			return nil, fmt.Errorf("layout: %w", err)
		}
	}
	result.Layout, result.State = l, st
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Items = l.NumberOfItems
	result.Stats.Truncated = l.Truncations

	r.Logger.Info("computed layout",
		"position", l.Position,
		"items", l.NumberOfItems,
		"start", l.StartIndex,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, data, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayoutWithCacheInfo lays out data with caching and reports
// whether the cache was hit.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, data model.Data, opts Options) (layout.Layout, layout.State, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, layout.State{}, false, err
	}

	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, string(opts.Position), len(data.DataPoints))
	start := time.Now()

	dataHash, err := cache.HashJSON(data)
	if err != nil {
		return layout.Layout{}, layout.State{}, false, fmt.Errorf("hash data: %w", err)
	}
	cacheKey := r.Keyer.LayoutKey(dataHash, opts.LayoutKeyOpts(engineHash(r.Engine)))

	if !opts.Refresh {
		if raw, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached cachedLayout
			if err := json.Unmarshal(raw, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				hooks.OnLayoutComplete(ctx, string(cached.Layout.Position), stats(cached.Layout, len(data.DataPoints)), time.Since(start), nil)
				return cached.Layout, cached.State, true, nil
			}
			// Undecodable entries are recomputed and overwritten.
		} else if err != nil {
			opts.Logger.Warn("cache read failed", "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	l, st, err := ComputeLayout(r.Engine, data, opts)
	hooks.OnLayoutComplete(ctx, string(l.Position), stats(l, len(data.DataPoints)), time.Since(start), err)
	if err != nil {
		return layout.Layout{}, layout.State{}, false, err
	}
	opts.Logger.Debug("layout pass",
		"points", len(data.DataPoints),
		"items", l.NumberOfItems,
		"truncated", l.Truncations)

	if raw, err := json.Marshal(cachedLayout{Layout: l, State: st}); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, raw, cache.TTLLayout); err != nil {
			opts.Logger.Warn("cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(raw))
		}
	}
	return l, st, false, nil
}

// ComputeLayout is ComputeLayoutWithCacheInfo without the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, data model.Data, opts Options) (layout.Layout, layout.State, error) {
	l, st, _, err := r.ComputeLayoutWithCacheInfo(ctx, data, opts)
	return l, st, err
}

// Paginate moves one page from st in direction d and lays out data again
// at the width st recorded, so the legend does not resize while paging.
func (r *Runner) Paginate(ctx context.Context, data model.Data, st layout.State, d layout.Direction, opts Options) (layout.Layout, layout.State, error) {
	next := st.Advance(d)
	observability.Layout().OnPaginate(ctx, string(d), st.StartIndex, next.StartIndex)

	opts.State = &next
	opts.FixedWidth = true
	return r.ComputeLayout(ctx, data, opts)
}

// RenderWithCacheInfo paints l in every requested format with caching and
// reports whether all artifacts came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, data model.Data, l layout.Layout, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	// The painted output depends on the data's colours as well as the
	// geometry, so both feed the key.
	layoutHash, err := cache.HashJSON(cachedArtifactInput{Layout: l, Data: data})
	if err != nil {
		return nil, false, fmt.Errorf("hash layout: %w", err)
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		raw, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			break
		}
		artifacts[format] = raw
	}
	if len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(r.Engine, l, data, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, out := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, out, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(out))
	}
	return rendered, false, nil
}

// Render is RenderWithCacheInfo without the cache hit info.
func (r *Runner) Render(ctx context.Context, data model.Data, l layout.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, data, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

type cachedArtifactInput struct {
	Layout layout.Layout `json:"layout"`
	Data   model.Data    `json:"data"`
}

func stats(l layout.Layout, points int) observability.LayoutStats {
	return observability.LayoutStats{
		Points:    points,
		Items:     l.NumberOfItems,
		Truncated: l.Truncations,
		Arrows:    len(l.NavigationArrows),
	}
}
