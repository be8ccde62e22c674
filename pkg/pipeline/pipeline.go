// Package pipeline runs the load → layout → render flow shared by the CLI
// and the HTTP server.
//
// Centralising the flow keeps defaults, validation, caching and
// observability identical across entry points.
//
// # Stages
//
//  1. Load: read a legend data document ([Load], [Read])
//  2. Layout: compute the legend geometry for a viewport and page
//  3. Render: paint the layout to SVG, PNG, PDF or JSON
//
// # Usage
//
//	runner := pipeline.NewRunner(engine, cache, nil, logger)
//	opts := pipeline.Options{
//	    Position: model.PositionRight,
//	    Width:    640,
//	    Height:   480,
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, data, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Arrow navigation re-lays out the same data from the returned state:
//
//	l, st, err := runner.Paginate(ctx, data, result.State, layout.Increase, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/legendkit/pkg/cache"
	"github.com/matzehuels/legendkit/pkg/errors"
	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/legend/model"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default parent viewport width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default parent viewport height in pixels.
	DefaultHeight = 600.0

	// DefaultScale is the PNG pixel density.
	DefaultScale = 1.0

	// MaxPages bounds Options.Page so a request cannot loop forever.
	MaxPages = 10000
)

// DefaultPosition is used when neither the options nor the document name one.
const DefaultPosition = model.PositionTop

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options
// =============================================================================

// Options configures one pipeline run. It supports JSON for API requests.
type Options struct {
	// Layout options
	Position model.Position `json:"position,omitempty"`
	Width    float64        `json:"width,omitempty"`
	Height   float64        `json:"height,omitempty"`
	// State is the state returned by a previous draw. Nil starts on the
	// first page.
	State *layout.State `json:"state,omitempty"`
	// FixedWidth keeps State.LastWidth instead of fitting column legends to
	// their content.
	FixedWidth bool `json:"fixed_width,omitempty"`
	// Page advances that many pages before rendering.
	Page    int  `json:"page,omitempty"`
	Refresh bool `json:"refresh,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	EmbedFonts  bool     `json:"embed_fonts,omitempty"`
	Canvas      bool     `json:"canvas,omitempty"`
	Background  string   `json:"background,omitempty"`
	Interactive bool     `json:"interactive,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Layout layout.Layout
	// State is the state to pass to the next draw of the same legend.
	State layout.State

	// DataHash is the content hash of the input data.
	DataHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Points     int
	Items      int
	Truncated  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each stage.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return ValidateFormats([]string{format})
}

// ValidateFormats checks that all formats are valid. An empty list is valid
// here; SetRenderDefaults fills it in.
func ValidateFormats(formats []string) error {
	if len(formats) == 0 {
		return nil
	}
	return errors.ValidateFormats(formats, ValidFormats)
}

// ValidatePosition checks and canonicalises a position name.
func ValidatePosition(s string) (model.Position, error) {
	p, ok := model.ParsePosition(s)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidPosition, "invalid position: %q", s)
	}
	return p, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults for the
// full pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	if o.Page < 0 || o.Page > MaxPages {
		return errors.New(errors.ErrCodeInvalidInput, "page must be in [0, %d], got %d", MaxPages, o.Page)
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
// A zero width and height select the default viewport.
func (o *Options) SetLayoutDefaults() {
	if o.Position == "" {
		o.Position = DefaultPosition
	}
	if o.Width == 0 && o.Height == 0 {
		o.Width, o.Height = DefaultWidth, DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	p, err := ValidatePosition(string(o.Position))
	if err != nil {
		return err
	}
	o.Position = p
	return errors.ValidateViewport(o.Width, o.Height)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

// Viewport returns the parent viewport.
func (o *Options) Viewport() model.Viewport {
	return model.Viewport{Width: o.Width, Height: o.Height}
}

// InitialState returns the state the first layout starts from.
func (o *Options) InitialState() layout.State {
	st := layout.NewState(o.Position)
	if o.State != nil {
		st = *o.State
	}
	// The requested position wins over a remembered one; empty data
	// records None in the state without changing the request.
	st.Position = o.Position
	return st
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts(configHash string) cache.LayoutKeyOpts {
	k := cache.LayoutKeyOpts{
		Position:   string(o.Position),
		Width:      o.Width,
		Height:     o.Height,
		AutoWidth:  !o.FixedWidth,
		ConfigHash: configHash,
	}
	if o.State != nil {
		k.StateHash, _ = cache.HashJSON(o.State)
	}
	return k
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:     format,
		EmbedFonts: o.EmbedFonts,
		Canvas:     o.Canvas,
		Background: o.Background,
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}
