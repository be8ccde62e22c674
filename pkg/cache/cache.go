// Package cache stores computed legend layouts and rendered artifacts.
//
// Layout passes are cheap, but the CLI and the server often see the same
// document many times (paging back and forth, re-rendering the same page to
// several formats). Entries are keyed by a content hash of the input plus
// every option that changes the output, so a key never maps to stale data.
//
// Three backends implement [Cache]:
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: JSON entry files under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the server
//
// Keys come from a [Keyer]. [ScopedKeyer] prefixes every key so several
// tenants can share one backend.
package cache

import (
	"context"
	"time"
)

// Default lifetimes of cache entries.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// LayoutKeyOpts holds everything besides the data that changes a layout.
type LayoutKeyOpts struct {
	Position   string  `json:"position"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	AutoWidth  bool    `json:"auto_width"`
	ConfigHash string  `json:"config_hash"`
	StateHash  string  `json:"state_hash"`
}

// ArtifactKeyOpts holds everything besides the layout that changes a
// rendered artifact.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Scale      float64 `json:"scale,omitempty"`
	EmbedFonts bool    `json:"embed_fonts,omitempty"`
	Canvas     bool    `json:"canvas,omitempty"`
	Background string  `json:"background,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	LayoutKey(dataHash string, opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the inputs into "layout:<sha256>" and
// "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) LayoutKey(dataHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", dataHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
