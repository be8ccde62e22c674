// Package config loads legendkit settings from a TOML file.
//
// A settings file overrides any subset of the defaults:
//
//	[legend]
//	max_text_length = 80
//	scrollable = false
//
//	[render]
//	formats = ["svg", "png"]
//	scale = 2
//	embed_fonts = true
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//	ttl = "12h"
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/legendkit/pkg/errors"
	"github.com/matzehuels/legendkit/pkg/legend/layout"
)

// Cache backends.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Settings is the full settings file.
type Settings struct {
	Legend layout.Config `toml:"legend"`
	Render Render        `toml:"render"`
	Cache  Cache         `toml:"cache"`
}

// Render holds output defaults.
type Render struct {
	Formats    []string `toml:"formats"`
	Scale      float64  `toml:"scale"`
	EmbedFonts bool     `toml:"embed_fonts"`
	Background string   `toml:"background"`
	// Metrics selects the text measurer: "opentype" or "estimate".
	Metrics string `toml:"metrics"`
}

// Cache selects and configures the cache backend.
type Cache struct {
	Backend  string   `toml:"backend"`
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`
}

// Duration is a time.Duration written as a string ("90m", "24h") in TOML.
type Duration struct{ time.Duration }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Legend: layout.DefaultConfig(),
		Render: Render{
			Formats: []string{"svg"},
			Scale:   1,
			Metrics: "opentype",
		},
		Cache: Cache{
			Backend: BackendFile,
			Dir:     DefaultCacheDir(),
		},
	}
}

// DefaultCacheDir returns ~/.cache/legendkit, or a temp dir when the user
// cache directory cannot be determined.
func DefaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "legendkit")
	}
	return filepath.Join(os.TempDir(), "legendkit")
}

// Load reads the settings file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "settings file %s", path)
		}
		return Settings{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Settings{}, errors.New(errors.ErrCodeInvalidConfig, "unknown settings: %s", strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks every section.
func (s Settings) Validate() error {
	if err := s.Legend.Validate(); err != nil {
		return err
	}
	if s.Render.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render.scale must be positive, got %v", s.Render.Scale)
	}
	switch s.Render.Metrics {
	case "opentype", "estimate":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "render.metrics must be opentype or estimate, got %q", s.Render.Metrics)
	}
	switch s.Cache.Backend {
	case BackendNone, BackendFile:
	case BackendRedis:
		if s.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", s.Cache.Backend)
	}
	if s.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	return nil
}
