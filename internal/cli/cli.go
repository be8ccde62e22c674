// Package cli implements the legendkit command-line interface.
//
// The commands read legend data documents (JSON), lay them out for a
// viewport, and paint or serve the result:
//   - layout: compute the legend geometry and write it as JSON
//   - render: paint the legend to SVG, PNG, PDF or JSON
//   - page: browse the pages of a legend interactively in the terminal
//   - serve: expose layout and render over HTTP
//   - cache: inspect or clear the local cache
//
// All commands accept --config (a TOML settings file) and --verbose
// (-v) for debug-level logging. Loggers are passed through
// context.Context.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/legendkit/pkg/buildinfo"
	"github.com/matzehuels/legendkit/pkg/cache"
	"github.com/matzehuels/legendkit/pkg/config"
	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/pipeline"
	"github.com/matzehuels/legendkit/pkg/textmetrics"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "legendkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Settings config.Settings

	configPath string
	verbose    bool
	noCache    bool
}

// New creates a new CLI instance with a default logger and default settings.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Settings: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "legendkit lays out and renders chart legends",
		Long:          `legendkit computes chart legend layouts (placement, truncation, pagination) for a viewport and paints them as SVG, PNG, PDF or JSON.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			if err := c.loadSettings(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "settings file (TOML)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable caching")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.pageCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadSettings replaces the settings with the --config file, if given.
func (c *CLI) loadSettings() error {
	if c.configPath == "" {
		return nil
	}
	s, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Settings = s
	c.Logger.Debug("loaded settings", "path", c.configPath)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newEngine creates a layout engine from the settings.
func (c *CLI) newEngine() (*layout.Engine, error) {
	var m textmetrics.Metrics = textmetrics.NewEstimator()
	if c.Settings.Render.Metrics == "opentype" {
		ot, err := textmetrics.NewOpenType()
		if err != nil {
			return nil, err
		}
		m = ot
	}
	return layout.New(c.Settings.Legend, m, nil), nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() (*pipeline.Runner, error) {
	engine, err := c.newEngine()
	if err != nil {
		return nil, err
	}
	ch, err := c.newCache()
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(engine, ch, nil, c.Logger), nil
}

func (c *CLI) newCache() (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	ttl := c.Settings.Cache.TTL.Duration
	switch c.Settings.Cache.Backend {
	case config.BackendFile:
		fc, err := cache.NewFileCache(c.Settings.Cache.Dir)
		if err != nil {
			c.Logger.Warn("cache disabled", "dir", c.Settings.Cache.Dir, "error", err)
			return cache.NewNullCache(), nil
		}
		return cache.WithTTL(fc, ttl), nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(c.Settings.Cache.RedisURL)
		if err != nil {
			return nil, err
		}
		return cache.WithTTL(rc, ttl), nil
	}
	return cache.NewNullCache(), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// baseOptions returns pipeline options seeded from the render settings.
func (c *CLI) baseOptions() pipeline.Options {
	r := c.Settings.Render
	return pipeline.Options{
		Formats:    append([]string(nil), r.Formats...),
		Scale:      r.Scale,
		EmbedFonts: r.EmbedFonts,
		Background: r.Background,
		Logger:     c.Logger,
	}
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
