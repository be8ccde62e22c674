package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/legendkit/pkg/pipeline"
)

// renderOpts holds the render-only command-line flags.
type renderOpts struct {
	output      string
	formats     string
	scale       float64
	embedFonts  bool
	canvas      bool
	background  string
	interactive bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags layoutFlags
		ropts renderOpts
	)

	cmd := &cobra.Command{
		Use:   "render [data.json]",
		Short: "Render a legend to SVG, PNG, PDF or JSON",
		Long: `Render a legend to SVG, PNG, PDF or JSON.

With a single format the output goes to -o (or <input>.<format>). With
several formats -o names the base path and each format gets its extension.
PNG and PDF output needs rsvg-convert on PATH.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], flags, ropts)
		},
	}

	cmd.Flags().StringVarP(&ropts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&ropts.formats, "format", "f", "", "output format(s): svg, json, pdf, png (comma-separated, default from settings)")
	cmd.Flags().Float64Var(&ropts.scale, "scale", 0, "PNG pixel density (default from settings)")
	cmd.Flags().BoolVar(&ropts.embedFonts, "embed-fonts", false, "embed the measuring fonts in the SVG")
	cmd.Flags().BoolVar(&ropts.canvas, "canvas", false, "paint the legend at its anchor on a canvas of the viewport size")
	cmd.Flags().StringVar(&ropts.background, "background", "", "background colour")
	cmd.Flags().BoolVar(&ropts.interactive, "interactive", false, "emit navigation events from the arrows")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, flags layoutFlags, ropts renderOpts) error {
	opts := c.baseOptions()
	if err := flags.apply(&opts); err != nil {
		return err
	}
	if ropts.formats != "" {
		opts.Formats = parseFormats(ropts.formats)
	}
	if ropts.scale != 0 {
		opts.Scale = ropts.scale
	}
	opts.EmbedFonts = opts.EmbedFonts || ropts.embedFonts
	opts.Canvas = ropts.canvas
	opts.Interactive = ropts.interactive
	if ropts.background != "" {
		opts.Background = ropts.background
	}

	data, err := pipeline.Load(input, &opts)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	runner, err := c.newRunner()
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, os.Stderr, "Rendering legend...")
	spinner.Start()
	result, err := runner.Execute(ctx, data, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	base := basePath(ropts.output, input)
	var written []string
	for _, format := range opts.Formats {
		path := base + "." + format
		if len(opts.Formats) == 1 && ropts.output != "" {
			path = ropts.output
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	printSuccess("Rendered legend")
	for _, path := range written {
		printFile(path)
	}
	printStats(result.Layout, len(data.DataPoints), result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	return nil
}

// basePath derives the output path without extension. A known format
// extension on output is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
