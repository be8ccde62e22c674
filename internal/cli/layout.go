package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	legendio "github.com/matzehuels/legendkit/pkg/io"
	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/pipeline"
)

// layoutFlags are the viewport and paging flags shared by layout, render
// and page.
type layoutFlags struct {
	position string
	width    float64
	height   float64
	page     int
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.position, "position", "p", "", "legend position: top, bottom, left, right, *-center, none (default: from document, else top)")
	cmd.Flags().Float64Var(&f.width, "width", 0, "parent viewport width in pixels (default: from document, else 800)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "parent viewport height in pixels (default: from document, else 600)")
	cmd.Flags().IntVar(&f.page, "page", 0, "advance this many pages before output")
}

// apply copies the flags that were set into opts.
func (f *layoutFlags) apply(opts *pipeline.Options) error {
	if f.position != "" {
		p, err := pipeline.ValidatePosition(f.position)
		if err != nil {
			return err
		}
		opts.Position = p
	}
	if f.width != 0 || f.height != 0 {
		opts.Width, opts.Height = f.width, f.height
	}
	opts.Page = f.page
	return nil
}

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		flags  layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [data.json]",
		Short: "Compute a legend layout",
		Long: `Compute a legend layout from a data document.

The output is a JSON document holding the layout (title, item and arrow
positions, truncated labels, footprint) and each placed item zipped with its
data point. It is the same document 'render -f json' writes.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], flags, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default: <input>.layout.json)")
	flags.register(cmd)

	return cmd
}

// runLayout loads the document, computes the layout, and writes it.
func (c *CLI) runLayout(ctx context.Context, input string, flags layoutFlags, output string) error {
	opts := c.baseOptions()
	if err := flags.apply(&opts); err != nil {
		return err
	}
	data, err := pipeline.Load(input, &opts)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}

	runner, err := c.newRunner()
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	l, cacheHit, err := computePage(ctx, runner, data, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	prog.done("Computed layout")

	if output == "-" {
		return legendio.WriteLayoutJSON(l, data, os.Stdout)
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
	}
	if err := legendio.ExportLayoutJSON(l, data, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Layout complete")
	printFile(output)
	printStats(l, len(data.DataPoints), cacheHit)
	printNewline()
	printNextStep("Render", appName+" render "+input)
	return nil
}

// computePage lays out the first page and advances opts.Page pages.
func computePage(ctx context.Context, runner *pipeline.Runner, data model.Data, opts pipeline.Options) (layout.Layout, bool, error) {
	l, st, hit, err := runner.ComputeLayoutWithCacheInfo(ctx, data, opts)
	if err != nil {
		return layout.Layout{}, false, err
	}
	for i := 0; i < opts.Page && l.HasNext(); i++ {
		if l, st, err = runner.Paginate(ctx, data, st, layout.Increase, opts); err != nil {
			return layout.Layout{}, false, err
		}
	}
	return l, hit, nil
}
