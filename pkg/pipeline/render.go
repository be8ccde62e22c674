package pipeline

import (
	"fmt"

	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/legend/sink"
)

// Render paints l in every format of opts.Formats.
func Render(engine *layout.Engine, l layout.Layout, data model.Data, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(engine, opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var (
			out []byte
			err error
		)
		switch format {
		case FormatSVG:
			out = sink.RenderSVG(l, data, svgOpts...)
		case FormatJSON:
			out, err = sink.RenderJSON(l, data)
		case FormatPNG:
			out, err = sink.RenderPNG(l, data, opts.Scale, svgOpts...)
		case FormatPDF:
			out, err = sink.RenderPDF(l, data, svgOpts...)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = out
	}
	return artifacts, nil
}

func buildSVGOptions(engine *layout.Engine, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{
		sink.WithCatalog(engine.Catalog()),
		sink.WithIndicatorSize(engine.Config().IndicatorSize),
	}
	if opts.Canvas {
		svgOpts = append(svgOpts, sink.WithCanvas(opts.Viewport()))
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	if opts.EmbedFonts {
		svgOpts = append(svgOpts, sink.WithFontEmbedding())
	}
	if opts.Interactive {
		svgOpts = append(svgOpts, sink.WithInteraction())
	}
	return svgOpts
}
