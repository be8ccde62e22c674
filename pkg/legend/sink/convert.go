package sink

import (
	"bytes"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/legendkit/pkg/errors"
	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/legend/model"
)

// rsvgConvert is the librsvg command line converter.
const rsvgConvert = "rsvg-convert"

// RenderPDF paints the layout as SVG and converts it to PDF.
func RenderPDF(l layout.Layout, data model.Data, opts ...SVGOption) ([]byte, error) {
	return convertSVG(RenderSVG(l, data, opts...), "pdf")
}

// RenderPNG paints the layout as SVG and rasterises it at scale. A
// non-positive scale renders at 1x.
func RenderPNG(l layout.Layout, data model.Data, scale float64, opts ...SVGOption) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return convertSVG(RenderSVG(l, data, opts...), "png", "--zoom", strconv.FormatFloat(scale, 'f', 2, 64))
}

// convertSVG pipes svg through rsvg-convert.
func convertSVG(svg []byte, format string, args ...string) ([]byte, error) {
	bin, err := exec.LookPath(rsvgConvert)
	if err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "%s output needs %s (librsvg) on PATH", format, rsvgConvert)
	}

	cmd := exec.Command(bin, append([]string{"--format", format}, args...)...)
	cmd.Stdin = bytes.NewReader(svg)
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "convert legend to %s: %s", format, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
