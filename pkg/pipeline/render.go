package pipeline

import (
	"github.com/mhellwig/wavegrid/pkg/errors"
	"github.com/mhellwig/wavegrid/pkg/render/sink"
	"github.com/mhellwig/wavegrid/pkg/render/styles"
	"github.com/mhellwig/wavegrid/pkg/wave"
)

// Render generates artifacts in the requested formats from a finalized
// grid. The document title is drawn by the visual sinks when present.
func Render(g *wave.Grid, title string, opts Options) (map[string][]byte, error) {
	theme, err := styles.ByName(opts.Theme)
	if err != nil {
		return nil, err
	}
	svgOpts := buildSVGOptions(theme, title)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(g, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(g,
				sink.WithScale(opts.Scale),
				sink.WithPNGLayout(svgOpts...))
		case FormatXLSX:
			data, err = sink.RenderXLSX(g, buildXLSXOptions(theme, opts)...)
		case FormatText:
			data = sink.RenderText(g,
				sink.WithTermTheme(theme),
				sink.WithTermColor(!opts.NoColor))
		case FormatJSON:
			data, err = sink.RenderJSON(g)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func buildSVGOptions(theme styles.Theme, title string) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithTheme(theme)}
	if title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(title))
	}
	return svgOpts
}

func buildXLSXOptions(theme styles.Theme, opts Options) []sink.XLSXOption {
	xlsxOpts := []sink.XLSXOption{sink.WithSheetTheme(theme)}
	if opts.Sheet != "" {
		xlsxOpts = append(xlsxOpts, sink.WithSheetName(opts.Sheet))
	}
	return xlsxOpts
}
