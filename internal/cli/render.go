package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhellwig/wavegrid/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: xlsx, svg, png, text, json
	theme    string   // color theme: light or dark
	scale    float64  // raster scale factor for PNG output
	sheet    string   // worksheet name for XLSX output
	noColor  bool     // disable ANSI colors in text output
	noCache  bool     // disable artifact caching
	cacheURL string   // redis URL for a shared artifact cache
	refresh  bool     // re-render even when cached artifacts exist
}

// renderCommand creates the render command for generating output files.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [document.toml]",
		Short: "Render a diagram document to one or more output formats",
		Long: `Render a diagram document to one or more output formats.

The render command reads a TOML diagram document, encodes its tracks onto
the cell grid, and writes one file per requested format. Output paths are
derived from the input file name unless --output is given.

Rendered artifacts are cached locally; identical documents and options are
served from cache on subsequent runs. Use --refresh to force a re-render.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), xlsx, png, text, json (comma-separated)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "color theme: light (default), dark")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "raster scale factor for PNG output")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "worksheet name for XLSX output")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable ANSI colors in text output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.cacheURL, "cache-url", "", "redis URL for a shared artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached artifacts exist")

	return cmd
}

// runRender executes the pipeline for input and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache, opts.cacheURL)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Path:    input,
		Formats: opts.formats,
		Theme:   opts.theme,
		Scale:   opts.scale,
		Sheet:   opts.sheet,
		NoColor: opts.noColor,
		Refresh: opts.refresh,
		Logger:  c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	prog := newProgress(c.Logger)
	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.formats,
		input:     input,
		output:    opts.output,
	}); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d files", len(opts.formats)))

	printSuccess("Rendered %s", input)
	printStats(result.Stats.Tracks, result.Stats.TimeUnits, result.CacheInfo.RenderHit)
	printNewline()
	printNextStep("Preview in the terminal", "wavegrid show "+input)

	return nil
}

// artifactWriteParams bundles what writeArtifacts needs to place rendered
// bytes on disk.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
}

// writeArtifacts writes one file per format. Paths are base + "." + format,
// where base comes from basePath; each written file is echoed to the user.
func writeArtifacts(p artifactWriteParams) error {
	base := basePath(p.output, p.input)

	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return fmt.Errorf("no %s artifact was produced", format)
		}

		path := base + "." + format
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output already carries a format extension (.svg, .xlsx, ...), that
// extension is stripped so the format loop can re-append per format.
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
