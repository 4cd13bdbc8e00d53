package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mhellwig/wavegrid/pkg/render/sink"
	"github.com/mhellwig/wavegrid/pkg/render/styles"
	"github.com/mhellwig/wavegrid/pkg/script"
	"github.com/mhellwig/wavegrid/pkg/wave"
)

// showCommand creates the show command for printing a diagram to stdout.
func (c *CLI) showCommand() *cobra.Command {
	var (
		theme     string
		noColor   bool
		unitWidth int
	)

	cmd := &cobra.Command{
		Use:   "show [document.toml]",
		Short: "Print a diagram as a colored grid in the terminal",
		Long: `Print a diagram as a colored grid in the terminal.

The show command encodes the document and writes the text rendition to
stdout, one line per track. Fills and accents use ANSI colors; pipe the
output or pass --no-color for plain glyphs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(args[0], theme, noColor, unitWidth)
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "color theme: light (default), dark")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	cmd.Flags().IntVar(&unitWidth, "unit-width", 0, "terminal columns per time unit")

	return cmd
}

// runShow builds the grid and writes its text rendition to stdout.
func (c *CLI) runShow(input, theme string, noColor bool, unitWidth int) error {
	_, grid, err := c.buildGrid(input)
	if err != nil {
		return err
	}

	th, err := styles.ByName(theme)
	if err != nil {
		return err
	}

	opts := []sink.TextOption{
		sink.WithTermTheme(th),
		sink.WithTermColor(!noColor),
	}
	if unitWidth > 0 {
		opts = append(opts, sink.WithTermUnitWidth(unitWidth))
	}

	_, err = os.Stdout.Write(sink.RenderText(grid, opts...))
	return err
}

// buildGrid loads a document from disk and encodes it. Shared by the
// commands that bypass the pipeline because they never touch the cache.
func (c *CLI) buildGrid(input string) (*script.Document, *wave.Grid, error) {
	doc, err := script.Load(input)
	if err != nil {
		return nil, nil, err
	}
	grid, err := doc.Build(wave.WithLogger(c.Logger))
	if err != nil {
		return nil, nil, err
	}
	return doc, grid, nil
}
