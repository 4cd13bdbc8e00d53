package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mhellwig/wavegrid/pkg/wave"
)

// paletteCommand creates the palette command for listing state-token colors.
func (c *CLI) paletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the built-in state tokens and their fill colors",
		Long: `List the built-in state tokens and their fill colors.

State tracks look these tokens up case-insensitively when picking a cell
fill. Tokens without an entry get the neutral default fill. Documents can
add or override entries in their [palette] table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printPalette(wave.DefaultPalette())
			return nil
		},
	}
}

// printPalette renders the token table with a color swatch per entry.
func printPalette(p wave.Palette) {
	fmt.Println(StyleTitle.Render("Built-in palette"))
	printNewline()

	tokens := make([]string, 0, len(p.Fills))
	for token := range p.Fills {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	for _, token := range tokens {
		color := p.Fills[token]
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("    ")
		fmt.Printf("  %s %s %s\n",
			swatch,
			StyleHighlight.Render(fmt.Sprintf("%-8s", token)),
			StyleDim.Render(color))
	}

	printNewline()
	printDetail("Unknown tokens fall back to %s", p.Default)
	printDetail("Override or extend via [palette] entries in the document")
}
