package wave

import (
	"strings"

	"github.com/mhellwig/wavegrid/pkg/errors"
)

// Palette maps state tokens to fill colors and holds the handful of
// colors the encoders need beyond token fills. All values are "#RRGGBB".
//
// Token lookup is case-insensitive; tokens without an entry fall back to
// Default. The fill table is a closed enumeration at encoding time:
// callers extend it up front via [Palette.WithFill], never during an add.
type Palette struct {
	Fills   map[string]string // upper-cased token -> fill color
	Default string            // fill for tokens not in the table
	Accent  string            // timing-mark lines and end markers
	Section string            // section-header background
	Grid    string            // major vertical gridlines
}

// DefaultPalette returns the built-in palette. The token set covers the
// states that show up in ECU and bus-level diagrams; anything else gets
// the neutral default fill.
func DefaultPalette() Palette {
	return Palette{
		Fills: map[string]string{
			"OFF":    "#D9D9D9",
			"ON":     "#C6E0B4",
			"IDLE":   "#FFF2CC",
			"INIT":   "#BDD7EE",
			"RUN":    "#C6E0B4",
			"SLEEP":  "#DEEBF7",
			"WAIT":   "#FFE699",
			"ACTIVE": "#A9D08E",
			"ERROR":  "#F8CBAD",
			"BOOT":   "#D6DCE4",
		},
		Default: "#F2F2F2",
		Accent:  "#C00000",
		Section: "#D6DCE4",
		Grid:    "#BFBFBF",
	}
}

// Fill returns the fill color for a state token. Lookup is
// case-insensitive; unknown tokens map to the default fill.
func (p Palette) Fill(token string) string {
	if c, ok := p.Fills[strings.ToUpper(token)]; ok {
		return c
	}
	return p.Default
}

// WithFill returns a copy of the palette with one token mapping added or
// replaced. The token and color are validated so that a bad palette file
// fails at load time instead of producing broken output.
func (p Palette) WithFill(token, color string) (Palette, error) {
	if err := errors.ValidateToken(token); err != nil {
		return p, err
	}
	if err := errors.ValidateHexColor(color); err != nil {
		return p, err
	}

	fills := make(map[string]string, len(p.Fills)+1)
	for k, v := range p.Fills {
		fills[k] = v
	}
	fills[strings.ToUpper(token)] = color

	out := p
	out.Fills = fills
	return out, nil
}
