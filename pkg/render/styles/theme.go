// Package styles defines the shared visual vocabulary of the diagram
// sinks: color themes plus the mapping from abstract border weights to
// concrete stroke metrics.
package styles

import (
	"bytes"
	"encoding/xml"

	"github.com/mhellwig/wavegrid/pkg/errors"
	"github.com/mhellwig/wavegrid/pkg/wave"
)

// Theme is a color scheme shared by the visual sinks. Colors carried on
// cells (fills, accent lines) always win; the theme supplies everything
// the grid leaves unspecified.
type Theme struct {
	Name    string
	Paper   string // page background
	Ink     string // default border and text color
	FillInk string // text color on filled cells, kept dark for contrast
	Muted   string // ruler ticks and other secondary text
}

// Light is the default theme: dark ink on white paper.
func Light() Theme {
	return Theme{
		Name:    "light",
		Paper:   "#FFFFFF",
		Ink:     "#1F1F1F",
		FillInk: "#1F1F1F",
		Muted:   "#7F7F7F",
	}
}

// Dark inverts the page for dark backgrounds. Cell fills stay pastel, so
// text on filled cells keeps the light theme's dark ink.
func Dark() Theme {
	return Theme{
		Name:    "dark",
		Paper:   "#1E1E1E",
		Ink:     "#E8E8E8",
		FillInk: "#1F1F1F",
		Muted:   "#8C8C8C",
	}
}

// Names lists the built-in theme names accepted by [ByName].
func Names() []string { return []string{"light", "dark"} }

// ByName resolves a built-in theme. The empty string selects the light
// theme so callers can pass configuration values through unchecked.
func ByName(name string) (Theme, error) {
	switch name {
	case "", "light":
		return Light(), nil
	case "dark":
		return Dark(), nil
	default:
		return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q (valid: light, dark)", name)
	}
}

// LineInk returns the stroke color for a border, falling back to the
// theme ink when the line carries no explicit color.
func (t Theme) LineInk(l wave.Line) string {
	if l.Color != "" {
		return l.Color
	}
	return t.Ink
}

// TextInk returns the label color for a cell.
func (t Theme) TextInk(c wave.Cell) string {
	if c.Fill != "" {
		return t.FillInk
	}
	return t.Ink
}

// StrokeWidth maps a border weight to a stroke width in pixels at scale 1.
func StrokeWidth(s wave.LineStyle) float64 {
	switch s {
	case wave.LineThin:
		return 1.0
	case wave.LineMedium:
		return 1.8
	case wave.LineThick:
		return 2.8
	case wave.LineDotted:
		return 1.2
	default:
		return 0
	}
}

// Dashes returns the dash pattern for a border weight, nil for solid.
func Dashes(s wave.LineStyle) []float64 {
	if s == wave.LineDotted {
		return []float64{3, 2.5}
	}
	return nil
}

// EscapeXML escapes a string for safe inclusion in SVG output.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
