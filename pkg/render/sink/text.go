package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mhellwig/wavegrid/pkg/render/styles"
	"github.com/mhellwig/wavegrid/pkg/wave"
)

// TextOption configures terminal rendering.
type TextOption func(*textRenderer)

type textRenderer struct {
	theme  styles.Theme
	unitW  int
	labelW int
	color  bool
}

// WithTermTheme sets the color theme for terminal output.
func WithTermTheme(t styles.Theme) TextOption {
	return func(r *textRenderer) { r.theme = t }
}

// WithTermUnitWidth sets how many character cells one time unit spans.
func WithTermUnitWidth(n int) TextOption {
	return func(r *textRenderer) { r.unitW = n }
}

// WithTermLabelWidth sets the width of the label column in characters.
func WithTermLabelWidth(n int) TextOption {
	return func(r *textRenderer) { r.labelW = n }
}

// WithTermColor toggles ANSI styling. Disabled output is plain runes,
// suitable for pipes and golden files.
func WithTermColor(v bool) TextOption {
	return func(r *textRenderer) { r.color = v }
}

// RenderText renders the grid as Unicode line art for terminals, one
// text row per grid row. High and low signal levels become over- and
// underlines, borders become vertical bars, and fills become background
// colors when styling is on.
func RenderText(g *wave.Grid, opts ...TextOption) []byte {
	r := textRenderer{theme: styles.Light(), unitW: 4, labelW: 16, color: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.unitW < 2 {
		r.unitW = 2
	}
	kinds := trackKinds(g)

	var sb strings.Builder
	for row := 0; row < g.Rows; row++ {
		sb.WriteString(r.renderRow(g, kinds[row], row))
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// rowSeg is one cell's slice of a rendered row, span included.
type rowSeg struct {
	start, end int
	cell       wave.Cell
	label      bool // label-column cell, text stays inside the segment
}

// renderRow lays out one grid row in three passes over a rune buffer:
// base glyphs, then labels (which may spill across neighboring unit
// cells), then vertical borders, which win over anything under them.
func (r textRenderer) renderRow(g *wave.Grid, kind wave.TrackKind, row int) string {
	var segs []rowSeg
	pos := 0
	for col := 0; col < g.Columns; {
		c := g.Cell(row, col)
		w := r.segWidth(col, c.Span)
		segs = append(segs, rowSeg{
			start: pos,
			end:   pos + w,
			cell:  c,
			label: col == 0 && c.Span <= 1,
		})
		pos += w
		col += c.Width()
	}

	runes := make([]rune, pos)
	for _, s := range segs {
		base := baseRune(s.cell)
		for i := s.start; i < s.end; i++ {
			runes[i] = base
		}
	}
	for _, s := range segs {
		r.overlayText(runes, s)
	}
	for _, s := range segs {
		if s.cell.Left.IsSet() {
			runes[s.start] = vertRune(s.cell.Left)
		}
		if s.cell.Right.IsSet() {
			runes[s.end-1] = vertRune(s.cell.Right)
		}
	}

	var sb strings.Builder
	for _, s := range segs {
		text := string(runes[s.start:s.end])
		if r.color {
			text = r.style(kind, s.cell).Render(text)
		}
		sb.WriteString(text)
	}
	return sb.String()
}

func (r textRenderer) overlayText(runes []rune, s rowSeg) {
	if s.cell.Text == "" {
		return
	}
	text := []rune(s.cell.Text)

	if s.label {
		// Track names stay inside the label column.
		start := s.start + 1
		if max := s.end - start; len(text) > max {
			text = text[:max]
		}
		copy(runes[start:], text)
		return
	}

	// Centered on the cell, allowed to spill over neighboring unit
	// cells but never back into the label column. Sections start in the
	// label column themselves and may use the full row.
	lo := r.labelW
	if s.start < lo {
		lo = s.start
	}
	start := (s.start + s.end - len(text)) / 2
	if start < lo {
		start = lo
	}
	if max := len(runes) - start; len(text) > max {
		text = text[:max]
	}
	copy(runes[start:], text)
}

func (r textRenderer) segWidth(col, span int) int {
	if span < 1 {
		span = 1
	}
	if col == 0 {
		return r.labelW + (span-1)*r.unitW
	}
	return span * r.unitW
}

func (r textRenderer) style(kind wave.TrackKind, c wave.Cell) lipgloss.Style {
	st := lipgloss.NewStyle()
	switch {
	case c.Fill != "":
		st = st.Background(lipgloss.Color(c.Fill)).Foreground(lipgloss.Color(r.theme.FillInk))
	case kind == wave.TrackRuler:
		st = st.Foreground(lipgloss.Color(r.theme.Muted))
	default:
		if ink := accentInk(c); ink != "" {
			st = st.Foreground(lipgloss.Color(ink))
		}
	}
	if kind == wave.TrackSection {
		st = st.Bold(true)
	}
	return st
}

// accentInk returns the first explicit border color on the cell, used to
// tint timing marks and gridlines.
func accentInk(c wave.Cell) string {
	for _, l := range []wave.Line{c.Top, c.Bottom, c.Left, c.Right} {
		if l.Color != "" {
			return l.Color
		}
	}
	return ""
}

func baseRune(c wave.Cell) rune {
	top, bottom := c.Top.IsSet(), c.Bottom.IsSet()
	switch {
	case c.Top.Style == wave.LineDotted && c.Bottom.Style == wave.LineDotted:
		return '╳'
	case c.Top.Style == wave.LineDotted:
		return '╌'
	case top && bottom:
		return '─'
	case top:
		return '▔'
	case bottom:
		return '▁'
	default:
		return ' '
	}
}

func vertRune(l wave.Line) rune {
	if l.Style == wave.LineDotted {
		return '┆'
	}
	return '│'
}
