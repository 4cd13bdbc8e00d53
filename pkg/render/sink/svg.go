package sink

import (
	"bytes"
	"fmt"

	"github.com/mhellwig/wavegrid/pkg/render/styles"
	"github.com/mhellwig/wavegrid/pkg/wave"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme    styles.Theme
	cellW    float64
	cellH    float64
	labelW   float64
	fontSize float64
	title    string
}

// WithTheme sets the color theme (default light).
func WithTheme(t styles.Theme) SVGOption {
	return func(r *svgRenderer) { r.theme = t }
}

// WithCellSize sets the drawing size of one time unit in pixels.
func WithCellSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.cellW, r.cellH = w, h }
}

// WithLabelWidth sets the width of the label column in pixels.
func WithLabelWidth(w float64) SVGOption {
	return func(r *svgRenderer) { r.labelW = w }
}

// WithFontSize sets the base font size in pixels.
func WithFontSize(s float64) SVGOption {
	return func(r *svgRenderer) { r.fontSize = s }
}

// WithTitle draws a centered document title above the grid.
func WithTitle(title string) SVGOption {
	return func(r *svgRenderer) { r.title = title }
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		theme:    styles.Light(),
		cellW:    defaultCellWidth,
		cellH:    defaultCellHeight,
		labelW:   defaultLabelWidth,
		fontSize: defaultFontSize,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders the grid as a standalone SVG document. Cells are
// drawn in three passes (fills, borders, text) so strokes always sit on
// top of fills and labels on top of both.
func RenderSVG(g *wave.Grid, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	m := newGeometry(g, r.cellW, r.cellH, r.labelW, r.title != "", 1)
	kinds := trackKinds(g)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.1f" height="%.1f" viewBox="0 0 %.1f %.1f" font-family="ui-monospace, Menlo, Consolas, monospace">`+"\n",
		m.width(), m.height(), m.width(), m.height())
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		m.width(), m.height(), r.theme.Paper)

	if r.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" font-weight="bold" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
			m.width()/2, m.margin+m.titleH/2, r.fontSize+3, r.theme.Ink, styles.EscapeXML(r.title))
	}

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			if c := g.Cell(row, col); c.Fill != "" {
				x, y, w, h := m.cellBox(row, col, c.Span)
				fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
					x, y, w, h, c.Fill)
			}
		}
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			r.renderBorders(&buf, m, row, col, g.Cell(row, col))
		}
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			if c := g.Cell(row, col); c.Text != "" {
				r.renderText(&buf, m, kinds[row], row, col, c)
			}
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderBorders(buf *bytes.Buffer, m geometry, row, col int, c wave.Cell) {
	x, y, w, h := m.cellBox(row, col, c.Span)
	r.line(buf, c.Top, x, y, x+w, y)
	r.line(buf, c.Bottom, x, y+h, x+w, y+h)
	r.line(buf, c.Left, x, y, x, y+h)
	r.line(buf, c.Right, x+w, y, x+w, y+h)
}

func (r svgRenderer) line(buf *bytes.Buffer, l wave.Line, x1, y1, x2, y2 float64) {
	if !l.IsSet() {
		return
	}
	dash := ""
	if d := styles.Dashes(l.Style); d != nil {
		dash = fmt.Sprintf(` stroke-dasharray="%.1f %.1f"`, d[0], d[1])
	}
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-linecap="square"%s/>`+"\n",
		x1, y1, x2, y2, r.theme.LineInk(l), styles.StrokeWidth(l.Style), dash)
}

func (r svgRenderer) renderText(buf *bytes.Buffer, m geometry, kind wave.TrackKind, row, col int, c wave.Cell) {
	x, y, w, h := m.cellBox(row, col, c.Span)
	size := r.fontSize
	ink := r.theme.TextInk(c)
	anchor := "middle"
	tx := x + w/2
	weight := ""

	switch {
	case kind == wave.TrackRuler:
		size = r.fontSize - 2
		ink = r.theme.Muted
	case kind == wave.TrackSection:
		weight = ` font-weight="bold"`
	case col == 0 && c.Span <= 1:
		// Track names hug the right edge of the label column.
		anchor = "end"
		tx = x + w - labelPad
	}

	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" fill="%s" text-anchor="%s" dominant-baseline="central"%s>%s</text>`+"\n",
		tx, y+h/2, size, ink, anchor, weight, styles.EscapeXML(c.Text))
}
