package sink

import "github.com/mhellwig/wavegrid/pkg/wave"

// Default cell metrics shared by the SVG and PNG sinks, in CSS pixels at
// scale 1. The label column is wider than a time unit so track names fit
// without truncation.
const (
	defaultCellWidth  = 26.0
	defaultCellHeight = 24.0
	defaultLabelWidth = 150.0
	defaultMargin     = 12.0
	defaultFontSize   = 12.0
	defaultTitleBand  = 30.0
	labelPad          = 6.0
)

// geometry converts grid coordinates into drawing coordinates. Column 0
// is the label column; every later column is one time unit wide.
type geometry struct {
	cols, rows   int
	cellW, cellH float64
	labelW       float64
	margin       float64
	titleH       float64
}

// newGeometry builds the metric for a grid. scale multiplies every
// dimension; the SVG sink passes 1 and lets the viewer scale, the PNG
// sink bakes the factor into pixel coordinates because raster stroke
// widths and font sizes do not follow a context transform.
func newGeometry(g *wave.Grid, cellW, cellH, labelW float64, withTitle bool, scale float64) geometry {
	m := geometry{
		cols:   g.Columns,
		rows:   g.Rows,
		cellW:  cellW * scale,
		cellH:  cellH * scale,
		labelW: labelW * scale,
		margin: defaultMargin * scale,
	}
	if withTitle {
		m.titleH = defaultTitleBand * scale
	}
	return m
}

// colX returns the left edge of a column; col may equal the column count,
// in which case it returns the right edge of the grid.
func (m geometry) colX(col int) float64 {
	if col <= 0 {
		return m.margin
	}
	return m.margin + m.labelW + float64(col-1)*m.cellW
}

func (m geometry) rowY(row int) float64 {
	return m.margin + m.titleH + float64(row)*m.cellH
}

// cellBox returns the drawing rectangle of a cell, widened to cover its
// merged span when span is greater than one.
func (m geometry) cellBox(row, col, span int) (x, y, w, h float64) {
	if span < 1 {
		span = 1
	}
	x = m.colX(col)
	y = m.rowY(row)
	w = m.colX(col+span) - x
	h = m.cellH
	return x, y, w, h
}

func (m geometry) width() float64  { return m.colX(m.cols) + m.margin }
func (m geometry) height() float64 { return m.rowY(m.rows) + m.margin }

// trackKinds indexes a grid's tracks by row so sinks can vary typography
// for ruler and section rows.
func trackKinds(g *wave.Grid) map[int]wave.TrackKind {
	kinds := make(map[int]wave.TrackKind, len(g.Tracks))
	for _, tr := range g.Tracks {
		kinds[int(tr.Row)] = tr.Kind
	}
	return kinds
}
