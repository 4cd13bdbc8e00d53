package wave

// Grid is the finalized, medium-agnostic snapshot of a canvas. Sinks
// walk its cells and draw them without any knowledge of signals.
type Grid struct {
	TimeUnits int
	Columns   int
	Rows      int
	Tracks    []Track

	cells [][]Cell
}

// Cell returns the cell at (row, col), or a zero cell when the address
// is out of range. Cells covered by a merged span are zero by
// construction; their visual state lives on the span's anchor.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= len(g.cells) {
		return Cell{}
	}
	if col < 0 || col >= len(g.cells[row]) {
		return Cell{}
	}
	return g.cells[row][col]
}

// Finalize stamps the vertical gridlines and the outer frame, then
// returns the finished grid. Call it exactly once, after the last add;
// a second call stamps the decorations again. The canvas must not be
// used afterwards.
func (c *Canvas) Finalize() *Grid {
	last := c.cursorRow - 1

	for row := 0; row <= last; row++ {
		owner := c.rowOwners(row)
		cells := c.cells[row]

		// Light divider on every fifth time unit, only where no track
		// has claimed the border and never inside a merged span.
		for unit := 0; unit < c.timeUnits; unit += majorGridPeriod {
			col := c.columnFor(unit)
			if owner[col] != col {
				continue
			}
			if cell := &cells[col]; !cell.Left.IsSet() {
				cell.Left = Line{Style: gridWeight, Color: c.palette.Grid}
			}
		}

		// Heavy frame on the outward-facing sides of the edge cells.
		// Interior borders are untouched; a span reaching the edge
		// carries the frame side on its anchor.
		frame := Line{Style: frameWeight}
		cells[0].Left = frame
		cells[owner[c.columns-1]].Right = frame
		if row == 0 {
			for col := 0; col < c.columns; col++ {
				if owner[col] == col {
					cells[col].Top = frame
				}
			}
		}
		if row == last {
			for col := 0; col < c.columns; col++ {
				if owner[col] == col {
					cells[col].Bottom = frame
				}
			}
		}
	}

	return &Grid{
		TimeUnits: c.timeUnits,
		Columns:   c.columns,
		Rows:      c.cursorRow,
		Tracks:    c.tracks,
		cells:     c.cells,
	}
}

// rowOwners maps every column to the column owning it: itself, or the
// anchor of the span covering it.
func (c *Canvas) rowOwners(row int) []int {
	owner := make([]int, c.columns)
	for col := range owner {
		owner[col] = col
	}
	for col, cell := range c.cells[row] {
		for k := 1; k < cell.Span && col+k < c.columns; k++ {
			owner[col+k] = col
		}
	}
	return owner
}
