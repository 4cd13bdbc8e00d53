package wave

// AddBox appends an interval annotation: a rectangle over time units
// start through end, with the optional label written at the midpoint
// column. A box with start == end degenerates to a single fully
// bordered cell. Inverted or off-canvas intervals fail with
// [errors.ErrCodeInvalidRange] and commit nothing.
//
// [errors.ErrCodeInvalidRange]: github.com/mhellwig/wavegrid/pkg/errors.ErrCodeInvalidRange
func (c *Canvas) AddBox(name string, start, end int, label string) (RowID, error) {
	end, err := c.checkSpan(name, start, end)
	if err != nil {
		return 0, err
	}

	row := c.allocateRow(TrackBox, name)
	cells := c.cells[row]
	cells[labelColumn].Text = name

	outline := Line{Style: traceWeight}
	for u := start; u <= end; u++ {
		cell := &cells[c.columnFor(u)]
		cell.Top = outline
		cell.Bottom = outline
		if u == start {
			cell.Left = outline
		}
		if u == end {
			cell.Right = outline
		}
	}
	if label != "" {
		// The label replaces the midpoint cell's text only; borders
		// stamped above stay as they are.
		cells[c.columnFor((start+end)/2)].Text = label
	}

	return RowID(row), nil
}

// AddTimingMark appends a duration callout: an accent-colored line
// across the interval with anchored markers at both ends and the label
// at the midpoint. Unlike a box it is open at the top, denoting elapsed
// time rather than signal state. Range validation matches [Canvas.AddBox].
func (c *Canvas) AddTimingMark(start, end int, label string) (RowID, error) {
	end, err := c.checkSpan(label, start, end)
	if err != nil {
		return 0, err
	}

	row := c.allocateRow(TrackMark, label)
	cells := c.cells[row]

	accent := Line{Style: traceWeight, Color: c.palette.Accent}
	for u := start; u <= end; u++ {
		cell := &cells[c.columnFor(u)]
		cell.Bottom = accent
		if u == start {
			cell.Left = accent
		}
		if u == end {
			cell.Right = accent
		}
	}
	if label != "" {
		cells[c.columnFor((start+end)/2)].Text = label
	}

	return RowID(row), nil
}

// AddSection appends a full-width header row separating diagram
// sections. The title cell spans the label column and every time unit.
func (c *Canvas) AddSection(title string) RowID {
	row := c.allocateRow(TrackSection, title)
	anchor := &c.cells[row][labelColumn]
	anchor.Text = title
	anchor.Fill = c.palette.Section
	anchor.Span = c.columns
	return RowID(row)
}

// AddSpacer appends an empty row between tracks.
func (c *Canvas) AddSpacer() {
	c.allocateRow(TrackSpacer, "")
}
