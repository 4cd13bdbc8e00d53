package wave

import "strings"

// AddStates appends a state track. Each token covers one time unit;
// maximal runs of identical consecutive tokens merge into a single
// labeled span filled from the palette. Blank tokens are gaps: they
// leave their cells unset and end the current run, so two equal runs
// separated by a gap stay separate. Tokens past the canvas width are
// dropped with a warning.
//
// AddStates cannot fail; unknown tokens simply fall back to the
// palette's default fill.
func (c *Canvas) AddStates(name string, states []string) RowID {
	row := c.allocateRow(TrackState, name)
	cells := c.cells[row]
	cells[labelColumn].Text = name

	n := c.clipUnits(name, len(states))
	outline := Line{Style: stateWeight}

	for i := 0; i < n; {
		token := strings.TrimSpace(states[i])
		if token == "" {
			i++
			continue
		}

		// Extend the run while tokens stay identical.
		j := i + 1
		for j < n && strings.TrimSpace(states[j]) == token {
			j++
		}

		anchor := &cells[c.columnFor(i)]
		anchor.Top = outline
		anchor.Bottom = outline
		anchor.Left = outline
		anchor.Right = outline
		anchor.Fill = c.palette.Fill(token)
		anchor.Text = token
		if span := j - i; span > 1 {
			anchor.Span = span
		}

		i = j
	}

	return RowID(row)
}
