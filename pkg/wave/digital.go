package wave

import "github.com/mhellwig/wavegrid/pkg/errors"

// AddDigital appends a digital waveform track. Each pattern symbol
// covers one time unit:
//
//	0  low level (line along the cell bottom)
//	1  high level (line along the cell top)
//	-  don't-care (dotted line)
//	X  undefined (dotted box)
//
// Level transitions draw vertical strokes: a rising edge on the left
// border of the cell where the high level starts, a falling edge on the
// right border of the cell where it ended. Patterns are assumed to start
// from a low baseline, so a leading 1 begins with a rising edge.
//
// A symbol outside the alphabet fails with
// [errors.ErrCodeInvalidSymbol], naming the offending position, and
// commits nothing. Symbols past the canvas width are dropped with a
// warning.
func (c *Canvas) AddDigital(name, pattern string) (RowID, error) {
	syms := []rune(pattern)
	for i, s := range syms {
		switch s {
		case '0', '1', '-', 'X':
		default:
			return 0, errors.New(errors.ErrCodeInvalidSymbol, "invalid symbol %q at position %d", s, i)
		}
	}

	row := c.allocateRow(TrackDigital, name)
	cells := c.cells[row]
	cells[labelColumn].Text = name

	n := c.clipUnits(name, len(syms))
	prev := '0'
	for i := 0; i < n; i++ {
		cur := &cells[c.columnFor(i)]
		switch s := syms[i]; s {
		case '0', '1':
			level := Line{Style: traceWeight}
			if s != prev {
				if s == '1' {
					cur.Left = level
				} else if i > 0 {
					// Falling edge: close the high segment on the
					// previous cell. This is the only look-back in the
					// whole encoding, and it only adds a border, so an
					// undefined cell keeps its dotted box.
					if prevCell := &cells[c.columnFor(i-1)]; !prevCell.Right.IsSet() {
						prevCell.Right = level
					}
				}
			}
			if s == '1' {
				cur.Top = level
			} else {
				cur.Bottom = level
			}
		case '-':
			cur.Top = Line{Style: LineDotted}
		case 'X':
			d := Line{Style: LineDotted}
			cur.Top, cur.Bottom, cur.Left, cur.Right = d, d, d, d
		}
		prev = syms[i]
	}

	return RowID(row), nil
}
