package wave

import (
	"strings"
	"testing"

	"github.com/mhellwig/wavegrid/pkg/errors"
)

func TestAddDigital_PowerScenario(t *testing.T) {
	c := newCanvas(t, 10)
	row, err := c.AddDigital("Power", "0001111000")
	if err != nil {
		t.Fatalf("AddDigital() error = %v", err)
	}

	if got, want := cellAt(c, row, labelColumn).Text, "Power"; got != want {
		t.Errorf("label = %q, want %q", got, want)
	}

	for unit := 0; unit < 10; unit++ {
		cell := cellAt(c, row, 1+unit)

		// High segment runs across units 3-6.
		if got, want := cell.Top.IsSet(), unit >= 3 && unit <= 6; got != want {
			t.Errorf("unit %d top set = %v, want %v", unit, got, want)
		}
		// Low segments before the rise and after the fall.
		if got, want := cell.Bottom.IsSet(), unit <= 2 || unit >= 7; got != want {
			t.Errorf("unit %d bottom set = %v, want %v", unit, got, want)
		}
		// Rising edge enters unit 3 on the left.
		if got, want := cell.Left.IsSet(), unit == 3; got != want {
			t.Errorf("unit %d left set = %v, want %v", unit, got, want)
		}
		// Falling edge closes the previous cell, unit 6, on the right.
		if got, want := cell.Right.IsSet(), unit == 6; got != want {
			t.Errorf("unit %d right set = %v, want %v", unit, got, want)
		}
	}

	// The look-back adds the right border without disturbing anything
	// else on the closed cell.
	closed := cellAt(c, row, 7)
	if got, want := closed.Top.Style, LineMedium; got != want {
		t.Errorf("closed cell top = %v, want %v", got, want)
	}
	if got, want := closed.Right.Style, LineMedium; got != want {
		t.Errorf("closed cell right = %v, want %v", got, want)
	}
}

func TestAddDigital_InvalidSymbol(t *testing.T) {
	c := newCanvas(t, 10)
	_, err := c.AddDigital("bad", "012")

	if !errors.Is(err, errors.ErrCodeInvalidSymbol) {
		t.Fatalf("error = %v, want code %v", err, errors.ErrCodeInvalidSymbol)
	}
	msg := errors.UserMessage(err)
	if !strings.Contains(msg, "'2'") || !strings.Contains(msg, "position 2") {
		t.Errorf("message = %q, want offending symbol and position", msg)
	}

	// A failed add commits nothing: only the ruler row exists.
	if got, want := len(c.cells), 1; got != want {
		t.Errorf("rows after failed add = %d, want %d", got, want)
	}
	if got, want := len(c.tracks), 1; got != want {
		t.Errorf("tracks after failed add = %d, want %d", got, want)
	}
}

func TestAddDigital_LowercaseXRejected(t *testing.T) {
	c := newCanvas(t, 4)
	_, err := c.AddDigital("bad", "0x10")
	if !errors.Is(err, errors.ErrCodeInvalidSymbol) {
		t.Fatalf("error = %v, want code %v", err, errors.ErrCodeInvalidSymbol)
	}
	if msg := errors.UserMessage(err); !strings.Contains(msg, "position 1") {
		t.Errorf("message = %q, want position 1", msg)
	}
}

// Every rising edge is eventually closed by a falling edge unless the
// pattern ends high, so over {0,1} the edge counts differ by at most one.
func TestAddDigital_EdgeParity(t *testing.T) {
	patterns := []string{
		"0", "1", "01", "10", "0110", "1001", "010101", "101010",
		"0001111000", "1111", "0000", "1010101010", "0111111110",
	}

	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			c := newCanvas(t, len(p))
			row, err := c.AddDigital("sig", p)
			if err != nil {
				t.Fatalf("AddDigital(%q) error = %v", p, err)
			}

			rising, falling := 0, 0
			for unit := 0; unit < len(p); unit++ {
				cell := cellAt(c, row, 1+unit)
				if cell.Left.IsSet() {
					rising++
				}
				if cell.Right.IsSet() {
					falling++
				}
			}

			want := 0
			if p[len(p)-1] == '1' {
				want = 1
			}
			if got := rising - falling; got != want {
				t.Errorf("rising - falling = %d, want %d", got, want)
			}
		})
	}
}

func TestAddDigital_StartsHigh(t *testing.T) {
	c := newCanvas(t, 4)
	row, err := c.AddDigital("RST", "1100")
	if err != nil {
		t.Fatalf("AddDigital() error = %v", err)
	}

	// The low baseline means a leading 1 rises at unit 0.
	first := cellAt(c, row, 1)
	if !first.Left.IsSet() || !first.Top.IsSet() {
		t.Errorf("unit 0 = %+v, want left and top set", first)
	}
}

func TestAddDigital_DontCare(t *testing.T) {
	c := newCanvas(t, 3)
	row, err := c.AddDigital("D0", "0-1")
	if err != nil {
		t.Fatalf("AddDigital() error = %v", err)
	}

	mid := cellAt(c, row, 2)
	if got, want := mid.Top.Style, LineDotted; got != want {
		t.Errorf("don't-care top = %v, want %v", got, want)
	}
	if mid.Bottom.IsSet() || mid.Left.IsSet() || mid.Right.IsSet() {
		t.Errorf("don't-care cell = %+v, want dotted top only", mid)
	}

	// Leaving the don't-care for a high level counts as a rising edge.
	next := cellAt(c, row, 3)
	if !next.Left.IsSet() || next.Left.Style != LineMedium {
		t.Errorf("unit 2 left = %+v, want medium rising edge", next.Left)
	}
}

func TestAddDigital_Undefined(t *testing.T) {
	c := newCanvas(t, 3)
	row, err := c.AddDigital("BUS", "0X0")
	if err != nil {
		t.Fatalf("AddDigital() error = %v", err)
	}

	// The dotted box stands on its own: the following low level must
	// not replace its right side with a solid falling edge.
	box := cellAt(c, row, 2)
	for side, line := range map[string]Line{
		"top": box.Top, "bottom": box.Bottom, "left": box.Left, "right": box.Right,
	} {
		if got, want := line.Style, LineDotted; got != want {
			t.Errorf("undefined cell %s = %v, want %v", side, got, want)
		}
	}

	if got := cellAt(c, row, 3); !got.Bottom.IsSet() {
		t.Errorf("unit 2 after undefined = %+v, want low level", got)
	}
}

func TestAddDigital_TruncatesLongPattern(t *testing.T) {
	c := newCanvas(t, 4)
	row, err := c.AddDigital("CLK", "010101")
	if err != nil {
		t.Fatalf("AddDigital() error = %v", err)
	}

	// Unit 3 is the last encoded unit; the pattern's tail is dropped.
	lastCell := cellAt(c, row, 4)
	if !lastCell.Top.IsSet() || !lastCell.Left.IsSet() {
		t.Errorf("unit 3 = %+v, want rising high", lastCell)
	}
}

func TestAddDigital_ShortPatternLeavesTrailingBlank(t *testing.T) {
	c := newCanvas(t, 8)
	row, err := c.AddDigital("EN", "01")
	if err != nil {
		t.Fatalf("AddDigital() error = %v", err)
	}

	for unit := 2; unit < 8; unit++ {
		if got := cellAt(c, row, 1+unit); !got.Empty() {
			t.Errorf("unit %d = %+v, want blank", unit, got)
		}
	}
}

func TestAddDigital_EmptyPattern(t *testing.T) {
	c := newCanvas(t, 4)
	row, err := c.AddDigital("NC", "")
	if err != nil {
		t.Fatalf("AddDigital() error = %v", err)
	}
	if got, want := cellAt(c, row, labelColumn).Text, "NC"; got != want {
		t.Errorf("label = %q, want %q", got, want)
	}
	for unit := 0; unit < 4; unit++ {
		if got := cellAt(c, row, 1+unit); !got.Empty() {
			t.Errorf("unit %d = %+v, want blank", unit, got)
		}
	}
}
