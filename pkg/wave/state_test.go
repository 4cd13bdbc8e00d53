package wave

import "testing"

func TestAddStates_ModeScenario(t *testing.T) {
	c := newCanvas(t, 10)
	row := c.AddStates("Mode", []string{"OFF", "OFF", "RUN", "RUN", "RUN"})

	if got, want := cellAt(c, row, labelColumn).Text, "Mode"; got != want {
		t.Errorf("label = %q, want %q", got, want)
	}

	off := cellAt(c, row, 1)
	if got, want := off.Text, "OFF"; got != want {
		t.Errorf("first anchor text = %q, want %q", got, want)
	}
	if got, want := off.Span, 2; got != want {
		t.Errorf("first anchor span = %d, want %d", got, want)
	}
	if got, want := off.Fill, "#D9D9D9"; got != want {
		t.Errorf("first anchor fill = %q, want %q", got, want)
	}

	run := cellAt(c, row, 3)
	if got, want := run.Text, "RUN"; got != want {
		t.Errorf("second anchor text = %q, want %q", got, want)
	}
	if got, want := run.Span, 3; got != want {
		t.Errorf("second anchor span = %d, want %d", got, want)
	}

	for _, anchor := range []Cell{off, run} {
		for side, line := range map[string]Line{
			"top": anchor.Top, "bottom": anchor.Bottom, "left": anchor.Left, "right": anchor.Right,
		} {
			if got, want := line.Style, LineThin; got != want {
				t.Errorf("anchor %s = %v, want %v", side, got, want)
			}
		}
	}

	// Covered cells and the units past the sequence stay blank.
	for _, col := range []int{2, 4, 5, 6, 7, 8, 9, 10} {
		if got := cellAt(c, row, col); !got.Empty() {
			t.Errorf("col %d = %+v, want blank", col, got)
		}
	}
}

func TestAddStates_GapEndsRun(t *testing.T) {
	c := newCanvas(t, 5)
	row := c.AddStates("REQ", []string{"ON", "", "ON"})

	first := cellAt(c, row, 1)
	second := cellAt(c, row, 3)
	for _, anchor := range []Cell{first, second} {
		if got, want := anchor.Text, "ON"; got != want {
			t.Errorf("anchor text = %q, want %q", got, want)
		}
		if got := anchor.Span; got > 1 {
			t.Errorf("anchor span = %d, want unmerged", got)
		}
	}
	if got := cellAt(c, row, 2); !got.Empty() {
		t.Errorf("gap cell = %+v, want blank", got)
	}
}

func TestAddStates_WhitespaceTokenIsGap(t *testing.T) {
	c := newCanvas(t, 3)
	row := c.AddStates("STS", []string{"  ", "ON"})

	if got := cellAt(c, row, 1); !got.Empty() {
		t.Errorf("whitespace token cell = %+v, want blank", got)
	}
	if got, want := cellAt(c, row, 2).Text, "ON"; got != want {
		t.Errorf("anchor text = %q, want %q", got, want)
	}
}

func TestAddStates_SingleUnitRun(t *testing.T) {
	c := newCanvas(t, 4)
	row := c.AddStates("IRQ", []string{"", "ERROR", ""})

	anchor := cellAt(c, row, 2)
	if got, want := anchor.Text, "ERROR"; got != want {
		t.Errorf("anchor text = %q, want %q", got, want)
	}
	if !anchor.Top.IsSet() || !anchor.Bottom.IsSet() || !anchor.Left.IsSet() || !anchor.Right.IsSet() {
		t.Errorf("single-unit run = %+v, want all four borders", anchor)
	}
	if got, want := anchor.Width(), 1; got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
}

func TestAddStates_UnknownTokenDefaultFill(t *testing.T) {
	c := newCanvas(t, 2)
	row := c.AddStates("X", []string{"WOBBLE"})

	if got, want := cellAt(c, row, 1).Fill, DefaultPalette().Default; got != want {
		t.Errorf("fill = %q, want default %q", got, want)
	}
}

func TestAddStates_FillLookupCaseInsensitive(t *testing.T) {
	c := newCanvas(t, 4)
	row := c.AddStates("M", []string{"off", "OFF"})

	// Different casings are different runs but share the palette entry.
	first := cellAt(c, row, 1)
	second := cellAt(c, row, 2)
	if first.Span > 1 {
		t.Errorf("span = %d, want two separate runs", first.Span)
	}
	if first.Fill != second.Fill || first.Fill != "#D9D9D9" {
		t.Errorf("fills = %q, %q, want both %q", first.Fill, second.Fill, "#D9D9D9")
	}
}

// Expanding the encoded runs back into one token per unit and
// re-encoding must reproduce the same anchors.
func TestAddStates_ReencodeStable(t *testing.T) {
	tokens := []string{"OFF", "OFF", "RUN", "RUN", "RUN", "", "RUN", "IDLE"}
	c := newCanvas(t, len(tokens))
	first := c.AddStates("m", tokens)

	decoded := make([]string, len(tokens))
	for unit := 0; unit < len(tokens); unit++ {
		cell := cellAt(c, first, 1+unit)
		for k := 0; k < cell.Width() && cell.Text != ""; k++ {
			decoded[unit+k] = cell.Text
		}
	}

	second := c.AddStates("m", decoded)
	for col := 1; col <= len(tokens); col++ {
		if got, want := cellAt(c, second, col), cellAt(c, first, col); got != want {
			t.Errorf("col %d = %+v, want %+v", col, got, want)
		}
	}
}

func TestAddStates_TruncatesLongSequence(t *testing.T) {
	c := newCanvas(t, 3)
	row := c.AddStates("M", []string{"RUN", "RUN", "RUN", "RUN", "RUN"})

	anchor := cellAt(c, row, 1)
	if got, want := anchor.Span, 3; got != want {
		t.Errorf("span = %d, want clipped to %d", got, want)
	}
}
