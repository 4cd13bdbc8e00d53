package sink

import (
	"testing"

	"github.com/mhellwig/wavegrid/pkg/wave"
)

// testGrid builds a small diagram exercising every track kind, dotted
// borders included. Rows: ruler, section, CLK, DATA, MODE, FRAME, mark.
func testGrid(t *testing.T) *wave.Grid {
	t.Helper()
	c, err := wave.New(10)
	if err != nil {
		t.Fatalf("wave.New() error: %v", err)
	}
	c.AddSection("Power Up")
	if _, err := c.AddDigital("CLK", "0101010101"); err != nil {
		t.Fatalf("AddDigital(CLK) error: %v", err)
	}
	if _, err := c.AddDigital("DATA", "0-X1011100"); err != nil {
		t.Fatalf("AddDigital(DATA) error: %v", err)
	}
	c.AddStates("MODE", []string{"OFF", "OFF", "RUN", "RUN", "RUN"})
	if _, err := c.AddBox("FRAME", 2, 7, "ID 0x1A3"); err != nil {
		t.Fatalf("AddBox(FRAME) error: %v", err)
	}
	if _, err := c.AddTimingMark(1, 4, "t_setup"); err != nil {
		t.Fatalf("AddTimingMark() error: %v", err)
	}
	return c.Finalize()
}
