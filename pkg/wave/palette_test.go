package wave

import (
	"testing"

	"github.com/mhellwig/wavegrid/pkg/errors"
)

func TestDefaultPalette_AllColorsValid(t *testing.T) {
	p := DefaultPalette()

	colors := map[string]string{
		"default": p.Default,
		"accent":  p.Accent,
		"section": p.Section,
		"grid":    p.Grid,
	}
	for token, color := range p.Fills {
		colors["fill "+token] = color
	}

	for name, color := range colors {
		if err := errors.ValidateHexColor(color); err != nil {
			t.Errorf("%s color %q invalid: %v", name, color, err)
		}
	}
}

func TestPalette_FillLookup(t *testing.T) {
	p := DefaultPalette()

	tests := []struct {
		token string
		want  string
	}{
		{"OFF", "#D9D9D9"},
		{"off", "#D9D9D9"},
		{"Run", "#C6E0B4"},
		{"NO_SUCH_STATE", p.Default},
	}

	for _, tt := range tests {
		if got := p.Fill(tt.token); got != tt.want {
			t.Errorf("Fill(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestPalette_WithFill(t *testing.T) {
	base := DefaultPalette()

	p, err := base.WithFill("pre_op", "#123ABC")
	if err != nil {
		t.Fatalf("WithFill() error = %v", err)
	}
	if got, want := p.Fill("PRE_OP"), "#123ABC"; got != want {
		t.Errorf("Fill(PRE_OP) = %q, want %q", got, want)
	}

	// The base palette is untouched.
	if got, want := base.Fill("PRE_OP"), base.Default; got != want {
		t.Errorf("base Fill(PRE_OP) = %q, want untouched default %q", got, want)
	}
}

func TestPalette_WithFillRejectsBadInput(t *testing.T) {
	p := DefaultPalette()

	if _, err := p.WithFill("OK", "not-a-color"); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("bad color error = %v, want code %v", err, errors.ErrCodeInvalidColor)
	}
	if _, err := p.WithFill("", "#112233"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty token error = %v, want code %v", err, errors.ErrCodeInvalidInput)
	}
}
