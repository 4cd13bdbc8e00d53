package errors

import (
	"strings"
	"testing"
)

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{"empty is allowed", "", false},
		{"simple label", "CAN TX", false},
		{"unicode label", "Türöffner", false},
		{"punctuation", "COM_SendSignal()", false},
		{"newline rejected", "line1\nline2", true},
		{"tab rejected", "a\tb", true},
		{"null byte rejected", "a\x00b", true},
		{"too long", strings.Repeat("x", 129), true},
		{"max length ok", strings.Repeat("x", 128), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel(tt.label)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidLabel) {
				t.Errorf("ValidateLabel(%q) code = %v, want %v", tt.label, GetCode(err), ErrCodeInvalidLabel)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"uppercase", "RUN", false},
		{"lowercase", "sleep", false},
		{"mixed separators", "PRE_OP.1", false},
		{"spaces inside", "BUS OFF", false},
		{"empty", "", true},
		{"leading separator", "-RUN", true},
		{"control character", "RU\nN", true},
		{"too long", strings.Repeat("A", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateToken(tt.token)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateToken(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		wantErr bool
	}{
		{"uppercase hex", "#C6E0B4", false},
		{"lowercase hex", "#ffcc00", false},
		{"missing hash", "C6E0B4", true},
		{"short form", "#FC0", true},
		{"eight digits", "#C6E0B4FF", true},
		{"non-hex digits", "#GGHHII", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHexColor(tt.color)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHexColor(%q) error = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColor) {
				t.Errorf("ValidateHexColor(%q) code = %v, want %v", tt.color, GetCode(err), ErrCodeInvalidColor)
			}
		})
	}
}
