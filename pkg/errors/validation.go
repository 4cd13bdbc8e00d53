package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateLabel validates a track or annotation label before it is written
// into an output document. Labels come straight from user-authored diagram
// files and end up embedded in SVG, spreadsheet, and terminal output, so
// control characters are rejected outright.
//
// The validation rules are intentionally conservative:
//   - No control characters (tabs and newlines included)
//   - No null bytes
//   - Maximum length of 128 characters
//
// Empty labels are allowed; several track kinds render without one.
func ValidateLabel(label string) error {
	if len(label) > 128 {
		return New(ErrCodeInvalidLabel, "label too long (max 128 characters)")
	}

	for _, r := range label {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label contains control characters")
		}
	}

	return nil
}

// tokenRegex matches state tokens as they may appear in palettes and state
// tracks: word characters plus the separators commonly used in signal names.
var tokenRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._ /-]*$`)

// ValidateToken validates a state token such as "RUN" or "SLEEP".
// Tokens are matched case-insensitively against the palette, so casing is
// not restricted here.
func ValidateToken(token string) error {
	if token == "" {
		return New(ErrCodeInvalidInput, "state token cannot be empty")
	}

	if len(token) > 64 {
		return New(ErrCodeInvalidInput, "state token too long (max 64 characters)")
	}

	if !tokenRegex.MatchString(token) {
		return New(ErrCodeInvalidInput, "invalid state token: %q", token)
	}

	return nil
}

// hexColorRegex matches six-digit hex colors with a leading hash.
var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateHexColor validates a color value in "#RRGGBB" form.
// This is the only color syntax accepted in palettes and themes; short
// forms and named colors are rejected so that every output backend can
// consume the value without translation.
func ValidateHexColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}

	if !strings.HasPrefix(color, "#") {
		return New(ErrCodeInvalidColor, "color must start with '#': %q", color)
	}

	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid hex color: %q (expected #RRGGBB)", color)
	}

	return nil
}
