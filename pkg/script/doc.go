// Package script loads timing-diagram documents from TOML files.
//
// # Overview
//
// A diagram document describes a complete timing diagram declaratively:
// canvas width, an ordered list of tracks, and optional palette and
// theme settings. Documents are the input to the render pipeline and
// the unit of caching; everything the encoder needs is in the file.
//
// # Document Format
//
//	title = "Door switch to interior light"
//	units = 24
//	theme = "light"
//
//	[palette]
//	PRE_OP = "#BDD7EE"
//
//	[[track]]
//	kind = "section"
//	title = "ECU A"
//
//	[[track]]
//	kind = "digital"
//	name = "Door switch"
//	pattern = "000111111111000000000000"
//
//	[[track]]
//	kind = "state"
//	name = "COM state"
//	states = ["OFF", "OFF", "RUN", "RUN", "RUN", "RUN"]
//
//	[[track]]
//	kind = "box"
//	name = "CAN frame"
//	start = 4
//	end = 11
//	label = "ID 0x1A3"
//
//	[[track]]
//	kind = "mark"
//	start = 4
//	end = 11
//	label = "240 us"
//
//	[[track]]
//	kind = "spacer"
//
// # Track Kinds
//
// Every [[track]] table needs a kind; the remaining fields depend on it:
//
//   - digital: name, pattern (symbols 0, 1, -, X; one per time unit)
//   - state: name, states (one token per time unit; "" is a gap)
//   - box: name, start, end, optional label
//   - mark: start, end, label
//   - section: title
//   - spacer: no further fields
//
// start and end are inclusive time units counted from 0. They are
// required for box and mark tracks so that a misspelled key cannot
// silently collapse an interval to unit 0.
//
// # Palette
//
// The optional [palette] table extends or overrides the built-in
// token/color table used by state tracks. Keys are state tokens, values
// are "#RRGGBB" colors. Matching stays case-insensitive.
//
// # Validation
//
// [Parse] and [Load] reject malformed TOML, unknown keys (typo
// protection), unknown track kinds, missing required fields, control
// characters in labels, and invalid palette entries, all with
// [errors.ErrCodeInvalidDocument]. Range and symbol errors surface later,
// when [Document.Build] encodes the tracks.
//
// [errors.ErrCodeInvalidDocument]: github.com/mhellwig/wavegrid/pkg/errors.ErrCodeInvalidDocument
package script
