// Package wave encodes timing diagrams onto a rectangular grid of cells.
//
// # Overview
//
// A timing diagram shows how digital signals, state machines, and bus
// activity evolve over discrete time units. This package implements the
// core encoding: compact textual signal descriptions (bit patterns, state
// sequences, interval spans) become per-cell visual attributes (border
// sides, fill colors, merged spans, text labels). The resulting [Grid] is
// medium-agnostic; the sink packages turn it into spreadsheets, SVG,
// raster images, or terminal output without knowing anything about
// signals or edges.
//
// # Coordinate System
//
// Column 0 is reserved for track labels. Time unit i maps to column i+1,
// so a canvas with N time units is N+1 columns wide. Row 0 is the time
// ruler (tick numbers every five units); every add call allocates the
// next free row below it. Rows are never revisited once written, with a
// single exception: a falling edge in a digital pattern closes the
// waveform by adding a right border to the immediately preceding cell.
//
// # Basic Usage
//
// Create a [Canvas] with [New], add tracks in display order, and call
// [Canvas.Finalize] exactly once to obtain the [Grid]:
//
//	c, err := wave.New(16)
//	if err != nil {
//	    return err
//	}
//	c.AddSection("CAN bus")
//	c.AddDigital("CLK", "0101010101010101")
//	c.AddStates("Mode", []string{"OFF", "OFF", "RUN", "RUN", "RUN"})
//	c.AddBox("Frame", 2, 9, "ID 0x1A3")
//	c.AddTimingMark(2, 9, "240 us")
//	grid := c.Finalize()
//
// Finalize stamps light vertical gridlines on every fifth time unit and a
// heavy border around the occupied region, then snapshots the grid. It
// must be called exactly once; the canvas must not be used afterwards.
//
// # Track Kinds
//
//   - [TrackDigital]: one symbol per time unit from the alphabet 0, 1,
//     - (don't-care) and X (undefined), drawn as a waveform trace.
//   - [TrackState]: one token per time unit; runs of identical tokens
//     merge into labeled, colored spans.
//   - [TrackBox]: a labeled rectangle over an interval of time units.
//   - [TrackMark]: an accent-colored duration callout with end markers.
//   - [TrackSection]: a full-width header separating diagram sections.
//   - [TrackSpacer]: an empty row.
//
// # Merged Spans
//
// A multi-column span (state run, section header) is stored entirely on
// its anchor cell: the anchor's [Cell.Span] gives the width in columns,
// its left and right borders are the span's outer edges, and its top and
// bottom borders run the full width. Cells covered by a span carry no
// state of their own.
//
// # Errors
//
// [Canvas.AddDigital] rejects symbols outside its alphabet with
// [errors.ErrCodeInvalidSymbol]; [Canvas.AddBox] and
// [Canvas.AddTimingMark] reject inverted or out-of-range intervals with
// [errors.ErrCodeInvalidRange]. A failed add commits nothing; the canvas
// keeps all previously added rows and remains usable. Patterns and
// intervals that merely run past the right edge of the canvas are
// truncated with a warning rather than rejected, so the same pattern can
// be reused across diagrams of different widths.
//
// # Concurrency
//
// A Canvas is not safe for concurrent use. The digital encoder's edge
// detection depends on the previous unit's committed state, so time units
// are processed strictly left to right and rows strictly in add order.
//
// [errors.ErrCodeInvalidSymbol]: github.com/mhellwig/wavegrid/pkg/errors.ErrCodeInvalidSymbol
// [errors.ErrCodeInvalidRange]: github.com/mhellwig/wavegrid/pkg/errors.ErrCodeInvalidRange
package wave
