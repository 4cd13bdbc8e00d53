package wave

import (
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/mhellwig/wavegrid/pkg/errors"
)

const (
	// labelColumn holds track names; time units start one column right.
	labelColumn = 0
	baseColumn  = 1

	// majorGridPeriod is the time-unit spacing of ruler ticks and
	// vertical gridlines.
	majorGridPeriod = 5
)

// RowID identifies a grid row allocated by an add call.
type RowID int

// TrackKind tells sinks what a row contains.
type TrackKind string

const (
	TrackRuler   TrackKind = "ruler"
	TrackDigital TrackKind = "digital"
	TrackState   TrackKind = "state"
	TrackBox     TrackKind = "box"
	TrackMark    TrackKind = "mark"
	TrackSection TrackKind = "section"
	TrackSpacer  TrackKind = "spacer"
)

// Track records one allocated row: its position, kind, and display name.
type Track struct {
	Row  RowID
	Kind TrackKind
	Name string
}

// Canvas accumulates tracks row by row. Create one with [New], add
// tracks top to bottom, then call [Canvas.Finalize] exactly once.
type Canvas struct {
	timeUnits int
	columns   int
	cursorRow int
	cells     [][]Cell
	tracks    []Track
	palette   Palette
	logger    *log.Logger
}

// Option configures a Canvas at construction time.
type Option func(*Canvas)

// WithPalette replaces the default token/color palette.
func WithPalette(p Palette) Option {
	return func(c *Canvas) { c.palette = p }
}

// WithLogger sets the logger used for truncation warnings. The default
// discards them.
func WithLogger(l *log.Logger) Option {
	return func(c *Canvas) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a canvas that is timeUnits discrete time columns wide,
// plus one label column. The time ruler occupies row 0.
func New(timeUnits int, opts ...Option) (*Canvas, error) {
	if timeUnits < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "time units must be at least 1, got %d", timeUnits)
	}

	c := &Canvas{
		timeUnits: timeUnits,
		columns:   baseColumn + timeUnits,
		palette:   DefaultPalette(),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	ruler := c.allocateRow(TrackRuler, "")
	for unit := 0; unit < c.timeUnits; unit += majorGridPeriod {
		c.cells[ruler][c.columnFor(unit)].Text = strconv.Itoa(unit)
	}

	return c, nil
}

// TimeUnits returns the canvas width in time units.
func (c *Canvas) TimeUnits() int { return c.timeUnits }

// Palette returns the palette the canvas encodes with.
func (c *Canvas) Palette() Palette { return c.palette }

// allocateRow hands out the next free row and records its track entry.
// The cursor only ever moves forward.
func (c *Canvas) allocateRow(kind TrackKind, name string) int {
	row := c.cursorRow
	c.cursorRow++
	c.cells = append(c.cells, make([]Cell, c.columns))
	c.tracks = append(c.tracks, Track{Row: RowID(row), Kind: kind, Name: name})
	return row
}

// columnFor maps a time unit to its grid column.
func (c *Canvas) columnFor(unit int) int { return baseColumn + unit }

// clipUnits bounds a pattern length to the canvas width. Overlong
// patterns are a warning, not an error, so patterns can be reused across
// diagrams of different widths.
func (c *Canvas) clipUnits(track string, n int) int {
	if n <= c.timeUnits {
		return n
	}
	c.logger.Warn("pattern wider than canvas, truncating",
		"track", track, "units", n, "width", c.timeUnits)
	return c.timeUnits
}

// checkSpan validates a [start, end] interval and returns the end
// clamped to the canvas width. Inverted, negative, or fully off-canvas
// intervals are rejected; an end that merely runs past the right edge is
// clamped with a warning.
func (c *Canvas) checkSpan(track string, start, end int) (int, error) {
	if start > end {
		return 0, errors.New(errors.ErrCodeInvalidRange, "start %d greater than end %d", start, end)
	}
	if start < 0 {
		return 0, errors.New(errors.ErrCodeInvalidRange, "negative start %d", start)
	}
	if start >= c.timeUnits {
		return 0, errors.New(errors.ErrCodeInvalidRange, "start %d outside canvas width %d", start, c.timeUnits)
	}
	if end >= c.timeUnits {
		c.logger.Warn("interval end past canvas edge, clamping",
			"track", track, "end", end, "width", c.timeUnits)
		end = c.timeUnits - 1
	}
	return end, nil
}
