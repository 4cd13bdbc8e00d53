package wave

// LineStyle is the weight of a cell border side. The zero value is no
// border at all, so a zero Cell renders as empty space.
type LineStyle string

const (
	LineNone   LineStyle = ""
	LineThin   LineStyle = "thin"
	LineMedium LineStyle = "medium"
	LineThick  LineStyle = "thick"
	LineDotted LineStyle = "dotted"
)

// Line is one border side of a cell. An empty Color means the renderer's
// default ink; otherwise Color is a "#RRGGBB" value.
type Line struct {
	Style LineStyle
	Color string
}

// IsSet reports whether the side draws anything.
func (l Line) IsSet() bool { return l.Style != LineNone }

// Cell is a single grid position. Encoders write cells exactly once; the
// only later revision is the falling-edge right border on the previous
// cell and the gridline/frame stamping during Finalize.
type Cell struct {
	Top    Line
	Bottom Line
	Left   Line
	Right  Line
	Fill   string // "#RRGGBB" background, empty for none
	Text   string // label anchored at this cell
	Span   int    // columns covered when this cell anchors a merge; 0 or 1 means unmerged
}

// Width returns the number of columns the cell occupies.
func (c Cell) Width() int {
	if c.Span > 1 {
		return c.Span
	}
	return 1
}

// Empty reports whether the cell carries no visual state at all.
func (c Cell) Empty() bool {
	return !c.Top.IsSet() && !c.Bottom.IsSet() && !c.Left.IsSet() && !c.Right.IsSet() &&
		c.Fill == "" && c.Text == "" && c.Span <= 1
}

// Border weights used by the encoders. Gridlines are light so signal
// traces stay visually dominant; the outer frame is heavier than both.
const (
	traceWeight = LineMedium // digital traces, boxes, timing marks
	stateWeight = LineThin   // state-run outlines
	gridWeight  = LineThin   // vertical major gridlines
	frameWeight = LineThick  // outer bounding border
)
