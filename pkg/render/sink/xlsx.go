package sink

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mhellwig/wavegrid/pkg/errors"
	"github.com/mhellwig/wavegrid/pkg/render/styles"
	"github.com/mhellwig/wavegrid/pkg/wave"
)

const (
	labelColWidth = 22.0
	unitColWidth  = 3.4
	gridRowHeight = 20.0
)

// XLSXOption configures workbook rendering.
type XLSXOption func(*xlsxRenderer)

type xlsxRenderer struct {
	theme  styles.Theme
	sheet  string
	freeze bool
}

// WithSheetName names the worksheet (default "Diagram").
func WithSheetName(name string) XLSXOption {
	return func(r *xlsxRenderer) { r.sheet = name }
}

// WithSheetTheme sets the color theme for the workbook.
func WithSheetTheme(t styles.Theme) XLSXOption {
	return func(r *xlsxRenderer) { r.theme = t }
}

// WithFrozenLabels freezes the label column and ruler row so they stay
// visible while scrolling (default on).
func WithFrozenLabels(v bool) XLSXOption {
	return func(r *xlsxRenderer) { r.freeze = v }
}

// RenderXLSX renders the grid as an Excel workbook, one worksheet cell
// per grid cell. Merged spans become merged ranges, and the sheet's own
// gridlines are hidden so only the diagram's borders show.
func RenderXLSX(g *wave.Grid, opts ...XLSXOption) ([]byte, error) {
	r := xlsxRenderer{theme: styles.Light(), sheet: "Diagram", freeze: true}
	for _, opt := range opts {
		opt(&r)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", r.sheet); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "naming worksheet")
	}
	if err := r.layoutSheet(f, g); err != nil {
		return nil, err
	}

	kinds := trackKinds(g)
	cache := make(map[xlsxStyle]int)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			c := g.Cell(row, col)
			if c.Empty() {
				continue
			}
			if err := r.writeCell(f, cache, kinds[row], row, col, c); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "writing workbook")
	}
	return buf.Bytes(), nil
}

// layoutSheet applies the sheet-wide geometry: narrow unit columns, a
// wide label column, uniform row heights, hidden gridlines, and the
// optional frozen pane.
func (r xlsxRenderer) layoutSheet(f *excelize.File, g *wave.Grid) error {
	if err := f.SetColWidth(r.sheet, "A", "A", labelColWidth); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "sizing label column")
	}
	lastCol, err := excelize.ColumnNumberToName(g.Columns)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "resolving last column")
	}
	if err := f.SetColWidth(r.sheet, "B", lastCol, unitColWidth); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "sizing unit columns")
	}
	for row := 0; row < g.Rows; row++ {
		if err := f.SetRowHeight(r.sheet, row+1, gridRowHeight); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "sizing row %d", row+1)
		}
	}

	show := false
	if err := f.SetSheetView(r.sheet, 0, &excelize.ViewOptions{ShowGridLines: &show}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "hiding sheet gridlines")
	}
	if r.freeze {
		panes := &excelize.Panes{
			Freeze:      true,
			XSplit:      1,
			YSplit:      1,
			TopLeftCell: "B2",
			ActivePane:  "bottomRight",
		}
		if err := f.SetPanes(r.sheet, panes); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "freezing label pane")
		}
	}
	return nil
}

func (r xlsxRenderer) writeCell(f *excelize.File, cache map[xlsxStyle]int, kind wave.TrackKind, row, col int, c wave.Cell) error {
	start, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "addressing cell (%d,%d)", row, col)
	}
	end := start
	if c.Span > 1 {
		end, err = excelize.CoordinatesToCellName(col+c.Span, row+1)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "addressing span end (%d,%d)", row, col+c.Span-1)
		}
		if err := f.MergeCell(r.sheet, start, end); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "merging %s:%s", start, end)
		}
	}

	id, err := r.styleID(f, cache, kind, col, c)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(r.sheet, start, end, id); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "styling %s", start)
	}
	if c.Text != "" {
		if err := f.SetCellStr(r.sheet, start, c.Text); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "writing label at %s", start)
		}
	}
	return nil
}

// xlsxStyle is the cache key for worksheet styles. Most grids reuse a
// handful of border and fill combinations across hundreds of cells.
type xlsxStyle struct {
	top, bottom, left, right wave.Line
	fill                     string
	kind                     wave.TrackKind
	label                    bool
}

func (r xlsxRenderer) styleID(f *excelize.File, cache map[xlsxStyle]int, kind wave.TrackKind, col int, c wave.Cell) (int, error) {
	key := xlsxStyle{
		top: c.Top, bottom: c.Bottom, left: c.Left, right: c.Right,
		fill:  c.Fill,
		kind:  kind,
		label: col == 0 && c.Span <= 1,
	}
	if id, ok := cache[key]; ok {
		return id, nil
	}

	st := &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Font:      &excelize.Font{Size: 10, Color: rgb(r.theme.TextInk(c))},
	}
	if key.label {
		st.Alignment.Horizontal = "right"
		st.Alignment.Indent = 1
	}
	switch kind {
	case wave.TrackRuler:
		st.Font.Size = 9
		st.Font.Color = rgb(r.theme.Muted)
	case wave.TrackSection:
		st.Font.Bold = true
	}

	add := func(side string, l wave.Line) {
		if !l.IsSet() {
			return
		}
		st.Border = append(st.Border, excelize.Border{
			Type:  side,
			Color: rgb(r.theme.LineInk(l)),
			Style: borderStyleID(l.Style),
		})
	}
	add("top", c.Top)
	add("bottom", c.Bottom)
	add("left", c.Left)
	add("right", c.Right)

	if c.Fill != "" {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{rgb(c.Fill)}}
	}

	id, err := f.NewStyle(st)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "registering cell style")
	}
	cache[key] = id
	return id, nil
}

// borderStyleID maps a border weight to the spreadsheet border style
// enum (1 thin, 2 medium, 4 dotted, 5 thick).
func borderStyleID(s wave.LineStyle) int {
	switch s {
	case wave.LineMedium:
		return 2
	case wave.LineThick:
		return 5
	case wave.LineDotted:
		return 4
	default:
		return 1
	}
}

// rgb strips the leading '#' that spreadsheet color fields do not accept.
func rgb(color string) string {
	return strings.TrimPrefix(color, "#")
}
