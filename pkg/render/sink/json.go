package sink

import (
	"encoding/json"

	"github.com/mhellwig/wavegrid/pkg/errors"
	"github.com/mhellwig/wavegrid/pkg/wave"
)

// JSONOption configures JSON rendering.
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact bool
}

// WithCompact disables indentation for machine consumers.
func WithCompact(v bool) JSONOption {
	return func(r *jsonRenderer) { r.compact = v }
}

// jsonOutput is the serialized form of a finalized grid. Cells are
// listed sparsely: anything absent is an empty cell.
type jsonOutput struct {
	TimeUnits int         `json:"time_units"`
	Rows      int         `json:"rows"`
	Columns   int         `json:"columns"`
	Tracks    []jsonTrack `json:"tracks"`
	Cells     []jsonCell  `json:"cells"`
}

type jsonTrack struct {
	Row  int    `json:"row"`
	Kind string `json:"kind"`
	Name string `json:"name,omitempty"`
}

type jsonCell struct {
	Row    int       `json:"row"`
	Col    int       `json:"col"`
	Top    *jsonLine `json:"top,omitempty"`
	Bottom *jsonLine `json:"bottom,omitempty"`
	Left   *jsonLine `json:"left,omitempty"`
	Right  *jsonLine `json:"right,omitempty"`
	Fill   string    `json:"fill,omitempty"`
	Text   string    `json:"text,omitempty"`
	Span   int       `json:"span,omitempty"`
}

type jsonLine struct {
	Style string `json:"style"`
	Color string `json:"color,omitempty"`
}

// RenderJSON renders the grid as indented JSON.
func RenderJSON(g *wave.Grid, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		TimeUnits: g.TimeUnits,
		Rows:      g.Rows,
		Columns:   g.Columns,
		Tracks:    make([]jsonTrack, 0, len(g.Tracks)),
		Cells:     []jsonCell{},
	}
	for _, tr := range g.Tracks {
		out.Tracks = append(out.Tracks, jsonTrack{
			Row:  int(tr.Row),
			Kind: string(tr.Kind),
			Name: tr.Name,
		})
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			c := g.Cell(row, col)
			if c.Empty() {
				continue
			}
			jc := jsonCell{
				Row:    row,
				Col:    col,
				Top:    lineRef(c.Top),
				Bottom: lineRef(c.Bottom),
				Left:   lineRef(c.Left),
				Right:  lineRef(c.Right),
				Fill:   c.Fill,
				Text:   c.Text,
			}
			if c.Span > 1 {
				jc.Span = c.Span
			}
			out.Cells = append(out.Cells, jc)
		}
	}

	var data []byte
	var err error
	if r.compact {
		data, err = json.Marshal(out)
	} else {
		data, err = json.MarshalIndent(out, "", "  ")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshaling grid")
	}
	return data, nil
}

func lineRef(l wave.Line) *jsonLine {
	if !l.IsSet() {
		return nil
	}
	return &jsonLine{Style: string(l.Style), Color: l.Color}
}
