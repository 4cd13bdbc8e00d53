package sink

import (
	"bytes"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/mhellwig/wavegrid/pkg/errors"
	"github.com/mhellwig/wavegrid/pkg/render/styles"
	"github.com/mhellwig/wavegrid/pkg/wave"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGLayout passes theme and geometry options through to the layout
// shared with the SVG renderer.
func WithPNGLayout(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the raster scale factor (default 2.0 for 2x output).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the grid using the same layout as the SVG sink.
// Distances, stroke widths, and font sizes are multiplied by the scale
// factor before drawing, so output stays crisp at any resolution.
func RenderPNG(g *wave.Grid, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 1.0
	}
	cfg := newSVGRenderer(r.svgOpts...)
	m := newGeometry(g, cfg.cellW, cfg.cellH, cfg.labelW, cfg.title != "", r.scale)
	kinds := trackKinds(g)

	faces, err := newFaceSet(cfg.fontSize, r.scale)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(int(m.width()+0.5), int(m.height()+0.5))
	dc.SetHexColor(cfg.theme.Paper)
	dc.Clear()

	if cfg.title != "" {
		dc.SetFontFace(faces.title)
		dc.SetHexColor(cfg.theme.Ink)
		dc.DrawStringAnchored(cfg.title, m.width()/2, m.margin+m.titleH/2, 0.5, 0.5)
	}

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			if c := g.Cell(row, col); c.Fill != "" {
				x, y, w, h := m.cellBox(row, col, c.Span)
				dc.SetHexColor(c.Fill)
				dc.DrawRectangle(x, y, w, h)
				dc.Fill()
			}
		}
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			c := g.Cell(row, col)
			x, y, w, h := m.cellBox(row, col, c.Span)
			r.stroke(dc, cfg.theme, c.Top, x, y, x+w, y)
			r.stroke(dc, cfg.theme, c.Bottom, x, y+h, x+w, y+h)
			r.stroke(dc, cfg.theme, c.Left, x, y, x, y+h)
			r.stroke(dc, cfg.theme, c.Right, x+w, y, x+w, y+h)
		}
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			if c := g.Cell(row, col); c.Text != "" {
				r.drawText(dc, cfg.theme, faces, m, kinds[row], row, col, c)
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encoding png")
	}
	return buf.Bytes(), nil
}

func (r pngRenderer) stroke(dc *gg.Context, theme styles.Theme, l wave.Line, x1, y1, x2, y2 float64) {
	if !l.IsSet() {
		return
	}
	dc.SetHexColor(theme.LineInk(l))
	dc.SetLineWidth(styles.StrokeWidth(l.Style) * r.scale)
	if d := styles.Dashes(l.Style); d != nil {
		dc.SetDash(d[0]*r.scale, d[1]*r.scale)
	} else {
		dc.SetDash()
	}
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}

func (r pngRenderer) drawText(dc *gg.Context, theme styles.Theme, faces faceSet, m geometry, kind wave.TrackKind, row, col int, c wave.Cell) {
	x, y, w, h := m.cellBox(row, col, c.Span)
	face := faces.base
	ink := theme.TextInk(c)
	tx := x + w/2
	ax := 0.5

	switch {
	case kind == wave.TrackRuler:
		face = faces.tick
		ink = theme.Muted
	case kind == wave.TrackSection:
		face = faces.bold
	case col == 0 && c.Span <= 1:
		tx = x + w - labelPad*r.scale
		ax = 1
	}

	dc.SetFontFace(face)
	dc.SetHexColor(ink)
	dc.DrawStringAnchored(c.Text, tx, y+h/2, ax, 0.5)
}

// faceSet holds the pre-built font faces for one rendering pass. Faces
// carry their pixel size, so each variant needs its own.
type faceSet struct {
	base  font.Face
	tick  font.Face
	bold  font.Face
	title font.Face
}

// newFaceSet builds faces at the size variants the sinks use, already
// multiplied by the raster scale.
func newFaceSet(size, scale float64) (faceSet, error) {
	mono, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return faceSet{}, errors.Wrap(errors.ErrCodeInternal, err, "parsing embedded mono font")
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return faceSet{}, errors.Wrap(errors.ErrCodeInternal, err, "parsing embedded bold font")
	}
	face := func(f *truetype.Font, pt float64) font.Face {
		return truetype.NewFace(f, &truetype.Options{Size: pt * scale, DPI: 72, Hinting: font.HintingFull})
	}
	return faceSet{
		base:  face(mono, size),
		tick:  face(mono, size-2),
		bold:  face(bold, size),
		title: face(bold, size+3),
	}, nil
}
