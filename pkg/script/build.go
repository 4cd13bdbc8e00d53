package script

import (
	"slices"

	"github.com/mhellwig/wavegrid/pkg/errors"
	"github.com/mhellwig/wavegrid/pkg/wave"
)

// Build encodes the document onto a fresh canvas and returns the
// finalized grid. Canvas options (logger, palette replacement) are
// passed through; the document's own [palette] entries are applied on
// top of the default palette first.
//
// Encoding errors keep their own code (invalid symbol, invalid range)
// and gain the one-based track index as context.
func (d *Document) Build(opts ...wave.Option) (*wave.Grid, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	pal := wave.DefaultPalette()
	tokens := make([]string, 0, len(d.Palette))
	for token := range d.Palette {
		tokens = append(tokens, token)
	}
	slices.Sort(tokens)
	for _, token := range tokens {
		var err error
		if pal, err = pal.WithFill(token, d.Palette[token]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "palette entry %q", token)
		}
	}

	canvas, err := wave.New(d.Units, append([]wave.Option{wave.WithPalette(pal)}, opts...)...)
	if err != nil {
		return nil, err
	}

	for i, tr := range d.Tracks {
		var err error
		switch tr.Kind {
		case KindDigital:
			_, err = canvas.AddDigital(tr.Name, tr.Pattern)
		case KindState:
			canvas.AddStates(tr.Name, tr.States)
		case KindBox:
			_, err = canvas.AddBox(tr.Name, *tr.Start, *tr.End, tr.Label)
		case KindMark:
			_, err = canvas.AddTimingMark(*tr.Start, *tr.End, tr.Label)
		case KindSection:
			canvas.AddSection(tr.Title)
		case KindSpacer:
			canvas.AddSpacer()
		}
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "track %d (%s)", i+1, tr.Kind)
		}
	}

	return canvas.Finalize(), nil
}
