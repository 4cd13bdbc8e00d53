package script

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mhellwig/wavegrid/pkg/errors"
)

// Track kinds accepted in diagram documents.
const (
	KindDigital = "digital"
	KindState   = "state"
	KindBox     = "box"
	KindMark    = "mark"
	KindSection = "section"
	KindSpacer  = "spacer"
)

// Document is a parsed diagram document.
type Document struct {
	Title   string            `toml:"title"`
	Units   int               `toml:"units"`
	Theme   string            `toml:"theme"`
	Palette map[string]string `toml:"palette"`
	Tracks  []TrackSpec       `toml:"track"`
}

// TrackSpec is one [[track]] entry. Which fields apply depends on Kind;
// Start and End are pointers so a missing interval is distinguishable
// from unit 0.
type TrackSpec struct {
	Kind    string   `toml:"kind"`
	Name    string   `toml:"name"`
	Title   string   `toml:"title"`
	Pattern string   `toml:"pattern"`
	States  []string `toml:"states"`
	Start   *int     `toml:"start"`
	End     *int     `toml:"end"`
	Label   string   `toml:"label"`
}

// Load reads and parses a diagram document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "diagram document %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read diagram document %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a diagram document. Unknown keys are
// rejected so that a typo cannot silently drop a field.
func Parse(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse diagram document")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown key %q in diagram document", undecoded[0].String())
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the document's structure: canvas width, track kinds,
// required per-kind fields, label safety, and palette entries. It does
// not encode anything; pattern symbols and interval ranges are checked
// by [Document.Build].
func (d *Document) Validate() error {
	if d.Units < 1 {
		return errors.New(errors.ErrCodeInvalidDocument, "units must be at least 1, got %d", d.Units)
	}
	if err := errors.ValidateLabel(d.Title); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDocument, err, "title")
	}

	for token, color := range d.Palette {
		if err := errors.ValidateToken(token); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "palette entry %q", token)
		}
		if err := errors.ValidateHexColor(color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "palette entry %q", token)
		}
	}

	for i, tr := range d.Tracks {
		if err := tr.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "track %d", i+1)
		}
	}
	return nil
}

func (t *TrackSpec) validate() error {
	for _, label := range []string{t.Name, t.Title, t.Label} {
		if err := errors.ValidateLabel(label); err != nil {
			return err
		}
	}

	switch t.Kind {
	case KindDigital:
		if t.Pattern == "" {
			return errors.New(errors.ErrCodeInvalidDocument, "digital track needs a pattern")
		}
	case KindState:
		if len(t.States) == 0 {
			return errors.New(errors.ErrCodeInvalidDocument, "state track needs states")
		}
		for _, s := range t.States {
			// The encoder trims tokens and treats blanks as gaps.
			token := strings.TrimSpace(s)
			if token == "" {
				continue
			}
			if err := errors.ValidateToken(token); err != nil {
				return err
			}
		}
	case KindBox, KindMark:
		if t.Start == nil || t.End == nil {
			return errors.New(errors.ErrCodeInvalidDocument, "%s track needs start and end", t.Kind)
		}
	case KindSection, KindSpacer:
	default:
		return errors.New(errors.ErrCodeInvalidDocument, "unknown track kind %q", t.Kind)
	}
	return nil
}
