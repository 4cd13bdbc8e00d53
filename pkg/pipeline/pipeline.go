// Package pipeline provides the complete load → build → render pipeline
// shared by the CLI and the HTTP server.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read and validate a TOML diagram document
//  2. Build: encode the document's tracks onto a finalized grid
//  3. Render: generate output artifacts (xlsx, svg, png, text, json)
//
// Loading and building are cheap and always run; rendered artifacts are
// cached by document hash and render options.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Path:    "door-dimmer.toml",
//	    Formats: []string{"svg", "xlsx"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mhellwig/wavegrid/pkg/cache"
	"github.com/mhellwig/wavegrid/pkg/errors"
	"github.com/mhellwig/wavegrid/pkg/render/styles"
	"github.com/mhellwig/wavegrid/pkg/script"
	"github.com/mhellwig/wavegrid/pkg/wave"
)

// Defaults shared by the CLI and the HTTP server.
const (
	// DefaultScale is the raster scale factor for PNG output.
	DefaultScale = 2.0

	// TTLArtifact is how long rendered artifacts stay cached. Artifacts
	// are derived purely from document bytes and options, so the TTL
	// only bounds disk usage, not staleness.
	TTLArtifact = 24 * time.Hour

	// TTLDocument is how long uploaded documents stay available.
	TTLDocument = 7 * 24 * time.Hour
)

// Format constants for output formats.
const (
	FormatXLSX = "xlsx"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatSVG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatXLSX: true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatText: true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q (must be one of: xlsx, svg, png, text, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for one pipeline run. The struct
// serializes to JSON for API requests.
type Options struct {
	// Input options. Exactly one of Path or Source is required; Source
	// carries a document already in memory (the HTTP server's case).
	Path   string `json:"path,omitempty"`
	Source []byte `json:"source,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Theme   string   `json:"theme,omitempty"`
	Scale   float64  `json:"scale,omitempty"`    // PNG raster scale
	Sheet   string   `json:"sheet,omitempty"`    // XLSX worksheet name
	NoColor bool     `json:"no_color,omitempty"` // text output without ANSI styling
	Refresh bool     `json:"refresh,omitempty"`  // bypass cached artifacts

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the parsed diagram document.
	Document *script.Document

	// DocHash is the content hash of the document bytes; it keys the
	// artifact cache and identifies documents in API responses.
	DocHash string

	// Grid is the finalized cell grid.
	Grid *wave.Grid

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether rendering hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Tracks     int
	TimeUnits  int
	Rows       int
	LoadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits. Loading and building always run; only
// rendered artifacts are cached.
type CacheInfo struct {
	RenderHit bool // all requested artifacts came from cache
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// The method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Path == "" && len(o.Source) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "path or source is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := styles.ByName(o.Theme); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns the cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:  format,
		Theme:   o.Theme,
		Scale:   o.Scale,
		Sheet:   o.Sheet,
		NoColor: o.NoColor,
	}
}
