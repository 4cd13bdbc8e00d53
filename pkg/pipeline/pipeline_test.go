package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mhellwig/wavegrid/pkg/cache"
	"github.com/mhellwig/wavegrid/pkg/errors"
	"github.com/mhellwig/wavegrid/pkg/observability"
)

const sampleDoc = `
title = "Door Control"
units = 8

[[track]]
kind = "digital"
name = "DOOR"
pattern = "00111100"

[[track]]
kind = "state"
name = "MODE"
states = ["OFF", "OFF", "ON", "ON"]
`

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"xlsx", false},
		{"svg", false},
		{"png", false},
		{"text", false},
		{"json", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v, want %v", tt.format, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "gif"}); err == nil {
		t.Error("invalid format accepted")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("empty formats rejected: %v", err)
	}
}

func TestOptions_ValidateAndSetDefaults(t *testing.T) {
	opts := Options{Source: []byte(sampleDoc), Logger: quietLogger()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", opts.Scale, DefaultScale)
	}
}

func TestOptions_ValidateAndSetDefaults_Failures(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"no input", Options{}, errors.ErrCodeInvalidInput},
		{"bad format", Options{Source: []byte(sampleDoc), Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad theme", Options{Source: []byte(sampleDoc), Theme: "sepia"}, errors.ErrCodeInvalidTheme},
		{"negative scale", Options{Source: []byte(sampleDoc), Scale: -1}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v (err %v), want %v", errors.GetCode(err), err, tt.code)
			}
		})
	}
}

func TestRunner_Execute(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		Source:  []byte(sampleDoc),
		Formats: []string{"svg", "json"},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Document.Title != "Door Control" {
		t.Errorf("Document.Title = %q, want Door Control", result.Document.Title)
	}
	if len(result.DocHash) != 64 {
		t.Errorf("len(DocHash) = %d, want 64", len(result.DocHash))
	}
	// Ruler plus two tracks.
	if result.Stats.Rows != 3 {
		t.Errorf("Stats.Rows = %d, want 3", result.Stats.Rows)
	}
	if result.Stats.TimeUnits != 8 {
		t.Errorf("Stats.TimeUnits = %d, want 8", result.Stats.TimeUnits)
	}
	for _, format := range []string{"svg", "json"} {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("Artifacts[%q] empty", format)
		}
	}
	if result.CacheInfo.RenderHit {
		t.Error("RenderHit = true on a null cache")
	}
}

func TestRunner_Execute_CacheRoundTrip(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	r := NewRunner(fc, nil, quietLogger())
	defer r.Close()

	opts := Options{Source: []byte(sampleDoc), Formats: []string{"svg"}}
	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute() error: %v", err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run reported a cache hit")
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run missed the cache")
	}
	if string(first.Artifacts["svg"]) != string(second.Artifacts["svg"]) {
		t.Error("cached artifact differs from rendered artifact")
	}

	refreshed, err := r.Execute(context.Background(), Options{
		Source: []byte(sampleDoc), Formats: []string{"svg"}, Refresh: true,
	})
	if err != nil {
		t.Fatalf("refresh Execute() error: %v", err)
	}
	if refreshed.CacheInfo.RenderHit {
		t.Error("refresh run served from cache")
	}
}

func TestRunner_Execute_MissingFile(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	_, err := r.Execute(context.Background(), Options{Path: "no/such/diagram.toml"})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("code = %v (err %v), want %v", errors.GetCode(err), err, errors.ErrCodeFileNotFound)
	}
}

func TestRunner_Execute_InvalidDocument(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	_, err := r.Execute(context.Background(), Options{Source: []byte("units = 0\n")})
	if !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("code = %v (err %v), want %v", errors.GetCode(err), err, errors.ErrCodeInvalidDocument)
	}
}

func TestRender_AllFormats(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	result, err := r.Execute(context.Background(), Options{
		Source:  []byte(sampleDoc),
		Formats: []string{"xlsx", "svg", "png", "text", "json"},
		NoColor: true,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, format := range []string{"xlsx", "svg", "png", "text", "json"} {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("Artifacts[%q] empty", format)
		}
	}
	if text := string(result.Artifacts["text"]); !strings.Contains(text, "DOOR") {
		t.Errorf("text artifact missing track name: %q", text)
	}
}

func TestRender_UnknownFormatRejected(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	result, err := r.Execute(context.Background(), Options{Source: []byte(sampleDoc)})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	// Render skips Options validation, so it must reject on its own.
	_, err = Render(result.Grid, "", Options{Formats: []string{"gif"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("code = %v (err %v), want %v", errors.GetCode(err), err, errors.ErrCodeInvalidFormat)
	}
}

// recordingHooks records pipeline and cache events in order.
type recordingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks
	events []string
}

func (h *recordingHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {
	h.events = append(h.events, "load")
}

func (h *recordingHooks) OnBuildComplete(context.Context, string, int, time.Duration, error) {
	h.events = append(h.events, "build")
}

func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.events = append(h.events, "render")
}

func (h *recordingHooks) OnCacheHit(context.Context, string)      { h.events = append(h.events, "hit") }
func (h *recordingHooks) OnCacheMiss(context.Context, string)     { h.events = append(h.events, "miss") }
func (h *recordingHooks) OnCacheSet(context.Context, string, int) { h.events = append(h.events, "set") }

func TestRunner_Execute_FiresHooks(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetPipelineHooks(rec)
	observability.SetCacheHooks(rec)
	defer observability.Reset()

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	r := NewRunner(fc, nil, quietLogger())
	defer r.Close()

	opts := Options{Source: []byte(sampleDoc), Formats: []string{"svg"}}
	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatalf("first Execute() error: %v", err)
	}
	if got, want := strings.Join(rec.events, " "), "load build miss render set"; got != want {
		t.Errorf("first run events = %q, want %q", got, want)
	}

	rec.events = nil
	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}
	if got, want := strings.Join(rec.events, " "), "load build hit"; got != want {
		t.Errorf("second run events = %q, want %q", got, want)
	}
}
