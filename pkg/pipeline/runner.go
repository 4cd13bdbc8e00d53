package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mhellwig/wavegrid/pkg/cache"
	"github.com/mhellwig/wavegrid/pkg/errors"
	"github.com/mhellwig/wavegrid/pkg/observability"
	"github.com/mhellwig/wavegrid/pkg/script"
	"github.com/mhellwig/wavegrid/pkg/wave"
)

// Runner executes the pipeline with artifact caching. It is stateless
// apart from the cache and logger, so one Runner can serve concurrent
// requests with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching via
// [cache.NullCache], a nil keyer selects [cache.DefaultKeyer].
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete load → build → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{Artifacts: make(map[string][]byte)}

	observability.Pipeline().OnLoadStart(ctx, opts.Path)
	loadStart := time.Now()
	doc, raw, err := load(opts)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.Path, 0, time.Since(loadStart), err)
		return nil, err
	}
	result.Document = doc
	result.DocHash = cache.Hash(raw)
	result.Stats.LoadTime = time.Since(loadStart)
	observability.Pipeline().OnLoadComplete(ctx, opts.Path, len(doc.Tracks), result.Stats.LoadTime, nil)

	observability.Pipeline().OnBuildStart(ctx, doc.Title, doc.Units)
	buildStart := time.Now()
	grid, err := doc.Build(wave.WithLogger(opts.Logger))
	if err != nil {
		observability.Pipeline().OnBuildComplete(ctx, doc.Title, 0, time.Since(buildStart), err)
		return nil, err
	}
	result.Grid = grid
	result.Stats.BuildTime = time.Since(buildStart)
	observability.Pipeline().OnBuildComplete(ctx, doc.Title, grid.Rows, result.Stats.BuildTime, nil)
	result.Stats.Tracks = len(grid.Tracks)
	result.Stats.TimeUnits = grid.TimeUnits
	result.Stats.Rows = grid.Rows

	opts.Logger.Info("built grid",
		"tracks", result.Stats.Tracks,
		"units", result.Stats.TimeUnits,
		"duration", result.Stats.BuildTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, grid, result.DocHash, doc.Title, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo renders all requested formats, serving from cache
// when every artifact is present and Refresh is off.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *wave.Grid, docHash, title string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		allCached := true
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				allCached = false
				break
			}
			artifacts[format] = data
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	rendered, err := Render(g, title, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, key, data, TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g *wave.Grid, docHash, title string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, docHash, title, opts)
	return artifacts, err
}

// Close releases resources held by the runner, primarily the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// load reads the document from memory or disk and returns the parsed
// document plus the raw bytes that feed the content hash.
func load(opts Options) (*script.Document, []byte, error) {
	data := opts.Source
	if len(data) == 0 {
		var err error
		data, err = os.ReadFile(opts.Path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document not found: %s", opts.Path)
			}
			return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "reading document %s", opts.Path)
		}
	}
	doc, err := script.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	return doc, data, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
