// Package pkg provides the core libraries for Wavegrid timing diagrams.
//
// # Overview
//
// Wavegrid encodes digital waveforms, state tracks, and annotations onto a
// rectangular grid of styled cells, then renders that grid as spreadsheets,
// vector images, or terminal output. The pkg directory is organized into
// four main areas:
//
//  1. [wave] - Domain logic (the cell grid, track encoders, palette)
//  2. [script] - Diagram documents (TOML parsing and validation)
//  3. [render] - Output generation (themes plus the five artifact sinks)
//  4. [pipeline] - Orchestration (load → build → render) with caching
//
// # Architecture
//
// The typical data flow through Wavegrid:
//
//	TOML document
//	         ↓
//	    [script] package (parse + validate)
//	         ↓
//	    [wave] package (encode tracks onto the cell grid)
//	         ↓
//	    [render/sink] package (artifact generation)
//	         ↓
//	    XLSX/SVG/PNG/text/JSON output
//
// # Quick Start
//
// Load a document and render it to SVG:
//
//	import (
//	    "os"
//	    "github.com/mhellwig/wavegrid/pkg/render/sink"
//	    "github.com/mhellwig/wavegrid/pkg/script"
//	)
//
//	// 1. Load and validate the document
//	doc, _ := script.Load("door-dimmer.toml")
//
//	// 2. Encode the tracks onto a finalized grid
//	g, _ := doc.Build()
//
//	// 3. Render to SVG
//	svg := sink.RenderSVG(g)
//	os.WriteFile("door-dimmer.svg", svg, 0o644)
//
// # Main Packages
//
// ## Domain Logic
//
// [wave] - The cell grid and its builders. A Canvas allocates one row per
// track and encodes digital patterns, run-length state sequences, boxes,
// timing marks, and section banners into cells carrying border, fill,
// merge, and label attributes. Finalize stamps gridlines and the outer
// frame and returns an immutable Grid.
//
// [script] - The TOML document format. Documents declare a time axis and a
// list of tracks; parsing rejects unknown keys and validation reports
// precise, typed errors before any grid is built.
//
// ## Rendering
//
// [render/sink] - Output formats. One sink per artifact: XLSX (native
// spreadsheet cells), SVG, PNG, ANSI terminal text, and a JSON export of
// the grid for external tooling.
//
// [render/styles] - Visual themes (light, dark) resolved by name.
//
// ## Infrastructure
//
// [pipeline] - Complete load → build → render pipeline used by the CLI and
// the preview server. Ensures consistent behavior across all entry points
// and caches rendered artifacts by document hash and render options.
//
// [cache] - Artifact caches: FileCache for the CLI (filesystem),
// RedisCache for shared deployments, NullCache for tests and --no-cache.
// Content hashing and cache key derivation live here too.
//
// [errors] - Typed error codes with user-facing messages.
//
// [observability] - Optional instrumentation hooks for pipeline, cache,
// and preview server events.
//
// [buildinfo] - Version information stamped at build time.
//
// # Common Workflows
//
// Build a grid programmatically:
//
//	c, _ := wave.New(16)
//	c.AddSection("SPI Bus")
//	c.AddDigital("SCLK", "0010101010101010")
//	c.AddStates("CTRL", []string{"IDLE", "ACTIVE", "ACTIVE", "IDLE"})
//	c.AddTimingMark(2, 14, "t_byte")
//	g := c.Finalize()
//
// Render with a custom theme:
//
//	theme, _ := styles.ByName("dark")
//	svg := sink.RenderSVG(g, sink.WithTheme(theme))
//
// Run the full pipeline with caching:
//
//	fc, _ := cache.NewFileCache(dir)
//	runner := pipeline.NewRunner(fc, nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Path:    "door-dimmer.toml",
//	    Formats: []string{"svg", "xlsx"},
//	})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/wave/...        # Specific package
//	go test -run Example          # Examples only
//
// [wave]: https://pkg.go.dev/github.com/mhellwig/wavegrid/pkg/wave
// [script]: https://pkg.go.dev/github.com/mhellwig/wavegrid/pkg/script
// [render]: https://pkg.go.dev/github.com/mhellwig/wavegrid/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/mhellwig/wavegrid/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/mhellwig/wavegrid/pkg/render/styles
// [pipeline]: https://pkg.go.dev/github.com/mhellwig/wavegrid/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/mhellwig/wavegrid/pkg/cache
// [errors]: https://pkg.go.dev/github.com/mhellwig/wavegrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/mhellwig/wavegrid/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/mhellwig/wavegrid/pkg/buildinfo
package pkg
