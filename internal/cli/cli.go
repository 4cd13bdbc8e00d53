// Package cli implements the wavegrid command-line interface.
//
// This package provides commands for rendering timing-diagram documents
// to files, previewing them in the terminal or a browser, and managing
// the local artifact cache. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate XLSX, SVG, PNG, text, or JSON output files
//   - show: Print a diagram as a colored grid in the terminal
//   - view: Scroll through a diagram interactively
//   - serve: Serve a live browser preview over HTTP
//   - palette: List the built-in state tokens and their fill colors
//   - cache: Manage the local artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The
// shared logger lives on the CLI struct and is handed to the pipeline.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhellwig/wavegrid/pkg/buildinfo"
	"github.com/mhellwig/wavegrid/pkg/cache"
	"github.com/mhellwig/wavegrid/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "wavegrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "wavegrid",
		Short:        "Wavegrid renders timing diagrams onto a cell grid",
		Long:         `Wavegrid is a CLI tool for rendering digital waveforms, state tracks, and timing annotations from TOML documents onto a bordered cell grid, with XLSX, SVG, PNG, terminal, and JSON output.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use. An explicit cacheURL
// selects the Redis backend; otherwise artifacts land in the local file
// cache unless caching is disabled entirely.
func (c *CLI) newRunner(ctx context.Context, noCache bool, cacheURL string) (*pipeline.Runner, error) {
	store, err := newCache(ctx, noCache, cacheURL)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if cacheURL != "" {
		// A Redis keyspace may be shared with other applications.
		keyer = cache.NewScopedKeyer(nil, appName+":")
	}
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func newCache(ctx context.Context, noCache bool, cacheURL string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if cacheURL != "" {
		return cache.NewRedisCache(ctx, cacheURL)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/wavegrid/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.DefaultFormat}
	}
	return strings.Split(s, ",")
}
