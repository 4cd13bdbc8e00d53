package cli

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mhellwig/wavegrid/pkg/observability"
	"github.com/mhellwig/wavegrid/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string
	theme    string
	noCache  bool
	cacheURL string
}

// serveCommand creates the serve command for a live browser preview.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve [document.toml]",
		Short: "Serve a live browser preview of a diagram",
		Long: `Serve a live browser preview of a diagram.

The serve command renders the document on every request and serves it
over HTTP, so edits to the file show up in the browser within a couple
of seconds. The document content hash keys the artifact cache; unchanged
files are served from cache.

Routes:
  /          HTML page with the inlined SVG (self-refreshing)
  /grid.svg  the raw SVG artifact
  /grid.json the grid as JSON for external tooling`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "127.0.0.1:8177", "bind address (host:port or :port)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "color theme: light (default), dark")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.cacheURL, "cache-url", "", "redis URL for a shared artifact cache")

	return cmd
}

// runServe starts the preview server and blocks until the context is
// cancelled or the listener fails.
func (c *CLI) runServe(ctx context.Context, input string, opts *serveOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache, opts.cacheURL)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	s := &previewServer{
		runner: runner,
		logger: c.Logger,
		path:   input,
		theme:  opts.theme,
	}

	// Render once up front so an obviously broken document is reported
	// before the browser ever asks.
	if _, err := s.render(ctx, pipeline.FormatSVG); err != nil {
		printWarning("Initial render failed: %v", err)
		printDetail("The preview retries on every request; fix the document and reload")
	}

	printInfo("Serving %s", input)
	fmt.Println("  " + StyleDim.Render("Open") + " " + StyleLink.Render("http://"+displayAddr(opts.addr)))
	printNewline()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// displayAddr turns a bind address into something a browser accepts.
func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}

// previewServer renders one document on demand. Every request goes
// through the pipeline runner, so the cache decides whether the grid is
// actually re-encoded.
type previewServer struct {
	runner *pipeline.Runner
	logger *log.Logger
	path   string
	theme  string
}

// routes builds the chi router with request-ID and logging middleware.
func (s *previewServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Get("/grid.svg", s.handleArtifact(pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/grid.json", s.handleArtifact(pipeline.FormatJSON, "application/json"))

	return r
}

// render runs the pipeline for the served document.
func (s *previewServer) render(ctx context.Context, formats ...string) (*pipeline.Result, error) {
	return s.runner.Execute(ctx, pipeline.Options{
		Path:    s.path,
		Formats: formats,
		Theme:   s.theme,
		Logger:  s.logger,
	})
}

// handleIndex serves the preview page with the SVG inlined.
func (s *previewServer) handleIndex(w http.ResponseWriter, req *http.Request) {
	result, err := s.render(req.Context(), pipeline.FormatSVG)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	title := result.Document.Title
	if title == "" {
		title = s.path
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexPage, html.EscapeString(title), result.Artifacts[pipeline.FormatSVG])
}

// handleArtifact serves a single rendered artifact with its content type.
func (s *previewServer) handleArtifact(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		result, err := s.render(req.Context(), format)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(result.Artifacts[format])
	}
}

// indexPage is the live-preview page. It inlines the rendered SVG and
// reloads itself so document edits show up without a manual refresh.
const indexPage = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="2">
<title>%s</title>
<style>
body { margin: 2rem; background: #e9e9e9; font-family: ui-monospace, Menlo, Consolas, monospace; }
main { background: #ffffff; display: inline-block; padding: 1rem; box-shadow: 0 1px 4px rgba(0,0,0,0.25); }
</style>
</head>
<body>
<main>
%s
</main>
</body>
</html>
`

// ctxKey is the type for context keys used in this package.
type ctxKey int

// requestIDKey is the context key for the per-request ID.
const requestIDKey ctxKey = 0

// requestID tags each request with a short unique ID for log correlation.
// The ID is echoed in the X-Request-ID response header.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.NewString()[:8]
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(req.Context(), requestIDKey, id)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// logRequests logs method, path, status, and duration for every request.
func (s *previewServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		observability.Serve().OnRequest(req.Context(), req.Method, req.URL.Path)
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)

		elapsed := time.Since(start)
		observability.Serve().OnResponse(req.Context(), req.Method, req.URL.Path, rec.status, elapsed)

		id, _ := req.Context().Value(requestIDKey).(string)
		s.logger.Info("request",
			"id", id,
			"method", req.Method,
			"path", req.URL.Path,
			"status", rec.status,
			"duration", elapsed.Round(time.Millisecond))
	})
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
