// Package web serves the documentation search API and a small browser shell.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/cfs-ui/cfs-docs/internal/content"
	"github.com/cfs-ui/cfs-docs/internal/logging"
	"github.com/cfs-ui/cfs-docs/internal/search"
)

var webLog = logging.ForComponent(logging.CompWeb)

// Config defines runtime options for the web server.
type Config struct {
	ListenAddr string
	Token      string

	// Content is the shared navigation provider. Required.
	Content *content.Provider

	QuickFilterLimit int
	SuggestLimit     int

	// Debounce is the live search quiet interval on /ws/search.
	Debounce time.Duration

	// LoadTimeout bounds how long handlers wait for the first content load.
	LoadTimeout time.Duration

	// RateLimit is requests per second on /api; 0 disables limiting.
	RateLimit float64
	Burst     int
}

// Server wraps an HTTP server for cfs-docs.
type Server struct {
	cfg        Config
	httpServer *http.Server
	content    *content.Provider
	limiter    *rate.Limiter
	baseCtx    context.Context
	cancelBase context.CancelFunc
}

// NewServer creates a new web server with routes and middleware.
func NewServer(cfg Config) *Server {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = "127.0.0.1:8420"
	}
	if cfg.Content == nil {
		panic("web: Config.Content is required")
	}
	if cfg.QuickFilterLimit <= 0 {
		cfg.QuickFilterLimit = search.DefaultQuickFilterLimit
	}
	if cfg.SuggestLimit <= 0 {
		cfg.SuggestLimit = 3
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = search.DefaultDebounce
	}
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = 10 * time.Second
	}

	s := &Server{
		cfg:     cfg,
		content: cfg.Content,
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = int(cfg.RateLimit) + 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	s.baseCtx, s.cancelBase = context.WithCancel(context.Background())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(withRecover)
	r.Use(requestLogger)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.Get("/", s.handleIndex)
	r.Head("/", s.handleIndex)
	r.Handle("/static/*", http.StripPrefix("/static/", s.staticFileServer()))
	r.Get("/healthz", s.handleHealthz)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.requireToken)
		r.Use(s.rateLimit)
		r.Get("/search-content", s.handleSearchContent)
		r.Get("/search", s.handleSearch)
		r.Get("/quick-filter", s.handleQuickFilter)
		r.Get("/page", s.handlePage)
	})
	r.With(s.requireToken).Get("/ws/search", s.handleSearchWS)

	s.httpServer = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		BaseContext:       func(_ net.Listener) context.Context { return s.baseCtx },
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler returns the configured HTTP handler (used by tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the HTTP server and blocks until shutdown or error.
// Returns nil on graceful shutdown.
func (s *Server) Start() error {
	s.content.Start()
	webLog.Info("web_listening", slog.String("addr", s.cfg.ListenAddr), slog.Bool("auth", s.cfg.Token != ""))

	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cancelBase != nil {
		// Signal websocket handlers to stop promptly.
		s.cancelBase()
	}

	err := s.httpServer.Shutdown(ctx)
	if err == nil {
		return nil
	}

	// Hijacked websocket connections are not tracked by Shutdown. Force
	// close so Ctrl+C exits promptly.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		if closeErr := s.httpServer.Close(); closeErr == nil {
			return nil
		} else {
			return fmt.Errorf("graceful shutdown timed out and force close failed: %w", closeErr)
		}
	}

	return err
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.content.Start()
	resp := map[string]any{
		"ok":      true,
		"loading": s.content.Loading(),
		"indexed": s.content.Indexed(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	}
	if at := s.content.LoadedAt(); !at.IsZero() {
		resp["loadedAt"] = at.UTC().Format(time.RFC3339)
	}
	if err := s.content.Err(); err != nil {
		resp["degraded"] = true
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) String() string {
	return fmt.Sprintf("web-server(addr=%s, auth=%t)", s.cfg.ListenAddr, s.cfg.Token != "")
}
