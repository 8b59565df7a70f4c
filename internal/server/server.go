// Package server exposes a workspace and its layout manager over HTTP.
//
// Routes:
//
//	GET    /groups              list groups with rectangles and panels
//	POST   /panels              {"direction": "left"} add a panel
//	DELETE /panels/{id}         close a panel
//	PUT    /groups/{id}/lock    {"mode": "locked"} change the lock mode
//	PUT    /groups/{id}/header  {"hidden": true} show or hide the header
//	DELETE /groups/{id}         remove a group and its panels
//	GET    /graph               split tree as Graphviz DOT
//	GET    /healthz             liveness
//	GET    /metrics             Prometheus metrics, when configured
//
// The workspace is not safe for concurrent use, so every request holding it
// runs under one mutex, one at a time.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/tiledock/pkg/dock"
	"github.com/matzehuels/tiledock/pkg/observability"
	"github.com/matzehuels/tiledock/pkg/workspace"
)

const shutdownTimeout = 5 * time.Second

// Server serves the HTTP API for one workspace.
type Server struct {
	mu      sync.Mutex
	ws      *workspace.Workspace
	mgr     *dock.Manager
	logger  *log.Logger
	metrics http.Handler
	hooks   observability.HTTPHooks
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetricsHandler mounts h on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// WithHooks sends request events to h instead of the global HTTP hooks.
func WithHooks(h observability.HTTPHooks) Option {
	return func(s *Server) { s.hooks = h }
}

// New creates a server over ws. mgr must be a manager over the same
// workspace.
func New(ws *workspace.Workspace, mgr *dock.Manager, opts ...Option) *Server {
	s := &Server{ws: ws, mgr: mgr, logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(s.serialize)
		r.Get("/groups", s.listGroups)
		r.Get("/graph", s.graph)
		r.Post("/panels", s.addPanel)
		r.Delete("/panels/{id}", s.removePanel)
		r.Route("/groups/{id}", func(r chi.Router) {
			r.Put("/lock", s.setLock)
			r.Put("/header", s.setHeader)
			r.Delete("/", s.removeGroup)
		})
	})
	return r
}

// serialize runs one workspace request at a time.
func (s *Server) serialize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := s.httpHooks()
		start := time.Now()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, route, status, elapsed)
		s.logger.Debug("request", "method", r.Method, "route", route, "status", status, "duration", elapsed)
	})
}

func (s *Server) httpHooks() observability.HTTPHooks {
	if s.hooks != nil {
		return s.hooks
	}
	return observability.HTTP()
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
