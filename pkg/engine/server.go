package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path"
	"sync"

	"github.com/bffd/bffd/pkg/admin"
	"github.com/bffd/bffd/pkg/config"
)

// Server owns the HTTP listener and the top-level handler.
type Server struct {
	cfg        *config.Config
	app        *App
	api        *admin.API
	apiMux     *http.ServeMux
	dispatcher *Dispatcher
	handler    http.Handler
	log        *slog.Logger

	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener
	running    bool
}

// NewServer creates a Server for app. Nothing listens until Start.
func NewServer(cfg *config.Config, app *App) *Server {
	s := &Server{
		cfg:        cfg,
		app:        app,
		api:        admin.New(app.Routes, app.Logs, admin.WithLogger(app.Logger.With("component", "admin"))),
		dispatcher: NewDispatcher(app),
		log:        app.Logger,
	}
	s.apiMux = s.api.Handler()
	s.handler = NewCORSMiddleware(http.HandlerFunc(s.route), s.dispatcher)
	return s
}

// Handler returns the complete request handler, CORS included.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// route sends management API requests to the admin mux and everything else,
// including unmatched methods on API paths, to the dispatcher. Only clean
// paths reach the admin mux so that it never redirects a request a registered
// route could claim.
func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	if path.Clean(r.URL.Path) != r.URL.Path {
		s.dispatcher.ServeHTTP(w, r)
		return
	}
	if h, pattern := s.apiMux.Handler(r); pattern != "" {
		h.ServeHTTP(w, r)
		return
	}
	s.dispatcher.ServeHTTP(w, r)
}

// Start binds the listener and serves in the background.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("server is already running")
	}

	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}

	s.listener = ln
	s.httpServer = &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(s.log.Handler(), slog.LevelError),
	}

	go func(srv *http.Server) {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("HTTP server error", "error", err)
		}
	}(s.httpServer)

	s.running = true
	s.log.Info("BFF listening", "addr", ln.Addr().String(), "target", s.app.Forwarder.BaseURL(), "frontendDir", s.app.Assets.Dir())
	return nil
}

// Addr returns the bound listen address, or "" when not running.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// IsRunning reports whether the server is accepting connections.
func (s *Server) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Stop gracefully shuts down the server, waiting for in-flight requests
// until ctx is done.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false
	s.listener = nil

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}
