package api

import (
	"context"
	"net/http"
	"time"

	"github.com/ignite/moodletter/internal/config"
	"github.com/ignite/moodletter/internal/tracking"
)

// Server wraps the HTTP server for the combined API + tracking surface.
type Server struct {
	config  config.ServerConfig
	handler http.Handler
	server  *http.Server
}

// NewServer creates the API server with all routes configured.
func NewServer(cfg config.ServerConfig, h *Handlers, th *tracking.Handler) *Server {
	return &Server{
		config:  cfg,
		handler: SetupRoutes(h, th, cfg.AllowedOrigins),
	}
}

// Handler exposes the configured route tree (used by tests).
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
