// Package http exposes the exam-schedule queries over a small JSON API:
// the division listing, per-division lookups, aggregate statistics, and
// cache clearing.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ugla-hub/proftafla/internal/application/query"
	"github.com/ugla-hub/proftafla/pkg/logger"
)

// Config contains HTTP server configuration.
type Config struct {
	// Addr is the address to listen on, e.g. ":3000".
	Addr string

	// ReadTimeout is the maximum duration for reading a request.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration for writing the response.
	WriteTimeout time.Duration

	// IdleTimeout is the maximum duration for idle connections.
	IdleTimeout time.Duration
}

// DefaultConfig returns default server configuration.
func DefaultConfig(addr string) Config {
	return Config{
		Addr:         addr,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Server is the HTTP front-end over the query service.
type Server struct {
	srv *http.Server
	log *logger.Logger
}

// NewServer creates a Server with all routes registered.
func NewServer(cfg Config, svc *query.Service, log *logger.Logger) *Server {
	h := &handler{
		svc: svc,
		log: log.With(logger.Component("http")),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /divisions", h.divisions)
	mux.HandleFunc("GET /divisions/{slug}", h.divisionBySlug)
	mux.HandleFunc("GET /stats", h.stats)
	mux.HandleFunc("DELETE /cache", h.clearCache)

	return &Server{
		srv: &http.Server{
			Addr:         cfg.Addr,
			Handler:      mux,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		log: log.With(logger.Component("http")),
	}
}

// Start listens and serves until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("http server listening", logger.String("addr", s.srv.Addr))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
