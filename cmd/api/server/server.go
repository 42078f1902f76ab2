package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"users-api/cmd/api/di"
)

// Server owns the HTTP listener of the API
type Server struct {
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance from the container
func New(c *di.Container) *Server {
	return &Server{
		Logger: c.Logger,
		HTTP: SetupGinServer(
			c.GinHandler,
			c.RateLimiter,
			c.Metrics,
			c.Config.Logger.ServiceName,
			":"+c.Config.App.HTTPPort,
			c.Logger,
		),
	}
}

// Start serves HTTP until Shutdown is called
func (s *Server) Start() error {
	s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))

	if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("shutting down HTTP server...")
	return s.HTTP.Shutdown(ctx)
}
