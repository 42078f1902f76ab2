package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	ginhandler "users-api/internal/adapter/gin/handler"
	"users-api/internal/adapter/gin/middleware"
	ginrouter "users-api/internal/adapter/gin/router"
	"users-api/pkg/metrics"
)

// SetupGinServer creates the HTTP server for the Gin router, with CORS applied
// ahead of routing so preflight requests never reach it.
func SetupGinServer(
	handler *ginhandler.UserHandler,
	rateLimiter *middleware.RateLimiter,
	metricsManager *metrics.Manager,
	serviceName string,
	addr string,
	l *zap.Logger,
) *http.Server {
	router := ginrouter.SetupRouter(handler, rateLimiter, metricsManager, serviceName, l)

	l.Info("Gin REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           middleware.CORS(router),
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
