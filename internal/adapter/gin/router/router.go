package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"users-api/internal/adapter/gin/handler"
	"users-api/internal/adapter/gin/middleware"
	"users-api/internal/adapter/gin/swagger"
	apperrors "users-api/pkg/errors"
	"users-api/pkg/metrics"
)

// SetupRouter configures and returns a Gin router with all routes and middleware.
// rateLimiter and metricsManager may be nil.
func SetupRouter(
	userHandler *handler.UserHandler,
	rateLimiter *middleware.RateLimiter,
	metricsManager *metrics.Manager,
	serviceName string,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.Metrics(metricsManager))
	router.Use(rateLimiter.Handler())

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.ErrorResponse{Error: apperrors.MsgNotFound})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, handler.ErrorResponse{Error: apperrors.MsgMethodNotAllowed})
	})

	router.GET("/", handler.Home)
	router.GET("/about", handler.About)
	router.GET("/health", handler.Health(serviceName))
	if metricsManager != nil {
		router.GET("/metrics", gin.WrapH(metricsManager.Handler()))
	}
	swagger.Register(router)

	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	return router
}
