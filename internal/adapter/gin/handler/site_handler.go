package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Static page bodies
const (
	HomeText  = "Hello, World! VY"
	AboutText = "About"
)

// Home handles GET /
func Home(c *gin.Context) {
	c.String(http.StatusOK, HomeText)
}

// About handles GET /about
func About(c *gin.Context) {
	c.String(http.StatusOK, AboutText)
}

// Health handles GET /health
func Health(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": service,
		})
	}
}
