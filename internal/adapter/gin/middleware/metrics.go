package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"users-api/pkg/metrics"
)

// unmatchedEndpoint labels requests that did not match any route
const unmatchedEndpoint = "unmatched"

// Metrics records request count, latency and errors per route template.
// A nil manager disables recording.
func Metrics(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = unmatchedEndpoint
		}
		m.RecordHTTPRequest(endpoint, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
