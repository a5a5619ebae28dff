package middleware

import (
	"strconv"

	"boardhub/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records a request counter per route pattern and status code.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
