package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ajs-hub/placement-api/internal/service"
)

// unmatchedRoute labels requests that hit no route, so scanners probing random
// paths cannot grow the label set.
const unmatchedRoute = "unmatched"

// Metrics records method, route template, status and latency for each request.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	if metricsSvc == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
