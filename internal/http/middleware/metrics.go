package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/observability"
)

// unmatchedRoute labels 404s so arbitrary paths never become label values.
const unmatchedRoute = "unmatched"

var unobservedRoutes = map[string]bool{
	"/metrics":     true,
	"/healthcheck": true,
	"/readyz":      true,
}

// Metrics records request count, latency and in-flight gauge per route
// template. A nil m disables it.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil || unobservedRoutes[c.Request.URL.Path] {
			c.Next()
			return
		}
		m.ApiInflightInc()
		began := time.Now()
		defer func() {
			m.ApiInflightDec()
			route := c.FullPath()
			if route == "" {
				route = unmatchedRoute
			}
			m.ObserveAPI(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(began))
		}()
		c.Next()
	}
}
