package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver receives one observation per served request.
type RequestObserver interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

const unmatchedRoute = "unmatched"

// Metrics records method, route template, status and latency. Requests under the
// skip prefixes (probes, the scrape endpoint) are not recorded.
func Metrics(observer RequestObserver, skipPrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if observer == nil || skipped(c.Request.URL.Path, skipPrefixes) {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		observer.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

func skipped(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
