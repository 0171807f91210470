package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	responseMetaKey = "response_meta"
	requestStartKey = "request_start"
	cacheHitKey     = "cache_hit"
)

// WithResponseMeta stamps the request start and prepares the meta map handlers fill.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(requestStartKey, time.Now())
		c.Set(responseMetaKey, map[string]interface{}{})
		c.Next()
	}
}

// SetCacheHit records whether the payload came from the dataset view cache.
func SetCacheHit(c *gin.Context, hit bool) {
	SetMeta(c, cacheHitKey, hit)
}

// SetMeta stores one meta entry for the current response.
func SetMeta(c *gin.Context, key string, value interface{}) {
	metaOf(c)[key] = value
}

// ResponseMeta returns the meta map with processing_time_ms filled in. The time is
// measured from WithResponseMeta when it ran, from fallback otherwise.
func ResponseMeta(c *gin.Context, fallback time.Time) map[string]interface{} {
	meta := metaOf(c)
	start := fallback
	if raw, ok := c.Get(requestStartKey); ok {
		if t, ok := raw.(time.Time); ok {
			start = t
		}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	return meta
}

func metaOf(c *gin.Context) map[string]interface{} {
	if raw, ok := c.Get(responseMetaKey); ok {
		if meta, ok := raw.(map[string]interface{}); ok {
			return meta
		}
	}
	meta := make(map[string]interface{})
	c.Set(responseMetaKey, meta)
	return meta
}
