package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseMetaUsesRequestStart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(WithResponseMeta())

	var meta map[string]interface{}
	r.GET("/", func(c *gin.Context) {
		time.Sleep(5 * time.Millisecond)
		SetCacheHit(c, true)
		meta = ResponseMeta(c, time.Now())
		c.Status(http.StatusOK)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, meta)
	assert.Equal(t, true, meta["cache_hit"])
	assert.GreaterOrEqual(t, meta["processing_time_ms"].(int64), int64(5))
}

func TestResponseMetaWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	SetMeta(c, "count", 3)
	meta := ResponseMeta(c, time.Now())

	assert.Equal(t, 3, meta["count"])
	assert.Contains(t, meta, "processing_time_ms")
}
