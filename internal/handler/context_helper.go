package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/exam-logistics-api/internal/middleware"
	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
	"github.com/noah-isme/exam-logistics-api/pkg/response"
)

func datasetID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "dataset id is required"))
		return "", false
	}
	return id, true
}

// respondCached writes data with the cache_hit and processing_time_ms meta.
func respondCached(c *gin.Context, start time.Time, data interface{}, cacheHit bool) {
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, data, nil, middleware.ResponseMeta(c, start))
}
