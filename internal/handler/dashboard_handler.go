package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/exam-logistics-api/internal/dto"
	"github.com/noah-isme/exam-logistics-api/pkg/response"
)

type dashboardService interface {
	Teachers(ctx context.Context, datasetID, teacher string) (*dto.TeacherScheduleResponse, bool, error)
	Rooms(ctx context.Context, datasetID string) (*dto.RoomGridResponse, bool, error)
	RoomTimelines(ctx context.Context, datasetID string) (*dto.RoomTimelineResponse, bool, error)
	Days(ctx context.Context, datasetID string) (*dto.DayScheduleResponse, bool, error)
	Refresh(ctx context.Context, datasetID string) error
}

// DashboardHandler serves the teacher, room and day views.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Teachers godoc
// @Summary Missions grouped by teacher
// @Tags Dashboard
// @Produce json
// @Param id path string true "Dataset ID"
// @Param teacher query string false "Teacher short name, e.g. CAPEL E."
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /datasets/{id}/teachers [get]
func (h *DashboardHandler) Teachers(c *gin.Context) {
	id, ok := datasetID(c)
	if !ok {
		return
	}
	start := time.Now()
	resp, hit, err := h.service.Teachers(c.Request.Context(), id, c.Query("teacher"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondCached(c, start, resp, hit)
}

// Rooms godoc
// @Summary Room grid merged with support missions
// @Tags Dashboard
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} response.Envelope
// @Router /datasets/{id}/rooms [get]
func (h *DashboardHandler) Rooms(c *gin.Context) {
	id, ok := datasetID(c)
	if !ok {
		return
	}
	start := time.Now()
	resp, hit, err := h.service.Rooms(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondCached(c, start, resp, hit)
}

// RoomTimelines godoc
// @Summary Merged room grid pivoted per room
// @Tags Dashboard
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} response.Envelope
// @Router /datasets/{id}/rooms/timeline [get]
func (h *DashboardHandler) RoomTimelines(c *gin.Context) {
	id, ok := datasetID(c)
	if !ok {
		return
	}
	start := time.Now()
	resp, hit, err := h.service.RoomTimelines(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondCached(c, start, resp, hit)
}

// Days godoc
// @Summary Day by day time slots
// @Tags Dashboard
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} response.Envelope
// @Router /datasets/{id}/days [get]
func (h *DashboardHandler) Days(c *gin.Context) {
	id, ok := datasetID(c)
	if !ok {
		return
	}
	start := time.Now()
	resp, hit, err := h.service.Days(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondCached(c, start, resp, hit)
}

// Refresh godoc
// @Summary Drop the cached views of a dataset
// @Tags Dashboard
// @Param id path string true "Dataset ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /datasets/{id}/cache [delete]
func (h *DashboardHandler) Refresh(c *gin.Context) {
	id, ok := datasetID(c)
	if !ok {
		return
	}
	if err := h.service.Refresh(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
