package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/exam-logistics-api/internal/dto"
	"github.com/noah-isme/exam-logistics-api/internal/models"
	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
	"github.com/noah-isme/exam-logistics-api/pkg/response"
)

type datasetService interface {
	List(ctx context.Context) ([]models.DatasetSummary, error)
	Overview(ctx context.Context, id string) (*dto.DatasetOverviewResponse, error)
	Issues(ctx context.Context, id string) ([]models.DatasetIssue, error)
	Classes(ctx context.Context, id string) ([]dto.ClassSummary, error)
	Students(ctx context.Context, id, className string) ([]models.Student, error)
	StudentsByRoom(ctx context.Context, id string) ([]dto.RoomStudents, error)
}

// DatasetHandler exposes exam datasets.
type DatasetHandler struct {
	service datasetService
}

// NewDatasetHandler constructs the handler.
func NewDatasetHandler(service datasetService) *DatasetHandler {
	return &DatasetHandler{service: service}
}

// List godoc
// @Summary List exam datasets
// @Tags Datasets
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /datasets [get]
func (h *DatasetHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// Get godoc
// @Summary Dataset overview
// @Tags Datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /datasets/{id} [get]
func (h *DatasetHandler) Get(c *gin.Context) {
	id, ok := datasetID(c)
	if !ok {
		return
	}
	overview, err := h.service.Overview(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview, nil)
}

// Issues godoc
// @Summary Authoring issues of a dataset
// @Tags Datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} response.Envelope
// @Router /datasets/{id}/issues [get]
func (h *DatasetHandler) Issues(c *gin.Context) {
	id, ok := datasetID(c)
	if !ok {
		return
	}
	issues, err := h.service.Issues(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, issues, nil, map[string]interface{}{"count": len(issues)})
}

// Classes godoc
// @Summary Classes with convoked students
// @Tags Students
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} response.Envelope
// @Router /datasets/{id}/classes [get]
func (h *DatasetHandler) Classes(c *gin.Context) {
	id, ok := datasetID(c)
	if !ok {
		return
	}
	classes, err := h.service.Classes(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classes, nil)
}

// Students godoc
// @Summary Students of a class
// @Tags Students
// @Produce json
// @Param id path string true "Dataset ID"
// @Param class path string true "Class name"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size, all students when omitted"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /datasets/{id}/classes/{class}/students [get]
func (h *DatasetHandler) Students(c *gin.Context) {
	id, ok := datasetID(c)
	if !ok {
		return
	}
	className := strings.TrimSpace(c.Param("class"))
	if className == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "class is required"))
		return
	}
	page, size, err := pageParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	students, err := h.service.Students(c.Request.Context(), id, className)
	if err != nil {
		response.Error(c, err)
		return
	}
	if size == 0 {
		response.JSON(c, http.StatusOK, students, nil)
		return
	}
	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: len(students)}
	from := len(students)
	if pages := (len(students) + size - 1) / size; page <= pages {
		from = (page - 1) * size
	}
	to := from + size
	if to > len(students) {
		to = len(students)
	}
	response.JSON(c, http.StatusOK, students[from:to], pagination)
}

// StudentsByRoom godoc
// @Summary Students grouped by exam room
// @Tags Students
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /datasets/{id}/rooms/students [get]
func (h *DatasetHandler) StudentsByRoom(c *gin.Context) {
	id, ok := datasetID(c)
	if !ok {
		return
	}
	rooms, err := h.service.StudentsByRoom(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	students := 0
	for _, r := range rooms {
		students += r.StudentCount
	}
	response.JSON(c, http.StatusOK, rooms, nil, map[string]interface{}{"rooms": len(rooms), "seats": students})
}

func pageParams(c *gin.Context) (int, int, error) {
	page, size := 1, 0
	if raw := c.Query("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return 0, 0, appErrors.Clone(appErrors.ErrValidation, "page must be a positive integer")
		}
		page = v
	}
	if raw := c.Query("page_size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 500 {
			return 0, 0, appErrors.Clone(appErrors.ErrValidation, "page_size must be between 1 and 500")
		}
		size = v
	}
	return page, size, nil
}
