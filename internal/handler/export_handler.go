package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/exam-logistics-api/internal/dto"
	"github.com/noah-isme/exam-logistics-api/internal/models"
	"github.com/noah-isme/exam-logistics-api/internal/service"
	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
	"github.com/noah-isme/exam-logistics-api/pkg/response"
)

type exportService interface {
	Generate(ctx context.Context, datasetID string, req dto.CreateExportRequest) (*dto.ExportResponse, error)
	Download(token string) (*service.ExportDownload, error)
}

type exportJobService interface {
	Create(ctx context.Context, datasetID string, req dto.CreateBatchExportRequest) (*models.ExportJob, error)
	Status(id string) (*models.ExportJob, error)
}

// ExportHandler serves document exports and their downloads.
type ExportHandler struct {
	exports exportService
	jobs    exportJobService
}

// NewExportHandler constructs the handler.
func NewExportHandler(exports exportService, jobs exportJobService) *ExportHandler {
	return &ExportHandler{exports: exports, jobs: jobs}
}

// Create godoc
// @Summary Generate a document export
// @Tags Exports
// @Accept json
// @Produce json
// @Param id path string true "Dataset ID"
// @Param payload body dto.CreateExportRequest true "Export request"
// @Success 201 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /datasets/{id}/exports [post]
func (h *ExportHandler) Create(c *gin.Context) {
	id, ok := datasetID(c)
	if !ok {
		return
	}
	var req dto.CreateExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	result, err := h.exports.Generate(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// CreateBatch godoc
// @Summary Queue a whole-dataset export
// @Tags Exports
// @Accept json
// @Produce json
// @Param id path string true "Dataset ID"
// @Param payload body dto.CreateBatchExportRequest true "Batch export request"
// @Success 202 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /datasets/{id}/exports/batch [post]
func (h *ExportHandler) CreateBatch(c *gin.Context) {
	if h.jobs == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrInternal, "batch exports not configured"))
		return
	}
	id, ok := datasetID(c)
	if !ok {
		return
	}
	var req dto.CreateBatchExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	job, err := h.jobs.Create(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, job)
}

// JobStatus godoc
// @Summary Batch export status
// @Tags Exports
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /exports/jobs/{jobId} [get]
func (h *ExportHandler) JobStatus(c *gin.Context) {
	if h.jobs == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrInternal, "batch exports not configured"))
		return
	}
	job, err := h.jobs.Status(c.Param("jobId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job, nil)
}

// Download godoc
// @Summary Download a generated export
// @Tags Exports
// @Produce application/pdf
// @Param token path string true "Signed token"
// @Success 200 {file} binary
// @Failure 410 {object} response.Envelope
// @Router /exports/download/{token} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token is required"))
		return
	}
	result, err := h.exports.Download(token)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer result.File.Close() //nolint:errcheck
	info, err := result.File.Stat()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stat export file"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", result.Filename))
	c.Header("Cache-Control", "no-store")
	c.DataFromReader(http.StatusOK, info.Size(), result.ContentType, result.File, nil)
}
