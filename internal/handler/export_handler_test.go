package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/exam-logistics-api/internal/dto"
	"github.com/noah-isme/exam-logistics-api/internal/models"
	"github.com/noah-isme/exam-logistics-api/internal/service"
	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
)

type fakeExportSrv struct {
	lastReq  dto.CreateExportRequest
	resp     *dto.ExportResponse
	download *service.ExportDownload
	err      error
}

func (f *fakeExportSrv) Generate(_ context.Context, _ string, req dto.CreateExportRequest) (*dto.ExportResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func (f *fakeExportSrv) Download(string) (*service.ExportDownload, error) {
	return f.download, f.err
}

type fakeExportJobSrv struct {
	job *models.ExportJob
	err error
}

func (f *fakeExportJobSrv) Create(context.Context, string, dto.CreateBatchExportRequest) (*models.ExportJob, error) {
	return f.job, f.err
}

func (f *fakeExportJobSrv) Status(string) (*models.ExportJob, error) {
	return f.job, f.err
}

func TestExportHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeExportSrv{resp: &dto.ExportResponse{Filename: "convocation-capel-e.pdf", URL: "/api/v1/exports/download/tok"}}
	handler := NewExportHandler(srv, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	body := bytes.NewBufferString(`{"kind":"teacher-convocation","format":"pdf","teacher":"CAPEL É."}`)
	c.Request = httptest.NewRequest(http.MethodPost, "/datasets/bac/exports", body)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "bac"}}

	handler.Create(c)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "CAPEL É.", srv.lastReq.Teacher)
	assert.Contains(t, rec.Body.String(), "/api/v1/exports/download/tok")
}

func TestExportHandlerCreateRejectsUnknownKind(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewExportHandler(&fakeExportSrv{}, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/datasets/bac/exports", bytes.NewBufferString(`{"kind":"grades"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "bac"}}

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportHandlerCreateNothingToExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewExportHandler(&fakeExportSrv{err: appErrors.Clone(appErrors.ErrNothingToExport, "Aucun élève")}, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/datasets/bac/exports", bytes.NewBufferString(`{"kind":"student-convocations","className":"Seconde Z"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "bac"}}

	handler.Create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOTHING_TO_EXPORT")
}

func TestExportHandlerCreateBatchAccepted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jobs := &fakeExportJobSrv{job: &models.ExportJob{ID: "job-1", Status: models.ExportJobQueued}}
	handler := NewExportHandler(&fakeExportSrv{}, jobs)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/datasets/bac/exports/batch", bytes.NewBufferString(`{"kind":"all-student-convocations"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "bac"}}

	handler.CreateBatch(c)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"QUEUED"`)
}

func TestExportHandlerJobStatusNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewExportHandler(&fakeExportSrv{}, &fakeExportJobSrv{err: appErrors.Clone(appErrors.ErrNotFound, "export job not found")})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/exports/jobs/x", nil)
	c.Params = gin.Params{{Key: "jobId", Value: "x"}}

	handler.JobStatus(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportHandlerDownloadStreamsFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	path := filepath.Join(t.TempDir(), "liste-emargement-bac.csv")
	require.NoError(t, os.WriteFile(path, []byte("Nom;Signature\n"), 0o600))
	file, err := os.Open(path)
	require.NoError(t, err)

	handler := NewExportHandler(&fakeExportSrv{download: &service.ExportDownload{
		File:        file,
		Filename:    "liste-emargement-bac.csv",
		ContentType: "text/csv; charset=utf-8",
		ExpiresAt:   time.Now().Add(time.Hour),
	}}, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/exports/download/tok", nil)
	c.Params = gin.Params{{Key: "token", Value: "tok"}}

	handler.Download(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="liste-emargement-bac.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Nom;Signature\n", rec.Body.String())
}

func TestExportHandlerDownloadExpired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewExportHandler(&fakeExportSrv{err: appErrors.ErrExpiredLink}, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/exports/download/tok", nil)
	c.Params = gin.Params{{Key: "token", Value: "tok"}}

	handler.Download(c)

	assert.Equal(t, http.StatusGone, rec.Code)
}
