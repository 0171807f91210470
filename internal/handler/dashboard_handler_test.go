package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/exam-logistics-api/internal/dto"
	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
)

type fakeDashboardSrv struct {
	teachersResp *dto.TeacherScheduleResponse
	teachersHit  bool
	err          error
	lastDataset  string
	lastTeacher  string
}

func (f *fakeDashboardSrv) Teachers(_ context.Context, datasetID, teacher string) (*dto.TeacherScheduleResponse, bool, error) {
	f.lastDataset = datasetID
	f.lastTeacher = teacher
	return f.teachersResp, f.teachersHit, f.err
}

func (f *fakeDashboardSrv) Rooms(_ context.Context, datasetID string) (*dto.RoomGridResponse, bool, error) {
	f.lastDataset = datasetID
	return &dto.RoomGridResponse{DatasetID: datasetID}, false, f.err
}

func (f *fakeDashboardSrv) RoomTimelines(_ context.Context, datasetID string) (*dto.RoomTimelineResponse, bool, error) {
	return &dto.RoomTimelineResponse{DatasetID: datasetID}, false, f.err
}

func (f *fakeDashboardSrv) Days(_ context.Context, datasetID string) (*dto.DayScheduleResponse, bool, error) {
	return &dto.DayScheduleResponse{DatasetID: datasetID}, false, f.err
}

func (f *fakeDashboardSrv) Refresh(_ context.Context, datasetID string) error {
	f.lastDataset = datasetID
	return f.err
}

func TestDashboardHandlerTeachersRequiresDataset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/datasets//teachers", nil)

	handler.Teachers(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardHandlerTeachersSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeDashboardSrv{
		teachersResp: &dto.TeacherScheduleResponse{
			DatasetID: "bac",
			Groups:    []dto.TeacherGroupView{{Teacher: "CAPEL É.", TotalSeconds: 14400, TotalDurationLabel: "4 h"}},
		},
		teachersHit: true,
	}
	handler := NewDashboardHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/datasets/bac/teachers?teacher=capel+e", nil)
	c.Params = gin.Params{{Key: "id", Value: "bac"}}

	handler.Teachers(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bac", srv.lastDataset)
	assert.Equal(t, "capel e", srv.lastTeacher)

	var body struct {
		Data dto.TeacherScheduleResponse `json:"data"`
		Meta map[string]interface{}      `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Groups, 1)
	assert.Equal(t, "4 h", body.Data.Groups[0].TotalDurationLabel)
	assert.Equal(t, true, body.Meta["cache_hit"])
	assert.Contains(t, body.Meta, "processing_time_ms")
}

func TestDashboardHandlerPropagatesNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{err: appErrors.Clone(appErrors.ErrNotFound, "dataset missing not found")})

	for name, call := range map[string]gin.HandlerFunc{
		"rooms":     handler.Rooms,
		"timelines": handler.RoomTimelines,
		"days":      handler.Days,
		"teachers":  handler.Teachers,
	} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Params = gin.Params{{Key: "id", Value: "missing"}}

			call(c)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "NOT_FOUND")
		})
	}
}

func TestDashboardHandlerRoomsReportsMissMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/datasets/bac/rooms", nil)
	c.Params = gin.Params{{Key: "id", Value: "bac"}}

	handler.Rooms(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data dto.RoomGridResponse   `json:"data"`
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bac", body.Data.DatasetID)
	assert.Equal(t, false, body.Meta["cache_hit"])
}

func TestDashboardHandlerRefresh(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeDashboardSrv{}
	r := gin.New()
	r.DELETE("/datasets/:id/cache", NewDashboardHandler(srv).Refresh)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/datasets/bac/cache", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "bac", srv.lastDataset)
}
