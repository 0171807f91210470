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
	"github.com/noah-isme/exam-logistics-api/internal/models"
	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
)

type fakeDatasetSrv struct {
	issues    []models.DatasetIssue
	students  []models.Student
	rooms     []dto.RoomStudents
	err       error
	lastClass string
}

func (f *fakeDatasetSrv) List(context.Context) ([]models.DatasetSummary, error) {
	return []models.DatasetSummary{{ID: "bac"}}, f.err
}

func (f *fakeDatasetSrv) Overview(_ context.Context, id string) (*dto.DatasetOverviewResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.DatasetOverviewResponse{ID: id}, nil
}

func (f *fakeDatasetSrv) Issues(context.Context, string) ([]models.DatasetIssue, error) {
	return f.issues, f.err
}

func (f *fakeDatasetSrv) Classes(context.Context, string) ([]dto.ClassSummary, error) {
	return []dto.ClassSummary{}, f.err
}

func (f *fakeDatasetSrv) Students(_ context.Context, _ string, className string) ([]models.Student, error) {
	f.lastClass = className
	return f.students, f.err
}

func (f *fakeDatasetSrv) StudentsByRoom(context.Context, string) ([]dto.RoomStudents, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rooms, nil
}

func TestDatasetHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDatasetHandler(&fakeDatasetSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/datasets", nil)

	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"bac"`)
}

func TestDatasetHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDatasetHandler(&fakeDatasetSrv{err: appErrors.Clone(appErrors.ErrNotFound, "dataset nope not found")})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/datasets/nope", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "dataset nope not found")
}

func TestDatasetHandlerIssuesCountsInMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDatasetHandler(&fakeDatasetSrv{issues: []models.DatasetIssue{{Message: "a"}, {Message: "b"}}})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/datasets/bac/issues", nil)
	c.Params = gin.Params{{Key: "id", Value: "bac"}}

	handler.Issues(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 2, body.Meta["count"])
}

func TestDatasetHandlerStudents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeDatasetSrv{students: []models.Student{{LastName: "RISPAL", FirstName: "Léa", ClassName: "Terminale A"}}}
	handler := NewDatasetHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/datasets/bac/classes/Terminale%20A/students", nil)
	c.Params = gin.Params{{Key: "id", Value: "bac"}, {Key: "class", Value: "Terminale A"}}

	handler.Students(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Terminale A", srv.lastClass)
	assert.Contains(t, rec.Body.String(), "RISPAL")
}

func TestDatasetHandlerStudentsRequiresClass(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDatasetHandler(&fakeDatasetSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "bac"}, {Key: "class", Value: " "}}

	handler.Students(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDatasetHandlerStudentsPaginates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDatasetHandler(&fakeDatasetSrv{students: []models.Student{
		{LastName: "BÂ"}, {LastName: "NDOUR"}, {LastName: "RISPAL"},
	}})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/datasets/bac/classes/T/students?page=2&page_size=2", nil)
	c.Params = gin.Params{{Key: "id", Value: "bac"}, {Key: "class", Value: "T"}}

	handler.Students(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data       []models.Student  `json:"data"`
		Pagination models.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "RISPAL", body.Data[0].LastName)
	assert.Equal(t, 3, body.Pagination.TotalCount)
}

func TestDatasetHandlerStudentsPageBeyondEndIsEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDatasetHandler(&fakeDatasetSrv{students: []models.Student{
		{LastName: "BÂ"}, {LastName: "NDOUR"}, {LastName: "RISPAL"},
	}})

	for _, page := range []string{"3", "9223372036854775807"} {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/?page_size=2&page="+page, nil)
		c.Params = gin.Params{{Key: "id", Value: "bac"}, {Key: "class", Value: "T"}}

		require.NotPanics(t, func() { handler.Students(c) }, page)

		require.Equal(t, http.StatusOK, rec.Code, page)
		var body struct {
			Data       []models.Student  `json:"data"`
			Pagination models.Pagination `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Empty(t, body.Data, page)
		assert.Equal(t, 3, body.Pagination.TotalCount, page)
	}
}

func TestDatasetHandlerStudentsRejectsBadPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDatasetHandler(&fakeDatasetSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=0", nil)
	c.Params = gin.Params{{Key: "id", Value: "bac"}, {Key: "class", Value: "T"}}

	handler.Students(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDatasetHandlerStudentsByRoom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDatasetHandler(&fakeDatasetSrv{rooms: []dto.RoomStudents{
		{Room: "B101", StudentCount: 2, Students: []dto.RoomStudent{{Name: "Marc ÉLIE"}, {Name: "Léa RISPAL"}}},
		{Room: "S12", StudentCount: 1, Students: []dto.RoomStudent{{Name: "Zoé ALLARD"}}},
	}})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/datasets/bac/rooms/students", nil)
	c.Params = gin.Params{{Key: "id", Value: "bac"}}

	handler.StudentsByRoom(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []dto.RoomStudents `json:"data"`
		Meta map[string]float64 `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "S12", body.Data[1].Room)
	assert.Equal(t, float64(2), body.Meta["rooms"])
	assert.Equal(t, float64(3), body.Meta["seats"])
}

func TestDatasetHandlerStudentsByRoomNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDatasetHandler(&fakeDatasetSrv{err: appErrors.Clone(appErrors.ErrNotFound, "dataset x not found")})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	handler.StudentsByRoom(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
