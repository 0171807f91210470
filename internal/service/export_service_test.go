package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/exam-logistics-api/internal/dto"
	"github.com/noah-isme/exam-logistics-api/internal/models"
	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
	"github.com/noah-isme/exam-logistics-api/pkg/storage"
)

const downloadPrefix = "/api/v1/exports/download/"

func newTestExportService(t *testing.T, ttl time.Duration, metrics *MetricsService) (*ExportService, *storage.LocalStorage) {
	t.Helper()
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("test-secret", ttl)
	svc := NewExportService(newFakeDatasets(fixtureDataset()), NewConvocationService("Lycée Test"), files, signer,
		ExportRenderers{}, metrics, ExportConfig{APIPrefix: "/api/v1/"}, nil)
	return svc, files
}

func download(t *testing.T, svc *ExportService, url string) (*ExportDownload, string) {
	t.Helper()
	require.True(t, strings.HasPrefix(url, downloadPrefix), url)
	dl, err := svc.Download(strings.TrimPrefix(url, downloadPrefix))
	require.NoError(t, err)
	defer dl.File.Close()
	body, err := io.ReadAll(dl.File)
	require.NoError(t, err)
	return dl, string(body)
}

func TestExportTeacherConvocationPDF(t *testing.T) {
	metrics := NewMetricsService()
	svc, _ := newTestExportService(t, time.Hour, metrics)

	resp, err := svc.Generate(context.Background(), "bac-test", dto.CreateExportRequest{
		Kind:    models.ExportKindTeacherConvocation,
		Teacher: "CAPEL É.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ExportFormatPDF, resp.Format)
	assert.Equal(t, "convocation-capel-e.pdf", resp.Filename)
	assert.Greater(t, resp.Size, 0)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	dl, body := download(t, svc, resp.URL)
	assert.Equal(t, "convocation-capel-e.pdf", dl.Filename)
	assert.Equal(t, "application/pdf", dl.ContentType)
	assert.True(t, strings.HasPrefix(body, "%PDF"))
	assert.Equal(t, uint64(1), metrics.Snapshot().ExportsGenerated)
}

func TestExportTables(t *testing.T) {
	svc, _ := newTestExportService(t, time.Hour, nil)
	ctx := context.Background()

	attendance, err := svc.Generate(ctx, "bac-test", dto.CreateExportRequest{Kind: models.ExportKindAttendanceList, Format: models.ExportFormatCSV})
	require.NoError(t, err)
	assert.Equal(t, "liste-emargement-bac-test.csv", attendance.Filename)
	dl, body := download(t, svc, attendance.URL)
	assert.Equal(t, "text/csv; charset=utf-8", dl.ContentType)
	assert.Contains(t, body, "Émilie CAPEL")
	assert.Contains(t, body, "(Signature)")

	planning, err := svc.Generate(ctx, "bac-test", dto.CreateExportRequest{Kind: models.ExportKindTeacherSchedule, Format: models.ExportFormatXLSX})
	require.NoError(t, err)
	assert.Equal(t, "planning-surveillances-bac-test.xlsx", planning.Filename)

	blank, err := svc.Generate(ctx, "bac-test", dto.CreateExportRequest{Kind: models.ExportKindTeacherSchedule, Format: models.ExportFormatCSV, Teacher: " \t"})
	require.NoError(t, err)
	assert.Equal(t, "planning-surveillances-bac-test.csv", blank.Filename)

	one, err := svc.Generate(ctx, "bac-test", dto.CreateExportRequest{Kind: models.ExportKindTeacherSchedule, Format: models.ExportFormatPDF, Teacher: "DURAND P."})
	require.NoError(t, err)
	assert.Equal(t, "planning-durand-p.pdf", one.Filename)

	students, err := svc.Generate(ctx, "bac-test", dto.CreateExportRequest{Kind: models.ExportKindStudentConvocations, Format: models.ExportFormatCSV, ClassName: "Terminale A"})
	require.NoError(t, err)
	assert.Equal(t, "convocations-terminale-a.csv", students.Filename)
	_, body = download(t, svc, students.URL)
	assert.Contains(t, body, "Awa NDOUR")
}

func TestExportRejections(t *testing.T) {
	metrics := NewMetricsService()
	svc, _ := newTestExportService(t, time.Hour, metrics)
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.CreateExportRequest
		want *appErrors.Error
	}{
		{"convocation as csv", dto.CreateExportRequest{Kind: models.ExportKindTeacherConvocation, Format: models.ExportFormatCSV, Teacher: "CAPEL É."}, appErrors.ErrUnsupportedExport},
		{"convocation without teacher", dto.CreateExportRequest{Kind: models.ExportKindTeacherConvocation}, appErrors.ErrValidation},
		{"unknown teacher", dto.CreateExportRequest{Kind: models.ExportKindTeacherConvocation, Teacher: "NOBODY X."}, appErrors.ErrNothingToExport},
		{"students without class", dto.CreateExportRequest{Kind: models.ExportKindStudentConvocations}, appErrors.ErrValidation},
		{"empty class", dto.CreateExportRequest{Kind: models.ExportKindStudentConvocations, ClassName: "Seconde Z"}, appErrors.ErrNothingToExport},
		{"unknown kind", dto.CreateExportRequest{Kind: "timetable"}, appErrors.ErrUnsupportedExport},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Generate(ctx, "bac-test", tc.req)
			require.Error(t, err)
			assert.True(t, appErrors.Is(err, tc.want), err.Error())
		})
	}

	_, err := svc.Generate(ctx, "missing", dto.CreateExportRequest{Kind: models.ExportKindAttendanceList})
	assert.Error(t, err)
	assert.Equal(t, uint64(len(cases)+1), metrics.Snapshot().ExportsFailed)
}

func TestExportDownloadErrors(t *testing.T) {
	svc, files := newTestExportService(t, time.Hour, nil)

	_, err := svc.Download("not-a-token")
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))

	resp, err := svc.Generate(context.Background(), "bac-test", dto.CreateExportRequest{Kind: models.ExportKindAttendanceList})
	require.NoError(t, err)
	token := strings.TrimPrefix(resp.URL, downloadPrefix)
	deleted, err := files.CleanupOlderThan(-time.Hour)
	require.NoError(t, err)
	require.Len(t, deleted, 1)

	_, err = svc.Download(token)
	assert.True(t, appErrors.Is(err, appErrors.ErrExpiredLink))

	expiring, _ := newTestExportService(t, time.Nanosecond, nil)
	resp, err = expiring.Generate(context.Background(), "bac-test", dto.CreateExportRequest{Kind: models.ExportKindAttendanceList})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = expiring.Download(strings.TrimPrefix(resp.URL, downloadPrefix))
	assert.True(t, appErrors.Is(err, appErrors.ErrExpiredLink))
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"CAPEL É.":      "capel-e",
		"Terminale A":   "terminale-a",
		"S9 PRIO / EPS": "s9-prio-eps",
		"  Première B ": "premiere-b",
		"":              "export",
		"///":           "export",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFilename(in), in)
	}
}
