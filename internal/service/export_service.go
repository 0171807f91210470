package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/noah-isme/exam-logistics-api/internal/dto"
	"github.com/noah-isme/exam-logistics-api/internal/models"
	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
	"github.com/noah-isme/exam-logistics-api/pkg/export"
	"github.com/noah-isme/exam-logistics-api/pkg/storage"
)

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
	RenderDocuments(docs []export.Document) ([]byte, error)
}

type xlsxRenderer interface {
	Render(data export.Dataset, sheetName string) ([]byte, error)
	RenderSheets(sheets []export.Sheet) ([]byte, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportRenderers groups the optional renderer overrides. Nil fields use the defaults.
type ExportRenderers struct {
	CSV  csvRenderer
	PDF  pdfRenderer
	XLSX xlsxRenderer
}

// ExportDownload is a resolved download.
type ExportDownload struct {
	File        *os.File
	Filename    string
	ContentType string
	ExpiresAt   time.Time
}

// ExportService renders documents and stores them behind signed links.
type ExportService struct {
	datasets     datasetGetter
	convocations *ConvocationService
	storage      fileStorage
	signer       *storage.SignedURLSigner
	renderers    ExportRenderers
	metrics      *MetricsService
	logger       *zap.Logger
	cfg          ExportConfig
}

// NewExportService constructs an ExportService.
func NewExportService(datasets datasetGetter, convocations *ConvocationService, files fileStorage, signer *storage.SignedURLSigner, renderers ExportRenderers, metrics *MetricsService, cfg ExportConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	if convocations == nil {
		convocations = NewConvocationService("")
	}
	if renderers.CSV == nil {
		renderers.CSV = export.NewCSVExporter()
	}
	if renderers.PDF == nil {
		renderers.PDF = export.NewPDFExporter()
	}
	if renderers.XLSX == nil {
		renderers.XLSX = export.NewXLSXExporter()
	}
	return &ExportService{
		datasets:     datasets,
		convocations: convocations,
		storage:      files,
		signer:       signer,
		renderers:    renderers,
		metrics:      metrics,
		logger:       logger,
		cfg:          cfg,
	}
}

// Convocations exposes the document builder used by batch jobs.
func (s *ExportService) Convocations() *ConvocationService {
	return s.convocations
}

// Generate renders one export synchronously and returns its signed link.
func (s *ExportService) Generate(ctx context.Context, datasetID string, req dto.CreateExportRequest) (resp *dto.ExportResponse, err error) {
	if req.Format == "" {
		req.Format = models.ExportFormatPDF
	}
	start := time.Now()
	defer func() {
		s.metrics.ObserveExport(string(req.Kind), string(req.Format), time.Since(start), err)
	}()

	ds, err := s.datasets.Get(ctx, datasetID)
	if err != nil {
		return nil, err
	}
	payload, filename, err := s.render(*ds, req)
	if err != nil {
		return nil, err
	}
	resp, err = s.Store(uuid.NewString(), ds.ID, filename, payload)
	if err != nil {
		return nil, err
	}
	resp.Kind = req.Kind
	resp.Format = req.Format
	s.logger.Info("export generated",
		zap.String("dataset_id", ds.ID),
		zap.String("kind", string(req.Kind)),
		zap.String("format", string(req.Format)),
		zap.Int("bytes", len(payload)),
	)
	return resp, nil
}

func (s *ExportService) render(ds models.ExamDataset, req dto.CreateExportRequest) ([]byte, string, error) {
	ext := string(req.Format)
	switch req.Kind {
	case models.ExportKindTeacherConvocation:
		if req.Format != models.ExportFormatPDF {
			return nil, "", unsupported(req)
		}
		if strings.TrimSpace(req.Teacher) == "" {
			return nil, "", appErrors.Clone(appErrors.ErrValidation, "teacher is required")
		}
		doc, err := s.convocations.TeacherConvocation(ds, req.Teacher)
		if err != nil {
			return nil, "", err
		}
		payload, err := s.renderers.PDF.RenderDocuments([]export.Document{doc})
		return payload, "convocation-" + SanitizeFilename(req.Teacher) + ".pdf", err

	case models.ExportKindAttendanceList:
		data, err := s.convocations.AttendanceList(ds)
		if err != nil {
			return nil, "", err
		}
		payload, err := s.renderTable(req.Format, data, AttendanceTitle(), "Émargement")
		return payload, "liste-emargement-" + SanitizeFilename(ds.ID) + "." + ext, err

	case models.ExportKindTeacherSchedule:
		req.Teacher = strings.TrimSpace(req.Teacher)
		data, err := s.convocations.TeacherScheduleTable(ds, req.Teacher)
		if err != nil {
			return nil, "", err
		}
		name := "planning-surveillances-" + SanitizeFilename(ds.ID)
		if req.Teacher != "" {
			name = "planning-" + SanitizeFilename(req.Teacher)
		}
		payload, err := s.renderTable(req.Format, data, "Planning des surveillances", "Surveillances")
		return payload, name + "." + ext, err

	case models.ExportKindStudentConvocations:
		if strings.TrimSpace(req.ClassName) == "" {
			return nil, "", appErrors.Clone(appErrors.ErrValidation, "className is required")
		}
		docs, err := s.convocations.StudentConvocations(ds, req.ClassName)
		if err != nil {
			return nil, "", err
		}
		filename := "convocations-" + SanitizeFilename(req.ClassName) + "." + ext
		if req.Format == models.ExportFormatPDF {
			payload, err := s.renderers.PDF.RenderDocuments(docs)
			return payload, filename, err
		}
		students, err := s.convocations.ClassStudents(ds, req.ClassName)
		if err != nil {
			return nil, "", err
		}
		data := s.convocations.StudentSessionsTable(ds, students)
		payload, err := s.renderTable(req.Format, data, "", req.ClassName)
		return payload, filename, err
	}
	return nil, "", unsupported(req)
}

func unsupported(req dto.CreateExportRequest) error {
	return appErrors.Clone(appErrors.ErrUnsupportedExport, fmt.Sprintf("format %s is not available for %s", req.Format, req.Kind))
}

func (s *ExportService) renderTable(format models.ExportFormat, data export.Dataset, title, sheet string) ([]byte, error) {
	switch format {
	case models.ExportFormatCSV:
		return s.renderers.CSV.Render(data)
	case models.ExportFormatXLSX:
		return s.renderers.XLSX.Render(data, sheet)
	case models.ExportFormatPDF:
		if title == "" {
			title = data.Subtitle
		}
		return s.renderers.PDF.Render(data, title)
	}
	return nil, appErrors.Clone(appErrors.ErrUnsupportedExport, "unknown format "+string(format))
}

// RenderDocuments renders documents into a single PDF.
func (s *ExportService) RenderDocuments(docs []export.Document) ([]byte, error) {
	return s.renderers.PDF.RenderDocuments(docs)
}

// RenderSheets renders one workbook with a sheet per dataset.
func (s *ExportService) RenderSheets(sheets []export.Sheet) ([]byte, error) {
	return s.renderers.XLSX.RenderSheets(sheets)
}

// Store saves payload under reference and signs a download link for it.
func (s *ExportService) Store(reference, datasetID, filename string, payload []byte) (*dto.ExportResponse, error) {
	relPath, err := s.storage.Save(path.Join(SanitizeFilename(datasetID), reference, filename), payload)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store export")
	}
	token, expiresAt, err := s.signer.Generate(reference, relPath)
	if err != nil {
		_ = s.storage.Delete(relPath)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign export link")
	}
	prefix := strings.TrimRight(s.cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api/v1"
	}
	return &dto.ExportResponse{
		Filename:  filename,
		URL:       fmt.Sprintf("%s/exports/download/%s", prefix, token),
		Size:      len(payload),
		ExpiresAt: expiresAt,
	}, nil
}

// Download validates a token and opens the stored file.
func (s *ExportService) Download(token string) (*ExportDownload, error) {
	claims, err := s.signer.Parse(token, false)
	if err != nil {
		if errors.Is(err, storage.ErrTokenExpired) {
			return nil, appErrors.ErrExpiredLink
		}
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export not found")
	}
	file, err := s.storage.Open(claims.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, appErrors.Clone(appErrors.ErrExpiredLink, "export file has been removed")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open export file")
	}
	name := path.Base(claims.Path)
	return &ExportDownload{
		File:        file,
		Filename:    name,
		ContentType: contentType(name),
		ExpiresAt:   claims.ExpiresAt,
	}, nil
}

func contentType(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".csv":
		return "text/csv; charset=utf-8"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// Cleanup removes files older than ttl (the configured ResultTTL when ttl <= 0).
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

var stripMarks = runes.Remove(runes.In(unicode.Mn))

// SanitizeFilename folds accents and keeps [a-z0-9-] ("CAPEL É." becomes "capel-e").
func SanitizeFilename(raw string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, stripMarks, norm.NFC), raw)
	if err != nil {
		folded = raw
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if len(out) > 80 {
		out = strings.TrimSuffix(out[:80], "-")
	}
	if out == "" {
		return "export"
	}
	return out
}
