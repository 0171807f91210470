package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/exam-logistics-api/internal/dataset"
	"github.com/noah-isme/exam-logistics-api/internal/dto"
	"github.com/noah-isme/exam-logistics-api/internal/models"
	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
	"github.com/noah-isme/exam-logistics-api/pkg/export"
	"github.com/noah-isme/exam-logistics-api/pkg/jobs"
)

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

// ExportJobConfig governs batch chunking and job retention.
type ExportJobConfig struct {
	BatchSize int
	Retention time.Duration
}

type exportJobState struct {
	job    models.ExportJob
	format models.ExportFormat
}

// ExportJobService runs whole-dataset exports on the background queue.
type ExportJobService struct {
	datasets datasetGetter
	exporter *ExportService
	queue    jobDispatcher
	metrics  *MetricsService
	logger   *zap.Logger
	cfg      ExportJobConfig
	now      func() time.Time

	mu   sync.RWMutex
	jobs map[string]*exportJobState
}

// NewExportJobService constructs an ExportJobService. The queue is attached later
// because it needs Handle as its handler.
func NewExportJobService(datasets datasetGetter, exporter *ExportService, metrics *MetricsService, cfg ExportJobConfig, logger *zap.Logger) *ExportJobService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 24 * time.Hour
	}
	return &ExportJobService{
		datasets: datasets,
		exporter: exporter,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
		jobs:     make(map[string]*exportJobState),
	}
}

// AttachQueue sets the dispatcher used by Create.
func (s *ExportJobService) AttachQueue(queue jobDispatcher) {
	s.queue = queue
}

// Create checks the export is not empty, registers a job and enqueues it.
func (s *ExportJobService) Create(ctx context.Context, datasetID string, req dto.CreateBatchExportRequest) (*models.ExportJob, error) {
	if req.Format == "" {
		req.Format = models.ExportFormatPDF
	}
	if req.Format != models.ExportFormatPDF && req.Format != models.ExportFormatXLSX {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedExport, fmt.Sprintf("format %s is not available for %s", req.Format, req.Kind))
	}
	ds, err := s.datasets.Get(ctx, datasetID)
	if err != nil {
		return nil, err
	}
	convocations := s.exporter.Convocations()
	switch req.Kind {
	case models.ExportKindAllStudentConvocations:
		if _, err := convocations.AllStudents(*ds); err != nil {
			return nil, err
		}
	case models.ExportKindAllTeacherConvocations:
		if len(TeacherGroups(*ds)) == 0 {
			return nil, nothingToExport(MsgNoInvigilator)
		}
	default:
		return nil, appErrors.Clone(appErrors.ErrUnsupportedExport, "unsupported batch export "+string(req.Kind))
	}
	if s.queue == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "export queue unavailable")
	}

	job := models.ExportJob{
		ID:        uuid.NewString(),
		DatasetID: ds.ID,
		Kind:      req.Kind,
		Status:    models.ExportJobQueued,
		CreatedAt: s.now().UTC(),
	}
	s.mu.Lock()
	s.jobs[job.ID] = &exportJobState{job: job, format: req.Format}
	s.mu.Unlock()

	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: string(job.Kind)}); err != nil {
		s.finish(job.ID, "", fmt.Errorf("failed to enqueue job: %w", err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue export job")
	}
	s.publish()
	return &job, nil
}

// Status returns a snapshot of a job.
func (s *ExportJobService) Status(id string) (*models.ExportJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.jobs[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
	}
	job := state.job
	return &job, nil
}

// Handle is the queue handler. A returned error schedules a retry.
func (s *ExportJobService) Handle(ctx context.Context, qjob jobs.Job) (err error) {
	s.mu.Lock()
	state, ok := s.jobs[qjob.ID]
	if ok {
		state.job.Status = models.ExportJobProcessing
		state.job.Progress = 0
	}
	var snapshot exportJobState
	if ok {
		snapshot = *state
	}
	s.mu.Unlock()
	if !ok {
		s.logger.Warn("unknown export job dequeued", zap.String("job_id", qjob.ID))
		return nil
	}
	s.publish()

	start := s.now()
	defer func() {
		s.metrics.ObserveExport(string(snapshot.job.Kind), string(snapshot.format), time.Since(start), err)
	}()

	ds, err := s.datasets.Get(ctx, snapshot.job.DatasetID)
	if err != nil {
		return err
	}
	payload, filename, err := s.build(ctx, qjob.ID, *ds, snapshot.job.Kind, snapshot.format)
	if appErrors.Is(err, appErrors.ErrNothingToExport) || appErrors.Is(err, appErrors.ErrUnsupportedExport) {
		s.finish(qjob.ID, "", err)
		return nil
	}
	if err != nil {
		return err
	}
	resp, err := s.exporter.Store(qjob.ID, ds.ID, filename, payload)
	if err != nil {
		return err
	}
	s.finish(qjob.ID, resp.URL, nil)
	s.logger.Info("batch export finished",
		zap.String("job_id", qjob.ID),
		zap.String("kind", string(snapshot.job.Kind)),
		zap.Int("attempt", qjob.Attempt),
		zap.Int("bytes", resp.Size),
	)
	return nil
}

// Fail marks a job failed once the queue gave up on it.
func (s *ExportJobService) Fail(qjob jobs.Job, err error) {
	s.finish(qjob.ID, "", err)
	s.logger.Error("batch export failed", zap.String("job_id", qjob.ID), zap.Int("attempts", qjob.Attempt), zap.Error(err))
}

func (s *ExportJobService) build(ctx context.Context, jobID string, ds models.ExamDataset, kind models.ExportKind, format models.ExportFormat) ([]byte, string, error) {
	convocations := s.exporter.Convocations()
	base := SanitizeFilename(ds.ID) + "." + string(format)

	switch kind {
	case models.ExportKindAllStudentConvocations:
		students, err := convocations.AllStudents(ds)
		if err != nil {
			return nil, "", err
		}
		if format == models.ExportFormatXLSX {
			sheets := make([]export.Sheet, 0)
			for _, class := range dataset.ClassNames(ds) {
				if err := ctx.Err(); err != nil {
					return nil, "", err
				}
				data := convocations.StudentSessionsTable(ds, dataset.StudentsForClass(ds, class))
				sheets = append(sheets, export.Sheet{Name: class, Data: data})
			}
			payload, err := s.exporter.RenderSheets(sheets)
			return payload, "convocations-eleves-" + base, err
		}
		docs := make([]export.Document, 0, len(students))
		for i := 0; i < len(students); i += s.cfg.BatchSize {
			if err := ctx.Err(); err != nil {
				return nil, "", err
			}
			end := i + s.cfg.BatchSize
			if end > len(students) {
				end = len(students)
			}
			docs = append(docs, convocations.StudentDocuments(ds, students[i:end])...)
			s.progress(jobID, end*90/len(students))
		}
		payload, err := s.exporter.RenderDocuments(docs)
		return payload, "convocations-eleves-" + base, err

	case models.ExportKindAllTeacherConvocations:
		if format == models.ExportFormatXLSX {
			groups := TeacherGroups(ds)
			sheets := make([]export.Sheet, 0, len(groups))
			for _, g := range groups {
				data, err := convocations.TeacherScheduleTable(ds, g.Teacher)
				if err != nil {
					return nil, "", err
				}
				sheets = append(sheets, export.Sheet{Name: g.Teacher, Data: data})
			}
			payload, err := s.exporter.RenderSheets(sheets)
			return payload, "convocations-surveillants-" + base, err
		}
		docs, err := convocations.AllTeacherConvocations(ds)
		if err != nil {
			return nil, "", err
		}
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}
		s.progress(jobID, 50)
		payload, err := s.exporter.RenderDocuments(docs)
		return payload, "convocations-surveillants-" + base, err
	}
	return nil, "", appErrors.Clone(appErrors.ErrUnsupportedExport, "unsupported batch export "+string(kind))
}

func (s *ExportJobService) progress(id string, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.jobs[id]; ok {
		state.job.Progress = value
	}
}

func (s *ExportJobService) finish(id, url string, err error) {
	now := s.now().UTC()
	s.mu.Lock()
	if state, ok := s.jobs[id]; ok {
		state.job.Progress = 100
		state.job.FinishedAt = &now
		if err != nil {
			msg := appErrors.FromError(err).Message
			if appErrors.FromError(err).Code == appErrors.ErrInternal.Code {
				msg = err.Error()
			}
			state.job.Status = models.ExportJobFailed
			state.job.ErrorMessage = &msg
			state.job.ResultURL = nil
		} else {
			state.job.Status = models.ExportJobFinished
			state.job.ResultURL = &url
			state.job.ErrorMessage = nil
		}
	}
	s.mu.Unlock()
	s.publish()
}

// Prune forgets finished jobs older than the retention window and returns how many.
func (s *ExportJobService) Prune() int {
	cutoff := s.now().Add(-s.cfg.Retention)
	removed := 0
	s.mu.Lock()
	for id, state := range s.jobs {
		if state.job.FinishedAt != nil && state.job.FinishedAt.Before(cutoff) {
			delete(s.jobs, id)
			removed++
		}
	}
	s.mu.Unlock()
	if removed > 0 {
		s.publish()
	}
	return removed
}

// StartCleanup prunes jobs and purges expired files every interval until ctx is done.
func (s *ExportJobService) StartCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.cleanup()
			}
		}
	}()
}

func (s *ExportJobService) cleanup() {
	pruned := s.Prune()
	deleted, err := s.exporter.Cleanup(s.cfg.Retention)
	if err != nil {
		s.logger.Warn("export cleanup failed", zap.Error(err))
		return
	}
	if pruned > 0 || len(deleted) > 0 {
		s.logger.Info("expired exports removed", zap.Int("jobs", pruned), zap.Int("files", len(deleted)))
	}
}

func (s *ExportJobService) publish() {
	counts := map[string]int{
		string(models.ExportJobQueued):     0,
		string(models.ExportJobProcessing): 0,
		string(models.ExportJobFinished):   0,
		string(models.ExportJobFailed):     0,
	}
	s.mu.RLock()
	for _, state := range s.jobs {
		counts[string(state.job.Status)]++
	}
	s.mu.RUnlock()
	s.metrics.SetExportJobs(counts)
}
