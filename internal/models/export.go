package models

import "time"

// ExportKind enumerates the documents the service can produce.
type ExportKind string

const (
	ExportKindTeacherConvocation     ExportKind = "teacher-convocation"
	ExportKindAttendanceList         ExportKind = "attendance-list"
	ExportKindTeacherSchedule        ExportKind = "teacher-schedule"
	ExportKindStudentConvocations    ExportKind = "student-convocations"
	ExportKindAllStudentConvocations ExportKind = "all-student-convocations"
	ExportKindAllTeacherConvocations ExportKind = "all-teacher-convocations"
)

// ExportFormat enumerates supported file formats.
type ExportFormat string

const (
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ExportJobStatus captures the lifecycle of a batch export.
type ExportJobStatus string

const (
	ExportJobQueued     ExportJobStatus = "QUEUED"
	ExportJobProcessing ExportJobStatus = "PROCESSING"
	ExportJobFinished   ExportJobStatus = "FINISHED"
	ExportJobFailed     ExportJobStatus = "FAILED"
)

// ExportJob tracks an asynchronous batch export.
type ExportJob struct {
	ID           string          `json:"id"`
	DatasetID    string          `json:"datasetId"`
	Kind         ExportKind      `json:"kind"`
	Status       ExportJobStatus `json:"status"`
	Progress     int             `json:"progress"`
	ResultURL    *string         `json:"resultUrl,omitempty"`
	ErrorMessage *string         `json:"error,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	FinishedAt   *time.Time      `json:"finishedAt,omitempty"`
}
