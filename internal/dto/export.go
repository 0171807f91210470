package dto

import (
	"time"

	"github.com/noah-isme/exam-logistics-api/internal/models"
)

// CreateExportRequest asks for a single export document.
type CreateExportRequest struct {
	Kind      models.ExportKind   `json:"kind" binding:"required,oneof=teacher-convocation attendance-list teacher-schedule student-convocations"`
	Format    models.ExportFormat `json:"format" binding:"omitempty,oneof=pdf csv xlsx"`
	Teacher   string              `json:"teacher"`
	ClassName string              `json:"className"`
}

// CreateBatchExportRequest asks for a background export over a whole dataset.
type CreateBatchExportRequest struct {
	Kind   models.ExportKind   `json:"kind" binding:"required,oneof=all-student-convocations all-teacher-convocations"`
	Format models.ExportFormat `json:"format" binding:"omitempty,oneof=pdf xlsx"`
}

// ExportResponse describes a generated export file.
type ExportResponse struct {
	Kind      models.ExportKind   `json:"kind"`
	Format    models.ExportFormat `json:"format"`
	Filename  string              `json:"filename"`
	URL       string              `json:"url"`
	Size      int                 `json:"size"`
	ExpiresAt time.Time           `json:"expiresAt"`
}
