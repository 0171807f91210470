package repository

import (
	"context"
	"database/sql"

	"github.com/noah-isme/exam-logistics-api/internal/dataset"
	"github.com/noah-isme/exam-logistics-api/internal/models"
)

// StaticDatasetRepository serves the datasets compiled into the binary.
type StaticDatasetRepository struct{}

// NewStaticDatasetRepository constructs a StaticDatasetRepository.
func NewStaticDatasetRepository() *StaticDatasetRepository {
	return &StaticDatasetRepository{}
}

// List returns dataset summaries ordered by id.
func (r *StaticDatasetRepository) List(ctx context.Context) ([]models.DatasetSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return dataset.Summaries(dataset.Builtin()), nil
}

// Get returns a private copy of the dataset, or sql.ErrNoRows when unknown.
func (r *StaticDatasetRepository) Get(ctx context.Context, id string) (*models.ExamDataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds, ok := dataset.Lookup(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &ds, nil
}
