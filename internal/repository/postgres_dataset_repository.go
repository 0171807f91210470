package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/noah-isme/exam-logistics-api/internal/dataset"
	"github.com/noah-isme/exam-logistics-api/internal/models"
)

// QueryObserver receives query timings.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// PostgresDatasetRepository loads datasets maintained in PostgreSQL. Read only; see
// migrations/0001_exam_datasets.up.sql for the schema.
type PostgresDatasetRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewPostgresDatasetRepository constructs a PostgresDatasetRepository. observer may be nil.
func NewPostgresDatasetRepository(db *sqlx.DB, observer QueryObserver) *PostgresDatasetRepository {
	return &PostgresDatasetRepository{db: db, observer: observer}
}

type datasetRow struct {
	ID                  string         `db:"id"`
	Title               string         `db:"title"`
	Date                string         `db:"date"`
	Subtitle            string         `db:"subtitle"`
	ReprographyDeadline string         `db:"reprography_deadline"`
	ConvocationTitle    string         `db:"convocation_title"`
	DefaultStudentCount int            `db:"default_student_count"`
	MissionTypes        types.JSONText `db:"mission_types"`
	RoomColumns         types.JSONText `db:"room_columns"`
	RoomSchedule        types.JSONText `db:"room_schedule"`
	KeyFigures          types.JSONText `db:"key_figures"`
	AccommodationGroups types.JSONText `db:"accommodation_groups"`
	ExamRooms           types.JSONText `db:"exam_rooms"`
}

type studentRow struct {
	LastName  string         `db:"last_name"`
	FirstName string         `db:"first_name"`
	ClassName string         `db:"class_name"`
	Sessions  types.JSONText `db:"sessions"`
}

func (r *PostgresDatasetRepository) observe(label string, start time.Time) {
	if r.observer != nil {
		r.observer.ObserveDBQuery(label, time.Since(start))
	}
}

// List returns dataset summaries ordered by id.
func (r *PostgresDatasetRepository) List(ctx context.Context) ([]models.DatasetSummary, error) {
	const query = `SELECT id, title, date, subtitle FROM exam_datasets ORDER BY id`
	defer r.observe("list_datasets", time.Now())
	var summaries []models.DatasetSummary
	if err := r.db.SelectContext(ctx, &summaries, query); err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	return summaries, nil
}

// Get loads a dataset with its missions, directory and students. Missing ids yield sql.ErrNoRows.
func (r *PostgresDatasetRepository) Get(ctx context.Context, id string) (*models.ExamDataset, error) {
	defer r.observe("get_dataset", time.Now())

	const datasetQuery = `SELECT id, title, date, subtitle, reprography_deadline, convocation_title, default_student_count,
mission_types, room_columns, room_schedule, key_figures, accommodation_groups, exam_rooms
FROM exam_datasets WHERE id = $1`
	var row datasetRow
	if err := r.db.GetContext(ctx, &row, datasetQuery, id); err != nil {
		return nil, err
	}

	ds := &models.ExamDataset{
		ID: row.ID,
		Header: models.DatasetHeader{
			Title:               row.Title,
			Date:                row.Date,
			Subtitle:            row.Subtitle,
			ReprographyDeadline: row.ReprographyDeadline,
		},
		DefaultStudentCount: row.DefaultStudentCount,
		ConvocationTitle:    row.ConvocationTitle,
	}
	documents := []struct {
		column string
		raw    types.JSONText
		dest   interface{}
	}{
		{"mission_types", row.MissionTypes, &ds.MissionTypes},
		{"room_columns", row.RoomColumns, &ds.RoomColumns},
		{"room_schedule", row.RoomSchedule, &ds.RoomSchedule},
		{"key_figures", row.KeyFigures, &ds.KeyFigures},
		{"accommodation_groups", row.AccommodationGroups, &ds.AccommodationGroups},
		{"exam_rooms", row.ExamRooms, &ds.ExamRooms},
	}
	for _, doc := range documents {
		if len(doc.raw) == 0 {
			continue
		}
		if err := doc.raw.Unmarshal(doc.dest); err != nil {
			return nil, fmt.Errorf("decode %s of dataset %s: %w", doc.column, id, err)
		}
	}

	const missionQuery = `SELECT teacher, datetime, room, mission, duration, type
FROM exam_missions WHERE dataset_id = $1 ORDER BY position`
	if err := r.db.SelectContext(ctx, &ds.Missions, missionQuery, id); err != nil {
		return nil, fmt.Errorf("list missions of dataset %s: %w", id, err)
	}

	const directoryQuery = `SELECT civility, last_name, first_name
FROM exam_teacher_directory WHERE dataset_id = $1 ORDER BY position`
	var directory []models.TeacherDirectorySource
	if err := r.db.SelectContext(ctx, &directory, directoryQuery, id); err != nil {
		return nil, fmt.Errorf("list directory of dataset %s: %w", id, err)
	}
	ds.TeacherDirectory = dataset.CreateTeacherDirectory(directory)

	const studentQuery = `SELECT last_name, first_name, class_name, sessions
FROM exam_students WHERE dataset_id = $1 ORDER BY position`
	var students []studentRow
	if err := r.db.SelectContext(ctx, &students, studentQuery, id); err != nil {
		return nil, fmt.Errorf("list students of dataset %s: %w", id, err)
	}
	ds.Students = make([]models.Student, 0, len(students))
	for _, s := range students {
		student := models.Student{LastName: s.LastName, FirstName: s.FirstName, ClassName: s.ClassName}
		if len(s.Sessions) > 0 {
			if err := json.Unmarshal(s.Sessions, &student.Sessions); err != nil {
				return nil, fmt.Errorf("decode sessions of student %s %s: %w", s.LastName, s.FirstName, err)
			}
		}
		ds.Students = append(ds.Students, student)
	}
	return ds, nil
}
