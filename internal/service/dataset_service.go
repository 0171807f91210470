package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/exam-logistics-api/internal/dataset"
	"github.com/noah-isme/exam-logistics-api/internal/dto"
	"github.com/noah-isme/exam-logistics-api/internal/models"
	"github.com/noah-isme/exam-logistics-api/internal/schedule"
	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
)

// DatasetRepository loads exam datasets from their backing store.
type DatasetRepository interface {
	List(ctx context.Context) ([]models.DatasetSummary, error)
	Get(ctx context.Context, id string) (*models.ExamDataset, error)
}

// DatasetService exposes exam datasets and reports authoring issues.
type DatasetService struct {
	repo      DatasetRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewDatasetService constructs a DatasetService.
func NewDatasetService(repo DatasetRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *DatasetService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	validate.RegisterTagNameFunc(jsonFieldName)
	_ = validate.RegisterValidation("mission_duration", func(fl validator.FieldLevel) bool {
		return schedule.ValidDuration(fl.Field().String())
	})
	_ = validate.RegisterValidation("mission_datetime", func(fl validator.FieldLevel) bool {
		_, ok := schedule.ParseMissionDatetime(fl.Field().String())
		return ok
	})
	return &DatasetService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

// List returns dataset summaries.
func (s *DatasetService) List(ctx context.Context) ([]models.DatasetSummary, error) {
	summaries, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list datasets")
	}
	if summaries == nil {
		summaries = []models.DatasetSummary{}
	}
	return summaries, nil
}

// Get loads a dataset by id.
func (s *DatasetService) Get(ctx context.Context, id string) (*models.ExamDataset, error) {
	if strings.TrimSpace(id) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "dataset id is required")
	}
	ds, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("dataset %s not found", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load dataset")
	}
	return ds, nil
}

// Overview returns the setup view of a dataset with derived counts.
func (s *DatasetService) Overview(ctx context.Context, id string) (*dto.DatasetOverviewResponse, error) {
	ds, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	issues := s.Validate(ds)
	s.publishHealth(ds, issues)

	groups := schedule.BuildTeacherSchedule(ds.Missions)
	counts := dto.DatasetCounts{
		Missions:       len(ds.Missions),
		SkippedSupport: schedule.CountSkippedSupportMissions(ds.Missions),
		Days:           len(schedule.MergeRoomGrid(ds.RoomSchedule, ds.RoomColumns, ds.Missions)),
		Students:       len(ds.Students),
		Classes:        len(dataset.ClassNames(*ds)),
		Issues:         len(issues),
	}
	for _, m := range ds.Missions {
		if m.Type == models.MissionTypeSupport {
			counts.SupportMissions++
		}
		counts.TotalDurationSeconds += schedule.ParseDuration(m.Duration)
	}
	for _, g := range groups {
		if g.Teacher == schedule.UnassignedTeacher {
			counts.UnassignedMissions = len(g.Missions)
			continue
		}
		counts.Teachers++
	}

	types := make([]dto.MissionTypeView, 0, len(ds.MissionTypes))
	for _, t := range ds.MissionTypes {
		types = append(types, dto.MissionTypeView{Type: t, Label: ds.TypeLabel(t)})
	}

	return &dto.DatasetOverviewResponse{
		ID:                  ds.ID,
		Header:              ds.Header,
		KeyFigures:          nonNil(ds.KeyFigures),
		AccommodationGroups: nonNil(ds.AccommodationGroups),
		MissionTypes:        types,
		RoomColumns:         nonNil(ds.RoomColumns),
		ExamRooms:           nonNil(ds.ExamRooms),
		DefaultStudentCount: ds.DefaultStudentCount,
		TotalDurationLabel:  schedule.FormatDuration(counts.TotalDurationSeconds),
		Counts:              counts,
	}, nil
}

// Issues validates a dataset and returns every finding.
func (s *DatasetService) Issues(ctx context.Context, id string) ([]models.DatasetIssue, error) {
	ds, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	issues := s.Validate(ds)
	s.publishHealth(ds, issues)
	if len(issues) > 0 {
		s.logger.Warn("dataset has authoring issues", zap.String("dataset_id", ds.ID), zap.Int("issues", len(issues)))
	}
	return issues, nil
}

func (s *DatasetService) publishHealth(ds *models.ExamDataset, issues []models.DatasetIssue) {
	s.metrics.SetDatasetHealth(ds.ID, schedule.CountSkippedSupportMissions(ds.Missions), len(issues))
}

// Validate reports rows the views will drop or misrender. It never fails: datasets
// with issues still load and render.
func (s *DatasetService) Validate(ds *models.ExamDataset) []models.DatasetIssue {
	issues := make([]models.DatasetIssue, 0)
	known := make(map[models.MissionType]struct{}, len(ds.MissionTypes))
	for _, t := range ds.MissionTypes {
		known[t] = struct{}{}
	}
	directory := dataset.DirectoryByShortName(ds.TeacherDirectory)

	for i, m := range ds.Missions {
		issues = append(issues, s.structIssues(models.IssueScopeMission, i, m)...)
		if _, ok := known[m.Type]; m.Type != "" && len(known) > 0 && !ok {
			issues = append(issues, models.DatasetIssue{
				Scope: models.IssueScopeMission, Index: i, Field: "type", Value: string(m.Type),
				Message: "mission type is not declared by the dataset",
			})
		}
		if m.Type == models.MissionTypeSupport {
			if _, ok := schedule.ParseMissionDatetime(m.Datetime); ok && len(schedule.SupportRooms(m.Room)) == 0 {
				issues = append(issues, models.DatasetIssue{
					Scope: models.IssueScopeMission, Index: i, Field: "room", Value: m.Room,
					Message: "support mission names no room of the grid and will not appear in room views",
				})
			}
		}
		if len(directory) == 0 {
			continue
		}
		for _, teacher := range schedule.ExtractTeacherAssignments(m.Teacher) {
			if teacher == schedule.UnassignedTeacher {
				continue
			}
			if _, ok := directory[teacher]; !ok {
				issues = append(issues, models.DatasetIssue{
					Scope: models.IssueScopeMission, Index: i, Field: "teacher", Value: teacher,
					Message: "teacher is missing from the directory, convocations fall back to a neutral salutation",
				})
			}
		}
	}

	for i, student := range ds.Students {
		issues = append(issues, s.structIssues(models.IssueScopeStudent, i, student)...)
	}
	return issues
}

func (s *DatasetService) structIssues(scope string, index int, value interface{}) []models.DatasetIssue {
	err := s.validator.Struct(value)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []models.DatasetIssue{{Scope: scope, Index: index, Message: err.Error()}}
	}
	out := make([]models.DatasetIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Namespace()
		if dot := strings.Index(field, "."); dot >= 0 {
			field = field[dot+1:]
		}
		out = append(out, models.DatasetIssue{
			Scope:   scope,
			Index:   index,
			Field:   field,
			Value:   fmt.Sprint(fe.Value()),
			Message: issueMessage(fe.Tag()),
		})
	}
	return out
}

func issueMessage(tag string) string {
	switch tag {
	case "required":
		return "value is required"
	case "mission_duration":
		return "duration must follow H:MM:SS, it counts as 0"
	case "mission_datetime":
		return "datetime must look like \"jeudi 11/12 à 08h00\", the mission is left out of room and day views"
	default:
		return "failed " + tag + " validation"
	}
}

// Classes lists the classes of a dataset with their head counts.
func (s *DatasetService) Classes(ctx context.Context, id string) ([]dto.ClassSummary, error) {
	ds, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	names := dataset.ClassNames(*ds)
	out := make([]dto.ClassSummary, 0, len(names))
	for _, name := range names {
		out = append(out, dto.ClassSummary{Name: name, StudentCount: len(dataset.StudentsForClass(*ds, name))})
	}
	return out, nil
}

// Students lists the students of a class.
func (s *DatasetService) Students(ctx context.Context, id, className string) ([]models.Student, error) {
	ds, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	students := dataset.StudentsForClass(*ds, className)
	if len(students) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("class %s not found", className))
	}
	return students, nil
}

// StudentsByRoom groups the students by the rooms their sessions take place in.
// Rooms and students follow French order; a student sitting several exams in one
// room is listed once with every subject.
func (s *DatasetService) StudentsByRoom(ctx context.Context, id string) ([]dto.RoomStudents, error) {
	ds, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	type seat struct {
		student  models.Student
		subjects []string
	}
	seats := make(map[string][]*seat)
	rooms := make([]string, 0)
	for _, student := range ds.Students {
		seen := make(map[string]*seat)
		for _, session := range student.Sessions {
			room := dataset.NormalizeWhitespace(session.Room)
			if room == "" {
				continue
			}
			entry, ok := seen[room]
			if !ok {
				entry = &seat{student: student}
				seen[room] = entry
				if _, known := seats[room]; !known {
					rooms = append(rooms, room)
				}
				seats[room] = append(seats[room], entry)
			}
			entry.subjects = append(entry.subjects, dataset.NormalizeWhitespace(session.Subject))
		}
	}
	schedule.SortFrench(rooms)

	out := make([]dto.RoomStudents, 0, len(rooms))
	for _, room := range rooms {
		list := seats[room]
		sort.SliceStable(list, func(i, j int) bool {
			return dataset.CompareStudents(list[i].student, list[j].student) < 0
		})
		entries := make([]dto.RoomStudent, 0, len(list))
		for _, st := range list {
			entries = append(entries, dto.RoomStudent{
				Name:      dataset.StudentName(st.student),
				ClassName: dataset.NormalizeWhitespace(st.student.ClassName),
				Subjects:  st.subjects,
			})
		}
		out = append(out, dto.RoomStudents{Room: room, StudentCount: len(entries), Students: entries})
	}
	return out, nil
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
