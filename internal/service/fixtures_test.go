package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"path"
	"sort"
	"sync"
	"time"

	"github.com/noah-isme/exam-logistics-api/internal/dataset"
	"github.com/noah-isme/exam-logistics-api/internal/models"
	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
)

func fixtureDataset() models.ExamDataset {
	return models.ExamDataset{
		ID:     "bac-test",
		Header: models.DatasetHeader{Title: "Baccalauréat blanc – Décembre 2025", Date: "Jeudi 11 et vendredi 12 décembre"},
		TeacherDirectory: dataset.CreateTeacherDirectory([]models.TeacherDirectorySource{
			{Civility: models.CivilityMadame, LastName: "Capel", FirstName: "Émilie"},
			{Civility: models.CivilityMonsieur, LastName: "Durand", FirstName: "Paul"},
		}),
		MissionTypes: []models.MissionType{models.MissionTypePhilosophie, models.MissionTypeSupport},
		Missions: []models.SurveillanceMission{
			{Teacher: "CAPEL É.", Datetime: "jeudi 11/12 à 08h00", Room: "B101", Mission: "Philosophie", Duration: "4:00:00", Type: models.MissionTypePhilosophie},
			{Teacher: "DURAND P., CAPEL É.", Datetime: "jeudi 11/12 à 14h00", Room: "Salle 10", Mission: "Renfort tiers-temps", Duration: "2:30:00", Type: models.MissionTypeSupport},
			{Teacher: "MARTIN L.", Datetime: "vendredi 12/12 à 08h00", Room: "-", Mission: "Spécialité", Duration: "1:00:00", Type: models.MissionTypeSpecialite},
			{Teacher: "", Datetime: "vendredi 12/12 à 13h00", Room: "B101", Mission: "Philosophie", Duration: "bad", Type: models.MissionTypePhilosophie},
			{Teacher: "DURAND P.", Datetime: "vendredi 12/12 à 10h00", Room: "salle 11", Mission: "Renfort", Duration: "1:00:00", Type: models.MissionTypeSupport},
		},
		RoomColumns: []string{"B101", "S10"},
		RoomSchedule: []models.RoomScheduleDay{
			{Day: "Jeudi 11/12", Rooms: []models.RoomSessions{
				{Room: "B101", Sessions: []models.RoomSession{{Time: "08h00 - 12h00", Label: "Philosophie"}}},
			}},
		},
		Students: []models.Student{
			{LastName: "RISPAL", FirstName: "Léa", ClassName: "Terminale A", Sessions: []models.StudentExamSession{
				{Date: "jeudi 11 décembre", StartTime: "08h00", EndTime: "12h00", Room: "B101", Subject: "Philosophie", Memo: "Calculatrice interdite"},
			}},
			{LastName: "NDOUR", FirstName: "Awa", ClassName: "Terminale A", Sessions: []models.StudentExamSession{
				{Date: "jeudi 11 décembre", StartTime: "08h00", EndTime: "12h00", Room: "B102", Subject: "Philosophie"},
			}},
			{LastName: "BÂ", FirstName: "Ali", ClassName: "Première B", Sessions: []models.StudentExamSession{
				{Date: "vendredi 12 décembre", StartTime: "08h00", Room: "S10", Subject: "Français"},
			}},
		},
	}
}

type fakeDatasets struct {
	mu    sync.Mutex
	data  map[string]models.ExamDataset
	calls int
	err   error
}

func newFakeDatasets(datasets ...models.ExamDataset) *fakeDatasets {
	f := &fakeDatasets{data: make(map[string]models.ExamDataset)}
	for _, ds := range datasets {
		f.data[ds.ID] = ds
	}
	return f
}

func (f *fakeDatasets) List(context.Context) ([]models.DatasetSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return dataset.Summaries(f.data), nil
}

func (f *fakeDatasets) Get(_ context.Context, id string) (*models.ExamDataset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	ds, ok := f.data[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &ds, nil
}

type memoryCacheRepo struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{items: make(map[string][]byte)}
}

func (r *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, ok := r.items[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (r *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = raw
	return nil
}

func (r *memoryCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.items {
		if ok, _ := path.Match(pattern, key); ok {
			delete(r.items, key)
		}
	}
	return nil
}

func (r *memoryCacheRepo) keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.items))
	for key := range r.items {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
