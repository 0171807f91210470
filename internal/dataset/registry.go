package dataset

import (
	"sort"

	"github.com/noah-isme/exam-logistics-api/internal/models"
)

var builders = map[string]func() models.ExamDataset{
	BacBlanc202512ID: bacBlanc202512,
	Math20260523ID:   math20260523,
}

// Builtin returns every dataset compiled into the binary, keyed by id.
// Each call builds fresh values so callers may not corrupt shared state.
func Builtin() map[string]models.ExamDataset {
	out := make(map[string]models.ExamDataset, len(builders))
	for id, build := range builders {
		out[id] = build()
	}
	return out
}

// Lookup builds a fresh copy of one builtin dataset.
func Lookup(id string) (models.ExamDataset, bool) {
	build, ok := builders[id]
	if !ok {
		return models.ExamDataset{}, false
	}
	return build(), true
}

// Summaries lists builtin datasets ordered by id.
func Summaries(datasets map[string]models.ExamDataset) []models.DatasetSummary {
	out := make([]models.DatasetSummary, 0, len(datasets))
	for _, ds := range datasets {
		out = append(out, models.DatasetSummary{
			ID:       ds.ID,
			Title:    ds.Header.Title,
			Date:     ds.Header.Date,
			Subtitle: ds.Header.Subtitle,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func cloneGrid(days []models.RoomScheduleDay) []models.RoomScheduleDay {
	out := make([]models.RoomScheduleDay, len(days))
	for i, day := range days {
		rooms := make([]models.RoomSessions, len(day.Rooms))
		for j, room := range day.Rooms {
			rooms[j] = models.RoomSessions{
				Room:     room.Room,
				Sessions: append([]models.RoomSession{}, room.Sessions...),
			}
		}
		out[i] = models.RoomScheduleDay{Day: day.Day, Rooms: rooms}
	}
	return out
}
