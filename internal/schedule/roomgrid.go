package schedule

import (
	"sort"

	"github.com/noah-isme/exam-logistics-api/internal/models"
)

// MergeRoomGrid overlays support sessions on the authored room grid. Grid days
// keep their order and are followed by days only support missions mention.
// Each cell is sorted by SessionSortValue.
func MergeRoomGrid(days []models.RoomScheduleDay, columns []string, missions []models.SurveillanceMission) []models.RoomScheduleDay {
	support := BuildSupportSessionsByRoom(missions)

	order := make([]string, 0, len(days))
	known := make(map[string]int, len(days))
	for i, day := range days {
		if _, ok := known[day.Day]; ok {
			continue
		}
		known[day.Day] = i
		order = append(order, day.Day)
	}
	for _, mission := range missions {
		entry, ok := ParseSupportMission(mission)
		if !ok || len(entry.Rooms) == 0 {
			continue
		}
		if _, ok := known[entry.DayLabel]; ok {
			continue
		}
		known[entry.DayLabel] = -1
		order = append(order, entry.DayLabel)
	}

	merged := make([]models.RoomScheduleDay, 0, len(order))
	for _, label := range order {
		var grid models.RoomScheduleDay
		if i := known[label]; i >= 0 {
			grid = days[i]
		}
		day := models.RoomScheduleDay{Day: label, Rooms: make([]models.RoomSessions, 0, len(columns))}
		for _, column := range columns {
			base := grid.SessionsFor(column)
			extra := support[label][column]
			sessions := make([]models.RoomSession, 0, len(base)+len(extra))
			sessions = append(sessions, base...)
			sessions = append(sessions, extra...)
			sort.SliceStable(sessions, func(i, j int) bool {
				return SessionSortValue(sessions[i]) < SessionSortValue(sessions[j])
			})
			day.Rooms = append(day.Rooms, models.RoomSessions{Room: column, Sessions: sessions})
		}
		merged = append(merged, day)
	}
	return merged
}

// PerRoomSchedule pivots a merged grid into one timeline per room column.
// Days where the room is empty are omitted.
func PerRoomSchedule(merged []models.RoomScheduleDay, columns []string) []models.RoomTimeline {
	out := make([]models.RoomTimeline, 0, len(columns))
	for _, column := range columns {
		timeline := models.RoomTimeline{Room: column, Days: make([]models.RoomTimelineDay, 0)}
		for _, day := range merged {
			sessions := day.SessionsFor(column)
			if len(sessions) == 0 {
				continue
			}
			timeline.Days = append(timeline.Days, models.RoomTimelineDay{Day: day.Day, Sessions: sessions})
		}
		out = append(out, timeline)
	}
	return out
}
