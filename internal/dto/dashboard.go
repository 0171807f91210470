package dto

import (
	"github.com/noah-isme/exam-logistics-api/internal/models"
	"github.com/noah-isme/exam-logistics-api/internal/schedule"
)

// MissionView is a surveillance mission enriched for display.
type MissionView struct {
	models.SurveillanceMission
	TypeLabel       string              `json:"typeLabel"`
	DurationSeconds int                 `json:"durationSeconds"`
	DurationLabel   string              `json:"durationLabel"`
	Today           bool                `json:"today"`
	Highlight       *schedule.Highlight `json:"highlight,omitempty"`
}

// TeacherGroupView is one teacher's convocation summary.
type TeacherGroupView struct {
	Teacher            string        `json:"teacher"`
	DisplayName        string        `json:"displayName"`
	Unassigned         bool          `json:"unassigned"`
	Missions           []MissionView `json:"missions"`
	TotalSeconds       int           `json:"totalSeconds"`
	TotalDurationLabel string        `json:"totalDurationLabel"`
}

// TeacherScheduleResponse lists teacher groups in display order.
type TeacherScheduleResponse struct {
	DatasetID string             `json:"datasetId"`
	Groups    []TeacherGroupView `json:"groups"`
}

// SessionView is one room block with its colour tier.
type SessionView struct {
	models.RoomSession
	Period  schedule.Period     `json:"period"`
	Palette *schedule.Highlight `json:"palette,omitempty"`
}

// RoomCellView is one room column of one day.
type RoomCellView struct {
	Room     string              `json:"room"`
	Layout   schedule.CellLayout `json:"layout"`
	Sessions []SessionView       `json:"sessions"`
}

// RoomDayView is one day of the merged room grid.
type RoomDayView struct {
	Day   string         `json:"day"`
	Today bool           `json:"today"`
	Cells []RoomCellView `json:"cells"`
}

// RoomGridResponse is the merged room grid (authored sessions plus support duty).
type RoomGridResponse struct {
	DatasetID string        `json:"datasetId"`
	Columns   []string      `json:"columns"`
	Days      []RoomDayView `json:"days"`
}

// RoomTimelineResponse pivots the merged grid per room.
type RoomTimelineResponse struct {
	DatasetID string                `json:"datasetId"`
	Rooms     []models.RoomTimeline `json:"rooms"`
}

// SlotView is a time slot of the day view.
type SlotView struct {
	Key     string                    `json:"key"`
	Time    string                    `json:"time,omitempty"`
	Label   string                    `json:"label,omitempty"`
	Palette *schedule.Highlight       `json:"palette,omitempty"`
	Entries []models.DayScheduleEntry `json:"entries"`
}

// DayView is one day of the day-by-day view.
type DayView struct {
	Day   string     `json:"day"`
	Today bool       `json:"today"`
	Slots []SlotView `json:"slots"`
}

// DayScheduleResponse lists days in display order.
type DayScheduleResponse struct {
	DatasetID string    `json:"datasetId"`
	Days      []DayView `json:"days"`
}
