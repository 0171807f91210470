package models

// TeacherScheduleGroup gathers the missions attributed to a single teacher.
type TeacherScheduleGroup struct {
	Teacher  string                `json:"teacher"`
	Missions []SurveillanceMission `json:"missions"`
}

// DayScheduleEntry is one room occupancy inside a day slot.
type DayScheduleEntry struct {
	Room      string      `json:"room"`
	Teacher   string      `json:"teacher,omitempty"`
	Detail    string      `json:"detail,omitempty"`
	Type      MissionType `json:"type,omitempty"`
	Highlight bool        `json:"highlight,omitempty"`
	Time      string      `json:"time,omitempty"`
	Label     string      `json:"label,omitempty"`
}

// DaySlot aggregates every entry sharing the same time key within a day.
type DaySlot struct {
	Key     string             `json:"key"`
	Time    string             `json:"time,omitempty"`
	Label   string             `json:"label,omitempty"`
	Entries []DayScheduleEntry `json:"entries"`
}

// DaySchedule is a day decomposed into chronologically ordered slots.
type DaySchedule struct {
	Day   string    `json:"day"`
	Slots []DaySlot `json:"slots"`
}

// RoomTimelineDay lists the sessions of a room for one day.
type RoomTimelineDay struct {
	Day      string        `json:"day"`
	Sessions []RoomSession `json:"sessions"`
}

// RoomTimeline is the per-room pivot of the merged room grid.
type RoomTimeline struct {
	Room string            `json:"room"`
	Days []RoomTimelineDay `json:"days"`
}
