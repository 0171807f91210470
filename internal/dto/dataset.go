package dto

import "github.com/noah-isme/exam-logistics-api/internal/models"

// DatasetCounts summarises the size of a dataset.
type DatasetCounts struct {
	Missions             int `json:"missions"`
	SupportMissions      int `json:"supportMissions"`
	SkippedSupport       int `json:"skippedSupportMissions"`
	Teachers             int `json:"teachers"`
	UnassignedMissions   int `json:"unassignedMissions"`
	Days                 int `json:"days"`
	Students             int `json:"students"`
	Classes              int `json:"classes"`
	TotalDurationSeconds int `json:"totalDurationSeconds"`
	Issues               int `json:"issues"`
}

// DatasetOverviewResponse is the setup view of a dataset.
type DatasetOverviewResponse struct {
	ID                  string                      `json:"id"`
	Header              models.DatasetHeader        `json:"header"`
	KeyFigures          []models.KeyFigure          `json:"keyFigures"`
	AccommodationGroups []models.AccommodationGroup `json:"accommodationGroups"`
	MissionTypes        []MissionTypeView           `json:"missionTypes"`
	RoomColumns         []string                    `json:"roomColumns"`
	ExamRooms           []models.ExamRoom           `json:"examRooms"`
	DefaultStudentCount int                         `json:"defaultStudentCount"`
	TotalDurationLabel  string                      `json:"totalDurationLabel"`
	Counts              DatasetCounts               `json:"counts"`
}

// MissionTypeView pairs a mission type with its display label.
type MissionTypeView struct {
	Type  models.MissionType `json:"type"`
	Label string             `json:"label"`
}

// RoomStudents lists the students convoked to one room.
type RoomStudents struct {
	Room         string        `json:"room"`
	StudentCount int           `json:"studentCount"`
	Students     []RoomStudent `json:"students"`
}

// RoomStudent is one student seated in a room, with the subjects sat there.
type RoomStudent struct {
	Name      string   `json:"name"`
	ClassName string   `json:"className"`
	Subjects  []string `json:"subjects"`
}

// ClassSummary lists a class and its head count.
type ClassSummary struct {
	Name         string `json:"name"`
	StudentCount int    `json:"studentCount"`
}
