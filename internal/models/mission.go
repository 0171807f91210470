package models

// MissionType categorises a surveillance duty.
type MissionType string

const (
	MissionTypePhilosophie   MissionType = "philosophie"
	MissionTypeSpecialite    MissionType = "specialite"
	MissionTypeEAF           MissionType = "eaf"
	MissionTypeSupport       MissionType = "support"
	MissionTypeMathematiques MissionType = "mathematiques"
	MissionTypeDNB           MissionType = "dnb"
	MissionTypeDefault       MissionType = "default"
)

// Label is the French display name of the mission type.
func (t MissionType) Label() string {
	switch t {
	case MissionTypeMathematiques:
		return "Mathématiques"
	case MissionTypeSupport:
		return "Renfort"
	case MissionTypePhilosophie:
		return "Philosophie"
	case MissionTypeSpecialite:
		return "Spécialité"
	case MissionTypeEAF:
		return "EAF"
	case MissionTypeDNB:
		return "DNB"
	default:
		return "Épreuve"
	}
}

// SurveillanceMission is one supervision duty as authored in a dataset.
// Teacher may hold several comma separated names or be blank.
type SurveillanceMission struct {
	Teacher  string      `db:"teacher" json:"teacher"`
	Datetime string      `db:"datetime" json:"datetime" validate:"required,mission_datetime"`
	Room     string      `db:"room" json:"room" validate:"required"`
	Mission  string      `db:"mission" json:"mission" validate:"required"`
	Duration string      `db:"duration" json:"duration" validate:"required,mission_duration"`
	Type     MissionType `db:"type" json:"type" validate:"required"`
}

// RoomSession is one occupancy block of a room on a given day.
type RoomSession struct {
	Time      string      `db:"time" json:"time,omitempty"`
	Label     string      `db:"label" json:"label,omitempty"`
	Teacher   string      `db:"teacher" json:"teacher,omitempty"`
	Detail    string      `db:"detail" json:"detail,omitempty"`
	Type      MissionType `db:"type" json:"type,omitempty"`
	Highlight bool        `db:"highlight" json:"highlight,omitempty"`
}

// RoomSessions holds the sessions of one room column, in source order.
type RoomSessions struct {
	Room     string        `json:"room"`
	Sessions []RoomSession `json:"sessions"`
}

// RoomScheduleDay is the room grid of one exam day. Rooms keep their authored order.
type RoomScheduleDay struct {
	Day   string         `json:"day"`
	Rooms []RoomSessions `json:"rooms"`
}

// SessionsFor returns the sessions registered for room, nil when the room is absent.
func (d RoomScheduleDay) SessionsFor(room string) []RoomSession {
	for _, entry := range d.Rooms {
		if entry.Room == room {
			return entry.Sessions
		}
	}
	return nil
}
