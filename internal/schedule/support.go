package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/noah-isme/exam-logistics-api/internal/models"
)

// SupportLabel is both the room and the block label of support entries.
const SupportLabel = "Support"

var (
	missionDatetimePattern = regexp.MustCompile(`(?i)([A-Za-zÀ-ÿ]+)[\s\p{Zs}]+(\d{1,2}/\d{1,2})[\s\p{Zs}]+à[\s\p{Zs}]+(\d{1,2})h(\d{2})`)
	roomNumberPattern      = regexp.MustCompile(`\d{1,2}`)
)

// SupportRoomLabels maps room numbers quoted in support missions to grid columns.
// Room 11 has no column and is intentionally absent.
var SupportRoomLabels = map[string]string{
	"9":  "S9 PRIO / EPS",
	"10": "S10",
	"12": "S12",
	"13": "S13",
	"14": "S14",
	"15": "S15",
	"16": "S16",
}

// MissionDatetime is the structured form of "jeudi 11/12 à 08h00".
type MissionDatetime struct {
	DayLabel string
	Date     string
	Hour     int
	Minute   int
}

// StartTime renders the start as "08h00".
func (d MissionDatetime) StartTime() string {
	return fmt.Sprintf("%02dh%02d", d.Hour, d.Minute)
}

// SupportEntry is a parsed support mission.
type SupportEntry struct {
	DayLabel  string
	TimeRange string
	Teacher   string
	Detail    string
	Type      models.MissionType
	Rooms     []string
}

// ParseMissionDatetime extracts the day label and start time of a mission datetime.
func ParseMissionDatetime(value string) (MissionDatetime, bool) {
	match := missionDatetimePattern.FindStringSubmatch(value)
	if match == nil {
		return MissionDatetime{}, false
	}
	hour, err := strconv.Atoi(match[3])
	if err != nil {
		return MissionDatetime{}, false
	}
	minute, err := strconv.Atoi(match[4])
	if err != nil {
		return MissionDatetime{}, false
	}
	return MissionDatetime{
		DayLabel: capitalizeWord(match[1]) + " " + match[2],
		Date:     match[2],
		Hour:     hour,
		Minute:   minute,
	}, true
}

func capitalizeWord(value string) string {
	if strings.TrimSpace(value) == "" {
		return value
	}
	first, size := utf8.DecodeRuneInString(value)
	return string(unicode.ToUpper(first)) + strings.ToLower(value[size:])
}

// SupportRooms resolves every room number quoted in value. Unknown numbers are dropped.
func SupportRooms(value string) []string {
	rooms := make([]string, 0)
	for _, token := range roomNumberPattern.FindAllString(value, -1) {
		if room, ok := SupportRoomLabels[token]; ok {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// ParseSupportMission parses a support mission. It returns false for other
// mission types and for datetimes that do not follow the authored layout.
func ParseSupportMission(m models.SurveillanceMission) (SupportEntry, bool) {
	if m.Type != models.MissionTypeSupport || strings.TrimSpace(m.Datetime) == "" {
		return SupportEntry{}, false
	}
	dt, ok := ParseMissionDatetime(m.Datetime)
	if !ok {
		return SupportEntry{}, false
	}

	timeRange := dt.StartTime()
	if seconds := ParseDuration(m.Duration); seconds > 0 {
		end := dt.Hour*60 + dt.Minute + (seconds+30)/60
		timeRange = fmt.Sprintf("%s - %02dh%02d", timeRange, end/60, end%60)
	}

	return SupportEntry{
		DayLabel:  dt.DayLabel,
		TimeRange: timeRange,
		Teacher:   NormalizeTeacherName(m.Teacher),
		Detail:    m.Mission,
		Type:      m.Type,
		Rooms:     SupportRooms(m.Room),
	}, true
}

// Session converts the entry into a room grid session.
func (e SupportEntry) Session() models.RoomSession {
	return models.RoomSession{
		Time:    e.TimeRange,
		Label:   SupportLabel,
		Teacher: e.Teacher,
		Detail:  e.Detail,
		Type:    e.Type,
	}
}

// BuildSupportSessionsByRoom indexes support sessions by day label then room column.
func BuildSupportSessionsByRoom(missions []models.SurveillanceMission) map[string]map[string][]models.RoomSession {
	out := make(map[string]map[string][]models.RoomSession)
	for _, mission := range missions {
		entry, ok := ParseSupportMission(mission)
		if !ok || len(entry.Rooms) == 0 {
			continue
		}
		byRoom, ok := out[entry.DayLabel]
		if !ok {
			byRoom = make(map[string][]models.RoomSession)
			out[entry.DayLabel] = byRoom
		}
		for _, room := range entry.Rooms {
			byRoom[room] = append(byRoom[room], entry.Session())
		}
	}
	return out
}

// CountSkippedSupportMissions counts support missions that no room view will show.
func CountSkippedSupportMissions(missions []models.SurveillanceMission) int {
	skipped := 0
	for _, mission := range missions {
		if mission.Type != models.MissionTypeSupport {
			continue
		}
		entry, ok := ParseSupportMission(mission)
		if !ok || len(entry.Rooms) == 0 {
			skipped++
		}
	}
	return skipped
}
