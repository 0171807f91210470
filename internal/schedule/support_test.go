package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/exam-logistics-api/internal/models"
)

func supportMission(datetime, room, duration string) models.SurveillanceMission {
	return models.SurveillanceMission{
		Teacher:  "ANE A., BOSSU C.",
		Datetime: datetime,
		Room:     room,
		Mission:  "Remplacer les collègues",
		Duration: duration,
		Type:     models.MissionTypeSupport,
	}
}

func TestSupportRoomLabelsTable(t *testing.T) {
	assert.Equal(t, map[string]string{
		"9":  "S9 PRIO / EPS",
		"10": "S10",
		"12": "S12",
		"13": "S13",
		"14": "S14",
		"15": "S15",
		"16": "S16",
	}, SupportRoomLabels)
}

func TestParseMissionDatetime(t *testing.T) {
	dt, ok := ParseMissionDatetime("VENDREDI 12/12 à 9h05")
	require.True(t, ok)
	assert.Equal(t, "Vendredi 12/12", dt.DayLabel)
	assert.Equal(t, "09h05", dt.StartTime())

	_, ok = ParseMissionDatetime("12/12 08h00")
	assert.False(t, ok)
}

func TestParseMissionDatetimeAcceptsNonBreakingSpaces(t *testing.T) {
	dt, ok := ParseMissionDatetime("jeudi\u00a011/12\u202fà\u00a008h00")
	require.True(t, ok)
	assert.Equal(t, "Jeudi 11/12", dt.DayLabel)
	assert.Equal(t, "08h00", dt.StartTime())
}

func TestParseSupportMissionScenario(t *testing.T) {
	entry, ok := ParseSupportMission(supportMission("jeudi 11/12 à 08h00", "Salles 9, 11, 12", "2:00:00"))
	require.True(t, ok)
	assert.Equal(t, "Jeudi 11/12", entry.DayLabel)
	assert.Equal(t, "08h00 - 10h00", entry.TimeRange)
	assert.Equal(t, []string{"S9 PRIO / EPS", "S12"}, entry.Rooms)
	assert.Equal(t, "ANE A., BOSSU C.", entry.Teacher)
}

func TestParseSupportMissionTimeRange(t *testing.T) {
	entry, ok := ParseSupportMission(supportMission("lundi 1/6 à 14h00", "Salle 10", "1:30:00"))
	require.True(t, ok)
	assert.Equal(t, "14h00 - 15h30", entry.TimeRange)

	entry, ok = ParseSupportMission(supportMission("lundi 1/6 à 14h00", "Salle 10", "0:00:00"))
	require.True(t, ok)
	assert.Equal(t, "14h00", entry.TimeRange)

	entry, ok = ParseSupportMission(supportMission("lundi 1/6 à 14h00", "Salle 10", "0:01:30"))
	require.True(t, ok)
	assert.Equal(t, "14h00 - 14h02", entry.TimeRange)
}

func TestParseSupportMissionRejectsOtherTypes(t *testing.T) {
	m := supportMission("jeudi 11/12 à 08h00", "Salle 9", "2:00:00")
	m.Type = models.MissionTypePhilosophie
	_, ok := ParseSupportMission(m)
	assert.False(t, ok)
}

func TestBuildSupportSessionsByRoomScenario(t *testing.T) {
	sessions := BuildSupportSessionsByRoom([]models.SurveillanceMission{
		supportMission("jeudi 11/12 à 08h00", "Salles 9, 11, 12", "2:00:00"),
	})

	require.Len(t, sessions, 1)
	day := sessions["Jeudi 11/12"]
	require.Len(t, day, 2)
	for _, room := range []string{"S9 PRIO / EPS", "S12"} {
		require.Len(t, day[room], 1, room)
		assert.Equal(t, models.RoomSession{
			Time:    "08h00 - 10h00",
			Label:   "Support",
			Teacher: "ANE A., BOSSU C.",
			Detail:  "Remplacer les collègues",
			Type:    models.MissionTypeSupport,
		}, day[room][0])
	}
	assert.NotContains(t, day, "S11")
}

func TestBuildSupportSessionsByRoomDropsUnmappedRooms(t *testing.T) {
	missions := []models.SurveillanceMission{
		supportMission("jeudi 11/12 à 08h00", "Salle 11", "2:00:00"),
		supportMission("jeudi 11/12 08h00", "Salle 9", "2:00:00"),
	}

	assert.NotPanics(t, func() {
		assert.Empty(t, BuildSupportSessionsByRoom(missions))
	})
	assert.Equal(t, 2, CountSkippedSupportMissions(missions))
}

func TestCountSkippedSupportMissionsIgnoresOtherTypes(t *testing.T) {
	missions := sampleMissions()
	assert.Equal(t, 0, CountSkippedSupportMissions(missions))
}
