package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/exam-logistics-api/internal/models"
)

var gridColumns = []string{"S9 PRIO / EPS", "S10", "S12"}

func gridFixture() []models.RoomScheduleDay {
	return []models.RoomScheduleDay{{
		Day: "Jeudi 11/12",
		Rooms: []models.RoomSessions{
			{Room: "S9 PRIO / EPS", Sessions: []models.RoomSession{
				{Label: "Après-midi", Detail: "Spécialité"},
				{Time: "08h00 - 12h00", Detail: "Philosophie"},
			}},
			{Room: "S10", Sessions: []models.RoomSession{}},
		},
	}}
}

func TestMergeRoomGrid(t *testing.T) {
	missions := []models.SurveillanceMission{
		supportMission("jeudi 11/12 à 10h00", "Salles 9 et 10", "1:00:00"),
		supportMission("vendredi 12/12 à 08h00", "Salle 12", "2:00:00"),
		supportMission("samedi 13/12 à 08h00", "Salle 11", "2:00:00"),
	}

	merged := MergeRoomGrid(gridFixture(), gridColumns, missions)

	require.Len(t, merged, 2)
	assert.Equal(t, "Jeudi 11/12", merged[0].Day)
	assert.Equal(t, "Vendredi 12/12", merged[1].Day)

	require.Len(t, merged[0].Rooms, len(gridColumns))
	s9 := merged[0].SessionsFor("S9 PRIO / EPS")
	require.Len(t, s9, 3)
	assert.Equal(t, "Philosophie", s9[0].Detail)
	assert.Equal(t, "10h00 - 11h00", s9[1].Time)
	assert.Equal(t, "Spécialité", s9[2].Detail)

	s10 := merged[0].SessionsFor("S10")
	require.Len(t, s10, 1)
	assert.Equal(t, SupportLabel, s10[0].Label)

	assert.Empty(t, merged[0].SessionsFor("S12"))
	require.Len(t, merged[1].SessionsFor("S12"), 1)
}

func TestMergeRoomGridDoesNotMutateGrid(t *testing.T) {
	grid := gridFixture()
	MergeRoomGrid(grid, gridColumns, nil)
	assert.Equal(t, "Spécialité", grid[0].Rooms[0].Sessions[0].Detail)
}

func TestPerRoomSchedule(t *testing.T) {
	missions := []models.SurveillanceMission{
		supportMission("vendredi 12/12 à 08h00", "Salle 12", "2:00:00"),
	}
	timelines := PerRoomSchedule(MergeRoomGrid(gridFixture(), gridColumns, missions), gridColumns)

	require.Len(t, timelines, 3)
	assert.Equal(t, "S9 PRIO / EPS", timelines[0].Room)
	require.Len(t, timelines[0].Days, 1)
	assert.Equal(t, "Jeudi 11/12", timelines[0].Days[0].Day)
	assert.Empty(t, timelines[1].Days)
	require.Len(t, timelines[2].Days, 1)
	assert.Equal(t, "Vendredi 12/12", timelines[2].Days[0].Day)
}
