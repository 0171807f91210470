package dataset

import "github.com/noah-isme/exam-logistics-api/internal/models"

// Math20260523ID identifies the May 2026 first-year maths mock exam.
const Math20260523ID = "math-2026-05-23"

func math20260523() models.ExamDataset {
	mathSession := func(teacher string) []models.RoomSession {
		return []models.RoomSession{{
			Time:      "11h10 - 13h10",
			Teacher:   teacher,
			Detail:    "Mathématiques 1ère",
			Type:      models.MissionTypeMathematiques,
			Highlight: true,
		}}
	}
	mission := func(teacher, room string) models.SurveillanceMission {
		return models.SurveillanceMission{
			Teacher:  teacher,
			Datetime: "samedi 23/05 à 11h10",
			Room:     room,
			Mission:  "Bac blanc mathématiques 1ère",
			Duration: "2:00:00",
			Type:     models.MissionTypeMathematiques,
		}
	}

	return models.ExamDataset{
		ID: Math20260523ID,
		Header: models.DatasetHeader{
			Title: "Bac blanc de mathématiques 1ère",
			Date:  "Samedi 23 mai 2026 • 11h10",
		},
		KeyFigures: []models.KeyFigure{
			{Value: "4", Label: "Salles mobilisées"},
			{Value: "52", Label: "Candidats inscrits"},
			{Value: "11h10", Label: "Heure de début", Extra: "Accueil des élèves dès 10h40"},
			{Value: "2", Unit: "h", Label: "Durée de l'épreuve", Extra: "Épreuve écrite de mathématiques"},
		},
		AccommodationGroups: []models.AccommodationGroup{{
			Title:       "1ère – Aménagements prévus",
			Description: "Élèves bénéficiant d'un tiers temps ou de dispositions particulières :",
			Students:    []string{"À compléter si nécessaire"},
			Note:        "Merci de signaler tout besoin complémentaire à la vie scolaire avant le 19 mai.",
		}},
		TeacherDirectory: CreateTeacherDirectory([]models.TeacherDirectorySource{
			{Civility: models.CivilityMadame, LastName: "CAPEL", FirstName: "Émilie"},
			{Civility: models.CivilityMonsieur, LastName: "FRAYON", FirstName: "Arnaud"},
			{Civility: models.CivilityMonsieur, LastName: "NDOYE", FirstName: "Abdoulaye"},
			{Civility: models.CivilityMonsieur, LastName: "SERVATE", FirstName: "Samuel"},
		}),
		MissionTypes: []models.MissionType{models.MissionTypeMathematiques, models.MissionTypeSupport},
		Missions: []models.SurveillanceMission{
			mission("CAPEL E.", "S15"),
			mission("FRAYON A.", "S13"),
			mission("NDOYE A.", "S14"),
			mission("SERVATE S.", "S10"),
		},
		RoomColumns: []string{"S10", "S13", "S14", "S15"},
		RoomSchedule: []models.RoomScheduleDay{{
			Day: "Samedi 23/05",
			Rooms: []models.RoomSessions{
				{Room: "S10", Sessions: mathSession("SERVATE S.")},
				{Room: "S13", Sessions: mathSession("FRAYON A.")},
				{Room: "S14", Sessions: mathSession("NDOYE A.")},
				{Room: "S15", Sessions: mathSession("CAPEL E.")},
			},
		}},
		ExamRooms: []models.ExamRoom{
			{Name: "S10", ExamCapacity: 13},
			{Name: "S13", ExamCapacity: 12},
			{Name: "S14", ExamCapacity: 12},
			{Name: "S15", ExamCapacity: 15},
		},
		DefaultStudentCount: 52,
	}
}
