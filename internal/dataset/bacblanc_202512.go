package dataset

import "github.com/noah-isme/exam-logistics-api/internal/models"

// BacBlanc202512ID identifies the December 2025 mock baccalauréat.
const BacBlanc202512ID = "bac-blanc-2025-12"

func bacBlanc202512() models.ExamDataset {
	directory := CreateTeacherDirectory(bacBlanc202512Teachers)
	return models.ExamDataset{
		ID: BacBlanc202512ID,
		Header: models.DatasetHeader{
			Title:    "Baccalauréat blanc – Décembre 2025",
			Date:     "Du mercredi 10 au vendredi 12 décembre 2025",
			Subtitle: "Spécialités N°1 et N°2, philosophie et EAF",
		},
		KeyFigures: []models.KeyFigure{
			{Value: "6", Label: "Salles mobilisées"},
			{Value: "4", Label: "Épreuves", Extra: "Spécialités N°1 & N°2, Philosophie, EAF"},
			{Value: "3,7", Unit: "h", Label: "Durée moyenne", Extra: "31 missions planifiées"},
			{Value: "114", Unit: "h", Label: "Surveillance cumulée", Extra: "Inclut les missions de renfort"},
		},
		AccommodationGroups: []models.AccommodationGroup{
			{
				Title:       "Terminale",
				Description: "Liste des élèves avec aménagements d'examen :",
				Students:    []string{"RISPAL Charlie", "NDOUR Fatou", "SOBLOG Oscar", "FALL CLAMENS Omar", "ZARB Frédy"},
			},
			{
				Title:       "Première",
				Description: "Liste des élèves avec aménagements d'examen :",
				Students:    []string{"JENOUDET Thiméo", "SARR Sokhna Faty", "KERDUDO Zeina"},
			},
		},
		TeacherDirectory: directory,
		MissionTypes: []models.MissionType{
			models.MissionTypePhilosophie,
			models.MissionTypeSpecialite,
			models.MissionTypeEAF,
			models.MissionTypeSupport,
		},
		Missions:     append([]models.SurveillanceMission(nil), bacBlanc202512Missions...),
		RoomColumns:  append([]string(nil), bacBlanc202512Columns...),
		RoomSchedule: cloneGrid(bacBlanc202512Grid),
		ExamRooms: []models.ExamRoom{
			{Name: "S9 PRIO / EPS", ExamCapacity: 24},
			{Name: "S10", ExamCapacity: 18},
			{Name: "S11", ExamCapacity: 18},
			{Name: "S12", ExamCapacity: 18},
			{Name: "S13", ExamCapacity: 18},
			{Name: "S14", ExamCapacity: 18},
			{Name: "S15", ExamCapacity: 18},
		},
		DefaultStudentCount: 112,
		Students:            bacBlanc202512Students(),
		ConvocationTitle:    "Convocation aux examens blancs – Décembre 2025",
		TypeLabels:          map[models.MissionType]string{models.MissionTypeSupport: "Support"},
	}
}

func terminaleStudent(last, first, class, philosophyRoom, specialty1, specialty1Room, specialty2, specialty2Room string) models.Student {
	return models.Student{
		LastName:  last,
		FirstName: first,
		ClassName: class,
		Sessions: []models.StudentExamSession{
			{
				Date:      "Mercredi 10 décembre 2025",
				StartTime: "08h00",
				EndTime:   "12h00",
				Room:      philosophyRoom,
				Subject:   "Philosophie",
				Memo:      "Arrivez 30 minutes avant le début de l'épreuve et présentez votre pièce d'identité.",
			},
			{
				Date:      "Jeudi 11 décembre 2025",
				StartTime: "08h00",
				EndTime:   "12h00",
				Room:      specialty1Room,
				Subject:   specialty1 + " (Spécialité N°1)",
				Memo:      "Vérifiez que vous disposez du matériel spécifique demandé pour cette spécialité.",
			},
			{
				Date:      "Vendredi 12 décembre 2025",
				StartTime: "08h00",
				EndTime:   "12h00",
				Room:      specialty2Room,
				Subject:   specialty2 + " (Spécialité N°2)",
				Memo:      "Respectez les consignes d'installation communiquées par les surveillants de salle.",
			},
		},
	}
}

func premiereStudent(last, first, class, room string) models.Student {
	return models.Student{
		LastName:  last,
		FirstName: first,
		ClassName: class,
		Sessions: []models.StudentExamSession{{
			Date:      "Jeudi 11 décembre 2025",
			StartTime: "14h05",
			EndTime:   "18h05",
			Room:      room,
			Subject:   "Épreuve anticipée de français (EAF)",
			Memo:      "Présentez-vous 30 minutes avant le début de l'épreuve avec votre pièce d'identité.",
		}},
	}
}

func bacBlanc202512Students() []models.Student {
	return []models.Student{
		terminaleStudent("RISPAL", "Charlie", "Terminale A", "S9 PRIO / EPS", "SES", "S9 PRIO / EPS", "HGGSP", "S9 PRIO / EPS"),
		terminaleStudent("NDOUR", "Fatou", "Terminale A", "S10", "Mathématiques", "S10", "Physique-chimie", "S10"),
		terminaleStudent("SOBLOG", "Oscar", "Terminale B", "S9 PRIO / EPS", "SVT", "S9 PRIO / EPS", "Physique-chimie", "S9 PRIO / EPS"),
		terminaleStudent("FALL CLAMENS", "Omar", "Terminale B", "S12", "HLP", "S12", "SES", "S12"),
		terminaleStudent("ZARB", "Frédy", "Terminale C", "S13", "Mathématiques", "S13", "NSI", "S13"),
		terminaleStudent("DIALLO", "Awa", "Terminale C", "S14", "LLCER anglais", "S14", "HGGSP", "S14"),
		premiereStudent("JENOUDET", "Thiméo", "Première A", "S9 PRIO / EPS"),
		premiereStudent("SARR", "Sokhna Faty", "Première A", "S10"),
		premiereStudent("KERDUDO", "Zeina", "Première B", "S12"),
		premiereStudent("BÂ", "Moussa", "Première B", "S13"),
	}
}

var bacBlanc202512Teachers = []models.TeacherDirectorySource{
	{Civility: models.CivilityMonsieur, LastName: "ANE", FirstName: "Alassane"},
	{Civility: models.CivilityMonsieur, LastName: "BARITOU", FirstName: "Olivier"},
	{Civility: models.CivilityMadame, LastName: "BLONDEAU", FirstName: "Chloé"},
	{Civility: models.CivilityMadame, LastName: "BOSSU", FirstName: "Claire"},
	{Civility: models.CivilityMadame, LastName: "BROUILLAT", FirstName: "Maud"},
	{Civility: models.CivilityMadame, LastName: "CAPEL", FirstName: "Eve"},
	{Civility: models.CivilityMonsieur, LastName: "CAPEL", FirstName: "Bastien"},
	{Civility: models.CivilityMadame, LastName: "CHABERT", FirstName: "Karine"},
	{Civility: models.CivilityMonsieur, LastName: "CORNALI", FirstName: "Karim"},
	{Civility: models.CivilityMadame, LastName: "D'AQUINO", FirstName: "Roselyne"},
	{Civility: models.CivilityMadame, LastName: "DAVID", FirstName: "Sylvana"},
	{Civility: models.CivilityMonsieur, LastName: "DAVID", FirstName: "Vincent"},
	{Civility: models.CivilityMadame, LastName: "DESMARETS", FirstName: "Sahar"},
	{Civility: models.CivilityMadame, LastName: "DIADIO", FirstName: "Ira"},
	{Civility: models.CivilityMonsieur, LastName: "DIANDY", FirstName: "Antoine"},
	{Civility: models.CivilityMadame, LastName: "DIOUF", FirstName: "Elisabeth"},
	{Civility: models.CivilityMadame, LastName: "DRAMÉ", FirstName: "Claire"},
	{Civility: models.CivilityMadame, LastName: "DUFAY", FirstName: "Maguette"},
	{Civility: models.CivilityMadame, LastName: "FALL", FirstName: "Nafissatou"},
	{Civility: models.CivilityMonsieur, LastName: "FALL", FirstName: "Baba"},
	{Civility: models.CivilityMonsieur, LastName: "FAYE", FirstName: "François"},
	{Civility: models.CivilityMadame, LastName: "FAYE", FirstName: "Penda"},
	{Civility: models.CivilityMonsieur, LastName: "FRAYON", FirstName: "Antoine"},
	{Civility: models.CivilityMadame, LastName: "GIBUS", FirstName: "Amandine"},
	{Civility: models.CivilityMonsieur, LastName: "GOMIS", FirstName: "Alain"},
	{Civility: models.CivilityMadame, LastName: "JAÏT", FirstName: "Layla"},
	{Civility: models.CivilityMadame, LastName: "JENOUDET", FirstName: "Sandra"},
	{Civility: models.CivilityMadame, LastName: "KREMER", FirstName: "Laurence"},
	{Civility: models.CivilityMadame, LastName: "KUNTZ", FirstName: "Emilie"},
	{Civility: models.CivilityMadame, LastName: "LE RUE", FirstName: "Fabienne"},
	{Civility: models.CivilityMadame, LastName: "MAGINOT-FRANCE", FirstName: "Nathalie"},
	{Civility: models.CivilityMadame, LastName: "MAHE", FirstName: "Justine"},
	{Civility: models.CivilityMadame, LastName: "MARCOS", FirstName: "Rachel"},
	{Civility: models.CivilityMadame, LastName: "MARTIN", FirstName: "Cécile"},
	{Civility: models.CivilityMadame, LastName: "MBOUP", FirstName: "Nathalie"},
	{Civility: models.CivilityMadame, LastName: "MICHON GUILLAUME", FirstName: "Mathilde"},
	{Civility: models.CivilityMadame, LastName: "MOURAIN DIOP", FirstName: "Fanelly"},
	{Civility: models.CivilityMonsieur, LastName: "NDAW", FirstName: "Adam"},
	{Civility: models.CivilityMonsieur, LastName: "NDIAYE", FirstName: "Alassane"},
	{Civility: models.CivilityMonsieur, LastName: "NDOYE", FirstName: "Abdoulaye"},
	{Civility: models.CivilityMadame, LastName: "PAILLIER", FirstName: "Roxane"},
	{Civility: models.CivilityMadame, LastName: "PATANÉ", FirstName: "Romane"},
	{Civility: models.CivilityMadame, LastName: "PEREZ", FirstName: "Fanny"},
	{Civility: models.CivilityMonsieur, LastName: "PIAGGIO", FirstName: "Fernando"},
	{Civility: models.CivilityMadame, LastName: "PORTER", FirstName: "Elizabeth"},
	{Civility: models.CivilityMonsieur, LastName: "SERVATE", FirstName: "Samuel"},
	{Civility: models.CivilityMadame, LastName: "SERVILE", FirstName: "Sylvie"},
	{Civility: models.CivilityMadame, LastName: "SOLY", FirstName: "Laura"},
	{Civility: models.CivilityMonsieur, LastName: "THOMAS", FirstName: "Yvon"},
	{Civility: models.CivilityMadame, LastName: "TRIQUENAUX", FirstName: "Alexandra"},
}

var bacBlanc202512Missions = []models.SurveillanceMission{
	{Teacher: "ANE A.", Datetime: "jeudi 11/12 à 08h00", Room: "S13", Mission: "Bac blanc : Enseignement de spécialité N°1", Duration: "4:00:00", Type: models.MissionTypeSpecialite},
	{Teacher: "ANE A.", Datetime: "vendredi 12/12 à 08h00", Room: "S9 PRIO / EPS", Mission: "Bac blanc : Enseignement de spécialité N°2", Duration: "5:30:00", Type: models.MissionTypeSpecialite},
	{Teacher: "BARITOU O.", Datetime: "jeudi 11/12 à 08h00", Room: "S10", Mission: "Bac blanc : Enseignement de spécialité N°1", Duration: "4:00:00", Type: models.MissionTypeSpecialite},
	{Teacher: "BARITOU O.", Datetime: "jeudi 11/12 à 14h05", Room: "S12", Mission: "Bac blanc EAF", Duration: "4:00:00", Type: models.MissionTypeEAF},
	{Teacher: "BOSSU C.", Datetime: "mercredi 10/12 à 08h00", Room: "S9 PRIO / EPS", Mission: "Bac blanc de philosophie", Duration: "5:30:00", Type: models.MissionTypePhilosophie},
	{Teacher: "BOSSU C., PIAGGIO F.", Datetime: "jeudi 11/12 à 15h30", Room: "Salles 9, 11, 12, 13, 14, 15", Mission: "Remplacer les surveillants du baccalauréat blanc pour qu'ils prennent une pause", Duration: "2:30:00", Type: models.MissionTypeSupport},
	{Teacher: "CAPEL E.", Datetime: "vendredi 12/12 à 08h00", Room: "S11", Mission: "Bac blanc : Enseignement de spécialité N°2", Duration: "4:00:00", Type: models.MissionTypeSpecialite},
	{Teacher: "CHABERT K., DRAMÉ C., JAÏT L.", Datetime: "jeudi 11/12 à 11h10", Room: "Salles 9, 11, 12, 13, 14, 15", Mission: "Remplacer les surveillants du baccalauréat blanc pour qu'ils prennent une pause", Duration: "1:00:00", Type: models.MissionTypeSupport},
	{Teacher: "DAVID V.", Datetime: "jeudi 11/12 à 08h00", Room: "S12", Mission: "Bac blanc : Enseignement de spécialité N°1", Duration: "4:00:00", Type: models.MissionTypeSpecialite},
	{Teacher: "DRAMÉ C.", Datetime: "mercredi 10/12 à 08h00", Room: "S15", Mission: "Bac blanc de philosophie", Duration: "4:00:00", Type: models.MissionTypePhilosophie},
	{Teacher: "FALL B.", Datetime: "jeudi 11/12 à 08h00", Room: "S9 PRIO / EPS", Mission: "Bac blanc : Enseignement de spécialité N°1", Duration: "5:00:00", Type: models.MissionTypeSpecialite},
	{Teacher: "FALL B.", Datetime: "mercredi 10/12 à 08h00", Room: "S10", Mission: "Bac blanc de philosophie", Duration: "4:00:00", Type: models.MissionTypePhilosophie},
	{Teacher: "FALL B.", Datetime: "vendredi 12/12 à 10h00", Room: "Salles 9, 11, 12, 13, 14, 15", Mission: "Remplacer les surveillants du baccalauréat blanc pour qu'ils prennent une pause", Duration: "2:00:00", Type: models.MissionTypeSupport},
	{Teacher: "FRAYON A., GIBUS A.", Datetime: "mercredi 10/12 à 10h00", Room: "Salles 9, 11, 12, 13, 14, 15", Mission: "Remplacer les surveillants du baccalauréat blanc pour qu'ils prennent une pause", Duration: "2:00:00", Type: models.MissionTypeSupport},
	{Teacher: "GOMIS A.", Datetime: "jeudi 11/12 à 14h05", Room: "S15", Mission: "Bac blanc EAF", Duration: "4:00:00", Type: models.MissionTypeEAF},
	{Teacher: "GOMIS A.", Datetime: "mercredi 10/12 à 08h00", Room: "S12", Mission: "Bac blanc de philosophie", Duration: "4:00:00", Type: models.MissionTypePhilosophie},
	{Teacher: "GOMIS A.", Datetime: "vendredi 12/12 à 08h00", Room: "S13", Mission: "Bac blanc : Enseignement de spécialité N°2", Duration: "4:00:00", Type: models.MissionTypeSpecialite},
	{Teacher: "JAÏT L.", Datetime: "jeudi 11/12 à 08h00", Room: "Salles 9, 11, 12, 13, 14, 15", Mission: "Remplacer les surveillants du baccalauréat blanc pour qu'ils prennent une pause", Duration: "2:00:00", Type: models.MissionTypeSupport},
	{Teacher: "JAÏT L.", Datetime: "jeudi 11/12 à 13h05", Room: "S9 PRIO / EPS", Mission: "Bac blanc EAF", Duration: "5:00:00", Type: models.MissionTypeEAF},
	{Teacher: "MBOUP N.", Datetime: "jeudi 11/12 à 10h00", Room: "Salles 9, 11, 12, 13, 14, 15", Mission: "Remplacer les surveillants du baccalauréat blanc pour qu'ils prennent une pause", Duration: "1:30:00", Type: models.MissionTypeSupport},
	{Teacher: "MBOUP N.", Datetime: "jeudi 11/12 à 14h05", Room: "S10", Mission: "Bac blanc EAF", Duration: "4:00:00", Type: models.MissionTypeEAF},
	{Teacher: "MBOUP N.", Datetime: "vendredi 12/12 à 08h00", Room: "S14", Mission: "Bac blanc : Enseignement de spécialité N°2", Duration: "4:00:00", Type: models.MissionTypeSpecialite},
	{Teacher: "MICHON GUILLAUME M.", Datetime: "jeudi 11/12 à 08h00", Room: "S14", Mission: "Bac blanc : Enseignement de spécialité N°1", Duration: "4:00:00", Type: models.MissionTypeSpecialite},
	{Teacher: "MICHON GUILLAUME M.", Datetime: "mercredi 10/12 à 08h00", Room: "S14", Mission: "Bac blanc de philosophie", Duration: "4:00:00", Type: models.MissionTypePhilosophie},
	{Teacher: "MICHON GUILLAUME M.", Datetime: "vendredi 12/12 à 09h00", Room: "Salles 9, 11, 12, 13, 14, 15", Mission: "Remplacer les surveillants du baccalauréat blanc pour qu'ils prennent une pause", Duration: "2:00:00", Type: models.MissionTypeSupport},
	{Teacher: "MOURAIN DIOP F.", Datetime: "jeudi 11/12 à 08h00", Room: "S11", Mission: "Bac blanc : Enseignement de spécialité N°1", Duration: "4:00:00", Type: models.MissionTypeSpecialite},
	{Teacher: "MOURAIN DIOP F.", Datetime: "jeudi 11/12 à 14h05", Room: "S13", Mission: "Bac blanc EAF", Duration: "4:00:00", Type: models.MissionTypeEAF},
	{Teacher: "MOURAIN DIOP F.", Datetime: "mercredi 10/12 à 08h00", Room: "S13", Mission: "Bac blanc de philosophie", Duration: "4:00:00", Type: models.MissionTypePhilosophie},
	{Teacher: "NDIAYE A.", Datetime: "vendredi 12/12 à 08h00", Room: "S10", Mission: "Bac blanc : Enseignement de spécialité N°2", Duration: "4:00:00", Type: models.MissionTypeSpecialite},
	{Teacher: "NDOYE A.", Datetime: "jeudi 11/12 à 14h05", Room: "S14", Mission: "Bac blanc EAF", Duration: "4:00:00", Type: models.MissionTypeEAF},
	{Teacher: "NDOYE A.", Datetime: "vendredi 12/12 à 08h00", Room: "S12", Mission: "Bac blanc : Enseignement de spécialité N°2", Duration: "4:00:00", Type: models.MissionTypeSpecialite},
}

var bacBlanc202512Columns = []string{"S9 PRIO / EPS", "S10", "S11", "S12", "S13", "S14", "S15"}

var bacBlanc202512Grid = []models.RoomScheduleDay{
	{
		Day: "Mercredi 10/12",
		Rooms: []models.RoomSessions{
			{Room: "S9 PRIO / EPS", Sessions: []models.RoomSession{
				{Time: "08h00 - 13h30", Teacher: "BOSSU C.", Detail: "Philosophie", Type: models.MissionTypePhilosophie},
			}},
			{Room: "S10", Sessions: []models.RoomSession{
				{Time: "08h00 - 12h00", Teacher: "FALL B.", Detail: "Philosophie", Type: models.MissionTypePhilosophie},
			}},
			{Room: "S11", Sessions: []models.RoomSession{}},
			{Room: "S12", Sessions: []models.RoomSession{
				{Time: "08h00 - 12h00", Teacher: "GOMIS A.", Detail: "Philosophie", Type: models.MissionTypePhilosophie},
			}},
			{Room: "S13", Sessions: []models.RoomSession{
				{Time: "08h00 - 12h00", Teacher: "MOURAIN DIOP F.", Detail: "Philosophie", Type: models.MissionTypePhilosophie},
			}},
			{Room: "S14", Sessions: []models.RoomSession{
				{Time: "08h00 - 12h00", Teacher: "MICHON G. M.", Detail: "Philosophie", Type: models.MissionTypePhilosophie},
			}},
			{Room: "S15", Sessions: []models.RoomSession{
				{Time: "08h00 - 12h00", Teacher: "DRAMÉ C.", Detail: "Philosophie", Type: models.MissionTypePhilosophie},
			}},
		},
	},
	{
		Day: "Jeudi 11/12",
		Rooms: []models.RoomSessions{
			{Room: "S9 PRIO / EPS", Sessions: []models.RoomSession{
				{Label: "Matin", Time: "08h00 - 13h00", Teacher: "FALL B.", Detail: "Spécialité N°1", Type: models.MissionTypeSpecialite, Highlight: true},
				{Label: "Après-midi", Time: "13h05 - 18h05", Teacher: "JAÏT L.", Detail: "EAF", Type: models.MissionTypeEAF},
			}},
			{Room: "S10", Sessions: []models.RoomSession{
				{Label: "Matin", Time: "08h00 - 12h00", Teacher: "BARITOU O.", Detail: "Spécialité N°1", Type: models.MissionTypeSpecialite, Highlight: true},
				{Label: "Après-midi", Time: "14h05 - 18h05", Teacher: "MBOUP N.", Detail: "EAF", Type: models.MissionTypeEAF},
			}},
			{Room: "S11", Sessions: []models.RoomSession{
				{Label: "Matin", Time: "08h00 - 12h00", Teacher: "MOURAIN DIOP F.", Detail: "Spécialité N°1", Type: models.MissionTypeSpecialite, Highlight: true},
			}},
			{Room: "S12", Sessions: []models.RoomSession{
				{Label: "Matin", Time: "08h00 - 12h00", Teacher: "DAVID V.", Detail: "Spécialité N°1", Type: models.MissionTypeSpecialite, Highlight: true},
				{Label: "Après-midi", Time: "14h05 - 18h05", Teacher: "BARITOU O.", Detail: "EAF", Type: models.MissionTypeEAF},
			}},
			{Room: "S13", Sessions: []models.RoomSession{
				{Label: "Matin", Time: "08h00 - 12h00", Teacher: "ANE A.", Detail: "Spécialité N°1", Type: models.MissionTypeSpecialite, Highlight: true},
				{Label: "Après-midi", Time: "14h05 - 18h05", Teacher: "MOURAIN DIOP F.", Detail: "EAF", Type: models.MissionTypeEAF},
			}},
			{Room: "S14", Sessions: []models.RoomSession{
				{Label: "Matin", Time: "08h00 - 12h00", Teacher: "MICHON G. M.", Detail: "Spécialité N°1", Type: models.MissionTypeSpecialite, Highlight: true},
				{Label: "Après-midi", Time: "14h05 - 18h05", Teacher: "NDOYE A.", Detail: "EAF", Type: models.MissionTypeEAF},
			}},
			{Room: "S15", Sessions: []models.RoomSession{
				{Label: "Après-midi", Time: "14h05 - 18h05", Teacher: "GOMIS A.", Detail: "EAF", Type: models.MissionTypeEAF},
			}},
		},
	},
	{
		Day: "Vendredi 12/12",
		Rooms: []models.RoomSessions{
			{Room: "S9 PRIO / EPS", Sessions: []models.RoomSession{
				{Time: "08h00 - 13h30", Teacher: "ANE A.", Detail: "Spécialité N°2", Type: models.MissionTypeSpecialite},
			}},
			{Room: "S10", Sessions: []models.RoomSession{
				{Time: "08h00 - 12h00", Teacher: "NDIAYE A.", Detail: "Spécialité N°2", Type: models.MissionTypeSpecialite},
			}},
			{Room: "S11", Sessions: []models.RoomSession{
				{Time: "08h00 - 12h00", Teacher: "CAPEL E.", Detail: "Spécialité N°2", Type: models.MissionTypeSpecialite},
			}},
			{Room: "S12", Sessions: []models.RoomSession{
				{Time: "08h00 - 12h00", Teacher: "NDOYE A.", Detail: "Spécialité N°2", Type: models.MissionTypeSpecialite},
			}},
			{Room: "S13", Sessions: []models.RoomSession{
				{Time: "08h00 - 12h00", Teacher: "GOMIS A.", Detail: "Spécialité N°2", Type: models.MissionTypeSpecialite},
			}},
			{Room: "S14", Sessions: []models.RoomSession{
				{Time: "08h00 - 12h00", Teacher: "MBOUP N.", Detail: "Spécialité N°2", Type: models.MissionTypeSpecialite},
			}},
			{Room: "S15", Sessions: []models.RoomSession{}},
		},
	},
}
