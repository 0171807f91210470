package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
)

func TestTeacherConvocationKnownTeacher(t *testing.T) {
	svc := NewConvocationService("Lycée Test")

	doc, err := svc.TeacherConvocation(fixtureDataset(), "  CAPEL É. ")
	require.NoError(t, err)

	assert.Equal(t, "Convocation aux surveillances", doc.Title)
	assert.Equal(t, "Baccalauréat blanc – Lycée Test", doc.Subtitle)
	text := doc.Text()
	assert.Contains(t, text, "Madame Émilie CAPEL,")
	assert.Contains(t, text, "Vous êtes conviée à assurer les surveillances suivantes dans le cadre du baccalauréat blanc. "+
		"Vous trouverez ci-dessous les informations détaillées pour chaque mission.")
	assert.Contains(t, text, "Mission 1 – Philosophie")
	assert.Contains(t, text, "Mission 2 – Renfort")
	assert.Contains(t, text, "Salle : Salle 10")
	assert.Contains(t, text, "Durée estimée : 2 h 30 min")
	assert.Contains(t, text, "2 missions – Charge totale estimée : 6 h 30 min.")
}

func TestTeacherConvocationFallsBackWithoutDirectoryEntry(t *testing.T) {
	svc := NewConvocationService("")

	doc, err := svc.TeacherConvocation(fixtureDataset(), "MARTIN L.")
	require.NoError(t, err)

	assert.Equal(t, "Baccalauréat blanc", doc.Subtitle)
	text := doc.Text()
	assert.Contains(t, text, "Madame, Monsieur MARTIN L.,")
	assert.Contains(t, text[3], "Vous êtes convié(e) à assurer")
	assert.Contains(t, text, "Salle : Salle à confirmer")
	assert.Contains(t, text, "Mission 1 – Spécialité")
	assert.Contains(t, text, "1 mission – Charge totale estimée : 1 h.")
}

func TestTeacherConvocationRejectsUnknownAndUnassigned(t *testing.T) {
	svc := NewConvocationService("")
	for _, teacher := range []string{"NOBODY X.", "", "À assigner"} {
		_, err := svc.TeacherConvocation(fixtureDataset(), teacher)
		require.Error(t, err, teacher)
		assert.True(t, appErrors.Is(err, appErrors.ErrNothingToExport))
		assert.Equal(t, MsgNoMission, appErrors.FromError(err).Message)
	}
}

func TestAllTeacherConvocationsSkipsUnassigned(t *testing.T) {
	docs, err := NewConvocationService("").AllTeacherConvocations(fixtureDataset())
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Contains(t, docs[0].Text(), "Madame Émilie CAPEL,")
	assert.Contains(t, docs[1].Text(), "Monsieur Paul DURAND,")
	assert.Contains(t, docs[1].Text()[3], "Vous êtes convié à")
	assert.Contains(t, docs[2].Text(), "Madame, Monsieur MARTIN L.,")

	ds := fixtureDataset()
	ds.Missions = ds.Missions[3:4]
	_, err = NewConvocationService("").AllTeacherConvocations(ds)
	assert.True(t, appErrors.Is(err, appErrors.ErrNothingToExport))
	assert.Equal(t, MsgNoInvigilator, appErrors.FromError(err).Message)
}

func TestAttendanceListRowsSortedByDisplayName(t *testing.T) {
	data, err := NewConvocationService("").AttendanceList(fixtureDataset())
	require.NoError(t, err)

	assert.Equal(t, []string{"Surveillant", "Missions convoquées", "Signature"}, data.Headers)
	require.Len(t, data.Rows, 3)
	assert.Equal(t, "Émilie CAPEL", data.Rows[0]["Surveillant"])
	assert.Equal(t, "MARTIN L.", data.Rows[1]["Surveillant"])
	assert.Equal(t, "Paul DURAND", data.Rows[2]["Surveillant"])
	assert.Equal(t, "jeudi 11/12 à 08h00 • Philosophie – B101\njeudi 11/12 à 14h00 • Renfort tiers-temps – Salle 10",
		data.Rows[0]["Missions convoquées"])
	assert.Equal(t, "vendredi 12/12 à 08h00 • Spécialité", data.Rows[1]["Missions convoquées"])
	assert.Equal(t, "(Signature)", data.Rows[2]["Signature"])
	assert.Equal(t, "Baccalauréat blanc – À faire signer lors de la remise des convocations aux surveillants.", data.Subtitle)
	assert.NotEmpty(t, data.Footer)
}

func TestTeacherScheduleTable(t *testing.T) {
	svc := NewConvocationService("")

	all, err := svc.TeacherScheduleTable(fixtureDataset(), "")
	require.NoError(t, err)
	assert.Len(t, all.Rows, 5)
	assert.Equal(t, "CAPEL É.", all.Rows[0]["Surveillant"])
	assert.Equal(t, "4 h", all.Rows[0]["Durée"])

	one, err := svc.TeacherScheduleTable(fixtureDataset(), "DURAND P.")
	require.NoError(t, err)
	require.Len(t, one.Rows, 2)
	assert.Equal(t, "Renfort", one.Rows[0]["Type"])

	blank, err := svc.TeacherScheduleTable(fixtureDataset(), "  ")
	require.NoError(t, err)
	assert.Len(t, blank.Rows, 5)

	_, err = svc.TeacherScheduleTable(fixtureDataset(), "NOBODY X.")
	assert.True(t, appErrors.Is(err, appErrors.ErrNothingToExport))
}

func TestStudentConvocations(t *testing.T) {
	svc := NewConvocationService("Lycée Test")

	docs, err := svc.StudentConvocations(fixtureDataset(), " terminale a ")
	require.NoError(t, err)
	require.Len(t, docs, 2)

	first := docs[0]
	assert.Equal(t, "Convocation aux examens blancs", first.Title)
	assert.Equal(t, "Terminale A", first.Badge)
	text := first.Text()
	assert.Contains(t, text, "Nous avons le plaisir de convoquer Awa NDOUR (Terminale A) pour les examens blancs qui se tiendront selon le calendrier suivant :")
	assert.Contains(t, text, "jeudi 11 décembre de 08h00 à 12h00 en salle B102")
	assert.Contains(t, text, "- Une pièce d'identité valide.")
	assert.Equal(t, "Le proviseur", text[len(text)-1])
	assert.Contains(t, docs[1].Text(), "Calculatrice interdite")

	_, err = svc.StudentConvocations(fixtureDataset(), "Seconde Z")
	assert.True(t, appErrors.Is(err, appErrors.ErrNothingToExport))
	assert.Equal(t, MsgNoStudentForClass, appErrors.FromError(err).Message)
}

func TestAllStudentsGroupedByClass(t *testing.T) {
	svc := NewConvocationService("")

	students, err := svc.AllStudents(fixtureDataset())
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, "BÂ", students[0].LastName)
	assert.Equal(t, "NDOUR", students[1].LastName)

	docs := svc.StudentDocuments(fixtureDataset(), students[:1])
	assert.Contains(t, docs[0].Text(), "vendredi 12 décembre de 08h00 en salle S10")

	ds := fixtureDataset()
	ds.Students = nil
	_, err = svc.AllStudents(ds)
	assert.Equal(t, MsgNoStudent, appErrors.FromError(err).Message)
}

func TestStudentSessionsTable(t *testing.T) {
	svc := NewConvocationService("")
	ds := fixtureDataset()
	students, err := svc.ClassStudents(ds, "Terminale A")
	require.NoError(t, err)

	data := svc.StudentSessionsTable(ds, students)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "Awa NDOUR", data.Rows[0]["Élève"])
	assert.Equal(t, "B102", data.Rows[0]["Salle"])
}
