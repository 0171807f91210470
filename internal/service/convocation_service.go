package service

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/noah-isme/exam-logistics-api/internal/dataset"
	"github.com/noah-isme/exam-logistics-api/internal/models"
	"github.com/noah-isme/exam-logistics-api/internal/schedule"
	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
	"github.com/noah-isme/exam-logistics-api/pkg/export"
)

// Messages raised when an export would be empty.
const (
	MsgNoMission         = "Aucune mission sélectionnée"
	MsgNoInvigilator     = "Aucun surveillant convoqué"
	MsgNoStudentForClass = "Aucun élève pour cette classe"
	MsgNoStudent         = "Aucun élève disponible"
)

const (
	teacherConvocationTitle = "Convocation aux surveillances"
	attendanceTitle         = "Liste d'émargement des surveillants convoqués"
	attendanceFooter        = "Cette liste facilite le suivi des convocations : chaque surveillant signe lors de la remise de son document."
	defaultStudentTitle     = "Convocation aux examens blancs"
)

// ConvocationService turns dataset views into printable documents.
type ConvocationService struct {
	schoolName string
}

// NewConvocationService constructs a ConvocationService.
func NewConvocationService(schoolName string) *ConvocationService {
	return &ConvocationService{schoolName: schoolName}
}

func nothingToExport(message string) error {
	return appErrors.Clone(appErrors.ErrNothingToExport, message)
}

// examName is the header title without its date suffix ("Baccalauréat blanc").
func examName(ds models.ExamDataset) string {
	name := ds.Header.Title
	if i := strings.Index(name, " – "); i > 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

func lowerFirst(value string) string {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return value
	}
	return string(unicode.ToLower(r)) + value[size:]
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func roomLabel(room string) string {
	room = strings.TrimSpace(room)
	if room == "" || room == "-" {
		return "Salle à confirmer"
	}
	return room
}

func durationLabel(duration string) string {
	if strings.TrimSpace(duration) == "" {
		return "Durée à préciser"
	}
	return schedule.FormatDuration(schedule.ParseDuration(duration))
}

func pluralMissions(n int) string {
	if n > 1 {
		return fmt.Sprintf("%d missions", n)
	}
	return fmt.Sprintf("%d mission", n)
}

// TeacherGroups returns the assigned teacher groups, without the unassigned one.
func TeacherGroups(ds models.ExamDataset) []models.TeacherScheduleGroup {
	groups := schedule.BuildTeacherSchedule(ds.Missions)
	out := make([]models.TeacherScheduleGroup, 0, len(groups))
	for _, g := range groups {
		if g.Teacher != schedule.UnassignedTeacher && len(g.Missions) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// TeacherConvocation builds the convocation letter of one teacher.
func (s *ConvocationService) TeacherConvocation(ds models.ExamDataset, teacher string) (export.Document, error) {
	group, ok := schedule.FindTeacherGroup(schedule.BuildTeacherSchedule(ds.Missions), teacher)
	if !ok || group.Teacher == schedule.UnassignedTeacher || len(group.Missions) == 0 {
		return export.Document{}, nothingToExport(MsgNoMission)
	}
	entry, known := dataset.DirectoryByShortName(ds.TeacherDirectory)[group.Teacher]
	return s.teacherDocument(ds, group, entry, known), nil
}

// AllTeacherConvocations builds one letter per assigned teacher, in display order.
func (s *ConvocationService) AllTeacherConvocations(ds models.ExamDataset) ([]export.Document, error) {
	groups := TeacherGroups(ds)
	if len(groups) == 0 {
		return nil, nothingToExport(MsgNoInvigilator)
	}
	directory := dataset.DirectoryByShortName(ds.TeacherDirectory)
	docs := make([]export.Document, 0, len(groups))
	for _, g := range groups {
		entry, known := directory[g.Teacher]
		docs = append(docs, s.teacherDocument(ds, g, entry, known))
	}
	return docs, nil
}

func (s *ConvocationService) teacherDocument(ds models.ExamDataset, group models.TeacherScheduleGroup, entry models.TeacherDirectoryEntry, known bool) export.Document {
	salutation := "Madame, Monsieur " + group.Teacher
	invitation := "Vous êtes convié(e)"
	if known {
		salutation = string(entry.Civility) + " " + entry.FullName()
		invitation = "Vous êtes convié"
		if entry.Gender == models.GenderFemale {
			invitation = "Vous êtes conviée"
		}
	}
	exam := examName(ds)

	blocks := []export.Block{
		{Lines: []string{
			salutation + ",",
			fmt.Sprintf("%s à assurer les surveillances suivantes dans le cadre du %s. "+
				"Vous trouverez ci-dessous les informations détaillées pour chaque mission.", invitation, lowerFirst(exam)),
		}},
		{Heading: "Missions"},
	}
	total := 0
	for i, m := range group.Missions {
		total += schedule.ParseDuration(m.Duration)
		blocks = append(blocks, export.Block{
			Heading: fmt.Sprintf("Mission %d", i+1),
			Tag:     ds.TypeLabel(m.Type),
			Boxed:   true,
			Lines: []string{
				"Date et horaire : " + orDefault(m.Datetime, "À préciser"),
				"Salle : " + roomLabel(m.Room),
				"Épreuve / fonction : " + orDefault(m.Mission, "À préciser"),
				"Durée estimée : " + durationLabel(m.Duration),
			},
		})
	}
	blocks = append(blocks,
		export.Block{
			Heading: "Récapitulatif",
			Boxed:   true,
			Lines: []string{fmt.Sprintf("%s – Charge totale estimée : %s.",
				pluralMissions(len(group.Missions)), schedule.FormatDuration(total))},
		},
		export.Block{Lines: []string{
			"Merci pour votre disponibilité. N'hésitez pas à contacter l'administration en cas de question relative à cette convocation.",
		}},
	)

	subtitle := exam
	if s.schoolName != "" {
		subtitle += " – " + s.schoolName
	}
	return export.Document{Title: teacherConvocationTitle, Subtitle: subtitle, Blocks: blocks}
}

// AttendanceList builds the sign-off sheet of every convoked invigilator.
func (s *ConvocationService) AttendanceList(ds models.ExamDataset) (export.Dataset, error) {
	groups := TeacherGroups(ds)
	if len(groups) == 0 {
		return export.Dataset{}, nothingToExport(MsgNoInvigilator)
	}
	directory := dataset.DirectoryByShortName(ds.TeacherDirectory)

	type row struct {
		name  string
		lines []string
	}
	rows := make([]row, 0, len(groups))
	for _, g := range groups {
		name := g.Teacher
		if entry, ok := directory[g.Teacher]; ok {
			name = entry.FullName()
		}
		lines := make([]string, 0, len(g.Missions))
		for _, m := range g.Missions {
			line := m.Datetime + " • " + m.Mission
			if room := strings.TrimSpace(m.Room); room != "" && room != "-" {
				line += " – " + room
			}
			lines = append(lines, line)
		}
		rows = append(rows, row{name: name, lines: lines})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return schedule.CompareFrench(rows[i].name, rows[j].name) < 0
	})

	data := export.Dataset{
		Headers:  []string{"Surveillant", "Missions convoquées", "Signature"},
		Widths:   []float64{1.2, 3, 1},
		Subtitle: examName(ds) + " – À faire signer lors de la remise des convocations aux surveillants.",
		Footer:   attendanceFooter,
		Rows:     make([]map[string]string, 0, len(rows)),
	}
	for _, r := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"Surveillant":         r.name,
			"Missions convoquées": strings.Join(r.lines, "\n"),
			"Signature":           "(Signature)",
		})
	}
	return data, nil
}

// AttendanceTitle is the document title of the attendance list.
func AttendanceTitle() string {
	return attendanceTitle
}

// TeacherScheduleTable lists missions per teacher. An empty teacher selects everyone assigned.
func (s *ConvocationService) TeacherScheduleTable(ds models.ExamDataset, teacher string) (export.Dataset, error) {
	groups := TeacherGroups(ds)
	if teacher = strings.TrimSpace(teacher); teacher != "" {
		group, ok := schedule.FindTeacherGroup(schedule.BuildTeacherSchedule(ds.Missions), teacher)
		groups = nil
		if ok {
			groups = []models.TeacherScheduleGroup{group}
		}
	}
	data := export.Dataset{
		Headers:  []string{"Surveillant", "Date et horaire", "Salle", "Épreuve / fonction", "Type", "Durée"},
		Widths:   []float64{1.2, 1.3, 1, 2.5, 0.9, 0.8},
		Subtitle: ds.Header.Title,
	}
	for _, g := range groups {
		for _, m := range g.Missions {
			data.Rows = append(data.Rows, map[string]string{
				"Surveillant":        g.Teacher,
				"Date et horaire":    m.Datetime,
				"Salle":              roomLabel(m.Room),
				"Épreuve / fonction": m.Mission,
				"Type":               ds.TypeLabel(m.Type),
				"Durée":              durationLabel(m.Duration),
			})
		}
	}
	if len(data.Rows) == 0 {
		return export.Dataset{}, nothingToExport(MsgNoMission)
	}
	return data, nil
}

// StudentConvocations builds one letter per student of className.
func (s *ConvocationService) StudentConvocations(ds models.ExamDataset, className string) ([]export.Document, error) {
	students, err := s.ClassStudents(ds, className)
	if err != nil {
		return nil, err
	}
	return s.StudentDocuments(ds, students), nil
}

// ClassStudents returns the sorted students of className.
func (s *ConvocationService) ClassStudents(ds models.ExamDataset, className string) ([]models.Student, error) {
	students := dataset.StudentsForClass(ds, className)
	if len(students) == 0 {
		return nil, nothingToExport(MsgNoStudentForClass)
	}
	return students, nil
}

// AllStudents returns every student grouped by class in French order.
func (s *ConvocationService) AllStudents(ds models.ExamDataset) ([]models.Student, error) {
	out := make([]models.Student, 0, len(ds.Students))
	for _, class := range dataset.ClassNames(ds) {
		out = append(out, dataset.StudentsForClass(ds, class)...)
	}
	if len(out) == 0 {
		return nil, nothingToExport(MsgNoStudent)
	}
	return out, nil
}

// StudentDocuments renders the convocation letters of students.
func (s *ConvocationService) StudentDocuments(ds models.ExamDataset, students []models.Student) []export.Document {
	title := orDefault(ds.ConvocationTitle, defaultStudentTitle)
	docs := make([]export.Document, 0, len(students))
	for _, student := range students {
		blocks := []export.Block{{Lines: []string{fmt.Sprintf(
			"Nous avons le plaisir de convoquer %s (%s) pour les examens blancs qui se tiendront selon le calendrier suivant :",
			dataset.StudentName(student), student.ClassName)}}}
		for _, session := range student.Sessions {
			lines := []string{session.Subject}
			if session.Memo != "" {
				lines = append(lines, session.Memo)
			}
			blocks = append(blocks, export.Block{Heading: sessionLine(session), Boxed: true, Lines: lines})
		}
		blocks = append(blocks,
			export.Block{
				Lines:   []string{"Pour cet examen, vous devrez vous munir des éléments suivants :"},
				Bullets: []string{"Cette convocation.", "Une pièce d'identité valide."},
			},
			export.Block{Lines: []string{
				"Nous comptons sur votre présence et vous souhaitons une excellente préparation.",
				"Cordialement,",
				"Le proviseur",
			}},
		)
		docs = append(docs, export.Document{
			Title:    title,
			Subtitle: s.schoolName,
			Badge:    student.ClassName,
			Blocks:   blocks,
		})
	}
	return docs
}

func sessionLine(session models.StudentExamSession) string {
	line := session.Date + " de " + session.StartTime
	if session.EndTime != "" {
		line += " à " + session.EndTime
	}
	return line + " en salle " + session.Room
}

// StudentSessionsTable flattens student sessions for spreadsheet exports.
func (s *ConvocationService) StudentSessionsTable(ds models.ExamDataset, students []models.Student) export.Dataset {
	data := export.Dataset{
		Headers:  []string{"Classe", "Élève", "Date", "Début", "Fin", "Salle", "Épreuve", "Consigne"},
		Widths:   []float64{1, 1.6, 1.6, 0.6, 0.6, 1, 2, 2.5},
		Subtitle: orDefault(ds.ConvocationTitle, defaultStudentTitle),
	}
	for _, student := range students {
		for _, session := range student.Sessions {
			data.Rows = append(data.Rows, map[string]string{
				"Classe":   student.ClassName,
				"Élève":    dataset.StudentName(student),
				"Date":     session.Date,
				"Début":    session.StartTime,
				"Fin":      session.EndTime,
				"Salle":    session.Room,
				"Épreuve":  session.Subject,
				"Consigne": session.Memo,
			})
		}
	}
	return data
}
