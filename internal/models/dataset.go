package models

// Civility is the salutation used on convocations.
type Civility string

const (
	CivilityMadame   Civility = "Madame"
	CivilityMonsieur Civility = "Monsieur"
)

// Gender drives grammatical agreement in generated documents.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// TeacherDirectorySource is a hand-authored directory row.
type TeacherDirectorySource struct {
	Civility  Civility `db:"civility" json:"civility"`
	LastName  string   `db:"last_name" json:"lastName"`
	FirstName string   `db:"first_name" json:"firstName"`
}

// TeacherDirectoryEntry is a normalised directory row keyed by its short name ("CAPEL E.").
type TeacherDirectoryEntry struct {
	Civility  Civility `json:"civility"`
	Gender    Gender   `json:"gender"`
	LastName  string   `json:"lastName"`
	FirstName string   `json:"firstName"`
	ShortName string   `json:"shortName"`
}

// FullName renders "Prénom NOM".
func (e TeacherDirectoryEntry) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	return e.FirstName + " " + e.LastName
}

// DatasetHeader describes the exam event a dataset covers.
type DatasetHeader struct {
	Title               string `json:"title"`
	Date                string `json:"date"`
	Subtitle            string `json:"subtitle,omitempty"`
	ReprographyDeadline string `json:"reprographyDeadline,omitempty"`
}

// KeyFigure is a headline number shown on the setup view.
type KeyFigure struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Unit  string `json:"unit,omitempty"`
	Extra string `json:"extra,omitempty"`
}

// AccommodationGroup lists students benefiting from special arrangements.
type AccommodationGroup struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Students    []string `json:"students"`
	Note        string   `json:"note,omitempty"`
}

// ExamRoom is a room available for the exam with its seating capacity.
type ExamRoom struct {
	Name         string `db:"name" json:"name"`
	ExamCapacity int    `db:"exam_capacity" json:"examCapacity"`
}

// StudentExamSession is one paper a student sits.
type StudentExamSession struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime"`
	Room      string `json:"room" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	Memo      string `json:"memo,omitempty"`
}

// Student is a convoked candidate.
type Student struct {
	LastName  string               `db:"last_name" json:"lastName" validate:"required"`
	FirstName string               `db:"first_name" json:"firstName"`
	ClassName string               `db:"class_name" json:"className" validate:"required"`
	Sessions  []StudentExamSession `json:"sessions" validate:"dive"`
}

// ExamDataset bundles every table behind one exam dashboard.
type ExamDataset struct {
	ID                  string                  `json:"id"`
	Header              DatasetHeader           `json:"header"`
	KeyFigures          []KeyFigure             `json:"keyFigures"`
	AccommodationGroups []AccommodationGroup    `json:"accommodationGroups"`
	TeacherDirectory    []TeacherDirectoryEntry `json:"teacherDirectory"`
	MissionTypes        []MissionType           `json:"missionTypes"`
	Missions            []SurveillanceMission   `json:"missions"`
	RoomColumns         []string                `json:"roomColumns"`
	RoomSchedule        []RoomScheduleDay       `json:"roomSchedule"`
	ExamRooms           []ExamRoom              `json:"examRooms"`
	DefaultStudentCount int                     `json:"defaultStudentCount"`
	Students            []Student               `json:"students"`
	ConvocationTitle    string                  `json:"convocationTitle,omitempty"`
	// TypeLabels overrides MissionType.Label for this dataset.
	TypeLabels map[MissionType]string `json:"typeLabels,omitempty"`
}

// TypeLabel returns the display name of a mission type in this dataset.
func (d ExamDataset) TypeLabel(t MissionType) string {
	if label, ok := d.TypeLabels[t]; ok {
		return label
	}
	return t.Label()
}

// DatasetSummary is the listing representation of a dataset.
type DatasetSummary struct {
	ID       string `db:"id" json:"id"`
	Title    string `db:"title" json:"title"`
	Date     string `db:"date" json:"date"`
	Subtitle string `db:"subtitle" json:"subtitle,omitempty"`
}

// Issue scopes.
const (
	IssueScopeMission = "mission"
	IssueScopeStudent = "student"
)

// DatasetIssue reports an authored row the views will silently drop or misrender.
type DatasetIssue struct {
	Scope   string `json:"scope"`
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}
