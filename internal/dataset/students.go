package dataset

import (
	"sort"
	"strings"

	"github.com/noah-isme/exam-logistics-api/internal/models"
	"github.com/noah-isme/exam-logistics-api/internal/schedule"
)

// ClassNames returns the distinct class names of the dataset's students in French order.
func ClassNames(ds models.ExamDataset) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, student := range ds.Students {
		name := NormalizeWhitespace(student.ClassName)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	schedule.SortFrench(names)
	return names
}

// StudentsForClass returns the students of className sorted by last then first name.
// Matching ignores case and surrounding whitespace.
func StudentsForClass(ds models.ExamDataset, className string) []models.Student {
	target := strings.ToLower(NormalizeWhitespace(className))
	out := make([]models.Student, 0)
	for _, student := range ds.Students {
		if strings.ToLower(NormalizeWhitespace(student.ClassName)) == target {
			out = append(out, student)
		}
	}
	SortStudents(out)
	return out
}

// SortStudents orders students by "LAST First" in French order.
func SortStudents(students []models.Student) {
	sort.SliceStable(students, func(i, j int) bool {
		return CompareStudents(students[i], students[j]) < 0
	})
}

// CompareStudents compares two students by "LAST First" in French order.
func CompareStudents(a, b models.Student) int {
	return schedule.CompareFrench(sortKey(a), sortKey(b))
}

func sortKey(s models.Student) string {
	return NormalizeWhitespace(s.LastName) + " " + NormalizeWhitespace(s.FirstName)
}

// StudentName renders "First LAST".
func StudentName(s models.Student) string {
	first := NormalizeWhitespace(s.FirstName)
	last := strings.ToUpper(NormalizeWhitespace(s.LastName))
	if first == "" {
		return last
	}
	return first + " " + last
}
