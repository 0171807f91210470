// Package dataset holds the hand-authored exam datasets compiled into the service.
package dataset

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/noah-isme/exam-logistics-api/internal/models"
)

// NormalizeWhitespace collapses runs of whitespace and trims the result.
func NormalizeWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// ShortName builds the "LAST F." key missions use to name a teacher.
func ShortName(lastName, firstName string) string {
	last := strings.ToUpper(NormalizeWhitespace(lastName))
	first := NormalizeWhitespace(firstName)
	if first == "" {
		return last
	}
	initial, _ := utf8.DecodeRuneInString(first)
	return last + " " + string(unicode.ToUpper(initial)) + "."
}

func inferGender(civility models.Civility) models.Gender {
	if civility == models.CivilityMadame {
		return models.GenderFemale
	}
	return models.GenderMale
}

// CreateTeacherDirectory normalises authored directory rows.
func CreateTeacherDirectory(source []models.TeacherDirectorySource) []models.TeacherDirectoryEntry {
	entries := make([]models.TeacherDirectoryEntry, 0, len(source))
	for _, row := range source {
		last := strings.ToUpper(NormalizeWhitespace(row.LastName))
		first := NormalizeWhitespace(row.FirstName)
		entries = append(entries, models.TeacherDirectoryEntry{
			Civility:  row.Civility,
			Gender:    inferGender(row.Civility),
			LastName:  last,
			FirstName: first,
			ShortName: ShortName(last, first),
		})
	}
	return entries
}

// DirectoryByShortName indexes entries by short name. Later rows win on collision.
func DirectoryByShortName(entries []models.TeacherDirectoryEntry) map[string]models.TeacherDirectoryEntry {
	index := make(map[string]models.TeacherDirectoryEntry, len(entries))
	for _, entry := range entries {
		index[entry.ShortName] = entry
	}
	return index
}
