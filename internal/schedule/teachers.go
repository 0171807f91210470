package schedule

import "strings"

// UnassignedTeacher groups missions whose teacher field is blank.
const UnassignedTeacher = "À assigner"

// NormalizeTeacherName trims raw and maps blank values to UnassignedTeacher.
func NormalizeTeacherName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return UnassignedTeacher
	}
	return name
}

// ExtractTeacherAssignments splits a comma separated teacher field into distinct names.
// Blank pieces are dropped; a field made only of blanks yields the unassigned sentinel.
func ExtractTeacherAssignments(raw string) []string {
	if !strings.Contains(raw, ",") {
		return []string{NormalizeTeacherName(raw)}
	}

	seen := make(map[string]struct{})
	names := make([]string, 0, strings.Count(raw, ",")+1)
	for _, piece := range strings.Split(raw, ",") {
		name := NormalizeTeacherName(piece)
		if name == UnassignedTeacher {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	if len(names) == 0 {
		return []string{UnassignedTeacher}
	}
	return names
}
