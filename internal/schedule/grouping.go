package schedule

import (
	"sort"

	"github.com/noah-isme/exam-logistics-api/internal/models"
)

// BuildTeacherSchedule groups missions per assigned teacher. A mission naming
// several teachers is copied into each of their groups with Teacher rewritten.
// Groups are sorted in French order with the unassigned group last.
func BuildTeacherSchedule(missions []models.SurveillanceMission) []models.TeacherScheduleGroup {
	index := make(map[string]int)
	groups := make([]models.TeacherScheduleGroup, 0)

	for _, mission := range missions {
		for _, teacher := range ExtractTeacherAssignments(mission.Teacher) {
			copied := mission
			copied.Teacher = teacher
			pos, ok := index[teacher]
			if !ok {
				pos = len(groups)
				index[teacher] = pos
				groups = append(groups, models.TeacherScheduleGroup{Teacher: teacher})
			}
			groups[pos].Missions = append(groups[pos].Missions, copied)
		}
	}

	collator := frenchCollator()
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].Teacher, groups[j].Teacher
		if a == UnassignedTeacher {
			return false
		}
		if b == UnassignedTeacher {
			return true
		}
		return collator.CompareString(a, b) < 0
	})
	return groups
}

// FlattenTeacherSchedule returns every mission of groups in group order.
func FlattenTeacherSchedule(groups []models.TeacherScheduleGroup) []models.SurveillanceMission {
	out := make([]models.SurveillanceMission, 0)
	for _, group := range groups {
		out = append(out, group.Missions...)
	}
	return out
}

// FindTeacherGroup returns the group of the given teacher after name normalisation.
func FindTeacherGroup(groups []models.TeacherScheduleGroup, teacher string) (models.TeacherScheduleGroup, bool) {
	name := NormalizeTeacherName(teacher)
	for _, group := range groups {
		if group.Teacher == name {
			return group, true
		}
	}
	return models.TeacherScheduleGroup{}, false
}
