package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTeacherName(t *testing.T) {
	assert.Equal(t, "CAPEL E.", NormalizeTeacherName("  CAPEL E. "))
	assert.Equal(t, UnassignedTeacher, NormalizeTeacherName(""))
	assert.Equal(t, UnassignedTeacher, NormalizeTeacherName(" \t "))
}

func TestExtractTeacherAssignments(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{raw: "ANE A., BOSSU C.", want: []string{"ANE A.", "BOSSU C."}},
		{raw: "Solo ", want: []string{"Solo"}},
		{raw: "", want: []string{UnassignedTeacher}},
		{raw: " , ", want: []string{UnassignedTeacher}},
		{raw: ",,", want: []string{UnassignedTeacher}},
		{raw: "X, X, Y", want: []string{"X", "Y"}},
		{raw: "A,,B", want: []string{"A", "B"}},
		{raw: "B, A", want: []string{"B", "A"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractTeacherAssignments(tc.raw), tc.raw)
	}
}
