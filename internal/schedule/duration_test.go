package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	cases := map[string]int{
		"4:30:00":  16200,
		"2:00:00":  7200,
		"0:45":     2700,
		"2":        7200,
		"1:00:30":  3630,
		"10:05:00": 36300,
		"":         0,
		"abc":      0,
		"1:xx:00":  0,
		"-1:00:00": 0,
		"2::":      7200,
	}
	for input, want := range cases {
		assert.Equal(t, want, ParseDuration(input), input)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "4 h 30 min", FormatDuration(16200))
	assert.Equal(t, "0 min", FormatDuration(0))
	assert.Equal(t, "0 min", FormatDuration(59))
	assert.Equal(t, "1 h", FormatDuration(3600))
	assert.Equal(t, "1 min", FormatDuration(90))
	assert.Equal(t, "0 min", FormatDuration(-10))
}

func TestFormatDurationIsLossyButTotal(t *testing.T) {
	for s := 0; s <= 3*3600; s += 37 {
		formatted := FormatDuration(s)
		assert.NotEmpty(t, formatted)
	}
	for _, raw := range []string{"4:30:00", "0:00:00", "bad", "1:2:3:4"} {
		assert.NotPanics(t, func() { _ = FormatDuration(ParseDuration(raw)) })
	}
	assert.Equal(t, "4 h 30 min", FormatDuration(ParseDuration("4:30:59")))
}

func TestValidDuration(t *testing.T) {
	assert.True(t, ValidDuration("4:30:00"))
	assert.True(t, ValidDuration("12:00:00"))
	assert.False(t, ValidDuration("4:3:00"))
	assert.False(t, ValidDuration("4h30"))
	assert.False(t, ValidDuration(""))
}

func TestTotalDuration(t *testing.T) {
	assert.Equal(t, 16200+3600, TotalDuration("4:30:00", "1:00:00", "bad"))
}
