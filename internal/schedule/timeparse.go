// Package schedule derives teacher, room and day views from authored surveillance missions.
//
// Every function is pure: inputs are never mutated and no I/O happens here.
package schedule

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/noah-isme/exam-logistics-api/internal/models"
)

// Period is the half-day a session belongs to.
type Period string

const (
	PeriodNone      Period = ""
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
)

// MarshalText renders PeriodNone as "none" so JSON payloads stay explicit.
func (p Period) MarshalText() ([]byte, error) {
	if p == PeriodNone {
		return []byte("none"), nil
	}
	return []byte(p), nil
}

// UnmarshalText accepts the values MarshalText produces.
func (p *Period) UnmarshalText(text []byte) error {
	switch v := Period(text); v {
	case "none", PeriodNone:
		*p = PeriodNone
	case PeriodMorning, PeriodAfternoon:
		*p = v
	default:
		return fmt.Errorf("unknown period %q", string(text))
	}
	return nil
}

const (
	morningFallbackMinutes   = 8 * 60
	afternoonFallbackMinutes = 13 * 60
)

var (
	startHourPattern    = regexp.MustCompile(`(\d{1,2})h`)
	startMinutesPattern = regexp.MustCompile(`(\d{1,2})h(\d{2})?`)
)

// ExtractStartHour returns the hour of the first "<h>h" token in value.
func ExtractStartHour(value string) (int, bool) {
	match := startHourPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, false
	}
	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return hour, true
}

// ExtractStartMinutes returns the first "<h>h<mm>" token as minutes since midnight.
// Minutes default to zero when the hour is not followed by two digits.
func ExtractStartMinutes(value string) (int, bool) {
	match := startMinutesPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, false
	}
	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	minutes := 0
	if match[2] != "" {
		minutes, err = strconv.Atoi(match[2])
		if err != nil {
			return 0, false
		}
	}
	return hour*60 + minutes, true
}

func labelPeriod(label string) Period {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "matin"):
		return PeriodMorning
	case strings.Contains(lower, "après"), strings.Contains(lower, "apres"):
		return PeriodAfternoon
	default:
		return PeriodNone
	}
}

// ClassifySession places a block in the morning or the afternoon.
// The label wins over the time; "matin" is checked before "après".
func ClassifySession(label, time string) Period {
	if period := labelPeriod(label); period != PeriodNone {
		return period
	}
	hour, ok := ExtractStartHour(time)
	if !ok {
		return PeriodNone
	}
	if hour < 12 {
		return PeriodMorning
	}
	return PeriodAfternoon
}

// IsMorningSession reports whether s is classified as a morning block.
func IsMorningSession(s models.RoomSession) bool {
	return ClassifySession(s.Label, s.Time) == PeriodMorning
}

// IsAfternoonSession reports whether s is classified as an afternoon block.
func IsAfternoonSession(s models.RoomSession) bool {
	return ClassifySession(s.Label, s.Time) == PeriodAfternoon
}

// SessionSortValue orders sessions inside a room cell. Sessions without a usable
// time fall back on their half-day label and sort last when neither is known.
func SessionSortValue(s models.RoomSession) int {
	if minutes, ok := ExtractStartMinutes(s.Time); ok {
		return minutes
	}
	switch labelPeriod(s.Label) {
	case PeriodMorning:
		return morningFallbackMinutes
	case PeriodAfternoon:
		return afternoonFallbackMinutes
	}
	return math.MaxInt
}
