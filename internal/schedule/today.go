package schedule

import (
	"regexp"
	"strconv"
	"time"
)

var dayMonthPattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})`)

func parseDayMonth(text string) (int, int, bool) {
	match := dayMonthPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, 0, false
	}
	day, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, false
	}
	return day, month, true
}

// IsDayLabelToday reports whether the first "d/m" of label is now's date.
func IsDayLabelToday(label string, now time.Time) bool {
	day, month, ok := parseDayMonth(label)
	return ok && now.Day() == day && int(now.Month()) == month
}

// IsDatetimeToday is IsDayLabelToday applied to a mission datetime.
func IsDatetimeToday(datetime string, now time.Time) bool {
	return IsDayLabelToday(datetime, now)
}
