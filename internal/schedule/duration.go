package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var durationPattern = regexp.MustCompile(`^\d+:\d{2}:\d{2}$`)

// ParseDuration converts an "H:MM:SS" string to seconds. Missing components count
// as zero; any unparsable component makes the whole value zero.
func ParseDuration(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	weights := []int{3600, 60, 1}
	total := 0
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0
		}
		total += n * weights[i]
	}
	if total < 0 {
		return 0
	}
	return total
}

// FormatDuration renders seconds as "4 h 30 min". Seconds are dropped.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	parts := make([]string, 0, 2)
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d h", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min", minutes))
	}
	if len(parts) == 0 {
		return "0 min"
	}
	return strings.Join(parts, " ")
}

// ValidDuration reports whether value follows the authored "H:MM:SS" layout.
func ValidDuration(value string) bool {
	return durationPattern.MatchString(strings.TrimSpace(value))
}

// TotalDuration sums the parsed durations of missions.
func TotalDuration(durations ...string) int {
	total := 0
	for _, d := range durations {
		total += ParseDuration(d)
	}
	return total
}
