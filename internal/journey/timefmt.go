package journey

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime renders an RTT HHMM time as HH:MM, or "-" when there is none.
func FormatTime(s string) string {
	if s == "" {
		return "-"
	}
	if len(s) < 4 {
		s = strings.Repeat("0", 4-len(s)) + s
	}
	return s[:2] + ":" + s[2:4]
}

// DelayMinutes returns how many minutes actual is behind scheduled.
// Early running, unparseable times and missing values all give 0.
func DelayMinutes(scheduled, actual string) int {
	sched, err := minutesOfDay(scheduled)
	if err != nil {
		return 0
	}
	act, err := minutesOfDay(actual)
	if err != nil {
		return 0
	}

	diff := act - sched
	// Running across midnight.
	if diff < -12*60 {
		diff += 24 * 60
	}
	if diff < 0 {
		return 0
	}
	return diff
}

func minutesOfDay(s string) (int, error) {
	s = strings.ReplaceAll(s, ":", "")
	if len(s) < 4 {
		return 0, fmt.Errorf("invalid time format: %s", s)
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(s[2:4])
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}
