package scheduling

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned when a time string is not a
// well-formed 24-hour "HH:MM" value.
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// ErrInvalidDateFormat is returned when a date string is not a
// well-formed "YYYY-MM-DD" value.
var ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

// parseClock converts a "HH:MM" string to minutes since midnight
// (e.g. "07:00" -> 420).
func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return hour*60 + minute, nil
}

// formatClock converts minutes since midnight back to "HH:MM".
func formatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// formatTwelveHour renders minutes since midnight as a 12-hour clock
// reading, e.g. 690 -> "11:30 AM".
func formatTwelveHour(m int) string {
	hour := m / 60
	minute := m % 60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, period)
}

// formatLabel builds the display label for a slot window,
// e.g. "11:00 AM to 12:00 PM".
func formatLabel(startMin, endMin int) string {
	return formatTwelveHour(startMin) + " to " + formatTwelveHour(endMin)
}
