package wallclock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// LayoutDate is the calendar date layout used across the API.
const LayoutDate = "2006-01-02"

const minutesPerHour = 60

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// Parse converts a wall-clock "HH:MM" (or "H:MM") string into minutes since
// midnight. Hours must be 0-23.
func Parse(s string) (int, error) {
	minutes, err := ParseExtended(s)
	if err != nil {
		return 0, err
	}
	if minutes >= 24*minutesPerHour {
		return 0, fmt.Errorf("%w: %q is past midnight", ErrInvalidClock, s)
	}
	return minutes, nil
}

// ParseExtended is like Parse but accepts hours past 23, which Format emits
// for clocks that ran beyond midnight.
func ParseExtended(s string) (int, error) {
	matches := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if len(matches) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	if minutes >= minutesPerHour {
		return 0, fmt.Errorf("%w: %q has %d minutes", ErrInvalidClock, s, minutes)
	}

	return hours*minutesPerHour + minutes, nil
}

// Format renders minutes since midnight as zero-padded "HH:MM". Values past
// 23:59 are not wrapped, so 1450 formats as "24:10".
func Format(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)
}

// Normalize re-renders a clock string in zero-padded form ("9:05" -> "09:05").
func Normalize(s string) (string, error) {
	minutes, err := ParseExtended(s)
	if err != nil {
		return "", err
	}
	return Format(minutes), nil
}

// Between returns end - start in minutes for two clock strings.
func Between(start, end string) (int, error) {
	s, err := ParseExtended(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseExtended(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}

// ParseDate parses a "YYYY-MM-DD" date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(LayoutDate, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Weekday returns the day of week (0=Sunday..6=Saturday) of a "YYYY-MM-DD" date.
func Weekday(date string) (int, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}

// ValidWeekday reports whether d is in 0..6.
func ValidWeekday(d int) bool {
	return d >= int(time.Sunday) && d <= int(time.Saturday)
}
