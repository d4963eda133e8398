package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/courtside/club-backend/internal/pkg/validation"
)

const minutesPerDay = 24 * 60

// ParseClock converts a clock string ("HH:MM", seconds tolerated and ignored)
// to minutes since midnight.
func ParseClock(field, s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, validation.Errorf(field, "invalid clock string %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, validation.Errorf(field, "invalid hour in %q", s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, validation.Errorf(field, "invalid minute in %q", s)
	}

	return hour*60 + minute, nil
}

// FormatClock converts minutes since midnight back to "HH:MM".
// Values outside a single day wrap around midnight.
func FormatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// HourOf returns the containing hour (0..23) of a clock string.
func HourOf(field, s string) (int, error) {
	m, err := ParseClock(field, s)
	if err != nil {
		return 0, err
	}
	return m / 60, nil
}
