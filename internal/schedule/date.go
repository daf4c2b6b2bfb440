// Package schedule holds the pure scheduling rules for activities: the
// calendar-date codec, the list ranking policy, the calendar event
// projection, and the archival patch. Everything here is synchronous,
// deterministic, and free of I/O; handlers apply the results against the
// database.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultHour is the neutral clock hour used when an activity has a
// scheduled date but no usable time. Noon keeps the rendered event well
// clear of midnight in every timezone.
const DefaultHour = 12

// Date is a plain calendar date with no time component and no timezone.
// Calendar dates must never pass through a UTC-anchored instant: parsing
// "2024-03-07" as an ISO timestamp shifts the displayed day in
// negative-offset zones. Keeping the triple until the final render avoids
// that entire class of bug.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int
}

// ParseDate decodes a YYYY-MM-DD string into a Date. The result is
// validated by round-tripping through time.Date, so overflow dates like
// 2024-02-31 are rejected.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year in date %q", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month in date %q", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day in date %q", s)
	}

	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return Date{}, fmt.Errorf("date %q out of range", s)
	}
	check := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if check.Year() != year || int(check.Month()) != month || check.Day() != day {
		return Date{}, fmt.Errorf("date %q does not exist", s)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// String encodes the date as its canonical zero-padded YYYY-MM-DD key.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// At combines the date with a clock time into a local-timezone instant
// using the explicit constructor, never string parsing.
func (d Date) At(hour, minute int) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, hour, minute, 0, 0, time.Local)
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	t := d.At(DefaultHour, 0).AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Today returns the current calendar date in the local timezone.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

// ParseClock decodes an HH:MM 24-hour clock string.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in time %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in time %q", s)
	}
	return hour, minute, nil
}
