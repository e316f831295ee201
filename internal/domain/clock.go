package domain

import (
	"fmt"
	"strconv"
	"time"
)

// DayLayout is the persisted form of calendar days.
const DayLayout = "2006-01-02"

// ParseClock parses a wall-clock "HH:MM" value into minutes after midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' || !isDigits(s[:2]) || !isDigits(s[3:]) {
		return 0, fmt.Errorf("clock %q: want HH:MM", s)
	}
	h, _ := strconv.Atoi(s[:2])
	if h > 23 {
		return 0, fmt.Errorf("clock %q: hour out of range", s)
	}
	m, _ := strconv.Atoi(s[3:])
	if m > 59 {
		return 0, fmt.Errorf("clock %q: minute out of range", s)
	}
	return h*60 + m, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseDay parses an ISO calendar day. The returned time is midnight UTC.
func ParseDay(s string) (time.Time, error) {
	d, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("day %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

// ValidDay reports whether s is a well-formed ISO calendar day.
func ValidDay(s string) bool {
	_, err := ParseDay(s)
	return err == nil
}

// EntryMinutes returns endTime minus startTime in minutes. The range must be
// strictly positive; zero or negative ranges are rejected, never clamped.
func EntryMinutes(start, end string) (int, error) {
	var errs []FieldError
	s, err := ParseClock(start)
	if err != nil {
		errs = append(errs, FieldError{Field: "startTime", Message: "must be HH:MM"})
	}
	e, err := ParseClock(end)
	if err != nil {
		errs = append(errs, FieldError{Field: "endTime", Message: "must be HH:MM"})
	}
	if len(errs) > 0 {
		return 0, NewValidationErrors(errs)
	}
	if e-s <= 0 {
		return 0, NewValidationError("endTime", "end time must be after start time")
	}
	return e - s, nil
}
