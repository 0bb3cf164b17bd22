// utils/dates.go
package utils

import (
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"

	// DefaultBookingTime is used when a booking request names no time.
	DefaultBookingTime = "10:00:00"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Today formats t's calendar date as YYYY-MM-DD.
func Today(t time.Time) string {
	return BeginningOfDay(t).Format(DateLayout)
}

// Tomorrow formats the calendar day after t as YYYY-MM-DD.
func Tomorrow(t time.Time) string {
	return BeginningOfDay(t).AddDate(0, 0, 1).Format(DateLayout)
}

// NormalizeTime turns HH:MM into HH:MM:SS and leaves anything else alone.
func NormalizeTime(s string) string {
	s = strings.TrimSpace(s)
	if strings.Count(s, ":") == 1 {
		return s + ":00"
	}
	return s
}
