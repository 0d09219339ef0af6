// Package timeutil provides date/time-of-day helpers for schedule records.
// Interviews and calendar events store a calendar date and a local
// time-of-day separately; these helpers combine and compare them.
package timeutil

import (
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Combine merges a calendar date with a "15:04" time-of-day string.
// An empty or malformed time-of-day defaults to midnight, so a record
// without a time still sorts at the start of its day.
func Combine(date time.Time, timeOfDay string) time.Time {
	d := DateOnly(date)
	tod, err := time.Parse(TimeLayout, timeOfDay)
	if err != nil {
		return d
	}
	return d.Add(time.Duration(tod.Hour())*time.Hour + time.Duration(tod.Minute())*time.Minute)
}

// InPast reports whether the combined date and time-of-day lies strictly
// before now.
func InPast(date time.Time, timeOfDay string, now time.Time) bool {
	return Combine(date, timeOfDay).Before(now)
}
