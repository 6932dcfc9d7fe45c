// Package wallclock implements the local-time arithmetic behind task
// scheduling: "HH:MM" wall-clock comparison for lateness verdicts and
// timezone-aware calendar-date bucketing for day boards.
package wallclock

import (
	"fmt"
	"time"
)

const (
	// Layout is the zero-padded 24h wall-clock format used everywhere a
	// scheduled or submission time-of-day crosses the API boundary.
	Layout = "15:04"

	// DateLayout is the calendar-date key used for day bucketing.
	DateLayout = "2006-01-02"
)

// Valid reports whether s is a well-formed zero-padded 24h "HH:MM" string.
func Valid(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse(Layout, s)
	return err == nil
}

// IsLate classifies a submission against a template's scheduled time. Both
// arguments are local "HH:MM" strings in the same timezone. A task with no
// scheduled time is flexible and never late. Submitting exactly at the
// scheduled minute is on time; lateness requires a strictly later minute.
//
// Zero-padded "HH:MM" strings order lexicographically the same way the
// underlying minute-of-day values order numerically, so a plain string
// comparison is exact.
func IsLate(scheduled, submitted string) bool {
	if scheduled == "" {
		return false
	}
	return submitted > scheduled
}

// TimeOfDay renders the instant as a local "HH:MM" string in loc.
func TimeOfDay(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(Layout)
}

// DateKey renders the instant's calendar date in loc as "YYYY-MM-DD".
// Bucketing by local calendar date rather than UTC day keeps entries
// submitted near midnight on the correct board for non-UTC facilities.
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}

// Location resolves an IANA timezone name, defaulting to UTC when empty.
func Location(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// ParseDate parses a "YYYY-MM-DD" key into the midnight instant in loc.
func ParseDate(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, key, loc)
}
