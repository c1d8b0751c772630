package common

import (
	"regexp"
	"time"
)

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDay parses a YYYY-MM-DD string into a midnight-UTC time. The second
// return is false when the string does not match the pattern or names an
// impossible calendar date (e.g. 2021-13-40, or Feb 29 outside leap years).
func ParseDay(s string) (time.Time, bool) {
	if !dayPattern.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Today returns the current calendar day with the time of day zeroed.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// FormatDay renders a date as "Jan 02 2006".
func FormatDay(t time.Time) string {
	return t.Format("Jan 02 2006")
}

// DateString renders a date the way the log endpoint exposes it, e.g.
// "Mon May 01 2023 00:00:00 GMT+0000 (UTC)".
func DateString(t time.Time) string {
	return t.Format("Mon Jan 02 2006 15:04:05 GMT-0700 (MST)")
}
