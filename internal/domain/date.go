package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO 8601 calendar date layout used on the wire and in exports.
const DateLayout = "2006-01-02"

// DateOf drops the time-of-day part of t, keeping its calendar date in t's
// location, and returns midnight UTC of that date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO 8601 calendar date. A full RFC 3339 timestamp is
// accepted too and truncated to its date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
