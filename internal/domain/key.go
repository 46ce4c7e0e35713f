package domain

import (
	"strings"
	"time"
)

// KeySeparator joins the display date and the employee name in a store key.
const KeySeparator = " - "

// ISODateLayout is the layout of TimeEntry.Date.
const ISODateLayout = "2006-01-02"

// DisplayDateLayout is the DD/MM/YYYY layout used in keys and exports.
const DisplayDateLayout = "02/01/2006"

// NewEntryKey builds the composite key "DD/MM/YYYY - name". Two entries with the
// same date and name share a key; the later save replaces the earlier one.
func NewEntryKey(isoDate, name string) string {
	return DisplayDate(isoDate) + KeySeparator + name
}

// ParseEntryKey splits a key into its display date and name on the first separator.
func ParseEntryKey(key string) (displayDate, name string) {
	parts := strings.SplitN(key, KeySeparator, 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// DisplayDate turns YYYY-MM-DD into DD/MM/YYYY by reversing the dash separated parts.
func DisplayDate(isoDate string) string {
	parts := strings.Split(isoDate, "-")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// ParseDisplayDate parses a DD/MM/YYYY date as a calendar date in UTC.
func ParseDisplayDate(s string) (time.Time, error) {
	return time.Parse(DisplayDateLayout, strings.TrimSpace(s))
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
