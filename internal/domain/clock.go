package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockPattern = regexp.MustCompile(`^(\d{2}):(\d{2})$`)

// Clock is a time of day at minute resolution, independent of any date or zone.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses an "HH:MM" time of day.
func ParseClock(s string) (Clock, error) {
	matches := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return Clock{}, fmt.Errorf("invalid time of day %q: want HH:MM", s)
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	if hour > 23 || minute > 59 {
		return Clock{}, fmt.Errorf("invalid time of day %q: out of range", s)
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// Minutes returns the offset from midnight in minutes.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Sub returns c - other in minutes. The result is negative when other is later.
func (c Clock) Sub(other Clock) int {
	return c.Minutes() - other.Minutes()
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
