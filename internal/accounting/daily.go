// Package accounting computes worked time and compliance verdicts for
// daily entries and weekly per-employee totals. Everything here is pure.
package accounting

import (
	"fmt"

	"ponto/internal/domain"
)

const (
	// DefaultDailyMinimum is the required daily work in minutes (6h).
	DefaultDailyMinimum = 360
	// DefaultWeeklyMinimum is the required weekday work per employee in minutes (30h).
	DefaultWeeklyMinimum = 1800

	// IncompleteText is the daily text for entries missing a time field.
	IncompleteText = "-"
	// IncompleteMessage is the daily message for entries missing a time field.
	IncompleteMessage = "Fill in all fields."
)

// DailyResult is the outcome of Daily Accounting for one entry.
type DailyResult struct {
	Text          string        `json:"text"`
	Message       string        `json:"message"`
	Verdict       string        `json:"verdict"`
	Status        domain.Status `json:"status"`
	WorkedMinutes int           `json:"workedMinutes"`
	ExtraMinutes  int           `json:"extraMinutes"`
}

// Incomplete reports whether the entry lacked a usable time field.
func (r DailyResult) Incomplete() bool {
	return r.Status == domain.StatusIncomplete
}

// Calculator holds the daily and weekly thresholds in minutes.
type Calculator struct {
	DailyMinimum  int
	WeeklyMinimum int
}

// NewCalculator returns a calculator with the given thresholds.
func NewCalculator(dailyMinimum, weeklyMinimum int) Calculator {
	return Calculator{DailyMinimum: dailyMinimum, WeeklyMinimum: weeklyMinimum}
}

// Default uses the 6h daily and 30h weekly minimums.
var Default = NewCalculator(DefaultDailyMinimum, DefaultWeeklyMinimum)

// Daily computes the worked time of an entry with the default thresholds.
func Daily(entry domain.TimeEntry) DailyResult {
	return Default.Daily(entry)
}

// Daily computes (clockOut - clockIn) - (lunchEnd - lunchStart) in minutes.
// Shifts crossing midnight are not supported and yield a negative total.
func (c Calculator) Daily(entry domain.TimeEntry) DailyResult {
	clocks, ok := parseClocks(entry.ClockIn, entry.LunchStart, entry.LunchEnd, entry.ClockOut)
	if !ok {
		return DailyResult{
			Text:    IncompleteText,
			Message: IncompleteMessage,
			Status:  domain.StatusIncomplete,
		}
	}
	in, lunchStart, lunchEnd, out := clocks[0], clocks[1], clocks[2], clocks[3]

	worked := out.Sub(in) - lunchEnd.Sub(lunchStart)
	text := FormatMinutes(worked)

	result := DailyResult{
		Text:          text,
		WorkedMinutes: worked,
	}

	switch {
	case worked < c.DailyMinimum:
		result.Status = domain.StatusNotMet
		result.Verdict = "NOT MET"
		result.Message = fmt.Sprintf("⛔ %s (%s)", result.Verdict, text)
	case worked == c.DailyMinimum:
		result.Status = domain.StatusMet
		result.Verdict = "MET"
		result.Message = fmt.Sprintf("✅ %s (%s)", result.Verdict, text)
	default:
		result.Status = domain.StatusExceeded
		result.ExtraMinutes = worked - c.DailyMinimum
		result.Verdict = fmt.Sprintf("MET, with %d extra minutes", result.ExtraMinutes)
		result.Message = fmt.Sprintf("✅ %s (%s)", result.Verdict, text)
	}

	return result
}

func parseClocks(values ...string) ([]domain.Clock, bool) {
	clocks := make([]domain.Clock, 0, len(values))
	for _, v := range values {
		if v == "" {
			return nil, false
		}
		c, err := domain.ParseClock(v)
		if err != nil {
			return nil, false
		}
		clocks = append(clocks, c)
	}
	return clocks, true
}
