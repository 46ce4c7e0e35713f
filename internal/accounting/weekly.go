package accounting

import (
	"fmt"
	"strings"

	"ponto/internal/domain"
)

// WeeklySummary is the weekday total of one employee.
type WeeklySummary struct {
	Name         string        `json:"name"`
	TotalMinutes int           `json:"totalMinutes"`
	ExtraMinutes int           `json:"extraMinutes"`
	Status       domain.Status `json:"status"`
	Message      string        `json:"message"`
}

// Weekly aggregates with the default thresholds.
func Weekly(records []domain.Record) []WeeklySummary {
	return Default.Weekly(records)
}

// Weekly sums the daily totals of every employee over weekday entries.
// Names come from the keys and are listed once, in first-seen order, even
// when none of their entries qualify. Daily totals are accumulated from the
// formatted daily text, not from the raw minute count.
func (c Calculator) Weekly(records []domain.Record) []WeeklySummary {
	var names []string
	seen := make(map[string]bool)
	totals := make(map[string]int)

	for _, rec := range records {
		displayDate, name := domain.ParseEntryKey(rec.Key)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}

		// Dates that do not parse count as weekdays.
		if date, err := domain.ParseDisplayDate(displayDate); err == nil && domain.IsWeekend(date) {
			continue
		}

		daily := c.Daily(rec.Entry)
		if daily.Text == IncompleteText || strings.Contains(daily.Message, "Fill in") {
			continue
		}

		minutes, ok := ParseFormatted(daily.Text)
		if !ok {
			continue
		}
		totals[name] += minutes
	}

	summaries := make([]WeeklySummary, 0, len(names))
	for _, name := range names {
		summaries = append(summaries, c.weeklySummary(name, totals[name]))
	}
	return summaries
}

func (c Calculator) weeklySummary(name string, total int) WeeklySummary {
	summary := WeeklySummary{Name: name, TotalMinutes: total}

	switch {
	case total < c.WeeklyMinimum:
		summary.Status = domain.StatusNotMet
		summary.Message = fmt.Sprintf("⛔ %s - incomplete weekly load: %s", name, FormatMinutes(total))
	case total == c.WeeklyMinimum:
		summary.Status = domain.StatusMet
		summary.Message = fmt.Sprintf("✅ %s - weekly load met: %s", name, FormatMinutes(total))
	default:
		summary.Status = domain.StatusExceeded
		summary.ExtraMinutes = total - c.WeeklyMinimum
		summary.Message = fmt.Sprintf("✅ %s has %s extra.", name, FormatMinutes(summary.ExtraMinutes))
	}

	return summary
}
