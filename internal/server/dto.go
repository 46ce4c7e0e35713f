package server

import (
	"github.com/shopspring/decimal"

	"ponto/internal/accounting"
	"ponto/internal/api"
	"ponto/internal/domain"
)

var sixty = decimal.NewFromInt(60)

// hours renders minutes as decimal hours with two places, e.g. 510 -> "8.50".
func hours(minutes int) string {
	return decimal.NewFromInt(int64(minutes)).Div(sixty).StringFixed(2)
}

// EntryDTO is one timesheet row in API responses.
type EntryDTO struct {
	Key           string `json:"key"`
	Date          string `json:"date"`
	Name          string `json:"name"`
	ClockIn       string `json:"clockIn"`
	LunchStart    string `json:"lunchStart"`
	LunchEnd      string `json:"lunchEnd"`
	ClockOut      string `json:"clockOut"`
	TravelMinutes int    `json:"travelMinutes,omitempty"`
	Text          string `json:"text"`
	Message       string `json:"message"`
	Status        string `json:"status"`
	WorkedHours   string `json:"workedHours,omitempty"`
}

// SavedEntryDTO is the response to a successful POST /api/entries.
type SavedEntryDTO struct {
	EntryDTO
	Display string `json:"display"`
}

// WeeklyDTO is one employee line of the weekly summary.
type WeeklyDTO struct {
	Name       string `json:"name"`
	Message    string `json:"message"`
	Status     string `json:"status"`
	TotalHours string `json:"totalHours"`
	ExtraHours string `json:"extraHours"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func toEntryDTO(row *api.EntryRow) EntryDTO {
	dto := EntryDTO{
		Key:           row.Key,
		Date:          row.Date,
		Name:          row.Entry.Name,
		ClockIn:       row.Entry.ClockIn,
		LunchStart:    row.Entry.LunchStart,
		LunchEnd:      row.Entry.LunchEnd,
		ClockOut:      row.Entry.ClockOut,
		TravelMinutes: int(row.Entry.TravelMinutes),
		Text:          row.Daily.Text,
		Message:       row.Daily.Message,
		Status:        row.Daily.Status.String(),
	}
	if !row.Daily.Incomplete() {
		dto.WorkedHours = hours(row.Daily.WorkedMinutes)
	}
	return dto
}

func toSavedEntryDTO(saved *api.SavedEntry) SavedEntryDTO {
	date, _ := domain.ParseEntryKey(saved.Key)
	return SavedEntryDTO{
		EntryDTO: toEntryDTO(&api.EntryRow{
			Key:   saved.Key,
			Date:  date,
			Entry: saved.Entry,
			Daily: saved.Daily,
		}),
		Display: saved.Message,
	}
}

func toWeeklyDTOs(summaries []accounting.WeeklySummary) []WeeklyDTO {
	dtos := make([]WeeklyDTO, 0, len(summaries))
	for _, s := range summaries {
		dtos = append(dtos, WeeklyDTO{
			Name:       s.Name,
			Message:    s.Message,
			Status:     s.Status.String(),
			TotalHours: hours(s.TotalMinutes),
			ExtraHours: hours(s.ExtraMinutes),
		})
	}
	return dtos
}
