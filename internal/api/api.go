package api

import (
	"context"
	"fmt"
	"io"

	"ponto/internal/accounting"
	"ponto/internal/domain"
	"ponto/internal/errors"
	"ponto/internal/export"
	"ponto/internal/logging"
	"ponto/internal/store"
	"ponto/internal/validation"
)

// EntryInput is a submitted timesheet form.
type EntryInput struct {
	Name          string `json:"name"`
	Date          string `json:"date"`
	ClockIn       string `json:"clockIn"`
	LunchStart    string `json:"lunchStart"`
	LunchEnd      string `json:"lunchEnd"`
	ClockOut      string `json:"clockOut"`
	TravelMinutes int    `json:"travelMinutes"`
}

// Entry converts the form to a domain entry.
func (in EntryInput) Entry() domain.TimeEntry {
	return domain.TimeEntry{
		Name:          in.Name,
		Date:          in.Date,
		ClockIn:       in.ClockIn,
		LunchStart:    in.LunchStart,
		LunchEnd:      in.LunchEnd,
		ClockOut:      in.ClockOut,
		TravelMinutes: domain.TravelMinutes(in.TravelMinutes),
	}
}

// SavedEntry is the outcome of a successful save.
type SavedEntry struct {
	Key     string                 `json:"key"`
	Entry   domain.TimeEntry       `json:"entry"`
	Daily   accounting.DailyResult `json:"daily"`
	Message string                 `json:"message"`
}

// EntryRow is one line of the timesheet table.
type EntryRow struct {
	Key   string                 `json:"key"`
	Date  string                 `json:"date"`
	Entry domain.TimeEntry       `json:"entry"`
	Daily accounting.DailyResult `json:"daily"`
}

// TimesheetAPI is what the CLI and the HTTP server drive.
type TimesheetAPI interface {
	// SaveEntry validates a form, stores it under its date+name key and
	// returns the daily verdict. A second save for the same key replaces the first.
	SaveEntry(ctx context.Context, input EntryInput) (*SavedEntry, error)

	// ListEntries returns the table rows in insertion order
	ListEntries(ctx context.Context) ([]*EntryRow, error)

	// WeeklySummary returns one line per employee
	WeeklySummary(ctx context.Context) ([]accounting.WeeklySummary, error)

	// ExportCSV writes the persisted timesheet as CSV
	ExportCSV(ctx context.Context, w io.Writer) error

	// ExportXLSX writes the persisted timesheet as an XLSX workbook
	ExportXLSX(ctx context.Context, w io.Writer) error
}

// Options configures the API. Zero values fall back to defaults.
type Options struct {
	Slot       string
	Calculator *accounting.Calculator
	CSVComma   rune
}

type timesheetAPI struct {
	store     *store.Store
	calc      accounting.Calculator
	validator *validation.EntryValidator
	exporter  *export.Exporter
}

// New loads the timesheet from kv and returns the API over it.
func New(ctx context.Context, kv store.KV, opts Options) TimesheetAPI {
	if opts.Slot == "" {
		opts.Slot = store.DefaultSlot
	}
	calc := accounting.Default
	if opts.Calculator != nil {
		calc = *opts.Calculator
	}

	return &timesheetAPI{
		store:     store.Open(ctx, kv, opts.Slot),
		calc:      calc,
		validator: validation.NewEntryValidator(),
		exporter: export.NewExporter(kv, export.Options{
			Slot:       opts.Slot,
			Comma:      opts.CSVComma,
			Calculator: &calc,
		}),
	}
}

func (a *timesheetAPI) SaveEntry(ctx context.Context, input EntryInput) (*SavedEntry, error) {
	entry := a.validator.NormalizeEntry(input.Entry())

	if err := a.validator.ValidateEntry(entry); err != nil {
		if ve, ok := err.(*validation.ValidationError); ok {
			return nil, errors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
		}
		return nil, err
	}

	key := entry.Key()
	if err := a.store.Save(ctx, key, entry); err != nil {
		return nil, err
	}

	daily := a.calc.Daily(entry)
	logging.Debugf("saved %q: %s", key, daily.Message)

	return &SavedEntry{
		Key:     key,
		Entry:   entry,
		Daily:   daily,
		Message: fmt.Sprintf("%s: %s", entry.Name, daily.Message),
	}, nil
}

func (a *timesheetAPI) ListEntries(ctx context.Context) ([]*EntryRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewTimeoutError("list entries", err)
	}

	records := a.store.All()
	rows := make([]*EntryRow, 0, len(records))
	for _, rec := range records {
		date, _ := domain.ParseEntryKey(rec.Key)
		rows = append(rows, &EntryRow{
			Key:   rec.Key,
			Date:  date,
			Entry: rec.Entry,
			Daily: a.calc.Daily(rec.Entry),
		})
	}
	return rows, nil
}

func (a *timesheetAPI) WeeklySummary(ctx context.Context) ([]accounting.WeeklySummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewTimeoutError("weekly summary", err)
	}
	return a.calc.Weekly(a.store.All()), nil
}

func (a *timesheetAPI) ExportCSV(ctx context.Context, w io.Writer) error {
	return a.exporter.CSV(ctx, w)
}

func (a *timesheetAPI) ExportXLSX(ctx context.Context, w io.Writer) error {
	return a.exporter.XLSX(ctx, w)
}
