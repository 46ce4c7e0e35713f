package validation

import (
	"ponto/internal/domain"
)

// EntryValidator checks a form submission before it reaches the store
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{validator: NewValidator()}
}

// NormalizeEntry trims whitespace from every text field
func (ev *EntryValidator) NormalizeEntry(entry domain.TimeEntry) domain.TimeEntry {
	v := ev.validator
	entry.Name = v.TrimAndValidateString(entry.Name)
	entry.Date = v.TrimAndValidateString(entry.Date)
	entry.ClockIn = v.TrimAndValidateString(entry.ClockIn)
	entry.LunchStart = v.TrimAndValidateString(entry.LunchStart)
	entry.LunchEnd = v.TrimAndValidateString(entry.LunchEnd)
	entry.ClockOut = v.TrimAndValidateString(entry.ClockOut)
	return entry
}

// ValidateEntry requires all six form fields, a YYYY-MM-DD date, HH:MM times
// and non-negative travel minutes. Time order is not checked: a clock-out
// before clock-in is stored and reported as a negative total.
func (ev *EntryValidator) ValidateEntry(entry domain.TimeEntry) error {
	validationError := NewValidationError()

	for _, field := range entry.MissingFields() {
		validationError.AddRequiredError(field)
	}

	if ev.validator.IsNonEmptyString(entry.Date) && !ev.validator.IsValidDate(entry.Date) {
		validationError.AddInvalidFormatError("data", entry.Date, "YYYY-MM-DD")
	}

	clocks := []struct {
		field string
		value string
	}{
		{"entrada", entry.ClockIn},
		{"almocoInicio", entry.LunchStart},
		{"almocoFim", entry.LunchEnd},
		{"saida", entry.ClockOut},
	}
	for _, c := range clocks {
		if ev.validator.IsNonEmptyString(c.value) && !ev.validator.IsValidClock(c.value) {
			validationError.AddInvalidFormatError(c.field, c.value, "HH:MM")
		}
	}

	if !ev.validator.IsValidTravelMinutes(int(entry.TravelMinutes)) {
		validationError.AddInvalidValueError("viagem", int(entry.TravelMinutes), "must not be negative")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
