package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// TimeEntry is one person's clock record for one calendar day.
// JSON field names match the persisted "folhaDePonto" slot format.
type TimeEntry struct {
	Name          string        `json:"nome"`
	Date          string        `json:"data"`
	ClockIn       string        `json:"entrada"`
	LunchStart    string        `json:"almocoInicio"`
	LunchEnd      string        `json:"almocoFim"`
	ClockOut      string        `json:"saida"`
	TravelMinutes TravelMinutes `json:"viagem,omitempty"`
}

// Key returns the composite store key for the entry.
func (te TimeEntry) Key() string {
	return NewEntryKey(te.Date, te.Name)
}

// DisplayDate returns the entry date as DD/MM/YYYY.
func (te TimeEntry) DisplayDate() string {
	return DisplayDate(te.Date)
}

// IsComplete reports whether every required field is non-empty.
func (te TimeEntry) IsComplete() bool {
	return len(te.MissingFields()) == 0
}

// MissingFields lists the JSON names of required fields that are empty.
func (te TimeEntry) MissingFields() []string {
	var missing []string
	fields := []struct {
		name  string
		value string
	}{
		{"nome", te.Name},
		{"data", te.Date},
		{"entrada", te.ClockIn},
		{"almocoInicio", te.LunchStart},
		{"almocoFim", te.LunchEnd},
		{"saida", te.ClockOut},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// TravelMinutes is informational travel time. It never takes part in
// duration math. Older records store it as free text, so decoding never fails.
type TravelMinutes int

// UnmarshalJSON accepts a number or a numeric string and truncates fractions.
// Anything else, including null and empty text, decodes as 0.
func (m *TravelMinutes) UnmarshalJSON(data []byte) error {
	*m = 0

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		n, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
			*m = TravelMinutes(int(n))
		}
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*m = TravelMinutes(int(n))
	}
	return nil
}
