package validation

import (
	"strings"
	"time"

	"ponto/internal/domain"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidDate checks for a real YYYY-MM-DD calendar date
func (v *Validator) IsValidDate(s string) bool {
	_, err := time.Parse(domain.ISODateLayout, strings.TrimSpace(s))
	return err == nil
}

// IsValidClock checks for an HH:MM time of day
func (v *Validator) IsValidClock(s string) bool {
	_, err := domain.ParseClock(s)
	return err == nil
}

// IsValidTravelMinutes rejects negative travel time
func (v *Validator) IsValidTravelMinutes(m int) bool {
	return m >= 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
