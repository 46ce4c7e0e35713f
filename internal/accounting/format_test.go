package accounting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "0h 0min"},
		{59, "0h 59min"},
		{480, "8h 0min"},
		{1835, "30h 35min"},
		{-30, "-1h -30min"},
		{-90, "-2h -30min"},
		{-120, "-2h 0min"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMinutes(tt.minutes))
		})
	}
}

func TestParseFormatted(t *testing.T) {
	tests := []struct {
		text     string
		expected int
		ok       bool
	}{
		{"8h 0min", 480, true},
		{"4h 35min", 275, true},
		{"-2h -30min", -150, true},
		{"-", 0, false},
		{"", 0, false},
		{"xh 5min", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseFormatted(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
