package cli

import (
	"github.com/charmbracelet/lipgloss"

	"ponto/internal/domain"
)

// Styles holds the lipgloss styles used for terminal output
type Styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	cell     lipgloss.Style
	notMet   lipgloss.Style
	met      lipgloss.Style
	muted    lipgloss.Style
	border   lipgloss.Style
	errStyle lipgloss.Style
}

// NewStyles creates the default palette
func NewStyles() *Styles {
	return &Styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		header:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
		cell:     lipgloss.NewStyle().Padding(0, 1),
		notMet:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		met:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		border:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		errStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// ForStatus returns the style for a compliance status
func (s *Styles) ForStatus(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusNotMet:
		return s.notMet
	case domain.StatusMet, domain.StatusExceeded:
		return s.met
	default:
		return s.muted
	}
}

// RenderError formats an error for the terminal
func RenderError(err error) string {
	return NewStyles().errStyle.Render("Error: " + err.Error())
}
