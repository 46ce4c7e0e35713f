package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"ponto/internal/api"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute prints the timesheet table
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	rows, err := c.app.api.ListEntries(ctx)
	if err != nil {
		return c.errorHandler.Handle("list entries", err)
	}

	if len(rows) == 0 {
		fmt.Fprintln(c.app.out, c.app.styles.muted.Render("No entries found"))
		return nil
	}

	fmt.Fprintln(c.app.out, c.renderTable(rows))
	return nil
}

// renderTable lays out one row per entry, coloring the status column
func (c *ListCommand) renderTable(rows []*api.EntryRow) string {
	styles := c.app.styles

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.border).
		Headers("Date", "Employee", "Clock In", "Lunch Start", "Lunch End", "Clock Out", "Total", "Status").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.header
			}
			if col == 7 && row >= 0 && row < len(rows) {
				return styles.ForStatus(rows[row].Daily.Status).Padding(0, 1)
			}
			return styles.cell
		})

	for _, r := range rows {
		t.Row(
			r.Date,
			r.Entry.Name,
			r.Entry.ClockIn,
			r.Entry.LunchStart,
			r.Entry.LunchEnd,
			r.Entry.ClockOut,
			r.Daily.Text,
			r.Daily.Message,
		)
	}

	return t.Render()
}
