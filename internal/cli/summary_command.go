package cli

import (
	"context"
	"fmt"
)

// SummaryCommand prints the weekly load of each employee
type SummaryCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the summary command
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	summaries, err := c.app.api.WeeklySummary(ctx)
	if err != nil {
		return c.errorHandler.Handle("build weekly summary", err)
	}

	styles := c.app.styles
	fmt.Fprintln(c.app.out, styles.title.Render("Weekly summary"))

	if len(summaries) == 0 {
		fmt.Fprintln(c.app.out, styles.muted.Render("No entries found"))
		return nil
	}

	for _, s := range summaries {
		fmt.Fprintln(c.app.out, styles.ForStatus(s.Status).Render(s.Message))
	}
	return nil
}
