package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ponto/internal/api"
	"ponto/internal/errors"
)

// AddCommand records one day for one employee
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command. Arguments are positional:
// NAME DATE IN LUNCH_START LUNCH_END OUT [TRAVEL]. Missing trailing
// arguments are treated as blank fields.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 7 {
		return errors.NewInvalidInputError("command", "add", "usage: ponto add NAME DATE IN LUNCH_START LUNCH_END OUT [TRAVEL]")
	}

	fields := make([]string, 7)
	copy(fields, args)

	input := api.EntryInput{
		Name:       fields[0],
		Date:       fields[1],
		ClockIn:    fields[2],
		LunchStart: fields[3],
		LunchEnd:   fields[4],
		ClockOut:   fields[5],
	}
	if travel := strings.TrimSpace(fields[6]); travel != "" {
		minutes, err := strconv.Atoi(travel)
		if err != nil {
			return errors.NewInvalidInputError("travel", travel, "must be a whole number of minutes")
		}
		input.TravelMinutes = minutes
	}

	return c.save(ctx, input)
}

func (c *AddCommand) save(ctx context.Context, input api.EntryInput) error {
	saved, err := c.app.api.SaveEntry(ctx, input)
	if err != nil {
		return c.errorHandler.Handle("save entry", err)
	}

	style := c.app.styles.ForStatus(saved.Daily.Status)
	fmt.Fprintln(c.app.out, style.Render(saved.Message))
	return nil
}
