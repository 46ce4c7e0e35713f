package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"ponto/internal/errors"
)

// ExportCommand writes the persisted timesheet to a file or stdout
type ExportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute accepts "format=csv|xlsx" and "file=PATH" arguments. The file
// defaults to the configured export filename; "-" writes to stdout.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	format := "csv"
	file := ""

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return errors.NewInvalidInputError("argument", arg, "usage: ponto export [format=csv|xlsx] [file=PATH|-]")
		}
		switch key {
		case "format":
			format = strings.ToLower(value)
		case "file":
			file = value
		default:
			return errors.NewInvalidInputError("argument", arg, "unknown export option")
		}
	}

	var write func(context.Context, io.Writer) error
	switch format {
	case "csv":
		write = c.app.api.ExportCSV
		if file == "" {
			file = c.app.config.Export.CSVFilename
		}
	case "xlsx":
		write = c.app.api.ExportXLSX
		if file == "" {
			file = c.app.config.Export.XLSXFilename
		}
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}

	if file == "-" {
		if err := write(ctx, c.app.out); err != nil {
			return c.errorHandler.Handle("export", err)
		}
		return nil
	}

	f, err := os.Create(file)
	if err != nil {
		return c.errorHandler.Handle("export", errors.NewExportError(format, err))
	}
	defer f.Close()

	if err := write(ctx, f); err != nil {
		return c.errorHandler.Handle("export", err)
	}
	if err := f.Close(); err != nil {
		return c.errorHandler.Handle("export", errors.NewExportError(format, err))
	}

	fmt.Fprintf(c.app.out, "Exported to %s\n", file)
	return nil
}
