package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"ponto/internal/api"
	"ponto/internal/config"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api      api.TimesheetAPI
	config   *config.Config
	out      io.Writer
	styles   *Styles
	registry *CommandRegistry
}

// NewApp creates a new CLI application instance with default configuration
func NewApp(a api.TimesheetAPI) *App {
	return NewAppWithConfig(a, config.NewConfig())
}

// NewAppWithConfig creates a new CLI application instance with dependency injection
func NewAppWithConfig(a api.TimesheetAPI, cfg *config.Config) *App {
	app := &App{
		api:    a,
		config: cfg,
		out:    os.Stdout,
		styles: NewStyles(),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// SetOutput redirects command output
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Run executes the named command with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	return a.registry.Execute(ctx, args[0], args[1:])
}
