package cli

import (
	"context"

	"ponto/internal/server"
)

// ServeCommand starts the HTTP API
type ServeCommand struct {
	app *App
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{app: app}
}

// Execute serves until ctx is cancelled. An optional argument overrides the address.
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	cfg := c.app.config
	addr := cfg.Server.Addr
	if len(args) > 0 && args[0] != "" {
		addr = args[0]
	}

	h := server.NewHandler(c.app.api, cfg.Export.CSVFilename, cfg.Export.XLSXFilename)
	srv := server.New(h, server.Options{
		Addr:           addr,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})
	return srv.Run(ctx)
}
