package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"ponto/internal/api"
	"ponto/internal/cli"
	"ponto/internal/config"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	factory := NewRepositoryFactory(GetEnvironment())

	root := cli.NewRootCommand(cfg, func(ctx context.Context, cfg *config.Config) (api.TimesheetAPI, io.Closer, error) {
		kv, closer, err := factory.CreateKV(cfg)
		if err != nil {
			return nil, nil, err
		}

		calc := cfg.Calculator()
		a := api.New(ctx, kv, api.Options{
			Slot:       cfg.Storage.Slot,
			Calculator: &calc,
			CSVComma:   cfg.CSVComma(),
		})
		return a, closer, nil
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}
}
