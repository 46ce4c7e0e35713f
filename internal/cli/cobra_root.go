package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ponto/internal/api"
	"ponto/internal/config"
	"ponto/internal/domain"
	"ponto/internal/logging"
)

// APIFactory builds the API once flags have been applied to the configuration.
// The returned closer releases the persistence backend.
type APIFactory func(ctx context.Context, cfg *config.Config) (api.TimesheetAPI, io.Closer, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	config  *config.Config
	factory APIFactory
	app     *App
	closer  io.Closer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, factory APIFactory) *RootCommand {
	root := &RootCommand{
		config:  cfg,
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "ponto",
		Short: "A timesheet for daily and weekly working hours",
		Long: `Ponto records daily clock entries and checks them against the required load.

FEATURES:
  • Record clock in, lunch and clock out times per employee and day
  • Daily verdict against a 6h minimum, weekly verdict against 30h
  • Export the timesheet to CSV or XLSX
  • Serve the same operations over an HTTP JSON API

EXAMPLES:
  ponto add --name Ana --in 08:00 --lunch-start 12:00 --lunch-end 13:00 --out 17:00
  ponto add Ana 2024-05-06 08:00 12:00 13:00 17:00     # Positional form
  ponto list                                           # Table of all entries
  ponto summary                                        # Weekly load per employee
  ponto export format=csv                              # Write folha_de_ponto.csv
  ponto export format=xlsx --file -  > ponto.xlsx      # Write XLSX to stdout
  ponto serve --addr :8080                             # Start the HTTP API

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  Config file: ~/.ponto/config.toml (override with PONTO_CONFIG)

  Storage:
    PONTO_DB_DIR                 Database directory (default: ~/.ponto)
    PONTO_DB_FILENAME            Database filename (default: ponto.db)
    PONTO_SLOT                   Storage slot (default: folhaDePonto)
    PONTO_DB_QUERY_TIMEOUT       Query timeout (default: 10s)
    PONTO_DB_WRITE_TIMEOUT       Write timeout (default: 5s)

  Accounting:
    PONTO_DAILY_MINIMUM          Daily minimum in minutes (default: 360)
    PONTO_WEEKLY_MINIMUM         Weekly minimum in minutes (default: 1800)

  Export:
    PONTO_CSV_DELIMITER          CSV delimiter (default: ,)
    PONTO_CSV_FILENAME           CSV file (default: folha_de_ponto.csv)
    PONTO_XLSX_FILENAME          XLSX file (default: folha_de_ponto.xlsx)

  Server:
    PONTO_SERVER_ADDR            Listen address (default: 127.0.0.1:8080)
    PONTO_ALLOWED_ORIGINS        Comma separated CORS origins (default: *)

  Application:
    PONTO_APP_TIMEOUT            Application timeout (default: 60s)
    PONTO_APP_VERBOSE            Enable verbose output (default: false)
    PONTO_DEBUG                  Enable debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			return root.initApp(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if root.closer != nil {
				return root.closer.Close()
			}
			return nil
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides PONTO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides PONTO_DB_FILENAME)")
	flags.String("slot", "", "Storage slot (overrides PONTO_SLOT)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides PONTO_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides PONTO_DB_WRITE_TIMEOUT)")
	flags.String("csv-delimiter", "", "CSV delimiter (overrides PONTO_CSV_DELIMITER)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides PONTO_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides PONTO_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	var (
		name, date, clockIn, lunchStart, lunchEnd, clockOut string
		travel                                              int
	)

	addCmd := &cobra.Command{
		Use:   "add [NAME DATE IN LUNCH_START LUNCH_END OUT [TRAVEL]]",
		Short: "Record a working day",
		Long: `Record clock in, lunch and clock out times for one employee on one day.

A second entry for the same employee and date replaces the first.
All fields are required. The date defaults to today when using flags.`,
		Args: cobra.MaximumNArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			if len(args) == 0 {
				if date == "" {
					date = timeNow().Format(domain.ISODateLayout)
				}
				args = []string{name, date, clockIn, lunchStart, lunchEnd, clockOut, fmt.Sprint(travel)}
			}
			return r.app.registry.Execute(ctx, "add", args)
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Employee name")
	addCmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&clockIn, "in", "", "Clock in time (HH:MM)")
	addCmd.Flags().StringVar(&lunchStart, "lunch-start", "", "Lunch start time (HH:MM)")
	addCmd.Flags().StringVar(&lunchEnd, "lunch-end", "", "Lunch end time (HH:MM)")
	addCmd.Flags().StringVar(&clockOut, "out", "", "Clock out time (HH:MM)")
	addCmd.Flags().IntVar(&travel, "travel", 0, "Travel minutes (informational)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all entries with their daily totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()
			return r.app.registry.Execute(ctx, "list", args)
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the weekly load of each employee",
		Long: `Sum the weekday totals of each employee and compare them with the weekly minimum.

Saturday and Sunday entries and incomplete entries are not counted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()
			return r.app.registry.Execute(ctx, "summary", args)
		},
	}

	var exportFile string
	exportCmd := &cobra.Command{
		Use:   "export [format=csv|xlsx]",
		Short: "Export the timesheet",
		Long: `Export the saved timesheet as CSV (default) or XLSX.

Examples:
  ponto export                         # folha_de_ponto.csv in the current directory
  ponto export format=xlsx             # folha_de_ponto.xlsx
  ponto export format=csv --file -     # CSV on stdout`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()
			if exportFile != "" {
				args = append(args, "file="+exportFile)
			}
			return r.app.registry.Execute(ctx, "export", args)
		},
	}
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Output path, or - for stdout")

	var addr string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the timesheet over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Runs until interrupted, so no application timeout applies.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return r.app.registry.Execute(ctx, "serve", []string{addr})
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides PONTO_SERVER_ADDR)")

	r.cmd.AddCommand(addCmd, listCmd, summaryCmd, exportCmd, serveCmd)
}

// initApp builds the API from the final configuration
func (r *RootCommand) initApp(cmd *cobra.Command) error {
	if r.factory == nil {
		return fmt.Errorf("no API factory configured")
	}

	logging.SetVerbose(r.config.Application.Verbose)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, closer, err := r.factory(ctx, r.config)
	if err != nil {
		return err
	}

	r.closer = closer
	r.app = NewAppWithConfig(a, r.config)
	r.app.SetOutput(cmd.OutOrStdout())
	return nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Storage.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Storage.Filename = dbFilename
	}
	if slot, _ := flags.GetString("slot"); slot != "" {
		r.config.Storage.Slot = slot
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Storage.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		r.config.Storage.WriteTimeout = writeTimeout
	}
	if delim, _ := flags.GetString("csv-delimiter"); delim != "" {
		r.config.Export.CSVDelimiter = delim
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return r.config.Validate()
}
