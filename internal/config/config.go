package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"ponto/internal/accounting"
)

// Config holds all configuration options for ponto
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	Accounting  AccountingConfig  `toml:"accounting"`
	Export      ExportConfig      `toml:"export"`
	Server      ServerConfig      `toml:"server"`
	Application ApplicationConfig `toml:"application"`
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	Dir            string        `toml:"dir" env:"PONTO_DB_DIR"`
	Filename       string        `toml:"filename" env:"PONTO_DB_FILENAME"`
	Slot           string        `toml:"slot" env:"PONTO_SLOT"`
	QueryTimeout   time.Duration `toml:"query_timeout" env:"PONTO_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `toml:"write_timeout" env:"PONTO_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `toml:"dir_permissions" env:"PONTO_DB_DIR_PERMISSIONS"`
}

// AccountingConfig holds the compliance thresholds in minutes
type AccountingConfig struct {
	DailyMinimum  int `toml:"daily_minimum" env:"PONTO_DAILY_MINIMUM"`
	WeeklyMinimum int `toml:"weekly_minimum" env:"PONTO_WEEKLY_MINIMUM"`
}

// ExportConfig holds CSV and XLSX export settings
type ExportConfig struct {
	CSVDelimiter string `toml:"csv_delimiter" env:"PONTO_CSV_DELIMITER"`
	CSVFilename  string `toml:"csv_filename" env:"PONTO_CSV_FILENAME"`
	XLSXFilename string `toml:"xlsx_filename" env:"PONTO_XLSX_FILENAME"`
}

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	Addr           string   `toml:"addr" env:"PONTO_SERVER_ADDR"`
	AllowedOrigins []string `toml:"allowed_origins" env:"PONTO_ALLOWED_ORIGINS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"timeout" env:"PONTO_APP_TIMEOUT"`
	Verbose bool          `toml:"verbose" env:"PONTO_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".ponto")

	return &Config{
		Storage: StorageConfig{
			Dir:            defaultDBDir,
			Filename:       "ponto.db",
			Slot:           "folhaDePonto",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Accounting: AccountingConfig{
			DailyMinimum:  360,
			WeeklyMinimum: 1800,
		},
		Export: ExportConfig{
			CSVDelimiter: ",",
			CSVFilename:  "folha_de_ponto.csv",
			XLSXFilename: "folha_de_ponto.xlsx",
		},
		Server: ServerConfig{
			Addr:           "127.0.0.1:8080",
			AllowedOrigins: []string{"*"},
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Storage.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Storage.WriteTimeout
}

// CSVComma returns the CSV delimiter as a rune
func (c *Config) CSVComma() rune {
	r, _ := utf8.DecodeRuneInString(c.Export.CSVDelimiter)
	return r
}

// Calculator returns the accounting thresholds as a calculator
func (c *Config) Calculator() accounting.Calculator {
	return accounting.Calculator{
		DailyMinimum:  c.Accounting.DailyMinimum,
		WeeklyMinimum: c.Accounting.WeeklyMinimum,
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("PONTO_DB_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("PONTO_DB_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if slot := os.Getenv("PONTO_SLOT"); slot != "" {
		c.Storage.Slot = slot
	}
	if timeout := os.Getenv("PONTO_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Storage.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("PONTO_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Storage.WriteTimeout = d
		}
	}
	if perms := os.Getenv("PONTO_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}

	// Accounting configuration
	if daily := os.Getenv("PONTO_DAILY_MINIMUM"); daily != "" {
		if n, err := strconv.Atoi(daily); err == nil {
			c.Accounting.DailyMinimum = n
		}
	}
	if weekly := os.Getenv("PONTO_WEEKLY_MINIMUM"); weekly != "" {
		if n, err := strconv.Atoi(weekly); err == nil {
			c.Accounting.WeeklyMinimum = n
		}
	}

	// Export configuration
	if delim := os.Getenv("PONTO_CSV_DELIMITER"); delim != "" {
		c.Export.CSVDelimiter = delim
	}
	if name := os.Getenv("PONTO_CSV_FILENAME"); name != "" {
		c.Export.CSVFilename = name
	}
	if name := os.Getenv("PONTO_XLSX_FILENAME"); name != "" {
		c.Export.XLSXFilename = name
	}

	// Server configuration
	if addr := os.Getenv("PONTO_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if origins := os.Getenv("PONTO_ALLOWED_ORIGINS"); origins != "" {
		c.Server.AllowedOrigins = splitList(origins)
	}

	// Application configuration
	if timeout := os.Getenv("PONTO_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("PONTO_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "database directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "database filename cannot be empty"}
	}
	if c.Storage.Slot == "" {
		return &ConfigError{Field: "storage.slot", Message: "storage slot cannot be empty"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate accounting configuration
	if c.Accounting.DailyMinimum <= 0 {
		return &ConfigError{Field: "accounting.daily_minimum", Message: "daily minimum must be positive"}
	}
	if c.Accounting.WeeklyMinimum < c.Accounting.DailyMinimum {
		return &ConfigError{Field: "accounting.weekly_minimum", Message: "weekly minimum must not be less than the daily minimum"}
	}

	// Validate export configuration
	if utf8.RuneCountInString(c.Export.CSVDelimiter) != 1 {
		return &ConfigError{Field: "export.csv_delimiter", Message: "csv delimiter must be a single character"}
	}
	if d := c.CSVComma(); d == '"' || d == '\r' || d == '\n' || d == utf8.RuneError {
		return &ConfigError{Field: "export.csv_delimiter", Message: "csv delimiter cannot be a quote or line break"}
	}
	if c.Export.CSVFilename == "" {
		return &ConfigError{Field: "export.csv_filename", Message: "csv filename cannot be empty"}
	}
	if c.Export.XLSXFilename == "" {
		return &ConfigError{Field: "export.xlsx_filename", Message: "xlsx filename cannot be empty"}
	}

	// Validate server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "server address cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
