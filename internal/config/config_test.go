package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "ponto.db", cfg.Storage.Filename)
	assert.Equal(t, "folhaDePonto", cfg.Storage.Slot)
	assert.Equal(t, 360, cfg.Accounting.DailyMinimum)
	assert.Equal(t, 1800, cfg.Accounting.WeeklyMinimum)
	assert.Equal(t, ',', cfg.CSVComma())
	assert.Equal(t, "folha_de_ponto.csv", cfg.Export.CSVFilename)
	assert.Equal(t, "folha_de_ponto.xlsx", cfg.Export.XLSXFilename)
	assert.Equal(t, filepath.Join(cfg.Storage.Dir, "ponto.db"), cfg.GetDatabasePath())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PONTO_DB_DIR", "/tmp/ponto-test")
	t.Setenv("PONTO_SLOT", "outroSlot")
	t.Setenv("PONTO_DB_QUERY_TIMEOUT", "3s")
	t.Setenv("PONTO_DB_DIR_PERMISSIONS", "700")
	t.Setenv("PONTO_DAILY_MINIMUM", "480")
	t.Setenv("PONTO_WEEKLY_MINIMUM", "2400")
	t.Setenv("PONTO_CSV_DELIMITER", ";")
	t.Setenv("PONTO_ALLOWED_ORIGINS", "http://localhost:3000, https://ponto.example")
	t.Setenv("PONTO_APP_VERBOSE", "true")
	t.Setenv("PONTO_APP_TIMEOUT", "not-a-duration")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/ponto-test", cfg.Storage.Dir)
	assert.Equal(t, "outroSlot", cfg.Storage.Slot)
	assert.Equal(t, 3*time.Second, cfg.Storage.QueryTimeout)
	assert.Equal(t, uint32(0700), cfg.Storage.DirPermissions)
	assert.Equal(t, 480, cfg.Accounting.DailyMinimum)
	assert.Equal(t, 2400, cfg.Accounting.WeeklyMinimum)
	assert.Equal(t, ';', cfg.CSVComma())
	assert.Equal(t, []string{"http://localhost:3000", "https://ponto.example"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Application.Verbose)
	// Unparseable values keep the default.
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"empty dir", func(c *Config) { c.Storage.Dir = "" }, "storage.dir"},
		{"empty slot", func(c *Config) { c.Storage.Slot = "" }, "storage.slot"},
		{"zero query timeout", func(c *Config) { c.Storage.QueryTimeout = 0 }, "storage.query_timeout"},
		{"zero daily minimum", func(c *Config) { c.Accounting.DailyMinimum = 0 }, "accounting.daily_minimum"},
		{"weekly below daily", func(c *Config) { c.Accounting.WeeklyMinimum = 100 }, "accounting.weekly_minimum"},
		{"two char delimiter", func(c *Config) { c.Export.CSVDelimiter = ";;" }, "export.csv_delimiter"},
		{"quote delimiter", func(c *Config) { c.Export.CSVDelimiter = `"` }, "export.csv_delimiter"},
		{"empty csv filename", func(c *Config) { c.Export.CSVFilename = "" }, "export.csv_filename"},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"zero app timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			configErr, ok := err.(*ConfigError)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, configErr.Field)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[storage]
slot = "folhaDePontoTeste"
query_timeout = "2s"

[accounting]
daily_minimum = 480

[export]
csv_delimiter = ";"

[server]
allowed_origins = ["http://localhost:5173"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromFile(path))

	assert.Equal(t, "folhaDePontoTeste", cfg.Storage.Slot)
	assert.Equal(t, 2*time.Second, cfg.Storage.QueryTimeout)
	assert.Equal(t, 480, cfg.Accounting.DailyMinimum)
	assert.Equal(t, 1800, cfg.Accounting.WeeklyMinimum, "keys absent from the file keep defaults")
	assert.Equal(t, ';', cfg.CSVComma())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
}

func TestLoadFromFile_Missing(t *testing.T) {
	cfg := NewConfig()
	assert.NoError(t, cfg.LoadFromFile(filepath.Join(t.TempDir(), "absent.toml")))
	assert.Equal(t, NewConfig().Storage.Slot, cfg.Storage.Slot)
}

func TestLoadFromFile_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage]\nslott = \"x\"\n"), 0644))

	err := NewConfig().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slott")
}

func TestLoadFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage\n"), 0644))

	assert.Error(t, NewConfig().LoadFromFile(path))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := NewConfig()
	cfg.Storage.Slot = "salvo"
	cfg.Accounting.DailyMinimum = 420
	require.NoError(t, cfg.Save(path))

	loaded := NewConfig()
	require.NoError(t, loaded.LoadFromFile(path))
	assert.Equal(t, "salvo", loaded.Storage.Slot)
	assert.Equal(t, 420, loaded.Accounting.DailyMinimum)
	assert.Equal(t, cfg.Storage.QueryTimeout, loaded.Storage.QueryTimeout)
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv(ConfigFileEnvVar, "/etc/ponto.toml")

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/ponto.toml", path)
}

func TestCalculatorFromConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Accounting.DailyMinimum = 480
	cfg.Accounting.WeeklyMinimum = 2400

	calc := cfg.Calculator()
	assert.Equal(t, 480, calc.DailyMinimum)
	assert.Equal(t, 2400, calc.WeeklyMinimum)
}
