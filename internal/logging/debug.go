package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DebugEnvVar switches on debug output when set to any non-empty value
const DebugEnvVar = "PONTO_DEBUG"

var (
	mu      sync.Mutex
	logger  *log.Logger
	verbose bool
)

// DebugEnabled returns true if debug mode is enabled via PONTO_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// New creates a logger writing to w with the level derived from the environment
func New(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix:          "ponto",
		ReportTimestamp: true,
	})
	l.SetLevel(currentLevel())
	return l
}

// Logger returns the shared application logger
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = New(os.Stderr)
	}
	logger.SetLevel(currentLevel())
	return logger
}

// SetVerbose raises the shared logger to info level
func SetVerbose(v bool) {
	mu.Lock()
	verbose = v
	mu.Unlock()
}

// SetOutput redirects the shared logger, mostly for tests
func SetOutput(w io.Writer) {
	Logger().SetOutput(w)
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		Logger().Debugf(format, args...)
	}
}

// Debugln prints a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		Logger().Debug(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
	}
}

func currentLevel() log.Level {
	switch {
	case DebugEnabled():
		return log.DebugLevel
	case verbose:
		return log.InfoLevel
	default:
		return log.WarnLevel
	}
}
