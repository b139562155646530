package app

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is prepended to all log messages.
	Prefix string
	// JSON switches to the JSON formatter.
	JSON bool
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  "info",
		Output: os.Stderr,
		Prefix: "strokemap",
	}
}

// ParseLogLevel converts a level name to a log.Level. Unknown names map
// to info.
func ParseLogLevel(s string) log.Level {
	switch strings.ToLower(s) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// NewLogger creates a logger from cfg.
func NewLogger(cfg LoggerConfig) *log.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	l := log.NewWithOptions(cfg.Output, log.Options{
		Level:           ParseLogLevel(cfg.Level),
		Prefix:          cfg.Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	if cfg.JSON {
		l.SetFormatter(log.JSONFormatter)
	}
	return l
}
