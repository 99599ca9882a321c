// SPDX-License-Identifier: MIT

// Package logging builds the zerolog logger used by the nmfrun driver.
//
// The library packages (matrix, nmf, reference, plot) never log; the driver
// receives their progress through callbacks and writes it here.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats accepted by Config.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config holds logger settings.
type Config struct {
	// Level is one of trace, debug, info, warn, error, fatal, panic, disabled.
	Level string
	// Format is FormatJSON or FormatConsole.
	Format string
	// Caller adds file:line to each event.
	Caller bool
	// Timestamp adds the time field to each event.
	Timestamp bool
	// Output defaults to os.Stderr; stdout is reserved for plot payloads.
	Output io.Writer
}

// DefaultConfig returns info-level JSON logging to stderr with timestamps.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    FormatJSON,
		Caller:    false,
		Timestamp: true,
		Output:    os.Stderr,
	}
}

// New builds a logger from cfg. Unknown levels fall back to info and
// unknown formats to JSON.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(cfg.Format, FormatConsole) {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}

	logger := zerolog.New(out).Level(parseLevel(cfg.Level))
	if cfg.Timestamp {
		logger = logger.With().Timestamp().Logger()
	}
	if cfg.Caller {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// parseLevel maps a level name to a zerolog.Level, defaulting to info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
