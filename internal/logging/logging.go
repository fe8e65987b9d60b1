// Package logging builds the application's zerolog loggers from
// configuration. Components receive a child logger tagged with their
// component name rather than sharing one anonymous logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", "warn", "error").
	// Unparseable values fall back to info.
	Level string `yaml:"level"`

	// Format selects "console" (human-readable) or "json" output.
	Format string `yaml:"format"`

	// File, when set, appends logs to the given path instead of stderr.
	File string `yaml:"file"`
}

// Format values.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New constructs a logger from cfg. The returned closer is non-nil
// only when a log file was opened; callers close it on shutdown.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	var closer io.Closer

	if cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if openErr != nil {
			return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", openErr)
		}
		out = f
		closer = f
	}

	if strings.EqualFold(cfg.Format, FormatConsole) || cfg.Format == "" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return logger, closer, nil
}

// Component returns a child logger tagged with the component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
