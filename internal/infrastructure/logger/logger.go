// Package logger builds the service-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"internhub/board-api/internal/config"
)

// New creates the board service logger. Production emits machine-readable
// JSON for the log pipeline; everywhere else a console writer keeps local
// output scannable.
func New(cfg *config.Config) zerolog.Logger {
	var sink io.Writer = os.Stdout
	if cfg.Environment != "production" {
		sink = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(sink).
		Level(levelFor(cfg.LogLevel)).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()
}

func levelFor(raw string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil || raw == "" {
		return zerolog.InfoLevel
	}
	return level
}
