// Package logging wraps zerolog behind a three-level surface
// (Info/Warn/Error) with structured field chaining.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Format selects the on-wire representation of log lines.
type Format string

const (
	// FormatJSON emits newline-delimited JSON, zerolog's native format.
	FormatJSON Format = "json"
	// FormatConsole emits zerolog's human-readable console writer output.
	FormatConsole Format = "console"
)

// Config configures a new Logger.
type Config struct {
	Level  string
	Format Format
	Output io.Writer
}

// Logger is a structured logger with the level methods this module's
// callers use, plus a With helper that chains structured fields.
type Logger struct {
	z zerolog.Logger
}

// New builds a Logger from cfg, defaulting to info/json/stdout.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	z := zerolog.New(out).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(cfg.Level); err == nil && cfg.Level != "" {
		z = z.Level(lvl)
	} else {
		z = z.Level(zerolog.InfoLevel)
	}

	return &Logger{z: z}
}

// With returns a child Logger carrying an additional structured field.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{z: l.z.With().Interface(key, value).Logger()}
}

// Info logs msg at info level.
func (l *Logger) Info(msg string) { l.z.Info().Msg(msg) }

// Warn logs msg at warn level.
func (l *Logger) Warn(msg string) { l.z.Warn().Msg(msg) }

// Error logs msg at error level with err attached.
func (l *Logger) Error(msg string, err error) { l.z.Error().Err(err).Msg(msg) }
