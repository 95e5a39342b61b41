// Package logging provides centralized logger creation for the filemanip application.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"filemanip/internal/adapters/terminal"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// Format selects the slog handler.
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds logger configuration
type Config struct {
	Level  LogLevel
	Format Format
	Output io.Writer
}

// DefaultConfig returns a default logger configuration.
// Warnings and errors only, so a successful run prints nothing but its confirmation.
func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Format: FormatAuto,
		Output: os.Stderr,
	}
}

// ParseLevel converts a level name into a LogLevel.
func ParseLevel(name string) (LogLevel, error) {
	switch LogLevel(name) {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return LogLevel(name), nil
	default:
		return "", fmt.Errorf("unknown log level %q (supported: debug, info, warn, error)", name)
	}
}

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatAuto, FormatText, FormatJSON:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown log format %q (supported: auto, text, json)", name)
	}
}

// SlogLevel maps a LogLevel to the slog equivalent.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger creates a structured logger.
// The auto format writes text to terminals and JSON everywhere else.
func NewLogger(config Config) *slog.Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: config.Level.SlogLevel(),
	}

	format := config.Format
	if format == FormatAuto || format == "" {
		if terminal.IsTerminal(output) {
			format = FormatText
		} else {
			format = FormatJSON
		}
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}
	return slog.New(handler)
}

// NewTestLogger creates a silent logger for tests.
func NewTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError + 1, // Higher than any real level = silent
	}
	return slog.New(slog.NewTextHandler(io.Discard, opts))
}
