package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   LogLevel
		enabled slog.Level
		muted   slog.Level
	}{
		{name: "debug_level", level: LevelDebug, enabled: slog.LevelDebug, muted: slog.LevelDebug - 1},
		{name: "info_level", level: LevelInfo, enabled: slog.LevelInfo, muted: slog.LevelDebug},
		{name: "warn_level", level: LevelWarn, enabled: slog.LevelWarn, muted: slog.LevelInfo},
		{name: "error_level", level: LevelError, enabled: slog.LevelError, muted: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(Config{Level: tt.level, Format: FormatText, Output: &buf})
			require.NotNil(t, logger)

			ctx := context.Background()
			assert.True(t, logger.Enabled(ctx, tt.enabled))
			assert.False(t, logger.Enabled(ctx, tt.muted))
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, LevelWarn, config.Level)
	assert.Equal(t, FormatAuto, config.Format)
	assert.NotNil(t, config.Output)
}

func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelInfo, Format: FormatText, Output: &buf})

	logger.InfoContext(context.Background(), "test message", "key", "value")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key=value")
	assert.Contains(t, output, "INFO")
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	logger.InfoContext(context.Background(), "json message", "operation", "reverse")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "json message", entry["msg"])
	assert.Equal(t, "reverse", entry["operation"])
}

func TestNewLogger_AutoFormatNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelInfo, Format: FormatAuto, Output: &buf})

	logger.Info("auto message")

	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "non-terminal output should be JSON, got %q", buf.String())
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "info", "warn", "error"} {
		level, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, LogLevel(name), level)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"auto", "text", "json"} {
		format, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), format)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger()
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, slog.LevelError))
}
