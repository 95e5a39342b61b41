package app

import (
	"context"

	"filemanip/internal/adapters/filesystem"
	"filemanip/internal/domain"
	"filemanip/internal/logging"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	settings := cfg.Settings
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	// Create logger.
	level := logging.LogLevel(settings.LogLevel)
	if cfg.Verbose {
		level = logging.LevelDebug
	}
	logger := logging.NewLogger(logging.Config{
		Level:  level,
		Format: logging.Format(settings.LogFormat),
		Output: cfg.LogOutput,
	})

	// Create filesystem adapter.
	fs := filesystem.NewWithFs(cfg.Fs, filesystem.WithWriteMode(domain.WriteMode(settings.WriteMode)))

	logger.DebugContext(ctx, "Initializing filemanip with configuration",
		"logLevel", level,
		"verbose", cfg.Verbose,
		"writeMode", settings.WriteMode,
		"reverseUnit", settings.ReverseUnit,
		"maxOutputBytes", settings.MaxOutputBytes)

	return &App{
		FileSystem: fs,
		Logger:     logger,
		Settings:   &settings,
		Config:     cfg,
	}, nil
}
