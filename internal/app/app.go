package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"filemanip/internal/config"
	"filemanip/internal/domain"
)

// App contains all application dependencies.
type App struct {
	// File access used by every operation
	FileSystem domain.FileSystem

	// Logging
	Logger *slog.Logger

	// Resolved settings
	Settings *config.Settings

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	Settings  config.Settings
	Verbose   bool
	LogOutput io.Writer
	Fs        afero.Fs
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithSettings replaces the default settings.
func WithSettings(settings config.Settings) Option {
	return func(cfg *Config) {
		cfg.Settings = settings
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
	}
}

// WithLogOutput sets the destination of log records.
func WithLogOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.LogOutput = w
	}
}

// WithFs sets the filesystem operations run against.
func WithFs(fs afero.Fs) Option {
	return func(cfg *Config) {
		cfg.Fs = fs
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		Settings:  config.Defaults(),
		Verbose:   false,
		LogOutput: os.Stderr,
		Fs:        afero.NewOsFs(),
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}
