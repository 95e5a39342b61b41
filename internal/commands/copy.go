package commands

import (
	"context"
	"fmt"
	"log/slog"

	"filemanip/internal/domain"
	"filemanip/internal/transform"
)

// CopyCommand copies one file to another byte for byte.
type CopyCommand struct {
	fs     domain.FileSystem
	logger *slog.Logger
}

// NewCopyCommand creates a new copy command.
func NewCopyCommand(fs domain.FileSystem, logger *slog.Logger) *CopyCommand {
	return &CopyCommand{
		fs:     fs,
		logger: logger,
	}
}

// CopyRequest contains the parameters for the copy command.
type CopyRequest struct {
	InputPath  string
	OutputPath string
}

// Execute runs the copy command.
func (c *CopyCommand) Execute(ctx context.Context, req CopyRequest) error {
	c.logger.DebugContext(ctx, "Copying file", "input", req.InputPath, "output", req.OutputPath)

	content, err := readInput(c.fs, req.InputPath)
	if err != nil {
		return fmt.Errorf("failed to copy file: %w", err)
	}

	if err := writeOutput(ctx, c.fs, req.OutputPath, transform.Copy(content)); err != nil {
		return fmt.Errorf("failed to copy file: %w", err)
	}

	c.logger.InfoContext(ctx, "Copied file",
		"input", req.InputPath,
		"output", req.OutputPath,
		"bytes", len(content))
	return nil
}
