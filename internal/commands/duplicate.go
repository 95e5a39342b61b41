package commands

import (
	"context"
	"fmt"
	"log/slog"

	"filemanip/internal/domain"
	"filemanip/internal/errors"
	"filemanip/internal/transform"
	"filemanip/internal/validation"
)

// DuplicateCommand overwrites a file with its content repeated n times.
type DuplicateCommand struct {
	fs             domain.FileSystem
	logger         *slog.Logger
	maxOutputBytes int64
}

// NewDuplicateCommand creates a new duplicate-contents command.
// A maxOutputBytes of zero disables the size limit.
func NewDuplicateCommand(fs domain.FileSystem, logger *slog.Logger, maxOutputBytes int64) *DuplicateCommand {
	return &DuplicateCommand{
		fs:             fs,
		logger:         logger,
		maxOutputBytes: maxOutputBytes,
	}
}

// DuplicateRequest contains the parameters for the duplicate-contents command.
// Count is the raw, unvalidated repetition argument.
type DuplicateRequest struct {
	InputPath string
	Count     string
}

// Execute runs the duplicate-contents command.
func (c *DuplicateCommand) Execute(ctx context.Context, req DuplicateRequest) error {
	if err := validation.PathExists(c.fs, req.InputPath); err != nil {
		return fmt.Errorf("failed to duplicate contents: %w", err)
	}
	n, err := validation.PositiveInt("n", req.Count)
	if err != nil {
		return fmt.Errorf("failed to duplicate contents: %w", err)
	}

	c.logger.DebugContext(ctx, "Duplicating file contents", "input", req.InputPath, "n", n)

	content, err := c.fs.ReadFile(req.InputPath)
	if err != nil {
		return fmt.Errorf("failed to duplicate contents: %w", err)
	}

	size, ok := transform.DuplicatedSize(len(content), n, c.maxOutputBytes)
	if !ok {
		return fmt.Errorf("failed to duplicate contents: %w", errors.NewInvalidArgumentError("n", req.Count,
			fmt.Sprintf("result would exceed the %d byte output limit", c.maxOutputBytes), nil))
	}

	if err := writeOutput(ctx, c.fs, req.InputPath, transform.Duplicate(content, n)); err != nil {
		return fmt.Errorf("failed to duplicate contents: %w", err)
	}

	c.logger.InfoContext(ctx, "Duplicated file contents", "input", req.InputPath, "n", n, "bytes", size)
	return nil
}
