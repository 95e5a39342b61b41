package commands

import (
	"context"
	"fmt"
	"log/slog"

	"filemanip/internal/domain"
	"filemanip/internal/errors"
	"filemanip/internal/transform"
)

// ReverseCommand writes the reversed content of one file to another.
type ReverseCommand struct {
	fs     domain.FileSystem
	logger *slog.Logger
}

// NewReverseCommand creates a new reverse command.
func NewReverseCommand(fs domain.FileSystem, logger *slog.Logger) *ReverseCommand {
	return &ReverseCommand{
		fs:     fs,
		logger: logger,
	}
}

// ReverseRequest contains the parameters for the reverse command.
type ReverseRequest struct {
	InputPath  string
	OutputPath string
	Unit       transform.Unit
}

// Execute runs the reverse command. InputPath and OutputPath may be equal.
func (c *ReverseCommand) Execute(ctx context.Context, req ReverseRequest) error {
	unit := req.Unit
	if unit == "" {
		unit = transform.UnitRune
	}
	if _, err := transform.ParseUnit(string(unit)); err != nil {
		return errors.NewInvalidArgumentError("unit", string(unit), err.Error(), nil)
	}

	c.logger.DebugContext(ctx, "Reversing file",
		"input", req.InputPath,
		"output", req.OutputPath,
		"unit", unit)

	content, err := readInput(c.fs, req.InputPath)
	if err != nil {
		return fmt.Errorf("failed to reverse file: %w", err)
	}

	reversed, err := transform.Reverse(content, unit)
	if err != nil {
		return fmt.Errorf("failed to reverse file: %w", err)
	}

	if err := writeOutput(ctx, c.fs, req.OutputPath, reversed); err != nil {
		return fmt.Errorf("failed to reverse file: %w", err)
	}

	c.logger.InfoContext(ctx, "Reversed file",
		"input", req.InputPath,
		"output", req.OutputPath,
		"bytes", len(reversed))
	return nil
}
