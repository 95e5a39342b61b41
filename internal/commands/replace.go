package commands

import (
	"context"
	"fmt"
	"log/slog"

	"filemanip/internal/domain"
	"filemanip/internal/transform"
	"filemanip/internal/validation"
)

// ReplaceCommand substitutes a literal string throughout a file in place.
type ReplaceCommand struct {
	fs     domain.FileSystem
	logger *slog.Logger
}

// NewReplaceCommand creates a new replace-string command.
func NewReplaceCommand(fs domain.FileSystem, logger *slog.Logger) *ReplaceCommand {
	return &ReplaceCommand{
		fs:     fs,
		logger: logger,
	}
}

// ReplaceRequest contains the parameters for the replace-string command.
type ReplaceRequest struct {
	InputPath   string
	Needle      string
	Replacement string
}

// ReplaceResult reports what the replace-string command changed.
type ReplaceResult struct {
	Replacements int
}

// Execute runs the replace-string command. The file is rewritten even when
// the needle does not occur.
func (c *ReplaceCommand) Execute(ctx context.Context, req ReplaceRequest) (*ReplaceResult, error) {
	if err := validation.PathExists(c.fs, req.InputPath); err != nil {
		return nil, fmt.Errorf("failed to replace string: %w", err)
	}
	if err := validation.NonEmpty("needle", req.Needle); err != nil {
		return nil, fmt.Errorf("failed to replace string: %w", err)
	}

	c.logger.DebugContext(ctx, "Replacing string",
		"input", req.InputPath,
		"needle", req.Needle,
		"replacement", req.Replacement)

	content, err := c.fs.ReadFile(req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to replace string: %w", err)
	}

	updated, count := transform.Replace(content, []byte(req.Needle), []byte(req.Replacement))

	if err := writeOutput(ctx, c.fs, req.InputPath, updated); err != nil {
		return nil, fmt.Errorf("failed to replace string: %w", err)
	}

	c.logger.InfoContext(ctx, "Replaced string", "input", req.InputPath, "replacements", count)
	return &ReplaceResult{Replacements: count}, nil
}
