package commands

import (
	"context"
	"fmt"

	"filemanip/internal/domain"
	"filemanip/internal/validation"
)

// readInput checks that path exists and loads its whole content.
func readInput(fs domain.FileSystem, path string) ([]byte, error) {
	if err := validation.PathExists(fs, path); err != nil {
		return nil, err
	}
	return fs.ReadFile(path)
}

// writeOutput writes data to path unless ctx is already done.
func writeOutput(ctx context.Context, fs domain.FileSystem, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("operation cancelled before writing %s: %w", path, err)
	}
	return fs.WriteFile(path, data)
}
