// Package validation holds the pre-flight checks that run before any file is read or written.
package validation

import (
	"os"
	"strconv"
	"strings"

	"filemanip/internal/domain"
	"filemanip/internal/errors"
)

// PathExists fails with a FileNotFound error when path does not exist.
func PathExists(fs domain.FileSystem, path string) error {
	if _, err := fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.NewFileNotFoundError(path, err)
		}
		return errors.NewIOError("stat", path, err)
	}
	return nil
}

// PositiveInt parses raw as a base-10 integer greater than zero.
func PositiveInt(name, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.NewInvalidArgumentError(name, raw, "must be a positive integer", err)
	}
	if n <= 0 {
		return 0, errors.NewInvalidArgumentError(name, raw, "must be a positive integer", nil)
	}
	return n, nil
}

// NonEmpty rejects the empty string.
func NonEmpty(name, raw string) error {
	if raw == "" {
		return errors.NewInvalidArgumentError(name, raw, "must not be empty", nil)
	}
	return nil
}
