package domain

import (
	"os"
)

// WriteMode selects how a FileSystem replaces the content of a path.
type WriteMode string

const (
	// WriteModeAtomic writes to a temporary file next to the target and renames it into place.
	WriteModeAtomic WriteMode = "atomic"
	// WriteModeDirect truncates and rewrites the target in place.
	WriteModeDirect WriteMode = "direct"
)

// FileSystem defines the file access primitive used by every operation.
// Each operation performs at most one ReadFile and one WriteFile.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Stat(path string) (os.FileInfo, error)
}
