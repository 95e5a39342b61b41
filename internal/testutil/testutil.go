// Package testutil provides test utilities and constructors with pre-injected dependencies.
package testutil

import (
	"log/slog"
	"testing"

	"github.com/spf13/afero"

	"filemanip/internal/adapters/filesystem"
	"filemanip/internal/domain"
	"filemanip/internal/logging"
)

// Logger returns a test logger for use in tests.
func Logger() *slog.Logger {
	return logging.NewTestLogger()
}

// MemFS returns an in-memory filesystem seeded with files (path → content)
// and an adapter over it using the given write mode.
func MemFS(t testing.TB, files map[string]string, mode domain.WriteMode) (afero.Fs, *filesystem.Adapter) {
	t.Helper()

	memFs := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(memFs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to seed %s: %v", path, err)
		}
	}
	return memFs, filesystem.NewWithFs(memFs, filesystem.WithWriteMode(mode))
}

// ReadString returns the content of path in fs, failing the test on error.
func ReadString(t testing.TB, fs afero.Fs, path string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists in fs.
func Exists(t testing.TB, fs afero.Fs, path string) bool {
	t.Helper()

	ok, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatalf("failed to stat %s: %v", path, err)
	}
	return ok
}
