package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestUsageError(t *testing.T) {
	err := NewArityError("reverse", 2, "<inputpath> <outputpath>", 1)

	expectedMsg := "reverse requires exactly 2 arguments: <inputpath> <outputpath>, got 1"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsUsage(err) {
		t.Error("Expected arity error to be identified as usage error")
	}

	if IsFileNotFound(err) {
		t.Error("Expected arity error not to match ErrFileNotFound")
	}
}

func TestUnknownCommandError(t *testing.T) {
	err := NewUnknownCommandError("frobnicate")

	expectedMsg := `unknown command "frobnicate"`
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if err.Command != "frobnicate" {
		t.Errorf("Expected command to be recorded, got %q", err.Command)
	}
}

func TestFileNotFoundError(t *testing.T) {
	err := NewFileNotFoundError("nonexistent.txt", fs.ErrNotExist)

	expectedMsg := "file does not exist: nonexistent.txt"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsFileNotFound(err) {
		t.Error("Expected FileNotFoundError to be identified as file not found")
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("Expected FileNotFoundError to wrap the underlying cause")
	}
}

func TestInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError("n", "-3", "must be a positive integer", nil)

	expectedMsg := `invalid value "-3" for n: must be a positive integer`
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsInvalidArgument(err) {
		t.Error("Expected InvalidArgumentError to be identified as invalid argument")
	}

	unnamed := NewInvalidArgumentError("", "", "needle must not be empty", nil)
	if unnamed.Error() != "invalid argument: needle must not be empty" {
		t.Errorf("Unexpected message for unnamed argument: %q", unnamed.Error())
	}
}

func TestIOError(t *testing.T) {
	cause := fs.ErrPermission
	err := NewIOError("write", "/root/out.txt", cause)

	expectedMsg := "failed to write /root/out.txt: permission denied"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsIO(err) {
		t.Error("Expected IOError to be identified as I/O error")
	}

	if !errors.Is(err, fs.ErrPermission) {
		t.Error("Expected IOError to wrap the underlying cause")
	}
}

func TestConfigurationError(t *testing.T) {
	cause := errors.New("yaml: unknown field")
	err := NewConfigurationError("write_mode", "sideways", "must be one of: atomic, direct", cause)

	expectedMsg := "configuration error in field 'write_mode': must be one of: atomic, direct"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsConfiguration(err) {
		t.Error("Expected ConfigurationError to be identified as configuration error")
	}

	if !errors.Is(err, cause) {
		t.Error("Expected ConfigurationError to wrap the underlying cause")
	}
}

func TestClassificationSurvivesWrapping(t *testing.T) {
	base := NewFileNotFoundError("in.txt", nil)
	wrapped := fmt.Errorf("reverse failed: %w", base)

	if !IsFileNotFound(wrapped) {
		t.Error("Expected wrapped error to keep its category")
	}

	var target *FileNotFoundError
	if !errors.As(wrapped, &target) {
		t.Fatal("Expected errors.As to find FileNotFoundError")
	}
	if target.Path != "in.txt" {
		t.Errorf("Expected path in.txt, got %q", target.Path)
	}
}

func TestJoin(t *testing.T) {
	if Join(nil, nil) != nil {
		t.Error("Expected Join of nils to be nil")
	}

	single := errors.New("only")
	if Join(nil, single) != single {
		t.Error("Expected Join of one error to return it unchanged")
	}

	writeErr := NewIOError("write", "out.txt", errors.New("disk full"))
	cleanupErr := errors.New("remove temp file")
	joined := Join(writeErr, cleanupErr)

	if !IsIO(joined) {
		t.Error("Expected joined error to match ErrIO")
	}
	if !errors.Is(joined, cleanupErr) {
		t.Error("Expected joined error to contain the cleanup error")
	}

	expectedMsg := "failed to write out.txt: disk full (and 1 more errors)"
	if joined.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, joined.Error())
	}
}

func TestKindAndExitCode(t *testing.T) {
	tests := []struct {
		err      error
		kind     string
		exitCode int
	}{
		{nil, "", 0},
		{NewUnknownCommandError("x"), "UsageError", 1},
		{NewFileNotFoundError("x", nil), "FileNotFound", 1},
		{NewInvalidArgumentError("n", "abc", "not a number", nil), "InvalidArgument", 1},
		{NewIOError("read", "x", nil), "IOError", 1},
		{NewConfigurationError("", "", "bad", nil), "ConfigurationError", 1},
		{errors.New("plain"), "error", 1},
	}

	for _, test := range tests {
		if got := Kind(test.err); got != test.kind {
			t.Errorf("Kind(%v) = %q, want %q", test.err, got, test.kind)
		}
		if got := ExitCode(test.err); got != test.exitCode {
			t.Errorf("ExitCode(%v) = %d, want %d", test.err, got, test.exitCode)
		}
	}
}
