// Package errors provides custom error types and utilities for filemanip.
//
// Every failure the tool can report belongs to one of these kinds:
// - Usage errors (missing/unknown command, wrong argument count)
// - File-not-found errors
// - Invalid argument errors
// - I/O errors
// - Configuration errors
package errors

import (
	"errors"
	"fmt"
)

// Error categories for filemanip operations
var (
	ErrUsage           = errors.New("usage error")
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIO              = errors.New("i/o error")
	ErrConfiguration   = errors.New("configuration error")
)

// UsageError represents a malformed invocation.
type UsageError struct {
	Command string
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// NewUsageError creates a new usage error
func NewUsageError(command, message string) *UsageError {
	return &UsageError{
		Command: command,
		Message: message,
	}
}

// NewUnknownCommandError creates a usage error for an unrecognized command name
func NewUnknownCommandError(command string) *UsageError {
	return NewUsageError(command, fmt.Sprintf("unknown command %q", command))
}

// NewArityError creates a usage error for a command invoked with the wrong number of arguments
func NewArityError(command string, want int, synopsis string, got int) *UsageError {
	return NewUsageError(command, fmt.Sprintf(
		"%s requires exactly %d arguments: %s, got %d", command, want, synopsis, got))
}

// IsUsage checks if an error is usage-related
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

// FileNotFoundError represents a referenced input path that does not exist
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file does not exist: %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() error {
	return e.Err
}

func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

// NewFileNotFoundError creates a new file-not-found error
func NewFileNotFoundError(path string, err error) *FileNotFoundError {
	return &FileNotFoundError{
		Path: path,
		Err:  err,
	}
}

// IsFileNotFound checks if an error represents a missing input file
func IsFileNotFound(err error) bool {
	return errors.Is(err, ErrFileNotFound)
}

// InvalidArgumentError represents an argument that failed validation
type InvalidArgumentError struct {
	Name    string
	Value   string
	Message string
	Err     error
}

func (e *InvalidArgumentError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Name, e.Message)
	}
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgumentError creates a new invalid argument error
func NewInvalidArgumentError(name, value, message string, err error) *InvalidArgumentError {
	return &InvalidArgumentError{
		Name:    name,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// IsInvalidArgument checks if an error is argument-related
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IOError represents a failure while opening, reading or writing a file
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s %s", e.Op, e.Path)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError creates a new I/O error
func NewIOError(op, path string, err error) *IOError {
	return &IOError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// IsIO checks if an error is I/O-related
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, value, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// IsConfiguration checks if an error is configuration-related
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// MultiError represents multiple errors that occurred together
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", e.Errors[0].Error(), len(e.Errors)-1)
}

func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// Join creates a MultiError from multiple errors, filtering out nils
func Join(errs ...error) error {
	var nonNilErrors []error
	for _, err := range errs {
		if err != nil {
			nonNilErrors = append(nonNilErrors, err)
		}
	}

	if len(nonNilErrors) == 0 {
		return nil
	}
	if len(nonNilErrors) == 1 {
		return nonNilErrors[0]
	}

	return &MultiError{Errors: nonNilErrors}
}

// Kind returns the short name of the error category, or "error" when the
// error does not belong to a known category.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsUsage(err):
		return "UsageError"
	case IsFileNotFound(err):
		return "FileNotFound"
	case IsInvalidArgument(err):
		return "InvalidArgument"
	case IsConfiguration(err):
		return "ConfigurationError"
	case IsIO(err):
		return "IOError"
	default:
		return "error"
	}
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
