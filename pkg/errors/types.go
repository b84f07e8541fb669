// Package errors provides typed errors for the hindsight project.
//
// This package defines domain-specific error types that provide structured
// error information for the subsystems (config, parser, store, query).
// All error types implement the standard error interface and support
// errors.Is() and errors.As() from the standard library and cockroachdb/errors.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ConfigError represents configuration-related errors.
type ConfigError struct {
	Field   string // Which config field has the issue
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
	}
	return "config error: " + e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// NewConfigErrorWithCause creates a new ConfigError with an underlying cause.
func NewConfigErrorWithCause(field, message string, cause error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Cause: cause}
}

// ParseError represents a single history line that could not be parsed.
// Parse errors are recoverable: the importer skips the line and moves on.
type ParseError struct {
	Line    string // The offending input line, trimmed
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("cannot parse history line %q: %s", e.Line, e.Message)
	}
	return "cannot parse history line: " + e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new ParseError.
func NewParseError(line, message string) *ParseError {
	return &ParseError{Line: line, Message: message}
}

// NewParseErrorWithCause creates a new ParseError with an underlying cause.
func NewParseErrorWithCause(line, message string, cause error) *ParseError {
	return &ParseError{Line: line, Message: message, Cause: cause}
}

// QueryError represents a full-text query expression the index rejected.
// The expression is opaque to hindsight; the engine's verdict is final.
type QueryError struct {
	Expression string
	Message    string
	Cause      error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	if e.Expression != "" {
		return fmt.Sprintf("query %q failed: %s", e.Expression, e.Message)
	}
	return "query failed: " + e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *QueryError) Unwrap() error {
	return e.Cause
}

// NewQueryError creates a new QueryError.
func NewQueryError(expression, message string) *QueryError {
	return &QueryError{Expression: expression, Message: message}
}

// NewQueryErrorWithCause creates a new QueryError with an underlying cause.
func NewQueryErrorWithCause(expression, message string, cause error) *QueryError {
	return &QueryError{Expression: expression, Message: message, Cause: cause}
}

// StorageError represents database errors: the index file missing, corrupt,
// locked, or the filesystem refusing access. Always fatal.
type StorageError struct {
	Op      string // e.g., "open", "migrate", "insert"
	Path    string // Database path if applicable
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("storage %s failed (%s): %s", e.Op, e.Path, e.Message)
	}
	return fmt.Sprintf("storage %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new StorageError.
func NewStorageError(op, message string) *StorageError {
	return &StorageError{Op: op, Message: message}
}

// NewStorageErrorWithPath creates a new StorageError for a specific database path.
func NewStorageErrorWithPath(op, path, message string) *StorageError {
	return &StorageError{Op: op, Path: path, Message: message}
}

// NewStorageErrorWithCause creates a new StorageError with an underlying cause.
func NewStorageErrorWithCause(op, path, message string, cause error) *StorageError {
	return &StorageError{Op: op, Path: path, Message: message, Cause: cause}
}

// IsConfigError checks if an error or any error in its chain is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsParseError checks if an error or any error in its chain is a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsQueryError checks if an error or any error in its chain is a QueryError.
func IsQueryError(err error) bool {
	var queryErr *QueryError
	return errors.As(err, &queryErr)
}

// IsStorageError checks if an error or any error in its chain is a StorageError.
func IsStorageError(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// Re-export commonly used functions from cockroachdb/errors for convenience.
// This allows consumers to use hinderrors.Wrap() instead of importing two packages.
var (
	// New creates a new error with the given message.
	New = errors.New

	// Newf creates a new error with formatted message.
	Newf = errors.Newf

	// Wrap wraps an error with additional context.
	Wrap = errors.Wrap

	// Wrapf wraps an error with formatted additional context.
	Wrapf = errors.Wrapf

	// Is reports whether any error in err's chain matches target.
	Is = errors.Is

	// As finds the first error in err's chain that matches target.
	As = errors.As

	// Cause returns the root cause of an error.
	Cause = errors.Cause
)
