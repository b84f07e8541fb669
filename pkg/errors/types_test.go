package errors

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "with line",
			err: &ParseError{
				Line:    "1002 git status",
				Message: "timestamp prefix does not match format",
			},
			expected: `cannot parse history line "1002 git status": timestamp prefix does not match format`,
		},
		{
			name: "without line",
			err: &ParseError{
				Message: "empty line",
			},
			expected: "cannot parse history line: empty line",
		},
		{
			name: "empty message",
			err: &ParseError{
				Line: "ls -la",
			},
			expected: `cannot parse history line "ls -la": `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestQueryError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *QueryError
		expected string
	}{
		{
			name: "with expression",
			err: &QueryError{
				Expression: "git AND (",
				Message:    "syntax error",
			},
			expected: `query "git AND (" failed: syntax error`,
		},
		{
			name: "without expression",
			err: &QueryError{
				Message: "no such column",
			},
			expected: "query failed: no such column",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestStorageError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *StorageError
		expected string
	}{
		{
			name: "with path",
			err: &StorageError{
				Op:      "open",
				Path:    "/tmp/history.db",
				Message: "unable to open database file",
			},
			expected: "storage open failed (/tmp/history.db): unable to open database file",
		},
		{
			name: "without path",
			err: &StorageError{
				Op:      "insert",
				Message: "database is locked",
			},
			expected: "storage insert failed: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigError
		expected string
	}{
		{
			name: "with field",
			err: &ConfigError{
				Field:   "history.timestamp_format",
				Message: "cannot render current time",
			},
			expected: "config error in history.timestamp_format: cannot render current time",
		},
		{
			name: "without field",
			err: &ConfigError{
				Message: "failed to load configuration",
			},
			expected: "config error: failed to load configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("underlying cause")

	tests := []struct {
		name string
		err  error
	}{
		{name: "parse", err: NewParseErrorWithCause("ls", "bad line", cause)},
		{name: "query", err: NewQueryErrorWithCause("git", "engine rejected", cause)},
		{name: "storage", err: NewStorageErrorWithCause("open", "/tmp/db", "io failure", cause)},
		{name: "config", err: NewConfigErrorWithCause("database.path", "bad path", cause)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, cause) {
				t.Errorf("errors.Is(%v, cause) = false, want true", tt.err)
			}
		})
	}
}

func TestTypeChecks(t *testing.T) {
	parseErr := NewParseError("ls", "bad line")
	queryErr := NewQueryError("git", "syntax error")
	storageErr := NewStorageError("open", "missing file")
	configErr := NewConfigError("database.path", "empty")

	tests := []struct {
		name  string
		check func(error) bool
		err   error
		want  bool
	}{
		{"parse error matches", IsParseError, parseErr, true},
		{"parse error wrapped", IsParseError, Wrap(parseErr, "import"), true},
		{"parse error mismatch", IsParseError, queryErr, false},
		{"query error matches", IsQueryError, queryErr, true},
		{"query error wrapped", IsQueryError, Wrap(queryErr, "search"), true},
		{"query error mismatch", IsQueryError, storageErr, false},
		{"storage error matches", IsStorageError, storageErr, true},
		{"storage error mismatch", IsStorageError, parseErr, false},
		{"config error matches", IsConfigError, configErr, true},
		{"config error mismatch", IsConfigError, storageErr, false},
		{"nil is nothing", IsStorageError, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("check(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "nil error",
			err:      nil,
			contains: "",
		},
		{
			name:     "config error includes config path",
			err:      NewConfigError("database.path", "empty"),
			contains: "~/.config/hindsight/config.toml",
		},
		{
			name:     "query error includes syntax pointer",
			err:      NewQueryError("git AND (", "syntax error"),
			contains: "fts5",
		},
		{
			name:     "storage open error suggests override",
			err:      NewStorageErrorWithPath("open", "/tmp/db", "permission denied"),
			contains: "HINDSIGHT_DATABASE_PATH",
		},
		{
			name:     "plain error passes through",
			err:      errors.New("plain failure"),
			contains: "plain failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatUserError(tt.err)
			if tt.contains == "" {
				if result != "" {
					t.Errorf("FormatUserError(nil) = %q, want empty", result)
				}
				return
			}
			if !strings.Contains(strings.ToLower(result), strings.ToLower(tt.contains)) {
				t.Errorf("FormatUserError() = %q, want substring %q", result, tt.contains)
			}
		})
	}
}
