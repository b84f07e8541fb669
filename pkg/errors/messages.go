package errors

import (
	"fmt"
	"strings"
)

// FormatUserError returns a user-friendly error message with actionable guidance.
// It examines the error chain and provides context-appropriate help text.
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}

	// Check for ConfigError
	var configErr *ConfigError
	if As(err, &configErr) {
		return formatConfigError(configErr)
	}

	// Check for QueryError
	var queryErr *QueryError
	if As(err, &queryErr) {
		return formatQueryError(queryErr)
	}

	// Check for StorageError
	var storageErr *StorageError
	if As(err, &storageErr) {
		return formatStorageError(storageErr)
	}

	// Check for ParseError
	var parseErr *ParseError
	if As(err, &parseErr) {
		return formatParseError(parseErr)
	}

	// Default: return the error message as-is
	return err.Error()
}

// formatConfigError formats a ConfigError with actionable guidance.
func formatConfigError(err *ConfigError) string {
	var b strings.Builder

	if err.Field != "" {
		fmt.Fprintf(&b, "Configuration error in '%s': %s\n", err.Field, err.Message)
	} else {
		fmt.Fprintf(&b, "Configuration error: %s\n", err.Message)
	}

	b.WriteString("\nTo fix this:\n")
	b.WriteString("  • Check your config file: ~/.config/hindsight/config.toml\n")
	b.WriteString("  • Check HINDSIGHT_* environment variables and HISTTIMEFORMAT\n")

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}

// formatQueryError formats a QueryError with guidance on the index query syntax.
func formatQueryError(err *QueryError) string {
	var b strings.Builder

	if err.Expression != "" {
		fmt.Fprintf(&b, "Search error for expression %q: %s\n", err.Expression, err.Message)
	} else {
		fmt.Fprintf(&b, "Search error: %s\n", err.Message)
	}

	b.WriteString("\nThe expression is passed straight to SQLite full-text search. To fix this:\n")
	b.WriteString("  • Quote phrases and terms containing punctuation: '\"git diff\"'\n")
	b.WriteString("  • Review the FTS query syntax: https://sqlite.org/fts5.html#full_text_query_syntax\n")

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}

// formatStorageError formats a StorageError with guidance based on the failed operation.
func formatStorageError(err *StorageError) string {
	var b strings.Builder

	if err.Path != "" {
		fmt.Fprintf(&b, "Database error during %s (%s): %s\n", err.Op, err.Path, err.Message)
	} else {
		fmt.Fprintf(&b, "Database error during %s: %s\n", err.Op, err.Message)
	}

	switch err.Op {
	case "open":
		b.WriteString("\nThe history database could not be opened. To fix this:\n")
		b.WriteString("  • Check that the database path and its directory are writable\n")
		b.WriteString("  • Override the location with HINDSIGHT_DATABASE_PATH or database.path in the config file\n")

	case "migrate":
		b.WriteString("\nThe database schema could not be upgraded. To fix this:\n")
		b.WriteString("  • Inspect the database with 'hindsight sqlite3'\n")
		b.WriteString("  • If the file is corrupt, move it aside and re-import your history\n")

	default:
		b.WriteString("\nTo troubleshoot:\n")
		b.WriteString("  • Another process may hold the database lock; try again once it finishes\n")
		b.WriteString("  • Inspect the database with 'hindsight sqlite3'\n")
	}

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}

// formatParseError formats a ParseError with guidance on the expected line format.
func formatParseError(err *ParseError) string {
	var b strings.Builder

	if err.Line != "" {
		fmt.Fprintf(&b, "Parse error on history line %q: %s\n", err.Line, err.Message)
	} else {
		fmt.Fprintf(&b, "Parse error: %s\n", err.Message)
	}

	b.WriteString("\nTo fix this:\n")
	b.WriteString("  • Make sure HISTTIMEFORMAT matches the timestamps in the input\n")
	b.WriteString("  • Unset HISTTIMEFORMAT if the input lines carry no timestamps\n")

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}
