package cmd

import (
	"testing"
	"time"

	"github.com/spf13/viper"

	hinderrors "thoreinstein.com/hindsight/pkg/errors"
	"thoreinstein.com/hindsight/pkg/history"
)

// seedHistory inserts entries directly into the database the commands will
// open, bypassing the importer.
func seedHistory(t *testing.T, dbPath string, entries ...history.Entry) {
	t.Helper()

	store, err := history.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	for _, e := range entries {
		if err := store.Insert(e); err != nil {
			t.Fatalf("Insert(%q) error: %v", e.Command, err)
		}
	}
}

func TestSearchCommand_NewestFirst(t *testing.T) {
	// Don't run in parallel - modifies global viper state
	dbPath := setTestDatabase(t)
	viper.Set("history.timestamp_format", "%s ")

	seedHistory(t, dbPath,
		history.Entry{Timestamp: time.Unix(1000, 0), Command: "git status"},
		history.Entry{Timestamp: time.Unix(3000, 0), Command: "ls -la"},
		history.Entry{Timestamp: time.Unix(2000, 0), Command: "git push origin"},
	)

	stdout, _, err := captureOutput(t, func() error {
		return runSearchCommand("git")
	})
	if err != nil {
		t.Fatalf("runSearchCommand() error: %v", err)
	}

	want := "2000\tgit push origin\n1000\tgit status\n"
	if stdout != want {
		t.Errorf("search output = %q, want %q", stdout, want)
	}
}

func TestSearchCommand_NoMatches(t *testing.T) {
	// Don't run in parallel - modifies global viper state
	dbPath := setTestDatabase(t)
	seedHistory(t, dbPath,
		history.Entry{Timestamp: time.Unix(1000, 0), Command: "ls"},
	)

	stdout, _, err := captureOutput(t, func() error {
		return runSearchCommand("nonexistent")
	})
	if err != nil {
		t.Fatalf("runSearchCommand() error: %v", err)
	}
	if stdout != "" {
		t.Errorf("no matches should print nothing, got %q", stdout)
	}
}

func TestSearchCommand_BadExpression(t *testing.T) {
	// Don't run in parallel - modifies global viper state
	dbPath := setTestDatabase(t)
	seedHistory(t, dbPath,
		history.Entry{Timestamp: time.Unix(1000, 0), Command: "ls"},
	)

	_, _, err := captureOutput(t, func() error {
		return runSearchCommand("AND (")
	})
	if err == nil {
		t.Fatal("a malformed expression should error")
	}
	if !hinderrors.IsQueryError(err) {
		t.Errorf("error should be a QueryError, got %v", err)
	}
}
