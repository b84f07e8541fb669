package cmd

import (
	"testing"
	"time"

	"thoreinstein.com/hindsight/pkg/history"
)

func TestTopCommand_MostFrequentFirst(t *testing.T) {
	// Don't run in parallel - modifies global viper state
	dbPath := setTestDatabase(t)

	seedHistory(t, dbPath,
		history.Entry{Timestamp: time.Unix(1000, 0), Command: "git diff"},
		history.Entry{Timestamp: time.Unix(2000, 0), Command: "ls"},
		history.Entry{Timestamp: time.Unix(3000, 0), Command: "git diff"},
	)

	stdout, _, err := captureOutput(t, func() error {
		return runTopCommand(10)
	})
	if err != nil {
		t.Fatalf("runTopCommand() error: %v", err)
	}

	want := "2\tgit diff\n1\tls\n"
	if stdout != want {
		t.Errorf("top output = %q, want %q", stdout, want)
	}
}

func TestTopCommand_LimitsToRequestedCount(t *testing.T) {
	// Don't run in parallel - modifies global viper state
	dbPath := setTestDatabase(t)

	seedHistory(t, dbPath,
		history.Entry{Timestamp: time.Unix(1000, 0), Command: "git diff"},
		history.Entry{Timestamp: time.Unix(2000, 0), Command: "git diff"},
		history.Entry{Timestamp: time.Unix(3000, 0), Command: "ls"},
		history.Entry{Timestamp: time.Unix(4000, 0), Command: "make"},
	)

	stdout, _, err := captureOutput(t, func() error {
		return runTopCommand(1)
	})
	if err != nil {
		t.Fatalf("runTopCommand() error: %v", err)
	}

	want := "2\tgit diff\n"
	if stdout != want {
		t.Errorf("top output = %q, want %q", stdout, want)
	}
}
