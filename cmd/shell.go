package cmd

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	hinderrors "thoreinstein.com/hindsight/pkg/errors"
)

// shellCmd represents the sqlite3 command
var shellCmd = &cobra.Command{
	Use:     "sqlite3 [sqlite3 options]",
	Aliases: []string{"sql", "shell"},
	Short:   "Open the database in the sqlite3 shell",
	Long: `Open the history database in the sqlite3 command-line shell.

Extra arguments are passed to sqlite3 ahead of the database path:

  hindsight sqlite3
  hindsight sql -header -column`,
	// Everything after the command name belongs to sqlite3, including flags.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShellCommand(args)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShellCommand(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return hinderrors.NewConfigErrorWithCause("", "failed to load configuration", err)
	}

	// Open and close the store first so the file and its schema exist even
	// before the first import.
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	store.Close()

	bin, err := exec.LookPath("sqlite3")
	if err != nil {
		fail("sqlite3 binary not found in PATH.")
		failHint("Install SQLite's command-line shell to browse the database directly.")
		return hinderrors.Wrap(err, "sqlite3 not found")
	}

	shell := exec.Command(bin, append(args, cfg.Database.Path)...)
	shell.Stdin = os.Stdin
	shell.Stdout = os.Stdout
	shell.Stderr = os.Stderr

	if err := shell.Run(); err != nil {
		var exitErr *exec.ExitError
		if hinderrors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return hinderrors.Wrap(err, "failed to run sqlite3")
	}
	return nil
}
