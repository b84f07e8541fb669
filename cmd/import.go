package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	hinderrors "thoreinstein.com/hindsight/pkg/errors"
	"thoreinstein.com/hindsight/pkg/history"
)

// maxLineBytes caps a single history line; bufio.Scanner's default is too
// small for long pasted one-liners.
const maxLineBytes = 1024 * 1024

var importQuiet bool

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <histfile>",
	Short: "Import shell history output into the database",
	Long: `Import the output of the shell's history builtin into the database.

Lines that cannot be parsed are skipped with a warning; the import keeps
going. Entries without a timestamp are stamped with the import time.

Import from standard input:

  history | hindsight import -

Import from a saved file:

  history > histfile
  hindsight import histfile`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImportCommand(args[0])
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVarP(&importQuiet, "quiet", "q", false, "do not print imported commands")
}

func runImportCommand(source string) error {
	cfg, err := loadConfig()
	if err != nil {
		return hinderrors.NewConfigErrorWithCause("", "failed to load configuration", err)
	}

	parser, err := newParser(cfg)
	if err != nil {
		return err
	}

	in, err := openInput(source)
	if err != nil {
		fmt.Println(hinderrors.FormatUserError(err))
		return err
	}
	defer in.Close()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	run := history.ImportRun{
		RunID:     uuid.NewString(),
		Source:    source,
		StartedAt: time.Now(),
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.ToValidUTF8(scanner.Text(), string(utf8.RuneError))

		entry, err := parser.Parse(line)
		if err != nil {
			run.Skipped++
			if !importQuiet {
				warn("%v", err)
			}
			continue
		}
		if entry.Timestamp.IsZero() {
			entry.Timestamp = time.Now()
		}

		if err := store.Insert(entry); err != nil {
			fmt.Println(hinderrors.FormatUserError(err))
			return err
		}
		run.Imported++

		if !importQuiet {
			fmt.Printf("Imported `%s` issued %s\n", entry.Command, parser.RenderTimestamp(entry.Timestamp))
		}
	}
	if err := scanner.Err(); err != nil {
		return hinderrors.NewStorageErrorWithCause("read", source, "failed reading history input", err)
	}

	if err := store.RecordImport(run); err != nil {
		fmt.Println(hinderrors.FormatUserError(err))
		return err
	}
	return nil
}

// openInput opens the history source: a file path, or "-" for standard input.
func openInput(source string) (io.ReadCloser, error) {
	if source == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Reading history from standard input; finish with Ctrl-D.")
		}
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, hinderrors.NewStorageErrorWithCause("read", source, "cannot open history file", err)
	}
	return f, nil
}
