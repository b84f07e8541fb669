package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"thoreinstein.com/hindsight/pkg/config"
	hinderrors "thoreinstein.com/hindsight/pkg/errors"
	"thoreinstein.com/hindsight/pkg/history"
)

// warn reports a recoverable problem to stderr without stopping the run.
func warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// fail reports a fatal problem to stderr.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

// failHint follows a fail with a suggestion for fixing it.
func failHint(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "hint: "+format+"\n", args...)
}

// addEntriesFlag registers the shared -n/--entries flag on a listing command.
func addEntriesFlag(flags *pflag.FlagSet, target *int, defValue int, usage string) {
	flags.IntVarP(target, "entries", "n", defValue, usage)
}

// newParser builds the timestamp parser from the configured format hint,
// failing fast with a diagnostic when the hint cannot round-trip a timestamp.
func newParser(cfg *config.Config) (*history.Parser, error) {
	parser, err := history.NewParser(cfg.History.TimestampFormat)
	if err != nil {
		fail("Cannot parse timestamps with format %q.", cfg.History.TimestampFormat)
		failHint("Use only standard strftime format codes in history.timestamp_format (or HISTTIMEFORMAT).")
		return nil, err
	}
	return parser, nil
}

// openStore opens the configured history database, applying any pending
// schema migrations.
func openStore(cfg *config.Config) (*history.Store, error) {
	store, err := history.Open(cfg.Database.Path)
	if err != nil {
		fmt.Println(hinderrors.FormatUserError(err))
		return nil, err
	}
	return store, nil
}

// printEntries writes entries one per line as timestamp<TAB>command.
func printEntries(parser *history.Parser, entries []history.Entry) {
	for _, e := range entries {
		fmt.Printf("%s\t%s\n", parser.RenderTimestamp(e.Timestamp), e.Command)
	}
}
