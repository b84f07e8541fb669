package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	hinderrors "thoreinstein.com/hindsight/pkg/errors"
)

var tailEntries int

// tailCmd represents the tail command
var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Show the last N commands",
	Long: `Show the last N commands in import order.

The selection is printed oldest first, so the output reads like the end
of the history file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTailCommand(tailEntries)
	},
}

func init() {
	rootCmd.AddCommand(tailCmd)

	addEntriesFlag(tailCmd.Flags(), &tailEntries, 20, "recall last N commands")
}

func runTailCommand(n int) error {
	cfg, err := loadConfig()
	if err != nil {
		return hinderrors.NewConfigErrorWithCause("", "failed to load configuration", err)
	}

	parser, err := newParser(cfg)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Tail(n)
	if err != nil {
		fmt.Println(hinderrors.FormatUserError(err))
		return err
	}

	printEntries(parser, entries)
	return nil
}
