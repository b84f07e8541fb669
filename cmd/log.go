package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	hinderrors "thoreinstein.com/hindsight/pkg/errors"
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show all commands, newest first",
	Long:  `Show every command in the database, newest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLogCommand()
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}

func runLogCommand() error {
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

	entries, err := store.Log()
	if err != nil {
		fmt.Println(hinderrors.FormatUserError(err))
		return err
	}

	printEntries(parser, entries)
	return nil
}
