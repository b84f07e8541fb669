package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	hinderrors "thoreinstein.com/hindsight/pkg/errors"
)

var headEntries int

// headCmd represents the head command
var headCmd = &cobra.Command{
	Use:   "head",
	Short: "Show the first N commands",
	Long:  `Show the first N commands in import order.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHeadCommand(headEntries)
	},
}

func init() {
	rootCmd.AddCommand(headCmd)

	addEntriesFlag(headCmd.Flags(), &headEntries, 20, "recall first N commands")
}

func runHeadCommand(n int) error {
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

	entries, err := store.Head(n)
	if err != nil {
		fmt.Println(hinderrors.FormatUserError(err))
		return err
	}

	printEntries(parser, entries)
	return nil
}
