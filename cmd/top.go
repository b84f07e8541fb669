package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	hinderrors "thoreinstein.com/hindsight/pkg/errors"
)

var topEntries int

// topCmd represents the top command
var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the most frequent commands",
	Long: `Show the N most frequent commands with their counts, as
count<TAB>command lines. Ties are broken by most recent occurrence.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTopCommand(topEntries)
	},
}

func init() {
	rootCmd.AddCommand(topCmd)

	addEntriesFlag(topCmd.Flags(), &topEntries, 10, "show N most frequent commands")
}

func runTopCommand(n int) error {
	cfg, err := loadConfig()
	if err != nil {
		return hinderrors.NewConfigErrorWithCause("", "failed to load configuration", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	counts, err := store.Top(n)
	if err != nil {
		fmt.Println(hinderrors.FormatUserError(err))
		return err
	}

	for _, c := range counts {
		fmt.Printf("%d\t%s\n", c.Count, c.Command)
	}
	return nil
}
