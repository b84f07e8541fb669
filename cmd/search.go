package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	hinderrors "thoreinstein.com/hindsight/pkg/errors"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <expression>",
	Short: "Search the history database",
	Long: `Search the history database with a full-text query expression.

The expression is handed to the index engine unmodified, so the full FTS
query syntax applies:

  https://sqlite.org/fts5.html#full_text_query_syntax

Examples:

  hindsight search git
  hindsight search 'git AND checkout'
  hindsight search '"git rebase" NOT abort'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearchCommand(args[0])
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearchCommand(expression string) error {
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

	entries, err := store.Search(expression)
	if err != nil {
		fmt.Println(hinderrors.FormatUserError(err))
		return err
	}

	printEntries(parser, entries)
	return nil
}
