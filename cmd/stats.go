package cmd

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	hinderrors "thoreinstein.com/hindsight/pkg/errors"
	"thoreinstein.com/hindsight/pkg/history"
)

// frequentCommandLimit caps the frequent-commands block in stats output.
const frequentCommandLimit = 100

var statsJSON bool

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics for the history database",
	Long: `Print statistics for the history database: file size, indexed term
counts, command counts, the last import run, and the most frequent
commands.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatsCommand()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "emit statistics as JSON")
}

func runStatsCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return hinderrors.NewConfigErrorWithCause("", "failed to load configuration", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats(frequentCommandLimit)
	if err != nil {
		fmt.Println(hinderrors.FormatUserError(err))
		return err
	}

	if statsJSON {
		out, err := sonic.MarshalString(stats)
		if err != nil {
			return hinderrors.Wrap(err, "failed to encode statistics")
		}
		fmt.Println(out)
		return nil
	}

	fmt.Print(history.FormatStats(stats))
	return nil
}
