package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// magicFunction is the Bash half of the integration: capture the newest
// history entry and feed it to the importer. The sed stage strips the
// leading history event number, which the importer does not expect.
const magicFunction = `__hindsight_import() {
    local old_histignore=$HISTIGNORE
    HISTIGNORE='history*'
    history 1 | sed -E 's/^ *[0-9]+\*? *//' | hindsight import --quiet -
    HISTIGNORE=$old_histignore
}`

// magicCmd represents the magic command
var magicCmd = &cobra.Command{
	Use:   "magic",
	Short: "Print the shell function that imports the last command",
	Long: fmt.Sprintf(`Print a Bash function that imports the most recent history entry.

Wire it into PROMPT_COMMAND to archive every command as soon as it
finishes:

%s

__prompt() {
    history -a
    __hindsight_import
}

PROMPT_COMMAND=__prompt`, magicFunction),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(magicFunction)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(magicCmd)
}
