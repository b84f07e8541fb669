package history

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatStats renders the database summary as the text block printed by the
// stats command. Frequent commands are listed with their counts right-aligned
// to the widest count.
func FormatStats(stats *Stats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Database: %s\n", humanize.IBytes(uint64(stats.DatabaseSize)))
	fmt.Fprintf(&b, "Indexed Terms: %d\n", stats.Terms)
	fmt.Fprintf(&b, "Unique Indexed Terms: %d\n", stats.UniqueTerms)
	fmt.Fprintf(&b, "Commands: %d\n", stats.Commands)
	fmt.Fprintf(&b, "Unique Commands: %d\n", stats.UniqueCommands)

	if stats.LastImport != nil {
		fmt.Fprintf(&b, "Last Import: %s (%d imported, %d skipped)\n",
			stats.LastImport.StartedAt.Format(DefaultTimestampLayout),
			stats.LastImport.Imported, stats.LastImport.Skipped)
	}

	if len(stats.Frequent) > 0 {
		b.WriteString("Frequent Commands:\n")
		// Counts arrive sorted descending, so the first is the widest.
		padding := len(strconv.FormatInt(stats.Frequent[0].Count, 10))
		for _, c := range stats.Frequent {
			fmt.Fprintf(&b, "\t%*d\t%s\n", padding, c.Count, c.Command)
		}
	}

	return b.String()
}
