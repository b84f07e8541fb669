package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	hinderrors "thoreinstein.com/hindsight/pkg/errors"
)

// Version is the hindsight version, set at build time via ldflags:
//
//	go build -ldflags "-X thoreinstein.com/hindsight/cmd.Version=1.2.3"
var Version = "dev"

var versionVerbose bool

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show the hindsight version.

With --verbose, also show the database schema version and the SQLite
library version.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersionCommand()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&versionVerbose, "verbose", "v", false, "print extra version information")
}

func runVersionCommand() error {
	if !versionVerbose {
		fmt.Printf("hindsight %s\n", Version)
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return hinderrors.NewConfigErrorWithCause("", "failed to load configuration", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	schema, err := store.SchemaVersion()
	if err != nil {
		fmt.Println(hinderrors.FormatUserError(err))
		return err
	}
	sqlite, err := store.SQLiteVersion()
	if err != nil {
		fmt.Println(hinderrors.FormatUserError(err))
		return err
	}

	fmt.Printf("hindsight %s (schema version %d)\n", Version, schema)
	fmt.Printf("SQLite3 %s\n", sqlite)
	return nil
}
