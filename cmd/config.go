package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"thoreinstein.com/hindsight/pkg/config"
	hinderrors "thoreinstein.com/hindsight/pkg/errors"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage hindsight configuration",
	Long:  `Inspect and initialize the hindsight configuration file.`,
}

// configInitCmd writes a starter config file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a starter config file with the built-in defaults.

The history.timestamp_format key is seeded from HISTTIMEFORMAT when that
variable is set. An existing file is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInitCommand()
	},
}

// configPathCmd prints the config file location
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configInitForce bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
}

// configFilePath resolves the config file in effect: the --config override
// when given, the default location otherwise.
func configFilePath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", hinderrors.NewConfigErrorWithCause("", "cannot determine config path", err)
	}
	return path, nil
}

func runConfigInitCommand() error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return hinderrors.NewConfigError("",
			fmt.Sprintf("config file already exists at %s (use --force to overwrite)", path))
	}

	if err := config.WriteDefault(path); err != nil {
		return hinderrors.NewConfigErrorWithCause("", "cannot write config file", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
