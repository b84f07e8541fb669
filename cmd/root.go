package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"thoreinstein.com/hindsight/pkg/bootstrap"
	"thoreinstein.com/hindsight/pkg/config"
)

var cfgFile string
var appConfig *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hindsight",
	Short: "Hindsight - searchable shell history",
	Long: `Hindsight archives shell history in a local SQLite database with a
full-text index and retrieves it with SQLite FTS query expressions.

Pipe the history builtin's output into the importer, or wire the magic
snippet into PROMPT_COMMAND to archive commands as you run them, then
query the archive with search, head, tail, log, and top.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Pre-parse the config flag so configuration is loaded before any
	// subcommand runs.
	cfgFile = bootstrap.PreParseGlobalFlags(os.Args)

	if err := initConfig(); err != nil {
		cobra.CheckErr(err)
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		_ = initConfig()
	})

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "C", "", "config file (default is $HOME/.config/hindsight/config.toml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error
	appConfig, err = bootstrap.InitConfig(cfgFile)
	return err
}

// loadConfig returns the latest configuration derived from viper.
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// resetConfig clears the cached configuration.
// This is primarily used in tests to ensure each test starts with a fresh config.
func resetConfig() {
	appConfig = nil
	bootstrap.Reset()
	viper.Reset()
}
