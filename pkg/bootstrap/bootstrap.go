package bootstrap

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"thoreinstein.com/hindsight/pkg/config"
)

var (
	lastLoadedConfig string
	loadedConfig     *config.Config
)

// PreParseGlobalFlags manually scans os.Args for the --config flag before
// the main Cobra execution. This is a bootstrap step for configuration.
// It stops scanning as soon as it hits a non-flag argument or the "--" marker.
func PreParseGlobalFlags(args []string) string {
	var cfgFile string

	for i := 1; i < len(args); i++ {
		arg := args[i]

		// Stop parsing at the standard end-of-options marker
		if arg == "--" {
			break
		}

		// Stop parsing at the first non-flag argument (the subcommand)
		if !strings.HasPrefix(arg, "-") {
			break
		}

		switch {
		case arg == "--config" || arg == "-C":
			if i+1 < len(args) {
				cfgFile = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "--config="):
			cfgFile = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-C="):
			cfgFile = strings.TrimPrefix(arg, "-C=")
		case strings.HasPrefix(arg, "-C") && len(arg) > 2:
			cfgFile = arg[2:]
		}
	}

	return cfgFile
}

// InitConfig reads in config file and ENV variables if set and returns the
// loaded config.
func InitConfig(cfgFile string) (*config.Config, error) {
	// Skip if already loaded with same parameters (unless in test)
	if os.Getenv("GO_TEST") != "true" && loadedConfig != nil && cfgFile == lastLoadedConfig {
		return loadedConfig, nil
	}

	// Reset Viper state to avoid carrying over stale settings from previous loads.
	viper.Reset()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get home directory")
		}
		viper.AddConfigPath(filepath.Join(home, ".config", "hindsight"))
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("HINDSIGHT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The timestamp format also binds the conventional bash variable, so a
	// shell exporting HISTTIMEFORMAT needs no hindsight-specific setup.
	if err := viper.BindEnv("history.timestamp_format",
		"HINDSIGHT_HISTORY_TIMESTAMP_FORMAT", "HISTTIMEFORMAT"); err != nil {
		return nil, errors.Wrap(err, "failed to bind environment")
	}

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		// An explicitly requested config file must be readable; the default
		// search path is allowed to come up empty.
		return nil, errors.Wrapf(err, "failed to read config file %s", cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// Update state
	lastLoadedConfig = cfgFile
	loadedConfig = cfg

	return cfg, nil
}

// Reset clears the cached configuration state.
func Reset() {
	lastLoadedConfig = ""
	loadedConfig = nil
}
