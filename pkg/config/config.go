package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	History  HistoryConfig  `mapstructure:"history" toml:"history"`
}

// DatabaseConfig holds history database configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"` // SQLite database file
}

// HistoryConfig holds history input configuration
type HistoryConfig struct {
	// TimestampFormat is the strftime pattern history lines prefix their
	// timestamps with (the HISTTIMEFORMAT environment variable binds here).
	// Empty means lines carry no timestamps.
	TimestampFormat string `mapstructure:"timestamp_format" toml:"timestamp_format"`
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Set defaults
	setDefaults()

	// Unmarshal the config
	if err := viper.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	// Expand paths
	if err := expandPaths(config); err != nil {
		return nil, errors.Wrap(err, "failed to expand paths")
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return config, nil
}

// Validate validates the configuration and returns any validation errors.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database.path must not be empty")
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("database.path", filepath.Join(dataHome(), "hindsight", "history.db"))
	viper.SetDefault("history.timestamp_format", "")
}

// dataHome returns the XDG data directory, honoring XDG_DATA_HOME.
func dataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home dir can't be determined
		homeDir = "."
	}
	return filepath.Join(homeDir, ".local", "share")
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, ".config", "hindsight", "config.toml"), nil
}

// WriteDefault writes a starter config file with the built-in defaults to
// path. The timestamp format is seeded from HISTTIMEFORMAT when that variable
// is set, so bash users get a matching parser without editing anything.
func WriteDefault(path string) error {
	cfg := &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(dataHome(), "hindsight", "history.db"),
		},
		History: HistoryConfig{
			TimestampFormat: os.Getenv("HISTTIMEFORMAT"),
		},
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// expandPaths expands ~ in configured paths
func expandPaths(config *Config) error {
	var err error

	config.Database.Path, err = expandPath(config.Database.Path)
	if err != nil {
		return err
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, path[1:]), nil
}
