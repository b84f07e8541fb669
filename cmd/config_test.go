package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	hinderrors "thoreinstein.com/hindsight/pkg/errors"
)

func TestConfigInitCommand_WritesStarterFile(t *testing.T) {
	// Don't run in parallel - modifies global flag state
	oldCfgFile := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "config.toml")
	defer func() { cfgFile = oldCfgFile }()

	t.Setenv("HISTTIMEFORMAT", "%F %T ")

	stdout, _, err := captureOutput(t, func() error {
		return runConfigInitCommand()
	})
	if err != nil {
		t.Fatalf("runConfigInitCommand() error: %v", err)
	}
	if !strings.Contains(stdout, "Wrote "+cfgFile) {
		t.Errorf("stdout should name the written file, got %q", stdout)
	}

	data, err := os.ReadFile(cfgFile)
	if err != nil {
		t.Fatalf("config file should exist: %v", err)
	}
	content := string(data)

	for _, want := range []string{"[database]", "path", "[history]", "timestamp_format", "%F %T"} {
		if !strings.Contains(content, want) {
			t.Errorf("starter config should contain %q, got:\n%s", want, content)
		}
	}
}

func TestConfigInitCommand_RefusesOverwrite(t *testing.T) {
	// Don't run in parallel - modifies global flag state
	oldCfgFile := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "config.toml")
	defer func() { cfgFile = oldCfgFile }()

	if err := os.WriteFile(cfgFile, []byte("# hand-edited\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, _, err := captureOutput(t, func() error {
		return runConfigInitCommand()
	})
	if err == nil {
		t.Fatal("init should refuse to overwrite an existing file")
	}
	if !hinderrors.IsConfigError(err) {
		t.Errorf("error should be a ConfigError, got %v", err)
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error should say the file already exists, got %v", err)
	}

	data, err := os.ReadFile(cfgFile)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "# hand-edited\n" {
		t.Error("existing config must be left untouched without --force")
	}
}

func TestConfigInitCommand_ForceOverwrites(t *testing.T) {
	// Don't run in parallel - modifies global flag state
	oldCfgFile := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "config.toml")
	defer func() { cfgFile = oldCfgFile }()

	if err := os.WriteFile(cfgFile, []byte("# hand-edited\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	oldForce := configInitForce
	configInitForce = true
	defer func() { configInitForce = oldForce }()

	_, _, err := captureOutput(t, func() error {
		return runConfigInitCommand()
	})
	if err != nil {
		t.Fatalf("runConfigInitCommand() error: %v", err)
	}

	data, err := os.ReadFile(cfgFile)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "[database]") {
		t.Error("--force should replace the file with the starter config")
	}
}

func TestConfigFilePath_FlagOverride(t *testing.T) {
	// Don't run in parallel - modifies global flag state
	oldCfgFile := cfgFile
	cfgFile = "/tmp/custom.toml"
	defer func() { cfgFile = oldCfgFile }()

	path, err := configFilePath()
	if err != nil {
		t.Fatalf("configFilePath() error: %v", err)
	}
	if path != "/tmp/custom.toml" {
		t.Errorf("path = %q, want the --config override", path)
	}
}

func TestConfigFilePath_Default(t *testing.T) {
	// Don't run in parallel - modifies global flag state
	oldCfgFile := cfgFile
	cfgFile = ""
	defer func() { cfgFile = oldCfgFile }()

	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	path, err := configFilePath()
	if err != nil {
		t.Fatalf("configFilePath() error: %v", err)
	}
	want := filepath.Join(tmpHome, ".config", "hindsight", "config.toml")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}
