package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// Defaults holds the application's default paths.
type Defaults struct {
	ConfigPath string
	BaseDir    string
	LogDir     string
}

// GetDefaults returns application default paths, checking environment
// variables first.
// Environment variables:
//   - VST_CONFIG_PATH: config file location (default: ~/.config/vst.toml)
//   - VST_HOME: base directory for vst data (default: ~/.local/share/vst)
func GetDefaults() (*Defaults, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	baseDir, err := getBaseDir()
	if err != nil {
		return nil, err
	}

	return &Defaults{
		ConfigPath: configPath,
		BaseDir:    baseDir,
		LogDir:     filepath.Join(baseDir, "log"),
	}, nil
}

// getConfigPath returns the config file path, checking VST_CONFIG_PATH first,
// then falling back to the default ~/.config/vst.toml.
func getConfigPath() (string, error) {
	if path := os.Getenv("VST_CONFIG_PATH"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "vst.toml"), nil
}

// getBaseDir returns the base directory for vst data, checking VST_HOME first,
// then falling back to the XDG default ~/.local/share/vst.
func getBaseDir() (string, error) {
	if path := os.Getenv("VST_HOME"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "vst"), nil
}
