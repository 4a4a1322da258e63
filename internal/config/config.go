package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultPreviewLines caps the preview shown when a staged file has no
// canonical counterpart.
const DefaultPreviewLines = 10

// Config represents the main configuration for vst.
type Config struct {
	PreviewLines int    `toml:"preview_lines"`
	Color        string `toml:"color"` // "auto", "always", or "never"
	LogDir       string `toml:"log_dir"`
}

// Default returns the configuration used when no config file exists.
func Default(logDir string) *Config {
	return &Config{
		PreviewLines: DefaultPreviewLines,
		Color:        "auto",
		LogDir:       logDir,
	}
}

// ApplyDefaults fills any zero-valued fields with their defaults.
func (c *Config) ApplyDefaults(logDir string) {
	if c.PreviewLines <= 0 {
		c.PreviewLines = DefaultPreviewLines
	}
	if c.Color == "" {
		c.Color = "auto"
	}
	if c.LogDir == "" {
		c.LogDir = logDir
	}
}

// Validate checks field values that a config file could get wrong.
func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always, or never)", c.Color)
	}
	return nil
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
func writeToFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided
// Config. It refuses to overwrite an existing file.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
