package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	t.Run("uses env vars when set", func(t *testing.T) {
		t.Setenv("VST_CONFIG_PATH", "/custom/vst.toml")
		t.Setenv("VST_HOME", "/custom/vst")

		defaults, err := GetDefaults()
		if err != nil {
			t.Fatalf("GetDefaults() error = %v", err)
		}

		if defaults.ConfigPath != "/custom/vst.toml" {
			t.Errorf("ConfigPath = %q, want %q", defaults.ConfigPath, "/custom/vst.toml")
		}
		if defaults.BaseDir != "/custom/vst" {
			t.Errorf("BaseDir = %q, want %q", defaults.BaseDir, "/custom/vst")
		}
		if want := filepath.Join("/custom/vst", "log"); defaults.LogDir != want {
			t.Errorf("LogDir = %q, want %q", defaults.LogDir, want)
		}
	})

	t.Run("falls back to home directory", func(t *testing.T) {
		t.Setenv("VST_CONFIG_PATH", "")
		t.Setenv("VST_HOME", "")

		home, err := os.UserHomeDir()
		if err != nil {
			t.Skipf("no home directory: %v", err)
		}

		defaults, err := GetDefaults()
		if err != nil {
			t.Fatalf("GetDefaults() error = %v", err)
		}

		if want := filepath.Join(home, ".config", "vst.toml"); defaults.ConfigPath != want {
			t.Errorf("ConfigPath = %q, want %q", defaults.ConfigPath, want)
		}
		if want := filepath.Join(home, ".local", "share", "vst"); defaults.BaseDir != want {
			t.Errorf("BaseDir = %q, want %q", defaults.BaseDir, want)
		}
	})
}
