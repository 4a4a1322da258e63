package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

func TestManager_Read(t *testing.T) {
	t.Run("decodes all fields", func(t *testing.T) {
		input := `
preview_lines = 5
color = "never"
log_dir = "/var/log/vst"
`
		m := &Manager{}
		cfg, err := m.Read(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}

		if cfg.PreviewLines != 5 {
			t.Errorf("PreviewLines = %d, want 5", cfg.PreviewLines)
		}
		if cfg.Color != "never" {
			t.Errorf("Color = %q, want %q", cfg.Color, "never")
		}
		if cfg.LogDir != "/var/log/vst" {
			t.Errorf("LogDir = %q, want %q", cfg.LogDir, "/var/log/vst")
		}
	})

	t.Run("rejects malformed toml", func(t *testing.T) {
		m := &Manager{}
		if _, err := m.Read(strings.NewReader("preview_lines = [")); err == nil {
			t.Fatal("expected error for malformed toml")
		}
	})
}

func TestReadFromFile_Missing(t *testing.T) {
	_, err := ReadFromFile(filepath.Join(t.TempDir(), "vst.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("ReadFromFile() error = %v, want fs.ErrNotExist", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults("/data/log")

	if cfg.PreviewLines != DefaultPreviewLines {
		t.Errorf("PreviewLines = %d, want %d", cfg.PreviewLines, DefaultPreviewLines)
	}
	if cfg.Color != "auto" {
		t.Errorf("Color = %q, want %q", cfg.Color, "auto")
	}
	if cfg.LogDir != "/data/log" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "/data/log")
	}

	// Set fields survive.
	cfg = &Config{PreviewLines: 3, Color: "never", LogDir: "/elsewhere"}
	cfg.ApplyDefaults("/data/log")
	if cfg.PreviewLines != 3 || cfg.Color != "never" || cfg.LogDir != "/elsewhere" {
		t.Errorf("ApplyDefaults() overwrote set fields: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	for _, mode := range []string{"auto", "always", "never"} {
		cfg := Default("/log")
		cfg.Color = mode
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() with color %q error = %v", mode, err)
		}
	}

	cfg := Default("/log")
	cfg.Color = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted invalid color mode")
	}
}

func TestInit(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conf", "vst.toml")
		if err := Init(path, Default("/log")); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		cfg, err := ReadFromFile(path)
		if err != nil {
			t.Fatalf("ReadFromFile() error = %v", err)
		}
		if cfg.PreviewLines != DefaultPreviewLines {
			t.Errorf("PreviewLines = %d, want %d", cfg.PreviewLines, DefaultPreviewLines)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vst.toml")
		if err := Init(path, Default("/log")); err != nil {
			t.Fatalf("Init() error = %v", err)
		}
		if err := Init(path, Default("/log")); err == nil {
			t.Fatal("Init() overwrote an existing config")
		}
	})
}
