package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/ayoub-aberbach/foldora/pkg/ports"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.LogLevel != "warn" {
		t.Errorf("expected log level 'warn', got %q", cfg.LogLevel)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("expected color 'auto', got %q", cfg.Color)
	}
	if cfg.DirMode() != 0o755 {
		t.Errorf("expected dir mode 0755, got %o", cfg.DirMode())
	}
	if cfg.FileMode() != 0o644 {
		t.Errorf("expected file mode 0644, got %o", cfg.FileMode())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "log_level: debug\ncolor: never\ndir_perm: \"0700\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Level() != ports.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.Level())
	}
	if cfg.Color != ColorNever {
		t.Errorf("expected color 'never', got %q", cfg.Color)
	}
	if cfg.DirMode() != 0o700 {
		t.Errorf("expected dir mode 0700, got %o", cfg.DirMode())
	}
	// not in file, keeps default
	if cfg.FilePerm != "0644" {
		t.Errorf("expected default file perm, got %q", cfg.FilePerm)
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "log_level: [unterminated\n"},
		{"bad level", "log_level: loud\n"},
		{"bad color", "color: sometimes\n"},
		{"bad perm", "file_perm: \"0999\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFromFile(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected not-exist error, got %v", err)
		}
	})

	t.Run("missing default path yields defaults", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg != Defaults() {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("default path is read when present", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		if err := os.MkdirAll(filepath.Join(home, "foldora"), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(home, "foldora", "config.yaml"), []byte("quiet: true\n"), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Level() != ports.LevelQuiet {
			t.Errorf("expected quiet level, got %v", cfg.Level())
		}
	})
}

func TestUseColor(t *testing.T) {
	tests := []struct {
		mode     string
		terminal bool
		want     bool
	}{
		{ColorAuto, true, true},
		{ColorAuto, false, false},
		{ColorAlways, false, true},
		{ColorNever, true, false},
	}

	for _, tt := range tests {
		cfg := Config{Color: tt.mode}
		if got := cfg.UseColor(tt.terminal); got != tt.want {
			t.Errorf("UseColor(%s, %v) = %v, want %v", tt.mode, tt.terminal, got, tt.want)
		}
	}
}

func TestParsePerm(t *testing.T) {
	tests := []struct {
		in      string
		want    fs.FileMode
		wantErr bool
	}{
		{"0755", 0o755, false},
		{"644", 0o644, false},
		{"1777", 0, true},
		{"rwx", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePerm(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePerm(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePerm(%q) = %o, want %o", tt.in, got, tt.want)
		}
	}
}
