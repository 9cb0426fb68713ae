// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ayoub-aberbach/foldora/pkg/ports"
	"gopkg.in/yaml.v3"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the full configuration for foldora.
type Config struct {
	// Output
	LogLevel string `yaml:"log_level"`
	Quiet    bool   `yaml:"quiet"`
	Color    string `yaml:"color"`

	// Permissions for created entries, as octal strings ("0755")
	DirPerm  string `yaml:"dir_perm"`
	FilePerm string `yaml:"file_perm"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		LogLevel: "warn",
		Color:    ColorAuto,
		DirPerm:  "0755",
		FilePerm: "0644",
	}
}

// LoadFromFile loads configuration from a YAML file.
// Keys missing from the file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// DefaultPath returns $XDG_CONFIG_HOME/foldora/config.yaml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "foldora", "config.yaml")
}

// Load resolves the configuration file. An explicit path must exist; the
// default path is used only when present. Without either, Defaults is
// returned.
func Load(explicit string) (Config, error) {
	if explicit != "" {
		return LoadFromFile(explicit)
	}

	path := DefaultPath()
	if path == "" {
		return Defaults(), nil
	}
	cfg, err := LoadFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}

// Validate checks enumerated values and permission strings.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "quiet":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	if _, err := ParsePerm(c.DirPerm); err != nil {
		return fmt.Errorf("dir_perm: %w", err)
	}
	if _, err := ParsePerm(c.FilePerm); err != nil {
		return fmt.Errorf("file_perm: %w", err)
	}
	return nil
}

// Level returns the parsed log level. Quiet overrides LogLevel.
func (c Config) Level() ports.LogLevel {
	if c.Quiet {
		return ports.LevelQuiet
	}
	return ports.ParseLogLevel(c.LogLevel)
}

// UseColor decides whether to emit ANSI colors given whether the output
// is a terminal.
func (c Config) UseColor(terminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}

// DirMode returns DirPerm as a file mode. Invalid values fall back to 0755.
func (c Config) DirMode() fs.FileMode {
	if m, err := ParsePerm(c.DirPerm); err == nil {
		return m
	}
	return 0o755
}

// FileMode returns FilePerm as a file mode. Invalid values fall back to 0644.
func (c Config) FileMode() fs.FileMode {
	if m, err := ParsePerm(c.FilePerm); err == nil {
		return m
	}
	return 0o644
}

// ParsePerm parses an octal permission string such as "0750" or "644".
func ParsePerm(s string) (fs.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid permission %q", s)
	}
	if v > 0o777 {
		return 0, fmt.Errorf("permission %q out of range", s)
	}
	return fs.FileMode(v), nil
}
