package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/objmesh/pkg/encoding"
	"github.com/Faultbox/objmesh/pkg/texture"
)

// Load loads configuration with priority: defaults < file < flags.
// A nil f loads defaults and the discovered config file only.
func Load(f *Flags) (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Explicit path takes priority
	configPath := ""
	if f != nil {
		configPath = f.Config
	}
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// CLI flags have the highest priority
	applyFlags(cfg, f)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := encoding.Lookup(c.Parse.Encoding); err != nil {
		return err
	}
	if _, err := texture.ProbeByName(c.Parse.TextureProbe, texture.FileOpener{}); err != nil {
		return err
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Output.MaxErrors < 0 || c.Output.MaxWarnings < 0 {
		return fmt.Errorf("output limits must not be negative")
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./objtool.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "objtool")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "objtool")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "objtool")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "objtool")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
