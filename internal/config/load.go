package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)
	cfg.normalize()

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
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
		return filepath.Join(home, "Library", "Application Support", "SceneView")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "SceneView")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "sceneview")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "sceneview")
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

// normalize replaces values that would break the viewer with their defaults.
// Scale factors must stay nonzero, window sizes positive.
func (c *Config) normalize() {
	def := Default()

	if c.Graphics.Width <= 0 {
		c.Graphics.Width = def.Graphics.Width
	}
	if c.Graphics.Height <= 0 {
		c.Graphics.Height = def.Graphics.Height
	}
	if c.Scene.FloorSize <= 0 {
		c.Scene.FloorSize = def.Scene.FloorSize
	}
	if c.Controls.ScaleUp <= 0 {
		c.Controls.ScaleUp = def.Controls.ScaleUp
	}
	if c.Controls.ScaleDown <= 0 {
		c.Controls.ScaleDown = def.Controls.ScaleDown
	}
}
