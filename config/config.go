// Package config handles dtcalc's user configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied when a value is not set in any config file.
const (
	DefaultHistoryFile  = "~/.dtcalc_history"
	DefaultHistoryLimit = 1000
	DefaultColorMode    = "auto"
	DefaultPrompt       = "> "
)

// Config represents the application configuration
type Config struct {
	HistoryFile  string `yaml:"history_file,omitempty"`
	HistoryLimit int    `yaml:"history_limit,omitempty"`
	Color        string `yaml:"color,omitempty"` // auto, always, never
	Prompt       string `yaml:"prompt,omitempty"`
}

// DefaultConfig returns a fully populated config with all default values.
func DefaultConfig() *Config {
	return &Config{
		HistoryFile:  DefaultHistoryFile,
		HistoryLimit: DefaultHistoryLimit,
		Color:        DefaultColorMode,
		Prompt:       DefaultPrompt,
	}
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".dtcalc"
	}
	return filepath.Join(configDir, "dtcalc")
}

// ConfigPath returns the path to the global config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".dtcalc.yaml"
}

// Load loads the configuration from disk.
// It starts from defaults, loads the global config from the XDG config
// directory, then merges any local .dtcalc.yaml on top (local values
// take precedence).
func Load() (*Config, error) {
	cfg := DefaultConfig()

	globalPath := ConfigPath()
	if _, err := os.Stat(globalPath); err == nil {
		data, err := os.ReadFile(globalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read global config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse global config file: %w", err)
		}
	}

	localPath := LocalConfigPath()
	if _, err := os.Stat(localPath); err == nil {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read local config file: %w", err)
		}

		var localCfg Config
		if err := yaml.Unmarshal(data, &localCfg); err != nil {
			return nil, fmt.Errorf("failed to parse local config file: %w", err)
		}
		cfg = mergeConfig(cfg, &localCfg)
	}

	return cfg, nil
}

// mergeConfig merges local config on top of global config.
// Local values take precedence; unset local values preserve global values.
func mergeConfig(global, local *Config) *Config {
	result := *global

	if local.HistoryFile != "" {
		result.HistoryFile = local.HistoryFile
	}
	if local.HistoryLimit != 0 {
		result.HistoryLimit = local.HistoryLimit
	}
	if local.Color != "" {
		result.Color = local.Color
	}
	if local.Prompt != "" {
		result.Prompt = local.Prompt
	}

	return &result
}

// HistoryPath returns the history file location with a leading "~"
// expanded to the user's home directory.
func (c *Config) HistoryPath() string {
	path := c.HistoryFile
	if path == "" {
		path = DefaultHistoryFile
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Base(path)
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ColorEnabled resolves the color setting against whether output is a
// terminal.
func (c *Config) ColorEnabled(isTerminal bool) bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal
	}
}

// ToYAML returns the config as a YAML string
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// ConfigPathInfo contains information about config file paths
type ConfigPathInfo struct {
	GlobalPath   string
	GlobalExists bool
	LocalPath    string
	LocalExists  bool
}

// GetConfigPaths returns path info for both global and local configs
func GetConfigPaths() ConfigPathInfo {
	globalPath := ConfigPath()
	localPath := LocalConfigPath()

	absLocalPath, err := filepath.Abs(localPath)
	if err != nil {
		absLocalPath = localPath
	}

	_, globalErr := os.Stat(globalPath)
	_, localErr := os.Stat(localPath)

	return ConfigPathInfo{
		GlobalPath:   globalPath,
		GlobalExists: globalErr == nil,
		LocalPath:    absLocalPath,
		LocalExists:  localErr == nil,
	}
}

// MinimalConfig returns a minimal config template with comments
func MinimalConfig() string {
	return `# dtcalc configuration file

# Where interactive history is stored
history_file: ~/.dtcalc_history

# How many history entries to keep
history_limit: 1000

# Colorize interactive output: auto, always, or never
color: auto

# Interactive prompt text
# prompt: "> "
`
}

// SaveTo writes content to a specific path, creating directories as needed
func SaveTo(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
