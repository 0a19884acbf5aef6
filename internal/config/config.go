package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HistoryConfig configures the query-history store.
type HistoryConfig struct {
	// Enabled turns the history store on. When false, haybale search
	// never opens or writes to the history database.
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the SQLite history database.
	DBPath string `yaml:"db_path"`

	// MaxEntries is the configured row cap for the store. Validate rejects
	// negative values; the store does not prune rows, so the cap is not
	// enforced.
	MaxEntries int `yaml:"max_entries"`
}

// Config represents haybale's CLI configuration.
type Config struct {
	// DefaultMaxDepth is the traversal depth used when --max-depth is
	// not passed on the command line. Nil means unbounded.
	DefaultMaxDepth *int `yaml:"default_max_depth"`

	// DefaultFormat is the output driver used when --format is omitted:
	// "text" or "markdown".
	DefaultFormat string `yaml:"default_format"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// LogDir is the configured log directory. Log output goes to the
	// console only; nothing is written under LogDir.
	LogDir string `yaml:"log_dir"`

	// Color controls terminal colorization: "auto", "always" or "never".
	Color string `yaml:"color"`

	// History contains query-history store configuration.
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		DefaultMaxDepth: nil,
		DefaultFormat:   "text",
		LogLevel:        "info",
		LogDir:          ".haybale/logs",
		Color:           "auto",
		History: HistoryConfig{
			Enabled:    true,
			DBPath:     ".haybale/history.db",
			MaxEntries: 500,
		},
	}
}

// LoadConfig loads configuration from the specified file path. If the file
// doesn't exist, it returns default configuration without error; if it
// exists but is malformed, it returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	type yamlConfig struct {
		DefaultMaxDepth *int          `yaml:"default_max_depth"`
		DefaultFormat   string        `yaml:"default_format"`
		LogLevel        string        `yaml:"log_level"`
		LogDir          string        `yaml:"log_dir"`
		Color           string        `yaml:"color"`
		History         HistoryConfig `yaml:"history"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.DefaultMaxDepth != nil {
		cfg.DefaultMaxDepth = yamlCfg.DefaultMaxDepth
	}
	if yamlCfg.DefaultFormat != "" {
		cfg.DefaultFormat = yamlCfg.DefaultFormat
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}
	if yamlCfg.Color != "" {
		cfg.Color = yamlCfg.Color
	}

	// The History section needs presence detection: a zero-value bool or
	// int in YAML is indistinguishable from "not set" without inspecting
	// the raw document, the same trick the merge logic here has always
	// used for nested sections.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if historySection, exists := rawMap["history"]; exists && historySection != nil {
			history := yamlCfg.History
			historyMap, _ := historySection.(map[string]interface{})

			if _, exists := historyMap["enabled"]; exists {
				cfg.History.Enabled = history.Enabled
			}
			if _, exists := historyMap["db_path"]; exists {
				cfg.History.DBPath = history.DBPath
			}
			if _, exists := historyMap["max_entries"]; exists {
				cfg.History.MaxEntries = history.MaxEntries
			}
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .haybale/config.yaml in the
// specified directory. If the directory or file doesn't exist, it returns
// default configuration without error.
func LoadConfigFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ".haybale", "config.yaml")
	return LoadConfig(configPath)
}

// MergeWithFlags merges CLI flags into the configuration. Non-nil flag
// values override configuration values, so only explicitly-set flags take
// precedence over the config file.
func (c *Config) MergeWithFlags(maxDepth *int, format *string, logDir *string, color *string) {
	if maxDepth != nil {
		c.DefaultMaxDepth = maxDepth
	}
	if format != nil {
		c.DefaultFormat = *format
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if color != nil {
		c.Color = *color
	}
}

// Validate validates the configuration values, returning an error if any
// are invalid.
func (c *Config) Validate() error {
	if c.DefaultMaxDepth != nil && *c.DefaultMaxDepth < 0 {
		return fmt.Errorf("default_max_depth must be >= 0, got %d", *c.DefaultMaxDepth)
	}

	validFormats := map[string]bool{"text": true, "markdown": true}
	if !validFormats[c.DefaultFormat] {
		return fmt.Errorf("invalid default_format %q, must be one of: text, markdown", c.DefaultFormat)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[c.Color] {
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	if c.History.Enabled {
		if c.History.DBPath == "" {
			return fmt.Errorf("history.db_path cannot be empty when history is enabled")
		}
		if c.History.MaxEntries < 0 {
			return fmt.Errorf("history.max_entries must be >= 0, got %d", c.History.MaxEntries)
		}
	}

	return nil
}
