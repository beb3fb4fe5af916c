// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for sidekick.
//
// Configuration is a TOML file with sensible defaults and environment
// variable overrides:
//   - ~/.sidekick/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete sidekick configuration.
type Config struct {
	// DataDir is where the JSON data files live. Empty means the default
	// config directory (~/.sidekick).
	DataDir string `toml:"data_dir"`

	// Prompt is the interactive shell prompt.
	Prompt string `toml:"prompt"`

	// History configuration
	History HistoryConfig `toml:"history"`

	// Search configuration
	Search SearchConfig `toml:"search"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// HistoryConfig controls the command history log.
type HistoryConfig struct {
	// MaxEntries caps the persisted history; oldest entries are dropped first.
	MaxEntries int `toml:"max_entries"`
	// ListLimit is how many entries `history` shows by default.
	ListLimit int `toml:"list_limit"`
}

// SearchConfig controls the file search command.
type SearchConfig struct {
	// MaxResults is how many matches `search` prints before summarizing.
	MaxResults int `toml:"max_results"`
}

// UIConfig contains display configuration.
type UIConfig struct {
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Prompt: "> ",

		History: HistoryConfig{
			MaxEntries: 100,
			ListLimit:  10,
		},

		Search: SearchConfig{
			MaxResults: 20,
		},

		UI: UIConfig{
			Color: "auto",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the sidekick configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".sidekick"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ResolveDataDir returns the directory holding the JSON data files,
// creating it if necessary.
func (c *Config) ResolveDataDir() (string, error) {
	dir := c.DataDir
	if dir == "" {
		var err error
		dir, err = ConfigDir()
		if err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load loads configuration from the config file, falling back to defaults
// when the file is missing. Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadFromPath(cfg, path); err != nil {
				// A broken config file must not keep the assistant from
				// starting; report it and continue with defaults.
				cfg = Default()
				cfg.ApplyEnvOverrides()
				cfg.SetDefaults()
				return cfg, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific TOML file into cfg.
func LoadFromPath(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# sidekick configuration file")
	fmt.Fprintln(file, "# Generated by sidekick - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// =============================================================================
// DEFAULTS / VALIDATION
// =============================================================================

// SetDefaults fills in any missing or zero-value configuration fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Prompt == "" {
		c.Prompt = defaults.Prompt
	}
	if c.History.MaxEntries == 0 {
		c.History.MaxEntries = defaults.History.MaxEntries
	}
	if c.History.ListLimit == 0 {
		c.History.ListLimit = defaults.History.ListLimit
	}
	if c.Search.MaxResults == 0 {
		c.Search.MaxResults = defaults.Search.MaxResults
	}
	if c.UI.Color == "" {
		c.UI.Color = defaults.UI.Color
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.History.MaxEntries < 1 {
		errs = append(errs, ValidationError{
			Field:   "history.max_entries",
			Message: fmt.Sprintf("must be at least 1, got %d", c.History.MaxEntries),
		})
	}
	if c.History.ListLimit < 1 {
		errs = append(errs, ValidationError{
			Field:   "history.list_limit",
			Message: fmt.Sprintf("must be at least 1, got %d", c.History.ListLimit),
		})
	}
	if c.Search.MaxResults < 1 {
		errs = append(errs, ValidationError{
			Field:   "search.max_results",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Search.MaxResults),
		})
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[strings.ToLower(c.UI.Color)] {
		errs = append(errs, ValidationError{
			Field:   "ui.color",
			Message: fmt.Sprintf("invalid value '%s', must be one of: auto, always, never", c.UI.Color),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - SIDEKICK_DATA_DIR: overrides data_dir
//   - SIDEKICK_HISTORY_LIMIT: overrides history.max_entries
//   - SIDEKICK_NO_COLOR: set to "1" or "true" to force ui.color = "never"
func (c *Config) ApplyEnvOverrides() {
	if dir := os.Getenv("SIDEKICK_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}

	if limit := os.Getenv("SIDEKICK_HISTORY_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			c.History.MaxEntries = n
		}
	}

	if noColor := os.Getenv("SIDEKICK_NO_COLOR"); noColor != "" {
		if noColor == "1" || strings.ToLower(noColor) == "true" {
			c.UI.Color = "never"
		}
	}
}
