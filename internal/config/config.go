// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Catalog   string `json:"catalog,omitempty"`   // Path to a skill catalog file (JSON or YAML)
	Resources string `json:"resources,omitempty"` // Path to a curated resource catalog file (JSON or YAML)

	// External services
	YouTubeAPIKey string `json:"youtube_api_key,omitempty"` // YouTube Data API key for tutorial lookups

	// Limits
	LookupTimeoutSeconds int `json:"lookup_timeout_seconds,omitempty"` // Per-skill resource lookup timeout
	MaxResources         int `json:"max_resources,omitempty"`          // Resources attached per roadmap step
	CacheTTLMinutes      int `json:"cache_ttl_minutes,omitempty"`      // Resource lookup memo lifetime

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed progress information
	JSONLogs bool `json:"json_logs,omitempty"` // Emit logs as JSON instead of console format
	Debug    bool `json:"debug,omitempty"`     // Enable debug-level logging
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.LookupTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'lookup_timeout_seconds' must be non-negative")
	}
	if c.MaxResources < 0 {
		return fmt.Errorf("config error: 'max_resources' must be non-negative")
	}
	if c.CacheTTLMinutes < 0 {
		return fmt.Errorf("config error: 'cache_ttl_minutes' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	if c.Resources != "" {
		if _, err := os.Stat(c.Resources); os.IsNotExist(err) {
			return fmt.Errorf("config error: resources file not found: %s", c.Resources)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.Resources == "" {
		result.Resources = defaults.Resources
	}
	if result.YouTubeAPIKey == "" {
		result.YouTubeAPIKey = defaults.YouTubeAPIKey
	}

	// Int fields: use default if zero
	if result.LookupTimeoutSeconds == 0 {
		result.LookupTimeoutSeconds = defaults.LookupTimeoutSeconds
	}
	if result.MaxResources == 0 {
		result.MaxResources = defaults.MaxResources
	}
	if result.CacheTTLMinutes == 0 {
		result.CacheTTLMinutes = defaults.CacheTTLMinutes
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LookupTimeout converts the configured seconds to a duration, zero when
// unset so downstream defaults apply.
func (c *Config) LookupTimeout() time.Duration {
	return time.Duration(c.LookupTimeoutSeconds) * time.Second
}

// CacheTTL converts the configured minutes to a duration, zero when unset.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}
