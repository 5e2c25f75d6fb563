// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Run inputs
	JobID   string `json:"job_id,omitempty"`   // ID of a stored job posting
	JobFile string `json:"job_file,omitempty"` // Path to a job posting JSON file
	UserID  string `json:"user_id,omitempty"`  // User ID (required for DB-based runs)

	// Research
	CompanyWebsite string `json:"company_website,omitempty"` // Company website URL for research

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information

	// Server
	ListenAddr string `json:"listen_addr,omitempty"` // Address for the serve command
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
	// Validate mutually exclusive fields
	if c.JobID != "" && c.JobFile != "" {
		return fmt.Errorf("config error: 'job_id' and 'job_file' are mutually exclusive")
	}

	// Validate file paths exist (if specified)
	if c.JobFile != "" {
		if _, err := os.Stat(c.JobFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.JobFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.JobID == "" {
		result.JobID = defaults.JobID
	}
	if result.JobFile == "" {
		result.JobFile = defaults.JobFile
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}
	if result.CompanyWebsite == "" {
		result.CompanyWebsite = defaults.CompanyWebsite
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ListenAddr == "" {
		if defaults.ListenAddr != "" {
			result.ListenAddr = defaults.ListenAddr
		} else {
			result.ListenAddr = ":8080"
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
