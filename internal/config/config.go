// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/hr-analytics/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	CSVPath string `json:"csv_path,omitempty"` // Path to the employee CSV file
	Output  string `json:"output,omitempty"`   // Path for the cleaned CSV output
	XLSX    string `json:"xlsx,omitempty"`     // Path for the report workbook

	// Behavior
	AsOf    string `json:"as_of,omitempty"`   // Reference date (YYYY-MM-DD) for age and tenure
	Workers int    `json:"workers,omitempty"` // Worker count for the cleaning stages
	Verbose bool   `json:"verbose,omitempty"` // Print detailed progress information

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	Addr string `json:"addr,omitempty"` // Listen address for the report server
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv returns a Config populated from environment variables.
// Only a subset of fields has an environment form.
func FromEnv() Config {
	return Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Addr:        os.Getenv("HR_ANALYTICS_ADDR"),
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	if c.AsOf != "" {
		if _, err := time.Parse(types.DateLayout, c.AsOf); err != nil {
			return fmt.Errorf("config error: 'as_of' must be YYYY-MM-DD: %w", err)
		}
	}

	if c.CSVPath != "" {
		if _, err := os.Stat(c.CSVPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: csv file not found: %s", c.CSVPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.CSVPath == "" {
		result.CSVPath = defaults.CSVPath
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.XLSX == "" {
		result.XLSX = defaults.XLSX
	}
	if result.AsOf == "" {
		result.AsOf = defaults.AsOf
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}

	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
