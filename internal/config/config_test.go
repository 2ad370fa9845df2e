package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"csv_path": "employees.csv",
		"as_of": "2024-01-01",
		"workers": 4,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "employees.csv", cfg.CSVPath)
	assert.Equal(t, "2024-01-01", cfg.AsOf)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeWorkers(t *testing.T) {
	cfg := &Config{Workers: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be non-negative")
}

func TestValidate_BadAsOf(t *testing.T) {
	cfg := &Config{AsOf: "01/01/2024"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "as_of")
}

func TestValidate_MissingCSV(t *testing.T) {
	cfg := &Config{CSVPath: "/nonexistent/employees.csv"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "csv file not found")
}

func TestValidate_Empty(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{CSVPath: "mine.csv"}
	defaults := Config{
		CSVPath:     "default.csv",
		AsOf:        "2024-06-01",
		Workers:     8,
		DatabaseURL: "postgres://localhost/hr",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.csv", merged.CSVPath)
	assert.Equal(t, "2024-06-01", merged.AsOf)
	assert.Equal(t, 8, merged.Workers)
	assert.Equal(t, "postgres://localhost/hr", merged.DatabaseURL)
}
