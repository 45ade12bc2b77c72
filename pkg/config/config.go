// Package config provides configuration loading and management for
// tumorannot. It handles loading configuration from YAML files and provides
// default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Placement parameters
	Placement struct {
		// AutoReenter keeps point placement armed after box creation and
		// relaxation updates instead of requiring an explicit re-entry
		AutoReenter bool `yaml:"autoReenter"`
	} `yaml:"placement"`

	// Annotation parameters
	Annotation struct {
		// DefaultRelaxation is the margin applied when a box is first
		// created, in the volume's physical units (typically mm)
		DefaultRelaxation float64 `yaml:"defaultRelaxation"`

		// MaxRelaxation caps the relaxation control in the CLI; the
		// engine itself imposes no upper bound
		MaxRelaxation float64 `yaml:"maxRelaxation"`
	} `yaml:"annotation"`

	// Batch parameters
	Batch struct {
		// Extensions lists the volume filename suffixes picked up when
		// scanning a batch directory
		Extensions []string `yaml:"extensions"`

		// OutputDir is the subdirectory of the batch directory that
		// receives annotation records
		OutputDir string `yaml:"outputDir"`
	} `yaml:"batch"`

	// Output parameters
	Output struct {
		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default placement parameters
	cfg.Placement.AutoReenter = false

	// Set default annotation parameters
	cfg.Annotation.DefaultRelaxation = 0
	cfg.Annotation.MaxRelaxation = 50

	// Set default batch parameters
	cfg.Batch.Extensions = []string{".nii", ".nii.gz"}
	cfg.Batch.OutputDir = "annotations"

	// Set default output parameters
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
