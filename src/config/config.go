package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"readme-gen/src/internal/common"
)

// Config contains generator configuration
type Config struct {
	// Output is the README filename written into the project root
	Output string `yaml:"output"`
	// IncludeSamples toggles the code-examples section
	IncludeSamples bool `yaml:"include_samples"`
	// MaxSampleLines caps how many lines are read when sampling a file
	MaxSampleLines int `yaml:"max_sample_lines,omitempty"`
	// ExtraExcludeDirs are skipped during scanning in addition to the
	// built-in noise directories
	ExtraExcludeDirs []string `yaml:"extra_exclude_dirs,omitempty"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Output == "" {
		return fmt.Errorf("output filename is required")
	}
	if filepath.Base(config.Output) != config.Output {
		return fmt.Errorf("output must be a bare filename, got %s", config.Output)
	}
	if config.MaxSampleLines < 0 {
		return fmt.Errorf("max_sample_lines must not be negative")
	}
	return nil
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".readme-gen", "config.yaml")
}

// GetDefaultConfig returns the built-in defaults
func GetDefaultConfig() *Config {
	return &Config{
		Output:         "README.md",
		IncludeSamples: true,
		MaxSampleLines: common.MaxSampleLines,
	}
}

// LoadOrDefault loads the config at path when it exists, otherwise the
// defaults. An empty path means the default location.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = GetDefaultConfigPath()
		if !common.FileExists(path) {
			return GetDefaultConfig(), nil
		}
	}
	return LoadConfig(path)
}
