// Package config holds the flp tool configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the flp tool configuration
type Config struct {
	CatalogDir string  `yaml:"catalog_dir"`
	Logging    Logging `yaml:"logging"`
	Dump       Dump    `yaml:"dump"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// Dump contains output options for the dump command
type Dump struct {
	MaxPreviewBytes int  `yaml:"max_preview_bytes"`
	ShowNames       bool `yaml:"show_names"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		CatalogDir: defaultCatalogDir(),
		Logging: Logging{
			Level: "info",
		},
		Dump: Dump{
			MaxPreviewBytes: 16,
			ShowNames:       true,
		},
	}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".flp", "config.yaml")
	}
	return filepath.Join(home, ".flp", "config.yaml")
}

func defaultCatalogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".flp", "catalog")
	}
	return filepath.Join(home, ".flp", "catalog")
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
