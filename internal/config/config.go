// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config handles loading and validation of YAML configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"reqscan/internal/reference"
)

// Config represents the complete configuration structure
type Config struct {
	// Default settings applied when flags are not provided
	Defaults struct {
		Format       string `yaml:"format"`
		DocumentType string `yaml:"document_type"`
		DocumentName string `yaml:"document_name"`
		Verbose      bool   `yaml:"verbose"`
		NoColor      bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Library extensions merged into the built-in reference library
	Library struct {
		Extensions []reference.CategoryExtension `yaml:"extensions"`
	} `yaml:"library"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.DocumentType = "custom"

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	candidates := []string{
		"reqscan.yaml",
		"reqscan.yml",
		".reqscan.yaml",
		".reqscan.yml",
	}
	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		homeConfig := filepath.Join(home, ".config", "reqscan", "config.yaml")
		if fileExists(homeConfig) {
			return homeConfig
		}
	}

	return ""
}

// ValidateConfig checks the configuration for invalid values
func ValidateConfig(config *Config) error {
	switch config.Defaults.Format {
	case "", "text", "json", "yaml", "csv":
	default:
		return fmt.Errorf("invalid default format: %s", config.Defaults.Format)
	}

	for i, ext := range config.Library.Extensions {
		if ext.ID == "" {
			return fmt.Errorf("library extension %d is missing an id", i+1)
		}
	}
	return nil
}

// BuildLibrary constructs the reference library with any configured
// extensions applied
func (c *Config) BuildLibrary() *reference.Library {
	lib := reference.NewLibrary()
	if len(c.Library.Extensions) > 0 {
		lib.MergeExtensions(c.Library.Extensions)
	}
	return lib
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard
// locations when configFile is empty). If loading fails, it returns a default
// configuration.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Fall back to defaults — callers should not crash on a missing/bad config file.
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
