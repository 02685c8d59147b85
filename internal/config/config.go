// Package config loads caseforge configuration from YAML with environment
// overrides. Missing files fall back to defaults so the tool runs with zero
// setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all caseforge configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Template catalog
	Catalog CatalogConfig `yaml:"catalog"`

	// Generation defaults
	Generation GenerationConfig `yaml:"generation"`

	// Case archive
	Archive ArchiveConfig `yaml:"archive"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig configures the template store.
type CatalogConfig struct {
	// Path to an external catalog YAML; empty means the embedded catalog.
	Path string `yaml:"path"`

	// Watch enables fsnotify hot reload of the external catalog.
	Watch bool `yaml:"watch"`
}

// GenerationConfig configures generation defaults.
type GenerationConfig struct {
	// Company named in witness backstories.
	Company string `yaml:"company"`

	// DefaultCount is how many cases `generate` produces when --count is
	// not given.
	DefaultCount int `yaml:"default_count"`

	// AuthCondition is the special-condition tag that triggers evidence
	// authentication; empty disables the extension.
	AuthCondition string `yaml:"auth_condition"`
}

// ArchiveConfig configures the SQLite case archive.
type ArchiveConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
	File   string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "caseforge",
		Version: "1.0.0",

		Catalog: CatalogConfig{
			Path:  "",
			Watch: false,
		},

		Generation: GenerationConfig{
			Company:       "TechCorp",
			DefaultCount:  1,
			AuthCondition: "forensic_audit",
		},

		Archive: ArchiveConfig{
			DatabasePath: filepath.Join(".caseforge", "archive.db"),
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "caseforge.log",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("CASEFORGE_CATALOG"); path != "" {
		c.Catalog.Path = path
	}
	if path := os.Getenv("CASEFORGE_DB"); path != "" {
		c.Archive.DatabasePath = path
	}
	if level := os.Getenv("CASEFORGE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if company := os.Getenv("CASEFORGE_COMPANY"); company != "" {
		c.Generation.Company = company
	}
}
