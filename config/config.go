// Package config loads b3jones run settings from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/b3jones/bracket"
)

// DefaultMaxLength matches the bound the enumeration has historically been run at.
const DefaultMaxLength = 14

// Config is the top-level b3jones.yml configuration.
type Config struct {
	MaxLength    int    `yaml:"max_length"`
	Workers      int    `yaml:"workers,omitempty"`       // default 1 (sequential)
	SignMode     string `yaml:"sign_mode,omitempty"`     // "parity" (default) or "remainder"
	Database     string `yaml:"database,omitempty"`      // SQLite path; empty disables persistence
	LogLevel     string `yaml:"log_level,omitempty"`     // debug, info, warn, error
	PrintRecords bool   `yaml:"print_records,omitempty"` // print every (word, Jones) pair
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MaxLength: DefaultMaxLength,
		Workers:   1,
		SignMode:  bracket.ParitySign.String(),
		LogLevel:  "info",
	}
}

// Load reads, parses and validates the file at path. Fields missing from
// the file keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.MaxLength < 0 {
		return fmt.Errorf("max_length must be >= 0, got %d", c.MaxLength)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if _, err := c.ParsedSignMode(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// ParsedSignMode returns SignMode as a bracket.SignMode.
func (c *Config) ParsedSignMode() (bracket.SignMode, error) {
	m, err := bracket.ParseSignMode(c.SignMode)
	if err != nil {
		return 0, fmt.Errorf("sign_mode: %w", err)
	}
	return m, nil
}

// Level returns LogLevel as a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
