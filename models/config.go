// Package models defines data structures for run configuration.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for a sanitize run. Values come from
// an optional YAML file; CLI flags override individual fields.
type Config struct {
	Source         string `yaml:"source"`
	Input          string `yaml:"input"`
	Query          string `yaml:"query"`
	SourceDB       string `yaml:"source_db"`
	Target         string `yaml:"target"`
	Workers        int    `yaml:"workers"`
	ChunkSize      int    `yaml:"chunk_size"`
	Timeout        string `yaml:"timeout"`
	DetectLanguage bool   `yaml:"detect_language"`
	Format         string `yaml:"format"`
	HistoryDB      string `yaml:"history_db"`
}

// DefaultConfig returns the configuration used when no file or flags set a
// value.
func DefaultConfig() *Config {
	return &Config{
		Source: "file",
		Target: "results/output.txt",
	}
}

// LoadConfig reads and parses a YAML configuration file on top of the
// defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}
