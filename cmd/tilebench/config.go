package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the bench command's flags. Flags explicitly set on the
// command line win over file values.
type Config struct {
	Runs          int    `yaml:"runs"`
	Sizes         []int  `yaml:"sizes"`
	Algorithm     string `yaml:"algorithm"`
	Seed          int64  `yaml:"seed"`
	MaxDepth      int    `yaml:"max_depth"`
	MaxExpansions int    `yaml:"max_expansions"`
	Journal       string `yaml:"journal"`
	DB            string `yaml:"db"`
}

// DefaultConfig returns the benchmark defaults: ten runs per size for
// 2x2 through 4x4, both algorithms, in-memory journal.
func DefaultConfig() Config {
	return Config{
		Runs:      10,
		Sizes:     []int{2, 3, 4},
		Algorithm: "both",
		Journal:   "memory",
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
