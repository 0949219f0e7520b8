package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the generation parameters. Values come from an optional YAML
// file; CLI flags that were explicitly set override it.
type Config struct {
	Products      int    `yaml:"products"`
	Customers     int    `yaml:"customers"`
	Orders        int    `yaml:"orders"`
	Conversations int    `yaml:"conversations"`
	Seed          int64  `yaml:"seed"`
	OutputDir     string `yaml:"output_dir"`
	Excel         bool   `yaml:"excel"`
	DSN           string `yaml:"dsn"`
}

// Default returns the documented defaults: 500 products, 5000 customers,
// 10000 orders, 2000 conversations, seed 42, output under ./data.
func Default() *Config {
	return &Config{
		Products:      500,
		Customers:     5000,
		Orders:        10000,
		Conversations: 2000,
		Seed:          42,
		OutputDir:     "data",
	}
}

// Load reads a config from path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
