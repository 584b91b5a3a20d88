package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings for fetching and output.
type Config struct {
	Fetch struct {
		Headless           bool `yaml:"headless"`
		ScrollCount        int  `yaml:"scroll_count"`
		ScrollDelaySeconds int  `yaml:"scroll_delay_seconds"`
	} `yaml:"fetch"`
	Search struct {
		Location string `yaml:"location"`
	} `yaml:"search"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// GetDefaultConfig returns a default configuration
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Fetch.Headless = true
	cfg.Fetch.ScrollCount = 4
	cfg.Fetch.ScrollDelaySeconds = 2
	cfg.Search.Location = "toronto"
	cfg.Output.Dir = "output"
	return cfg
}
