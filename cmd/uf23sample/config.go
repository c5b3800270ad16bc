package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Direction is one line of sight in galactic coordinates, degrees.
type Direction struct {
	L float64 `yaml:"l"`
	B float64 `yaml:"b"`
}

// Config captures a sampling campaign: which model, how many random
// parameter draws, and the lines of sight to integrate over.
type Config struct {
	Model        string      `yaml:"model"`
	Samples      int         `yaml:"samples"`
	Seed         int64       `yaml:"seed"`
	StepKpc      float64     `yaml:"step_kpc"`
	MaxRadiusKpc float64     `yaml:"max_radius_kpc"`
	SunPosition  []float64   `yaml:"sun_position"`
	Directions   []Direction `yaml:"directions"`
}

// loadConfig reads and validates a Config from YAML.
func loadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Model:        "base",
		Samples:      1000,
		Seed:         123,
		StepKpc:      0.1,
		MaxRadiusKpc: 30,
	}
}

func (c *Config) validate() error {
	if c.Model == "" {
		return errors.New("model must be set")
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be > 0 (got %d)", c.Samples)
	}
	if c.StepKpc <= 0 {
		return fmt.Errorf("step_kpc must be > 0 (got %g)", c.StepKpc)
	}
	if c.MaxRadiusKpc <= 0 {
		return fmt.Errorf("max_radius_kpc must be > 0 (got %g)", c.MaxRadiusKpc)
	}
	if len(c.SunPosition) != 0 && len(c.SunPosition) != 3 {
		return fmt.Errorf("sun_position must have 3 components (got %d)", len(c.SunPosition))
	}
	if len(c.Directions) == 0 {
		return errors.New("at least one direction must be given")
	}
	return nil
}
