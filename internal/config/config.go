// Package config loads exgen settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/exgen/internal/engine"
	"github.com/abhisek/exgen/internal/problemgen"
	"github.com/abhisek/exgen/internal/sampler"
)

// Environment variables read by Load.
const (
	EnvConfig      = "EXGEN_CONFIG"
	EnvSeed        = "EXGEN_SEED"
	EnvMaxAttempts = "EXGEN_MAX_ATTEMPTS"
)

// Config holds all exgen configuration.
type Config struct {
	// Seed for every random source. Zero picks a fresh seed per run.
	Seed uint64 `yaml:"seed"`

	Sampling SamplingConfig `yaml:"sampling"`

	// Topics limits the enabled topics. Empty enables all of them.
	Topics []string `yaml:"topics"`

	Worksheet WorksheetConfig `yaml:"worksheet"`
	Practice  PracticeConfig  `yaml:"practice"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SamplingConfig tunes rejection sampling.
type SamplingConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	Target      sampler.Range `yaml:"target"`
}

// WorksheetConfig sets worksheet defaults.
type WorksheetConfig struct {
	Count   int `yaml:"count"`
	Workers int `yaml:"workers"`
}

// PracticeConfig tunes the practice session.
type PracticeConfig struct {
	// Questions is the number of answers that ends a session.
	Questions int `yaml:"questions"`

	// RecentWindow is how many recent questions are never repeated.
	RecentWindow int `yaml:"recent_window"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Seed: 0,
		Sampling: SamplingConfig{
			MaxAttempts: sampler.DefaultMaxAttempts,
			Target:      sampler.DefaultRange,
		},
		Worksheet: WorksheetConfig{
			Count:   10,
			Workers: 4,
		},
		Practice: PracticeConfig{
			Questions:    10,
			RecentWindow: 8,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file. An empty path falls back to
// $EXGEN_CONFIG; a missing file yields the defaults. Environment overrides
// are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvMaxAttempts); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMaxAttempts, v, err)
		}
		c.Sampling.MaxAttempts = n
	}
	return nil
}

// Validate checks the configuration for values the engine cannot use.
func (c *Config) Validate() error {
	if c.Sampling.MaxAttempts < 1 {
		return fmt.Errorf("sampling.max_attempts must be at least 1, got %d", c.Sampling.MaxAttempts)
	}
	if c.Sampling.Target.Min > c.Sampling.Target.Max {
		return fmt.Errorf("sampling.target is empty: %s", c.Sampling.Target)
	}
	if c.Worksheet.Count < 1 {
		return fmt.Errorf("worksheet.count must be at least 1, got %d", c.Worksheet.Count)
	}
	if c.Worksheet.Workers < 1 {
		return fmt.Errorf("worksheet.workers must be at least 1, got %d", c.Worksheet.Workers)
	}
	if c.Practice.Questions < 1 {
		return fmt.Errorf("practice.questions must be at least 1, got %d", c.Practice.Questions)
	}
	if c.Practice.RecentWindow < 0 {
		return fmt.Errorf("practice.recent_window must not be negative, got %d", c.Practice.RecentWindow)
	}
	if !slices.Contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	return nil
}

// Engine returns the generator settings for seed.
func (c *Config) Engine(seed uint64) engine.Config {
	return engine.Config{
		Seed:        seed,
		MaxAttempts: c.Sampling.MaxAttempts,
		TargetRange: c.Sampling.Target,
		Validators:  problemgen.DefaultValidators(),
	}
}

// Registry returns the built-in registry limited to the enabled topics.
func (c *Config) Registry(opts ...engine.Option) (*engine.Registry, error) {
	reg := engine.DefaultRegistry(opts...)
	if len(c.Topics) == 0 {
		return reg, nil
	}
	return reg.Only(c.Topics...)
}
