// Package config loads lvsum CLI settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsum/largestsum"
)

// ErrInvalidConfig is returned by Validate (wrapped with the offending field).
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "lvsum.yaml"

// Config holds all lvsum configuration.
type Config struct {
	// Solver settings map onto largestsum.Options.
	Solver SolverConfig `yaml:"solver"`

	// Logging settings for the CLI.
	Logging LoggingConfig `yaml:"logging"`
}

// SolverConfig configures the largestsum solver.
type SolverConfig struct {
	Recurrence string `yaml:"recurrence"` // take-only, take-or-skip
	Backtrack  string `yaml:"backtrack"`  // skip-unchanged, inclusion-flags
	MaxCells   uint64 `yaml:"max_cells"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Recurrence: largestsum.TakeOnly.String(),
			Backtrack:  largestsum.SkipUnchanged.String(),
			MaxCells:   largestsum.DefaultMaxCells,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to a YAML file, creating parent directories.
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

// applyEnvOverrides applies LVSUM_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("LVSUM_RECURRENCE"); v != "" {
		c.Solver.Recurrence = v
	}
	if v := os.Getenv("LVSUM_BACKTRACK"); v != "" {
		c.Solver.Backtrack = v
	}
	if v := os.Getenv("LVSUM_MAX_CELLS"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("LVSUM_MAX_CELLS=%q: %w", v, ErrInvalidConfig)
		}
		c.Solver.MaxCells = n
	}
	if v := os.Getenv("LVSUM_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return nil
}

// Validate checks mode names and logging settings.
func (c *Config) Validate() error {
	if _, err := largestsum.ParseRecurrence(c.Solver.Recurrence); err != nil {
		return fmt.Errorf("solver.recurrence %q: %w", c.Solver.Recurrence, ErrInvalidConfig)
	}
	if _, err := largestsum.ParseBacktrackMode(c.Solver.Backtrack); err != nil {
		return fmt.Errorf("solver.backtrack %q: %w", c.Solver.Backtrack, ErrInvalidConfig)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalidConfig)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q: %w", c.Logging.Format, ErrInvalidConfig)
	}

	return nil
}

// SolverOptions converts the solver section into largestsum.Options.
// Call Validate first; unknown names fall back to the defaults here.
func (c *Config) SolverOptions() largestsum.Options {
	opts := largestsum.DefaultOptions()
	if r, err := largestsum.ParseRecurrence(c.Solver.Recurrence); err == nil {
		opts.Recurrence = r
	}
	if m, err := largestsum.ParseBacktrackMode(c.Solver.Backtrack); err == nil {
		opts.Backtrack = m
	}
	opts.MaxCells = c.Solver.MaxCells

	return opts
}
