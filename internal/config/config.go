// Package config holds the autopun configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/temporal-IPA/autopun/pkg/conversion"
)

// Config holds all autopun configuration.
type Config struct {
	// Dictionary sources
	Dictionary DictionaryConfig `yaml:"dictionary"`

	// Pun synthesis
	Pun PunConfig `yaml:"pun"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DictionaryConfig configures where words and pronunciations come from.
type DictionaryConfig struct {
	Paths    []string `yaml:"paths"`             // phonetic dictionaries, loaded in order
	Lexicon  []string `yaml:"lexicon,omitempty"` // exact pronunciations overriding the rules
	WordList string   `yaml:"word_list"`         // plain word list read by convert
	Encoding string   `yaml:"encoding"`          // charset of the word list
}

// PunConfig configures the synthesizer.
type PunConfig struct {
	MaxPhones  int    `yaml:"max_phones"`  // 0 disables the bound
	Seed       uint64 `yaml:"seed"`        // 0 draws a fresh seed per run
	NoSolution string `yaml:"no_solution"` // printed when nothing covers a line
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Dictionary: DictionaryConfig{
			Paths:    []string{"phones"},
			WordList: "/usr/share/dict/words",
			Encoding: "utf-8",
		},
		Pun: PunConfig{
			MaxPhones:  1024,
			NoSolution: "None found!",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

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
func (c *Config) applyEnvOverrides() error {
	// List of dictionaries, separated like PATH
	if v := os.Getenv("AUTOPUN_DICTIONARY"); v != "" {
		c.Dictionary.Paths = filepath.SplitList(v)
	}
	if v := os.Getenv("AUTOPUN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("AUTOPUN_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid AUTOPUN_SEED %q: %w", v, err)
		}
		c.Pun.Seed = seed
	}
	return nil
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted logging formats.
var ValidLogFormats = []string{"json", "console"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Pun.MaxPhones < 0 {
		return fmt.Errorf("invalid pun.max_phones: %d (must be >= 0)", c.Pun.MaxPhones)
	}
	if _, err := conversion.ParseEncoding(c.Dictionary.Encoding); err != nil {
		return fmt.Errorf("invalid dictionary.encoding: %w", err)
	}
	if !slices.Contains(ValidLogLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("invalid logging.level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if !slices.Contains(ValidLogFormats, strings.ToLower(c.Logging.Format)) {
		return fmt.Errorf("invalid logging.format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}
	return nil
}
