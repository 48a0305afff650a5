// Package config provides Viper-based configuration loading for the map
// generation binaries.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// GeneratorConfig holds batch tile-generation settings.
type GeneratorConfig struct {
	// Seed is the master seed for batch generation. Each tile derives its
	// own seed from it, so a batch replays exactly. 0 means roll a fresh
	// seed at startup.
	Seed uint64 `mapstructure:"seed"`
	// Workers is the maximum number of tiles generated concurrently.
	Workers int `mapstructure:"workers"`
	// TileWidth is the default tile width in grid cells for plans that do
	// not set their own.
	TileWidth int `mapstructure:"tile_width"`
	// TileHeight is the default tile height in grid cells for plans that do
	// not set their own.
	TileHeight int `mapstructure:"tile_height"`
}

// SpawnConfig holds vehicle spawn policy settings.
type SpawnConfig struct {
	// PlacementAttempts is the number of positions sampled per vehicle
	// before giving up on an occupied location (1 initial + retries).
	PlacementAttempts int `mapstructure:"placement_attempts"`
}

// ContentConfig holds content data locations.
type ContentConfig struct {
	// Dir is the directory of vehicle content YAML files.
	Dir string `mapstructure:"dir"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Spawn     SpawnConfig     `mapstructure:"spawn"`
	Content   ContentConfig   `mapstructure:"content"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateGenerator(c.Generator); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSpawn(c.Spawn); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGenerator(g GeneratorConfig) error {
	var errs []string
	if g.Workers < 1 {
		errs = append(errs, fmt.Sprintf("generator.workers must be >= 1, got %d", g.Workers))
	}
	if g.TileWidth < 1 {
		errs = append(errs, fmt.Sprintf("generator.tile_width must be >= 1, got %d", g.TileWidth))
	}
	if g.TileHeight < 1 {
		errs = append(errs, fmt.Sprintf("generator.tile_height must be >= 1, got %d", g.TileHeight))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSpawn(s SpawnConfig) error {
	if s.PlacementAttempts < 1 {
		return fmt.Errorf("spawn.placement_attempts must be >= 1, got %d", s.PlacementAttempts)
	}
	return nil
}

func validateContent(c ContentConfig) error {
	if c.Dir == "" {
		return fmt.Errorf("content.dir must not be empty")
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with DERELICT_ prefix
	v.SetEnvPrefix("DERELICT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in configuration used when no config file is
// given.
//
// Postcondition: Returns a Config that passes Validate.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Unmarshalling defaults cannot fail; the values below are well formed.
	_ = v.Unmarshal(&cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.workers", 4)
	v.SetDefault("generator.tile_width", 24)
	v.SetDefault("generator.tile_height", 24)

	v.SetDefault("spawn.placement_attempts", 3)

	v.SetDefault("content.dir", "content/vehicles")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
