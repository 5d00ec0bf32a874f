// Package config loads the waveform evaluation settings from file and environment.
//
// Precedence (highest to lowest):
//  1. Environment variables (BILBY_*)
//  2. Config file
//  3. Built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Eric-lyu-2019/bilby/waveform"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config holds the source model selection, grid and parameter values.
type Config struct {
	Model             string             `yaml:"model" validate:"required"`
	Duration          float64            `yaml:"duration" validate:"gt=0"`
	SamplingFrequency float64            `yaml:"sampling_frequency" validate:"gt=0"`
	Parameters        map[string]float64 `yaml:"parameters"`

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		Model:             "gaussian",
		Duration:          waveform.DefaultDuration,
		SamplingFrequency: waveform.DefaultSamplingFrequency,
		Parameters:        map[string]float64{},
	}
}

// Load reads configuration from path, which may be empty, and applies
// environment overrides. Environment variables always override file values.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		// Keys absent from the file keep their defaults
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		if cfg.Parameters == nil {
			cfg.Parameters = map[string]float64{}
		}
		cfg.ConfigFile = path
	}

	if err := mergeEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags of cfg.
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// GeneratorOptions returns the grid options described by cfg.
func (cfg *Config) GeneratorOptions() []waveform.Option {
	return []waveform.Option{
		waveform.WithDuration(cfg.Duration),
		waveform.WithSamplingFrequency(cfg.SamplingFrequency),
	}
}

// mergeEnv applies BILBY_* environment variables onto cfg.
func mergeEnv(cfg *Config) error {
	if v := os.Getenv("BILBY_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("BILBY_DURATION"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid BILBY_DURATION %q: %w", v, err)
		}
		cfg.Duration = d
	}
	if v := os.Getenv("BILBY_SAMPLING_FREQUENCY"); v != "" {
		fs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid BILBY_SAMPLING_FREQUENCY %q: %w", v, err)
		}
		cfg.SamplingFrequency = fs
	}
	return nil
}
