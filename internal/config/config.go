// Package config loads textkit settings from an optional YAML file and the
// environment.
package config

import (
	"context"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the defaults the textkit commands fall back to when a flag is
// not given.
type Config struct {
	// Environment selects the logger flavour (development or production)
	Environment string `env:"TEXTKIT_ENVIRONMENT" env-default:"development" yaml:"environment"`

	Words struct {
		// MinLength is the exclusive lower bound on word length
		MinLength int `env:"TEXTKIT_MIN_LENGTH" env-default:"0" yaml:"minLength"`
		// TopN is how many entries the top command ranks
		TopN int `env:"TEXTKIT_TOP_N" env-default:"10" yaml:"topN"`
	} `yaml:"words"`

	Log struct {
		// Level is the severity label used by the log command
		Level string `env:"TEXTKIT_LOG_LEVEL" env-default:"INFO" yaml:"level"`
		// ProcessID is printed by the log command; 0 means the current process
		ProcessID int `env:"TEXTKIT_PID" env-default:"0" yaml:"processId"`
		// TimeFormat is the Go layout used for the default timestamp
		TimeFormat string `env:"TEXTKIT_TIME_FORMAT" env-default:"2006-01-02 15:04:05" yaml:"timeFormat"`
	} `yaml:"log"`
}

// Load reads the YAML file at configPath and then the environment. With an
// empty configPath only the environment and defaults are used.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	return &cfg, nil
}

type key struct{}

// WithConfig returns a copy of ctx carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, key{}, cfg)
}

// FromContext returns the Config stored in ctx. When none is stored it falls
// back to Load("") and, failing that, to the zero Config.
func FromContext(ctx context.Context) *Config {
	if cfg, _ := ctx.Value(key{}).(*Config); cfg != nil {
		return cfg
	}
	if cfg, err := Load(""); err == nil {
		return cfg
	}
	return &Config{}
}
