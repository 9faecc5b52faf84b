// Package config loads actionkit CLI settings from the environment and
// optional .env files.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/actionkit/pkg/logger"
)

// Prefix is prepended to every variable name.
const Prefix = "ACTIONKIT_"

// Config holds CLI settings.
type Config struct {
	Env       string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Namespace string `env:"NAMESPACE" envDefault:"/"`
	Manifest  string `env:"MANIFEST"`
}

// Load reads envFiles into the process environment, then parses Config.
// Without envFiles it tries ./.env and ignores a missing file. Variables
// already set in the environment win over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		// The default .env is optional.
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, errors.Join(ErrLoadingEnvFile, err)
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad(envFiles ...string) *Config {
	cfg, err := Load(envFiles...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

// Validate checks values that env tags cannot express.
func (c *Config) Validate() error {
	switch logger.Format(c.LogFormat) {
	case logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("%w: %sLOG_FORMAT=%q, must be %q or %q",
			ErrInvalidConfig, Prefix, c.LogFormat, logger.FormatJSON, logger.FormatText)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %sLOG_LEVEL: %w", ErrInvalidConfig, Prefix, err)
	}
	if c.Namespace == "" {
		return fmt.Errorf("%w: %sNAMESPACE must not be empty", ErrInvalidConfig, Prefix)
	}
	return nil
}

// LoggerOptions translates the config into logger options.
func (c *Config) LoggerOptions(service string) []logger.Option {
	return []logger.Option{
		logger.WithEnvironment(c.Env, service),
		logger.WithFormat(logger.Format(c.LogFormat)),
		logger.WithLevelName(c.LogLevel),
	}
}
