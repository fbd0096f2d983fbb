package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process settings that come from the environment rather than the
// config file.
type Env struct {
	// ConfigFile is the default for --config-file.
	ConfigFile string `env:"SPACETRADERS_CONFIG_FILE" envDefault:"spacetraders.json"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"SPACETRADERS_LOG_LEVEL" envDefault:"warn"`

	// LogFile, when set, receives log output instead of stderr.
	LogFile string `env:"SPACETRADERS_LOG_FILE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv returns Env populated from the environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
