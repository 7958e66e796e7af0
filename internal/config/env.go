package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the process environment overrides.
type Env struct {
	ConfigPath string `env:"MYMATH_CONFIG"`
	DBPath     string `env:"MYMATH_DB"`
	LogFile    string `env:"MYMATH_LOG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads the MYMATH_* variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
