package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds optional overrides read from the environment at startup.
type EnvConfig struct {
	Fullscreen bool   `env:"SHOWDOWN_FULLSCREEN" envDefault:"false"`
	Mute       bool   `env:"SHOWDOWN_MUTE" envDefault:"false"`
	AppName    string `env:"SHOWDOWN_APP_NAME" envDefault:"showdown"`
	Seed       int64  `env:"SHOWDOWN_SEED"`
	AssetsDir  string `env:"SHOWDOWN_ASSETS_DIR"`
}

// Env is populated by LoadEnv.
var Env EnvConfig

// LoadEnv parses the environment into Env.
func LoadEnv() error {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	Env = cfg
	return nil
}
