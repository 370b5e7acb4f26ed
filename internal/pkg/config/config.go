package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments, security settings
// - default: Values common across all environments, standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Log  LogConfig
	Seed SeedConfig
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

type SeedConfig struct {
	// Fleet controls whether the fixed demo fleet is loaded at startup.
	Fleet bool `envconfig:"SEED_FLEET" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "error", // Error level only for tests
			Format: "text",
		},
		Seed: SeedConfig{
			Fleet: false,
		},
	}
}
