// Package config loads CLI settings from config files and environment
// variables.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the settings shared by all stacube commands. Values come
// from a stacube.yaml file in the working directory or the home
// directory, overridden by STACUBE_* environment variables.
type Config struct {
	Output   string `mapstructure:"output"`
	NoColor  bool   `mapstructure:"no_color"`
	FailFast bool   `mapstructure:"fail_fast"`
	Verbose  bool   `mapstructure:"verbose"`
}

// Load reads the configuration. A missing config file is not an error,
// the defaults apply.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("output", "text")
	v.SetDefault("no_color", false)
	v.SetDefault("fail_fast", false)
	v.SetDefault("verbose", false)

	v.SetConfigName("stacube")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	v.SetEnvPrefix("STACUBE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration. Callers that override fields after
// Load should validate again.
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid output format %q (want text, json or yaml)", c.Output)
	}
}
