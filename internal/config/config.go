// Package config loads the tool configuration. Values come from an optional
// config file, AURORA_* environment variables, and built-in defaults,
// in that precedence order.
package config

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/aurora-pm/aurora/internal/env"
)

// DefaultHost is the default clone host for bare package names.
const DefaultHost = "aur.archlinux.org"

// Config holds the resolved tool configuration.
type Config struct {
	WorkDir string `mapstructure:"workdir"` // workspace root for checkouts
	BinDir  string `mapstructure:"bindir"`  // install destination
	Host    string `mapstructure:"host"`    // clone host
}

// Load reads config.yaml from the user config directory if present and
// applies environment overrides. A missing config file is not an error.
func Load() (*Config, error) {
	binDir, err := env.BinDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := env.ConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix("aurora")
	v.AutomaticEnv()

	v.SetDefault("workdir", env.WorkDir())
	v.SetDefault("bindir", binDir)
	v.SetDefault("host", DefaultHost)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
