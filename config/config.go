// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package config loads settings from defaults, an optional config.yaml, a
// .env file and BVBERBER_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ViewsEmbedded selects the fragments compiled into the binary.
const ViewsEmbedded = "embed"

type Config struct {
	Env             string        `mapstructure:"ENV"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	ViewsSource     string        `mapstructure:"VIEWS_SOURCE"`
	TransitionDelay time.Duration `mapstructure:"TRANSITION_DELAY"`
	HomeRoute       string        `mapstructure:"HOME_ROUTE"`
	MetricsAddr     string        `mapstructure:"METRICS_ADDR"`
	FetchTimeout    time.Duration `mapstructure:"FETCH_TIMEOUT"`

	// Used by cmd/viewserver.
	ListenAddr string `mapstructure:"LISTEN_ADDR"`
	ViewsDir   string `mapstructure:"VIEWS_DIR"`
}

// Load reads configuration. Paths are searched for config.yaml; a missing file
// is not an error.
func Load(paths ...string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("BVBERBER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("ENV", "prod")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("VIEWS_SOURCE", ViewsEmbedded)
	v.SetDefault("TRANSITION_DELAY", "200ms")
	v.SetDefault("HOME_ROUTE", "welcome")
	v.SetDefault("METRICS_ADDR", "")
	v.SetDefault("FETCH_TIMEOUT", "10s")
	v.SetDefault("LISTEN_ADDR", ":8088")
	v.SetDefault("VIEWS_DIR", "assets")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TransitionDelay < 0 {
		return fmt.Errorf("TRANSITION_DELAY must not be negative, got %s", c.TransitionDelay)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", c.FetchTimeout)
	}
	if c.ViewsSource == "" {
		return errors.New("VIEWS_SOURCE must be set")
	}
	return nil
}

// Embedded reports whether fragments come from the binary rather than HTTP.
func (c Config) Embedded() bool {
	return c.ViewsSource == ViewsEmbedded
}

func (c Config) IsDev() bool {
	return c.Env == "dev" || c.Env == "development"
}
