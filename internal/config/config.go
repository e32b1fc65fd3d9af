// Package config loads codescroll settings from file, environment, and
// defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the effective configuration for one invocation.
type Config struct {
	Theme      string  `mapstructure:"theme"`       // chroma highlighting theme
	Context    int     `mapstructure:"context"`     // unchanged lines kept around changes when collapsing
	Collapse   bool    `mapstructure:"collapse"`    // fold quiet unchanged runs
	LineHeight float64 `mapstructure:"line_height"` // line units used for anchor offset hints
}

// Default values used when neither file nor environment sets a key.
var Default = Config{
	Theme:      "dracula",
	Context:    2,
	Collapse:   true,
	LineHeight: 1,
}

// Load reads configuration with the usual precedence: defaults, then an
// optional codescroll.{yaml,json,toml} in dir, then CODESCROLL_* environment
// variables. A missing config file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("theme", Default.Theme)
	v.SetDefault("context", Default.Context)
	v.SetDefault("collapse", Default.Collapse)
	v.SetDefault("line_height", Default.LineHeight)

	v.SetEnvPrefix("CODESCROLL")
	v.AutomaticEnv()

	v.SetConfigName("codescroll")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}
