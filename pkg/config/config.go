// Package config loads wren settings from wren.yaml and WREN_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// FileName is the config file name searched in the working directory.
const FileName = "wren"

// EnvPrefix prefixes environment overrides, e.g. WREN_LOG_LEVEL.
const EnvPrefix = "WREN"

// Config represents wren.yaml configuration
type Config struct {
	// Definition is the catalog definition path. Empty selects the built-in
	// definition.
	Definition string      `mapstructure:"definition"`
	Log        LogConfig   `mapstructure:"log"`
	Watch      WatchConfig `mapstructure:"watch"`
	Scan       ScanConfig  `mapstructure:"scan"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// WatchConfig holds render --watch settings
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// ScanConfig holds scan settings
type ScanConfig struct {
	Extensions []string `mapstructure:"extensions"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Log:   LogConfig{Level: "info"},
		Watch: WatchConfig{Debounce: 200 * time.Millisecond},
		Scan:  ScanConfig{Extensions: []string{".py"}},
	}
}

// Load reads configuration. With an explicit path the file must exist;
// otherwise wren.yaml is looked up in the working directory and defaults
// are used when it is absent. Environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("definition", defaults.Definition)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("watch.debounce", defaults.Watch.Debounce)
	v.SetDefault("scan.extensions", defaults.Scan.Extensions)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	if cfg.Watch.Debounce <= 0 {
		return nil, fmt.Errorf("watch.debounce must be positive, got %s", cfg.Watch.Debounce)
	}

	return &cfg, nil
}
