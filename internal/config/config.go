// Package config loads egghunt settings from the config file and
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the full egghunt configuration.
type Config struct {
	Hints       HintsConfig       `mapstructure:"hints"`
	Performance PerformanceConfig `mapstructure:"performance"`
	UI          UIConfig          `mapstructure:"ui"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
}

// HintsConfig controls the near-miss hint system.
type HintsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Max     int  `mapstructure:"max"`
}

// PerformanceConfig controls recognizer sampling.
type PerformanceConfig struct {
	// Mode is low, medium, or high.
	Mode string `mapstructure:"mode"`
}

// UIConfig controls presentation.
type UIConfig struct {
	ReducedMotion bool `mapstructure:"reduced_motion"`
	Notifications bool `mapstructure:"notifications"`
	Accessibility bool `mapstructure:"accessibility"`
}

// StorageConfig controls where discovery state lives.
type StorageConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// CatalogConfig controls which egg definitions are loaded.
type CatalogConfig struct {
	// Builtin includes the bundled egg set.
	Builtin bool `mapstructure:"builtin"`
	// Dirs are extra directories of *.json egg catalogs.
	Dirs []string `mapstructure:"dirs"`
}

// Init points v at the config file and environment. An empty cfgFile means
// the default search path (~/.config/egghunt/config.yaml).
func Init(v *viper.Viper, cfgFile string) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "egghunt"))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("EGGHUNT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the config from v. A missing config file is not an error;
// defaults fill every gap.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(cfg, v)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for unset fields. Booleans that default
// to true need the IsSet check, a plain zero test can't tell "false" from
// "absent".
func applyDefaults(cfg *Config, v *viper.Viper) {
	if !v.IsSet("hints.enabled") {
		cfg.Hints.Enabled = true
	}
	if cfg.Hints.Max == 0 {
		cfg.Hints.Max = 3
	}
	if cfg.Performance.Mode == "" {
		cfg.Performance.Mode = "high"
	}
	if !v.IsSet("ui.notifications") {
		cfg.UI.Notifications = true
	}
	if !v.IsSet("catalog.builtin") {
		cfg.Catalog.Builtin = true
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch c.Performance.Mode {
	case "low", "medium", "high":
	default:
		return fmt.Errorf("invalid performance mode: %s (must be low, medium, or high)", c.Performance.Mode)
	}

	if c.Hints.Max < 0 {
		return fmt.Errorf("hints.max must not be negative")
	}
	return nil
}
