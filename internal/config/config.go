// Package config loads mount and visibility settings with viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MOUNT_MOUNT_POOL_SIZE.
const EnvPrefix = "MOUNT"

// Config is the complete configuration.
type Config struct {
	Mount      MountConfig      `mapstructure:"mount"`
	Visibility VisibilityConfig `mapstructure:"visibility"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// MountConfig controls flattening and mounting.
type MountConfig struct {
	// Incremental mounts only outputs that intersect the viewport.
	Incremental bool `mapstructure:"incremental"`
	// PoolSize is the default number of recycled instances kept per
	// content type.
	PoolSize int `mapstructure:"pool_size"`
	// ForegroundOnHost folds foregrounds into their host output.
	ForegroundOnHost bool `mapstructure:"foreground_on_host"`
	// AccessibilityEnabled makes accessibility metadata require a host.
	AccessibilityEnabled bool `mapstructure:"accessibility_enabled"`
}

// VisibilityConfig controls visibility event derivation.
type VisibilityConfig struct {
	// FocusedRatio is the inclusive fraction of min(item, viewport) area
	// that counts as focused.
	FocusedRatio float64 `mapstructure:"focused_ratio"`
	// Process enables visibility events on viewport changes.
	Process bool `mapstructure:"process"`
}

// LoggingConfig controls debug logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Mount: MountConfig{
			Incremental: true,
			PoolSize:    3,
		},
		Visibility: VisibilityConfig{
			FocusedRatio: 0.5,
			Process:      true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("mount.incremental", defaults.Mount.Incremental)
	v.SetDefault("mount.pool_size", defaults.Mount.PoolSize)
	v.SetDefault("mount.foreground_on_host", defaults.Mount.ForegroundOnHost)
	v.SetDefault("mount.accessibility_enabled", defaults.Mount.AccessibilityEnabled)

	v.SetDefault("visibility.focused_ratio", defaults.Visibility.FocusedRatio)
	v.SetDefault("visibility.process", defaults.Visibility.Process)

	v.SetDefault("logging.level", defaults.Logging.Level)
}

// New returns a viper instance with defaults and MOUNT_ environment
// overrides. If file is non-empty it is read as the config file.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", file, err)
		}
	}
	return v, nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}
