// Package config loads modmeta CLI settings from defaults, an optional
// config file, MODMETA_* environment variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/simonhull/modmeta"
)

const (
	// AppName is the application name.
	AppName = "modmeta"
	// ConfigFileName is the name of the config file (without extension).
	// Any format viper understands is accepted: toml, yaml, json.
	ConfigFileName = "modmeta"
	// EnvPrefix prefixes environment overrides, e.g. MODMETA_LOG_LEVEL.
	EnvPrefix = "MODMETA"
)

// Output formats understood by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds CLI settings.
type Config struct {
	LogLevel     string `mapstructure:"log_level"`
	Output       string `mapstructure:"output"`
	Concurrency  int    `mapstructure:"concurrency"`
	MaxEntrySize int64  `mapstructure:"max_entry_size"`
	Fingerprint  bool   `mapstructure:"fingerprint"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "warn",
		Output:       OutputText,
		Concurrency:  runtime.NumCPU(),
		MaxEntrySize: modmeta.DefaultMaxEntrySize,
		Fingerprint:  false,
	}
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// ConfigFilePath, when set, is the only config file read. It must exist.
	ConfigFilePath string
	// ConfigDirPath overrides the directory searched for modmeta.*.
	ConfigDirPath string
	// Flags are bound by name; only flags the user changed override.
	Flags *pflag.FlagSet
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"log-level":      "log_level",
	"output":         "output",
	"concurrency":    "concurrency",
	"max-entry-size": "max_entry_size",
	"fingerprint":    "fingerprint",
}

// ConfigDir returns the platform config directory for modmeta.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// Load resolves the effective configuration. It returns the config and
// the path of the file that was read, or "" when only defaults applied.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("concurrency", defaults.Concurrency)
	v.SetDefault("max_entry_size", defaults.MaxEntrySize)
	v.SetDefault("fingerprint", defaults.Fingerprint)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, "", fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	resolvedPath := ""
	if opts.ConfigFilePath != "" {
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("read config file %s: %w", opts.ConfigFilePath, err)
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		dir := opts.ConfigDirPath
		if dir == "" {
			var err error
			if dir, err = ConfigDir(); err != nil {
				return nil, "", err
			}
		}
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(dir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, "", fmt.Errorf("read config: %w", err)
			}
			// No config file: defaults, env and flags only.
		} else {
			resolvedPath = v.ConfigFileUsed()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, resolvedPath, nil
}

// Validate checks value ranges that the loaders cannot express.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q: must be one of %s, %s, %s", c.Output, OutputText, OutputJSON, OutputYAML)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("invalid concurrency %d: must not be negative", c.Concurrency)
	}
	if c.MaxEntrySize < 0 {
		return fmt.Errorf("invalid max_entry_size %d: must not be negative", c.MaxEntrySize)
	}
	return nil
}
