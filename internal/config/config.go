// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Impassword settings from defaults, YAML files,
// IMPASSWORD_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/impassword/internal/generator"
	"github.com/toeirei/impassword/internal/model"
)

// Random source names accepted in random.source.
const (
	SourceCrypto = "crypto"
	SourceSeeded = "seeded"
)

// ErrUnknownSource is returned by Validate for an unsupported random.source.
var ErrUnknownSource = errors.New("unknown random source")

// RandomConfig selects the random source used for generation.
type RandomConfig struct {
	Source string `mapstructure:"source" yaml:"source"`
	Seed   uint64 `mapstructure:"seed" yaml:"seed"`
}

// Config is the full application configuration.
type Config struct {
	Language string        `mapstructure:"language" yaml:"language"`
	Debug    bool          `mapstructure:"debug" yaml:"debug"`
	Random   RandomConfig  `mapstructure:"random" yaml:"random"`
	Defaults model.Options `mapstructure:"defaults" yaml:"defaults"`
}

// Defaults returns the built-in configuration values keyed by viper key.
func Defaults() map[string]any {
	return map[string]any{
		"language":                   "en",
		"debug":                      false,
		"random.source":              SourceCrypto,
		"random.seed":                0,
		"defaults.length":            16,
		"defaults.uppercase":         true,
		"defaults.lowercase":         true,
		"defaults.numbers":           true,
		"defaults.symbols":           true,
		"defaults.exclude_ambiguous": true,
	}
}

// DefaultConfig decodes Defaults into a Config, ignoring files, env and flags.
func DefaultConfig() (Config, error) {
	var c Config
	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// Options returns the generation options configured as defaults.
func (c Config) Options() model.Options {
	return c.Defaults
}

// Validate checks values viper cannot type check.
func (c Config) Validate() error {
	switch c.Random.Source {
	case SourceCrypto, SourceSeeded:
		return nil
	}
	return fmt.Errorf("%w %q (want %q or %q)", ErrUnknownSource, c.Random.Source, SourceCrypto, SourceSeeded)
}

// NewSource builds the configured random source.
func (r RandomConfig) NewSource() (generator.RandomSource, error) {
	switch r.Source {
	case SourceCrypto, "":
		return generator.CryptoSource{}, nil
	case SourceSeeded:
		return generator.NewSeededSource(r.Seed), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSource, r.Source)
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Impassword")
		default: // Linux, macOS, etc.
			configDir = "/etc/impassword"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "impassword")
	}

	return filepath.Join(configDir, "impassword.yaml"), nil
}

// LoadConfig resolves T from, in increasing precedence: defaults, the config
// file, a local .impassword.yaml, IMPASSWORD_* env vars and the flags of cmd.
// aliases maps config keys to flag names that differ from the key, e.g.
// "language" -> "lang". A viper.ConfigFileNotFoundError is returned together
// with the decoded defaults so callers can decide to write a fresh file.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string, aliases map[string]string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("impassword")
	v.SetConfigType("yaml")

	// An explicit --config path wins over the search paths.
	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			notFound = err
		} else {
			return c, err
		}
	}

	mergeLocalConfig(v)

	v.SetEnvPrefix("impassword")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
		for key, name := range aliases {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// mergeLocalConfig merges a `.impassword.yaml` from the current directory
// over the primary config when one exists. A malformed file is ignored.
func mergeLocalConfig(v *viper.Viper) {
	local := ".impassword.yaml"
	if _, err := os.Stat(local); err != nil {
		return
	}
	v.SetConfigFile(local)
	_ = v.MergeInConfig()
	v.SetConfigFile("")
}

// WriteConfigFile stores c at the user or system config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
