// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"ccmk-cli/internal/toolchain"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "ccmk"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"

	// EnvCompiler selects the compiler binary, overriding the config
	// file (e.g. CCMK_CXX=clang++-17).
	EnvCompiler = "CCMK_CXX"
	// EnvExtraFlags holds extra compiler flags appended after the
	// configured ones. The value is split into arguments on runs of
	// whitespace with no quoting or escaping support; callers
	// populating it must respect that literal split.
	EnvExtraFlags = "CCMK_CXXFLAGS"
)

type (
	// Config is the effective tool configuration after merging
	// defaults, the config file, and environment overrides.
	Config struct {
		// Compiler is the compiler binary override. Empty means detect
		// from the PATH at startup.
		Compiler string `mapstructure:"compiler"`
		// StandardFlag is the language-standard flag for every compile.
		StandardFlag string `mapstructure:"standard_flag"`
		// ExtraFlags are appended to every compile invocation.
		ExtraFlags []string `mapstructure:"extra_flags"`
		// SearchPaths are the default include search directories, in
		// resolution precedence order.
		SearchPaths []string `mapstructure:"search_paths"`
		// Lang selects the default extension set language (cpp or c).
		Lang string `mapstructure:"lang"`
		// Kind selects the default extension set kind (all, header, impl).
		Kind string `mapstructure:"kind"`
		// Log configures the optional rotating log file.
		Log LogConfig `mapstructure:"log"`
	}

	// LogConfig mirrors lumberjack's rotation knobs.
	LogConfig struct {
		// File enables file logging when non-empty; console logging is
		// used otherwise.
		File       string `mapstructure:"file"`
		Level      string `mapstructure:"level"`
		MaxSizeMB  int    `mapstructure:"max_size_mb"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAgeDays int    `mapstructure:"max_age_days"`
		Compress   bool   `mapstructure:"compress"`
	}
)

// DefaultConfig returns the built-in defaults applied before the config
// file and environment are consulted.
func DefaultConfig() *Config {
	return &Config{
		StandardFlag: toolchain.DefaultStandardFlag,
		Lang:         "cpp",
		Kind:         "all",
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// ConfigDir returns the ccmk configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load merges defaults, the config file (if present), and the CCMK_*
// environment overrides into an effective Config.
//
// A missing config file is not an error unless an explicit path was
// set via --config, in which case it is.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("compiler", defaults.Compiler)
	v.SetDefault("standard_flag", defaults.StandardFlag)
	v.SetDefault("extra_flags", defaults.ExtraFlags)
	v.SetDefault("search_paths", defaults.SearchPaths)
	v.SetDefault("lang", defaults.Lang)
	v.SetDefault("kind", defaults.Kind)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.max_size_mb", defaults.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", defaults.Log.MaxBackups)
	v.SetDefault("log.max_age_days", defaults.Log.MaxAgeDays)
	v.SetDefault("log.compress", defaults.Log.Compress)

	if configFilePathOverride != "" {
		v.SetConfigFile(configFilePathOverride)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFilePathOverride, err)
		}
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Environment overrides. CCMK_CXXFLAGS is split on runs of
	// whitespace, literally: no quoting, no escaping.
	if cxx := os.Getenv(EnvCompiler); cxx != "" {
		cfg.Compiler = cxx
	}
	if flags := os.Getenv(EnvExtraFlags); flags != "" {
		cfg.ExtraFlags = append(cfg.ExtraFlags, toolchain.SplitFlags(flags)...)
	}

	return &cfg, nil
}

// ConfigFilePath returns the path Load would read the config file from.
func ConfigFilePath() (string, error) {
	if configFilePathOverride != "" {
		return configFilePathOverride, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}
