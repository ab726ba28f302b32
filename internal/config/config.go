// Package config resolves CLI settings from flags, LERNA_* environment
// variables and an optional lerna-lite.yaml file in the workspace root.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. LERNA_EXACT=true.
const EnvPrefix = "LERNA"

// SettingsName is the optional settings file looked up in the root.
const SettingsName = "lerna-lite"

// Setting keys. They match the flag names they are bound to.
const (
	KeyRoot        = "root"
	KeyLogLevel    = "loglevel"
	KeyLogFormat   = "log-format"
	KeyExact       = "exact"
	KeyIndependent = "independent"
)

// Config holds resolved settings for one invocation.
type Config struct {
	Root         string
	LogLevel     string
	LogFormat    string
	Exact        bool
	Independent  bool
	SettingsFile string // empty when no settings file was read
}

// Load resolves settings with precedence flag > env > settings file > default.
// flags may contain any subset of the known keys.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyRoot, ".")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "auto")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	v.SetConfigName(SettingsName)
	v.SetConfigType("yaml")
	v.AddConfigPath(v.GetString(KeyRoot))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading %s settings: %w", SettingsName, err)
		}
	}

	settingsFile := v.ConfigFileUsed()
	if settingsFile != "" {
		settingsFile = filepath.Clean(settingsFile)
	}

	return &Config{
		Root:         v.GetString(KeyRoot),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
		Exact:        v.GetBool(KeyExact),
		Independent:  v.GetBool(KeyIndependent),
		SettingsFile: settingsFile,
	}, nil
}
