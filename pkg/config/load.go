package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/timestamp/errors"
	log "github.com/cloudposse/timestamp/pkg/logger"
	"github.com/cloudposse/timestamp/pkg/schema"
)

// NewViper returns a viper instance carrying the defaults and the TIMESTAMP_*
// environment bindings. Callers bind their flags to it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetTypeByDefaultValue(true)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaultConfiguration(v)
	return v
}

// Load merges configuration from the following locations (from lower to higher priority):
// user config dir ($XDG_CONFIG_HOME/timestamp)
// current directory
// directory in TIMESTAMP_CONFIG_PATH
// explicit configPath (a file; it must exist)
// ENV vars
// Command-line flags bound to v
func Load(v *viper.Viper, configPath string) (schema.Configuration, error) {
	var cfg schema.Configuration

	dirs := []string{filepath.Join(xdg.ConfigHome, AppName)}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		dirs = append(dirs, envPath)
	}

	for _, dir := range dirs {
		path := filepath.Join(dir, CliConfigFileName)
		found, err := mergeConfigFile(v, path)
		if err != nil {
			return cfg, loadError(err, path)
		}
		if found {
			cfg.ConfigPath = path
		}
	}

	if configPath != "" {
		found, err := mergeConfigFile(v, configPath)
		if err != nil {
			return cfg, loadError(err, configPath)
		}
		if !found {
			return cfg, errUtils.Build(errUtils.ErrLoadConfig).
				WithHintf("Check that `%s` exists", configPath).
				WithContext("file", configPath).
				Err()
		}
		cfg.ConfigPath = configPath
	}

	if cfg.ConfigPath == "" {
		log.Debug("'timestamp.yaml' config was not found, using defaults", "paths", dirs)
	} else {
		log.Debug("Loaded config", "file", cfg.ConfigPath)
	}

	configPathUsed := cfg.ConfigPath
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return cfg, loadError(err, configPathUsed)
	}
	cfg.ConfigPath = configPathUsed
	return cfg, nil
}

// setDefaultConfiguration registers every key so that AutomaticEnv can
// override it during Unmarshal.
func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("logs.file", DefaultLogsFile)
	v.SetDefault("logs.level", DefaultLogsLevel)
	v.SetDefault("label.format", DefaultFormat)
	v.SetDefault("label.direction", DefaultDirection)
	v.SetDefault("label.start", DefaultStart)
	v.SetDefault("label.scale", DefaultScale)
	v.SetDefault("label.zero_offset", "0s")
	v.SetDefault("label.utc", false)
	v.SetDefault("label.plain", false)
	v.SetDefault("label.ticks", 0)
}

// mergeConfigFile merges path into v. A missing file is reported as not found.
func mergeConfigFile(v *viper.Viper, path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return false, err
	}
	return true, nil
}

func loadError(cause error, path string) error {
	return errUtils.Build(errUtils.ErrLoadConfig).
		WithCause(cause).
		WithContext("file", path).
		Err()
}
