package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rileyhilliard/livescope/internal/errors"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".livescope.yaml"
	// GlobalConfigDir is the directory for the user config, relative to home.
	GlobalConfigDir = ".config/livescope"
	// GlobalConfigFile is the user config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix namespaces environment overrides (LIVESCOPE_REFRESH_MS, ...).
	EnvPrefix = "LIVESCOPE"
)

// NewViper returns a viper instance with defaults and environment overrides
// set up. Callers bind flags on top before calling Resolve.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers every key so AutomaticEnv can see it on Unmarshal.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("refresh_ms", def.RefreshMS)
	v.SetDefault("particles", def.Particles)
	v.SetDefault("theme", def.Theme)
	v.SetDefault("replay", def.Replay)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("debug", def.Debug)
}

// Load reads config from the specified path, with environment overrides.
func Load(path string) (*Config, error) {
	v := NewViper()
	if err := readFile(v, path); err != nil {
		return nil, err
	}
	return parseConfig(v, path)
}

// Resolve merges everything v knows about (bound flags, environment,
// defaults) with the config file found by Find. It returns the config and
// the file it came from, which is empty when no file was found.
func Resolve(v *viper.Viper, explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		if err := readFile(v, path); err != nil {
			return nil, "", err
		}
	}
	cfg, err := parseConfig(v, path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func readFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'livescope init' to create a config file, or specify one with --config")
		}
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}
	return nil
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .livescope.yaml in the current directory
// 3. ~/.config/livescope/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	if global, err := GlobalConfigPath(); err == nil {
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// GlobalConfigPath returns ~/.config/livescope/config.yaml.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine home directory",
			"Set HOME or pass --config")
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile), nil
}

// LoadOrDefault loads config from the found path, or returns defaults if not found.
func LoadOrDefault() (*Config, error) {
	path, err := Find("")
	if err != nil {
		return nil, err
	}

	if path == "" {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		suggestion := "Check the flag and LIVESCOPE_* environment values"
		if path != "" {
			suggestion = "Check the YAML syntax in " + path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			suggestion)
	}

	cfg.Replay = ExpandTilde(cfg.Replay)
	cfg.LogFile = ExpandTilde(cfg.LogFile)

	return cfg, nil
}
