package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

const (
	// DefaultRefreshMS targets roughly 60 frames per second.
	DefaultRefreshMS = 16
	// DefaultTheme is used when nothing else is configured.
	DefaultTheme = "fire"

	// MinRefreshMS and MaxRefreshMS bound the frame interval.
	MinRefreshMS = 1
	MaxRefreshMS = 10000
)

// Config represents the livescope configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// RefreshMS is the target frame interval in milliseconds.
	RefreshMS int `yaml:"refresh_ms" mapstructure:"refresh_ms"`

	// Particles starts the session with particle effects on.
	Particles bool `yaml:"particles" mapstructure:"particles"`

	// Theme is one of fire, ocean, matrix or rainbow. Anything else falls
	// back to fire.
	Theme string `yaml:"theme" mapstructure:"theme"`

	// Replay plays metrics from a YAML recording instead of the host.
	Replay string `yaml:"replay,omitempty" mapstructure:"replay"`

	// Seed fixes the particle generator. 0 picks a random seed.
	Seed int64 `yaml:"seed,omitempty" mapstructure:"seed"`

	// LogFile receives log output while the screen is in use.
	// Empty discards it.
	LogFile string `yaml:"log_file,omitempty" mapstructure:"log_file"`

	// Debug enables debug-level logging.
	Debug bool `yaml:"debug,omitempty" mapstructure:"debug"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:   CurrentConfigVersion,
		RefreshMS: DefaultRefreshMS,
		Theme:     DefaultTheme,
	}
}

// Interval returns RefreshMS as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.RefreshMS) * time.Millisecond
}
