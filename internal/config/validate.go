package config

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/livescope/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
// An unknown theme is not an error; it falls back to fire.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but livescope only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade livescope or remove the version key")
	}

	if cfg.RefreshMS < MinRefreshMS || cfg.RefreshMS > MaxRefreshMS {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %dms is out of range", cfg.RefreshMS),
			fmt.Sprintf("Pick a value between %d and %d milliseconds, e.g. --refresh %d", MinRefreshMS, MaxRefreshMS, DefaultRefreshMS))
	}

	if cfg.Seed < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Seed %d is negative", cfg.Seed),
			"Use a positive seed, or 0 for a random one")
	}

	if cfg.Replay != "" {
		if err := validateReplay(cfg.Replay); err != nil {
			return err
		}
	}

	return nil
}

func validateReplay(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Replay file not found: "+path,
			"Check the --replay path")
	}
	if info.IsDir() {
		return errors.New(errors.ErrConfig,
			"Replay path is a directory: "+path,
			"Point --replay at a YAML recording")
	}
	return nil
}
