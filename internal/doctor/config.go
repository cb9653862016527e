package doctor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/livescope/internal/config"
	"github.com/rileyhilliard/livescope/internal/theme"
)

// ConfigFileCheck verifies that the config file, if any, loads and validates.
// Running without a config file is fine; defaults apply.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return CategoryConfig }

func (c *ConfigFileCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Error finding config",
			Suggestion: firstLine(err),
		}
	}

	if path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusPass,
			Message:    "No config file, using defaults",
			Suggestion: "Run 'livescope init' to save your preferences",
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Failed to load %s", filepath.Base(path)),
			Suggestion: "Check the YAML syntax in your config file",
		}
	}

	if err := config.Validate(cfg); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Schema error: %s", firstLine(err)),
			Suggestion: "Fix the configuration errors in " + path,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", path),
	}
}

// SettingsCheck reports the effective settings after flags, environment
// and the config file have been merged.
type SettingsCheck struct {
	Config *config.Config
	Err    error
}

func (c *SettingsCheck) Name() string     { return "config_settings" }
func (c *SettingsCheck) Category() string { return CategoryConfig }

func (c *SettingsCheck) Run() CheckResult {
	if c.Err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    firstLine(c.Err),
			Suggestion: "Check the command-line flags and LIVESCOPE_* environment variables",
		}
	}
	if c.Config == nil {
		return CheckResult{Name: c.Name(), Status: StatusFail, Message: "No settings resolved"}
	}

	particles := "off"
	if c.Config.Particles {
		particles = "on"
	}
	return CheckResult{
		Name:   c.Name(),
		Status: StatusPass,
		Message: fmt.Sprintf("Refresh %dms, theme %s, particles %s",
			c.Config.RefreshMS, c.Config.Theme, particles),
	}
}

// ThemeCheck verifies that the selected theme is one of the presets.
type ThemeCheck struct {
	Theme string
}

func (c *ThemeCheck) Name() string     { return "config_theme" }
func (c *ThemeCheck) Category() string { return CategoryConfig }

func (c *ThemeCheck) Run() CheckResult {
	if _, ok := theme.Lookup(c.Theme); !ok {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Unknown theme %q, %s will be used", c.Theme, theme.Default),
			Suggestion: "Available themes: " + strings.Join(theme.Names(), ", "),
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Theme: %s", c.Theme),
	}
}

// firstLine strips the rendered symbol and detail lines from structured errors.
func firstLine(err error) string {
	msg := strings.TrimSpace(err.Error())
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return strings.TrimSpace(strings.TrimPrefix(msg, "✗"))
}
