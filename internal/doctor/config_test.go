package doctor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/livescope/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cwd := t.TempDir()
	t.Chdir(cwd)
	return cwd
}

func TestConfigFileCheckNoFile(t *testing.T) {
	isolate(t)

	res := (&ConfigFileCheck{}).Run()

	assert.Equal(t, StatusPass, res.Status)
	assert.Equal(t, "No config file, using defaults", res.Message)
}

func TestConfigFileCheckValid(t *testing.T) {
	cwd := isolate(t)
	path := filepath.Join(cwd, config.ConfigFileName)
	require.NoError(t, config.Write(path, config.DefaultConfig()))

	res := (&ConfigFileCheck{}).Run()

	assert.Equal(t, StatusPass, res.Status)
	assert.Contains(t, res.Message, config.ConfigFileName)
}

func TestConfigFileCheckInvalid(t *testing.T) {
	cwd := isolate(t)
	path := filepath.Join(cwd, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("refresh_ms: 0\n"), 0o644))

	res := (&ConfigFileCheck{ConfigPath: path}).Run()

	assert.Equal(t, StatusFail, res.Status)
	assert.Contains(t, res.Message, "out of range")
	assert.NotContains(t, res.Message, "✗")
}

func TestConfigFileCheckBrokenYAML(t *testing.T) {
	cwd := isolate(t)
	path := filepath.Join(cwd, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed\n"), 0o644))

	res := (&ConfigFileCheck{ConfigPath: path}).Run()

	assert.Equal(t, StatusFail, res.Status)
	assert.Equal(t, "Failed to load broken.yaml", res.Message)
}

func TestConfigFileCheckMissingExplicit(t *testing.T) {
	cwd := isolate(t)

	res := (&ConfigFileCheck{ConfigPath: filepath.Join(cwd, "nope.yaml")}).Run()

	assert.Equal(t, StatusFail, res.Status)
	assert.Contains(t, res.Suggestion, "Specified config file not found")
}

func TestThemeCheck(t *testing.T) {
	assert.Equal(t, StatusPass, (&ThemeCheck{Theme: "ocean"}).Run().Status)

	res := (&ThemeCheck{Theme: "lava"}).Run()
	assert.Equal(t, StatusWarn, res.Status)
	assert.Equal(t, `Unknown theme "lava", fire will be used`, res.Message)
	assert.Contains(t, res.Suggestion, "rainbow")
}

func TestSettingsCheck(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Particles = true

	res := (&SettingsCheck{Config: cfg}).Run()
	assert.Equal(t, StatusPass, res.Status)
	assert.Equal(t, "Refresh 16ms, theme fire, particles on", res.Message)

	cfg.RefreshMS = 0
	res = (&SettingsCheck{Err: config.Validate(cfg)}).Run()
	assert.Equal(t, StatusFail, res.Status)
	assert.Equal(t, "Refresh interval 0ms is out of range", res.Message)

	assert.Equal(t, StatusFail, (&SettingsCheck{}).Run().Status)
}
