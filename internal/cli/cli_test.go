package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/livescope/internal/terminal"
	termtest "github.com/rileyhilliard/livescope/internal/terminal/testing"
)

const testReplay = `samples:
  - cpu: [10, 50, 90, 20]
    memory_used: 2048
    memory_total: 8192
  - cpu: [30, 60, 70, 40]
    memory_used: 4096
    memory_total: 8192
`

// isolate points HOME and the working directory at empty temp dirs so no
// real config file is picked up.
func isolate(t *testing.T) (home, cwd string) {
	t.Helper()
	home, cwd = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(cwd)
	for _, key := range []string{"LIVESCOPE_THEME", "LIVESCOPE_REFRESH_MS", "LIVESCOPE_PARTICLES", "LIVESCOPE_REPLAY"} {
		unsetEnv(t, key)
	}
	return home, cwd
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		}
	})
}

func writeReplay(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "replay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testReplay), 0o644))
	return path
}

// fakeTerminal swaps the terminal seams for a FakeScreen.
func fakeTerminal(t *testing.T, isTTY bool, screen *termtest.FakeScreen) {
	t.Helper()
	oldIsTTY, oldScreen, oldProfile := stdoutIsTerminal, newScreen, colorProfile
	stdoutIsTerminal = func() bool { return isTTY }
	newScreen = func() terminal.Screen { return screen }
	colorProfile = func() termenv.Profile { return termenv.TrueColor }
	t.Cleanup(func() {
		stdoutIsTerminal, newScreen, colorProfile = oldIsTTY, oldScreen, oldProfile
	})
}

// resetFlags puts every flag back to its default so state doesn't leak
// between Execute calls on the shared command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the root command with args and returns everything
// written to stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// newSettingsCmd is a standalone command carrying the settings flags.
func newSettingsCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addSettingsFlags(cmd.Flags())
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}
