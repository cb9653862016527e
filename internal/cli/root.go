package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rileyhilliard/livescope/internal/config"
	"github.com/rileyhilliard/livescope/internal/errors"
	"github.com/rileyhilliard/livescope/internal/terminal"
	"github.com/rileyhilliard/livescope/internal/ui"
)

// Seams for tests; production talks to the process's own terminal.
var (
	stdoutIsTerminal = func() bool { return terminal.IsTerminal(os.Stdout) }
	newScreen        = func() terminal.Screen { return terminal.NewTTY(os.Stdin, os.Stdout) }
	colorProfile     = func() termenv.Profile { return termenv.NewOutput(os.Stdout).EnvColorProfile() }
)

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"refresh":   "refresh_ms",
	"particles": "particles",
	"theme":     "theme",
	"replay":    "replay",
	"seed":      "seed",
	"log-file":  "log_file",
	"debug":     "debug",
}

// rootCmd runs the visualizer when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "livescope",
	Short: "Real-time CPU and memory visualizer for the terminal",
	Long: `LiveScope draws per-core CPU history and a memory wave as colored
Unicode art, with optional particle effects.

Keys:
  q, ctrl+c   quit
  p           toggle particles

Settings come from flags, LIVESCOPE_* environment variables and
.livescope.yaml (or ~/.config/livescope/config.yaml), in that order.

Examples:
  livescope
  livescope --theme ocean --particles
  livescope -r 33 -t matrix
  livescope --replay demo.yaml --seed 42`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVisualizer(cmd.Context(), cmd)
	},
}

func init() {
	addSettingsFlags(rootCmd.PersistentFlags())
}

// addSettingsFlags defines the flags that override config keys.
func addSettingsFlags(f *pflag.FlagSet) {
	f.String("config", "", "config file (default: ./.livescope.yaml, then ~/.config/livescope/config.yaml)")
	f.IntP("refresh", "r", config.DefaultRefreshMS, "frame interval in milliseconds")
	f.BoolP("particles", "p", false, "start with particle effects on")
	f.StringP("theme", "t", config.DefaultTheme, "color theme: fire, ocean, matrix or rainbow")
	f.String("replay", "", "play metrics from a YAML recording instead of /proc")
	f.Int64("seed", 0, "particle generator seed (0 picks one at random)")
	f.String("log-file", "", "append logs to this file while the visualizer runs")
	f.Bool("debug", false, "enable debug logging")
}

// Execute runs the root command. Errors are printed after the terminal
// has been restored, and the process exits with status 1.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	ui.ApplyColorProfile(os.Stderr)
	ui.PrintError(os.Stderr, err)
	if isUnknownCommandError(err) {
		fmt.Fprintln(os.Stderr, ui.MutedStyle().Render("Run 'livescope --help' for usage."))
	}
	os.Exit(1)
}

// bindFlags binds the persistent flags in flags to v so that explicitly
// set flags win over the environment and the config file.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Couldn't bind --%s", name), "")
		}
	}
	return nil
}

// resolveConfig merges flags, environment and the config file, then
// validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, string, error) {
	v := config.NewViper()
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, "", err
	}

	explicit, _ := cmd.Flags().GetString("config")
	cfg, path, err := config.Resolve(v, explicit)
	if err != nil {
		return nil, "", err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// isUnknownCommandError checks if the error is from cobra's unknown command
// or unknown flag handling.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag") ||
		strings.Contains(msg, "accepts 0 arg(s)")
}
