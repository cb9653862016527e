package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/livescope/internal/config"
	"github.com/rileyhilliard/livescope/internal/errors"
	"github.com/rileyhilliard/livescope/internal/theme"
	"github.com/rileyhilliard/livescope/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string         // Where to write; empty means ./.livescope.yaml
	Overwrite      bool           // Overwrite existing config without asking
	NonInteractive bool           // Skip prompts, use Defaults as-is
	Defaults       *config.Config // Starting values for the form
}

var (
	initForce          bool
	initNonInteractive bool
	initGlobal         bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a livescope config file",
	Long: `Create a config file with your preferred theme, refresh interval and
particle setting.

Writes .livescope.yaml in the current directory, or
~/.config/livescope/config.yaml with --global. The form starts from the
current settings, so flags like --theme pre-fill it.

Examples:
  livescope init
  livescope init --global
  livescope init --non-interactive --theme ocean --refresh 33 --particles
  livescope init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ConfigFileName
		if initGlobal {
			global, err := config.GlobalConfigPath()
			if err != nil {
				return err
			}
			path = global
		}

		defaults, _, err := resolveConfig(cmd)
		if err != nil {
			if initNonInteractive {
				return err
			}
			defaults = config.DefaultConfig()
		}

		return Init(cmd.OutOrStdout(), InitOptions{
			Path:           path,
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
			Defaults:       defaults,
		})
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts and use flags and defaults")
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write ~/.config/livescope/config.yaml")
	rootCmd.AddCommand(initCmd)
}

// Init writes a config file. An existing file is only replaced with
// Overwrite or after confirmation, and keeps its comments.
func Init(out io.Writer, opts InitOptions) error {
	path := opts.Path
	if path == "" {
		path = filepath.Join(".", config.ConfigFileName)
	}

	cfg := config.DefaultConfig()
	if opts.Defaults != nil {
		c := *opts.Defaults
		cfg = &c
	}
	cfg.Version = config.CurrentConfigVersion
	if _, ok := theme.Lookup(cfg.Theme); !ok {
		cfg.Theme = theme.Default.String()
	}

	exists := false
	if _, err := os.Stat(path); err == nil {
		exists = true
	}

	if exists && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if !opts.NonInteractive {
		if err := promptSettings(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	var err error
	if exists {
		err = config.Update(path, cfg)
	} else {
		err = config.Write(path, cfg)
	}
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check you have write permission in this directory")
	}

	verb := "Created"
	if exists {
		verb = "Updated"
	}
	fmt.Fprintf(out, "%s %s %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), verb, path)
	fmt.Fprintf(out, "  Run %s to start.\n", ui.MutedStyle().Render("livescope"))
	return nil
}

// promptSettings asks for theme, refresh interval and particles, starting
// from the values already in cfg.
func promptSettings(cfg *config.Config) error {
	options := make([]huh.Option[string], 0, len(theme.All()))
	for _, t := range theme.All() {
		options = append(options, huh.NewOption(
			fmt.Sprintf("%-8s %s", t, t.Description()), t.String()))
	}

	refresh := strconv.Itoa(cfg.RefreshMS)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(options...).
				Value(&cfg.Theme),
			huh.NewInput().
				Title("Refresh interval (ms)").
				Description(fmt.Sprintf("%d is about 60 frames per second", config.DefaultRefreshMS)).
				Value(&refresh).
				Validate(validateRefresh),
			huh.NewConfirm().
				Title("Start with particle effects on?").
				Value(&cfg.Particles),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive flag")
	}

	ms, err := strconv.Atoi(strings.TrimSpace(refresh))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a number of milliseconds", refresh), "")
	}
	cfg.RefreshMS = ms
	return nil
}

// validateRefresh checks a refresh interval typed into the form.
func validateRefresh(s string) error {
	ms, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number of milliseconds")
	}
	if ms < config.MinRefreshMS || ms > config.MaxRefreshMS {
		return fmt.Errorf("must be between %d and %d", config.MinRefreshMS, config.MaxRefreshMS)
	}
	return nil
}
