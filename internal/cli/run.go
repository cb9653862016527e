package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/livescope/internal/config"
	"github.com/rileyhilliard/livescope/internal/errors"
	"github.com/rileyhilliard/livescope/internal/logger"
	"github.com/rileyhilliard/livescope/internal/metrics"
	"github.com/rileyhilliard/livescope/internal/scope"
	"github.com/rileyhilliard/livescope/internal/theme"
	"github.com/rileyhilliard/livescope/internal/ui"
)

// procLabel names the live source in messages.
const procLabel = "procfs"

// runVisualizer resolves settings, opens the metric source and hands the
// terminal to the control loop until the user quits or ctx is cancelled.
func runVisualizer(ctx context.Context, cmd *cobra.Command) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger.SetDebug(cfg.Debug)

	th, ok := theme.Lookup(cfg.Theme)
	if !ok {
		ui.PrintWarning(cmd.ErrOrStderr(),
			fmt.Sprintf("Unknown theme %q, using %s", cfg.Theme, theme.Default))
	}

	if !stdoutIsTerminal() {
		return errors.New(errors.ErrTerminal,
			"livescope needs an interactive terminal",
			"Run it directly in a terminal, not through a pipe; 'livescope doctor' shows what's missing")
	}

	src, _, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer src.Close()

	restoreLog, err := logger.Redirect(cfg.LogFile)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open log file "+cfg.LogFile,
			"Check the --log-file path")
	}

	stats, err := scope.Run(ctx, scope.Options{
		Screen:    newScreen(),
		Source:    src,
		Theme:     th,
		Interval:  cfg.Interval(),
		Particles: cfg.Particles,
		Seed:      uint64(cfg.Seed),
		Version:   formatVersion(version),
		Logger:    logger.NewEnvLogger("[livescope]"),
	})
	restoreLog()
	if err != nil {
		return err
	}

	if stats.SampleFailures > 0 {
		ui.PrintWarning(cmd.ErrOrStderr(),
			fmt.Sprintf("%d of %d metric samples failed", stats.SampleFailures, stats.Ticks))
	}
	ui.PrintFarewell(cmd.OutOrStdout())
	return nil
}

// openSource returns the replay source when one is configured and the
// live procfs sampler otherwise, along with a label for messages.
func openSource(cfg *config.Config) (metrics.Source, string, error) {
	if cfg.Replay != "" {
		src, err := metrics.LoadReplay(cfg.Replay)
		if err != nil {
			return nil, cfg.Replay, err
		}
		return src, cfg.Replay, nil
	}

	src, err := metrics.NewProcSource()
	if err != nil {
		return nil, procLabel, err
	}
	return src, procLabel, nil
}
