package scope

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/rileyhilliard/livescope/internal/errors"
	"github.com/rileyhilliard/livescope/internal/logger"
	"github.com/rileyhilliard/livescope/internal/metrics"
	"github.com/rileyhilliard/livescope/internal/terminal"
	"github.com/rileyhilliard/livescope/internal/theme"
)

// DefaultInterval is the target frame interval (about 60 fps).
const DefaultInterval = 16 * time.Millisecond

// Clock abstracts wall time so pacing can be tested.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done.
	Sleep(ctx context.Context, d time.Duration)
}

type systemClock struct{}

// SystemClock returns the real clock.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Options configures a Loop.
type Options struct {
	Screen terminal.Screen
	Source metrics.Source

	Theme     theme.Theme
	Interval  time.Duration
	Particles bool
	// Seed for the particle generator; 0 picks one at random.
	Seed    uint64
	Version string

	Clock  Clock
	Logger logger.Logger
}

// Stats counts what happened over a session.
type Stats struct {
	// Ticks is the number of loop iterations started.
	Ticks int
	// Overruns counts ticks whose work took at least the frame interval.
	Overruns int
	// SampleFailures counts ticks whose metric sample failed.
	SampleFailures int
}

// Loop drives the visualizer at a fixed frame interval.
type Loop struct {
	screen   terminal.Screen
	source   metrics.Source
	clock    Clock
	log      logger.Logger
	interval time.Duration

	model   *Model
	stats   Stats
	failing bool
}

// NewLoop queries the screen size and builds the model. Nothing is drawn
// and the terminal mode is untouched, so a failure here needs no cleanup.
func NewLoop(opts Options) (*Loop, error) {
	if opts.Screen == nil || opts.Source == nil {
		return nil, errors.New(errors.ErrConfig, "A screen and a metric source are required", "")
	}

	width, height, err := opts.Screen.Size()
	if err != nil {
		var structured *errors.Error
		if stderrors.As(err, &structured) {
			return nil, err
		}
		return nil, errors.WrapWithCode(err, errors.ErrTerminal, "Couldn't read the terminal size", "")
	}

	l := &Loop{
		screen:   opts.Screen,
		source:   opts.Source,
		clock:    opts.Clock,
		log:      opts.Logger,
		interval: opts.Interval,
	}
	if l.clock == nil {
		l.clock = SystemClock()
	}
	if l.log == nil {
		l.log = logger.Noop()
	}
	if l.interval <= 0 {
		l.interval = DefaultInterval
	}

	l.model = NewModel(ModelConfig{
		Width:     width,
		Height:    height,
		Cores:     opts.Source.Cores(),
		Gradient:  opts.Theme.Gradient(),
		Particles: opts.Particles,
		Version:   opts.Version,
		Rand:      NewRand(opts.Seed),
	})
	l.log.Debug("screen %dx%d, %d cores, theme %s, interval %s",
		width, height, opts.Source.Cores(), opts.Theme, l.interval)

	return l, nil
}

// Run builds a Loop and runs it until quit, cancellation or a fatal error.
func Run(ctx context.Context, opts Options) (Stats, error) {
	l, err := NewLoop(opts)
	if err != nil {
		return Stats{}, err
	}
	err = l.Run(ctx)
	return l.Stats(), err
}

// Run takes over the screen and ticks until the quit key, ctx is done or
// drawing fails. The screen is restored on every exit path.
func (l *Loop) Run(ctx context.Context) (err error) {
	if err := l.screen.Enter(); err != nil {
		return err
	}
	defer func() {
		if rerr := l.screen.Restore(); rerr != nil {
			if err != nil {
				l.log.Error("session failed before restore: %v", err)
			}
			err = errors.WrapWithCode(rerr, errors.ErrTerminal, "Couldn't restore the terminal", "Run `reset` to recover")
		}
		l.log.Debug("session ended: %d ticks, %d overruns, %d failed samples",
			l.stats.Ticks, l.stats.Overruns, l.stats.SampleFailures)
	}()

	for ctx.Err() == nil {
		start := l.clock.Now()

		running, err := l.Tick(ctx)
		if err != nil {
			return err
		}
		if !running {
			return nil
		}

		l.pace(ctx, start)
	}
	return nil
}

// Tick runs one iteration without pacing: input, update, render. It
// returns false once the quit key has been pressed, in which case nothing
// is updated or drawn.
func (l *Loop) Tick(ctx context.Context) (bool, error) {
	l.stats.Ticks++

	k, ok, err := l.screen.PollKey(0)
	if err != nil {
		return false, err
	}
	if ok && l.model.HandleKey(k) {
		if !l.model.Running() {
			return false, nil
		}
		l.log.Debug("key %q: particles %v", k, l.model.Particles().Enabled())
	}

	if err := l.sample(ctx); err != nil {
		return false, err
	}
	l.model.Step()

	if err := l.model.Compose().Draw(l.screen); err != nil {
		return false, err
	}
	return true, nil
}

// sample folds a fresh sample into the model. A retryable failure leaves
// the histories as they were and only the first of a streak is a warning.
// Any other failure ends the session.
func (l *Loop) sample(ctx context.Context) error {
	s, err := l.source.Sample(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		if !errors.IsRetryable(err) {
			return err
		}
		l.stats.SampleFailures++
		if !l.failing {
			l.log.Warn("metric sample failed, keeping previous values: %v", err)
			l.failing = true
		} else {
			l.log.Debug("metric sample failed again: %v", err)
		}
		return nil
	}

	if l.failing {
		l.log.Info("metric sampling recovered")
		l.failing = false
	}
	l.model.Observe(s)
	return nil
}

// pace sleeps off the rest of the frame interval. Late ticks don't sleep.
func (l *Loop) pace(ctx context.Context, start time.Time) {
	elapsed := l.clock.Now().Sub(start)
	if elapsed < l.interval {
		l.clock.Sleep(ctx, l.interval-elapsed)
		return
	}
	l.stats.Overruns++
}

// Model exposes the loop's state.
func (l *Loop) Model() *Model {
	return l.model
}

// Stats returns the counters so far.
func (l *Loop) Stats() Stats {
	return l.stats
}
