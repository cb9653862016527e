package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/livescope/internal/metrics"
	"github.com/rileyhilliard/livescope/internal/util"
)

// SampleTimeout bounds the single sample taken by SourceCheck.
const SampleTimeout = 2 * time.Second

// SourceCheck opens the configured metric source and takes one sample.
type SourceCheck struct {
	Label string // "procfs" or the replay path
	Open  func() (metrics.Source, error)
}

func (c *SourceCheck) Name() string     { return "metrics_source" }
func (c *SourceCheck) Category() string { return CategoryMetrics }

func (c *SourceCheck) Run() CheckResult {
	if c.Open == nil {
		return CheckResult{Name: c.Name(), Status: StatusFail, Message: "No metric source configured"}
	}

	src, err := c.Open()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Couldn't open %s", c.Label),
			Suggestion: err.Error(),
		}
	}
	defer src.Close()

	if src.Cores() < 1 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s reports no CPU cores", c.Label),
			Suggestion: "A metric source must report at least one core",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), SampleTimeout)
	defer cancel()

	sample, err := src.Sample(ctx)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Sampling %s failed", c.Label),
			Suggestion: err.Error(),
		}
	}

	return CheckResult{
		Name:   c.Name(),
		Status: StatusPass,
		Message: fmt.Sprintf("%s: %d %s, memory %.0f%% used",
			c.Label, src.Cores(), util.Pluralize(src.Cores(), "core", "cores"), sample.MemoryFraction()*100),
	}
}
