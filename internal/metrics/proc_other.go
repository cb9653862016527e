//go:build !linux

package metrics

import "github.com/rileyhilliard/livescope/internal/errors"

// NewProcSource always fails on platforms without procfs.
func NewProcSource() (*ProcSource, error) {
	return nil, errors.New(errors.ErrMetrics,
		"Live sampling requires Linux /proc",
		"Use --replay with a recorded YAML file on this platform")
}
