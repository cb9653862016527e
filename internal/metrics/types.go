// Package metrics supplies host performance samples to the visualizer.
//
// A Source produces one Sample per call: per-core CPU utilization and
// memory used/total. Sources are best effort; a failed sample is reported
// as a retryable METRICS error and the caller simply tries again next tick.
package metrics

import (
	"context"
	"time"
)

// Sample is a single snapshot of host utilization.
type Sample struct {
	Timestamp time.Time

	// CPU holds per-core utilization in percent (0-100), ordered by core index.
	CPU []float64

	MemoryUsed  uint64
	MemoryTotal uint64
}

// MemoryFraction returns used/total in [0, 1], or 0 when the total is unknown.
func (s Sample) MemoryFraction() float64 {
	if s.MemoryTotal == 0 {
		return 0
	}
	f := float64(s.MemoryUsed) / float64(s.MemoryTotal)
	if f > 1 {
		return 1
	}
	return f
}

// AverageCPU returns the mean utilization across cores, or 0 with no cores.
func (s Sample) AverageCPU() float64 {
	if len(s.CPU) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.CPU {
		sum += v
	}
	return sum / float64(len(s.CPU))
}

// Source produces metric samples on demand.
type Source interface {
	// Sample refreshes the underlying readings and returns a new snapshot.
	Sample(ctx context.Context) (Sample, error)

	// Cores is the number of CPU cores detected when the source was created.
	Cores() int

	// Close releases any resources held by the source.
	Close() error
}
