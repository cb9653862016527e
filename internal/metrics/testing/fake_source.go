// Package testing provides a scripted metrics.Source for tests.
package testing

import (
	"context"
	"sync"

	"github.com/rileyhilliard/livescope/internal/metrics"
)

// Step is one scripted response.
type Step struct {
	Sample metrics.Sample
	Err    error
}

// FakeSource returns scripted samples in order. Once the script runs out
// it keeps returning the last step.
type FakeSource struct {
	mu     sync.Mutex
	cores  int
	steps  []Step
	calls  int
	closed bool
}

// NewFakeSource creates a source reporting the given core count.
func NewFakeSource(cores int, steps ...Step) *FakeSource {
	return &FakeSource{cores: cores, steps: steps}
}

// Push appends a successful sample to the script.
func (f *FakeSource) Push(s metrics.Sample) *FakeSource {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.steps = append(f.steps, Step{Sample: s})
	return f
}

// PushCPU appends a sample with the given per-core usage and no memory data.
func (f *FakeSource) PushCPU(cpu ...float64) *FakeSource {
	return f.Push(metrics.Sample{CPU: cpu})
}

// Fail appends a failing step.
func (f *FakeSource) Fail(err error) *FakeSource {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.steps = append(f.steps, Step{Err: err})
	return f
}

// Sample implements metrics.Source.
func (f *FakeSource) Sample(ctx context.Context) (metrics.Sample, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return metrics.Sample{}, err
	}
	if len(f.steps) == 0 {
		f.calls++
		return metrics.Sample{CPU: make([]float64, f.cores)}, nil
	}

	idx := f.calls
	if idx >= len(f.steps) {
		idx = len(f.steps) - 1
	}
	f.calls++

	step := f.steps[idx]
	return step.Sample, step.Err
}

// Cores implements metrics.Source.
func (f *FakeSource) Cores() int {
	return f.cores
}

// Close implements metrics.Source.
func (f *FakeSource) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Calls returns how many times Sample was called.
func (f *FakeSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Closed reports whether Close was called.
func (f *FakeSource) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

var _ metrics.Source = (*FakeSource)(nil)
