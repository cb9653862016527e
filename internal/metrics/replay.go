package metrics

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rileyhilliard/livescope/internal/errors"
	"gopkg.in/yaml.v3"
)

// ReplaySource plays back samples from a YAML file, looping forever.
// Useful for demos and on hosts without procfs.
//
//	samples:
//	  - cpu: [12.5, 80, 3, 41]
//	    memory_used: 4294967296
//	    memory_total: 17179869184
//	  - error: "simulated read failure"
type ReplaySource struct {
	samples []replaySample
	cores   int
	next    int
	now     func() time.Time
}

type replayFile struct {
	Samples []replaySample `yaml:"samples"`
}

type replaySample struct {
	CPU         []float64 `yaml:"cpu"`
	MemoryUsed  uint64    `yaml:"memory_used"`
	MemoryTotal uint64    `yaml:"memory_total"`

	// Error makes this step fail, to exercise the skip-a-tick path.
	Error string `yaml:"error,omitempty"`
}

// LoadReplay reads a replay file from disk.
func LoadReplay(path string) (*ReplaySource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't read replay file "+path,
			"Check the --replay path")
	}
	src, err := ParseReplay(data)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid replay file "+path,
			"Each entry needs a cpu list, memory_used and memory_total")
	}
	return src, nil
}

// ParseReplay builds a ReplaySource from YAML.
func ParseReplay(data []byte) (*ReplaySource, error) {
	var f replayFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing replay yaml: %w", err)
	}
	if len(f.Samples) == 0 {
		return nil, fmt.Errorf("replay has no samples")
	}

	cores := 0
	for i, s := range f.Samples {
		if s.Error != "" {
			continue
		}
		if s.MemoryUsed > s.MemoryTotal {
			return nil, fmt.Errorf("sample %d: memory_used exceeds memory_total", i)
		}
		for _, v := range s.CPU {
			if v < 0 || v > 100 {
				return nil, fmt.Errorf("sample %d: cpu value %v outside 0-100", i, v)
			}
		}
		if cores == 0 {
			cores = len(s.CPU)
		}
	}

	return &ReplaySource{samples: f.Samples, cores: cores, now: time.Now}, nil
}

// Sample returns the next recorded sample, wrapping around at the end.
func (r *ReplaySource) Sample(ctx context.Context) (Sample, error) {
	if err := ctx.Err(); err != nil {
		return Sample{}, err
	}

	s := r.samples[r.next]
	r.next = (r.next + 1) % len(r.samples)

	if s.Error != "" {
		return Sample{}, errors.New(errors.ErrMetrics, s.Error, "")
	}

	cpu := make([]float64, len(s.CPU))
	copy(cpu, s.CPU)
	return Sample{
		Timestamp:   r.now(),
		CPU:         cpu,
		MemoryUsed:  s.MemoryUsed,
		MemoryTotal: s.MemoryTotal,
	}, nil
}

// Cores is the core count of the first successful sample in the file.
func (r *ReplaySource) Cores() int {
	return r.cores
}

// Close is a no-op.
func (r *ReplaySource) Close() error {
	return nil
}
