package metrics

import (
	"context"
	"time"

	"github.com/rileyhilliard/livescope/internal/errors"
)

const (
	procStatPath    = "/proc/stat"
	procMeminfoPath = "/proc/meminfo"
)

// ProcSource samples the local host through procfs.
// CPU utilization is the jiffy delta since the previous Sample call.
type ProcSource struct {
	readFile func(path string) ([]byte, error)
	now      func() time.Time

	prev  []cpuJiffies
	cores int
}

// newProcSource primes the jiffy baseline so the first Sample already reports deltas.
func newProcSource(readFile func(string) ([]byte, error)) (*ProcSource, error) {
	s := &ProcSource{readFile: readFile, now: time.Now}

	jiffies, err := s.readJiffies()
	if err != nil {
		return nil, err
	}
	if len(jiffies) == 0 {
		return nil, errors.New(errors.ErrMetrics,
			"No CPU cores found in "+procStatPath,
			"livescope needs per-core lines (cpu0, cpu1, ...) in /proc/stat")
	}

	s.prev = jiffies
	s.cores = coreCount(jiffies)
	return s, nil
}

// Sample reads /proc/stat and /proc/meminfo.
func (s *ProcSource) Sample(ctx context.Context) (Sample, error) {
	if err := ctx.Err(); err != nil {
		return Sample{}, err
	}

	jiffies, err := s.readJiffies()
	if err != nil {
		return Sample{}, err
	}

	raw, err := s.readFile(procMeminfoPath)
	if err != nil {
		return Sample{}, errors.WrapWithCode(err, errors.ErrMetrics, "Couldn't read "+procMeminfoPath, "")
	}
	used, total, err := parseMemInfo(string(raw))
	if err != nil {
		return Sample{}, errors.WrapWithCode(err, errors.ErrMetrics, "Couldn't parse "+procMeminfoPath, "")
	}

	usage := coreUsage(s.prev, jiffies)
	s.prev = jiffies

	return Sample{
		Timestamp:   s.now(),
		CPU:         usage,
		MemoryUsed:  used,
		MemoryTotal: total,
	}, nil
}

// Cores returns the number of cores seen when the source was opened,
// counting up to the highest online core number.
func (s *ProcSource) Cores() int {
	return s.cores
}

// Close is a no-op; procfs files are opened per read.
func (s *ProcSource) Close() error {
	return nil
}

func (s *ProcSource) readJiffies() ([]cpuJiffies, error) {
	raw, err := s.readFile(procStatPath)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics, "Couldn't read "+procStatPath, "")
	}
	jiffies, err := parseCoreJiffies(string(raw))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics, "Couldn't parse "+procStatPath, "")
	}
	return jiffies, nil
}
