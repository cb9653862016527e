package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/livescope/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const replayYAML = `
samples:
  - cpu: [10, 20]
    memory_used: 25
    memory_total: 100
  - error: "simulated read failure"
  - cpu: [90, 80]
    memory_used: 50
    memory_total: 100
`

func TestReplaySourceLoops(t *testing.T) {
	src, err := ParseReplay([]byte(replayYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, src.Cores())

	ctx := context.Background()

	s, err := src.Sample(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, s.CPU)
	assert.InDelta(t, 0.25, s.MemoryFraction(), 1e-9)

	_, err = src.Sample(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsRetryable(err))

	s, err = src.Sample(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{90, 80}, s.CPU)

	// Wraps around
	s, err = src.Sample(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, s.CPU)
	assert.NoError(t, src.Close())
}

func TestReplaySampleIsACopy(t *testing.T) {
	src, err := ParseReplay([]byte(replayYAML))
	require.NoError(t, err)

	s, err := src.Sample(context.Background())
	require.NoError(t, err)
	s.CPU[0] = 99

	src.next = 0
	again, err := src.Sample(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10.0, again.CPU[0])
}

func TestParseReplayErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "samples: [unterminated"},
		{"no samples", "samples: []"},
		{"cpu out of range", "samples:\n  - cpu: [101]\n    memory_total: 1"},
		{"negative cpu", "samples:\n  - cpu: [-1]\n    memory_total: 1"},
		{"used above total", "samples:\n  - cpu: [1]\n    memory_used: 5\n    memory_total: 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReplay([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadReplay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(replayYAML), 0o644))

	src, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, 2, src.Cores())

	_, err = LoadReplay(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("samples: []"), 0o644))
	_, err = LoadReplay(bad)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}
