package doctor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rileyhilliard/livescope/internal/metrics"
	metricstest "github.com/rileyhilliard/livescope/internal/metrics/testing"
)

func TestSourceCheckPass(t *testing.T) {
	src := metricstest.NewFakeSource(4).Push(metrics.Sample{
		CPU:         []float64{10, 20, 30, 40},
		MemoryUsed:  25,
		MemoryTotal: 100,
	})
	check := &SourceCheck{
		Label: "procfs",
		Open:  func() (metrics.Source, error) { return src, nil },
	}

	res := check.Run()

	assert.Equal(t, StatusPass, res.Status)
	assert.Equal(t, "procfs: 4 cores, memory 25% used", res.Message)
	assert.Equal(t, CategoryMetrics, check.Category())
	assert.True(t, src.Closed())
	assert.Equal(t, 1, src.Calls())
}

func TestSourceCheckSingleCore(t *testing.T) {
	src := metricstest.NewFakeSource(1)
	res := (&SourceCheck{Label: "demo.yaml", Open: func() (metrics.Source, error) { return src, nil }}).Run()
	assert.Equal(t, StatusPass, res.Status)
	assert.Equal(t, "demo.yaml: 1 core, memory 0% used", res.Message)
}

func TestSourceCheckFailures(t *testing.T) {
	t.Run("open fails", func(t *testing.T) {
		res := (&SourceCheck{
			Label: "procfs",
			Open:  func() (metrics.Source, error) { return nil, errors.New("no /proc") },
		}).Run()
		assert.Equal(t, StatusFail, res.Status)
		assert.Equal(t, "Couldn't open procfs", res.Message)
		assert.Equal(t, "no /proc", res.Suggestion)
	})

	t.Run("no cores", func(t *testing.T) {
		src := metricstest.NewFakeSource(0)
		res := (&SourceCheck{Label: "procfs", Open: func() (metrics.Source, error) { return src, nil }}).Run()
		assert.Equal(t, StatusFail, res.Status)
		assert.Equal(t, "procfs reports no CPU cores", res.Message)
		assert.True(t, src.Closed())
	})

	t.Run("sample fails", func(t *testing.T) {
		src := metricstest.NewFakeSource(2).Fail(errors.New("read error"))
		res := (&SourceCheck{Label: "procfs", Open: func() (metrics.Source, error) { return src, nil }}).Run()
		assert.Equal(t, StatusFail, res.Status)
		assert.Equal(t, "Sampling procfs failed", res.Message)
	})

	t.Run("no opener", func(t *testing.T) {
		assert.Equal(t, StatusFail, (&SourceCheck{}).Run().Status)
	})
}
