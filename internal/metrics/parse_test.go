package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoreJiffies(t *testing.T) {
	tests := []struct {
		name      string
		procStat  string
		wantCores int
		wantFirst cpuJiffies
		wantErr   bool
	}{
		{
			name: "two core system",
			procStat: `cpu  1234567 12345 234567 8901234 12345 0 6789 0 0 0
cpu0 100 0 100 700 100 0 0 0 0 0
cpu1 617284 6173 117284 4450617 6173 0 3395 0 0 0
intr 123456 0 0
ctxt 987654`,
			wantCores: 2,
			wantFirst: cpuJiffies{total: 1000, idle: 800},
		},
		{
			name: "guest columns are not double counted",
			procStat: `cpu  0 0 0 0 0 0 0 0 0 0
cpu0 100 0 0 100 0 0 0 0 50 50`,
			wantCores: 1,
			wantFirst: cpuJiffies{total: 200, idle: 100},
		},
		{
			name: "old kernel with four fields",
			procStat: `cpu0 10 20 30 40`,
			wantCores: 1,
			wantFirst: cpuJiffies{total: 100, idle: 40},
		},
		{
			name:      "aggregate only",
			procStat:  "cpu  1 2 3 4 5 6 7 0 0 0",
			wantCores: 0,
		},
		{
			name: "offline core keeps its number",
			procStat: `cpu  0 0 0 0 0 0 0 0 0 0
cpu0 10 0 0 90 0 0 0 0 0 0
cpu2 20 0 0 80 0 0 0 0 0 0`,
			wantCores: 2,
			wantFirst: cpuJiffies{core: 0, total: 100, idle: 90},
		},
		{
			name:     "bad core label",
			procStat: "cpu0x 1 2 3 4",
			wantErr:  true,
		},
		{
			name:     "truncated core line",
			procStat: "cpu0 1 2",
			wantErr:  true,
		},
		{
			name:     "garbage field",
			procStat: "cpu0 1 2 three 4 5",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cores, err := parseCoreJiffies(tt.procStat)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, cores, tt.wantCores)
			if tt.wantCores > 0 {
				assert.Equal(t, tt.wantFirst, cores[0])
			}
		})
	}
}

func TestCoreUsage(t *testing.T) {
	t.Run("no baseline uses since-boot ratio", func(t *testing.T) {
		usage := coreUsage(nil, []cpuJiffies{{total: 1000, idle: 750}})
		require.Len(t, usage, 1)
		assert.InDelta(t, 25.0, usage[0], 1e-9)
	})

	t.Run("delta between snapshots", func(t *testing.T) {
		prev := []cpuJiffies{{core: 0, total: 1000, idle: 500}, {core: 1, total: 1000, idle: 1000}}
		cur := []cpuJiffies{{core: 0, total: 1100, idle: 510}, {core: 1, total: 1100, idle: 1100}}

		usage := coreUsage(prev, cur)
		require.Len(t, usage, 2)
		assert.InDelta(t, 90.0, usage[0], 1e-9)
		assert.InDelta(t, 0.0, usage[1], 1e-9)
	})

	t.Run("stalled counter reports zero", func(t *testing.T) {
		prev := []cpuJiffies{{total: 1000, idle: 500}}
		usage := coreUsage(prev, []cpuJiffies{{total: 1000, idle: 500}})
		assert.Equal(t, []float64{0}, usage)
	})

	t.Run("core appearing mid-run", func(t *testing.T) {
		prev := []cpuJiffies{{total: 100, idle: 50}}
		cur := []cpuJiffies{{core: 0, total: 200, idle: 100}, {core: 1, total: 400, idle: 100}}

		usage := coreUsage(prev, cur)
		require.Len(t, usage, 2)
		assert.InDelta(t, 50.0, usage[0], 1e-9)
		assert.InDelta(t, 75.0, usage[1], 1e-9)
	})

	t.Run("core going offline keeps later baselines", func(t *testing.T) {
		prev := []cpuJiffies{
			{core: 0, total: 1000, idle: 500},
			{core: 1, total: 5000, idle: 100},
			{core: 2, total: 1000, idle: 900},
		}
		cur := []cpuJiffies{
			{core: 0, total: 1100, idle: 550},
			{core: 2, total: 1100, idle: 990},
		}

		usage := coreUsage(prev, cur)
		require.Len(t, usage, 3)
		assert.InDelta(t, 50.0, usage[0], 1e-9)
		assert.Zero(t, usage[1], "offline core")
		assert.InDelta(t, 10.0, usage[2], 1e-9)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, coreUsage(nil, nil))
	})
}

func TestParseMemInfo(t *testing.T) {
	tests := []struct {
		name      string
		meminfo   string
		wantUsed  uint64
		wantTotal uint64
		wantErr   bool
	}{
		{
			name: "with MemAvailable",
			meminfo: `MemTotal:       16000000 kB
MemFree:         2000000 kB
MemAvailable:   12000000 kB
Buffers:          500000 kB
Cached:          4000000 kB`,
			wantUsed:  4000000 * 1024,
			wantTotal: 16000000 * 1024,
		},
		{
			name: "legacy kernel without MemAvailable",
			meminfo: `MemTotal:       1000 kB
MemFree:         100 kB
Buffers:         200 kB
Cached:          300 kB`,
			wantUsed:  400 * 1024,
			wantTotal: 1000 * 1024,
		},
		{
			name: "available larger than total",
			meminfo: `MemTotal:       1000 kB
MemAvailable:   2000 kB`,
			wantUsed:  0,
			wantTotal: 1000 * 1024,
		},
		{
			name:    "missing total",
			meminfo: "MemFree: 100 kB",
			wantErr: true,
		},
		{
			name:    "empty",
			meminfo: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			used, total, err := parseMemInfo(tt.meminfo)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUsed, used)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}
