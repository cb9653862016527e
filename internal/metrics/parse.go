package metrics

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// cpuJiffies stores cumulative CPU jiffies for delta calculation.
type cpuJiffies struct {
	core  int // N from the cpuN label
	total int64
	idle  int64
}

// parseCoreJiffies reads the per-core lines (cpu0, cpu1, ...) from /proc/stat.
// The aggregate "cpu " line is skipped. Offline cores have no line, so the
// core numbers may have gaps.
func parseCoreJiffies(procStat string) ([]cpuJiffies, error) {
	var cores []cpuJiffies
	scanner := bufio.NewScanner(strings.NewReader(procStat))

	for scanner.Scan() {
		line := scanner.Text()

		if !strings.HasPrefix(line, "cpu") || len(line) <= 3 || line[3] < '0' || line[3] > '9' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 5 {
			return nil, fmt.Errorf("invalid /proc/stat cpu line: %s", line)
		}

		core, err := strconv.Atoi(fields[0][3:])
		if err != nil || core < 0 {
			return nil, fmt.Errorf("invalid /proc/stat cpu label: %s", fields[0])
		}

		// Fields: cpuN user nice system idle iowait irq softirq steal guest guest_nice
		j := cpuJiffies{core: core}
		for i := 1; i < len(fields); i++ {
			// guest time is already accounted in user/nice
			if i >= 9 {
				break
			}
			val, err := strconv.ParseInt(fields[i], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s field %d: %w", fields[0], i, err)
			}
			j.total += val

			// idle is field 4, iowait is field 5
			if i == 4 || i == 5 {
				j.idle += val
			}
		}
		cores = append(cores, j)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning /proc/stat: %w", err)
	}

	return cores, nil
}

// coreCount returns one more than the highest core number in a snapshot.
func coreCount(snapshot []cpuJiffies) int {
	n := 0
	for _, j := range snapshot {
		n = max(n, j.core+1)
	}
	return n
}

// coreUsage converts two jiffy snapshots into per-core utilization
// percentages, indexed by core number. Snapshots are paired by core number,
// so a core going offline doesn't shift the baseline of the ones after it.
// Offline cores report 0. Without a previous snapshot for a core, the
// since-boot ratio is used.
func coreUsage(prev, cur []cpuJiffies) []float64 {
	baseline := make(map[int]cpuJiffies, len(prev))
	for _, p := range prev {
		baseline[p.core] = p
	}

	usage := make([]float64, coreCount(cur))
	for _, c := range cur {
		total, idle := c.total, c.idle
		if p, ok := baseline[c.core]; ok {
			if c.total <= p.total {
				// Counter didn't move (or went backwards): nothing to report.
				continue
			}
			total -= p.total
			idle -= p.idle
		}
		if total <= 0 {
			continue
		}
		pct := float64(total-idle) / float64(total) * 100
		switch {
		case pct < 0:
			pct = 0
		case pct > 100:
			pct = 100
		}
		usage[c.core] = pct
	}
	return usage
}

// parseMemInfo returns used and total bytes from /proc/meminfo.
// Used is MemTotal - MemAvailable when the kernel reports MemAvailable,
// otherwise MemTotal - MemFree - Buffers - Cached.
func parseMemInfo(procMeminfo string) (used, total uint64, err error) {
	scanner := bufio.NewScanner(strings.NewReader(procMeminfo))

	var memTotal, memFree, memAvailable, buffers, cached uint64
	var haveTotal, haveFree, haveAvailable bool

	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		key := strings.TrimSuffix(parts[0], ":")
		val, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			continue
		}

		// Values in /proc/meminfo are in kB
		valBytes := val * 1024

		switch key {
		case "MemTotal":
			memTotal, haveTotal = valBytes, true
		case "MemFree":
			memFree, haveFree = valBytes, true
		case "MemAvailable":
			memAvailable, haveAvailable = valBytes, true
		case "Buffers":
			buffers = valBytes
		case "Cached":
			cached = valBytes
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("error scanning /proc/meminfo: %w", err)
	}

	if !haveTotal || (!haveAvailable && !haveFree) {
		return 0, 0, fmt.Errorf("insufficient memory info found in /proc/meminfo")
	}

	var free uint64
	if haveAvailable {
		free = memAvailable
	} else {
		free = memFree + buffers + cached
	}
	if free > memTotal {
		free = memTotal
	}

	return memTotal - free, memTotal, nil
}
