package doctor

import (
	"fmt"

	"github.com/rileyhilliard/livescope/internal/util"
)

// CheckStatus represents the result status of a check.
type CheckStatus int

const (
	StatusPass CheckStatus = iota
	StatusWarn
	StatusFail
)

// String returns a human-readable status string.
func (s CheckStatus) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// MarshalText renders the status by name in JSON output.
func (s CheckStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Categories in display order.
const (
	CategoryTerminal = "TERMINAL"
	CategoryMetrics  = "METRICS"
	CategoryConfig   = "CONFIG"
)

// CategoryOrder is the order categories are reported in.
var CategoryOrder = []string{CategoryTerminal, CategoryMetrics, CategoryConfig}

// CheckResult contains the outcome of running a check.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// Check defines the interface for diagnostic checks.
type Check interface {
	// Name returns the check's identifier.
	Name() string

	// Category returns the check's category (e.g., "TERMINAL", "CONFIG").
	Category() string

	// Run executes the check and returns the result.
	Run() CheckResult
}

// CategoryResults holds the results of one category, in check order.
type CategoryResults struct {
	Name    string        `json:"name"`
	Results []CheckResult `json:"results"`
}

// RunAll executes all checks sequentially and returns the results.
func RunAll(checks []Check) []CheckResult {
	results := make([]CheckResult, len(checks))
	for i, check := range checks {
		results[i] = check.Run()
	}
	return results
}

// Group pairs checks with their results by category. Known categories come
// first in CategoryOrder; unknown ones follow in first-seen order.
func Group(checks []Check, results []CheckResult) []CategoryResults {
	index := make(map[string]int)
	var groups []CategoryResults

	for _, cat := range CategoryOrder {
		index[cat] = len(groups)
		groups = append(groups, CategoryResults{Name: cat})
	}

	for i, check := range checks {
		if i >= len(results) {
			break
		}
		cat := check.Category()
		idx, ok := index[cat]
		if !ok {
			idx = len(groups)
			index[cat] = idx
			groups = append(groups, CategoryResults{Name: cat})
		}
		groups[idx].Results = append(groups[idx].Results, results[i])
	}

	out := groups[:0]
	for _, g := range groups {
		if len(g.Results) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// CountByStatus counts results by status.
func CountByStatus(results []CheckResult) map[CheckStatus]int {
	counts := make(map[CheckStatus]int)
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}

// HasFailures returns true if any result has a fail status.
func HasFailures(results []CheckResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// HasIssues returns true if any result has a fail or warn status.
func HasIssues(results []CheckResult) bool {
	for _, r := range results {
		if r.Status == StatusFail || r.Status == StatusWarn {
			return true
		}
	}
	return false
}

// Summary returns a summary string of the check results.
func Summary(results []CheckResult) string {
	counts := CountByStatus(results)
	warn := counts[StatusWarn]
	fail := counts[StatusFail]

	if fail == 0 && warn == 0 {
		return "Everything looks good"
	}

	total := warn + fail
	return fmt.Sprintf("%d %s found", total, util.Pluralize(total, "issue", "issues"))
}
