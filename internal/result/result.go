// Package result defines the per-scenario result model and the derived run summary.
package result

import (
	"time"
)

// Result captures the outcome of a single scenario attempt. It is created
// exactly once per attempt (including attempts whose body failed) and never
// mutated afterwards. UXScore is clamped to [1,10] by the producer; the
// Result itself never re-clamps.
type Result struct {
	Name        string
	Passed      bool
	Error       string
	Screenshot  string
	Performance map[string]any
	UXScore     int
	Timestamp   time.Time
}

// Recognized Performance keys consumed by the recommendation rules. Scenarios
// may record any additional keys; only these two form a stable sub-contract.
const (
	PerfLoadTime      = "load_time"      // page load in seconds (float64)
	PerfConsoleErrors = "console_errors" // count of severe console entries (int)
)

// Failing builds the Result recorded when a scenario body returned an error,
// panicked, or bailed out before producing its own result.
func Failing(name, diagnostic, screenshot string) Result {
	return Result{
		Name:        name,
		Passed:      false,
		Error:       diagnostic,
		Screenshot:  screenshot,
		Performance: map[string]any{},
		UXScore:     1,
		Timestamp:   time.Now(),
	}
}

// Summary holds the aggregate statistics for one run. It is always recomputed
// from the result sequence, never stored independently.
type Summary struct {
	Total      int
	Passed     int
	Failed     int
	AvgUXScore float64
	Duration   time.Duration
}

// SuccessRate returns the passed percentage, or 0 for an empty run.
func (s Summary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total) * 100
}

// Summarize recomputes the run summary from a result sequence. AvgUXScore is
// 0 for an empty sequence.
func Summarize(results []Result, started time.Time) Summary {
	s := Summary{
		Total:    len(results),
		Duration: time.Since(started),
	}

	var scoreSum int
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
		scoreSum += r.UXScore
	}

	if s.Total > 0 {
		s.AvgUXScore = float64(scoreSum) / float64(s.Total)
	}

	return s
}
