// Package report turns a result sequence into its output forms: the
// recommendation list, the HTML report and the console summary.
package report

import (
	"fmt"

	"github.com/optipenn/uxaudit/internal/result"
)

// Recommendations derives the improvement advice for a run. Each rule is
// independent; the output order is fixed. An empty slice means nothing
// triggered, which only happens for runs that also earn no praise.
func Recommendations(results []result.Result, summary result.Summary, minLoadTime float64) []string {
	var recs []string

	if summary.AvgUXScore < 7 {
		recs = append(recs, "Improve overall UX design - current average score is below enterprise standards")
	}

	if summary.Failed > 0 {
		recs = append(recs, fmt.Sprintf("Fix %d failing test(s) to ensure application stability", summary.Failed))
	}

	slowPages := 0
	for _, r := range results {
		if perfFloat(r.Performance, result.PerfLoadTime) > minLoadTime {
			slowPages++
		}
	}

	if slowPages > 0 {
		recs = append(recs, fmt.Sprintf("Optimize page load times - %d pages are loading slower than %.1fs", slowPages, minLoadTime))
	}

	errorTests := 0
	for _, r := range results {
		if perfFloat(r.Performance, result.PerfConsoleErrors) > 0 {
			errorTests++
		}
	}

	if errorTests > 0 {
		recs = append(recs, fmt.Sprintf("Fix JavaScript console errors found in %d test(s)", errorTests))
	}

	if summary.AvgUXScore >= 8 && summary.Failed == 0 {
		recs = append(recs,
			"Excellent! Consider adding dark mode for premium professional appearance",
			"Add more interactive elements and micro-animations for enhanced UX",
		)
	}

	return recs
}

// perfFloat reads a numeric performance metric, tolerating the value types
// scenarios actually record. Missing keys read as zero.
func perfFloat(perf map[string]any, key string) float64 {
	switch v := perf[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case bool:
		if v {
			return 1
		}

		return 0
	}

	return 0
}
