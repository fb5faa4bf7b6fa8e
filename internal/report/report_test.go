package report

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/optipenn/uxaudit/internal/artifacts"
	"github.com/optipenn/uxaudit/internal/result"
)

func passing(name string, score int, perf map[string]any) result.Result {
	return result.Result{
		Name:        name,
		Passed:      true,
		Performance: perf,
		UXScore:     score,
		Timestamp:   time.Now(),
	}
}

func TestRecommendations_LowScoreAndFailures(t *testing.T) {
	t.Parallel()

	results := []result.Result{
		passing("Dashboard", 5, map[string]any{result.PerfConsoleErrors: 2}),
		result.Failing("Login Flow", "form not found", ""),
	}
	summary := result.Summary{Total: 2, Passed: 1, Failed: 1, AvgUXScore: 3.0}

	recs := Recommendations(results, summary, 2.0)

	require.Equal(t, []string{
		"Improve overall UX design - current average score is below enterprise standards",
		"Fix 1 failing test(s) to ensure application stability",
		"Fix JavaScript console errors found in 1 test(s)",
	}, recs)
}

func TestRecommendations_SlowPagesOnHealthyRun(t *testing.T) {
	t.Parallel()

	results := []result.Result{
		passing("Login Flow", 9, map[string]any{result.PerfLoadTime: 3.5}),
		passing("Dashboard", 9, map[string]any{result.PerfLoadTime: 0.8}),
	}
	summary := result.Summary{Total: 2, Passed: 2, AvgUXScore: 9.0}

	recs := Recommendations(results, summary, 2.0)

	require.Equal(t, []string{
		"Optimize page load times - 1 pages are loading slower than 2.0s",
		"Excellent! Consider adding dark mode for premium professional appearance",
		"Add more interactive elements and micro-animations for enhanced UX",
	}, recs)
}

func TestRecommendations_NothingTriggered(t *testing.T) {
	t.Parallel()

	results := []result.Result{
		passing("Login Flow", 7, map[string]any{result.PerfLoadTime: 1.0}),
	}
	summary := result.Summary{Total: 1, Passed: 1, AvgUXScore: 7.0}

	require.Empty(t, Recommendations(results, summary, 2.0))
}

func TestPerfFloat_ValueTypes(t *testing.T) {
	t.Parallel()

	perf := map[string]any{
		"load_time":      3.5,
		"console_errors": 2,
		"has_search":     true,
	}

	require.InDelta(t, 3.5, perfFloat(perf, "load_time"), 0.001)
	require.InDelta(t, 2.0, perfFloat(perf, "console_errors"), 0.001)
	require.InDelta(t, 1.0, perfFloat(perf, "has_search"), 0.001)
	require.Zero(t, perfFloat(perf, "missing"))
}

func TestHTMLRenderer_Render(t *testing.T) {
	t.Parallel()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	store, err := artifacts.NewStore(t.TempDir(), log)
	require.NoError(t, err)

	shot := store.SaveScreenshot("01_login_page", []byte("fake-png"))
	require.NotEmpty(t, shot)

	results := []result.Result{
		{
			Name:        "Login Flow",
			Passed:      true,
			Screenshot:  shot,
			Performance: map[string]any{result.PerfLoadTime: 1.2, result.PerfConsoleErrors: 0},
			UXScore:     9,
			Timestamp:   time.Now(),
		},
		result.Failing("Dashboard", "navigation missing", ""),
	}
	summary := result.Summarize(results, time.Now().Add(-30*time.Second))

	renderer := NewHTMLRenderer(store, log)

	path, err := renderer.Render(context.Background(), results, summary,
		Recommendations(results, summary, 2.0))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	html := string(data)
	require.Contains(t, html, "Login Flow")
	require.Contains(t, html, "data:image/png;base64,")
	require.Contains(t, html, "navigation missing")
	require.Contains(t, html, "UX Recommendations for Enterprise Users")
	require.Contains(t, html, "Load Time")
}

func TestHTMLRenderer_MissingScreenshotDegrades(t *testing.T) {
	t.Parallel()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	store, err := artifacts.NewStore(t.TempDir(), log)
	require.NoError(t, err)

	results := []result.Result{
		{
			Name:       "Quotes Functionality",
			Passed:     true,
			Screenshot: "/nonexistent/shot.png",
			UXScore:    8,
			Timestamp:  time.Now(),
		},
	}
	summary := result.Summarize(results, time.Now())

	path, err := NewHTMLRenderer(store, log).Render(context.Background(), results, summary, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "data:image/png")
}

func TestConsoleReporter_Print(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	results := []result.Result{
		passing("Login Flow", 9, nil),
		result.Failing("Dashboard", "layout broken", ""),
	}
	summary := result.Summarize(results, time.Now())

	NewConsoleReporter(&buf).Print(results, summary, []string{"Fix 1 failing test(s) to ensure application stability"}, "/tmp/report.html")

	out := buf.String()
	require.Contains(t, out, "TEST SUMMARY")
	require.Contains(t, out, "Login Flow")
	require.Contains(t, out, "layout broken")
	require.Contains(t, out, "Success Rate:     50.0%")
	require.Contains(t, out, "NEEDS WORK")
	require.Contains(t, out, "/tmp/report.html")
}

func TestVerdict_Bands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		summary result.Summary
		want    string
	}{
		{result.Summary{Total: 7, Passed: 7, AvgUXScore: 8.5}, "EXCELLENT"},
		{result.Summary{Total: 7, Passed: 7, AvgUXScore: 6.5}, "GOOD"},
		{result.Summary{Total: 7, Passed: 7, AvgUXScore: 4.0}, "FUNCTIONAL"},
		{result.Summary{Total: 7, Passed: 5, Failed: 2, AvgUXScore: 9.0}, "NEEDS WORK"},
	}

	for _, tc := range cases {
		require.True(t, strings.Contains(verdict(tc.summary), tc.want),
			"summary %+v should produce %q verdict", tc.summary, tc.want)
	}
}
