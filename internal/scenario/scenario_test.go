package scenario

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/optipenn/uxaudit/internal/artifacts"
	"github.com/optipenn/uxaudit/internal/browser"
	"github.com/optipenn/uxaudit/internal/config"
	"github.com/optipenn/uxaudit/internal/result"
)

// fakeSession is an in-memory browser.Session. Element presence and counts
// are seeded per selector; everything else behaves like an empty page.
type fakeSession struct {
	mu       sync.Mutex
	present  map[string]bool
	counts   map[string]int
	console  []browser.ConsoleEntry
	location string
	width    int
	height   int
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		present:  map[string]bool{},
		counts:   map[string]int{},
		location: "http://app/start",
		width:    1920,
		height:   1080,
	}
}

func (f *fakeSession) Navigate(_ context.Context, url string) error {
	f.location = url

	return nil
}

func (f *fakeSession) WaitForElement(_ context.Context, selector string, _ time.Duration) (bool, error) {
	return f.present[selector], nil
}

func (f *fakeSession) WaitForClickable(_ context.Context, selector string, _ time.Duration) (bool, error) {
	return f.present[selector], nil
}

func (f *fakeSession) Count(_ context.Context, selector string) (int, error) {
	return f.counts[selector], nil
}

func (f *fakeSession) Click(context.Context, string) error { return nil }

func (f *fakeSession) SendKeys(context.Context, string, string) error { return nil }

func (f *fakeSession) Clear(context.Context, string) error { return nil }

func (f *fakeSession) Evaluate(_ context.Context, expression string, out any) error {
	switch v := out.(type) {
	case *string:
		if expression == "document.readyState" {
			*v = "complete"
		}
	case *bool:
		*v = false
	case *int:
		*v = 0
	}

	return nil
}

func (f *fakeSession) ConsoleLog() []browser.ConsoleEntry {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := f.console
	f.console = nil

	return entries
}

func (f *fakeSession) CaptureScreenshot(context.Context) ([]byte, error) {
	return []byte("png"), nil
}

func (f *fakeSession) SetViewport(_ context.Context, width, height int) error {
	f.width, f.height = width, height

	return nil
}

func (f *fakeSession) Viewport(context.Context) (int, int, error) {
	return f.width, f.height, nil
}

func (f *fakeSession) Location(context.Context) (string, error) {
	return f.location, nil
}

func (f *fakeSession) Close() error { return nil }

func testEnv(t *testing.T, b browser.Session) *Env {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	store, err := artifacts.NewStore(t.TempDir(), log)
	require.NoError(t, err)

	return &Env{
		Browser: b,
		Config: config.Config{
			BaseURL:     "http://app",
			Timeout:     10 * time.Millisecond,
			LongTimeout: 50 * time.Millisecond,
			MinLoadTime: 2.0,
			Mobile:      config.Viewport{Width: 375, Height: 800},
			Tablet:      config.Viewport{Width: 768, Height: 1024},
			Desktop:     config.Viewport{Width: 1920, Height: 1080},
		},
		Store: store,
		Log:   log,
	}
}

func TestRunAll_OneResultPerScenarioInOrder(t *testing.T) {
	t.Parallel()

	runner := NewRunner(testEnv(t, newFakeSession()))
	results := runner.RunAll(context.Background())

	require.Len(t, results, len(Registry()))

	wantNames := []string{
		"Login Flow",
		"Dashboard",
		"Clients Management",
		"Quotes Functionality",
		"Statistics & Analytics",
		"Error Handling",
		"Navigation & UX Flow",
	}
	for i, r := range results {
		require.Equal(t, wantNames[i], r.Name)
		require.NotZero(t, r.Timestamp)
	}
}

func TestRunAll_EmptyPageOutcomes(t *testing.T) {
	t.Parallel()

	runner := NewRunner(testEnv(t, newFakeSession()))
	results := runner.RunAll(context.Background())

	// On an empty page login finds no form and fails at the minimum score.
	require.False(t, results[0].Passed)
	require.Equal(t, 1, results[0].UXScore)

	// Error handling only rewards, so a blank page keeps its base score.
	require.True(t, results[5].Passed)
	require.Equal(t, 5, results[5].UXScore)

	// Instant navigation earns the speed bonus on the base score.
	require.True(t, results[6].Passed)
	require.Equal(t, 9, results[6].UXScore)
}

func TestRunIsolated_PanicBecomesFailingResult(t *testing.T) {
	t.Parallel()

	runner := NewRunner(testEnv(t, newFakeSession()))

	res := runner.runIsolated(context.Background(), Scenario{
		Name:  "boom",
		Title: "Boom",
		Run: func(context.Context, *Env) (result.Result, error) {
			panic("selector exploded")
		},
	})

	require.False(t, res.Passed)
	require.Equal(t, 1, res.UXScore)
	require.Contains(t, res.Error, "selector exploded")
	require.Equal(t, "Boom", res.Name)
}

func TestRunOne_UnknownName(t *testing.T) {
	t.Parallel()

	runner := NewRunner(testEnv(t, newFakeSession()))

	_, err := runner.RunOne(context.Background(), "payments")
	require.ErrorIs(t, err, ErrUnknownScenario)
}

func TestRunOne_KnownName(t *testing.T) {
	t.Parallel()

	runner := NewRunner(testEnv(t, newFakeSession()))

	res, err := runner.RunOne(context.Background(), "error")
	require.NoError(t, err)
	require.Equal(t, "Error Handling", res.Name)
}

func TestKnownAndNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"login", "dashboard", "clients", "quotes", "statistics", "error", "navigation"}, Names())
	require.True(t, Known("dashboard"))
	require.False(t, Known("billing"))
}

func TestSevereConsoleErrors_DrainsLog(t *testing.T) {
	t.Parallel()

	fake := newFakeSession()
	fake.console = []browser.ConsoleEntry{
		{Level: browser.LevelSevere, Message: "TypeError: x is undefined"},
		{Level: "INFO", Message: "loaded"},
		{Level: browser.LevelSevere, Message: "fetch failed"},
	}

	env := testEnv(t, fake)

	errs := SevereConsoleErrors(env)
	require.Equal(t, []string{"TypeError: x is undefined", "fetch failed"}, errs)

	// second read observes nothing
	require.Empty(t, SevereConsoleErrors(env))
}

func TestScenarioScoring_DashboardPenalties(t *testing.T) {
	t.Parallel()

	fake := newFakeSession()
	// all structural elements present, cards too, but no data widgets
	fake.present["h1, h2, .dashboard-title"] = true
	fake.present["nav, .sidebar, .navigation"] = true
	fake.present["main, .main-content, .dashboard-content"] = true
	fake.counts[".card, .widget, .stat-card"] = 4

	runner := NewRunner(testEnv(t, fake))

	res, err := runner.RunOne(context.Background(), "dashboard")
	require.NoError(t, err)
	require.True(t, res.Passed)
	// base 8 minus 2 for zero data elements
	require.Equal(t, 6, res.UXScore)
}

func TestScenarioScoring_StatisticsBonuses(t *testing.T) {
	t.Parallel()

	fake := newFakeSession()
	fake.counts["canvas, .chart, .graph, svg"] = 3
	fake.counts[".kpi, .metric, .stat-card, .card"] = 5
	fake.counts["input[type='date'], .date-picker"] = 2

	runner := NewRunner(testEnv(t, fake))

	res, err := runner.RunOne(context.Background(), "statistics")
	require.NoError(t, err)
	require.True(t, res.Passed)
	// base 6 plus charts, KPIs and date filters
	require.Equal(t, 10, res.UXScore)
}
