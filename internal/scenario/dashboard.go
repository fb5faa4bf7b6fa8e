package scenario

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/optipenn/uxaudit/internal/result"
	"github.com/optipenn/uxaudit/internal/score"
)

// runDashboard checks the dashboard's structural elements, data widgets and
// responsive behavior at mobile and tablet widths.
func runDashboard(ctx context.Context, env *Env) (result.Result, error) {
	cfg := env.Config

	var loadTime float64

	current, err := env.Browser.Location(ctx)
	if err != nil {
		return result.Result{}, err
	}

	if current != cfg.BaseURL+"/" {
		if loadTime, err = MeasureLoad(ctx, env, cfg.BaseURL+"/"); err != nil {
			return result.Result{}, err
		}
	}

	shot := Capture(ctx, env, "04_dashboard_main")

	var missing []string

	structure := []struct {
		name     string
		selector string
	}{
		{"title", "h1, h2, .dashboard-title"},
		{"navigation", "nav, .sidebar, .navigation"},
		{"content_area", "main, .main-content, .dashboard-content"},
	}

	for _, el := range structure {
		present, err := env.Browser.WaitForElement(ctx, el.selector, cfg.Timeout)
		if err != nil {
			return result.Result{}, err
		}

		if !present {
			missing = append(missing, el.name)
		}
	}

	statsCards, err := env.Browser.Count(ctx, ".card, .widget, .stat-card")
	if err != nil {
		return result.Result{}, err
	}

	if statsCards == 0 {
		missing = append(missing, "stats_cards")
	}

	err = WithViewport(ctx, env, cfg.Mobile, func() error {
		Capture(ctx, env, "05_dashboard_mobile")

		return nil
	})
	if err != nil {
		return result.Result{}, err
	}

	err = WithViewport(ctx, env, cfg.Tablet, func() error {
		Capture(ctx, env, "06_dashboard_tablet")

		return nil
	})
	if err != nil {
		return result.Result{}, err
	}

	dataElements, err := env.Browser.Count(ctx, ".chart, .graph, .table, .data-table, .statistics")
	if err != nil {
		return result.Result{}, err
	}

	consoleErrors := SevereConsoleErrors(env)

	rules := score.RuleSet{
		Base: 8,
		Rules: []score.Rule{
			{Signal: "missing_elements", Op: score.OpPerUnit, Delta: -1},
			{Signal: "data_elements", Op: score.OpEquals, Threshold: 0, Delta: -2},
			{Signal: "console_errors", Op: score.OpPerUnit, Delta: -1},
		},
	}

	ux := rules.Evaluate(score.Signals{
		"missing_elements": float64(len(missing)),
		"data_elements":    float64(dataElements),
		"console_errors":   float64(len(consoleErrors)),
	})

	var errMsg string
	if len(missing) > 0 {
		errMsg = fmt.Sprintf("missing dashboard elements: %s", strings.Join(missing, ", "))
	}

	env.Log.Infof("Dashboard checks completed. UX score: %d/10", ux)

	return result.Result{
		Name:       "Dashboard",
		Passed:     len(missing) == 0,
		Error:      errMsg,
		Screenshot: shot,
		Performance: map[string]any{
			result.PerfLoadTime:      round2(loadTime),
			result.PerfConsoleErrors: len(consoleErrors),
			"stats_cards_count":      statsCards,
			"data_elements_count":    dataElements,
			"missing_elements":       missing,
		},
		UXScore:   ux,
		Timestamp: time.Now(),
	}, nil
}
