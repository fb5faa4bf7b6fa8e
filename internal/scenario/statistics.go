package scenario

import (
	"context"
	"time"

	"github.com/optipenn/uxaudit/internal/result"
	"github.com/optipenn/uxaudit/internal/score"
)

// runStatistics checks the analytics page for charts, KPI cards and date
// filtering. Unlike most scenarios its score is mostly bonus-driven: the base
// reflects a bare page and visual analytics earn points.
func runStatistics(ctx context.Context, env *Env) (result.Result, error) {
	cfg := env.Config

	loadTime, err := MeasureLoad(ctx, env, cfg.BaseURL+"/statistics")
	if err != nil {
		return result.Result{}, err
	}

	shot := Capture(ctx, env, "14_statistics_main")

	charts, err := env.Browser.Count(ctx, "canvas, .chart, .graph, svg")
	if err != nil {
		return result.Result{}, err
	}

	kpiElements, err := env.Browser.Count(ctx, ".kpi, .metric, .stat-card, .card")
	if err != nil {
		return result.Result{}, err
	}

	dateFilters, err := env.Browser.Count(ctx, "input[type='date'], .date-picker")
	if err != nil {
		return result.Result{}, err
	}

	if dateFilters > 0 {
		Capture(ctx, env, "15_statistics_date_filter")
	}

	exportButtons, err := env.Browser.Count(ctx, ".export-report, button[title*='Export'], button[title*='Download']")
	if err != nil {
		return result.Result{}, err
	}

	consoleErrors := SevereConsoleErrors(env)

	rules := score.RuleSet{
		Base: 6,
		Rules: []score.Rule{
			{Signal: "charts", Op: score.OpGreaterThan, Threshold: 0, Delta: 2},
			{Signal: "kpi_elements", Op: score.OpGreaterThan, Threshold: 0, Delta: 1},
			{Signal: "date_filters", Op: score.OpGreaterThan, Threshold: 0, Delta: 1},
			{Signal: "console_errors", Op: score.OpPerUnit, Delta: -1},
		},
	}

	ux := rules.Evaluate(score.Signals{
		"charts":         float64(charts),
		"kpi_elements":   float64(kpiElements),
		"date_filters":   float64(dateFilters),
		"console_errors": float64(len(consoleErrors)),
	})

	passed := charts > 0 || kpiElements > 0

	var errMsg string
	if !passed {
		errMsg = "no charts or KPI elements found"
	}

	env.Log.Infof("Statistics checks completed. UX score: %d/10", ux)

	return result.Result{
		Name:       "Statistics & Analytics",
		Passed:     passed,
		Error:      errMsg,
		Screenshot: shot,
		Performance: map[string]any{
			result.PerfLoadTime:      round2(loadTime),
			result.PerfConsoleErrors: len(consoleErrors),
			"charts_count":           charts,
			"kpi_elements_count":     kpiElements,
			"date_filters_count":     dateFilters,
			"export_buttons_count":   exportButtons,
		},
		UXScore:   ux,
		Timestamp: time.Now(),
	}, nil
}
