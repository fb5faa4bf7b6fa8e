package scenario

import (
	"context"
	"strings"
	"time"

	"github.com/optipenn/uxaudit/internal/result"
	"github.com/optipenn/uxaudit/internal/score"
)

// runNavigation walks the main sections in sequence, timing each transition,
// then checks for wayfinding aids and global search.
func runNavigation(ctx context.Context, env *Env) (result.Result, error) {
	cfg := env.Config

	if err := env.Browser.Navigate(ctx, cfg.BaseURL+"/"); err != nil {
		return result.Result{}, err
	}

	settle(ctx, 2*cfg.SettleDelay)

	flows := []string{"/clients", "/quotes", "/statistics", "/"}

	var (
		navTimes []float64
		shot     string
	)

	for _, path := range flows {
		start := time.Now()

		if err := env.Browser.Navigate(ctx, cfg.BaseURL+path); err != nil {
			return result.Result{}, err
		}

		if err := waitReadyState(ctx, env.Browser, cfg.Timeout); err != nil {
			return result.Result{}, err
		}

		navTimes = append(navTimes, time.Since(start).Seconds())

		shot = Capture(ctx, env, "17_nav_"+strings.ReplaceAll(path, "/", "_"))
	}

	var avgNavTime float64
	for _, t := range navTimes {
		avgNavTime += t
	}
	avgNavTime /= float64(len(navTimes))

	navElements, err := env.Browser.Count(ctx, "nav, .breadcrumb, .navigation, .navbar")
	if err != nil {
		return result.Result{}, err
	}

	searchElements, err := env.Browser.Count(ctx, "[data-tour='global-search'], .global-search, input[placeholder*='Search']")
	if err != nil {
		return result.Result{}, err
	}

	consoleErrors := SevereConsoleErrors(env)

	rules := score.RuleSet{
		Base: 7,
		Rules: []score.Rule{
			{Signal: "avg_navigation_time", Op: score.OpLessThan, Threshold: 1.0, Delta: 2},
			{Signal: "avg_navigation_time", Op: score.OpGreaterThan, Threshold: 3.0, Delta: -2},
			{Signal: "navigation_elements", Op: score.OpGreaterThan, Threshold: 0, Delta: 1},
			{Signal: "global_search", Op: score.OpGreaterThan, Threshold: 0, Delta: 1},
			{Signal: "console_errors", Op: score.OpPerUnit, Delta: -1},
		},
	}

	ux := rules.Evaluate(score.Signals{
		"avg_navigation_time": avgNavTime,
		"navigation_elements": float64(navElements),
		"global_search":       float64(searchElements),
		"console_errors":      float64(len(consoleErrors)),
	})

	env.Log.Infof("Navigation checks completed. Average transition: %.2fs, UX score: %d/10", avgNavTime, ux)

	return result.Result{
		Name:       "Navigation & UX Flow",
		Passed:     true,
		Screenshot: shot,
		Performance: map[string]any{
			result.PerfConsoleErrors:    len(consoleErrors),
			"avg_navigation_time":       round2(avgNavTime),
			"navigation_elements_count": navElements,
			"global_search_available":   searchElements > 0,
		},
		UXScore:   ux,
		Timestamp: time.Now(),
	}, nil
}
