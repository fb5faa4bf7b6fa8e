package scenario

import (
	"context"
	"time"

	"github.com/optipenn/uxaudit/internal/result"
	"github.com/optipenn/uxaudit/internal/score"
)

const quoteExportSelector = ".export, button[title*='Export'], button[title*='Exporter']"

// runQuotes exercises the quote list, its filters and the export action.
func runQuotes(ctx context.Context, env *Env) (result.Result, error) {
	cfg := env.Config

	loadTime, err := MeasureLoad(ctx, env, cfg.BaseURL+"/quotes")
	if err != nil {
		return result.Result{}, err
	}

	shot := Capture(ctx, env, "11_quotes_main")

	listPresent, err := env.Browser.WaitForElement(ctx, "table, .table, .quotes-list", cfg.Timeout)
	if err != nil {
		return result.Result{}, err
	}

	if !listPresent {
		return result.Failing("Quotes Functionality", "quotes table/list not found", shot), nil
	}

	quoteActions, err := env.Browser.Count(ctx, "button, .action, .btn")
	if err != nil {
		return result.Result{}, err
	}

	filterElements, err := env.Browser.Count(ctx, "select, .filter, input[type='date']")
	if err != nil {
		return result.Result{}, err
	}

	if filterElements > 0 {
		Capture(ctx, env, "12_quotes_filters")
	}

	exportButtons, err := env.Browser.Count(ctx, quoteExportSelector)
	if err != nil {
		return result.Result{}, err
	}

	if exportButtons > 0 {
		if err := env.Browser.Click(ctx, quoteExportSelector); err != nil {
			return result.Result{}, err
		}

		settle(ctx, 2*cfg.SettleDelay)
		Capture(ctx, env, "13_quotes_export")
	}

	consoleErrors := SevereConsoleErrors(env)

	rules := score.RuleSet{
		Base: 8,
		Rules: []score.Rule{
			{Signal: "quote_actions", Op: score.OpEquals, Threshold: 0, Delta: -2},
			{Signal: "filter_elements", Op: score.OpEquals, Threshold: 0, Delta: -1},
			{Signal: "console_errors", Op: score.OpPerUnit, Delta: -1},
		},
	}

	ux := rules.Evaluate(score.Signals{
		"quote_actions":   float64(quoteActions),
		"filter_elements": float64(filterElements),
		"console_errors":  float64(len(consoleErrors)),
	})

	env.Log.Infof("Quotes functionality checks completed. UX score: %d/10", ux)

	return result.Result{
		Name:       "Quotes Functionality",
		Passed:     true,
		Screenshot: shot,
		Performance: map[string]any{
			result.PerfLoadTime:      round2(loadTime),
			result.PerfConsoleErrors: len(consoleErrors),
			"quote_actions_count":    quoteActions,
			"filter_elements_count":  filterElements,
			"has_export":             exportButtons > 0,
		},
		UXScore:   ux,
		Timestamp: time.Now(),
	}, nil
}
