package scenario

import (
	"context"
	"time"

	"github.com/optipenn/uxaudit/internal/result"
	"github.com/optipenn/uxaudit/internal/score"
)

const (
	clientSearchSelector = "input[type='search'], input[placeholder*='search'], input[placeholder*='recherche']"
	clientAddSelector    = ".add-client, .new-client, button[title*='Add'], button[title*='Ajouter']"
	modalCloseSelector   = ".close, .cancel, [aria-label*='close'], [aria-label*='fermer']"
)

// runClients exercises the client list: row actions, search, the add-client
// form and bulk selection.
func runClients(ctx context.Context, env *Env) (result.Result, error) {
	cfg := env.Config

	loadTime, err := MeasureLoad(ctx, env, cfg.BaseURL+"/clients")
	if err != nil {
		return result.Result{}, err
	}

	shot := Capture(ctx, env, "07_clients_main")

	tablePresent, err := env.Browser.WaitForElement(ctx, "table, .table, .clients-list", cfg.Timeout)
	if err != nil {
		return result.Result{}, err
	}

	if !tablePresent {
		return result.Failing("Clients Management", "clients table not found", shot), nil
	}

	editButtons, err := env.Browser.Count(ctx, "[data-testid*='edit'], .edit-button, button[title*='Edit'], button[title*='Modifier']")
	if err != nil {
		return result.Result{}, err
	}

	viewButtons, err := env.Browser.Count(ctx, "[data-testid*='view'], .view-button, button[title*='View'], button[title*='Voir']")
	if err != nil {
		return result.Result{}, err
	}

	searchBoxes, err := env.Browser.Count(ctx, clientSearchSelector)
	if err != nil {
		return result.Result{}, err
	}

	if searchBoxes > 0 {
		if err := env.Browser.SendKeys(ctx, clientSearchSelector, "test"); err != nil {
			return result.Result{}, err
		}

		settle(ctx, cfg.SettleDelay)
		Capture(ctx, env, "08_clients_search")

		if err := env.Browser.Clear(ctx, clientSearchSelector); err != nil {
			return result.Result{}, err
		}
	}

	addButtons, err := env.Browser.Count(ctx, clientAddSelector)
	if err != nil {
		return result.Result{}, err
	}

	if addButtons > 0 {
		if err := env.Browser.Click(ctx, clientAddSelector); err != nil {
			return result.Result{}, err
		}

		settle(ctx, 2*cfg.SettleDelay)
		Capture(ctx, env, "09_clients_add_modal")

		closeButtons, err := env.Browser.Count(ctx, modalCloseSelector)
		if err != nil {
			return result.Result{}, err
		}

		if closeButtons > 0 {
			if err := env.Browser.Click(ctx, modalCloseSelector); err != nil {
				return result.Result{}, err
			}

			settle(ctx, cfg.SettleDelay)
		}
	}

	checkboxes, err := env.Browser.Count(ctx, "input[type='checkbox']")
	if err != nil {
		return result.Result{}, err
	}

	// The first checkbox is usually select-all; pick the first row instead.
	if checkboxes > 1 {
		if err := env.Browser.Evaluate(ctx, `document.querySelectorAll("input[type='checkbox']")[1].click()`, nil); err != nil {
			return result.Result{}, err
		}

		settle(ctx, cfg.SettleDelay)
		Capture(ctx, env, "10_clients_bulk_select")
	}

	consoleErrors := SevereConsoleErrors(env)

	rules := score.RuleSet{
		Base: 7,
		Rules: []score.Rule{
			{Signal: "edit_buttons", Op: score.OpEquals, Threshold: 0, Delta: -2},
			{Signal: "has_search", Op: score.OpEquals, Threshold: 0, Delta: -1},
			{Signal: "has_add_button", Op: score.OpEquals, Threshold: 0, Delta: -1},
			{Signal: "console_errors", Op: score.OpPerUnit, Delta: -1},
		},
	}

	ux := rules.Evaluate(score.Signals{
		"edit_buttons":   float64(editButtons),
		"has_search":     boolSignal(searchBoxes > 0),
		"has_add_button": boolSignal(addButtons > 0),
		"console_errors": float64(len(consoleErrors)),
	})

	env.Log.Infof("Clients management checks completed. UX score: %d/10", ux)

	return result.Result{
		Name:       "Clients Management",
		Passed:     true,
		Screenshot: shot,
		Performance: map[string]any{
			result.PerfLoadTime:      round2(loadTime),
			result.PerfConsoleErrors: len(consoleErrors),
			"edit_buttons_count":     editButtons,
			"view_buttons_count":     viewButtons,
			"has_search":             searchBoxes > 0,
			"has_add_button":         addButtons > 0,
		},
		UXScore:   ux,
		Timestamp: time.Now(),
	}, nil
}

func boolSignal(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
