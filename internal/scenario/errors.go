package scenario

import (
	"context"
	"time"

	"github.com/optipenn/uxaudit/internal/result"
	"github.com/optipenn/uxaudit/internal/score"
)

const errorPageProbe = `Array.from(document.querySelectorAll('.error, .not-found, h1, h2'))
	.some(el => el.textContent.includes('404') || el.textContent.toLowerCase().includes('not found'))`

// runErrorHandling probes how the application reacts to a nonexistent route
// and a failing API call. This scenario only rewards: missing error handling
// leaves the base score untouched.
func runErrorHandling(ctx context.Context, env *Env) (result.Result, error) {
	cfg := env.Config

	if err := env.Browser.Navigate(ctx, cfg.BaseURL+"/nonexistent-page"); err != nil {
		return result.Result{}, err
	}

	settle(ctx, 2*cfg.SettleDelay)

	shot := Capture(ctx, env, "16_error_404")

	errorElements, err := env.Browser.Count(ctx, ".error, .not-found, h1, h2")
	if err != nil {
		return result.Result{}, err
	}

	var hasErrorPage bool
	if err := env.Browser.Evaluate(ctx, errorPageProbe, &hasErrorPage); err != nil {
		return result.Result{}, err
	}

	// Provoke a failed API call and see whether the app reports it sanely.
	fetchProbe := `fetch('/api/invalid-endpoint').catch(err => console.error('Expected network error:', err)); undefined`
	if err := env.Browser.Evaluate(ctx, fetchProbe, nil); err != nil {
		return result.Result{}, err
	}

	settle(ctx, 2*cfg.SettleDelay)

	consoleErrors := SevereConsoleErrors(env)

	rules := score.RuleSet{
		Base: 5,
		Rules: []score.Rule{
			{Signal: "has_error_page", Op: score.OpGreaterThan, Threshold: 0, Delta: 3},
			{Signal: "error_elements", Op: score.OpGreaterThan, Threshold: 0, Delta: 2},
		},
	}

	ux := rules.Evaluate(score.Signals{
		"has_error_page": boolSignal(hasErrorPage),
		"error_elements": float64(errorElements),
	})

	env.Log.Infof("Error handling checks completed. UX score: %d/10", ux)

	return result.Result{
		Name:       "Error Handling",
		Passed:     true,
		Screenshot: shot,
		Performance: map[string]any{
			result.PerfConsoleErrors: len(consoleErrors),
			"has_error_page":         hasErrorPage,
			"error_elements_count":   errorElements,
		},
		UXScore:   ux,
		Timestamp: time.Now(),
	}, nil
}
