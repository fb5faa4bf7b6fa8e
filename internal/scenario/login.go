package scenario

import (
	"context"
	"time"

	"github.com/optipenn/uxaudit/internal/result"
	"github.com/optipenn/uxaudit/internal/score"
)

const loginButtonSelector = "button[type='submit'], .login-button, input[type='submit']"

// runLogin walks the full authentication flow with the demo credentials and
// verifies the post-login redirect.
func runLogin(ctx context.Context, env *Env) (result.Result, error) {
	cfg := env.Config

	loadTime, err := MeasureLoad(ctx, env, cfg.BaseURL+"/login")
	if err != nil {
		return result.Result{}, err
	}

	shot := Capture(ctx, env, "01_login_page")

	emailPresent, err := env.Browser.WaitForElement(ctx, "input[name='email']", cfg.Timeout)
	if err != nil {
		return result.Result{}, err
	}

	passwordPresent, err := env.Browser.WaitForElement(ctx, "input[name='password']", cfg.Timeout)
	if err != nil {
		return result.Result{}, err
	}

	if !emailPresent || !passwordPresent {
		return result.Failing("Login Flow", "login form elements not found", shot), nil
	}

	if err := env.Browser.Clear(ctx, "input[name='email']"); err != nil {
		return result.Result{}, err
	}

	if err := env.Browser.SendKeys(ctx, "input[name='email']", cfg.DemoEmail); err != nil {
		return result.Result{}, err
	}

	if err := env.Browser.Clear(ctx, "input[name='password']"); err != nil {
		return result.Result{}, err
	}

	if err := env.Browser.SendKeys(ctx, "input[name='password']", cfg.DemoPassword); err != nil {
		return result.Result{}, err
	}

	shot = Capture(ctx, env, "02_login_filled")

	clickable, err := env.Browser.WaitForClickable(ctx, loginButtonSelector, cfg.Timeout)
	if err != nil {
		return result.Result{}, err
	}

	if !clickable {
		return result.Failing("Login Flow", "login button not found", shot), nil
	}

	if err := env.Browser.Click(ctx, loginButtonSelector); err != nil {
		return result.Result{}, err
	}

	if err := WaitForRedirect(ctx, env, "/login", cfg.LongTimeout); err != nil {
		return result.Result{}, err
	}

	shot = Capture(ctx, env, "03_login_success")

	consoleErrors := SevereConsoleErrors(env)

	finalURL, err := env.Browser.Location(ctx)
	if err != nil {
		return result.Result{}, err
	}

	rules := score.RuleSet{
		Base: 10,
		Rules: []score.Rule{
			{Signal: "load_time", Op: score.OpGreaterThan, Threshold: cfg.MinLoadTime, Delta: -2},
			{Signal: "console_errors", Op: score.OpPerUnit, Delta: -1},
		},
	}

	ux := rules.Evaluate(score.Signals{
		"load_time":      loadTime,
		"console_errors": float64(len(consoleErrors)),
	})

	env.Log.Infof("Login successful. Load time: %.2fs, UX score: %d/10", loadTime, ux)

	return result.Result{
		Name:       "Login Flow",
		Passed:     true,
		Screenshot: shot,
		Performance: map[string]any{
			result.PerfLoadTime:      round2(loadTime),
			result.PerfConsoleErrors: len(consoleErrors),
			"final_url":              finalURL,
		},
		UXScore:   ux,
		Timestamp: time.Now(),
	}, nil
}
