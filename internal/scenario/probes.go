package scenario

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/optipenn/uxaudit/internal/browser"
	"github.com/optipenn/uxaudit/internal/config"
	"github.com/optipenn/uxaudit/internal/score"
)

// MeasureLoad navigates to url and returns the time until the document is
// fully loaded, in seconds.
func MeasureLoad(ctx context.Context, env *Env, url string) (float64, error) {
	start := time.Now()

	if err := env.Browser.Navigate(ctx, url); err != nil {
		return 0, err
	}

	if err := waitReadyState(ctx, env.Browser, env.Config.LongTimeout); err != nil {
		return 0, err
	}

	return time.Since(start).Seconds(), nil
}

// waitReadyState polls document.readyState until the page reports complete.
func waitReadyState(ctx context.Context, b browser.Session, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for {
		var state string
		if err := b.Evaluate(ctx, "document.readyState", &state); err != nil {
			return err
		}

		if state == "complete" {
			return nil
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("page did not finish loading within %s", timeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
}

// WaitForRedirect polls the current URL until it no longer contains fragment.
func WaitForRedirect(ctx context.Context, env *Env, fragment string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for {
		url, err := env.Browser.Location(ctx)
		if err != nil {
			return err
		}

		if !strings.Contains(url, fragment) {
			return nil
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("still on %s after %s", url, timeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}
}

// SevereConsoleErrors drains the console log and returns the severe messages
// emitted since the previous drain.
func SevereConsoleErrors(env *Env) []string {
	var errs []string

	for _, entry := range env.Browser.ConsoleLog() {
		if entry.Level == browser.LevelSevere {
			errs = append(errs, entry.Message)
		}
	}

	return errs
}

// Capture takes a screenshot, saves it through the store and logs the visual
// and accessibility observations for the current page. It is best-effort:
// any failure returns an empty path and never fails the scenario.
func Capture(ctx context.Context, env *Env, name string) string {
	png, err := env.Browser.CaptureScreenshot(ctx)
	if err != nil {
		env.Log.WithError(err).WithField("screenshot", name).Warn("Failed to capture screenshot")

		return ""
	}

	path := env.Store.SaveScreenshot(name, png)
	if path == "" {
		return ""
	}

	if layout, err := ObserveLayout(ctx, env.Browser); err == nil {
		env.Log.WithField("screenshot", name).Infof("Visual check: layout score %d/10", score.LayoutScore(layout))
	}

	if acc, err := ObserveAccessibility(ctx, env.Browser); err == nil {
		env.Log.WithField("screenshot", name).Infof("Accessibility score: %.1f/10", score.AccessibilityScore(acc))
	}

	return path
}

// WithViewport runs fn under a temporary viewport and restores the previous
// one afterwards, waiting for the layout to settle after each resize.
func WithViewport(ctx context.Context, env *Env, vp config.Viewport, fn func() error) error {
	width, height, err := env.Browser.Viewport(ctx)
	if err != nil {
		return err
	}

	if err := env.Browser.SetViewport(ctx, vp.Width, vp.Height); err != nil {
		return err
	}

	settle(ctx, env.Config.SettleDelay)

	defer func() {
		if err := env.Browser.SetViewport(ctx, width, height); err != nil {
			env.Log.WithError(err).Warn("Failed to restore viewport")

			return
		}

		settle(ctx, env.Config.SettleDelay)
	}()

	return fn()
}

func settle(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// round2 rounds a seconds measurement to two decimals for reporting.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
