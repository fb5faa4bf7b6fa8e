// Package scenario implements the UX audit scenarios and the runner that
// executes them with per-scenario failure isolation.
package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/optipenn/uxaudit/internal/artifacts"
	"github.com/optipenn/uxaudit/internal/browser"
	"github.com/optipenn/uxaudit/internal/config"
	"github.com/optipenn/uxaudit/internal/result"
)

// ErrUnknownScenario indicates a requested scenario name is not registered.
var ErrUnknownScenario = errors.New("unknown scenario")

// Env bundles the collaborators a scenario body needs. One Env serves the
// whole run; scenarios share the browser session and observe each other's
// page state, which is why they always navigate first.
type Env struct {
	Browser browser.Session
	Config  config.Config
	Store   *artifacts.Store
	Log     logrus.FieldLogger
}

// Scenario is one audit module: a short name used for selection, the display
// title recorded on its result, and the body.
type Scenario struct {
	Name        string
	Title       string
	Description string
	Run         func(ctx context.Context, env *Env) (result.Result, error)
}

// Registry returns all scenarios in execution order. The order is part of the
// contract: login always runs first because later scenarios assume an
// authenticated session.
func Registry() []Scenario {
	return []Scenario{
		{
			Name:        "login",
			Title:       "Login Flow",
			Description: "Authenticates with demo credentials and verifies the redirect",
			Run:         runLogin,
		},
		{
			Name:        "dashboard",
			Title:       "Dashboard",
			Description: "Checks dashboard structure, data widgets and responsive layouts",
			Run:         runDashboard,
		},
		{
			Name:        "clients",
			Title:       "Clients Management",
			Description: "Exercises the client list, search, creation and bulk selection",
			Run:         runClients,
		},
		{
			Name:        "quotes",
			Title:       "Quotes Functionality",
			Description: "Exercises the quote list, filters and export",
			Run:         runQuotes,
		},
		{
			Name:        "statistics",
			Title:       "Statistics & Analytics",
			Description: "Checks charts, KPI cards and date filtering",
			Run:         runStatistics,
		},
		{
			Name:        "error",
			Title:       "Error Handling",
			Description: "Probes the 404 page and failed API call behavior",
			Run:         runErrorHandling,
		},
		{
			Name:        "navigation",
			Title:       "Navigation & UX Flow",
			Description: "Times navigation between sections and checks wayfinding aids",
			Run:         runNavigation,
		},
	}
}

// Names returns the registered scenario names in execution order.
func Names() []string {
	reg := Registry()
	names := make([]string, 0, len(reg))

	for _, sc := range reg {
		names = append(names, sc.Name)
	}

	return names
}

// Known reports whether name is a registered scenario.
func Known(name string) bool {
	_, err := find(name)

	return err == nil
}

func find(name string) (Scenario, error) {
	for _, sc := range Registry() {
		if sc.Name == name {
			return sc, nil
		}
	}

	return Scenario{}, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
}

// Runner executes scenarios against a shared Env. A failing scenario never
// stops the run; it is recorded and the next scenario proceeds.
type Runner struct {
	env *Env
	log logrus.FieldLogger
}

// NewRunner creates a runner over the given environment.
func NewRunner(env *Env) *Runner {
	return &Runner{
		env: env,
		log: env.Log.WithField("component", "runner"),
	}
}

// RunAll executes every registered scenario in order and returns exactly one
// result per scenario.
func (r *Runner) RunAll(ctx context.Context) []result.Result {
	reg := Registry()
	results := make([]result.Result, 0, len(reg))

	for _, sc := range reg {
		results = append(results, r.runIsolated(ctx, sc))
	}

	return results
}

// RunOne executes a single scenario by name. The name is validated before
// any browser work happens.
func (r *Runner) RunOne(ctx context.Context, name string) (result.Result, error) {
	sc, err := find(name)
	if err != nil {
		return result.Result{}, err
	}

	return r.runIsolated(ctx, sc), nil
}

// runIsolated executes one scenario body and converts errors and panics into
// failing results so a broken scenario cannot take down the run.
func (r *Runner) runIsolated(ctx context.Context, sc Scenario) (res result.Result) {
	log := r.log.WithField("scenario", sc.Name)
	log.Info("Starting scenario")

	defer func() {
		if rec := recover(); rec != nil {
			log.WithField("panic", rec).Error("Scenario panicked")

			shot := Capture(ctx, r.env, "error_"+sc.Name)
			res = result.Failing(sc.Title, fmt.Sprintf("panic: %v", rec), shot)
		}
	}()

	res, err := sc.Run(ctx, r.env)
	if err != nil {
		log.WithError(err).Error("Scenario failed")

		shot := Capture(ctx, r.env, "error_"+sc.Name)

		return result.Failing(sc.Title, err.Error(), shot)
	}

	log.WithFields(logrus.Fields{
		"passed":   res.Passed,
		"ux_score": res.UXScore,
	}).Info("Scenario finished")

	return res
}
