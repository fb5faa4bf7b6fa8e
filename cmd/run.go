package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/optipenn/uxaudit/internal/artifacts"
	"github.com/optipenn/uxaudit/internal/config"
	"github.com/optipenn/uxaudit/internal/lifecycle"
	"github.com/optipenn/uxaudit/internal/report"
	"github.com/optipenn/uxaudit/internal/result"
	"github.com/optipenn/uxaudit/internal/scenario"
)

var runModule string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the UX audit suite",
	Long: `Starts the application if it is not already running, drives a headless
browser through the audit scenarios and writes the HTML report.

The process exits non-zero when any scenario fails.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		code, err := executeRun(cmd.Context(), runModule)
		if err != nil {
			return err
		}

		if code != 0 {
			os.Exit(code)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runModule, "module", "",
		fmt.Sprintf("run a single scenario (%s)", strings.Join(scenario.Names(), ", ")))
}

// executeRun performs one audit run and returns the process exit code. A run
// that completes with failing scenarios is not an error; only infrastructure
// problems before any result exists are.
func executeRun(ctx context.Context, module string) (int, error) {
	started := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return 1, fmt.Errorf("loading configuration: %w", err)
	}

	store, err := artifacts.NewStore(cfg.OutputDir, Logger)
	if err != nil {
		return 1, fmt.Errorf("preparing artifact directories: %w", err)
	}

	// The isolated browser profile is run-scoped; remove it on every exit
	// path, including runs that never reach the browser.
	defer func() {
		if err := store.RemoveBrowserData(); err != nil {
			Logger.WithError(err).Warn("Could not remove browser data directory")
		}
	}()

	if logFile, err := store.LogFile(); err == nil {
		defer logFile.Close()

		Logger.SetOutput(io.MultiWriter(os.Stdout, logFile))
	} else {
		Logger.WithError(err).Warn("Could not open run log file")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// An unknown module never touches the application or the browser.
	if module != "" && !scenario.Known(module) {
		results := []result.Result{result.Failing(
			"Invalid Module",
			fmt.Sprintf("module %q not found (known modules: %s)", module, strings.Join(scenario.Names(), ", ")),
			"",
		)}

		return finishRun(ctx, cfg, store, results, started)
	}

	mgr := lifecycle.NewManager(cfg, Logger)

	sess, err := mgr.Acquire(ctx, store.BrowserDataDir())
	if err != nil {
		name := "Application Startup"
		if errors.Is(err, lifecycle.ErrBrowserSetup) {
			name = "Browser Setup"
		}

		results := []result.Result{result.Failing(name, err.Error(), "")}

		return finishRun(ctx, cfg, store, results, started)
	}

	defer sess.Release()

	runner := scenario.NewRunner(&scenario.Env{
		Browser: sess.Browser,
		Config:  cfg,
		Store:   store,
		Log:     Logger.WithField("service", "uxaudit"),
	})

	var results []result.Result

	if module != "" {
		res, err := runner.RunOne(ctx, module)
		if err != nil {
			return 1, err
		}

		results = append(results, res)
	} else {
		results = runner.RunAll(ctx)
	}

	// Tear down before rendering so the report reflects a finished run.
	sess.Release()

	return finishRun(ctx, cfg, store, results, started)
}

// finishRun aggregates, renders and prints the results. Rendering proceeds
// even when the run context was canceled, so an interrupted run still
// produces a report of whatever completed.
func finishRun(ctx context.Context, cfg config.Config, store *artifacts.Store, results []result.Result, started time.Time) (int, error) {
	summary := result.Summarize(results, started)
	recommendations := report.Recommendations(results, summary, cfg.MinLoadTime)

	path, err := report.NewHTMLRenderer(store, Logger).Render(context.WithoutCancel(ctx), results, summary, recommendations)
	if err != nil {
		Logger.WithError(err).Error("Failed to generate HTML report")

		path = ""
	}

	report.NewConsoleReporter(os.Stdout).Print(results, summary, recommendations, path)

	if summary.Failed > 0 {
		return 1, nil
	}

	return 0, nil
}
