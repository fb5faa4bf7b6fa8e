// Package lifecycle owns the setup and teardown of the application under
// test and the browser session driving it.
package lifecycle

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/optipenn/uxaudit/internal/browser"
	"github.com/optipenn/uxaudit/internal/config"
)

var (
	// ErrStartup indicates the application never became healthy.
	ErrStartup = errors.New("application startup failed")
	// ErrBrowserSetup indicates the browser session could not be created.
	ErrBrowserSetup = errors.New("browser setup failed")
)

// SessionFactory creates the browser session for a run. Swappable in tests.
type SessionFactory func(ctx context.Context, log logrus.FieldLogger, dataDir string) (browser.Session, error)

// Manager acquires and releases run sessions. A session bundles a healthy
// application and a live browser; callers only see fully-initialized
// sessions or an error.
type Manager struct {
	cfg     config.Config
	log     logrus.FieldLogger
	factory SessionFactory
}

// NewManager creates a manager that launches headless Chrome sessions.
func NewManager(cfg config.Config, log logrus.FieldLogger) *Manager {
	return NewManagerWithFactory(cfg, log, func(ctx context.Context, log logrus.FieldLogger, dataDir string) (browser.Session, error) {
		return browser.NewChrome(ctx, log, browser.Options{
			Width:    cfg.Desktop.Width,
			Height:   cfg.Desktop.Height,
			DataDir:  dataDir,
			Headless: true,
		})
	})
}

// NewManagerWithFactory creates a manager with a custom browser factory.
func NewManagerWithFactory(cfg config.Config, log logrus.FieldLogger, factory SessionFactory) *Manager {
	return &Manager{
		cfg:     cfg,
		log:     log.WithField("component", "lifecycle"),
		factory: factory,
	}
}

// Session is an acquired run environment. Release is idempotent.
type Session struct {
	Browser browser.Session

	app          *exec.Cmd
	log          logrus.FieldLogger
	shutdownWait time.Duration

	releaseOnce sync.Once
}

// Acquire brings up the application (unless one is already healthy) and a
// browser session using dataDir as the isolated profile directory. On any
// failure, everything brought up so far is torn down before returning.
func (m *Manager) Acquire(ctx context.Context, dataDir string) (*Session, error) {
	var app *exec.Cmd

	if m.healthy(ctx) {
		m.log.Info("Application already running, will leave it running afterwards")
	} else {
		started, err := m.startApp(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStartup, err)
		}

		app = started

		if err := m.waitReady(ctx); err != nil {
			m.terminate(app)

			return nil, fmt.Errorf("%w: %w", ErrStartup, err)
		}

		m.log.Info("Application is healthy")

		// Give the app a moment to finish warming up after the first
		// healthy response.
		time.Sleep(m.cfg.StartupGrace)
	}

	b, err := m.factory(ctx, m.log, dataDir)
	if err != nil {
		if app != nil {
			m.terminate(app)
		}

		return nil, fmt.Errorf("%w: %w", ErrBrowserSetup, err)
	}

	return &Session{
		Browser:      b,
		app:          app,
		log:          m.log,
		shutdownWait: m.cfg.ShutdownWait,
	}, nil
}

// OwnsApp reports whether this session started the application itself. A
// pre-existing application is never terminated on release.
func (s *Session) OwnsApp() bool {
	return s.app != nil
}

// Release tears down the browser and, if this session started it, the
// application. Safe to call multiple times; only the first call does work.
// Teardown problems are logged, never returned.
func (s *Session) Release() {
	s.releaseOnce.Do(func() {
		if s.Browser != nil {
			if err := s.Browser.Close(); err != nil {
				s.log.WithError(err).Warn("Failed to close browser")
			}
		}

		if s.app != nil {
			terminate(s.log, s.app, s.shutdownWait)
		}
	})
}

func (m *Manager) healthy(ctx context.Context) bool {
	reqCtx, cancel := context.WithTimeout(ctx, m.cfg.HealthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, m.cfg.BaseURL+"/api/health", nil)
	if err != nil {
		return false
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}

	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

func (m *Manager) startApp(ctx context.Context) (*exec.Cmd, error) {
	if len(m.cfg.StartCommand) == 0 {
		return nil, errors.New("no start command configured")
	}

	m.log.WithField("command", m.cfg.StartCommand).Info("Starting application")

	cmd := exec.CommandContext(ctx, m.cfg.StartCommand[0], m.cfg.StartCommand[1:]...) //nolint:gosec // command comes from operator config

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("creating stdout pipe: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", m.cfg.StartCommand[0], err)
	}

	go forwardOutput(m.log.WithField("stream", "stdout"), stdout)
	go forwardOutput(m.log.WithField("stream", "stderr"), stderr)

	return cmd, nil
}

// waitReady polls the health endpoint once per second until the application
// responds or the configured attempts run out.
func (m *Manager) waitReady(ctx context.Context) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for attempt := 1; attempt <= m.cfg.StartupAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if m.healthy(ctx) {
				return nil
			}

			m.log.WithFields(logrus.Fields{
				"attempt": attempt,
				"max":     m.cfg.StartupAttempts,
			}).Debug("Application not ready yet")
		}
	}

	return fmt.Errorf("application not healthy after %d attempts", m.cfg.StartupAttempts)
}

func (m *Manager) terminate(cmd *exec.Cmd) {
	terminate(m.log, cmd, m.cfg.ShutdownWait)
}

// terminate asks the application to exit and kills it if it does not comply
// within the grace period.
func terminate(log logrus.FieldLogger, cmd *exec.Cmd, grace time.Duration) {
	if cmd.Process == nil {
		return
	}

	log.WithField("pid", cmd.Process.Pid).Info("Stopping application")

	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
		log.WithError(err).Debug("SIGTERM failed, killing process")

		_ = cmd.Process.Kill()
		_ = cmd.Wait()

		return
	}

	done := make(chan error, 1)

	go func() {
		done <- cmd.Wait()
	}()

	select {
	case <-done:
		log.Info("Application stopped")
	case <-time.After(grace):
		log.Warn("Application did not stop in time, killing it")

		_ = cmd.Process.Kill()
		<-done
	}
}

func forwardOutput(log logrus.FieldLogger, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		log.Debug(scanner.Text())
	}
}
