package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"
)

// Options configures the Chrome session launch.
type Options struct {
	Width    int
	Height   int
	DataDir  string // user data dir, isolates profile state per run
	Headless bool
}

type chromeSession struct {
	ctx    context.Context
	cancel context.CancelFunc
	log    logrus.FieldLogger

	mu      sync.Mutex
	console []ConsoleEntry
}

// NewChrome launches a Chrome instance and returns a Session bound to a
// fresh tab. Launch failures surface here rather than on first use.
func NewChrome(ctx context.Context, log logrus.FieldLogger, opts Options) (Session, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("enable-automation", false),
		chromedp.WindowSize(opts.Width, opts.Height),
	)
	if opts.DataDir != "" {
		allocOpts = append(allocOpts, chromedp.UserDataDir(opts.DataDir))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	taskCtx, taskCancel := chromedp.NewContext(allocCtx)

	cancel := func() {
		taskCancel()
		allocCancel()
	}

	s := &chromeSession{
		ctx:    taskCtx,
		cancel: cancel,
		log:    log.WithField("component", "browser"),
	}

	chromedp.ListenTarget(taskCtx, s.handleEvent)

	// Force the browser to start now so a broken Chrome install fails the
	// session setup instead of the first scenario.
	if err := chromedp.Run(taskCtx); err != nil {
		cancel()

		return nil, fmt.Errorf("launching chrome: %w", err)
	}

	return s, nil
}

func (s *chromeSession) handleEvent(ev any) {
	switch e := ev.(type) {
	case *runtime.EventConsoleAPICalled:
		if e.Type != runtime.APITypeError {
			return
		}

		msg := ""
		for _, arg := range e.Args {
			if arg.Value != nil {
				msg += string(arg.Value) + " "
			}
		}

		s.append(ConsoleEntry{Level: LevelSevere, Message: msg})
	case *runtime.EventExceptionThrown:
		s.append(ConsoleEntry{Level: LevelSevere, Message: e.ExceptionDetails.Error()})
	}
}

func (s *chromeSession) append(entry ConsoleEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.console = append(s.console, entry)
}

// run executes actions against the tab. The action context derives from the
// tab context so chromedp keeps its target wiring; the caller's cancellation
// and deadline are mirrored onto it. Canceling an action leaves the tab
// itself alive.
func (s *chromeSession) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	err := chromedp.Run(runCtx, actions...)
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	return err
}

func (s *chromeSession) Navigate(ctx context.Context, url string) error {
	if err := s.run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}

	return nil
}

func (s *chromeSession) WaitForElement(ctx context.Context, selector string, timeout time.Duration) (bool, error) {
	return s.wait(ctx, timeout, chromedp.WaitReady(selector, chromedp.ByQuery))
}

func (s *chromeSession) WaitForClickable(ctx context.Context, selector string, timeout time.Duration) (bool, error) {
	return s.wait(ctx, timeout, chromedp.WaitEnabled(selector, chromedp.ByQuery))
}

func (s *chromeSession) wait(ctx context.Context, timeout time.Duration, action chromedp.Action) (bool, error) {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := s.run(waitCtx, action)
	if err == nil {
		return true, nil
	}

	// An expired wait means the element never appeared, which is an
	// observation rather than a failure.
	if errors.Is(err, context.DeadlineExceeded) {
		return false, nil
	}

	return false, err
}

func (s *chromeSession) Count(ctx context.Context, selector string) (int, error) {
	var n int
	expr := fmt.Sprintf("document.querySelectorAll(%q).length", selector)

	if err := s.run(ctx, chromedp.Evaluate(expr, &n)); err != nil {
		return 0, fmt.Errorf("counting %q: %w", selector, err)
	}

	return n, nil
}

func (s *chromeSession) Click(ctx context.Context, selector string) error {
	if err := s.run(ctx, chromedp.Click(selector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("clicking %q: %w", selector, err)
	}

	return nil
}

func (s *chromeSession) SendKeys(ctx context.Context, selector, value string) error {
	if err := s.run(ctx, chromedp.SendKeys(selector, value, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("typing into %q: %w", selector, err)
	}

	return nil
}

func (s *chromeSession) Clear(ctx context.Context, selector string) error {
	if err := s.run(ctx, chromedp.Clear(selector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("clearing %q: %w", selector, err)
	}

	return nil
}

func (s *chromeSession) Evaluate(ctx context.Context, expression string, out any) error {
	if err := s.run(ctx, chromedp.Evaluate(expression, out)); err != nil {
		return fmt.Errorf("evaluating script: %w", err)
	}

	return nil
}

func (s *chromeSession) ConsoleLog() []ConsoleEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.console
	s.console = nil

	return entries
}

func (s *chromeSession) CaptureScreenshot(ctx context.Context) ([]byte, error) {
	var buf []byte

	err := s.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, err = page.CaptureScreenshot().WithFormat(page.CaptureScreenshotFormatPng).Do(ctx)

		return err
	}))
	if err != nil {
		return nil, fmt.Errorf("capturing screenshot: %w", err)
	}

	return buf, nil
}

func (s *chromeSession) SetViewport(ctx context.Context, width, height int) error {
	err := s.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		return emulation.SetDeviceMetricsOverride(int64(width), int64(height), 1, false).Do(ctx)
	}))
	if err != nil {
		return fmt.Errorf("setting viewport %dx%d: %w", width, height, err)
	}

	return nil
}

func (s *chromeSession) Viewport(ctx context.Context) (int, int, error) {
	var dims [2]int

	if err := s.run(ctx, chromedp.Evaluate("[window.innerWidth, window.innerHeight]", &dims)); err != nil {
		return 0, 0, fmt.Errorf("reading viewport: %w", err)
	}

	return dims[0], dims[1], nil
}

func (s *chromeSession) Location(ctx context.Context) (string, error) {
	var url string

	if err := s.run(ctx, chromedp.Location(&url)); err != nil {
		return "", fmt.Errorf("reading location: %w", err)
	}

	return url, nil
}

func (s *chromeSession) Close() error {
	s.log.Debug("Closing browser session")
	s.cancel()

	return nil
}
