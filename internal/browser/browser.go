// Package browser abstracts the automation driver behind the capability
// surface the scenarios consume. Scenario code never sees the concrete
// driver, only this interface.
package browser

import (
	"context"
	"time"
)

// LevelSevere marks console entries treated as errors by the scorer.
const LevelSevere = "SEVERE"

// ConsoleEntry is one captured browser console message.
type ConsoleEntry struct {
	Level   string
	Message string
}

// Session is the browser capability surface handed to scenarios. Element
// waits report presence via the bool; an expired wait is not an error. The
// console log drains on read, so each scenario observes only the entries
// emitted since the previous read.
type Session interface {
	Navigate(ctx context.Context, url string) error
	WaitForElement(ctx context.Context, selector string, timeout time.Duration) (bool, error)
	WaitForClickable(ctx context.Context, selector string, timeout time.Duration) (bool, error)
	Count(ctx context.Context, selector string) (int, error)
	Click(ctx context.Context, selector string) error
	SendKeys(ctx context.Context, selector, value string) error
	Clear(ctx context.Context, selector string) error
	Evaluate(ctx context.Context, expression string, out any) error
	ConsoleLog() []ConsoleEntry
	CaptureScreenshot(ctx context.Context) ([]byte, error)
	SetViewport(ctx context.Context, width, height int) error
	Viewport(ctx context.Context) (width, height int, err error)
	Location(ctx context.Context) (string, error)
	Close() error
}
