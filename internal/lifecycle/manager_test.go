package lifecycle

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/optipenn/uxaudit/internal/browser"
	"github.com/optipenn/uxaudit/internal/config"
)

// stubBrowser satisfies browser.Session and records Close calls.
type stubBrowser struct {
	browser.Session

	closed int
}

func (s *stubBrowser) Close() error {
	s.closed++

	return nil
}

func stubFactory(b browser.Session) SessionFactory {
	return func(context.Context, logrus.FieldLogger, string) (browser.Session, error) {
		return b, nil
	}
}

func testConfig(baseURL string) config.Config {
	return config.Config{
		BaseURL:         baseURL,
		StartCommand:    []string{"sleep", "60"},
		HealthTimeout:   500 * time.Millisecond,
		StartupAttempts: 1,
		StartupGrace:    0,
		ShutdownWait:    2 * time.Second,
	}
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return log
}

func TestAcquire_ReusesHealthyApplication(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	stub := &stubBrowser{}
	mgr := NewManagerWithFactory(testConfig(srv.URL), quietLogger(), stubFactory(stub))

	sess, err := mgr.Acquire(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.False(t, sess.OwnsApp())

	sess.Release()
	require.Equal(t, 1, stub.closed)
}

func TestAcquire_StartupFailure(t *testing.T) {
	t.Parallel()

	// Server that is never healthy.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	mgr := NewManagerWithFactory(testConfig(srv.URL), quietLogger(), stubFactory(&stubBrowser{}))

	_, err := mgr.Acquire(context.Background(), t.TempDir())
	require.ErrorIs(t, err, ErrStartup)
}

func TestAcquire_NoStartCommand(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.StartCommand = nil
	mgr := NewManagerWithFactory(cfg, quietLogger(), stubFactory(&stubBrowser{}))

	_, err := mgr.Acquire(context.Background(), t.TempDir())
	require.ErrorIs(t, err, ErrStartup)
}

func TestAcquire_BrowserSetupFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	boom := errors.New("no chrome binary")
	mgr := NewManagerWithFactory(testConfig(srv.URL), quietLogger(),
		func(context.Context, logrus.FieldLogger, string) (browser.Session, error) {
			return nil, boom
		})

	_, err := mgr.Acquire(context.Background(), t.TempDir())
	require.ErrorIs(t, err, ErrBrowserSetup)
	require.ErrorIs(t, err, boom)
}

func TestRelease_Idempotent(t *testing.T) {
	t.Parallel()

	stub := &stubBrowser{}
	sess := &Session{Browser: stub, log: quietLogger()}

	sess.Release()
	sess.Release()
	sess.Release()
	require.Equal(t, 1, stub.closed)
}

// failingCloseBrowser reports an error from Close to check that release
// swallows it.
type failingCloseBrowser struct {
	stubBrowser
}

func (f *failingCloseBrowser) Close() error {
	f.closed++

	return errors.New("devtools connection lost")
}

func TestRelease_BrowserCloseErrorIsLogged(t *testing.T) {
	t.Parallel()

	stub := &failingCloseBrowser{}
	sess := &Session{Browser: stub, log: quietLogger()}

	sess.Release()
	sess.Release()
	require.Equal(t, 1, stub.closed)
}
