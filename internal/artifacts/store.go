// Package artifacts manages the on-disk output of a run: screenshots,
// reports and the isolated browser profile directory.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	screenshotsDir = "test_screenshots"
	reportsDir     = "test_reports"
	browserDataDir = "browser_data"
)

// Store places run artifacts under a base directory. Each run gets a unique
// ID so concurrent runs never collide on browser profile state.
type Store struct {
	base  string
	runID string
	log   logrus.FieldLogger
}

// NewStore creates the artifact directories under base and returns the store.
func NewStore(base string, log logrus.FieldLogger) (*Store, error) {
	s := &Store{
		base:  base,
		runID: uuid.New().String(),
		log:   log.WithField("component", "artifacts"),
	}

	for _, dir := range []string{
		filepath.Join(base, screenshotsDir),
		filepath.Join(base, reportsDir),
		s.BrowserDataDir(),
	} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating artifact directory %s: %w", dir, err)
		}
	}

	return s, nil
}

// RunID is the unique identifier for this run.
func (s *Store) RunID() string {
	return s.runID
}

// BrowserDataDir is the isolated browser profile directory for this run.
func (s *Store) BrowserDataDir() string {
	return filepath.Join(s.base, browserDataDir, "session_"+s.runID)
}

// SaveScreenshot writes a PNG under the screenshots directory with a
// timestamped name and returns the path. Failures are logged, not fatal; a
// missing screenshot never fails a scenario.
func (s *Store) SaveScreenshot(name string, png []byte) string {
	filename := fmt.Sprintf("%s_%s.png", name, time.Now().Format("20060102_150405"))
	path := filepath.Join(s.base, screenshotsDir, filename)

	if err := os.WriteFile(path, png, 0o600); err != nil {
		s.log.WithError(err).WithField("screenshot", name).Warn("Failed to save screenshot")

		return ""
	}

	return path
}

// ReportPath returns the timestamped path for a report file with the given
// extension, e.g. "html".
func (s *Store) ReportPath(ext string) string {
	filename := fmt.Sprintf("test_report_%s.%s", time.Now().Format("20060102_150405"), ext)

	return filepath.Join(s.base, reportsDir, filename)
}

// LogFile opens a timestamped run log file under the reports directory.
func (s *Store) LogFile() (*os.File, error) {
	path := filepath.Join(s.base, reportsDir, fmt.Sprintf("test_log_%s.log", time.Now().Format("20060102_150405")))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path built from trusted base
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	return f, nil
}

// RemoveBrowserData deletes the run's browser profile directory.
func (s *Store) RemoveBrowserData() error {
	if err := os.RemoveAll(s.BrowserDataDir()); err != nil {
		return fmt.Errorf("removing browser data: %w", err)
	}

	return nil
}
