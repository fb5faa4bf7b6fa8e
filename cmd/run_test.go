package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecuteRun_UnknownModule(t *testing.T) {
	outDir := t.TempDir()
	t.Setenv("UXAUDIT_OUTPUT_DIR", outDir)
	t.Setenv("UXAUDIT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	code, err := executeRun(context.Background(), "payments")
	require.NoError(t, err)
	require.Equal(t, 1, code)

	// the run still produced a report with the synthetic failure
	reports, err := filepath.Glob(filepath.Join(outDir, "test_reports", "test_report_*.html"))
	require.NoError(t, err)
	require.Len(t, reports, 1)

	data, err := os.ReadFile(reports[0])
	require.NoError(t, err)
	require.Contains(t, string(data), "Invalid Module")
	require.Contains(t, string(data), "payments")

	requireNoSessionDirs(t, outDir)
}

func TestExecuteRun_StartupFailureRemovesBrowserData(t *testing.T) {
	outDir := t.TempDir()
	t.Setenv("UXAUDIT_OUTPUT_DIR", outDir)
	t.Setenv("UXAUDIT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("APP_URL", "http://127.0.0.1:1")
	t.Setenv("START_COMMAND", "false")
	t.Setenv("STARTUP_ATTEMPTS", "1")

	code, err := executeRun(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, 1, code)

	reports, err := filepath.Glob(filepath.Join(outDir, "test_reports", "test_report_*.html"))
	require.NoError(t, err)
	require.Len(t, reports, 1)

	data, err := os.ReadFile(reports[0])
	require.NoError(t, err)
	require.Contains(t, string(data), "Application Startup")

	requireNoSessionDirs(t, outDir)
}

// requireNoSessionDirs asserts the run left no isolated browser profile
// directory behind.
func requireNoSessionDirs(t *testing.T, outDir string) {
	t.Helper()

	entries, err := os.ReadDir(filepath.Join(outDir, "browser_data"))
	require.NoError(t, err)
	require.Empty(t, entries)
}
