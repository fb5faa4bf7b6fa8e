package result

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSummarize_TotalsAddUp(t *testing.T) {
	t.Parallel()

	results := []Result{
		{Name: "a", Passed: true, UXScore: 9},
		{Name: "b", Passed: false, UXScore: 1},
		{Name: "c", Passed: true, UXScore: 8},
	}

	summary := Summarize(results, time.Now().Add(-3*time.Second))

	require.Equal(t, 3, summary.Total)
	require.Equal(t, 2, summary.Passed)
	require.Equal(t, 1, summary.Failed)
	require.Equal(t, summary.Total, summary.Passed+summary.Failed)
	require.InDelta(t, 6.0, summary.AvgUXScore, 0.001)
	require.GreaterOrEqual(t, summary.Duration, 3*time.Second)
}

func TestSummarize_EmptySequence(t *testing.T) {
	t.Parallel()

	summary := Summarize(nil, time.Now())

	require.Equal(t, 0, summary.Total)
	require.Zero(t, summary.AvgUXScore)
	require.Zero(t, summary.SuccessRate())
}

func TestFailing_DefaultsToMinimumScore(t *testing.T) {
	t.Parallel()

	r := Failing("Login Flow", "boom", "shot.png")

	require.False(t, r.Passed)
	require.Equal(t, 1, r.UXScore)
	require.Equal(t, "boom", r.Error)
	require.Equal(t, "shot.png", r.Screenshot)
	require.NotNil(t, r.Performance)
	require.False(t, r.Timestamp.IsZero())
}
