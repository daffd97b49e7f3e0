package report_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KebabRonin/hittingset/report"
)

func TestFingerprintIsOrderInvariantWithinEdges(t *testing.T) {
	a := report.Fingerprint(4, [][]int{{0, 1, 2}, {2, 3}})
	b := report.Fingerprint(4, [][]int{{2, 1, 0}, {3, 2}})
	require.Equal(t, a, b)
}

func TestFingerprintDiffersOnEdgeOrder(t *testing.T) {
	a := report.Fingerprint(4, [][]int{{0, 1}, {2, 3}})
	b := report.Fingerprint(4, [][]int{{2, 3}, {0, 1}})
	require.NotEqual(t, a, b)
}

func TestFingerprintDeterministic(t *testing.T) {
	edges := [][]int{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}}
	a := report.Fingerprint(5, edges)
	b := report.Fingerprint(5, edges)
	require.Equal(t, a, b)
}

func TestSolutionRoundTrip(t *testing.T) {
	s := report.Solution{Vertices: []int{1, 4, 7}, Size: 3, ProvedOptimal: true}
	data, err := report.MarshalSolution(s)
	require.NoError(t, err)
	got, err := report.UnmarshalSolution(data)
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestReportRoundTrip(t *testing.T) {
	r := report.Report{
		Fingerprint:      "deadbeef",
		NodesExpanded:    12,
		PrunedByBound:    5,
		BoundCounters:    []report.BoundCounterEcho{{Name: "max_degree", Pruned: 3}},
		BestSolutionSize: 2,
		ProvedOptimal:    true,
		WallTimeSeconds:  0.125,
		Config:           report.ConfigEcho{StopAt: -1, EnableLocalSearch: true},
	}
	data, err := report.MarshalReport(r)
	require.NoError(t, err)
	got, err := report.UnmarshalReport(data)
	require.NoError(t, err)
	require.Equal(t, r, got)
}

func TestHistoryRecordAndCount(t *testing.T) {
	dir := t.TempDir()
	h, err := report.OpenHistory(filepath.Join(dir, "history.sqlite"))
	require.NoError(t, err)
	defer h.Close()

	r := report.Report{Fingerprint: "abc123", BestSolutionSize: 2, ProvedOptimal: true}
	require.NoError(t, h.Record(r, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, h.Record(r, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)))

	n, err := h.RunCountForFingerprint("abc123")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = h.RunCountForFingerprint("nonexistent")
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

