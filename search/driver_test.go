package search_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KebabRonin/hittingset/incidence"
	"github.com/KebabRonin/hittingset/search"
)

func mkStore(t *testing.T, n int, edges [][]int) *incidence.Store {
	t.Helper()
	s, err := incidence.FromInput(n, edges)
	require.NoError(t, err)
	return s
}

func sorted(xs []int) []int {
	out := append([]int(nil), xs...)
	sort.Ints(out)
	return out
}

func isHittingSet(edges [][]int, h []int) bool {
	in := make(map[int]bool, len(h))
	for _, v := range h {
		in[v] = true
	}
	for _, e := range edges {
		hit := false
		for _, v := range e {
			if in[v] {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// Spec §8 scenario 1: the toy instance, expected optimum size 2, proved.
func TestRunToyInstance(t *testing.T) {
	edges := [][]int{
		{0, 1, 2},
		{1, 2, 3},
		{2, 3, 4},
		{3, 4, 5},
	}
	s := mkStore(t, 6, edges)
	res := search.Run(s, search.DefaultConfig())
	require.True(t, isHittingSet(edges, res.Selected))
	require.Len(t, res.Selected, 2)
	require.True(t, res.Stats.ProvedOptimal)
	// store must be restored to its pristine entry state
	require.Equal(t, 4, s.LiveEdgeCount())
	require.Equal(t, 6, s.LiveVertexCount())
}

// Spec §8 scenario 2: reductions alone solve it, H = {3, 7} (0-based {2,6}).
func TestRunUnitForcingScenario(t *testing.T) {
	edges := [][]int{
		{6},
		{0, 1, 2},
		{2, 3},
	}
	s := mkStore(t, 7, edges)
	res := search.Run(s, search.DefaultConfig())
	require.True(t, isHittingSet(edges, res.Selected))
	require.Equal(t, []int{2, 6}, sorted(res.Selected))
	require.True(t, res.Stats.ProvedOptimal)
}

// Spec §8 scenario 3: three pairwise-disjoint edges, packing bound = optimum
// = 3 at the root; greedy alone should already hit the incumbent.
func TestRunPackingWitnessScenario(t *testing.T) {
	edges := [][]int{
		{0, 1},
		{2, 3},
		{4, 5},
	}
	s := mkStore(t, 6, edges)
	res := search.Run(s, search.DefaultConfig())
	require.True(t, isHittingSet(edges, res.Selected))
	require.Len(t, res.Selected, 3)
	require.True(t, res.Stats.ProvedOptimal)
	require.Equal(t, 1, res.Stats.NodesExpanded, "the root frame's reductions alone should finish the instance without any branching")
}

// Spec §8 scenario 4: vertex 0 (1-based 1) dominates 1 and 2, H = {0}.
func TestRunDominationScenario(t *testing.T) {
	edges := [][]int{
		{0, 1, 2},
		{0, 1},
		{0, 2},
	}
	s := mkStore(t, 3, edges)
	res := search.Run(s, search.DefaultConfig())
	require.True(t, isHittingSet(edges, res.Selected))
	require.Equal(t, []int{0}, sorted(res.Selected))
	require.True(t, res.Stats.ProvedOptimal)
}

// mediumInstance is the repository's recurring 31-edge, 32-vertex example
// (original_source/main.py), translated from 1-based to 0-based ids.
func mediumInstance() [][]int {
	raw := [][]int{
		{13, 23, 28}, {6, 15, 16, 31}, {7, 8, 10, 17, 27}, {12, 14, 18, 29}, {11, 13, 23, 28},
		{6, 15, 16, 20, 21}, {15, 20, 21, 22}, {14, 18, 19, 29}, {4, 5, 8}, {6, 16, 30, 31},
		{7, 14, 18, 22, 26, 29, 32}, {3, 11, 23, 24, 25}, {2, 7, 17, 29, 32}, {13, 23, 24, 28},
		{12, 22, 26, 29}, {8, 9, 10}, {4, 5, 19}, {1, 2, 27}, {2, 30, 31, 32}, {21, 22, 26, 29},
		{9, 10, 17}, {6, 15, 16, 31, 32}, {1, 2, 7, 30}, {1, 17, 27}, {4, 8, 18, 19},
		{7, 16, 29, 30, 32}, {3, 24, 25}, {15, 20, 21}, {5, 8, 9, 17, 19}, {11, 12, 13, 24},
		{11, 12, 14, 26},
	}
	edges := make([][]int, len(raw))
	for i, e := range raw {
		shifted := make([]int, len(e))
		for j, v := range e {
			shifted[j] = v - 1
		}
		edges[i] = shifted
	}
	return edges
}

// Spec §8 scenario 5: known minimum 9, proved within a generous time budget.
func TestRunMediumInstanceFindsKnownOptimum(t *testing.T) {
	edges := mediumInstance()
	s := mkStore(t, 32, edges)
	cfg := search.DefaultConfig()
	cfg.TimeLimit = 10 * time.Second
	res := search.Run(s, cfg)
	require.True(t, isHittingSet(edges, res.Selected))
	require.Len(t, res.Selected, 9)
	require.True(t, res.Stats.ProvedOptimal)
}

// Spec §8 scenario 6: an unreasonably short deadline must still return a
// valid (possibly suboptimal) hitting set with proved_optimal = false.
func TestRunMediumInstanceTimeout(t *testing.T) {
	edges := mediumInstance()
	s := mkStore(t, 32, edges)
	cfg := search.DefaultConfig()
	cfg.TimeLimit = time.Microsecond
	res := search.Run(s, cfg)
	require.True(t, isHittingSet(edges, res.Selected))
	require.False(t, res.Stats.ProvedOptimal)
	// the store must still be fully restored even on a cancelled search
	require.Equal(t, len(edges), s.LiveEdgeCount())
}

func TestRunStopAtTerminatesEarly(t *testing.T) {
	edges := mediumInstance()
	s := mkStore(t, 32, edges)
	cfg := search.DefaultConfig()
	cfg.StopAt = 20 // generous ceiling the greedy seed alone should satisfy
	res := search.Run(s, cfg)
	require.True(t, isHittingSet(edges, res.Selected))
	require.LessOrEqual(t, len(res.Selected), 20)
	require.False(t, res.Stats.ProvedOptimal)
}

func TestRunEmptyEdgeList(t *testing.T) {
	s := mkStore(t, 0, nil)
	res := search.Run(s, search.DefaultConfig())
	require.Empty(t, res.Selected)
	require.True(t, res.Stats.ProvedOptimal)
}

func TestRunSingleEdge(t *testing.T) {
	edges := [][]int{{0, 1, 2}}
	s := mkStore(t, 3, edges)
	res := search.Run(s, search.DefaultConfig())
	require.True(t, isHittingSet(edges, res.Selected))
	require.Len(t, res.Selected, 1)
}

func TestRunDeterministic(t *testing.T) {
	edges := mediumInstance()
	s1 := mkStore(t, 32, edges)
	s2 := mkStore(t, 32, edges)
	cfg := search.DefaultConfig()
	cfg.TimeLimit = 10 * time.Second
	r1 := search.Run(s1, cfg)
	r2 := search.Run(s2, cfg)
	require.Equal(t, sorted(r1.Selected), sorted(r2.Selected))
	require.Equal(t, r1.Stats.NodesExpanded, r2.Stats.NodesExpanded)
}
