package reduction_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KebabRonin/hittingset/incidence"
	"github.com/KebabRonin/hittingset/reduction"
)

func selectedVertices(entries []reduction.Entry) []int {
	var out []int
	for _, e := range entries {
		if e.Kind == reduction.ForcedSelect {
			out = append(out, e.Vertex)
		}
	}
	sort.Ints(out)
	return out
}

// TestUnitForcingScenario mirrors spec §8 scenario 2: edges {[7],[1,2,3],[3,4]}
// (0-based: {[6],[0,1,2],[2,3]}). Reductions alone must solve it to {2,6}.
func TestUnitForcingScenario(t *testing.T) {
	s, err := incidence.FromInput(7, [][]int{
		{6},
		{0, 1, 2},
		{2, 3},
	})
	require.NoError(t, err)

	entries, err := reduction.RunToFixpoint(s)
	require.NoError(t, err)
	require.Equal(t, 0, s.LiveEdgeCount())
	require.Equal(t, []int{2, 6}, selectedVertices(entries))
}

// TestDominationScenario mirrors spec §8 scenario 4: edges {[1,2,3],[1,2],[1,3]}
// (0-based: {[0,1,2],[0,1],[0,2]}). Vertex 0 dominates 1 and 2.
func TestDominationScenario(t *testing.T) {
	s, err := incidence.FromInput(3, [][]int{
		{0, 1, 2},
		{0, 1},
		{0, 2},
	})
	require.NoError(t, err)

	entries, err := reduction.RunToFixpoint(s)
	require.NoError(t, err)
	require.Equal(t, 0, s.LiveEdgeCount())
	require.Equal(t, []int{0}, selectedVertices(entries))
}

// TestEdgeDomination verifies that rule 2 fires first: the superset edge is
// removed before any vertex decision. The later rules then finish the
// instance: 0 is dominated by 1 and excluded, the unit edge {1} forces 1
// (deleting edge 0), and the isolated vertex 2 is excluded as dominated by 3.
func TestEdgeDomination(t *testing.T) {
	s, err := incidence.FromInput(4, [][]int{
		{0, 1},
		{0, 1, 2, 3},
	})
	require.NoError(t, err)

	entries, err := reduction.RunToFixpoint(s)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	require.Equal(t, reduction.RemovedEdge, entries[0].Kind)
	require.Equal(t, 1, entries[0].Edge)
	require.False(t, s.IsEdgeLive(0))
	require.False(t, s.IsEdgeLive(1))
}

func TestRunToFixpointSelectsEachUnitEdgeMember(t *testing.T) {
	// edges {[0],[0,1],[1]}: selecting a unit edge's member removes every
	// edge it hits, so no edge is ever emptied and no infeasibility arises.
	s, err := incidence.FromInput(2, [][]int{
		{0},
		{0, 1},
		{1},
	})
	require.NoError(t, err)
	// Two unit edges target different vertices (0 and 1): selecting one
	// removes the edges it hits but the other unit edge still forces its
	// own vertex. No infeasibility should arise here; both get selected.
	entries, err := reduction.RunToFixpoint(s)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, selectedVertices(entries))
}

func TestRunToFixpointIsIdempotentAtFixpoint(t *testing.T) {
	s, err := incidence.FromInput(3, [][]int{
		{0, 1, 2},
		{0, 1},
		{0, 2},
	})
	require.NoError(t, err)
	_, err = reduction.RunToFixpoint(s)
	require.NoError(t, err)

	before := s.Snap()
	again, err := reduction.RunToFixpoint(s)
	require.NoError(t, err)
	require.Empty(t, again)
	require.Equal(t, before, s.Snap())
}

func TestUndoAllRestoresStore(t *testing.T) {
	s, err := incidence.FromInput(7, [][]int{
		{6},
		{0, 1, 2},
		{2, 3},
	})
	require.NoError(t, err)
	before := s.Snap()

	entries, err := reduction.RunToFixpoint(s)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	require.NoError(t, reduction.UndoAll(s, entries))
	require.Equal(t, before, s.Snap())
}

func TestComponentsOf(t *testing.T) {
	// Two disjoint pairs: {0,1} and {2,3}, plus a third pair {4,5}.
	s, err := incidence.FromInput(6, [][]int{
		{0, 1},
		{2, 3},
		{4, 5},
	})
	require.NoError(t, err)

	comps := reduction.ComponentsOf(s)
	require.Len(t, comps, 3)
	for _, c := range comps {
		require.Len(t, c, 1)
	}
}

func TestComponentsOfMergesSharedVertex(t *testing.T) {
	s, err := incidence.FromInput(5, [][]int{
		{0, 1},
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	comps := reduction.ComponentsOf(s)
	require.Len(t, comps, 2)
}
