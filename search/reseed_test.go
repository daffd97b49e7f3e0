package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KebabRonin/hittingset/heuristic"
	"github.com/KebabRonin/hittingset/incidence"
)

func isHittingSetInternal(edges [][]int, h []int) bool {
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

// greedy_mode: Once must never reseed mid-search (only seedIncumbent, at
// the very start of Run, invokes the heuristic).
func TestMaybeReseedBeforeReductionNoopUnderOnceMode(t *testing.T) {
	edges := [][]int{{0, 1}, {2, 3}, {4, 5}}
	store, err := incidence.FromInput(6, edges)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.GreedyMode = heuristic.Once
	e := &engine{store: store, root: store.CloneForBranching(), cfg: cfg, bnd: buildBoundSet(cfg)}

	e.maybeReseedBeforeReduction()
	require.False(t, e.haveIncumbent, "Once mode must not reseed outside seedIncumbent")
}

// greedy_mode: AlwaysBeforeExpensiveReductions must reseed once the packing
// oracle is due for a from-scratch rebuild (here: immediately, since no
// packing has been built yet).
func TestMaybeReseedBeforeReductionReseedsWhenPackingRebuildDue(t *testing.T) {
	edges := [][]int{{0, 1}, {2, 3}, {4, 5}}
	store, err := incidence.FromInput(6, edges)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.GreedyMode = heuristic.AlwaysBeforeExpensiveReductions
	cfg.PackingFromScratchLimit = 1
	e := &engine{store: store, root: store.CloneForBranching(), cfg: cfg, bnd: buildBoundSet(cfg)}
	require.False(t, e.haveIncumbent)

	e.maybeReseedBeforeReduction()
	require.True(t, e.haveIncumbent, "packing has no cached build yet, so a rebuild is due and the heuristic must reseed")
	require.True(t, isHittingSetInternal(edges, e.incumbent))
}

// Once the packing oracle's cache is fresh (NeedsRebuild false), a further
// call must not needlessly reseed even under AlwaysBeforeExpensiveReductions.
func TestMaybeReseedBeforeReductionSkipsWhenPackingCacheFresh(t *testing.T) {
	edges := [][]int{{0, 1}, {2, 3}, {4, 5}}
	store, err := incidence.FromInput(6, edges)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.GreedyMode = heuristic.AlwaysBeforeExpensiveReductions
	cfg.PackingFromScratchLimit = 5
	e := &engine{store: store, root: store.CloneForBranching(), cfg: cfg, bnd: buildBoundSet(cfg)}

	p, ok := e.packingOracle()
	require.True(t, ok)
	p.Bound(store) // primes the cache; FromScratchLimit=5 keeps NeedsRebuild false

	e.maybeReseedBeforeReduction()
	require.False(t, e.haveIncumbent, "packing cache is fresh; no rebuild is due, so no reseed should occur")
}

func TestPackingOracleFoundWhenEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnablePackingBound = true
	e := &engine{cfg: cfg, bnd: buildBoundSet(cfg)}
	_, ok := e.packingOracle()
	require.True(t, ok)
}

func TestPackingOracleAbsentWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnablePackingBound = false
	e := &engine{cfg: cfg, bnd: buildBoundSet(cfg)}
	_, ok := e.packingOracle()
	require.False(t, ok)
}
