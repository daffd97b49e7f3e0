package search

import (
	"time"

	"github.com/KebabRonin/hittingset/bound"
	"github.com/KebabRonin/hittingset/heuristic"
	"github.com/KebabRonin/hittingset/incidence"
	"github.com/KebabRonin/hittingset/reduction"
)

// engine holds all search data and policy for one Run, grounded on the
// teacher's bbEngine (tsp/bb.go): a dedicated struct instead of closures,
// explicit deadline bookkeeping, and deterministic branch ordering.
type engine struct {
	store *incidence.Store
	root  *incidence.Store // untouched full-edge snapshot, for local search validity checks
	cfg   Config
	bnd   bound.Set

	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline-check counter, teacher's `e.steps&4095` idiom

	path []int // vertices currently forced/selected along the live root-to-frame path

	incumbent     []int
	incumbentSize int
	haveIncumbent bool

	cancelled bool
	stats     Stats
}

// buildBoundSet constructs the oracle set enabled by cfg, in a fixed order
// so Stats.Bounds' per-oracle slots are stable across runs.
func buildBoundSet(cfg Config) bound.Set {
	var oracles []bound.Oracle
	if cfg.EnableMaxDegreeBound {
		oracles = append(oracles, bound.MaxDegree{})
	}
	if cfg.EnableSumDegreeBound {
		// Spec §4.C's sum-degree bound is the same admissible greedy-cover
		// relaxation the efficiency bound already computes (count of
		// vertices in the descending-degree prefix needed to reach
		// m_live); both toggles share the Efficiency oracle rather than
		// duplicating the computation under two names.
		oracles = append(oracles, bound.Efficiency{})
	}
	if cfg.EnableEfficiencyBound {
		oracles = append(oracles, bound.Efficiency{})
	}
	if cfg.EnablePackingBound {
		oracles = append(oracles, bound.NewPacking(cfg.PackingFromScratchLimit))
	}
	if cfg.EnableSumOverPackingBound {
		oracles = append(oracles, bound.SumOverPacking{})
	}
	return bound.NewSet(oracles...)
}

// Run executes spec §4.E's branch-and-bound search to completion (or until
// cancelled) against store, and returns the best hitting set found together
// with accumulated statistics. store is mutated during the search but is
// guaranteed to be restored to its entry state before Run returns.
func Run(store *incidence.Store, cfg Config) Result {
	e := &engine{
		store: store,
		root:  store.CloneForBranching(),
		cfg:   cfg,
		bnd:   buildBoundSet(cfg),
	}
	e.stats.Bounds.Names = e.oracleNames()

	if cfg.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(cfg.TimeLimit)
	}

	e.seedIncumbent()

	start := time.Now()
	e.search()
	e.stats.WallTime = time.Since(start)

	e.stats.BestSolutionSz = e.incumbentSize
	e.stats.ProvedOptimal = !e.cancelled && !e.stoppedEarly()

	return Result{Selected: append([]int(nil), e.incumbent...), Stats: e.stats}
}

func (e *engine) oracleNames() []string {
	// Rebuilt the same way buildBoundSet ordered them, for label purposes.
	var names []string
	if e.cfg.EnableMaxDegreeBound {
		names = append(names, "max_degree")
	}
	if e.cfg.EnableSumDegreeBound {
		names = append(names, "sum_degree")
	}
	if e.cfg.EnableEfficiencyBound {
		names = append(names, "efficiency")
	}
	if e.cfg.EnablePackingBound {
		names = append(names, "packing")
	}
	if e.cfg.EnableSumOverPackingBound {
		names = append(names, "sum_over_packing")
	}
	return names
}

func (e *engine) stoppedEarly() bool {
	return e.haveIncumbent && e.cfg.StopAt >= 0 && e.incumbentSize <= e.cfg.StopAt
}

// seedIncumbent implements spec §4.D's initial-incumbent policy: either the
// validated InitialHittingSet, or greedy cover + one local-search pass.
func (e *engine) seedIncumbent() {
	if e.cfg.InitialHittingSet != nil {
		e.recordIncumbent(append([]int(nil), e.cfg.InitialHittingSet...))
		return
	}
	seeded := heuristic.Seed(e.store)
	e.recordIncumbent(seeded)
}

func (e *engine) recordIncumbent(h []int) {
	if !e.haveIncumbent || len(h) < e.incumbentSize {
		e.incumbent = h
		e.incumbentSize = len(h)
		e.haveIncumbent = true
	}
}

// packingOracle returns the *bound.Packing member of e.bnd, if the packing
// oracle is enabled.
func (e *engine) packingOracle() (*bound.Packing, bool) {
	for _, o := range e.bnd.Oracles() {
		if p, ok := o.(*bound.Packing); ok {
			return p, true
		}
	}
	return nil, false
}

// maybeReseedBeforeReduction implements the `AlwaysBeforeExpensive
// Reductions` greedy_mode (spec §4.D): "before each top-level reduction
// pass that would trigger a packing rebuild", rerun the greedy heuristic
// and offer its result as a candidate incumbent. Called at frame entry, so
// it always runs ahead of this frame's reduction.RunToFixpoint call.
func (e *engine) maybeReseedBeforeReduction() {
	if e.cfg.GreedyMode != heuristic.AlwaysBeforeExpensiveReductions {
		return
	}
	p, ok := e.packingOracle()
	if !ok || !p.NeedsRebuild() {
		return
	}

	candidate := append(append([]int(nil), e.path...), heuristic.Greedy(e.store)...)
	if e.cfg.EnableLocalSearch {
		candidate = heuristic.LocalSearch(e.root, candidate)
	}
	e.recordIncumbent(candidate)
}

// deadlineHit performs a rare deadline test (every 4096 node events),
// mirroring the teacher's bbEngine.deadlineCheck.
func (e *engine) deadlineHit() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}
	return time.Now().After(e.deadline)
}

// pickBranchVertex implements spec §4.E step 4: the live vertex of maximum
// current degree, tie-broken by the smallest incident live edge, then by
// lowest id.
func pickBranchVertex(s *incidence.Store) int {
	best, bestDeg, bestMinEdge := -1, -1, 1<<62
	s.IterLiveVertices(func(v int) bool {
		deg := s.Degree(v)
		if deg < bestDeg {
			return true
		}
		minEdge := 1 << 62
		for _, e := range s.EdgesOfVertex(v) {
			if sz := s.Size(e); sz < minEdge {
				minEdge = sz
			}
		}
		if deg > bestDeg || minEdge < bestMinEdge {
			best, bestDeg, bestMinEdge = v, deg, minEdge
		}
		return true
	})
	return best
}

// applyEntries pushes the vertices forced ForcedSelect by entries onto
// e.path, returning how many were pushed so the caller can pop them again.
func (e *engine) applyEntries(entries []reduction.Entry) int {
	pushed := 0
	for _, en := range entries {
		switch en.Kind {
		case reduction.ForcedSelect:
			e.path = append(e.path, en.Vertex)
			pushed++
			e.stats.Reductions.ForcedSelect++
		case reduction.ForcedExclude:
			e.stats.Reductions.ForcedExclude++
		case reduction.RemovedEdge:
			e.stats.Reductions.RemovedEdge++
		}
	}
	return pushed
}

// search is one recursive frame of spec §4.E's algorithm. Depth can reach
// 2·n in the worst case (spec §9 Design Notes); callers on platforms with
// small default stacks may want to convert this to an explicit work stack,
// which would not change observable behavior.
func (e *engine) search() {
	if e.cancelled || e.deadlineHit() || e.stoppedEarly() {
		e.cancelled = true
		return
	}

	e.maybeReseedBeforeReduction()
	if e.stoppedEarly() {
		e.cancelled = true
		return
	}

	entries, rerr := reduction.RunToFixpoint(e.store)
	pushed := e.applyEntries(entries)
	defer func() {
		_ = reduction.UndoAll(e.store, entries)
		e.path = e.path[:len(e.path)-pushed]
	}()

	if rerr == reduction.ErrInfeasible {
		return // prune: this branch admits no hitting set
	}

	e.stats.NodesExpanded++

	if e.store.LiveEdgeCount() == 0 {
		if len(e.path) < e.incumbentSize || !e.haveIncumbent {
			solution := append([]int(nil), e.path...)
			if e.cfg.EnableLocalSearch {
				// e.store's own live-edge set is empty here (everything
				// is already hit); local search must instead check
				// removability against the untouched root snapshot, which
				// still carries every edge of the original instance.
				solution = heuristic.LocalSearch(e.root, solution)
			}
			e.recordIncumbent(solution)
			if e.stoppedEarly() {
				e.cancelled = true
			}
		}
		return
	}

	if e.cancelled || e.deadlineHit() || e.stoppedEarly() {
		e.cancelled = true
		return
	}

	L, perOracle := e.bnd.Bound(e.store)
	if len(e.stats.Bounds.Pruned) == 0 && len(perOracle) > 0 {
		e.stats.Bounds.Pruned = make([]int, len(perOracle))
	}
	threshold := e.incumbentSize
	for i, v := range perOracle {
		if len(e.path)+v >= threshold {
			e.stats.Bounds.Pruned[i]++
		}
	}
	if len(e.path)+L >= threshold {
		e.stats.PrunedByBound++
		return
	}

	v := pickBranchVertex(e.store)
	if v == -1 {
		return
	}

	// Include branch first (spec §4.E step 5).
	selEntry, err := reduction.Select(e.store, v)
	if err == nil {
		e.path = append(e.path, v)
		e.search()
		e.path = e.path[:len(e.path)-1]
		_ = reduction.Undo(e.store, selEntry)
	}

	if e.cancelled {
		return
	}

	// Exclude branch (spec §4.E step 6).
	exEntry, err := reduction.Exclude(e.store, v)
	if err == nil {
		e.search()
		_ = reduction.Undo(e.store, exEntry)
	}
}
