package bound

import "github.com/KebabRonin/hittingset/incidence"

// greedyPacking builds a family of pairwise vertex-disjoint live edges: it
// repeatedly scans for the lowest-indexed live edge whose members are
// entirely disjoint from the vertices already claimed by the packing, adds
// it, and repeats until no such edge remains. Deterministic given the same
// store state.
func greedyPacking(s *incidence.Store) []int {
	used := make(map[int]bool)
	var packing []int
	for {
		found := -1
		s.IterLiveEdges(func(e int) bool {
			for _, v := range s.VerticesOfEdge(e) {
				if used[v] {
					return true
				}
			}
			found = e
			return false
		})
		if found == -1 {
			break
		}
		for _, v := range s.VerticesOfEdge(found) {
			used[v] = true
		}
		packing = append(packing, found)
	}
	return packing
}

// Packing implements spec §4.C's packing bound: |P| for a greedily built
// family P of pairwise vertex-disjoint live edges. Any hitting set must pick
// at least one vertex per member of P (they share no vertex), so |P| is
// admissible.
//
// FromScratchLimit mirrors the `packing_from_scratch_limit` config knob
// (spec §4.C): Packing reuses its last build for up to FromScratchLimit
// calls before rebuilding from scratch to recover tightness. On reuse it
// keeps only the cached edges that are still live; shrinking the live
// relation cannot break their disjointness, but a backtrack can restore a
// vertex into two cached edges, so when the remaining edges are no longer
// pairwise vertex-disjoint the packing is rebuilt instead of reused.
type Packing struct {
	FromScratchLimit int

	cached      []int
	callsReused int
}

func NewPacking(fromScratchLimit int) *Packing {
	if fromScratchLimit <= 0 {
		fromScratchLimit = 3
	}
	return &Packing{FromScratchLimit: fromScratchLimit}
}

func (Packing) Name() string { return "packing" }

// NeedsRebuild reports whether the next Bound call will recompute the
// packing from scratch rather than reuse the cached one — i.e. there is no
// cached packing yet, or FromScratchLimit reuses have already been spent.
// Used by the search driver's `greedy_mode: AlwaysBeforeExpensiveReductions`
// policy (spec §4.D) to decide when a top-level reduction pass is "the one
// that would trigger a packing rebuild".
func (p *Packing) NeedsRebuild() bool {
	return p.cached == nil || p.callsReused >= p.FromScratchLimit
}

func (p *Packing) Bound(s *incidence.Store) int {
	if s.LiveEdgeCount() == 0 {
		p.cached = nil
		p.callsReused = 0
		return 0
	}

	if p.cached != nil && p.callsReused < p.FromScratchLimit {
		still := p.cached[:0:0]
		claimed := make(map[int]bool)
		disjoint := true
		for _, e := range p.cached {
			if !s.IsEdgeLive(e) {
				continue
			}
			for _, v := range s.VerticesOfEdge(e) {
				if claimed[v] {
					disjoint = false
				}
				claimed[v] = true
			}
			still = append(still, e)
		}
		if disjoint && len(still) == len(p.cached) {
			p.callsReused++
			return len(still)
		}
		p.cached = still
		if disjoint && len(p.cached) > 0 && p.callsReused < p.FromScratchLimit {
			p.callsReused++
			return len(p.cached)
		}
	}

	p.cached = greedyPacking(s)
	p.callsReused = 0
	return len(p.cached)
}
