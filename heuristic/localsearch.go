package heuristic

import (
	"sort"

	"github.com/KebabRonin/hittingset/incidence"
)

// LocalSearch implements spec §4.D's local-search refinement: given a valid
// hitting set h for s's currently-live edges, attempt to remove each member
// in deterministic (ascending vertex id) order, keeping the removal iff the
// residual set still hits every live edge. Single pass, no re-insertion.
//
// LocalSearch is read-only with respect to s: it tracks coverage counts
// itself rather than mutating the store, so it can run against any store
// state (root or a branch-and-bound residual) without disturbing it.
func LocalSearch(s *incidence.Store, h []int) []int {
	inSet := make(map[int]bool, len(h))
	for _, v := range h {
		inSet[v] = true
	}

	coverCount := make(map[int]int)
	s.IterLiveEdges(func(e int) bool {
		count := 0
		for _, v := range s.VerticesOfEdge(e) {
			if inSet[v] {
				count++
			}
		}
		coverCount[e] = count
		return true
	})

	ordered := append([]int(nil), h...)
	sort.Ints(ordered)

	for _, v := range ordered {
		if !inSet[v] {
			continue
		}
		edges := s.EdgesOfVertex(v)
		removable := true
		for _, e := range edges {
			if coverCount[e] <= 1 {
				removable = false
				break
			}
		}
		if !removable {
			continue
		}
		for _, e := range edges {
			coverCount[e]--
		}
		inSet[v] = false
	}

	var out []int
	for _, v := range ordered {
		if inSet[v] {
			out = append(out, v)
		}
	}
	return out
}
