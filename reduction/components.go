package reduction

import (
	"github.com/spakin/disjoint"

	"github.com/KebabRonin/hittingset/incidence"
)

// ComponentsOf partitions the live edges of s into connected components of
// the primal graph (two edges are adjacent iff they share a live vertex),
// rebuilt fresh from the current live relation on every call via
// github.com/spakin/disjoint's Element/Find/Union union-find. It is
// read-only: it does not mutate s and produces no undo tokens.
//
// A fresh disjoint-set is built per call rather than maintained
// incrementally across frames because reductions and branch decisions
// mutate the live relation in both directions (delete and restore), and
// spakin/disjoint's Union has no inverse — rebuilding from the current live
// relation (at most m elements) is simpler and still cheap enough at this
// scale.
//
// Complexity: O((n+m)·α(n+m)) via union-find over live vertices' edge sets.
func ComponentsOf(s *incidence.Store) [][]int {
	elems := make(map[int]*disjoint.Element, s.M())
	s.IterLiveEdges(func(e int) bool {
		elems[e] = disjoint.NewElement()
		return true
	})

	s.IterLiveVertices(func(v int) bool {
		edges := s.EdgesOfVertex(v)
		for i := 1; i < len(edges); i++ {
			disjoint.Union(elems[edges[0]], elems[edges[i]])
		}
		return true
	})

	groups := make(map[*disjoint.Element][]int)
	var order []*disjoint.Element
	s.IterLiveEdges(func(e int) bool {
		root := elems[e].Find()
		if _, ok := groups[root]; !ok {
			order = append(order, root)
		}
		groups[root] = append(groups[root], e)
		return true
	})

	out := make([][]int, 0, len(order))
	for _, root := range order {
		out = append(out, groups[root])
	}
	return out
}
