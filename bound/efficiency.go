package bound

import (
	"sort"

	"github.com/KebabRonin/hittingset/incidence"
)

// Efficiency implements spec §4.C's efficiency bound: sort live vertices by
// descending degree, accumulate degrees until their running sum reaches or
// exceeds m_live, and return the count of vertices consumed. This is
// admissible because no selection of fewer, lower-or-equal-degree vertices
// could possibly cover as many edges as the top-degree prefix does.
type Efficiency struct{}

func (Efficiency) Name() string { return "efficiency" }

func (Efficiency) Bound(s *incidence.Store) int {
	m := s.LiveEdgeCount()
	if m == 0 {
		return 0
	}
	var degrees []int
	s.IterLiveVertices(func(v int) bool {
		degrees = append(degrees, s.Degree(v))
		return true
	})
	sort.Sort(sort.Reverse(sort.IntSlice(degrees)))

	covered, used := 0, 0
	for _, d := range degrees {
		if covered >= m {
			break
		}
		covered += d
		used++
	}
	return used
}
