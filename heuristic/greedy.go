package heuristic

import "github.com/KebabRonin/hittingset/incidence"

// GreedyMode controls how often the greedy+local-search heuristic reruns
// during a solve (spec §4.D config knob `greedy_mode`).
type GreedyMode int

const (
	// Once runs the heuristic only at the root, to seed the initial
	// incumbent.
	Once GreedyMode = iota
	// AlwaysBeforeExpensiveReductions reruns the heuristic before each
	// top-level reduction pass that would trigger a packing rebuild,
	// giving the search driver a chance to tighten the incumbent as the
	// residual instance shrinks.
	AlwaysBeforeExpensiveReductions
)

func (m GreedyMode) String() string {
	switch m {
	case Once:
		return "once"
	case AlwaysBeforeExpensiveReductions:
		return "always_before_expensive_reductions"
	default:
		return "unknown"
	}
}

// Greedy implements spec §4.D's greedy cover construction on a *copy* of s:
// repeatedly select the live vertex of maximum current degree (ties broken
// by lowest vertex id), remove it and every edge it hits, until no live
// edges remain. It operates on CloneForBranching so the caller's store is
// left untouched.
func Greedy(s *incidence.Store) []int {
	work := s.CloneForBranching()
	var selected []int
	for work.LiveEdgeCount() > 0 {
		best, bestDeg := -1, -1
		work.IterLiveVertices(func(v int) bool {
			if d := work.Degree(v); d > bestDeg {
				best, bestDeg = v, d
			}
			return true
		})
		if best == -1 || bestDeg == 0 {
			// No live vertex touches a live edge: the residual
			// instance is infeasible (an empty edge). The caller is
			// expected to have reduced to fixpoint first, so this
			// should not occur on a well-formed instance.
			break
		}
		selected = append(selected, best)
		for _, e := range work.EdgesOfVertex(best) {
			_, _ = work.DeleteEdge(e)
		}
		_, _ = work.DeleteVertex(best)
	}
	return selected
}
