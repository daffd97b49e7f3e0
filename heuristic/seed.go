package heuristic

import "github.com/KebabRonin/hittingset/incidence"

// Seed produces the initial incumbent per spec §4.D: the greedy cover
// followed by one local-search pass over s's currently-live edges.
func Seed(s *incidence.Store) []int {
	return LocalSearch(s, Greedy(s))
}
