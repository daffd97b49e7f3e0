package bound

import "github.com/KebabRonin/hittingset/incidence"

// Oracle computes an admissible lower bound on the minimum hitting-set size
// of the residual instance held by s. Implementations must not mutate s.
type Oracle interface {
	// Name identifies the oracle for reporting (spec §4.F per-bound counters).
	Name() string
	// Bound returns the admissible lower bound, or 0 when s has no live
	// edges (a fully-satisfied residual needs no further vertices).
	Bound(s *incidence.Store) int
}

// Set is an ordered collection of enabled oracles, aggregated by maximum —
// the max of admissible bounds is itself admissible and is always at least
// as tight as any single member.
type Set struct {
	oracles []Oracle
}

// NewSet builds a Set from the given oracles, in the order given. An empty
// Set's Bound is always 0 (a vacuously admissible, if useless, bound).
func NewSet(oracles ...Oracle) Set {
	return Set{oracles: oracles}
}

// Oracles returns the Set's member oracles in NewSet's order, so a caller
// can type-assert for a specific oracle (e.g. the search driver looking for
// *Packing to implement the `greedy_mode` reseed policy, spec §4.D).
func (set Set) Oracles() []Oracle {
	return set.oracles
}

// Bound returns the tightest (maximum) bound among all member oracles,
// together with a per-oracle breakdown in the same order as NewSet — the
// search driver forwards the breakdown into spec §4.F's per-bound counters.
func (set Set) Bound(s *incidence.Store) (best int, perOracle []int) {
	perOracle = make([]int, len(set.oracles))
	for i, o := range set.oracles {
		v := o.Bound(s)
		perOracle[i] = v
		if v > best {
			best = v
		}
	}
	return best, perOracle
}
