package hittingset

// Validate reports whether set is a valid hitting set for the given
// 0-based edge list: every edge must contain at least one member of set.
// An empty edge list is vacuously hit by any set, including the empty one.
//
// Exported as a supplemented feature (not named explicitly by spec.md, but
// implied by §7's "initial_hitting_set ... rejected if not a valid hitting
// set" and directly grounded in the original Python reference's own
// hitting-set membership checks).
func Validate(edges [][]int, set []int) bool {
	in := make(map[int]bool, len(set))
	for _, v := range set {
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
