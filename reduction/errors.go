package reduction

import "errors"

// ErrInfeasible is returned by RunToFixpoint when a forced exclusion (or a
// vertex selection's side effects) shrinks some live edge to cardinality 0:
// the residual instance has no hitting set and the caller must backtrack.
var ErrInfeasible = errors.New("reduction: instance infeasible (empty edge forced)")
