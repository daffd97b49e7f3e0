package hittingset

import "errors"

// Configuration errors (spec §7): detected at solver construction, before
// any solver state exists.
var (
	ErrInvalidInitialHittingSet = errors.New("hittingset: initial_hitting_set is not a valid hitting set")
	ErrNegativeTimeLimit        = errors.New("hittingset: time_limit must be non-negative")
	ErrVertexCountMismatch      = errors.New("hittingset: initial_hitting_set references a vertex outside [0, n)")
)
