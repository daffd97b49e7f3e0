package search

import "errors"

// ErrInvalidInitialHittingSet is a configuration error (spec §7): the
// supplied initial_hitting_set does not hit every edge of the instance.
var ErrInvalidInitialHittingSet = errors.New("search: initial_hitting_set is not a valid hitting set")

// ErrNegativeTimeLimit is a configuration error (spec §7): time_limit must
// be non-negative.
var ErrNegativeTimeLimit = errors.New("search: time_limit must be non-negative")

// ErrUndoImbalance signals an internal invariant violation surfaced from the
// incidence/reduction layers during unwind; per spec §7 this is fatal and
// should trip only in tests.
var ErrUndoImbalance = errors.New("search: undo imbalance while unwinding a frame")
