package bound

import "errors"

// ErrNoLiveEdges names the fully-hit residual instance. No oracle in this
// package returns it: Oracle.Bound reports a bound of 0 for that case.
var ErrNoLiveEdges = errors.New("bound: no live edges remaining")
