package search

import (
	"time"

	"github.com/KebabRonin/hittingset/heuristic"
)

// Config mirrors spec §6.2's solver configuration record. All fields have
// the defaults given there; DefaultConfig returns them.
type Config struct {
	StopAt                    int // terminate early once incumbent size <= StopAt
	InitialHittingSet         []int
	TimeLimit                 time.Duration // <=0 means no deadline
	EnableLocalSearch         bool
	EnableMaxDegreeBound      bool
	EnableSumDegreeBound      bool
	EnableEfficiencyBound     bool
	EnablePackingBound        bool
	EnableSumOverPackingBound bool
	PackingFromScratchLimit   int
	GreedyMode                heuristic.GreedyMode
}

// DefaultConfig returns spec §6.2's defaults.
func DefaultConfig() Config {
	return Config{
		StopAt:                    -1, // sentinel for "+∞" (no early stop)
		InitialHittingSet:         nil,
		TimeLimit:                 0, // sentinel for "+∞" (no deadline)
		EnableLocalSearch:         true,
		EnableMaxDegreeBound:      true,
		EnableSumDegreeBound:      true,
		EnableEfficiencyBound:     true,
		EnablePackingBound:        true,
		EnableSumOverPackingBound: true,
		PackingFromScratchLimit:   3,
		GreedyMode:                heuristic.Once,
	}
}

// BoundCounters accumulates, per enabled oracle (in the same order the
// engine's bound.Set was built), how many frames that oracle alone would
// have pruned had it been the tightest — spec §4.F's "one counter per
// oracle".
type BoundCounters struct {
	Names  []string
	Pruned []int
}

// ReductionCounters accumulates how many times each reduction rule fired,
// keyed by reduction.EntryKind.
type ReductionCounters struct {
	ForcedSelect  int
	ForcedExclude int
	RemovedEdge   int
}

// Stats accumulates spec §4.F's reporting counters over one solve.
type Stats struct {
	NodesExpanded   int
	PrunedByBound   int
	Bounds          BoundCounters
	Reductions      ReductionCounters
	BestSolutionSz  int
	WallTime        time.Duration
	ProvedOptimal   bool
}

// Result is the outcome of one Run: the best hitting set found (vertex ids
// in the store's internal, 0-based space) and the accumulated Stats.
type Result struct {
	Selected []int
	Stats    Stats
}
