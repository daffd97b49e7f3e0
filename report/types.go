package report

// Solution is spec §6.3's structured solution record. Vertices must be in
// the same id space as the input (1-based if read from a `.hgr` file): the
// solver itself works in 0-based internal ids throughout, so a caller
// building a Solution from a `.hgr`-sourced instance must translate via
// hgr.ToFileIDs before constructing one of these (see cmd/hittingset's CLI,
// the only place that currently knows which format the input came from).
type Solution struct {
	Vertices      []int `json:"vertices" yaml:"vertices"`
	Size          int   `json:"size" yaml:"size"`
	ProvedOptimal bool  `json:"proved_optimal" yaml:"proved_optimal"`
}

// ConfigEcho mirrors the resolved solver configuration (spec §6.2), echoed
// verbatim into the report (spec §6.4) so a report is self-describing
// without needing its companion config file.
type ConfigEcho struct {
	StopAt                    int    `json:"stop_at" yaml:"stop_at"`
	InitialHittingSet         []int  `json:"initial_hitting_set,omitempty" yaml:"initial_hitting_set,omitempty"`
	TimeLimitSeconds          float64 `json:"time_limit_seconds" yaml:"time_limit_seconds"`
	EnableLocalSearch         bool   `json:"enable_local_search" yaml:"enable_local_search"`
	EnableMaxDegreeBound      bool   `json:"enable_max_degree_bound" yaml:"enable_max_degree_bound"`
	EnableSumDegreeBound      bool   `json:"enable_sum_degree_bound" yaml:"enable_sum_degree_bound"`
	EnableEfficiencyBound     bool   `json:"enable_efficiency_bound" yaml:"enable_efficiency_bound"`
	EnablePackingBound        bool   `json:"enable_packing_bound" yaml:"enable_packing_bound"`
	EnableSumOverPackingBound bool   `json:"enable_sum_over_packing_bound" yaml:"enable_sum_over_packing_bound"`
	PackingFromScratchLimit   int    `json:"packing_from_scratch_limit" yaml:"packing_from_scratch_limit"`
	GreedyMode                string `json:"greedy_mode" yaml:"greedy_mode"`
}

// BoundCounterEcho is one oracle's prune counter (spec §4.F: "one counter
// per oracle").
type BoundCounterEcho struct {
	Name   string `json:"name" yaml:"name"`
	Pruned int    `json:"pruned" yaml:"pruned"`
}

// ReductionCounterEcho is one reduction rule's application counter.
type ReductionCounterEcho struct {
	ForcedSelect  int `json:"forced_select" yaml:"forced_select"`
	ForcedExclude int `json:"forced_exclude" yaml:"forced_exclude"`
	RemovedEdge   int `json:"removed_edge" yaml:"removed_edge"`
}

// Report is spec §6.4's structured report record.
type Report struct {
	Fingerprint       string                 `json:"fingerprint" yaml:"fingerprint"`
	NodesExpanded     int                    `json:"nodes_expanded" yaml:"nodes_expanded"`
	PrunedByBound     int                    `json:"pruned_by_bound" yaml:"pruned_by_bound"`
	BoundCounters     []BoundCounterEcho     `json:"bound_counters" yaml:"bound_counters"`
	ReductionCounters ReductionCounterEcho   `json:"reduction_counters" yaml:"reduction_counters"`
	BestSolutionSize  int                    `json:"best_solution_size" yaml:"best_solution_size"`
	ProvedOptimal     bool                   `json:"proved_optimal" yaml:"proved_optimal"`
	WallTimeSeconds   float64                `json:"wall_time_seconds" yaml:"wall_time_seconds"`
	Config            ConfigEcho             `json:"config" yaml:"config"`
}
