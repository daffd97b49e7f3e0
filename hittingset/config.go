package hittingset

import (
	"github.com/KebabRonin/hittingset/heuristic"
)

// Config is spec §6.2's solver configuration record, with dual yaml/json
// tags so it loads from either file format (see vanderheijden86-b9s's
// workspace.Config for this convention).
type Config struct {
	StopAt                    int     `yaml:"stop_at,omitempty" json:"stop_at,omitempty"`
	InitialHittingSet         []int   `yaml:"initial_hitting_set,omitempty" json:"initial_hitting_set,omitempty"`
	TimeLimitSeconds          float64 `yaml:"time_limit,omitempty" json:"time_limit,omitempty"`
	EnableLocalSearch         bool    `yaml:"enable_local_search" json:"enable_local_search"`
	EnableMaxDegreeBound      bool    `yaml:"enable_max_degree_bound" json:"enable_max_degree_bound"`
	EnableSumDegreeBound      bool    `yaml:"enable_sum_degree_bound" json:"enable_sum_degree_bound"`
	EnableEfficiencyBound     bool    `yaml:"enable_efficiency_bound" json:"enable_efficiency_bound"`
	EnablePackingBound        bool    `yaml:"enable_packing_bound" json:"enable_packing_bound"`
	EnableSumOverPackingBound bool    `yaml:"enable_sum_over_packing_bound" json:"enable_sum_over_packing_bound"`
	PackingFromScratchLimit   int     `yaml:"packing_from_scratch_limit,omitempty" json:"packing_from_scratch_limit,omitempty"`
	GreedyMode                string  `yaml:"greedy_mode,omitempty" json:"greedy_mode,omitempty"`
}

// DefaultConfig returns spec §6.2's defaults. StopAt of -1 and
// TimeLimitSeconds of 0 both mean "+∞" (disabled); see NewSolver, which
// also maps a StopAt of 0 to -1, and search.Config.TimeLimit's own <=0
// convention.
func DefaultConfig() Config {
	return Config{
		StopAt:                    -1,
		EnableLocalSearch:         true,
		EnableMaxDegreeBound:      true,
		EnableSumDegreeBound:      true,
		EnableEfficiencyBound:     true,
		EnablePackingBound:        true,
		EnableSumOverPackingBound: true,
		PackingFromScratchLimit:   3,
		GreedyMode:                heuristic.Once.String(),
	}
}

func parseGreedyMode(s string) (heuristic.GreedyMode, bool) {
	switch s {
	case "", heuristic.Once.String():
		return heuristic.Once, true
	case heuristic.AlwaysBeforeExpensiveReductions.String():
		return heuristic.AlwaysBeforeExpensiveReductions, true
	default:
		return heuristic.Once, false
	}
}
