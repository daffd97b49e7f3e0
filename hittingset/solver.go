package hittingset

import (
	"fmt"
	"sort"
	"time"

	"github.com/KebabRonin/hittingset/incidence"
	"github.com/KebabRonin/hittingset/report"
	"github.com/KebabRonin/hittingset/search"
)

// Solver is the bound-and-validated entrypoint for one hypergraph instance.
// Construct with NewSolver, then call Solve (repeatable: each call runs a
// fresh search against a freshly built incidence.Store).
type Solver struct {
	n         int
	edges     [][]int
	cfg       Config
	searchCfg search.Config
}

// NewSolver validates cfg against the instance (n vertices, edges — 0-based,
// as produced by package hgr) and returns a ready-to-run Solver. Per spec
// §7, configuration errors are detected here, before any solver state
// exists; the instance itself is not touched until Solve is called.
func NewSolver(n int, edges [][]int, cfg Config) (*Solver, error) {
	if cfg.TimeLimitSeconds < 0 {
		return nil, ErrNegativeTimeLimit
	}
	mode, ok := parseGreedyMode(cfg.GreedyMode)
	if !ok {
		return nil, fmt.Errorf("hittingset: unknown greedy_mode %q", cfg.GreedyMode)
	}
	if cfg.InitialHittingSet != nil {
		for _, v := range cfg.InitialHittingSet {
			if v < 0 || v >= n {
				return nil, ErrVertexCountMismatch
			}
		}
		if !Validate(edges, cfg.InitialHittingSet) {
			return nil, ErrInvalidInitialHittingSet
		}
	}

	stopAt := cfg.StopAt
	if stopAt == 0 {
		stopAt = -1 // "omitempty" zero value for an unset int also means "disabled"
	}

	searchCfg := search.Config{
		StopAt:                    stopAt,
		InitialHittingSet:         cfg.InitialHittingSet,
		TimeLimit:                 time.Duration(cfg.TimeLimitSeconds * float64(time.Second)),
		EnableLocalSearch:         cfg.EnableLocalSearch,
		EnableMaxDegreeBound:      cfg.EnableMaxDegreeBound,
		EnableSumDegreeBound:      cfg.EnableSumDegreeBound,
		EnableEfficiencyBound:     cfg.EnableEfficiencyBound,
		EnablePackingBound:        cfg.EnablePackingBound,
		EnableSumOverPackingBound: cfg.EnableSumOverPackingBound,
		PackingFromScratchLimit:   cfg.PackingFromScratchLimit,
		GreedyMode:                mode,
	}

	return &Solver{n: n, edges: edges, cfg: cfg, searchCfg: searchCfg}, nil
}

// Solve runs the branch-and-bound search to completion (or cancellation)
// and returns spec §6.3/§6.4's Solution and Report records.
func (s *Solver) Solve() (report.Solution, report.Report, error) {
	store, err := incidence.FromInput(s.n, s.edges)
	if err != nil {
		return report.Solution{}, report.Report{}, err
	}

	res := search.Run(store, s.searchCfg)

	vertices := append([]int(nil), res.Selected...)
	sort.Ints(vertices)

	sol := report.Solution{
		Vertices:      vertices,
		Size:          len(vertices),
		ProvedOptimal: res.Stats.ProvedOptimal,
	}

	boundCounters := make([]report.BoundCounterEcho, len(res.Stats.Bounds.Names))
	for i, name := range res.Stats.Bounds.Names {
		pruned := 0
		if i < len(res.Stats.Bounds.Pruned) {
			pruned = res.Stats.Bounds.Pruned[i]
		}
		boundCounters[i] = report.BoundCounterEcho{Name: name, Pruned: pruned}
	}

	rep := report.Report{
		Fingerprint:   report.Fingerprint(s.n, s.edges),
		NodesExpanded: res.Stats.NodesExpanded,
		PrunedByBound: res.Stats.PrunedByBound,
		BoundCounters: boundCounters,
		ReductionCounters: report.ReductionCounterEcho{
			ForcedSelect:  res.Stats.Reductions.ForcedSelect,
			ForcedExclude: res.Stats.Reductions.ForcedExclude,
			RemovedEdge:   res.Stats.Reductions.RemovedEdge,
		},
		BestSolutionSize: len(vertices),
		ProvedOptimal:    res.Stats.ProvedOptimal,
		WallTimeSeconds:  res.Stats.WallTime.Seconds(),
		Config:           s.configEcho(),
	}

	return sol, rep, nil
}

func (s *Solver) configEcho() report.ConfigEcho {
	return report.ConfigEcho{
		StopAt:                    s.searchCfg.StopAt,
		InitialHittingSet:         s.cfg.InitialHittingSet,
		TimeLimitSeconds:          s.cfg.TimeLimitSeconds,
		EnableLocalSearch:         s.cfg.EnableLocalSearch,
		EnableMaxDegreeBound:      s.cfg.EnableMaxDegreeBound,
		EnableSumDegreeBound:      s.cfg.EnableSumDegreeBound,
		EnableEfficiencyBound:     s.cfg.EnableEfficiencyBound,
		EnablePackingBound:        s.cfg.EnablePackingBound,
		EnableSumOverPackingBound: s.cfg.EnableSumOverPackingBound,
		PackingFromScratchLimit:   s.cfg.PackingFromScratchLimit,
		GreedyMode:                s.searchCfg.GreedyMode.String(),
	}
}
