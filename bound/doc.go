// Package bound implements the admissible lower-bound oracles of spec §4.C:
// max-degree, sum-degree (efficiency), packing, and a fractional
// sum-over-packing bound backed by an LP relaxation. Every oracle takes a
// read-only *incidence.Store snapshot of the residual instance and returns a
// value that never exceeds the true minimum hitting-set size of that
// residual — callers aggregate enabled oracles by taking the maximum, since
// the max of admissible bounds is itself admissible.
//
// None of these oracles mutate the store or produce undo tokens; they are
// read-only queries of the store run once per search frame (Packing keeps
// its own cache between calls), mirroring the teacher's admissible
// degree-1 relaxation bound in tsp/bb.go (computed fresh per node, no shared
// mutable state).
package bound
