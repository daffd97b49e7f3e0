// Package search implements the branch-and-bound driver of spec §4.E: a
// deterministic depth-first exact search over the incidence store, composing
// the reduction engine (package reduction), the lower-bound oracles (package
// bound), and the upper-bound heuristics (package heuristic).
//
// The driver is grounded on the teacher's tsp.bbEngine (package tsp,
// file bb.go): a dedicated engine struct carrying explicit state instead of
// closures, sparse deadline checks on a step counter, deterministic
// neighbor/branch ordering, and incumbent tracking via a recordUB-style
// method. Where the teacher's TSP engine walks a Hamiltonian path, this
// engine walks a vertex-inclusion/exclusion tree; where the teacher bounds
// with a degree-1 relaxation, this engine aggregates the oracle Set from
// package bound.
package search
