// Package heuristic implements spec §4.D's upper-bound heuristics: a
// deterministic greedy cover construction followed by a single-pass local
// search, used to seed the search driver's incumbent before branch-and-bound
// begins and, per the `greedy_mode` config knob, to refresh it mid-search.
package heuristic
