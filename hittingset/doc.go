// Package hittingset is the top-level facade (spec §4.F's configuration
// record plus the solver wiring of §4.A-§4.E): it validates a Config,
// builds an incidence.Store from an edge list, runs the branch-and-bound
// search, and produces a report.Solution/report.Report pair.
//
// Configuration follows the workspace.Config convention of
// vanderheijden86-b9s (pkg/workspace/types.go): a plain struct with dual
// `yaml`/`json` struct tags so the same type loads from either a YAML or a
// JSON config file (the CLI in cmd/hittingset sniffs the extension).
package hittingset
