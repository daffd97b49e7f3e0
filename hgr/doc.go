// Package hgr reads the `.hgr` hypergraph text format of spec §6.1: a
// line-oriented format with comment lines, one `p hs N M` problem line, and
// M edge lines of whitespace-separated 1-based vertex ids.
//
// The grammar is a handful of fixed-shape lines, not worth a parser
// combinator library (package participle, used elsewhere in the examples
// for BalancedGo's richer hypergraph-decomposition DSL, would be overkill
// here — see DESIGN.md). A hand-written bufio.Scanner line parser, in the
// style of the original Python reference's read_hgr, is both simpler and
// faster.
package hgr
