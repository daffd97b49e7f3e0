package hgr

import (
	"errors"
	"strconv"
)

// Sentinel errors for malformed `.hgr` input: five distinct violation types
// (spec §6.1/§7's four plus a duplicate problem line). Use errors.Is to distinguish them; ParseError
// wraps whichever sentinel applies with the offending line number.
var (
	// ErrMissingProblemLine is returned when the input never contains a
	// `p hs N M` line.
	ErrMissingProblemLine = errors.New("hgr: missing problem line (\"p hs N M\")")

	// ErrMalformedProblemLine is returned when a `p` line is present but
	// does not have exactly 4 whitespace-separated tokens with the second
	// token equal to "hs", or its N/M fields do not parse as integers.
	ErrMalformedProblemLine = errors.New("hgr: malformed problem line")

	// ErrDuplicateProblemLine is returned when more than one `p` line
	// appears in the input.
	ErrDuplicateProblemLine = errors.New("hgr: duplicate problem line")

	// ErrVertexOutOfRange is returned when an edge line names a vertex id
	// outside [1, N] (1-based, as declared by the problem line).
	ErrVertexOutOfRange = errors.New("hgr: vertex id out of range")

	// ErrEdgeCountMismatch is returned when the number of edge lines
	// actually read does not equal the M declared by the problem line.
	ErrEdgeCountMismatch = errors.New("hgr: edge count does not match declared M")
)

// ParseError reports the line number at which a parse failure occurred,
// wrapping one of this package's sentinel errors.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return "hgr: line " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
