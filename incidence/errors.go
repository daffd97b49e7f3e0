package incidence

import "errors"

// Sentinel errors for store construction and primitive operations.
var (
	// ErrEmptyEdge indicates an input edge had no members at construction time.
	ErrEmptyEdge = errors.New("incidence: edge has no members")

	// ErrVertexOutOfRange indicates a vertex id outside [0, n).
	ErrVertexOutOfRange = errors.New("incidence: vertex id out of range")

	// ErrEdgeOutOfRange indicates an edge index outside [0, m).
	ErrEdgeOutOfRange = errors.New("incidence: edge index out of range")

	// ErrVertexAlreadyDeleted indicates DeleteVertex was called on a dead vertex.
	ErrVertexAlreadyDeleted = errors.New("incidence: vertex already deleted")

	// ErrEdgeAlreadyDeleted indicates DeleteEdge was called on a dead edge.
	ErrEdgeAlreadyDeleted = errors.New("incidence: edge already deleted")

	// ErrUndoImbalance indicates Restore was called out of LIFO order or twice
	// on the same token. Fatal: this is an internal invariant violation.
	ErrUndoImbalance = errors.New("incidence: undo token restored out of order")
)
