package reduction

import "github.com/KebabRonin/hittingset/incidence"

// EntryKind tags what a single reduction step did, so the caller's frame
// undo log can reverse it precisely and, for forced selections, keep its own
// `selected` bookkeeping (the vertex count the search driver prunes on) in
// sync.
type EntryKind int

const (
	// ForcedSelect records that a vertex was forced into the hitting set
	// (spec §4.B rule 1: unit edge).
	ForcedSelect EntryKind = iota
	// ForcedExclude records that a vertex was forced out of contention
	// (spec §4.B rule 3: vertex domination).
	ForcedExclude
	// RemovedEdge records that a redundant edge was deleted outright
	// (spec §4.B rule 2: edge domination).
	RemovedEdge
)

// Entry is one applied reduction step. Tokens are in the order they were
// applied to the store; Undo reverses them in the opposite order.
type Entry struct {
	Kind   EntryKind
	Vertex int // set for ForcedSelect / ForcedExclude
	Edge   int // set for RemovedEdge
	Tokens []incidence.Undo
}

// Undo reverses a single Entry against s. Callers must process a frame's
// entries back-to-front (the last applied reduction undone first), matching
// the strict LIFO contract of package incidence.
func Undo(s *incidence.Store, e Entry) error {
	for i := len(e.Tokens) - 1; i >= 0; i-- {
		if err := s.Restore(e.Tokens[i]); err != nil {
			return err
		}
	}
	return nil
}

// Select commits v to the hitting set: v is removed from the store and
// every edge it hit is removed outright (they are satisfied, not merely
// shrunk). This is spec §3's "Selecting v removes v and all edges it hits".
// Exported for the search driver's explicit branch decisions (spec §4.E
// step 5); reduction rules use the unexported selectVertex internally.
func Select(s *incidence.Store, v int) (Entry, error) {
	return selectVertex(s, v)
}

// Exclude forbids v from the hitting set without forcing a decision: v is
// removed from the store only. Exported for the search driver's explicit
// branch decisions (spec §4.E step 6).
func Exclude(s *incidence.Store, v int) (Entry, error) {
	return excludeVertex(s, v)
}

// selectVertex commits v to the hitting set: v is removed from the store and
// every edge it hit is removed outright (they are satisfied, not merely
// shrunk). This is spec §3's "Selecting v removes v and all edges it hits".
func selectVertex(s *incidence.Store, v int) (Entry, error) {
	tokV, err := s.DeleteVertex(v)
	if err != nil {
		return Entry{}, err
	}
	tokens := make([]incidence.Undo, 0, len(tokV.Members)+1)
	tokens = append(tokens, tokV)
	for _, e := range tokV.Members {
		tokE, err := s.DeleteEdge(e)
		if err != nil {
			return Entry{}, err
		}
		tokens = append(tokens, tokE)
	}
	return Entry{Kind: ForcedSelect, Vertex: v, Tokens: tokens}, nil
}

// excludeVertex forbids v from the hitting set: v is removed from the store
// only, so any edge it was a member of shrinks but is not deleted. This is
// spec §3's "Excluding v removes v only".
func excludeVertex(s *incidence.Store, v int) (Entry, error) {
	tokV, err := s.DeleteVertex(v)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Kind: ForcedExclude, Vertex: v, Tokens: []incidence.Undo{tokV}}, nil
}

// applyUnitEdge implements rule 1: a live edge of cardinality 1 forces its
// sole member into the hitting set. Returns the first one found (ascending
// edge order) so behavior is deterministic.
func applyUnitEdge(s *incidence.Store) (Entry, bool, error) {
	found := -1
	s.IterLiveEdges(func(e int) bool {
		if s.Size(e) == 1 {
			found = e
			return false
		}
		return true
	})
	if found == -1 {
		return Entry{}, false, nil
	}
	v := s.VerticesOfEdge(found)[0]
	entry, err := selectVertex(s, v)
	return entry, true, err
}

// applyEdgeDomination implements rule 2: if e1's live members are a subset
// of e2's, e2 is redundant (any hit of e1 also hits e2) and is deleted.
// Returns the first dominated edge found in ascending (e1, e2) order.
func applyEdgeDomination(s *incidence.Store) (Entry, bool, error) {
	var e2Found, e2Victim = -1, -1
	s.IterLiveEdges(func(e1 int) bool {
		s.IterLiveEdges(func(e2 int) bool {
			if e1 == e2 {
				return true
			}
			if s.Size(e1) <= s.Size(e2) && s.EdgeVerticesSubset(e1, e2) {
				e2Found, e2Victim = e1, e2
				return false
			}
			return true
		})
		return e2Found == -1
	})
	if e2Found == -1 {
		return Entry{}, false, nil
	}
	tok, err := s.DeleteEdge(e2Victim)
	if err != nil {
		return Entry{}, false, err
	}
	return Entry{Kind: RemovedEdge, Edge: e2Victim, Tokens: []incidence.Undo{tok}}, true, nil
}

// applyVertexDomination implements rule 3: if v's live incident edges are a
// subset of u's, v is dominated (any solution using v can use u instead) and
// is forced excluded. Returns the first dominated vertex found in ascending
// (v, u) order.
func applyVertexDomination(s *incidence.Store) (Entry, bool, error) {
	var vFound, uFound = -1, -1
	s.IterLiveVertices(func(v int) bool {
		s.IterLiveVertices(func(u int) bool {
			if v == u {
				return true
			}
			if s.Degree(v) <= s.Degree(u) && s.VertexEdgesSubset(v, u) {
				vFound, uFound = v, u
				return false
			}
			return true
		})
		return vFound == -1
	})
	if vFound == -1 {
		return Entry{}, false, nil
	}
	_ = uFound
	entry, err := excludeVertex(s, vFound)
	if err != nil {
		return Entry{}, false, err
	}
	return entry, true, nil
}
