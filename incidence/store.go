package incidence

// Store holds the bidirectional vertex↔edge relation for a hypergraph
// instance: verticesOf(e) and edgesOf(v), per spec §3/§4.A.
//
// A Store is exclusively owned by one search driver for the duration of a
// solve (spec §5); it is not safe for concurrent mutation from multiple
// goroutines, matching the teacher's single-owner-per-search convention.
type Store struct {
	n, m int

	verticesOf []bitset // len m; verticesOf[e] = live members of edge e
	edgesOf    []bitset // len n; edgesOf[v] = live edges incident to v

	degree []int // len n; degree[v] == edgesOf[v].count()
	size   []int // len m; size[e] == verticesOf[e].count()

	deletedV []bool // len n; true once v has been selected or excluded
	deletedE []bool // len m; true once e has been removed (domination or fully hit)

	liveVCount int
	liveECount int
	emptyEdges int // number of live edges with size 0 (infeasibility signal)
}

// TokenKind distinguishes the two undo-token shapes a Store produces.
type TokenKind int

const (
	// VertexDeletion undoes a DeleteVertex call.
	VertexDeletion TokenKind = iota
	// EdgeDeletion undoes a DeleteEdge call.
	EdgeDeletion
)

// Undo captures enough state to exactly reverse one Delete{Vertex,Edge} call.
// Tokens must be restored in strict LIFO order relative to the sequence of
// deletions that produced them; Store does not itself enforce ordering
// beyond the deletedV/deletedE flags.
type Undo struct {
	Kind    TokenKind
	ID      int   // the vertex or edge id that was deleted
	Members []int // edges (for a vertex token) or vertices (for an edge token) removed
}

// FromInput builds a Store from a 0-based edge list (each inner slice the
// member vertices of one hyperedge) and the vertex universe size n.
//
// Empty edges are rejected — spec §3 invariant (ii) disallows empty edges;
// an instance whose input contains one is an input error, not a search-time
// infeasibility, so the reader (package hgr) is expected to have already
// rejected this before FromInput is reached.
func FromInput(n int, edges [][]int) (*Store, error) {
	m := len(edges)
	s := &Store{
		n:          n,
		m:          m,
		verticesOf: make([]bitset, m),
		edgesOf:    make([]bitset, n),
		degree:     make([]int, n),
		size:       make([]int, m),
		deletedV:   make([]bool, n),
		deletedE:   make([]bool, m),
		liveVCount: n,
		liveECount: m,
	}
	for v := range s.edgesOf {
		s.edgesOf[v] = newBitset(m)
	}
	for e, members := range edges {
		if len(members) == 0 {
			return nil, ErrEmptyEdge
		}
		s.verticesOf[e] = newBitset(n)
		seen := newBitset(n)
		for _, v := range members {
			if v < 0 || v >= n {
				return nil, ErrVertexOutOfRange
			}
			if seen.test(v) {
				continue // duplicate member within the same edge, ignore
			}
			seen.set(v)
			s.verticesOf[e].set(v)
			s.edgesOf[v].set(e)
		}
		s.size[e] = s.verticesOf[e].count()
		if s.size[e] == 0 {
			return nil, ErrEmptyEdge
		}
	}
	for v := range s.edgesOf {
		s.degree[v] = s.edgesOf[v].count()
	}
	return s, nil
}

// CloneForBranching returns a deep, independent copy of s. heuristic.Greedy
// runs on such a copy so the caller's store is left untouched, and
// search.Run keeps one as an unmutated snapshot of the root instance.
func (s *Store) CloneForBranching() *Store {
	c := &Store{
		n: s.n, m: s.m,
		verticesOf: make([]bitset, s.m),
		edgesOf:    make([]bitset, s.n),
		degree:     append([]int(nil), s.degree...),
		size:       append([]int(nil), s.size...),
		deletedV:   append([]bool(nil), s.deletedV...),
		deletedE:   append([]bool(nil), s.deletedE...),
		liveVCount: s.liveVCount,
		liveECount: s.liveECount,
		emptyEdges: s.emptyEdges,
	}
	for e := range s.verticesOf {
		c.verticesOf[e] = s.verticesOf[e].clone()
	}
	for v := range s.edgesOf {
		c.edgesOf[v] = s.edgesOf[v].clone()
	}
	return c
}

// N returns the vertex-universe size.
func (s *Store) N() int { return s.n }

// M returns the edge-family size.
func (s *Store) M() int { return s.m }

// Degree returns the current (live) degree of v.
func (s *Store) Degree(v int) int { return s.degree[v] }

// Size returns the current (live) cardinality of e.
func (s *Store) Size(e int) int { return s.size[e] }

// IsVertexLive reports whether v is still undecided (neither selected nor excluded).
func (s *Store) IsVertexLive(v int) bool { return !s.deletedV[v] }

// IsEdgeLive reports whether e has not been removed.
func (s *Store) IsEdgeLive(e int) bool { return !s.deletedE[e] }

// LiveVertexCount returns the number of undecided vertices.
func (s *Store) LiveVertexCount() int { return s.liveVCount }

// LiveEdgeCount returns the number of remaining live edges.
func (s *Store) LiveEdgeCount() int { return s.liveECount }

// IsFeasible reports whether no live edge has collapsed to cardinality 0.
func (s *Store) IsFeasible() bool { return s.emptyEdges == 0 }

// EdgesOfVertex returns the live edges incident to v, ascending.
func (s *Store) EdgesOfVertex(v int) []int { return s.edgesOf[v].members() }

// VerticesOfEdge returns the live members of e, ascending.
func (s *Store) VerticesOfEdge(e int) []int { return s.verticesOf[e].members() }

// IterLiveVertices calls fn for every undecided vertex in ascending order
// until fn returns false.
func (s *Store) IterLiveVertices(fn func(v int) bool) {
	for v := 0; v < s.n; v++ {
		if !s.deletedV[v] {
			if !fn(v) {
				return
			}
		}
	}
}

// IterLiveEdges calls fn for every live edge in ascending order until fn
// returns false.
func (s *Store) IterLiveEdges(fn func(e int) bool) {
	for e := 0; e < s.m; e++ {
		if !s.deletedE[e] {
			if !fn(e) {
				return
			}
		}
	}
}

// DeleteVertex removes v from every edge currently incident to it (the
// membership only — the edges themselves are not removed) and marks v dead.
// The returned token restores exactly this mutation.
func (s *Store) DeleteVertex(v int) (Undo, error) {
	if s.deletedV[v] {
		return Undo{}, ErrVertexAlreadyDeleted
	}
	edges := s.edgesOf[v].members()
	for _, e := range edges {
		s.verticesOf[e].clear(v)
		s.size[e]--
		if s.size[e] == 0 {
			s.emptyEdges++
		}
	}
	s.edgesOf[v].clearAll()
	s.degree[v] = 0
	s.deletedV[v] = true
	s.liveVCount--
	return Undo{Kind: VertexDeletion, ID: v, Members: edges}, nil
}

// DeleteEdge removes e outright: every vertex currently in e loses e from
// its incidence set, and e is marked dead. The returned token restores
// exactly this mutation.
func (s *Store) DeleteEdge(e int) (Undo, error) {
	if s.deletedE[e] {
		return Undo{}, ErrEdgeAlreadyDeleted
	}
	if s.size[e] == 0 {
		s.emptyEdges--
	}
	verts := s.verticesOf[e].members()
	for _, v := range verts {
		s.edgesOf[v].clear(e)
		s.degree[v]--
	}
	s.verticesOf[e].clearAll()
	s.size[e] = 0
	s.deletedE[e] = true
	s.liveECount--
	return Undo{Kind: EdgeDeletion, ID: e, Members: verts}, nil
}

// Restore reverses a single Delete{Vertex,Edge} call. Callers must apply
// tokens in strict LIFO order; Store itself only guards against restoring a
// token whose target is not currently marked deleted (ErrUndoImbalance),
// which is the cheapest check that catches a misordered undo log.
func (s *Store) Restore(tok Undo) error {
	switch tok.Kind {
	case VertexDeletion:
		v := tok.ID
		if !s.deletedV[v] {
			return ErrUndoImbalance
		}
		for _, e := range tok.Members {
			s.verticesOf[e].set(v)
			if s.size[e] == 0 {
				s.emptyEdges--
			}
			s.size[e]++
			s.edgesOf[v].set(e)
		}
		s.degree[v] = len(tok.Members)
		s.deletedV[v] = false
		s.liveVCount++
		return nil
	case EdgeDeletion:
		e := tok.ID
		if !s.deletedE[e] {
			return ErrUndoImbalance
		}
		for _, v := range tok.Members {
			s.edgesOf[v].set(e)
			s.degree[v]++
			s.verticesOf[e].set(v)
		}
		s.size[e] = len(tok.Members)
		if s.size[e] == 0 {
			s.emptyEdges++
		}
		s.deletedE[e] = false
		s.liveECount++
		return nil
	default:
		return ErrUndoImbalance
	}
}

// EdgeVerticesSubset reports whether every live member of e1 is also a live
// member of e2 (used by the edge-domination reduction rule).
func (s *Store) EdgeVerticesSubset(e1, e2 int) bool {
	return s.verticesOf[e1].subsetOf(&s.verticesOf[e2])
}

// VertexEdgesSubset reports whether every live edge incident to v is also
// incident to u (used by the vertex-domination reduction rule).
func (s *Store) VertexEdgesSubset(v, u int) bool {
	return s.edgesOf[v].subsetOf(&s.edgesOf[u])
}

// Snapshot captures enough to assert structural equality in tests (testable
// property #4: delete/restore round-trips are byte-identical). It is not
// used by the search driver itself.
type Snapshot struct {
	Verts [][]int // per edge, live members
	Edges [][]int // per vertex, live edges
}

// Snap returns a deterministic snapshot of the current relation.
func (s *Store) Snap() Snapshot {
	snap := Snapshot{Verts: make([][]int, s.m), Edges: make([][]int, s.n)}
	for e := 0; e < s.m; e++ {
		snap.Verts[e] = s.verticesOf[e].members()
	}
	for v := 0; v < s.n; v++ {
		snap.Edges[v] = s.edgesOf[v].members()
	}
	return snap
}
