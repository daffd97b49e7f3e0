// Package incidence implements the bidirectional vertex↔edge membership
// store (spec component A) that the search driver mutates and restores
// while it branches.
//
// The store is a dense bitset pair: verticesOf[e] holds the live members of
// edge e, edgesOf[v] holds the live edges incident to v. Both directions are
// kept in lock-step so that e ∈ edgesOf(v) ⇔ v ∈ verticesOf(e) holds at every
// stable point (between calls, never mid-mutation). Degree and cardinality
// counters are maintained incrementally rather than recomputed by
// popcount on every query, since they are read on every search-node entry.
//
// Mutation is reversible: Delete{Vertex,Edge} returns an Undo token, and
// Restore(token) puts the store back exactly as it was. Restoration must be
// applied in strict LIFO order relative to the deletions that produced the
// tokens — the store itself does not enforce this, the caller's frame undo
// log does (see package reduction and package search).
//
// Complexity: bitset words give O(n/64) set-wide scans and O(1) membership
// tests; a single Delete touches only the bits of the entity being removed
// plus one bit per affected neighbor, i.e. O(degree(v)) or O(size(e)).
package incidence
