// Package reduction implements the instance-shrinking rules of spec
// component B. Every rule either forces a vertex into the hitting set,
// forces a vertex out of it, or deletes a redundant edge; all three go
// through package incidence so they are reversible.
//
// Rules run to fixpoint at the top of every search node, in the fixed order
// spec §4.B lists them: unit edge, edge domination, vertex domination. A
// single pass resumes scanning from the first rule after any change.
// Component splitting is not applied: ComponentsOf only reports the
// connected components of the live edges.
package reduction
