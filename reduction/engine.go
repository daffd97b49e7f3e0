package reduction

import "github.com/KebabRonin/hittingset/incidence"

// RunToFixpoint applies rules 1-3 (unit edge, edge domination, vertex
// domination) in that fixed order, restarting from rule 1 after any change,
// until none of them fire. It returns every applied Entry in application
// order (the caller's frame undo log should append them and, on backtrack,
// call Undo on each in reverse).
//
// If a forced decision drives a live edge to cardinality 0, the residual
// instance is infeasible; RunToFixpoint returns the entries applied so far
// (so the caller can still undo them) together with ErrInfeasible.
func RunToFixpoint(s *incidence.Store) ([]Entry, error) {
	var entries []Entry
	for {
		if entry, ok, err := applyUnitEdge(s); ok || err != nil {
			if err != nil {
				return entries, err
			}
			entries = append(entries, entry)
			if !s.IsFeasible() {
				return entries, ErrInfeasible
			}
			continue
		}

		if entry, ok, err := applyEdgeDomination(s); ok || err != nil {
			if err != nil {
				return entries, err
			}
			entries = append(entries, entry)
			continue
		}

		if entry, ok, err := applyVertexDomination(s); ok || err != nil {
			if err != nil {
				return entries, err
			}
			entries = append(entries, entry)
			if !s.IsFeasible() {
				return entries, ErrInfeasible
			}
			continue
		}

		break
	}
	return entries, nil
}

// UndoAll reverses a full entries slice (as produced by one RunToFixpoint
// call) against s, in reverse application order.
func UndoAll(s *incidence.Store, entries []Entry) error {
	for i := len(entries) - 1; i >= 0; i-- {
		if err := Undo(s, entries[i]); err != nil {
			return err
		}
	}
	return nil
}
