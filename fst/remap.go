package fst

// RemapStates replaces the FST's state sequence with a new one where state
// i moves to mapping[i] (or is dropped if mapping[i] == NoStateId). Arc
// nextstates and the start state are rewritten to the new numbering.
// Duplicate mappings to the same new id merge, keeping the first occurrence
// encountered in increasing old-id order — later duplicates (and their
// arcs/final weight) are discarded.
//
// len(mapping) must equal NumStates(); otherwise ErrInvalidRemap.
// Complexity: O(states + total arcs).
func (f *MutableFst[W]) RemapStates(mapping []StateId) error {
	if len(mapping) != len(f.states) {
		return ErrInvalidRemap
	}

	newCount := 0
	for _, target := range mapping {
		if target == NoStateId {
			continue
		}
		if int(target)+1 > newCount {
			newCount = int(target) + 1
		}
	}

	newStates := make([]state[W], newCount)
	occupied := make([]bool, newCount)
	for oldID, target := range mapping {
		if target == NoStateId {
			continue
		}
		if occupied[target] {
			continue // later duplicate: discarded, first occurrence wins
		}
		occupied[target] = true
		newStates[target] = f.states[oldID]
	}

	// Rewrite arc nextstates to the new numbering; arcs whose destination
	// was dropped (mapped to NoStateId) are removed to preserve the
	// invariant that every arc's nextstate refers to a state still present.
	for i := range newStates {
		if len(newStates[i].arcs) == 0 {
			continue
		}
		kept := newStates[i].arcs[:0]
		for _, arc := range newStates[i].arcs {
			if int(arc.NextState) >= len(mapping) {
				continue
			}
			newTarget := mapping[arc.NextState]
			if newTarget == NoStateId {
				continue
			}
			arc.NextState = newTarget
			kept = append(kept, arc)
		}
		newStates[i].arcs = kept
	}

	newStart := NoStateId
	if f.start != NoStateId && int(f.start) < len(mapping) {
		newStart = mapping[f.start]
	}

	f.states = newStates
	f.start = newStart
	f.bump()
	return nil
}
