package fst

import "github.com/ontypehq/libfst/semiring"

// AddState appends a fresh state with final weight Zero and no arcs,
// returning its id. Complexity: O(1) amortized.
func (f *MutableFst[W]) AddState() StateId {
	f.states = append(f.states, state[W]{final: zeroOf[W]()})
	f.bump()
	return StateId(len(f.states) - 1)
}

// AddStates bulk-allocates n fresh states and returns the id of the first
// one added (ids are contiguous: first, first+1, ..., first+n-1).
// Complexity: O(n).
func (f *MutableFst[W]) AddStates(n int) StateId {
	first := StateId(len(f.states))
	for i := 0; i < n; i++ {
		f.states = append(f.states, state[W]{final: zeroOf[W]()})
	}
	f.bump()
	return first
}

// SetStart designates s as the start state. Passing NoStateId clears the
// start. Returns ErrStateNotFound if s is neither NoStateId nor a valid
// state id.
func (f *MutableFst[W]) SetStart(s StateId) error {
	if s != NoStateId && !f.hasState(s) {
		return ErrStateNotFound
	}
	f.start = s
	f.bump()
	return nil
}

// Start returns the current start state, or NoStateId if unset.
func (f *MutableFst[W]) Start() StateId { return f.start }

// SetFinal sets the final weight of state s. A state is final iff its
// final weight != Zero. Returns ErrStateNotFound if s does
// not exist.
func (f *MutableFst[W]) SetFinal(s StateId, w W) error {
	if !f.hasState(s) {
		return ErrStateNotFound
	}
	f.states[s].final = w
	f.bump()
	return nil
}

// FinalWeight returns the final weight of state s, or the semiring zero
// (plus ErrStateNotFound) if s does not exist.
func (f *MutableFst[W]) FinalWeight(s StateId) (W, error) {
	if !f.hasState(s) {
		return zeroOf[W](), ErrStateNotFound
	}
	return f.states[s].final, nil
}

// IsFinal reports whether state s has a non-zero final weight.
func (f *MutableFst[W]) IsFinal(s StateId) bool {
	if !f.hasState(s) {
		return false
	}
	return !f.states[s].final.IsZero()
}

// AddArc appends arc to state s's outgoing arc list, preserving insertion
// order unless/until the FST is explicitly sorted. Returns ErrStateNotFound
// if either s or arc.NextState does not exist, preserving the invariant
// that every arc's nextstate refers to a state currently present.
func (f *MutableFst[W]) AddArc(s StateId, arc Arc[W]) error {
	if !f.hasState(s) {
		return ErrStateNotFound
	}
	if !f.hasState(arc.NextState) {
		return ErrStateNotFound
	}
	f.states[s].arcs = append(f.states[s].arcs, arc)
	f.bump()
	return nil
}

// DeleteArcs removes all outgoing arcs of state s, leaving the state (and
// its final weight) otherwise intact. Returns ErrStateNotFound if s does
// not exist.
func (f *MutableFst[W]) DeleteArcs(s StateId) error {
	if !f.hasState(s) {
		return ErrStateNotFound
	}
	f.states[s].arcs = nil
	f.bump()
	return nil
}

// DeleteStates clears the entire FST: no states, no start, fresh arcs.
// The generation counter still advances (it is a structural mutation).
func (f *MutableFst[W]) DeleteStates() {
	f.states = nil
	f.start = NoStateId
	f.bump()
}

// NumStates returns the number of states currently in the FST.
func (f *MutableFst[W]) NumStates() int { return len(f.states) }

// NumArcs returns the number of outgoing arcs of state s, or 0 if s does
// not exist.
func (f *MutableFst[W]) NumArcs(s StateId) int {
	if !f.hasState(s) {
		return 0
	}
	return len(f.states[s].arcs)
}

// TotalArcs returns the total number of arcs across all states.
func (f *MutableFst[W]) TotalArcs() int {
	total := 0
	for i := range f.states {
		total += len(f.states[i].arcs)
	}
	return total
}

// Arcs returns a contiguous view of state s's outgoing arcs, in current
// insertion/sort order. The returned slice aliases internal storage: a
// subsequent structural mutation (add/delete of state or arc, sort, final-
// weight change, start change, or remap) may relocate it — see
// MutableFst.Generation for the invalidation-detection primitive.
func (f *MutableFst[W]) Arcs(s StateId) []Arc[W] {
	if !f.hasState(s) {
		return nil
	}
	return f.states[s].arcs
}

func (f *MutableFst[W]) hasState(s StateId) bool {
	return s != NoStateId && int(s) < len(f.states)
}

// arcLess is the canonical arc sort key: lexicographic (ilabel, olabel,
// weight bits, nextstate) — "State" invariant.
func arcLess[W semiring.Weight[W]](a, b Arc[W]) bool {
	if a.ILabel != b.ILabel {
		return a.ILabel < b.ILabel
	}
	if a.OLabel != b.OLabel {
		return a.OLabel < b.OLabel
	}
	ab, bb := a.Weight.Bits(), b.Weight.Bits()
	if ab != bb {
		return ab < bb
	}
	return a.NextState < b.NextState
}
