package fst

import "sort"

// SortArcs sorts state s's outgoing arcs in place by the canonical key
// (ilabel, olabel, weight bits, nextstate). Returns ErrStateNotFound if s
// does not exist. Complexity: O(deg(s) log deg(s)).
func (f *MutableFst[W]) SortArcs(s StateId) error {
	if !f.hasState(s) {
		return ErrStateNotFound
	}
	arcs := f.states[s].arcs
	sort.Slice(arcs, func(i, j int) bool { return arcLess(arcs[i], arcs[j]) })
	f.bump()
	return nil
}

// SortAllArcs sorts every state's outgoing arc list by the canonical key.
// Complexity: O(total arcs · log(max out-degree)).
func (f *MutableFst[W]) SortAllArcs() {
	for i := range f.states {
		arcs := f.states[i].arcs
		sort.Slice(arcs, func(a, b int) bool { return arcLess(arcs[a], arcs[b]) })
	}
	f.bump()
}
