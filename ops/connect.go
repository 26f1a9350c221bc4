package ops

import (
	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// Connect returns a fresh FST containing only the states of f that are
// both accessible (reachable from the start via forward BFS) and
// coaccessible (can reach some final state via backward BFS over the
// reversed arc graph). Surviving states are renumbered
// contiguously in their original relative order via
// MutableFst.RemapStates. f is not mutated.
func Connect[W semiring.Weight[W]](f *fst.MutableFst[W]) *fst.MutableFst[W] {
	n := f.NumStates()
	accessible := make([]bool, n)
	if f.Start() != fst.NoStateId {
		queue := []fst.StateId{f.Start()}
		accessible[f.Start()] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, arc := range f.Arcs(u) {
				if !accessible[arc.NextState] {
					accessible[arc.NextState] = true
					queue = append(queue, arc.NextState)
				}
			}
		}
	}

	// Reverse adjacency for the backward coaccessibility pass.
	rev := make([][]fst.StateId, n)
	for s := fst.StateId(0); int(s) < n; s++ {
		for _, arc := range f.Arcs(s) {
			rev[arc.NextState] = append(rev[arc.NextState], s)
		}
	}

	coaccessible := make([]bool, n)
	var queue []fst.StateId
	for s := fst.StateId(0); int(s) < n; s++ {
		if f.IsFinal(s) {
			coaccessible[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, p := range rev[u] {
			if !coaccessible[p] {
				coaccessible[p] = true
				queue = append(queue, p)
			}
		}
	}

	mapping := make([]fst.StateId, n)
	next := fst.StateId(0)
	for s := 0; s < n; s++ {
		if accessible[s] && coaccessible[s] {
			mapping[s] = next
			next++
		} else {
			mapping[s] = fst.NoStateId
		}
	}

	out := f.Clone()
	_ = out.RemapStates(mapping)
	return out
}
