package ops

import (
	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// RmEpsilon returns a fresh FST with every epsilon arc (both labels 0)
// removed, preserving language and weights. For each state s
// it computes the epsilon closure — every state reachable from s via
// epsilon-only arcs, together with the multiplicative weight accumulated
// getting there — and rewrites s's final weight and non-epsilon outgoing
// arcs to route directly through the closure. The state set and start state
// are unchanged; only arcs and final weights differ.
func RmEpsilon[W semiring.Weight[W]](f *fst.MutableFst[W]) *fst.MutableFst[W] {
	out := fst.New[W]()
	out.AddStates(f.NumStates())
	_ = out.SetStart(f.Start())

	for s := fst.StateId(0); int(s) < f.NumStates(); s++ {
		closure := epsilonClosure(f, s)

		fw, _ := f.FinalWeight(s)
		for t, ws := range closure {
			if t == s {
				continue
			}
			tw, _ := f.FinalWeight(t)
			if !tw.IsZero() {
				fw = fw.Plus(ws.Times(tw))
			}
		}
		_ = out.SetFinal(s, fw)

		for t, ws := range closure {
			for _, arc := range f.Arcs(t) {
				if arc.IsEpsilon() {
					continue
				}
				_ = out.AddArc(s, fst.Arc[W]{
					ILabel: arc.ILabel, OLabel: arc.OLabel,
					Weight:    ws.Times(arc.Weight),
					NextState: arc.NextState,
				})
			}
		}
	}

	return out
}

// epsilonClosure returns every state reachable from s via epsilon-only
// arcs (including s itself, with weight One), mapped to the multiplicative
// weight of the best (⊕-summed) path from s to that state. Each state is
// enqueued once, so weight updates discovered after a state's successors
// have already been expanded don't repropagate; this is exact for acyclic
// epsilon subgraphs and an approximation under epsilon cycles.

func epsilonClosure[W semiring.Weight[W]](f *fst.MutableFst[W], s fst.StateId) map[fst.StateId]W {
	var one W
	one = one.One()

	closure := map[fst.StateId]W{s: one}
	queue := []fst.StateId{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		wu := closure[u]
		for _, arc := range f.Arcs(u) {
			if !arc.IsEpsilon() {
				continue
			}
			cand := wu.Times(arc.Weight)
			if existing, ok := closure[arc.NextState]; ok {
				closure[arc.NextState] = existing.Plus(cand)
			} else {
				closure[arc.NextState] = cand
				queue = append(queue, arc.NextState)
			}
		}
	}
	return closure
}
