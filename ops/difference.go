package ops

import (
	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// collectLabels gathers every distinct ilabel used by any arc of f.
func collectLabels[W semiring.Weight[W]](f *fst.MutableFst[W], into map[fst.Label]bool) {
	for s := fst.StateId(0); int(s) < f.NumStates(); s++ {
		for _, arc := range f.Arcs(s) {
			into[arc.ILabel] = true
		}
	}
}

// Complement builds the complement of b over the alphabet formed by the
// union of labels used in a and b: a fresh sink state that
// self-loops on every collected label; for every (state, label) missing a
// transition in b, an arc to the sink with weight One; and every final/
// non-final weight swapped (non-final states become final with weight
// One, final states become non-final).
func Complement[W semiring.Weight[W]](a, b *fst.MutableFst[W]) *fst.MutableFst[W] {
	var one, zero W
	one = one.One()
	zero = zero.Zero()

	labels := map[fst.Label]bool{}
	collectLabels(a, labels)
	collectLabels(b, labels)

	out := b.Clone()
	sink := out.AddState()
	for l := range labels {
		if l == fst.Epsilon {
			continue
		}
		_ = out.AddArc(sink, fst.Arc[W]{ILabel: l, OLabel: l, Weight: one, NextState: sink})
	}

	for s := fst.StateId(0); int(s) < b.NumStates(); s++ {
		have := map[fst.Label]bool{}
		for _, arc := range out.Arcs(fst.StateId(s)) {
			have[arc.ILabel] = true
		}
		for l := range labels {
			if l == fst.Epsilon || have[l] {
				continue
			}
			_ = out.AddArc(fst.StateId(s), fst.Arc[W]{ILabel: l, OLabel: l, Weight: one, NextState: sink})
		}
	}

	for s := fst.StateId(0); int(s) < out.NumStates(); s++ {
		if out.IsFinal(s) {
			_ = out.SetFinal(s, zero)
		} else {
			_ = out.SetFinal(s, one)
		}
	}

	return out
}

// Difference computes A ∩ complement(B). b is expected by
// the algorithm to already be a deterministic, epsilon-free acceptor; this
// precondition is not validated here.
func Difference[W semiring.Weight[W]](a, b *fst.MutableFst[W]) *fst.MutableFst[W] {
	comp := Complement(a, b)
	return Compose(a, comp)
}
