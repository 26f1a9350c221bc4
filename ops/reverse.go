package ops

import (
	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// Reverse builds the reversal of f: a fresh super-start with epsilon arcs
// to every original final state weighted by reverse(finalWeight), every arc
// s—ℓ/w→t flipped to t—ℓ/reverse(w)→s, and the original start becoming the
// sole final state with weight One. Reverse is an
// involution on language: language(Reverse(Reverse(f))) = language(f).
func Reverse[W semiring.Weight[W]](f *fst.MutableFst[W]) *fst.MutableFst[W] {
	out := fst.New[W]()
	out.AddStates(f.NumStates())

	var one W
	one = one.One()

	for s := fst.StateId(0); int(s) < f.NumStates(); s++ {
		for _, arc := range f.Arcs(s) {
			_ = out.AddArc(arc.NextState, fst.Arc[W]{
				ILabel: arc.ILabel, OLabel: arc.OLabel,
				Weight:    arc.Weight.Reverse(),
				NextState: s,
			})
		}
	}

	super := out.AddState()
	_ = out.SetStart(super)
	for s := fst.StateId(0); int(s) < f.NumStates(); s++ {
		if !f.IsFinal(s) {
			continue
		}
		fw, _ := f.FinalWeight(s)
		_ = out.AddArc(super, fst.Arc[W]{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: fw.Reverse(), NextState: s})
	}

	if f.Start() != fst.NoStateId {
		_ = out.SetFinal(f.Start(), one)
	}

	return out
}
