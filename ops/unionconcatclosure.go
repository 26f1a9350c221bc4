package ops

import (
	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// appendStates copies every state and arc of src into dst, returning the
// StateId offset applied (dst's state count before the copy). Used by
// Union/Concat to splice a second operand's states in.
func appendStates[W semiring.Weight[W]](dst, src *fst.MutableFst[W]) fst.StateId {
	offset := fst.StateId(dst.NumStates())
	dst.AddStates(src.NumStates())
	for s := fst.StateId(0); int(s) < src.NumStates(); s++ {
		fw, _ := src.FinalWeight(s)
		_ = dst.SetFinal(offset+s, fw)
		for _, arc := range src.Arcs(s) {
			_ = dst.AddArc(offset+s, fst.Arc[W]{
				ILabel: arc.ILabel, OLabel: arc.OLabel, Weight: arc.Weight,
				NextState: offset + arc.NextState,
			})
		}
	}
	return offset
}

// Union mutates a in place into the union of a and b: a fresh super-start
// state with epsilon arcs (weight One) to both original starts. b is not mutated; its states are copied.
func Union[W semiring.Weight[W]](a, b *fst.MutableFst[W]) {
	var one W
	one = one.One()

	oldStartA := a.Start()
	offset := appendStates(a, b)

	super := a.AddState()
	_ = a.SetStart(super)
	if oldStartA != fst.NoStateId {
		_ = a.AddArc(super, fst.Arc[W]{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: one, NextState: oldStartA})
	}
	if b.Start() != fst.NoStateId {
		_ = a.AddArc(super, fst.Arc[W]{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: one, NextState: offset + b.Start()})
	}
}

// Concat mutates a in place into the concatenation of a followed by b: for
// every final state s of a, add an epsilon arc weighted by s's final
// weight to b's (offset) start, then clear s's final weight.
func Concat[W semiring.Weight[W]](a, b *fst.MutableFst[W]) {
	var zero W
	zero = zero.Zero()

	finals := make([]fst.StateId, 0)
	for s := fst.StateId(0); int(s) < a.NumStates(); s++ {
		if a.IsFinal(s) {
			finals = append(finals, s)
		}
	}

	offset := appendStates(a, b)
	bStart := fst.NoStateId
	if b.Start() != fst.NoStateId {
		bStart = offset + b.Start()
	}

	for _, s := range finals {
		fw, _ := a.FinalWeight(s)
		if bStart != fst.NoStateId {
			_ = a.AddArc(s, fst.Arc[W]{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: fw, NextState: bStart})
		}
		_ = a.SetFinal(s, zero)
	}
}

// ClosureKind selects the Kleene-closure variant Closure builds.
type ClosureKind int

const (
	// ClosureStar accepts zero or more repetitions.
	ClosureStar ClosureKind = iota
	// ClosurePlus accepts one or more repetitions.
	ClosurePlus
	// ClosureOptional accepts zero or one repetition.
	ClosureOptional
)

// Closure mutates f in place into the requested Kleene closure: a new
// final super-start state with an epsilon arc to the old start, plus (for
// Star and Plus) epsilon back-arcs from every old final state to the old
// start. Plus omits making the super-start itself final via an identity
// shortcut — ε-back-arcs already let the old start's own finality surface
// one repetition; Optional adds only the super-start, with no back-arcs
//.
func Closure[W semiring.Weight[W]](f *fst.MutableFst[W], kind ClosureKind) {
	var one W
	one = one.One()

	oldStart := f.Start()
	var finals []fst.StateId
	for s := fst.StateId(0); int(s) < f.NumStates(); s++ {
		if f.IsFinal(s) {
			finals = append(finals, s)
		}
	}

	super := f.AddState()
	if kind != ClosurePlus {
		_ = f.SetFinal(super, one)
	}
	_ = f.SetStart(super)
	if oldStart != fst.NoStateId {
		_ = f.AddArc(super, fst.Arc[W]{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: one, NextState: oldStart})
	}

	if kind == ClosureOptional {
		return
	}
	if oldStart == fst.NoStateId {
		return
	}
	for _, t := range finals {
		_ = f.AddArc(t, fst.Arc[W]{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: one, NextState: oldStart})
	}
}

// Repeat mutates f in place into a copy sequence accepting between min and
// max repetitions inclusive: min mandatory copies built via Concat, then
// (max-min) optional copies via Concat+Closure(Optional). Returns
// ErrInvalidRange if min < 0 or max < min.
func Repeat[W semiring.Weight[W]](f *fst.MutableFst[W], min, max int) error {
	if min < 0 || max < min {
		return ErrInvalidRange
	}
	if min == 0 && max == 0 {
		f.DeleteStates()
		s := f.AddState()
		_ = f.SetStart(s)
		var one W
		one = one.One()
		_ = f.SetFinal(s, one)
		return nil
	}

	template := f.Clone()
	mandatory := min
	if mandatory == 0 {
		mandatory = 1
	}

	base := template.Clone()
	for i := 1; i < mandatory; i++ {
		Concat(base, template)
	}
	if min == 0 {
		Closure(base, ClosureOptional)
	}
	for i := 0; i < max-mandatory; i++ {
		opt := template.Clone()
		Closure(opt, ClosureOptional)
		Concat(base, opt)
	}

	*f = *base
	return nil
}
