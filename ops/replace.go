package ops

import (
	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// color values for the DFS cycle check in Replace's dependency graph.
const (
	white = 0
	gray  = 1
	black = 2
)

// hasLabel reports whether any arc of f carries the given ilabel.
func hasLabel[W semiring.Weight[W]](f *fst.MutableFst[W], l fst.Label) bool {
	for s := fst.StateId(0); int(s) < f.NumStates(); s++ {
		for _, arc := range f.Arcs(s) {
			if arc.ILabel == l {
				return true
			}
		}
	}
	return false
}

// substituteLabels returns a fresh FST built from f where every arc whose
// ilabel matches a key of labelToSub is replaced by an inline expansion of
// the corresponding sub-FST: the sub's states are offset into the result,
// an epsilon arc (weight One) leads from the replacing arc's source to the
// sub's offset start, and every final state of the sub gets an epsilon arc
// to the original arc's destination weighted (sub's final weight) times
// (original arc's weight). Non-matching arcs pass through unchanged.
func substituteLabels[W semiring.Weight[W]](f *fst.MutableFst[W], labelToSub map[fst.Label]*fst.MutableFst[W]) *fst.MutableFst[W] {
	out := fst.New[W]()
	out.AddStates(f.NumStates())
	_ = out.SetStart(f.Start())

	var one W
	one = one.One()

	for s := fst.StateId(0); int(s) < f.NumStates(); s++ {
		fw, _ := f.FinalWeight(s)
		_ = out.SetFinal(s, fw)

		for _, arc := range f.Arcs(s) {
			sub, ok := labelToSub[arc.ILabel]
			if !ok {
				_ = out.AddArc(s, arc)
				continue
			}

			offset := appendStates(out, sub)
			if sub.Start() != fst.NoStateId {
				_ = out.AddArc(s, fst.Arc[W]{
					ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: one,
					NextState: offset + sub.Start(),
				})
			}
			for t := fst.StateId(0); int(t) < sub.NumStates(); t++ {
				if !sub.IsFinal(t) {
					continue
				}
				subFw, _ := sub.FinalWeight(t)
				_ = out.AddArc(offset+t, fst.Arc[W]{
					ILabel: fst.Epsilon, OLabel: fst.Epsilon,
					Weight:    subFw.Times(arc.Weight),
					NextState: arc.NextState,
				})
			}
		}
	}

	return out
}

// Replace expands every arc of root whose ilabel equals one of labels[i]
// into an inline copy of subs[i], recursively resolving references among
// the subs themselves first (leaves before parents, via a
// topological pass over the dependency graph). Sub i depends on
// sub j if any of i's arcs carries ilabel == labels[j]. A
// dependency cycle among the subs returns ErrCyclicDependency before any
// expansion happens, detected by DFS white/gray/black coloring (a gray
// node reached again is a back edge).
//
// len(labels) must equal len(subs); Replace does not validate this and
// relies on the caller (the boundary layer validates array lengths
// before dispatching).
func Replace[W semiring.Weight[W]](root *fst.MutableFst[W], labels []fst.Label, subs []*fst.MutableFst[W]) (*fst.MutableFst[W], error) {
	n := len(subs)
	color := make([]int, n)
	var order []int

	var visit func(i int) error
	visit = func(i int) error {
		color[i] = gray
		for j, lbl := range labels {
			if !hasLabel(subs[i], lbl) {
				continue
			}
			switch color[j] {
			case gray:
				return ErrCyclicDependency
			case white:
				if err := visit(j); err != nil {
					return err
				}
			}
		}
		color[i] = black
		order = append(order, i)
		return nil
	}

	for i := 0; i < n; i++ {
		if color[i] == white {
			if err := visit(i); err != nil {
				return nil, err
			}
		}
	}

	resolved := make([]*fst.MutableFst[W], n)
	for _, i := range order {
		labelToSub := map[fst.Label]*fst.MutableFst[W]{}
		for j, lbl := range labels {
			if resolved[j] != nil {
				labelToSub[lbl] = resolved[j]
			}
		}
		resolved[i] = substituteLabels(subs[i], labelToSub)
	}

	final := map[fst.Label]*fst.MutableFst[W]{}
	for j, lbl := range labels {
		final[lbl] = resolved[j]
	}
	return substituteLabels(root, final), nil
}
