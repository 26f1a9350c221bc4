package ops

import (
	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// prodKey identifies a composition product-state: a pair of operand states
// plus the three-valued epsilon-sequencing filter.
type prodKey struct {
	sa, sb fst.StateId
	phi    uint8
}

// transition is one outgoing edge of the implicit product graph, generated
// on demand by expandProduct. Shared by the eager Compose and the lazy
// ComposeShortestPath so both operate over identical semantics.
type transition[W semiring.Weight[W]] struct {
	ilabel, olabel fst.Label
	weight         W
	nextSA, nextSB fst.StateId
	nextPhi        uint8
}

// expandProduct generates every legal outgoing transition from product
// state (sa, sb, phi), per the epsilon-sequencing filter:
// non-epsilon matches always fire; an A-side epsilon-output arc fires when
// phi != 1; a B-side epsilon-input arc fires when phi != 2; a simultaneous
// epsilon:epsilon match (treated as an ordinary match on label 0) fires
// only when phi == 0.
func expandProduct[W semiring.Weight[W]](a, b *fst.MutableFst[W], sa, sb fst.StateId, phi uint8) []transition[W] {
	var out []transition[W]
	arcsA := a.Arcs(sa)
	arcsB := b.Arcs(sb)

	for _, arcA := range arcsA {
		if arcA.OLabel != fst.Epsilon {
			for _, arcB := range arcsB {
				if arcB.ILabel == arcA.OLabel {
					out = append(out, transition[W]{
						ilabel: arcA.ILabel, olabel: arcB.OLabel,
						weight: arcA.Weight.Times(arcB.Weight),
						nextSA: arcA.NextState, nextSB: arcB.NextState, nextPhi: 0,
					})
				}
			}
			continue
		}
		if phi != 1 {
			nextPhi := phi
			if phi == 0 {
				nextPhi = 2
			}
			out = append(out, transition[W]{
				ilabel: arcA.ILabel, olabel: fst.Epsilon, weight: arcA.Weight,
				nextSA: arcA.NextState, nextSB: sb, nextPhi: nextPhi,
			})
		}
	}

	for _, arcB := range arcsB {
		if arcB.ILabel != fst.Epsilon {
			continue
		}
		if phi != 2 {
			nextPhi := phi
			if phi == 0 {
				nextPhi = 1
			}
			out = append(out, transition[W]{
				ilabel: fst.Epsilon, olabel: arcB.OLabel, weight: arcB.Weight,
				nextSA: sa, nextSB: arcB.NextState, nextPhi: nextPhi,
			})
		}
	}

	if phi == 0 {
		for _, arcA := range arcsA {
			if arcA.OLabel != fst.Epsilon {
				continue
			}
			for _, arcB := range arcsB {
				if arcB.ILabel != fst.Epsilon {
					continue
				}
				out = append(out, transition[W]{
					ilabel: arcA.ILabel, olabel: arcB.OLabel,
					weight: arcA.Weight.Times(arcB.Weight),
					nextSA: arcA.NextState, nextSB: arcB.NextState, nextPhi: 0,
				})
			}
		}
	}

	return out
}

// Compose builds C relating x to z iff a relates x to some y and b relates
// y to z, exploring the full reachable product graph eagerly. Returns an
// empty FST (no states, no start) if either operand has no start state.
func Compose[W semiring.Weight[W]](a, b *fst.MutableFst[W]) *fst.MutableFst[W] {
	c := fst.New[W]()
	if a.Start() == fst.NoStateId || b.Start() == fst.NoStateId {
		return c
	}

	ids := map[prodKey]fst.StateId{}
	startKey := prodKey{a.Start(), b.Start(), 0}
	startId := c.AddState()
	ids[startKey] = startId
	_ = c.SetStart(startId)

	queue := []prodKey{startKey}
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		cid := ids[key]

		if a.IsFinal(key.sa) && b.IsFinal(key.sb) {
			fwA, _ := a.FinalWeight(key.sa)
			fwB, _ := b.FinalWeight(key.sb)
			_ = c.SetFinal(cid, fwA.Times(fwB))
		}

		for _, t := range expandProduct(a, b, key.sa, key.sb, key.phi) {
			nextKey := prodKey{t.nextSA, t.nextSB, t.nextPhi}
			nid, ok := ids[nextKey]
			if !ok {
				nid = c.AddState()
				ids[nextKey] = nid
				queue = append(queue, nextKey)
			}
			_ = c.AddArc(cid, fst.Arc[W]{ILabel: t.ilabel, OLabel: t.olabel, Weight: t.weight, NextState: nid})
		}
	}

	return c
}
