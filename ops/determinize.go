package ops

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// subsetElem is one member of a weighted-determinization subset: a source
// state paired with its residual weight after factoring out the subset's
// common weight.
type subsetElem[W semiring.Weight[W]] struct {
	state    fst.StateId
	residual W
}

// Determinize runs weighted subset-construction determinization on f, which
// must be epsilon-free (callers run RmEpsilon first); returns
// ErrNotEpsilonFree otherwise. Result states have no two outgoing arcs
// sharing an input label. Transducers are handled correctly only insofar
// as the conventional acceptor algorithm extends: the optimize pipeline
// pre-encodes transducers into acceptors before calling this.
func Determinize[W semiring.Weight[W]](f *fst.MutableFst[W]) (*fst.MutableFst[W], error) {
	if hasEpsilon(f) {
		return nil, ErrNotEpsilonFree
	}
	out := fst.New[W]()
	if f.Start() == fst.NoStateId {
		return out, nil
	}

	var one W
	one = one.One()

	startSubset := canonicalize([]subsetElem[W]{{f.Start(), one}})
	ids := map[string]fst.StateId{}
	subsets := map[string][]subsetElem[W]{}

	startKey := subsetKey(startSubset)
	startId := out.AddState()
	ids[startKey] = startId
	subsets[startKey] = startSubset
	_ = out.SetStart(startId)

	queue := []string{startKey}
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		subset := subsets[key]
		cid := ids[key]

		// Final weight: ⨁ r⊗fw(s) over subset elements with non-zero fw(s).
		var finalW W
		finalW = finalW.Zero()
		haveFinal := false
		for _, elem := range subset {
			fw, _ := f.FinalWeight(elem.state)
			if fw.IsZero() {
				continue
			}
			contrib := elem.residual.Times(fw)
			if !haveFinal {
				finalW = contrib
				haveFinal = true
			} else {
				finalW = finalW.Plus(contrib)
			}
		}
		if haveFinal {
			_ = out.SetFinal(cid, finalW)
		}

		// Collect every input label appearing on any arc in the subset (ilabel
		// 0 included: only arcs with both labels 0 count as epsilon).
		labelSet := map[fst.Label]bool{}
		for _, elem := range subset {
			for _, arc := range f.Arcs(elem.state) {
				labelSet[arc.ILabel] = true
			}
		}
		labels := make([]fst.Label, 0, len(labelSet))
		for l := range labelSet {
			labels = append(labels, l)
		}
		sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

		for _, label := range labels {
			var next []subsetElem[W]
			nextIdx := map[fst.StateId]int{}
			var olabel fst.Label
			haveOlabel := false
			for _, elem := range subset {
				for _, arc := range f.Arcs(elem.state) {
					if arc.ILabel != label {
						continue
					}
					if !haveOlabel {
						olabel = arc.OLabel
						haveOlabel = true
					}
					contrib := elem.residual.Times(arc.Weight)
					if idx, ok := nextIdx[arc.NextState]; ok {
						next[idx].residual = next[idx].residual.Plus(contrib)
					} else {
						nextIdx[arc.NextState] = len(next)
						next = append(next, subsetElem[W]{arc.NextState, contrib})
					}
				}
			}

			canon, common := factorCommon(next)
			nKey := subsetKey(canon)
			nid, ok := ids[nKey]
			if !ok {
				nid = out.AddState()
				ids[nKey] = nid
				subsets[nKey] = canon
				queue = append(queue, nKey)
			}
			_ = out.AddArc(cid, fst.Arc[W]{ILabel: label, OLabel: olabel, Weight: common, NextState: nid})
		}
	}

	return out, nil
}

// canonicalize sorts subset elements ascending by state id, the
// canonicalization required before hashing/keying.
func canonicalize[W semiring.Weight[W]](elems []subsetElem[W]) []subsetElem[W] {
	out := make([]subsetElem[W], len(elems))
	copy(out, elems)
	sort.Slice(out, func(i, j int) bool { return out[i].state < out[j].state })
	return out
}

// factorCommon sorts elems into canonical order, then pulls out their
// shared ⊕-sum as a single common weight on the outgoing arc, leaving each
// element's residual relative to that common factor.
func factorCommon[W semiring.Weight[W]](elems []subsetElem[W]) ([]subsetElem[W], W) {
	canon := canonicalize(elems)
	if len(canon) == 0 {
		var zero W
		return canon, zero.Zero()
	}
	common := canon[0].residual
	for _, e := range canon[1:] {
		common = common.Plus(e.residual)
	}
	out := make([]subsetElem[W], len(canon))
	for i, e := range canon {
		out[i] = subsetElem[W]{state: e.state, residual: subtractCommon(e.residual, common)}
	}
	return out, common
}

// subtractCommon removes the common factor c from residual r. Both
// concrete weight types are float64-valued with Times = addition, so
// "divide by c" is subtraction of the underlying values; implemented via
// Bits/FromFloat64 to stay generic over W without a bespoke inverse method.
func subtractCommon[W semiring.Weight[W]](r, c W) W {
	var zero W
	zero = zero.Zero()
	if c.IsZero() {
		return r
	}
	rv := floatOf(r)
	cv := floatOf(c)
	return zero.FromFloat64(rv - cv)
}

func floatOf[W semiring.Weight[W]](w W) float64 {
	return math.Float64frombits(w.Bits())
}

// subsetKey builds the canonical byte-encoding hash key: 4 bytes state id
// LE + 8 bytes weight bits LE per element.
func subsetKey[W semiring.Weight[W]](elems []subsetElem[W]) string {
	buf := make([]byte, 12*len(elems))
	for i, e := range elems {
		binary.LittleEndian.PutUint32(buf[i*12:], e.state)
		binary.LittleEndian.PutUint64(buf[i*12+4:], e.residual.Bits())
	}
	return string(buf)
}

// hasEpsilon reports whether f contains any epsilon arc.
func hasEpsilon[W semiring.Weight[W]](f *fst.MutableFst[W]) bool {
	for s := fst.StateId(0); int(s) < f.NumStates(); s++ {
		for _, arc := range f.Arcs(s) {
			if arc.IsEpsilon() {
				return true
			}
		}
	}
	return false
}
