package ops

import (
	"encoding/binary"
	"sort"

	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// Minimize merges states of f whose futures are indistinguishable, via
// Hopcroft-style signature refinement. f must be
// deterministic and epsilon-free; Minimize does not itself verify
// determinism (callers run Determinize first), but does reject epsilon
// arcs via ErrNotEpsilonFree since the signature would otherwise be
// ambiguous. Returns a fresh FST; f is not mutated.
func Minimize[W semiring.Weight[W]](f *fst.MutableFst[W]) (*fst.MutableFst[W], error) {
	if hasEpsilon(f) {
		return nil, ErrNotEpsilonFree
	}

	n := f.NumStates()
	sorted := make([][]fst.Arc[W], n)
	for s := 0; s < n; s++ {
		arcs := append([]fst.Arc[W]{}, f.Arcs(fst.StateId(s))...)
		sort.Slice(arcs, func(i, j int) bool { return arcs[i].ILabel < arcs[j].ILabel })
		sorted[s] = arcs
	}

	class := make([]int, n)
	for s := 0; s < n; s++ {
		fw, _ := f.FinalWeight(fst.StateId(s))
		class[s] = 0
		if !fw.IsZero() {
			class[s] = 1
		}
	}

	for {
		sigs := make([]string, n)
		for s := 0; s < n; s++ {
			fw, _ := f.FinalWeight(fst.StateId(s))
			buf := make([]byte, 0, 8+len(sorted[s])*20)
			var fwb [8]byte
			binary.LittleEndian.PutUint64(fwb[:], fw.Bits())
			buf = append(buf, fwb[:]...)
			for _, arc := range sorted[s] {
				var rec [20]byte
				binary.LittleEndian.PutUint32(rec[0:], arc.ILabel)
				binary.LittleEndian.PutUint32(rec[4:], arc.OLabel)
				binary.LittleEndian.PutUint64(rec[8:], arc.Weight.Bits())
				binary.LittleEndian.PutUint32(rec[16:], uint32(class[arc.NextState]))
				buf = append(buf, rec[:]...)
			}
			sigs[s] = string(buf)
		}

		newClass, numClasses := renumber(sigs)
		changed := false
		for s := 0; s < n; s++ {
			if newClass[s] != class[s] {
				changed = true
			}
		}
		class = newClass
		if !changed || numClasses == n {
			break
		}
	}

	rep := make([]int, 0)
	repOf := map[int]int{}
	mapping := make([]fst.StateId, n)
	for s := 0; s < n; s++ {
		c := class[s]
		idx, ok := repOf[c]
		if !ok {
			idx = len(rep)
			repOf[c] = idx
			rep = append(rep, s)
		}
		mapping[s] = fst.StateId(idx)
	}

	clone := f.Clone()
	if err := clone.RemapStates(mapping); err != nil {
		return nil, err
	}
	return clone, nil
}

// renumber assigns a dense 0..k-1 class id to each distinct signature
// string, preserving first-occurrence order for determinism.
func renumber(sigs []string) ([]int, int) {
	ids := map[string]int{}
	out := make([]int, len(sigs))
	for i, sig := range sigs {
		id, ok := ids[sig]
		if !ok {
			id = len(ids)
			ids[sig] = id
		}
		out[i] = id
	}
	return out, len(ids)
}
