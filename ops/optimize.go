package ops

import (
	"math"

	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// IsTransducer reports whether any arc of f carries ilabel != olabel.
// Acceptors (ilabel == olabel on every arc) need no encode/decode step
// around determinize/minimize, since subset construction is only defined
// for acceptors.
func IsTransducer[W semiring.Weight[W]](f *fst.MutableFst[W]) bool {
	for s := fst.StateId(0); int(s) < f.NumStates(); s++ {
		for _, arc := range f.Arcs(s) {
			if arc.ILabel != arc.OLabel {
				return true
			}
		}
	}
	return false
}

// encodeTable assigns a fresh dense label to each unique (ilabel, olabel)
// pair seen across f's arcs, and records the reverse mapping for decode.
type encodeTable struct {
	codeOf map[[2]fst.Label]fst.Label
	pairOf [][2]fst.Label
}

func newEncodeTable() *encodeTable {
	return &encodeTable{codeOf: map[[2]fst.Label]fst.Label{}}
}

// code returns the fresh label for (il, ol), allocating one on first sight.
// Codes start at 1 (0 stays reserved for epsilon, which never reaches this
// path since the optimize pipeline only encodes after rm_epsilon). Returns
// ErrLabelOverflow if every label value below the sentinel is exhausted.
func (t *encodeTable) code(il, ol fst.Label) (fst.Label, error) {
	key := [2]fst.Label{il, ol}
	if c, ok := t.codeOf[key]; ok {
		return c, nil
	}
	if len(t.pairOf)+1 >= int(math.MaxUint32)-1 {
		return 0, ErrLabelOverflow
	}
	c := fst.Label(len(t.pairOf) + 1)
	t.codeOf[key] = c
	t.pairOf = append(t.pairOf, key)
	return c, nil
}

// Encode rewrites a fresh copy of f into an acceptor: every arc's
// (ilabel, olabel) pair is replaced by a single dense code label on both
// tapes. Final weights and state/arc topology are otherwise unchanged. The
// returned table records the reverse mapping for Decode.
func Encode[W semiring.Weight[W]](f *fst.MutableFst[W]) (*fst.MutableFst[W], *encodeTable, error) {
	out := f.Clone()
	table := newEncodeTable()
	for s := fst.StateId(0); int(s) < out.NumStates(); s++ {
		arcs := out.Arcs(s)
		for i := range arcs {
			code, err := table.code(arcs[i].ILabel, arcs[i].OLabel)
			if err != nil {
				return nil, nil, err
			}
			arcs[i].ILabel = code
			arcs[i].OLabel = code
		}
	}
	return out, table, nil
}

// Decode rewrites a fresh copy of f, replacing each code label produced by
// Encode with its original (ilabel, olabel) pair. Arcs carrying a label
// the table never allocated (e.g. an untouched epsilon) pass through
// unchanged.
func Decode[W semiring.Weight[W]](f *fst.MutableFst[W], table *encodeTable) *fst.MutableFst[W] {
	out := f.Clone()
	for s := fst.StateId(0); int(s) < out.NumStates(); s++ {
		arcs := out.Arcs(s)
		for i := range arcs {
			if arcs[i].ILabel == fst.Epsilon {
				continue
			}
			idx := int(arcs[i].ILabel) - 1
			if idx < 0 || idx >= len(table.pairOf) {
				continue
			}
			pair := table.pairOf[idx]
			arcs[i].ILabel, arcs[i].OLabel = pair[0], pair[1]
		}
	}
	return out
}

// Optimize runs the canonical cleanup pipeline: rm_epsilon, then — only if
// f is a transducer — encode into an acceptor, determinize, minimize,
// then — only if encoded — decode back into a transducer, finally connect
// (trim inaccessible/non-coaccessible states). Returns a fresh FST; f is
// not mutated.
func Optimize[W semiring.Weight[W]](f *fst.MutableFst[W]) (*fst.MutableFst[W], error) {
	noEps := RmEpsilon(f)

	transducer := IsTransducer(noEps)
	working := noEps
	var table *encodeTable
	if transducer {
		enc, t, err := Encode(noEps)
		if err != nil {
			return nil, err
		}
		working, table = enc, t
	}

	det, err := Determinize(working)
	if err != nil {
		return nil, err
	}
	min, err := Minimize(det)
	if err != nil {
		return nil, err
	}

	result := min
	if transducer {
		result = Decode(min, table)
	}

	return Connect(result), nil
}
