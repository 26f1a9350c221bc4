package frozen

import (
	"encoding/binary"

	"github.com/ontypehq/libfst/semiring"
)

// FrozenFst is an immutable contiguous snapshot of an FST's states and
// arcs. buf holds the exact on-disk bytes (header + state table + arc table);
// every query is computed by indexing into buf, so construction from an
// already-validated buffer (FromBytes) never copies.
type FrozenFst[W semiring.Weight[W]] struct {
	buf       []byte
	kind      semiring.Kind
	numStates uint32
	numArcs   uint32
	start     uint32
	decode    func(uint64) W
}

// NumStates returns the number of states in the snapshot.
func (f *FrozenFst[W]) NumStates() int { return int(f.numStates) }

// NumArcsTotal returns the total number of arcs in the snapshot.
func (f *FrozenFst[W]) NumArcsTotal() int { return int(f.numArcs) }

// Start returns the start state, or NoState if the snapshot has none.
func (f *FrozenFst[W]) Start() uint32 { return f.start }

// Kind returns the weight-type discriminator the snapshot was built with.
func (f *FrozenFst[W]) Kind() semiring.Kind { return f.kind }

// Bytes returns the snapshot's exact wire bytes. The returned slice
// aliases internal storage and must not be mutated by the caller.
func (f *FrozenFst[W]) Bytes() []byte { return f.buf }

func (f *FrozenFst[W]) stateRecordOffset(s uint32) int {
	return headerSize + int(s)*stateSize
}

func (f *FrozenFst[W]) arcTableOffset() int {
	return headerSize + int(f.numStates)*stateSize
}

func (f *FrozenFst[W]) arcRecordOffset(idx uint32) int {
	return f.arcTableOffset() + int(idx)*arcSize
}

// stateArcRange returns the [begin, end) arc-table indices for state s.
func (f *FrozenFst[W]) stateArcRange(s uint32) (begin, end uint32) {
	off := f.stateRecordOffset(s)
	begin = binary.LittleEndian.Uint32(f.buf[off : off+4])
	n := binary.LittleEndian.Uint32(f.buf[off+4 : off+8])
	return begin, begin + n
}

// FinalWeight returns the final weight of state s. Callers must ensure
// s < NumStates(); s is not checked, so an out-of-range s panics when its
// offset runs past the buffer and otherwise decodes bytes that are not a
// state record, matching the Frozen FST's
// no-bounds-checking-on-the-hot-path design (contrast fst.MutableFst,
// which validates and returns ErrStateNotFound).
func (f *FrozenFst[W]) FinalWeight(s uint32) W {
	off := f.stateRecordOffset(s) + 8
	bits := binary.LittleEndian.Uint64(f.buf[off : off+8])
	return f.decode(bits)
}

// IsFinal reports whether state s has a non-zero final weight.
func (f *FrozenFst[W]) IsFinal(s uint32) bool {
	return !f.FinalWeight(s).IsZero()
}

// NumArcs returns the number of outgoing arcs of state s.
func (f *FrozenFst[W]) NumArcs(s uint32) int {
	begin, end := f.stateArcRange(s)
	return int(end - begin)
}

// ArcAt returns the idx'th outgoing arc of state s (0-indexed within that
// state's contiguous sub-range of the arc table).
func (f *FrozenFst[W]) ArcAt(s uint32, idx int) FrozenArc[W] {
	begin, _ := f.stateArcRange(s)
	off := f.arcRecordOffset(begin + uint32(idx))
	return f.decodeArc(off)
}

func (f *FrozenFst[W]) decodeArc(off int) FrozenArc[W] {
	ilabel := binary.LittleEndian.Uint32(f.buf[off : off+4])
	olabel := binary.LittleEndian.Uint32(f.buf[off+4 : off+8])
	bits := binary.LittleEndian.Uint64(f.buf[off+8 : off+16])
	next := binary.LittleEndian.Uint32(f.buf[off+16 : off+20])
	return FrozenArc[W]{ILabel: ilabel, OLabel: olabel, Weight: f.decode(bits), NextState: next}
}

// Arcs materializes state s's outgoing arcs as a slice. Unlike ArcAt this
// allocates; prefer FindArc/ArcsByIlabel/ArcAt on hot composition paths.
func (f *FrozenFst[W]) Arcs(s uint32) []FrozenArc[W] {
	begin, end := f.stateArcRange(s)
	out := make([]FrozenArc[W], 0, end-begin)
	for i := begin; i < end; i++ {
		out = append(out, f.decodeArc(f.arcRecordOffset(i)))
	}
	return out
}

// FrozenArc is the decoded form of an arc record.
type FrozenArc[W semiring.Weight[W]] struct {
	ILabel    uint32
	OLabel    uint32
	Weight    W
	NextState uint32
}

func (f *FrozenFst[W]) arcIlabelAt(idx uint32) uint32 {
	off := f.arcRecordOffset(idx) // ilabel is the first field
	return binary.LittleEndian.Uint32(f.buf[off : off+4])
}

// FindArc returns any arc of state s whose ilabel equals ilabel, found by
// binary search over the state's contiguous, ilabel-sorted arc sub-range
//. The second return value is false if no such arc exists.
func (f *FrozenFst[W]) FindArc(s uint32, ilabel uint32) (FrozenArc[W], bool) {
	begin, end := f.stateArcRange(s)
	lo, hi := begin, end
	for lo < hi {
		mid := lo + (hi-lo)/2
		l := f.arcIlabelAt(mid)
		switch {
		case l == ilabel:
			return f.decodeArc(f.arcRecordOffset(mid)), true
		case l < ilabel:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return FrozenArc[W]{}, false
}

// ArcsByIlabel returns the contiguous sub-range of state s's arcs whose
// ilabel equals ilabel, found by two binary searches (lower and upper
// bound). This lets composition avoid scanning a state's
// full arc list when only one input label is relevant.
func (f *FrozenFst[W]) ArcsByIlabel(s uint32, ilabel uint32) []FrozenArc[W] {
	begin, end := f.stateArcRange(s)
	lo := f.lowerBound(begin, end, ilabel)
	hi := f.upperBound(lo, end, ilabel)
	out := make([]FrozenArc[W], 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, f.decodeArc(f.arcRecordOffset(i)))
	}
	return out
}

func (f *FrozenFst[W]) lowerBound(lo, hi, ilabel uint32) uint32 {
	for lo < hi {
		mid := lo + (hi-lo)/2
		if f.arcIlabelAt(mid) < ilabel {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func (f *FrozenFst[W]) upperBound(lo, hi, ilabel uint32) uint32 {
	for lo < hi {
		mid := lo + (hi-lo)/2
		if f.arcIlabelAt(mid) <= ilabel {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
