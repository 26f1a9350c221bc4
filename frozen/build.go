package frozen

import (
	"encoding/binary"
	"sort"

	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// FromMutable builds a Frozen FST from a Mutable FST: sorts a working copy
// of each state's arcs by ilabel, computes the total arc count, allocates
// one contiguous buffer, and writes the header, per-state records, and arc
// records in state order. The source Mutable
// FST is not modified (arcs are sorted into a local copy, not in place).
func FromMutable[W semiring.Weight[W]](m *fst.MutableFst[W], kind semiring.Kind) *FrozenFst[W] {
	numStates := m.NumStates()
	numArcs := m.TotalArcs()

	bufLen := headerSize + numStates*stateSize + numArcs*arcSize
	buf := make([]byte, bufLen)

	start := uint32(NoState)
	if s := m.Start(); s != fst.NoStateId {
		start = uint32(s)
	}

	writeHeader(buf, kind, uint32(numStates), uint32(numArcs), start)

	arcCursor := uint32(0)
	for s := 0; s < numStates; s++ {
		arcs := append([]fst.Arc[W](nil), m.Arcs(fst.StateId(s))...)
		sortArcsByIlabel(arcs)

		finalW, _ := m.FinalWeight(fst.StateId(s))
		writeStateRecord(buf, s, arcCursor, uint32(len(arcs)), finalW.Bits())

		for _, a := range arcs {
			writeArcRecord(buf, numStates, int(arcCursor), a.ILabel, a.OLabel, a.Weight.Bits(), uint32(a.NextState))
			arcCursor++
		}
	}

	return &FrozenFst[W]{
		buf:       buf,
		kind:      kind,
		numStates: uint32(numStates),
		numArcs:   uint32(numArcs),
		start:     start,
		decode:    decoderFor[W](kind),
	}
}

func sortArcsByIlabel[W semiring.Weight[W]](arcs []fst.Arc[W]) {
	// Stable sort: equal ilabels retain their relative insertion order.
	sort.SliceStable(arcs, func(i, j int) bool { return arcs[i].ILabel < arcs[j].ILabel })
}

func writeHeader(buf []byte, kind semiring.Kind, numStates, numArcs, start uint32) {
	binary.LittleEndian.PutUint32(buf[0:4], Magic)
	binary.LittleEndian.PutUint16(buf[4:6], Version)
	buf[6] = byte(kind)
	buf[7] = 0 // flags, reserved
	binary.LittleEndian.PutUint32(buf[8:12], numStates)
	binary.LittleEndian.PutUint32(buf[12:16], numArcs)
	binary.LittleEndian.PutUint32(buf[16:20], start)
	binary.LittleEndian.PutUint32(buf[20:24], 0) // padding
}

func writeStateRecord(buf []byte, s int, arcOffset, numArcs uint32, finalBits uint64) {
	off := headerSize + s*stateSize
	binary.LittleEndian.PutUint32(buf[off:off+4], arcOffset)
	binary.LittleEndian.PutUint32(buf[off+4:off+8], numArcs)
	binary.LittleEndian.PutUint64(buf[off+8:off+16], finalBits)
}

func writeArcRecord(buf []byte, numStates, arcIdx int, ilabel, olabel uint32, weightBits uint64, next uint32) {
	off := headerSize + numStates*stateSize + arcIdx*arcSize
	binary.LittleEndian.PutUint32(buf[off:off+4], ilabel)
	binary.LittleEndian.PutUint32(buf[off+4:off+8], olabel)
	binary.LittleEndian.PutUint64(buf[off+8:off+16], weightBits)
	binary.LittleEndian.PutUint32(buf[off+16:off+20], next)
}

// decoderFor builds the bits->W decode closure used by every read path.
// FromBits ignores its receiver by contract, so the type
// parameter's zero value is a sufficient receiver.
func decoderFor[W semiring.Weight[W]](kind semiring.Kind) func(uint64) W {
	var zero W
	return func(bits uint64) W { return zero.FromBits(bits) }
}
