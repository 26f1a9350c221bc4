package boundary

import (
	"io"

	"github.com/ontypehq/libfst/binio"
	"github.com/ontypehq/libfst/frozen"
	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/handle"
	"github.com/ontypehq/libfst/ops"
	"github.com/ontypehq/libfst/semiring"
	"github.com/ontypehq/libfst/stringfst"
	"github.com/ontypehq/libfst/textio"
)

// Weight is the concrete semiring this surface is instantiated over. See
// the package doc for why it is fixed rather than generic.
type Weight = semiring.TropicalWeight

// Status mirrors the documented FstError enum. Every call that doesn't
// hand back a fresh handle returns one of these in place of an ops/fst/
// frozen/handle package error, so a caller at the boundary never has to
// know about Go error values.
type Status int

const (
	StatusOK           Status = 0
	StatusOOM          Status = 1
	StatusInvalidArg   Status = 2
	StatusInvalidState Status = 3
	StatusIOError      Status = 4
)

// mutable and frozenT are the two process-wide object tables the rest of
// this surface dispatches through. Kept as unexported package vars rather
// than threaded through every call, matching the documented ABI's implicit
// global-registry model (a caller never sees a table, only handles).
var (
	mutable = handle.New[*fst.MutableFst[Weight]]()
	frozenT = handle.New[*frozen.FrozenFst[Weight]]()
)

// Teardown discards every live handle and resets both tables to empty.
// Mirrors fst_teardown: the caller must ensure no other boundary call is
// in flight when this runs, the same precondition the documented ABI
// states for its teardown function.
func Teardown() {
	mutable = handle.New[*fst.MutableFst[Weight]]()
	frozenT = handle.New[*frozen.FrozenFst[Weight]]()
}

// ---- Mutable FST lifecycle ----

// NewMutable returns a handle to a fresh, empty Mutable FST.
func NewMutable() handle.Handle {
	return mutable.Insert(fst.New[Weight]())
}

// FreeMutable releases h. Double-free and unknown handles both report
// StatusInvalidArg.
func FreeMutable(h handle.Handle) Status {
	if err := mutable.Remove(h); err != nil {
		return StatusInvalidArg
	}
	return StatusOK
}

// CloneMutable returns a handle to a deep copy of h's FST.
func CloneMutable(h handle.Handle) (handle.Handle, Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	return mutable.Insert(m.Clone()), StatusOK
}

// AddState appends a fresh state to h's FST and returns its id.
func AddState(h handle.Handle) (fst.StateId, Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return fst.NoStateId, StatusInvalidArg
	}
	return m.AddState(), StatusOK
}

// SetStart designates s as h's start state.
func SetStart(h handle.Handle, s fst.StateId) Status {
	m, err := mutable.Get(h)
	if err != nil {
		return StatusInvalidArg
	}
	if err := m.SetStart(s); err != nil {
		return StatusInvalidState
	}
	return StatusOK
}

// Start returns h's current start state.
func Start(h handle.Handle) (fst.StateId, Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return fst.NoStateId, StatusInvalidArg
	}
	return m.Start(), StatusOK
}

// SetFinal sets s's final weight on h's FST, taking weight as a plain
// float64 the way the documented FstArc/final-weight fields do.
func SetFinal(h handle.Handle, s fst.StateId, weight float64) Status {
	m, err := mutable.Get(h)
	if err != nil {
		return StatusInvalidArg
	}
	var w Weight
	if err := m.SetFinal(s, w.FromFloat64(weight)); err != nil {
		return StatusInvalidState
	}
	return StatusOK
}

// FinalWeight returns s's final weight as a float64, and whether s is
// final at all.
func FinalWeight(h handle.Handle, s fst.StateId) (float64, bool, Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return 0, false, StatusInvalidArg
	}
	w, ferr := m.FinalWeight(s)
	if ferr != nil {
		return 0, false, StatusInvalidState
	}
	return float64(w), !w.IsZero(), StatusOK
}

// AddArc appends an arc to state s of h's FST.
func AddArc(h handle.Handle, s fst.StateId, ilabel, olabel fst.Label, weight float64, next fst.StateId) Status {
	m, err := mutable.Get(h)
	if err != nil {
		return StatusInvalidArg
	}
	var w Weight
	arc := fst.Arc[Weight]{ILabel: ilabel, OLabel: olabel, Weight: w.FromFloat64(weight), NextState: next}
	if err := m.AddArc(s, arc); err != nil {
		return StatusInvalidState
	}
	return StatusOK
}

// NumStates returns h's state count.
func NumStates(h handle.Handle) (int, Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return 0, StatusInvalidArg
	}
	return m.NumStates(), StatusOK
}

// NumArcs returns state s's outgoing arc count on h's FST.
func NumArcs(h handle.Handle, s fst.StateId) (int, Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return 0, StatusInvalidArg
	}
	return m.NumArcs(s), StatusOK
}

// GetArcs fills buf with up to len(buf) of state s's outgoing arcs and
// returns the true total arc count, mirroring the documented
// "query the size, then fill a caller-sized buffer" convention: a caller
// passing a nil or undersized buf still gets the count back to size its
// next allocation.
func GetArcs(h handle.Handle, s fst.StateId, buf []fst.Arc[Weight]) (total int, status Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return 0, StatusInvalidArg
	}
	arcs := m.Arcs(s)
	n := len(arcs)
	if n < len(buf) {
		copy(buf, arcs)
	} else {
		copy(buf, arcs[:len(buf)])
	}
	return n, StatusOK
}

// ---- Frozen FST lifecycle ----

// Freeze builds a Frozen FST snapshot of h's current state and returns a
// handle to it in the frozen table. h itself is unaffected.
func Freeze(h handle.Handle) (handle.Handle, Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	fz := frozen.FromMutable[Weight](m, semiring.KindTropical)
	return frozenT.Insert(fz), StatusOK
}

// FreeFrozen releases a Frozen FST handle.
func FreeFrozen(h handle.Handle) Status {
	if err := frozenT.Remove(h); err != nil {
		return StatusInvalidArg
	}
	return StatusOK
}

// FrozenStart returns the frozen snapshot's start state.
func FrozenStart(h handle.Handle) (uint32, Status) {
	fz, err := frozenT.Get(h)
	if err != nil {
		return frozen.NoState, StatusInvalidArg
	}
	return fz.Start(), StatusOK
}

// FrozenNumStates returns the frozen snapshot's state count.
func FrozenNumStates(h handle.Handle) (int, Status) {
	fz, err := frozenT.Get(h)
	if err != nil {
		return 0, StatusInvalidArg
	}
	return fz.NumStates(), StatusOK
}

// FrozenNumArcs returns state s's outgoing arc count in the frozen
// snapshot.
func FrozenNumArcs(h handle.Handle, s uint32) (int, Status) {
	fz, err := frozenT.Get(h)
	if err != nil {
		return 0, StatusInvalidArg
	}
	return fz.NumArcs(s), StatusOK
}

// FrozenFinalWeight returns state s's final weight in the frozen snapshot.
func FrozenFinalWeight(h handle.Handle, s uint32) (float64, bool, Status) {
	fz, err := frozenT.Get(h)
	if err != nil {
		return 0, false, StatusInvalidArg
	}
	w := fz.FinalWeight(s)
	return float64(w), !w.IsZero(), StatusOK
}

// FrozenGetArcs fills buf with up to len(buf) of state s's outgoing arcs
// from the frozen snapshot and returns the true total, the same
// size-then-fill convention as GetArcs.
func FrozenGetArcs(h handle.Handle, s uint32, buf []frozen.FrozenArc[Weight]) (total int, status Status) {
	fz, err := frozenT.Get(h)
	if err != nil {
		return 0, StatusInvalidArg
	}
	n := fz.NumArcs(s)
	m := n
	if len(buf) < m {
		m = len(buf)
	}
	for i := 0; i < m; i++ {
		buf[i] = fz.ArcAt(s, i)
	}
	return n, StatusOK
}

// unfreeze rebuilds a Mutable FST from a Frozen snapshot, for operations
// that only exist over fst.MutableFst. This is a pragmatic bridge rather
// than an exploitation of the Frozen FST's binary-search accessors; see
// DESIGN.md.
func unfreeze(fz *frozen.FrozenFst[Weight]) *fst.MutableFst[Weight] {
	m := fst.New[Weight]()
	n := fz.NumStates()
	m.AddStates(n)
	if start := fz.Start(); start != frozen.NoState {
		_ = m.SetStart(fst.StateId(start))
	}
	for s := 0; s < n; s++ {
		_ = m.SetFinal(fst.StateId(s), fz.FinalWeight(uint32(s)))
		for _, a := range fz.Arcs(uint32(s)) {
			_ = m.AddArc(fst.StateId(s), fst.Arc[Weight]{
				ILabel: a.ILabel, OLabel: a.OLabel, Weight: a.Weight, NextState: fst.StateId(a.NextState),
			})
		}
	}
	return m
}

// ---- Text and binary I/O ----

// ReadText parses the AT&T tabular text format from r into a fresh
// Mutable FST.
func ReadText(r io.Reader) (handle.Handle, Status) {
	m, err := textio.Parse[Weight](r)
	if err != nil {
		return handle.Invalid, StatusIOError
	}
	return mutable.Insert(m), StatusOK
}

// WriteText writes h's FST to w in AT&T tabular text format.
func WriteText(h handle.Handle, w io.Writer) Status {
	m, err := mutable.Get(h)
	if err != nil {
		return StatusInvalidArg
	}
	if err := textio.Write[Weight](w, m); err != nil {
		return StatusIOError
	}
	return StatusOK
}

// Load reads the native binary container from r into a fresh Frozen FST.
func Load(r io.Reader) (handle.Handle, Status) {
	fz, err := binio.Read[Weight](r, semiring.KindTropical)
	if err != nil {
		return handle.Invalid, StatusIOError
	}
	return frozenT.Insert(fz), StatusOK
}

// Save writes a Frozen FST's native binary container to w.
func Save(h handle.Handle, w io.Writer) Status {
	fz, err := frozenT.Get(h)
	if err != nil {
		return StatusInvalidArg
	}
	if err := binio.Write[Weight](w, fz); err != nil {
		return StatusIOError
	}
	return StatusOK
}
