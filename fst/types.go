// Package fst defines the Mutable FST builder: an ordered list of states
// each carrying a final weight and a dynamic list of outgoing arcs, plus a
// designated start state.
//
// States are dense integer indices rather than a vertex/edge ID map, and
// structural mutation bumps a generation counter instead of being guarded
// by a mutex: ownership of a Mutable FST is exclusive to a single writer,
// so internal locking would be pure overhead. The generation counter
// exists purely for use-after-mutate detection on arc views.
package fst

import (
	"errors"
	"math"

	"github.com/ontypehq/libfst/semiring"
)

// Sentinel errors for Mutable FST operations.
var (
	// ErrStateNotFound indicates an operation referenced a state id that
	// does not currently exist in the FST.
	ErrStateNotFound = errors.New("fst: state not found")

	// ErrNoStartState indicates an operation required a start state but
	// the FST's start is the NoStateId sentinel.
	ErrNoStartState = errors.New("fst: no start state")

	// ErrInvalidRemap indicates remap_states received a mapping slice
	// whose length does not match NumStates.
	ErrInvalidRemap = errors.New("fst: invalid remap length")
)

// Label is a 32-bit symbol identifier. Label 0 is reserved as epsilon and
// is never a concrete symbol.
type Label = uint32

// Epsilon is the reserved "no symbol" label.
const Epsilon Label = 0

// StateId is a 32-bit state identifier. NoStateId is the sentinel meaning
// "no state".
type StateId = uint32

// NoStateId is the sentinel denoting the absence of a state.
const NoStateId StateId = math.MaxUint32

// Arc is a weighted transition: (input label, output label, weight,
// destination state). An arc is an epsilon arc iff both labels are 0.
type Arc[W semiring.Weight[W]] struct {
	ILabel    Label
	OLabel    Label
	Weight    W
	NextState StateId
}

// IsEpsilon reports whether both of the arc's labels are the epsilon label.
func (a Arc[W]) IsEpsilon() bool { return a.ILabel == Epsilon && a.OLabel == Epsilon }

// state is a Mutable FST's per-state record: a final weight and an ordered
// list of outgoing arcs. A state is final iff final != Zero.
type state[W semiring.Weight[W]] struct {
	final W
	arcs  []Arc[W]
}

// MutableFst is the builder data structure: an ordered list of states, a
// designated start state (or NoStateId), and a generation counter that
// strictly increases on every structural mutation.
//
// Ownership of a MutableFst's storage is exclusive to a single writer;
// concurrent mutation of the same instance is undefined. The
// generation counter only detects concurrent/stale use, it never prevents
// it — see package handle for the table that actually serializes access
// across goroutines at the boundary.
type MutableFst[W semiring.Weight[W]] struct {
	states     []state[W]
	start      StateId
	generation uint64
}

// zeroOf returns the semiring zero for W without requiring a live instance:
// Zero() ignores its receiver's value by contract, so the
// type parameter's zero value is a sufficient receiver to call it on.
func zeroOf[W semiring.Weight[W]]() W {
	var z W
	return z.Zero()
}

// oneOf returns the semiring one for W, by the same reasoning as zeroOf.
func oneOf[W semiring.Weight[W]]() W {
	var z W
	return z.One()
}

// New returns an empty Mutable FST: no states, no start, generation 0.
func New[W semiring.Weight[W]]() *MutableFst[W] {
	return &MutableFst[W]{start: NoStateId}
}

// Generation returns the current generation counter. Consumers may
// snapshot it and assert equality after an unrelated read; a mismatch
// indicates a structural mutation silently invalidated a previously
// obtained arc view.
func (f *MutableFst[W]) Generation() uint64 { return f.generation }

func (f *MutableFst[W]) bump() { f.generation++ }
