package ops

import (
	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// ProjectTape selects which tape Project restricts an FST to.
type ProjectTape int

const (
	// ProjectInput copies ilabel over olabel on every arc.
	ProjectInput ProjectTape = iota
	// ProjectOutput copies olabel over ilabel on every arc.
	ProjectOutput
)

// Project mutates f in place so every arc's labels agree, restricting the
// transduction to the chosen tape and making f an acceptor. O(total arcs).
func Project[W semiring.Weight[W]](f *fst.MutableFst[W], tape ProjectTape) {
	for s := fst.StateId(0); int(s) < f.NumStates(); s++ {
		arcs := f.Arcs(s)
		for i := range arcs {
			switch tape {
			case ProjectInput:
				arcs[i].OLabel = arcs[i].ILabel
			case ProjectOutput:
				arcs[i].ILabel = arcs[i].OLabel
			}
		}
	}
}

// Invert mutates f in place, swapping ilabel and olabel on every arc
//. Invert∘Invert is the identity on arcs.
func Invert[W semiring.Weight[W]](f *fst.MutableFst[W]) {
	for s := fst.StateId(0); int(s) < f.NumStates(); s++ {
		arcs := f.Arcs(s)
		for i := range arcs {
			arcs[i].ILabel, arcs[i].OLabel = arcs[i].OLabel, arcs[i].ILabel
		}
	}
}
