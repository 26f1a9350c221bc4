package ops_test

import (
	"testing"

	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/ops"
	"github.com/ontypehq/libfst/semiring"
	"github.com/stretchr/testify/require"
)

// mustLinearAcceptor builds a deterministic, epsilon-free acceptor of the
// given words, via Union (over per-word linear chains) followed by
// RmEpsilon and Determinize — the shape several ops tests need as an
// operand (Difference's right-hand side, Compose's operands).
func mustLinearAcceptor(t *testing.T, words ...string) *fst.MutableFst[semiring.TropicalWeight] {
	t.Helper()
	require.NotEmpty(t, words)

	acc := compileAcceptor(words[0])
	for _, w := range words[1:] {
		ops.Union[semiring.TropicalWeight](acc, compileAcceptor(w))
	}
	noEps := ops.RmEpsilon[semiring.TropicalWeight](acc)
	det, err := ops.Determinize[semiring.TropicalWeight](noEps)
	require.NoError(t, err)
	return det
}

// compileAcceptor builds a linear-chain acceptor over a word's bytes
// (ilabel==olabel==byte+1), independent of package stringfst so ops tests
// don't need a cross-package import for a two-line construction.
func compileAcceptor(word string) *fst.MutableFst[semiring.TropicalWeight] {
	m := fst.New[semiring.TropicalWeight]()
	one := semiring.TropicalOne()
	prev := m.AddState()
	_ = m.SetStart(prev)
	for i := 0; i < len(word); i++ {
		next := m.AddState()
		lbl := fst.Label(word[i]) + 1
		_ = m.AddArc(prev, fst.Arc[semiring.TropicalWeight]{ILabel: lbl, OLabel: lbl, Weight: one, NextState: next})
		prev = next
	}
	_ = m.SetFinal(prev, one)
	return m
}

// acceptsWord walks a deterministic acceptor along word's bytes and
// reports whether it ends on a final state.
func acceptsWord(f *fst.MutableFst[semiring.TropicalWeight], word string) bool {
	cur := f.Start()
	if cur == fst.NoStateId {
		return false
	}
	for i := 0; i < len(word); i++ {
		want := fst.Label(word[i]) + 1
		next := fst.NoStateId
		for _, arc := range f.Arcs(cur) {
			if arc.ILabel == want {
				next = arc.NextState
				break
			}
		}
		if next == fst.NoStateId {
			return false
		}
		cur = next
	}
	return f.IsFinal(cur)
}
