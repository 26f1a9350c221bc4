package ops_test

import (
	"testing"

	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/ops"
	"github.com/ontypehq/libfst/semiring"
	"github.com/stretchr/testify/require"
)

// epsilonReachable returns every state reachable from s via epsilon-only
// arcs, including s itself.
func epsilonReachable(f *fst.MutableFst[semiring.TropicalWeight], s fst.StateId) []fst.StateId {
	seen := map[fst.StateId]bool{s: true}
	queue := []fst.StateId{s}
	out := []fst.StateId{s}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, arc := range f.Arcs(cur) {
			if arc.IsEpsilon() && !seen[arc.NextState] {
				seen[arc.NextState] = true
				queue = append(queue, arc.NextState)
				out = append(out, arc.NextState)
			}
		}
	}
	return out
}

// acceptsExactPath reports whether some sequence of epsilon hops and
// labeled arcs from start spells out labels and ends on a final state.
func acceptsExactPath(t *testing.T, f *fst.MutableFst[semiring.TropicalWeight], start fst.StateId, labels ...fst.Label) bool {
	t.Helper()
	frontier := epsilonReachable(f, start)
	for _, want := range labels {
		var next []fst.StateId
		for _, cur := range frontier {
			for _, arc := range f.Arcs(cur) {
				if arc.ILabel == want {
					next = append(next, epsilonReachable(f, arc.NextState)...)
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		frontier = next
	}
	for _, s := range frontier {
		if f.IsFinal(s) {
			return true
		}
	}
	return false
}

func TestUnionAcceptsBothOperands(t *testing.T) {
	a := fst.New[semiring.TropicalWeight]()
	sa := a.AddState()
	_ = a.SetStart(sa)
	_ = a.SetFinal(sa, semiring.TropicalOne())

	b := fst.New[semiring.TropicalWeight]()
	sb0 := b.AddState()
	sb1 := b.AddState()
	_ = b.SetStart(sb0)
	_ = b.AddArc(sb0, fst.Arc[semiring.TropicalWeight]{ILabel: 9, OLabel: 9, Weight: semiring.TropicalOne(), NextState: sb1})
	_ = b.SetFinal(sb1, semiring.TropicalOne())

	ops.Union[semiring.TropicalWeight](a, b)
	require.True(t, acceptsExactPath(t, a, a.Start()), "empty string from a's side")
	require.True(t, acceptsExactPath(t, a, a.Start(), 9), "labeled path from b's side")
}

func TestConcatChainsOperands(t *testing.T) {
	a := fst.New[semiring.TropicalWeight]()
	sa0 := a.AddState()
	sa1 := a.AddState()
	_ = a.SetStart(sa0)
	_ = a.AddArc(sa0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: sa1})
	_ = a.SetFinal(sa1, semiring.TropicalOne())

	b := fst.New[semiring.TropicalWeight]()
	sb0 := b.AddState()
	sb1 := b.AddState()
	_ = b.SetStart(sb0)
	_ = b.AddArc(sb0, fst.Arc[semiring.TropicalWeight]{ILabel: 2, OLabel: 2, Weight: semiring.TropicalOne(), NextState: sb1})
	_ = b.SetFinal(sb1, semiring.TropicalOne())

	ops.Concat[semiring.TropicalWeight](a, b)
	require.True(t, acceptsExactPath(t, a, a.Start(), 1, 2))
	require.False(t, a.IsFinal(sa1), "a's original final should no longer be final after concat")
}

func TestClosureStarAcceptsEmptyAndRepeats(t *testing.T) {
	f := fst.New[semiring.TropicalWeight]()
	s0 := f.AddState()
	s1 := f.AddState()
	_ = f.SetStart(s0)
	_ = f.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s1})
	_ = f.SetFinal(s1, semiring.TropicalOne())

	ops.Closure[semiring.TropicalWeight](f, ops.ClosureStar)
	require.True(t, f.IsFinal(f.Start()), "star closure must accept the empty string")
	require.True(t, acceptsExactPath(t, f, f.Start(), 1, 1))
}

func TestClosurePlusRejectsEmpty(t *testing.T) {
	f := fst.New[semiring.TropicalWeight]()
	s0 := f.AddState()
	s1 := f.AddState()
	_ = f.SetStart(s0)
	_ = f.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s1})
	_ = f.SetFinal(s1, semiring.TropicalOne())

	ops.Closure[semiring.TropicalWeight](f, ops.ClosurePlus)
	require.False(t, acceptsExactPath(t, f, f.Start()), "plus closure must not accept the empty string")
	require.True(t, acceptsExactPath(t, f, f.Start(), 1))
	require.True(t, acceptsExactPath(t, f, f.Start(), 1, 1))
}

func TestClosureOptionalAcceptsAtMostOne(t *testing.T) {
	f := fst.New[semiring.TropicalWeight]()
	s0 := f.AddState()
	s1 := f.AddState()
	_ = f.SetStart(s0)
	_ = f.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s1})
	_ = f.SetFinal(s1, semiring.TropicalOne())

	ops.Closure[semiring.TropicalWeight](f, ops.ClosureOptional)
	require.True(t, f.IsFinal(f.Start()))
	require.True(t, acceptsExactPath(t, f, f.Start(), 1))
}

func TestRepeatExactlyTwo(t *testing.T) {
	f := fst.New[semiring.TropicalWeight]()
	s0 := f.AddState()
	s1 := f.AddState()
	_ = f.SetStart(s0)
	_ = f.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: 7, OLabel: 7, Weight: semiring.TropicalOne(), NextState: s1})
	_ = f.SetFinal(s1, semiring.TropicalOne())

	require.NoError(t, ops.Repeat[semiring.TropicalWeight](f, 2, 2))
	require.True(t, acceptsExactPath(t, f, f.Start(), 7, 7))
	require.False(t, acceptsExactPath(t, f, f.Start(), 7))
}

func TestRepeatRejectsInvalidRange(t *testing.T) {
	f := fst.New[semiring.TropicalWeight]()
	require.ErrorIs(t, ops.Repeat[semiring.TropicalWeight](f, 3, 1), ops.ErrInvalidRange)
	require.ErrorIs(t, ops.Repeat[semiring.TropicalWeight](f, -1, 1), ops.ErrInvalidRange)
}

func TestRepeatZeroZeroAcceptsOnlyEmpty(t *testing.T) {
	f := fst.New[semiring.TropicalWeight]()
	s0 := f.AddState()
	s1 := f.AddState()
	_ = f.SetStart(s0)
	_ = f.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: 7, OLabel: 7, Weight: semiring.TropicalOne(), NextState: s1})
	_ = f.SetFinal(s1, semiring.TropicalOne())

	require.NoError(t, ops.Repeat[semiring.TropicalWeight](f, 0, 0))
	require.True(t, f.IsFinal(f.Start()))
	require.Empty(t, f.Arcs(f.Start()))
}
