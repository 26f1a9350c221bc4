package ops_test

import (
	"testing"

	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/ops"
	"github.com/ontypehq/libfst/semiring"
	"github.com/stretchr/testify/require"
)

// pathWeight sums a linear FST's arc weights plus its final weight, the
// shape ComposeShortestPath and ShortestPath(Compose(...)) both return.
func pathWeight(t *testing.T, f *fst.MutableFst[semiring.TropicalWeight]) float64 {
	t.Helper()
	cur := f.Start()
	require.NotEqual(t, fst.NoStateId, cur)
	total := semiring.TropicalOne()
	for {
		arcs := f.Arcs(cur)
		if len(arcs) == 0 {
			break
		}
		require.Len(t, arcs, 1, "expected a linear backtrace path")
		total = total.Times(arcs[0].Weight)
		cur = arcs[0].NextState
	}
	fw, err := f.FinalWeight(cur)
	require.NoError(t, err)
	total = total.Times(fw)
	return float64(total)
}

func TestComposeShortestPathMatchesEagerEquivalent(t *testing.T) {
	a := compileAcceptor("cat")
	b := fst.New[semiring.TropicalWeight]()
	s0 := b.AddState()
	s1 := b.AddState()
	s2 := b.AddState()
	s3 := b.AddState()
	_ = b.SetStart(s0)
	_ = b.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: fst.Label('c') + 1, OLabel: fst.Label('c') + 1, Weight: semiring.TropicalWeight(1.0), NextState: s1})
	_ = b.AddArc(s1, fst.Arc[semiring.TropicalWeight]{ILabel: fst.Label('a') + 1, OLabel: fst.Label('a') + 1, Weight: semiring.TropicalWeight(2.0), NextState: s2})
	_ = b.AddArc(s2, fst.Arc[semiring.TropicalWeight]{ILabel: fst.Label('t') + 1, OLabel: fst.Label('t') + 1, Weight: semiring.TropicalWeight(3.0), NextState: s3})
	_ = b.SetFinal(s3, semiring.TropicalOne())

	eager := ops.Compose[semiring.TropicalWeight](a, b)
	eagerBest, err := ops.ShortestPath[semiring.TropicalWeight](eager, 1)
	require.NoError(t, err)

	lazy, err := ops.ComposeShortestPath[semiring.TropicalWeight](a, b, 1)
	require.NoError(t, err)

	require.InDelta(t, pathWeight(t, eagerBest), pathWeight(t, lazy), 1e-9)
}

func TestComposeShortestPathZeroReturnsEmptyWithoutError(t *testing.T) {
	a := compileAcceptor("x")
	b := compileAcceptor("x")
	out, err := ops.ComposeShortestPath[semiring.TropicalWeight](a, b, 0)
	require.NoError(t, err)
	require.Equal(t, 0, out.NumStates())
}

func TestComposeShortestPathRejectsUnsupportedN(t *testing.T) {
	a := compileAcceptor("x")
	b := compileAcceptor("x")
	_, err := ops.ComposeShortestPath[semiring.TropicalWeight](a, b, 2)
	require.ErrorIs(t, err, ops.ErrUnsupportedNShortest)
}

func TestComposeShortestPathNoStartYieldsEmpty(t *testing.T) {
	a := fst.New[semiring.TropicalWeight]()
	b := compileAcceptor("x")
	out, err := ops.ComposeShortestPath[semiring.TropicalWeight](a, b, 1)
	require.NoError(t, err)
	require.Equal(t, 0, out.NumStates())
}

func TestComposeShortestPathNoAcceptingPathIsError(t *testing.T) {
	a := compileAcceptor("x")
	b := compileAcceptor("y")
	_, err := ops.ComposeShortestPath[semiring.TropicalWeight](a, b, 1)
	require.ErrorIs(t, err, ops.ErrNoAcceptingPath)
}
