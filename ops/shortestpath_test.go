package ops_test

import (
	"testing"

	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/ops"
	"github.com/ontypehq/libfst/semiring"
	"github.com/stretchr/testify/require"
)

func TestShortestPathPicksCheaperRoute(t *testing.T) {
	m := fst.New[semiring.TropicalWeight]()
	s0 := m.AddState()
	s1 := m.AddState()
	s2 := m.AddState()
	s3 := m.AddState()
	_ = m.SetStart(s0)
	_ = m.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: semiring.TropicalWeight(1), NextState: s1})
	_ = m.AddArc(s1, fst.Arc[semiring.TropicalWeight]{ILabel: 2, OLabel: 2, Weight: semiring.TropicalWeight(1), NextState: s3})
	_ = m.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: 3, OLabel: 3, Weight: semiring.TropicalWeight(5), NextState: s2})
	_ = m.AddArc(s2, fst.Arc[semiring.TropicalWeight]{ILabel: 4, OLabel: 4, Weight: semiring.TropicalWeight(5), NextState: s3})
	_ = m.SetFinal(s3, semiring.TropicalOne())

	best, err := ops.ShortestPath[semiring.TropicalWeight](m, 1)
	require.NoError(t, err)
	require.Equal(t, 3, best.NumStates())

	total := semiring.TropicalOne()
	for s := best.Start(); int(s) < best.NumStates(); {
		arcs := best.Arcs(s)
		if len(arcs) == 0 {
			break
		}
		total = total.Times(arcs[0].Weight)
		s = arcs[0].NextState
	}
	require.Equal(t, semiring.TropicalWeight(2), total)
}

func TestShortestPathNoStartIsError(t *testing.T) {
	m := fst.New[semiring.TropicalWeight]()
	_, err := ops.ShortestPath[semiring.TropicalWeight](m, 1)
	require.ErrorIs(t, err, ops.ErrNoStart)
}

func TestShortestPathNoAcceptingPathIsError(t *testing.T) {
	m := fst.New[semiring.TropicalWeight]()
	s0 := m.AddState()
	_ = m.SetStart(s0)
	_, err := ops.ShortestPath[semiring.TropicalWeight](m, 1)
	require.ErrorIs(t, err, ops.ErrNoAcceptingPath)
}

func TestShortestPathUnsupportedNIsError(t *testing.T) {
	m := fst.New[semiring.TropicalWeight]()
	s0 := m.AddState()
	_ = m.SetStart(s0)
	_ = m.SetFinal(s0, semiring.TropicalOne())
	_, err := ops.ShortestPath[semiring.TropicalWeight](m, 2)
	require.ErrorIs(t, err, ops.ErrUnsupportedNShortest)
}

func TestShortestPathZeroReturnsEmptyWithoutError(t *testing.T) {
	m := fst.New[semiring.TropicalWeight]()
	s0 := m.AddState()
	_ = m.SetStart(s0)
	_ = m.SetFinal(s0, semiring.TropicalOne())
	out, err := ops.ShortestPath[semiring.TropicalWeight](m, 0)
	require.NoError(t, err)
	require.Equal(t, 0, out.NumStates())
}
