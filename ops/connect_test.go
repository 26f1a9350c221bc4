package ops_test

import (
	"testing"

	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/ops"
	"github.com/ontypehq/libfst/semiring"
	"github.com/stretchr/testify/require"
)

func TestConnectDropsInaccessibleAndNonCoaccessibleStates(t *testing.T) {
	m := fst.New[semiring.TropicalWeight]()
	s0 := m.AddState() // start, accessible+coaccessible
	s1 := m.AddState() // accessible+coaccessible via s0->s1->final
	dead := m.AddState()       // inaccessible: nothing points to it
	deadEnd := m.AddState()    // accessible but not coaccessible: no path to final
	_ = m.SetStart(s0)
	_ = m.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s1})
	_ = m.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: 2, OLabel: 2, Weight: semiring.TropicalOne(), NextState: deadEnd})
	_ = m.SetFinal(s1, semiring.TropicalOne())
	_ = dead

	out := ops.Connect[semiring.TropicalWeight](m)
	require.Equal(t, 2, out.NumStates(), "only s0 and s1 survive trimming")
}

func TestConnectPreservesFullyConnectedFst(t *testing.T) {
	m := fst.New[semiring.TropicalWeight]()
	s0 := m.AddState()
	s1 := m.AddState()
	_ = m.SetStart(s0)
	_ = m.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s1})
	_ = m.SetFinal(s1, semiring.TropicalOne())

	out := ops.Connect[semiring.TropicalWeight](m)
	require.Equal(t, 2, out.NumStates())
}

func TestConnectOfEmptyFstStaysEmpty(t *testing.T) {
	m := fst.New[semiring.TropicalWeight]()
	out := ops.Connect[semiring.TropicalWeight](m)
	require.Equal(t, 0, out.NumStates())
}
