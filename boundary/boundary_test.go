package boundary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ontypehq/libfst/fst"
	"github.com/stretchr/testify/require"
)

func TestMutableLifecycleRoundTrip(t *testing.T) {
	h := NewMutable()
	defer FreeMutable(h)

	s0, status := AddState(h)
	require.Equal(t, StatusOK, status)
	s1, status := AddState(h)
	require.Equal(t, StatusOK, status)

	require.Equal(t, StatusOK, SetStart(h, s0))
	require.Equal(t, StatusOK, AddArc(h, s0, 1, 1, 1.5, s1))
	require.Equal(t, StatusOK, SetFinal(h, s1, 0))

	n, status := NumStates(h)
	require.Equal(t, StatusOK, status)
	require.Equal(t, 2, n)

	buf := make([]fst.Arc[Weight], 4)
	total, status := GetArcs(h, s0, buf)
	require.Equal(t, StatusOK, status)
	require.Equal(t, 1, total)
	require.Equal(t, fst.Label(1), buf[0].ILabel)
}

func TestFreeMutableTwiceIsInvalidArg(t *testing.T) {
	h := NewMutable()
	require.Equal(t, StatusOK, FreeMutable(h))
	require.Equal(t, StatusInvalidArg, FreeMutable(h))
}

func TestFreezeAndQuery(t *testing.T) {
	h := NewMutable()
	defer FreeMutable(h)
	s0, _ := AddState(h)
	s1, _ := AddState(h)
	SetStart(h, s0)
	AddArc(h, s0, 5, 5, 0, s1)
	SetFinal(h, s1, 0)

	fh, status := Freeze(h)
	require.Equal(t, StatusOK, status)
	defer FreeFrozen(fh)

	n, status := FrozenNumStates(fh)
	require.Equal(t, StatusOK, status)
	require.Equal(t, 2, n)

	start, status := FrozenStart(fh)
	require.Equal(t, StatusOK, status)
	require.Equal(t, s0, start)
}

func TestTextRoundTrip(t *testing.T) {
	h := NewMutable()
	defer FreeMutable(h)
	s0, _ := AddState(h)
	s1, _ := AddState(h)
	SetStart(h, s0)
	AddArc(h, s0, 1, 1, 0, s1)
	SetFinal(h, s1, 0)

	var buf bytes.Buffer
	require.Equal(t, StatusOK, WriteText(h, &buf))

	h2, status := ReadText(strings.NewReader(buf.String()))
	require.Equal(t, StatusOK, status)
	defer FreeMutable(h2)

	n, status := NumStates(h2)
	require.Equal(t, StatusOK, status)
	require.Equal(t, 2, n)
}

func TestBinaryRoundTrip(t *testing.T) {
	h := NewMutable()
	defer FreeMutable(h)
	s0, _ := AddState(h)
	SetStart(h, s0)
	SetFinal(h, s0, 0)

	fh, status := Freeze(h)
	require.Equal(t, StatusOK, status)
	defer FreeFrozen(fh)

	var buf bytes.Buffer
	require.Equal(t, StatusOK, Save(fh, &buf))

	fh2, status := Load(&buf)
	require.Equal(t, StatusOK, status)
	defer FreeFrozen(fh2)

	n, status := FrozenNumStates(fh2)
	require.Equal(t, StatusOK, status)
	require.Equal(t, 1, n)
}

func TestComposeProducesNewHandle(t *testing.T) {
	ha := CompileString("ab")
	defer FreeMutable(ha)
	hb := CompileString("ab")
	defer FreeMutable(hb)

	hc, status := Compose(ha, hb)
	require.Equal(t, StatusOK, status)
	defer FreeMutable(hc)

	s, status := PrintString(hc)
	require.Equal(t, StatusOK, status)
	require.Equal(t, "ab", s)
}

func TestUnionMutatesInPlace(t *testing.T) {
	ha := CompileString("a")
	defer FreeMutable(ha)
	hb := CompileString("b")
	defer FreeMutable(hb)

	require.Equal(t, StatusOK, Union(ha, hb))

	n, status := NumStates(ha)
	require.Equal(t, StatusOK, status)
	require.Greater(t, n, 2)
}

func TestInvalidHandleReportsInvalidArg(t *testing.T) {
	_, status := AddState(12345)
	require.Equal(t, StatusInvalidArg, status)

	status = SetStart(12345, 0)
	require.Equal(t, StatusInvalidArg, status)
}

func TestOptimizeRoundTrip(t *testing.T) {
	h := CompileString("abc")
	defer FreeMutable(h)

	oh, status := Optimize(h)
	require.Equal(t, StatusOK, status)
	defer FreeMutable(oh)

	s, status := PrintString(oh)
	require.Equal(t, StatusOK, status)
	require.Equal(t, "abc", s)
}
