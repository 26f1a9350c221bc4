package stringfst_test

import (
	"testing"

	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
	"github.com/ontypehq/libfst/stringfst"
)

func TestCompileLinearAcceptorABC(t *testing.T) {
	m := stringfst.Compile[semiring.TropicalWeight]("abc")
	if m.NumStates() != 4 {
		t.Fatalf("NumStates = %d, want 4", m.NumStates())
	}
	if m.Start() != 0 {
		t.Fatalf("Start = %d, want 0", m.Start())
	}
	if !m.IsFinal(3) {
		t.Fatalf("state 3 should be final")
	}
	wantLabels := []byte{'a', 'b', 'c'}
	for i, want := range wantLabels {
		arcs := m.Arcs(fst.StateId(i))
		if len(arcs) != 1 {
			t.Fatalf("state %d: got %d arcs, want 1", i, len(arcs))
		}
		if arcs[0].ILabel != stringfst.ByteLabel(want) || arcs[0].OLabel != stringfst.ByteLabel(want) {
			t.Fatalf("state %d: unexpected arc %+v", i, arcs[0])
		}
	}
}

func TestCompileEmptyString(t *testing.T) {
	m := stringfst.Compile[semiring.TropicalWeight]("")
	if m.NumStates() != 1 {
		t.Fatalf("NumStates = %d, want 1", m.NumStates())
	}
	if !m.IsFinal(0) {
		t.Fatalf("sole state should be final")
	}
}

func TestCompileIOMapsByteForByte(t *testing.T) {
	m, err := stringfst.CompileIO[semiring.TropicalWeight]("ab", "xy")
	if err != nil {
		t.Fatalf("CompileIO: %v", err)
	}
	arc0 := m.Arcs(0)[0]
	if arc0.ILabel != stringfst.ByteLabel('a') || arc0.OLabel != stringfst.ByteLabel('x') {
		t.Fatalf("arc 0 = %+v, want a->x", arc0)
	}
}

func TestCompileIORejectsLengthMismatch(t *testing.T) {
	_, err := stringfst.CompileIO[semiring.TropicalWeight]("a", "bb")
	if err != stringfst.ErrLengthMismatch {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestAlphaAcceptorRejectsNonLetterLabel(t *testing.T) {
	m := stringfst.AlphaAcceptor[semiring.TropicalWeight]()
	if m.NumStates() != 1 {
		t.Fatalf("NumStates = %d, want 1", m.NumStates())
	}
	for _, arc := range m.Arcs(0) {
		if arc.ILabel == stringfst.ByteLabel('5') {
			t.Fatalf("alpha acceptor should not contain a digit label")
		}
	}
	found := false
	for _, arc := range m.Arcs(0) {
		if arc.ILabel == stringfst.ByteLabel('Q') {
			found = true
		}
	}
	if !found {
		t.Fatalf("alpha acceptor should contain 'Q'")
	}
}

func TestDigitAcceptorHasAllTenDigits(t *testing.T) {
	m := stringfst.DigitAcceptor[semiring.TropicalWeight]()
	if got := m.NumArcs(0); got != 10 {
		t.Fatalf("NumArcs = %d, want 10", got)
	}
}

func TestByteAcceptorHasAll256Bytes(t *testing.T) {
	m := stringfst.ByteAcceptor[semiring.TropicalWeight]()
	if got := m.NumArcs(0); got != 256 {
		t.Fatalf("NumArcs = %d, want 256", got)
	}
}

// walkUTF8 follows the UTF-8 acceptor through the bytes of s, failing the
// test if any byte has no matching arc or the walk doesn't end final.
func walkUTF8(t *testing.T, m *fst.MutableFst[semiring.TropicalWeight], s string) {
	t.Helper()
	state := m.Start()
	for i := 0; i < len(s); i++ {
		lbl := stringfst.ByteLabel(s[i])
		next := fst.NoStateId
		for _, arc := range m.Arcs(state) {
			if arc.ILabel == lbl {
				next = arc.NextState
				break
			}
		}
		if next == fst.NoStateId {
			t.Fatalf("byte %d (0x%02x) of %q: no matching arc from state %d", i, s[i], s, state)
		}
		state = next
	}
	if !m.IsFinal(state) {
		t.Fatalf("%q: walk ended at non-final state %d", s, state)
	}
}

func TestUTF8AcceptorAcceptsMultibyteSequences(t *testing.T) {
	m := stringfst.UTF8Acceptor[semiring.TropicalWeight]()
	for _, s := range []string{"hello", "café", "日本語", "\U0001F600"} {
		walkUTF8(t, m, s)
	}
}

func TestPrintStringRoundTripsCompile(t *testing.T) {
	m := stringfst.Compile[semiring.TropicalWeight]("hello")
	s, err := stringfst.PrintString(m)
	if err != nil {
		t.Fatalf("PrintString: %v", err)
	}
	if s != "hello" {
		t.Fatalf("PrintString = %q, want %q", s, "hello")
	}
}

func TestPrintStringEmpty(t *testing.T) {
	m := stringfst.Compile[semiring.TropicalWeight]("")
	s, err := stringfst.PrintString(m)
	if err != nil {
		t.Fatalf("PrintString: %v", err)
	}
	if s != "" {
		t.Fatalf("PrintString = %q, want empty", s)
	}
}

func TestPrintOutputStringReadsOlabels(t *testing.T) {
	m, err := stringfst.CompileIO[semiring.TropicalWeight]("ab", "xy")
	if err != nil {
		t.Fatalf("CompileIO: %v", err)
	}
	in, err := stringfst.PrintString(m)
	if err != nil {
		t.Fatalf("PrintString: %v", err)
	}
	if in != "ab" {
		t.Fatalf("PrintString = %q, want %q", in, "ab")
	}
	out, err := stringfst.PrintOutputString(m)
	if err != nil {
		t.Fatalf("PrintOutputString: %v", err)
	}
	if out != "xy" {
		t.Fatalf("PrintOutputString = %q, want %q", out, "xy")
	}
}

func TestPrintStringRejectsBranchingFst(t *testing.T) {
	m := fst.New[semiring.TropicalWeight]()
	s0 := m.AddState()
	s1 := m.AddState()
	s2 := m.AddState()
	_ = m.SetStart(s0)
	one := semiring.TropicalOne()
	_ = m.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: stringfst.ByteLabel('a'), OLabel: stringfst.ByteLabel('a'), Weight: one, NextState: s1})
	_ = m.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: stringfst.ByteLabel('b'), OLabel: stringfst.ByteLabel('b'), Weight: one, NextState: s2})
	_ = m.SetFinal(s1, one)
	_ = m.SetFinal(s2, one)
	if _, err := stringfst.PrintString(m); err != stringfst.ErrNotLinear {
		t.Fatalf("PrintString on branching fst: got %v, want ErrNotLinear", err)
	}
}

func TestPrintStringRejectsCycle(t *testing.T) {
	m := fst.New[semiring.TropicalWeight]()
	s0 := m.AddState()
	one := semiring.TropicalOne()
	_ = m.SetStart(s0)
	_ = m.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: stringfst.ByteLabel('a'), OLabel: stringfst.ByteLabel('a'), Weight: one, NextState: s0})
	if _, err := stringfst.PrintString(m); err != stringfst.ErrNotLinear {
		t.Fatalf("PrintString on cyclic fst: got %v, want ErrNotLinear", err)
	}
}

func TestUTF8AcceptorRejectsBareContinuationByte(t *testing.T) {
	m := stringfst.UTF8Acceptor[semiring.TropicalWeight]()
	state := m.Start()
	lbl := stringfst.ByteLabel(0x80)
	for _, arc := range m.Arcs(state) {
		if arc.ILabel == lbl {
			t.Fatalf("start state should not accept a bare continuation byte")
		}
	}
}
