package textio_test

import (
	"strings"
	"testing"

	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
	"github.com/ontypehq/libfst/textio"
)

func TestParseLinearAcceptor(t *testing.T) {
	src := strings.Join([]string{
		"0\t1\t97\t97",
		"1\t2\t98\t98",
		"2\t3\t99\t99",
		"3",
	}, "\n")

	m, err := textio.Parse[semiring.TropicalWeight](strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.NumStates() != 4 {
		t.Fatalf("NumStates = %d, want 4", m.NumStates())
	}
	if m.Start() != 0 {
		t.Fatalf("Start = %d, want 0", m.Start())
	}
	if !m.IsFinal(3) {
		t.Fatalf("state 3 should be final")
	}
	if m.NumArcs(0) != 1 || m.Arcs(0)[0].ILabel != 97 {
		t.Fatalf("unexpected arcs on state 0: %+v", m.Arcs(0))
	}
}

func TestParseDefaultsWeightToOne(t *testing.T) {
	m, err := textio.Parse[semiring.TropicalWeight](strings.NewReader("0\t1\t1\t1\n1\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	arc := m.Arcs(0)[0]
	if !arc.Weight.Equal(semiring.TropicalOne()) {
		t.Fatalf("arc weight = %v, want One", arc.Weight)
	}
	fw, _ := m.FinalWeight(1)
	if !fw.Equal(semiring.TropicalOne()) {
		t.Fatalf("final weight = %v, want One", fw)
	}
}

func TestParseExplicitWeight(t *testing.T) {
	m, err := textio.Parse[semiring.TropicalWeight](strings.NewReader("0\t1\t1\t1\t2.5\n1\t0.5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	arc := m.Arcs(0)[0]
	if float64(arc.Weight) != 2.5 {
		t.Fatalf("arc weight = %v, want 2.5", arc.Weight)
	}
	fw, _ := m.FinalWeight(1)
	if float64(fw) != 0.5 {
		t.Fatalf("final weight = %v, want 0.5", fw)
	}
}

func TestParseCreatesStatesOnDemand(t *testing.T) {
	m, err := textio.Parse[semiring.TropicalWeight](strings.NewReader("0\t5\t1\t1\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.NumStates() != 6 {
		t.Fatalf("NumStates = %d, want 6 (states 0..5)", m.NumStates())
	}
	if _, err := m.FinalWeight(5); err != nil {
		t.Fatalf("state 5 should exist: %v", err)
	}
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := textio.Parse[semiring.TropicalWeight](strings.NewReader("0 1 2\n"))
	if err == nil {
		t.Fatalf("expected error for malformed line")
	}
}

func TestParseRejectsInvalidField(t *testing.T) {
	_, err := textio.Parse[semiring.TropicalWeight](strings.NewReader("0\tx\t1\t1\n"))
	if err == nil {
		t.Fatalf("expected error for invalid field")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	m := fst.New[semiring.TropicalWeight]()
	s0 := m.AddState()
	s1 := m.AddState()
	_ = m.SetStart(s0)
	_ = m.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: semiring.TropicalWeight(2), NextState: s1})
	_ = m.SetFinal(s1, semiring.TropicalOne())

	var buf strings.Builder
	if err := textio.Write[semiring.TropicalWeight](&buf, m); err != nil {
		t.Fatalf("Write: %v", err)
	}

	m2, err := textio.Parse[semiring.TropicalWeight](strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("re-Parse: %v", err)
	}
	if m2.NumStates() != m.NumStates() {
		t.Fatalf("NumStates mismatch: %d vs %d", m2.NumStates(), m.NumStates())
	}
	if !m2.IsFinal(s1) {
		t.Fatalf("state 1 should be final after round trip")
	}
	arc := m2.Arcs(s0)[0]
	if float64(arc.Weight) != 2 {
		t.Fatalf("arc weight after round trip = %v, want 2", arc.Weight)
	}
}
