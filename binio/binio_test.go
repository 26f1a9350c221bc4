package binio_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ontypehq/libfst/binio"
	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/frozen"
	"github.com/ontypehq/libfst/semiring"
)

func sampleFst() *frozen.FrozenFst[semiring.TropicalWeight] {
	m := fst.New[semiring.TropicalWeight]()
	s0 := m.AddState()
	s1 := m.AddState()
	_ = m.SetStart(s0)
	_ = m.SetFinal(s1, semiring.TropicalOne())
	_ = m.AddArc(s0, fst.Arc[semiring.TropicalWeight]{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s1})
	return frozen.FromMutable[semiring.TropicalWeight](m, semiring.KindTropical)
}

func TestWriteReadRoundTrip(t *testing.T) {
	fz := sampleFst()
	var buf bytes.Buffer
	if err := binio.Write[semiring.TropicalWeight](&buf, fz); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := binio.Read[semiring.TropicalWeight](&buf, semiring.KindTropical)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.NumStates() != fz.NumStates() || got.NumArcsTotal() != fz.NumArcsTotal() {
		t.Fatalf("round trip mismatch")
	}
}

func TestSaveLoadFileRoundTrip(t *testing.T) {
	fz := sampleFst()
	path := filepath.Join(t.TempDir(), "snapshot.fst")
	if err := binio.SaveFile[semiring.TropicalWeight](path, fz); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	got, err := binio.LoadFile[semiring.TropicalWeight](path, semiring.KindTropical)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.Start() != fz.Start() {
		t.Fatalf("start mismatch after file round trip")
	}
}
