package stringfst

import (
	"errors"

	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// ErrLengthMismatch indicates CompileIO received input and output strings
// of different byte lengths; only 1:1 byte-to-byte transduction is
// supported without a rule system to decide where to insert epsilons.
var ErrLengthMismatch = errors.New("stringfst: input/output length mismatch")

// ErrNotLinear indicates PrintString/PrintOutputString were given an FST
// that is not a simple linear chain: a branching state (more than one
// outgoing arc), a state revisited along the walk (a cycle), or a walk
// that runs off the FST without reaching a final state.
var ErrNotLinear = errors.New("stringfst: not a linear string FST")

// ByteLabel converts a raw byte to its FST label: label = byte+1, keeping
// label 0 reserved for epsilon.
func ByteLabel(b byte) fst.Label { return fst.Label(b) + 1 }

// UnByteLabel converts an FST label back to its raw byte. The caller must
// ensure l is not Epsilon.
func UnByteLabel(l fst.Label) byte { return byte(l - 1) }

// walkLinear follows f from its start state through each state's sole
// outgoing arc, collecting the label selected by pick from each arc,
// until it reaches a state with no outgoing arcs. Returns ErrNotLinear if
// the walk ever finds a state with more than one outgoing arc, revisits a
// state (a cycle), or ends on a non-final state.
func walkLinear[W semiring.Weight[W]](f *fst.MutableFst[W], pick func(fst.Arc[W]) fst.Label) (string, error) {
	if f.Start() == fst.NoStateId {
		return "", ErrNotLinear
	}

	var out []byte
	visited := map[fst.StateId]bool{}
	cur := f.Start()
	for {
		if visited[cur] {
			return "", ErrNotLinear
		}
		visited[cur] = true

		arcs := f.Arcs(cur)
		switch len(arcs) {
		case 0:
			if !f.IsFinal(cur) {
				return "", ErrNotLinear
			}
			return string(out), nil
		case 1:
			l := pick(arcs[0])
			if l != fst.Epsilon {
				out = append(out, UnByteLabel(l))
			}
			cur = arcs[0].NextState
		default:
			return "", ErrNotLinear
		}
	}
}

// PrintString walks a linear input-tape FST (as produced by Compile or by
// ShortestPath over an acceptor) and returns the byte string its ilabels
// spell out.
func PrintString[W semiring.Weight[W]](f *fst.MutableFst[W]) (string, error) {
	return walkLinear(f, func(a fst.Arc[W]) fst.Label { return a.ILabel })
}

// PrintOutputString walks a linear FST and returns the byte string its
// olabels spell out — the rewritten output of a transducer's single best
// path, the form ApplyRewrite's result is meant to be read with.
func PrintOutputString[W semiring.Weight[W]](f *fst.MutableFst[W]) (string, error) {
	return walkLinear(f, func(a fst.Arc[W]) fst.Label { return a.OLabel })
}

// Compile builds a linear-chain acceptor for s: len(s)+1 states, start=0,
// final(len(s))=One, and one arc per byte with ilabel=olabel=ByteLabel(b)
// and weight One.
func Compile[W semiring.Weight[W]](s string) *fst.MutableFst[W] {
	m := fst.New[W]()
	var one W
	one = one.One()

	prev := m.AddState()
	_ = m.SetStart(prev)
	for i := 0; i < len(s); i++ {
		next := m.AddState()
		_ = m.AddArc(prev, fst.Arc[W]{
			ILabel:    ByteLabel(s[i]),
			OLabel:    ByteLabel(s[i]),
			Weight:    one,
			NextState: next,
		})
		prev = next
	}
	_ = m.SetFinal(prev, one)
	return m
}

// CompileIO builds a linear-chain transducer mapping in to out byte-for-byte:
// arc i carries ilabel=ByteLabel(in[i]), olabel=ByteLabel(out[i]). Returns
// ErrLengthMismatch if len(in) != len(out).
func CompileIO[W semiring.Weight[W]](in, out string) (*fst.MutableFst[W], error) {
	if len(in) != len(out) {
		return nil, ErrLengthMismatch
	}
	m := fst.New[W]()
	var one W
	one = one.One()

	prev := m.AddState()
	_ = m.SetStart(prev)
	for i := 0; i < len(in); i++ {
		next := m.AddState()
		_ = m.AddArc(prev, fst.Arc[W]{
			ILabel:    ByteLabel(in[i]),
			OLabel:    ByteLabel(out[i]),
			Weight:    one,
			NextState: next,
		})
		prev = next
	}
	_ = m.SetFinal(prev, one)
	return m, nil
}

// SigmaStar builds a one-state acceptor of (Σ)* over the given alphabet:
// a single final start state with one self-loop arc per label, weight One.
// Passing the full byte alphabet yields Σ* over all bytes; a restricted
// alphabet (e.g. letters, digits) yields the corresponding character class.
func SigmaStar[W semiring.Weight[W]](alphabet []fst.Label) *fst.MutableFst[W] {
	m := fst.New[W]()
	var one W
	one = one.One()

	s0 := m.AddState()
	_ = m.SetStart(s0)
	_ = m.SetFinal(s0, one)
	for _, lbl := range alphabet {
		_ = m.AddArc(s0, fst.Arc[W]{ILabel: lbl, OLabel: lbl, Weight: one, NextState: s0})
	}
	return m
}

// allBytes returns every byte-value label, 1..256.
func allBytes() []fst.Label {
	labels := make([]fst.Label, 256)
	for b := 0; b < 256; b++ {
		labels[b] = ByteLabel(byte(b))
	}
	return labels
}

// ByteAcceptor builds Σ* over the full byte alphabet (any sequence of any
// bytes, including the empty string).
func ByteAcceptor[W semiring.Weight[W]]() *fst.MutableFst[W] {
	return SigmaStar[W](allBytes())
}

// AlphaAcceptor builds a Kleene-star acceptor over ASCII letters (A-Z, a-z).
func AlphaAcceptor[W semiring.Weight[W]]() *fst.MutableFst[W] {
	var labels []fst.Label
	for b := byte('A'); b <= 'Z'; b++ {
		labels = append(labels, ByteLabel(b))
	}
	for b := byte('a'); b <= 'z'; b++ {
		labels = append(labels, ByteLabel(b))
	}
	return SigmaStar[W](labels)
}

// DigitAcceptor builds a Kleene-star acceptor over ASCII digits (0-9).
func DigitAcceptor[W semiring.Weight[W]]() *fst.MutableFst[W] {
	var labels []fst.Label
	for b := byte('0'); b <= '9'; b++ {
		labels = append(labels, ByteLabel(b))
	}
	return SigmaStar[W](labels)
}

// UTF8Acceptor builds an acceptor for well-formed UTF-8 byte sequences: a
// Kleene star over the standard lead/continuation byte-range state machine
// (ASCII; 2-byte C2-DF + one continuation; 3-byte E0-EF with the narrowed
// first-continuation range for E0/ED; 4-byte F0-F4 with the narrowed
// first-continuation range for F0/F4), each accepted codepoint returning to
// the single start/final state.
func UTF8Acceptor[W semiring.Weight[W]]() *fst.MutableFst[W] {
	m := fst.New[W]()
	var one W
	one = one.One()

	start := m.AddState() // also final: accepts zero or more codepoints
	_ = m.SetStart(start)
	_ = m.SetFinal(start, one)

	cont := func(lo, hi byte) []byte {
		out := make([]byte, 0, int(hi)-int(lo)+1)
		for b := lo; ; b++ {
			out = append(out, b)
			if b == hi {
				break
			}
		}
		return out
	}
	arc := func(s fst.StateId, b byte, next fst.StateId) {
		_ = m.AddArc(s, fst.Arc[W]{ILabel: ByteLabel(b), OLabel: ByteLabel(b), Weight: one, NextState: next})
	}

	// 1-byte: 0x00-0x7F, back to start.
	for _, b := range cont(0x00, 0x7F) {
		arc(start, b, start)
	}

	// 2-byte: C2-DF then one continuation byte 80-BF.
	two1 := m.AddState()
	for _, b := range cont(0xC2, 0xDF) {
		arc(start, b, two1)
	}
	for _, b := range cont(0x80, 0xBF) {
		arc(two1, b, start)
	}

	// 3-byte: E0 requires second byte A0-BF; ED requires 80-9F; E1-EC,EE,EF
	// require 80-BF. Then one more continuation byte 80-BF.
	three1General := m.AddState()
	three2 := m.AddState()
	for _, b := range cont(0xE1, 0xEC) {
		arc(start, b, three1General)
	}
	arc(start, 0xEE, three1General)
	arc(start, 0xEF, three1General)
	for _, b := range cont(0x80, 0xBF) {
		arc(three1General, b, three2)
	}
	e0 := m.AddState()
	arc(start, 0xE0, e0)
	for _, b := range cont(0xA0, 0xBF) {
		arc(e0, b, three2)
	}
	ed := m.AddState()
	arc(start, 0xED, ed)
	for _, b := range cont(0x80, 0x9F) {
		arc(ed, b, three2)
	}
	for _, b := range cont(0x80, 0xBF) {
		arc(three2, b, start)
	}

	// 4-byte: F0 requires second byte 90-BF; F4 requires 80-8F; F1-F3
	// require 80-BF. Then two more continuation bytes 80-BF.
	four1General := m.AddState()
	four2 := m.AddState()
	four3 := m.AddState()
	for _, b := range cont(0xF1, 0xF3) {
		arc(start, b, four1General)
	}
	for _, b := range cont(0x80, 0xBF) {
		arc(four1General, b, four2)
	}
	f0 := m.AddState()
	arc(start, 0xF0, f0)
	for _, b := range cont(0x90, 0xBF) {
		arc(f0, b, four2)
	}
	f4 := m.AddState()
	arc(start, 0xF4, f4)
	for _, b := range cont(0x80, 0x8F) {
		arc(f4, b, four2)
	}
	for _, b := range cont(0x80, 0xBF) {
		arc(four2, b, four3)
	}
	for _, b := range cont(0x80, 0xBF) {
		arc(four3, b, start)
	}

	return m
}
