package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// Sentinel errors for malformed AT&T text input.
var (
	// ErrMalformedLine indicates a line had neither an arc's nor a
	// final-state line's shape (1, 2, 4, or 5 whitespace-separated fields).
	ErrMalformedLine = errors.New("textio: malformed line")
	// ErrInvalidField indicates a numeric field failed to parse.
	ErrInvalidField = errors.New("textio: invalid field")
)

// Parse reads the OpenFst AT&T tabular text format from r and builds a
// Mutable FST over semiring W.
//
// Each non-empty line is either an arc line:
//
//	src dst ilabel olabel [weight]
//
// or a final-state line:
//
//	state [weight]
//
// Weight defaults to the semiring One when omitted. The first source state
// encountered becomes the start state. A state referenced anywhere (as src,
// dst, or a bare final-state line) is created on demand with final weight
// Zero if it hasn't been seen yet.
func Parse[W semiring.Weight[W]](r io.Reader) (*fst.MutableFst[W], error) {
	m := fst.New[W]()
	ensure := func(id fst.StateId) fst.StateId {
		for m.NumStates() <= int(id) {
			m.AddState()
		}
		return id
	}

	startSet := false
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch len(fields) {
		case 1, 2:
			// Final-state line: "state [weight]".
			s, err := parseStateId(fields[0])
			if err != nil {
				return nil, fmt.Errorf("textio: line %d: %w", lineNo, err)
			}
			ensure(s)
			if !startSet {
				if err := m.SetStart(s); err != nil {
					return nil, fmt.Errorf("textio: line %d: %w", lineNo, err)
				}
				startSet = true
			}
			w, err := parseWeight[W](fields[1:])
			if err != nil {
				return nil, fmt.Errorf("textio: line %d: %w", lineNo, err)
			}
			if err := m.SetFinal(s, w); err != nil {
				return nil, fmt.Errorf("textio: line %d: %w", lineNo, err)
			}

		case 4, 5:
			// Arc line: "src dst ilabel olabel [weight]".
			src, err := parseStateId(fields[0])
			if err != nil {
				return nil, fmt.Errorf("textio: line %d: %w", lineNo, err)
			}
			dst, err := parseStateId(fields[1])
			if err != nil {
				return nil, fmt.Errorf("textio: line %d: %w", lineNo, err)
			}
			ilabel, err := parseLabel(fields[2])
			if err != nil {
				return nil, fmt.Errorf("textio: line %d: %w", lineNo, err)
			}
			olabel, err := parseLabel(fields[3])
			if err != nil {
				return nil, fmt.Errorf("textio: line %d: %w", lineNo, err)
			}
			ensure(src)
			ensure(dst)
			if !startSet {
				if err := m.SetStart(src); err != nil {
					return nil, fmt.Errorf("textio: line %d: %w", lineNo, err)
				}
				startSet = true
			}
			w, err := parseWeight[W](fields[4:])
			if err != nil {
				return nil, fmt.Errorf("textio: line %d: %w", lineNo, err)
			}
			arc := fst.Arc[W]{ILabel: ilabel, OLabel: olabel, Weight: w, NextState: dst}
			if err := m.AddArc(src, arc); err != nil {
				return nil, fmt.Errorf("textio: line %d: %w", lineNo, err)
			}

		default:
			return nil, fmt.Errorf("textio: line %d: %w", lineNo, ErrMalformedLine)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseStateId(field string) (fst.StateId, error) {
	v, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	return fst.StateId(v), nil
}

func parseLabel(field string) (fst.Label, error) {
	v, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	return fst.Label(v), nil
}

// parseWeight parses an optional single-element weight field, defaulting
// to the semiring One when fields is empty.
func parseWeight[W semiring.Weight[W]](fields []string) (W, error) {
	var zero W
	if len(fields) == 0 {
		return zero.One(), nil
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return zero, fmt.Errorf("%w: %q", ErrInvalidField, fields[0])
	}
	return zero.FromFloat64(v), nil
}

// Write emits m in AT&T tabular text format to w: one arc line per arc (in
// each state's current Arcs order), followed by one final-state line per
// final state, ascending by state id.
//
// The semiring One is elided from arc and final-state lines as an output
// convention, matching the default Parse applies on read.
func Write[W semiring.Weight[W]](w io.Writer, m *fst.MutableFst[W]) error {
	bw := bufio.NewWriter(w)

	for s := fst.StateId(0); int(s) < m.NumStates(); s++ {
		for _, arc := range m.Arcs(s) {
			if arc.Weight.Equal(arc.Weight.One()) {
				if _, err := fmt.Fprintf(bw, "%d\t%d\t%d\t%d\n", s, arc.NextState, arc.ILabel, arc.OLabel); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(bw, "%d\t%d\t%d\t%d\t%s\n", s, arc.NextState, arc.ILabel, arc.OLabel, arc.Weight.String()); err != nil {
				return err
			}
		}
	}
	for s := fst.StateId(0); int(s) < m.NumStates(); s++ {
		if !m.IsFinal(s) {
			continue
		}
		fw, _ := m.FinalWeight(s)
		if fw.Equal(fw.One()) {
			if _, err := fmt.Fprintf(bw, "%d\n", s); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d\t%s\n", s, fw.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
