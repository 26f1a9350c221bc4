package semiring

import (
	"encoding/binary"
	"fmt"
	"math"
)

// LogWeight implements the log semiring: ⊕ = -log(e^-a + e^-b), ⊗ = +,
// 0 = +Inf, 1 = 0. Values are interpreted as negative log-probabilities;
// Plus accumulates alternative paths the way a forward-backward algorithm
// sums probabilities, without the underflow a naive sum-of-exponentials
// would suffer for large weights.
type LogWeight float64

// LogZero is the log semiring's annihilator (+∞, i.e. probability 0).
func LogZero() LogWeight { return LogWeight(math.Inf(1)) }

// LogOne is the log semiring's multiplicative identity (0, i.e. probability 1).
func LogOne() LogWeight { return LogWeight(0) }

// Plus computes -log(e^-w + e^-other) using the standard log-sum-exp
// stabilization (factor out the smaller exponent) to avoid overflow/underflow.
func (w LogWeight) Plus(other LogWeight) LogWeight {
	if w.IsZero() {
		return other
	}
	if other.IsZero() {
		return w
	}
	a, b := float64(w), float64(other)
	if a > b {
		a, b = b, a
	}
	// a <= b, so -a >= -b, so e^-(b-a) is in (0,1] and cannot overflow.
	return LogWeight(a - math.Log1p(math.Exp(a-b)))
}

// Times returns w+other, with explicit annihilation handling so that
// +Inf + (-Inf) — which cannot arise here since weights are never
// negative-infinite — never produces NaN via unexpected inputs.
func (w LogWeight) Times(other LogWeight) LogWeight {
	if w.IsZero() || other.IsZero() {
		return LogZero()
	}
	return w + other
}

// Zero returns the log semiring's zero (+∞).
func (w LogWeight) Zero() LogWeight { return LogZero() }

// One returns the log semiring's one (0).
func (w LogWeight) One() LogWeight { return LogOne() }

// IsZero reports whether w is +∞.
func (w LogWeight) IsZero() bool { return isPosInf(float64(w)) }

// Equal treats any two +∞ values as equal regardless of bit pattern.
func (w LogWeight) Equal(other LogWeight) bool {
	if w.IsZero() && other.IsZero() {
		return true
	}
	return w == other
}

// Less orders by the natural order on the real line, same as tropical:
// smaller negative-log-probability means more probable, hence "less" for
// shortest-path purposes.
func (w LogWeight) Less(other LogWeight) bool { return w < other }

// Reverse is the identity map for the same reason as TropicalWeight: ⊗ is
// ordinary commutative addition.
func (w LogWeight) Reverse() LogWeight { return w }

// Hash mixes the bit pattern, canonicalizing zeros.
func (w LogWeight) Hash() uint64 {
	if w.IsZero() {
		return math.MaxUint64
	}
	return math.Float64bits(float64(w))
}

// String renders w as a decimal float, or "Inf" for the log zero.
func (w LogWeight) String() string {
	if w.IsZero() {
		return "Inf"
	}
	return fmt.Sprintf("%g", float64(w))
}

// Bits returns the IEEE-754 bit pattern of w.
func (w LogWeight) Bits() uint64 { return math.Float64bits(float64(w)) }

// FromBits reconstructs a LogWeight from its 8-byte bit pattern, ignoring
// the receiver (see semiring.Weight.FromBits).
func (w LogWeight) FromBits(bits uint64) LogWeight {
	return LogWeight(math.Float64frombits(bits))
}

// FromFloat64 reconstructs a LogWeight from a plain decimal value, ignoring
// the receiver (see semiring.Weight.FromFloat64).
func (w LogWeight) FromFloat64(v float64) LogWeight {
	return LogWeight(v)
}

// LogFromBits reconstructs a LogWeight from its 8-byte bit pattern.
func LogFromBits(bits uint64) LogWeight {
	return LogWeight(math.Float64frombits(bits))
}

// EncodeLogLE writes w's bit pattern to buf[:8] in little-endian order.
func EncodeLogLE(buf []byte, w LogWeight) {
	binary.LittleEndian.PutUint64(buf, w.Bits())
}

// DecodeLogLE reads a LogWeight from buf[:8] in little-endian order.
func DecodeLogLE(buf []byte) LogWeight {
	return LogFromBits(binary.LittleEndian.Uint64(buf))
}
