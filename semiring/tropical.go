package semiring

import (
	"encoding/binary"
	"fmt"
	"math"
)

// TropicalWeight implements the tropical semiring: ⊕=min, ⊗=+, 0=+Inf, 1=0.
// It is the natural semiring for shortest-path problems: the "cost" of a
// path is the sum of its arc weights, and the best of several paths is the
// one with minimum total cost.
type TropicalWeight float64

// TropicalZero is the tropical semiring's annihilator (+∞).
func TropicalZero() TropicalWeight { return TropicalWeight(math.Inf(1)) }

// TropicalOne is the tropical semiring's multiplicative identity (0).
func TropicalOne() TropicalWeight { return TropicalWeight(0) }

// Plus returns min(w, other); +∞ ⊕ x = x for any x.
func (w TropicalWeight) Plus(other TropicalWeight) TropicalWeight {
	if w < other {
		return w
	}
	return other
}

// Times returns w+other, with the annihilation edge case (0⊗x=0⊗-any-x=0)
// handled explicitly since float +Inf + (-Inf) would otherwise yield NaN.
func (w TropicalWeight) Times(other TropicalWeight) TropicalWeight {
	if w.IsZero() || other.IsZero() {
		return TropicalZero()
	}
	return w + other
}

// Zero returns the tropical zero (+∞), regardless of the receiver's value.
func (w TropicalWeight) Zero() TropicalWeight { return TropicalZero() }

// One returns the tropical one (0), regardless of the receiver's value.
func (w TropicalWeight) One() TropicalWeight { return TropicalOne() }

// IsZero reports whether w is +∞; -∞ is not treated as zero.
func (w TropicalWeight) IsZero() bool { return isPosInf(float64(w)) }

// Equal treats any two +∞ values as equal even if produced by different
// code paths and therefore carrying different bit patterns.
func (w TropicalWeight) Equal(other TropicalWeight) bool {
	if w.IsZero() && other.IsZero() {
		return true
	}
	return w == other
}

// Less is the natural order on the real line; +∞ is never less than
// anything and is never less than itself.
func (w TropicalWeight) Less(other TropicalWeight) bool { return w < other }

// Reverse is the identity map: tropical Times is ordinary commutative
// addition, so reversing a path's weight sequence doesn't change the sum.
func (w TropicalWeight) Reverse() TropicalWeight { return w }

// Hash mixes the IEEE-754 bit pattern of w, canonicalizing all zeros to a
// single hash so that weighted-determinization subset keys agree.
func (w TropicalWeight) Hash() uint64 {
	if w.IsZero() {
		return math.MaxUint64
	}
	return math.Float64bits(float64(w))
}

// String renders w as a decimal float, or "Inf" for the tropical zero.
func (w TropicalWeight) String() string {
	if w.IsZero() {
		return "Inf"
	}
	return fmt.Sprintf("%g", float64(w))
}

// Bits returns the IEEE-754 little-endian-ready bit pattern of w, used by
// the binary container and frozen-FST final-weight storage.
func (w TropicalWeight) Bits() uint64 { return math.Float64bits(float64(w)) }

// FromBits reconstructs a TropicalWeight from its 8-byte bit pattern,
// ignoring the receiver (see semiring.Weight.FromBits).
func (w TropicalWeight) FromBits(bits uint64) TropicalWeight {
	return TropicalWeight(math.Float64frombits(bits))
}

// FromFloat64 reconstructs a TropicalWeight from a plain decimal value,
// ignoring the receiver (see semiring.Weight.FromFloat64).
func (w TropicalWeight) FromFloat64(v float64) TropicalWeight {
	return TropicalWeight(v)
}

// TropicalFromBits reconstructs a TropicalWeight from its 8-byte bit
// pattern, the inverse of Bits.
func TropicalFromBits(bits uint64) TropicalWeight {
	return TropicalWeight(math.Float64frombits(bits))
}

// EncodeTropicalLE writes w's bit pattern to buf[:8] in little-endian order.
// buf must have length ≥ 8.
func EncodeTropicalLE(buf []byte, w TropicalWeight) {
	binary.LittleEndian.PutUint64(buf, w.Bits())
}

// DecodeTropicalLE reads a TropicalWeight from buf[:8] in little-endian order.
// buf must have length ≥ 8.
func DecodeTropicalLE(buf []byte) TropicalWeight {
	return TropicalFromBits(binary.LittleEndian.Uint64(buf))
}
