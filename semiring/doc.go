// Package semiring defines the algebraic weight types used by every other
// package in this module: a closed set of values with ⊕ (Plus), ⊗ (Times),
// a zero (annihilator for ⊗, identity for ⊕), a one (identity for ⊗), and a
// total order used by shortest-path relaxation.
//
// Two concrete variants are provided, both operating on float64:
//
//	Tropical — ⊕ = min, ⊗ = +, Zero = +Inf, One = 0.
//	Log      — ⊕ = -log(e^-a + e^-b), ⊗ = +, Zero = +Inf, One = 0.
//
// Required laws (checked on sample values by the TestTropical_* and
// TestLog_* tests in this package):
// associativity and commutativity of ⊕ and ⊗, distributivity of ⊗ over ⊕,
// One⊗x=x, Zero⊗x=Zero, Zero⊕x=x. The order must be monotone with respect
// to ⊗ for shortest-path relaxation to be correct; both variants satisfy
// this because ⊗ is ordinary addition over the reals.
//
// Weights are generic over a closed, small set of concrete types
// (monomorphized, not dispatched through an interface) because the inner
// loops of composition, determinization, and shortest path are hot and the
// operation set per semiring is tiny and closed — adding a new semiring
// means adding a new file here, not touching the operations package.
package semiring
