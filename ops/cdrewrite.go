package ops

import (
	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// identityPenalty is the fixed weight P assigned to every arc of the
// identity pass-through acceptor sigma_one built by CDRewrite. The
// obligatory-rewrite correctness condition requires τ's total weight
// (always One under the unit-weight constraint) to be strictly less than
// (length of τ's input) × P; P=1.0 satisfies this for every τ of length
// ≥ 1, the only case CDRewrite is asked to handle.
const identityPenalty = 1.0

// isUnitWeight reports whether every arc weight and every final weight of
// f equals the semiring One, the precondition CDRewrite's τ/λ/ρ operands
// must satisfy.
func isUnitWeight[W semiring.Weight[W]](f *fst.MutableFst[W]) bool {
	var one W
	one = one.One()
	for s := fst.StateId(0); int(s) < f.NumStates(); s++ {
		if f.IsFinal(s) {
			fw, _ := f.FinalWeight(s)
			if !fw.Equal(one) {
				return false
			}
		}
		for _, arc := range f.Arcs(s) {
			if !arc.Weight.Equal(one) {
				return false
			}
		}
	}
	return true
}

// isEpsilonOnlyTrivial reports whether f accepts only the empty string: a
// single state that is both start and final, with no outgoing arcs. Such
// an operand for λ or ρ contributes nothing to context_τ and is dropped
// rather than concatenated.
func isEpsilonOnlyTrivial[W semiring.Weight[W]](f *fst.MutableFst[W]) bool {
	return f.NumStates() == 1 && f.Start() == 0 && f.NumArcs(0) == 0 && f.IsFinal(0)
}

// CDRewrite builds the obligatory left-to-right rewrite rule for τ in
// context λ_ρ over the alphabet accepted by sigma (conventionally Σ*):
// context_τ = λ·τ·ρ (dropping either side if it is the trivial
// epsilon-only acceptor), sigma_one = an acceptor for any single alphabet
// symbol weighted by the fixed identity penalty P, and
// rule = rm_epsilon((context_τ | sigma_one)*). Composing an input acceptor
// with the returned rule, projecting onto the output tape, and taking
// shortest path n=1 yields the obligatory rewrite (see
// ApplyRewrite). Returns ErrUnsupportedWeightedRewrite if τ, λ,
// or ρ carries any arc or final weight other than One.
func CDRewrite[W semiring.Weight[W]](tau, lambda, rho, sigma *fst.MutableFst[W]) (*fst.MutableFst[W], error) {
	if !isUnitWeight(tau) || !isUnitWeight(lambda) || !isUnitWeight(rho) {
		return nil, ErrUnsupportedWeightedRewrite
	}

	var one W
	one = one.One()

	ctx := tau.Clone()
	if !isEpsilonOnlyTrivial(lambda) {
		pre := lambda.Clone()
		Concat(pre, ctx)
		ctx = pre
	}
	if !isEpsilonOnlyTrivial(rho) {
		Concat(ctx, rho.Clone())
	}

	labels := map[fst.Label]bool{}
	collectLabels(sigma, labels)

	penalty := one.FromFloat64(identityPenalty)
	sigmaOne := fst.New[W]()
	s0 := sigmaOne.AddState()
	s1 := sigmaOne.AddState()
	_ = sigmaOne.SetStart(s0)
	_ = sigmaOne.SetFinal(s1, one)
	for l := range labels {
		if l == fst.Epsilon {
			continue
		}
		_ = sigmaOne.AddArc(s0, fst.Arc[W]{ILabel: l, OLabel: l, Weight: penalty, NextState: s1})
	}

	Union(ctx, sigmaOne)
	Closure(ctx, ClosureStar)

	return RmEpsilon(ctx), nil
}

// ApplyRewrite executes rule against input: compose, project onto the
// output tape, and take the single shortest path. The identity
// penalty built into rule's sigma_one component makes any τ-replacement
// path strictly cheaper than the all-identity pass-through wherever a
// match exists, yielding the obligatory reading.
func ApplyRewrite[W semiring.Weight[W]](input, rule *fst.MutableFst[W]) (*fst.MutableFst[W], error) {
	composed := Compose(input, rule)
	Project(composed, ProjectOutput)
	return ShortestPath(composed, 1)
}
