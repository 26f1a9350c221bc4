package ops

import "errors"

// Sentinel errors for package ops. Operations that can fail return one of
// these directly, unwrapped, instead of panicking.
var (
	// ErrNoStart indicates an operand has no start state; composition of
	// such an operand yields the empty FST rather than an error, but other
	// operations that require a start state reject it.
	ErrNoStart = errors.New("ops: no start state")

	// ErrNotEpsilonFree indicates determinize or minimize received an FST
	// still carrying epsilon arcs.
	ErrNotEpsilonFree = errors.New("ops: input is not epsilon-free")

	// ErrInvalidRange indicates Repeat received min > max or a negative min.
	ErrInvalidRange = errors.New("ops: invalid repeat range")

	// ErrUnsupportedNShortest indicates a caller requested n != 1 from a
	// shortest-path operation; only single-best paths are supported.
	ErrUnsupportedNShortest = errors.New("ops: only n=1 shortest path is supported")

	// ErrNoAcceptingPath indicates shortest path found no final state
	// reachable from the start.
	ErrNoAcceptingPath = errors.New("ops: no accepting path")

	// ErrCyclicDependency indicates Replace's sub-FST reference graph has a
	// cycle.
	ErrCyclicDependency = errors.New("ops: cyclic replace dependency")

	// ErrLabelOverflow indicates the optimize pipeline's encode step ran out
	// of fresh labels: pairs are numbered densely from 1, and it fails once
	// the number of unique (ilabel,olabel) pairs nears the 32-bit label range
	// (practically unreachable but checked).
	ErrLabelOverflow = errors.New("ops: label overflow during encode")

	// ErrUnsupportedWeightedRewrite indicates CDRewrite received an operand
	// (τ, λ, or ρ) carrying a non-unit arc or final weight.
	ErrUnsupportedWeightedRewrite = errors.New("ops: cdrewrite operands must be unit-weight")

	// ErrNotDeterministic names Difference's precondition that its
	// right-hand operand is a deterministic, epsilon-free acceptor.
	// Difference does not check that precondition and never returns it.
	ErrNotDeterministic = errors.New("ops: right-hand operand must be deterministic and epsilon-free")
)
