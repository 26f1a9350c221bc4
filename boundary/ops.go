package boundary

import (
	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/handle"
	"github.com/ontypehq/libfst/ops"
)

// ---- Operations returning a new handle ----

// Compose builds the composition of a and b as a new Mutable FST handle.
func Compose(a, b handle.Handle) (handle.Handle, Status) {
	ma, err := mutable.Get(a)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	mb, err := mutable.Get(b)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	return mutable.Insert(ops.Compose[Weight](ma, mb)), StatusOK
}

// ComposeFrozen composes two Frozen FSTs by rebuilding each as a Mutable
// FST and delegating to Compose; see unfreeze's doc comment.
func ComposeFrozen(a, b handle.Handle) (handle.Handle, Status) {
	fa, err := frozenT.Get(a)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	fb, err := frozenT.Get(b)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	result := ops.Compose[Weight](unfreeze(fa), unfreeze(fb))
	return mutable.Insert(result), StatusOK
}

// ComposeFrozenShortestPath fuses composition with a single-best shortest
// path over two Frozen FSTs without materializing the full product lattice.
func ComposeFrozenShortestPath(a, b handle.Handle) (handle.Handle, Status) {
	fa, err := frozenT.Get(a)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	fb, err := frozenT.Get(b)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	result, serr := ops.ComposeShortestPath[Weight](unfreeze(fa), unfreeze(fb), 1)
	if serr != nil {
		return handle.Invalid, StatusInvalidState
	}
	return mutable.Insert(result), StatusOK
}

// Determinize returns a new handle to h's subset-construction determinized
// FST.
func Determinize(h handle.Handle) (handle.Handle, Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	result, derr := ops.Determinize[Weight](m)
	if derr != nil {
		return handle.Invalid, StatusInvalidState
	}
	return mutable.Insert(result), StatusOK
}

// RmEpsilon returns a new handle to h's epsilon-free equivalent.
func RmEpsilon(h handle.Handle) (handle.Handle, Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	return mutable.Insert(ops.RmEpsilon[Weight](m)), StatusOK
}

// Connect returns a new handle to h trimmed to its accessible and
// coaccessible states.
func Connect(h handle.Handle) (handle.Handle, Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	return mutable.Insert(ops.Connect[Weight](m)), StatusOK
}

// Reverse returns a new handle to h's reversed FST.
func Reverse(h handle.Handle) (handle.Handle, Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	return mutable.Insert(ops.Reverse[Weight](m)), StatusOK
}

// ShortestPath returns a new handle to the single best accepting path
// through h's FST.
func ShortestPath(h handle.Handle, n int) (handle.Handle, Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	result, serr := ops.ShortestPath[Weight](m, n)
	if serr != nil {
		return handle.Invalid, StatusInvalidState
	}
	return mutable.Insert(result), StatusOK
}

// Optimize returns a new handle to h run through the full rm_epsilon ->
// encode -> determinize -> minimize -> decode -> connect pipeline.
func Optimize(h handle.Handle) (handle.Handle, Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	result, oerr := ops.Optimize[Weight](m)
	if oerr != nil {
		return handle.Invalid, StatusInvalidState
	}
	return mutable.Insert(result), StatusOK
}

// Difference returns a new handle to the language of a excluding b's.
func Difference(a, b handle.Handle) (handle.Handle, Status) {
	ma, err := mutable.Get(a)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	mb, err := mutable.Get(b)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	return mutable.Insert(ops.Difference[Weight](ma, mb)), StatusOK
}

// CDRewrite returns a new handle to the obligatory context-dependent
// rewrite rule built from tau/lambda/rho/sigma.
func CDRewrite(tau, lambda, rho, sigma handle.Handle) (handle.Handle, Status) {
	mTau, err := mutable.Get(tau)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	mLambda, err := mutable.Get(lambda)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	mRho, err := mutable.Get(rho)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	mSigma, err := mutable.Get(sigma)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	result, cerr := ops.CDRewrite[Weight](mTau, mLambda, mRho, mSigma)
	if cerr != nil {
		return handle.Invalid, StatusInvalidState
	}
	return mutable.Insert(result), StatusOK
}

// ApplyRewrite returns a new handle to input rewritten by rule, keeping
// the single best output.
func ApplyRewrite(input, rule handle.Handle) (handle.Handle, Status) {
	mInput, err := mutable.Get(input)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	mRule, err := mutable.Get(rule)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	result, aerr := ops.ApplyRewrite[Weight](mInput, mRule)
	if aerr != nil {
		return handle.Invalid, StatusInvalidState
	}
	return mutable.Insert(result), StatusOK
}

// Replace returns a new handle to root with every occurrence of labels[i]
// recursively substituted by subs[i]'s language.
func Replace(root handle.Handle, labels []fst.Label, subs []handle.Handle) (handle.Handle, Status) {
	if len(labels) != len(subs) {
		return handle.Invalid, StatusInvalidArg
	}
	mRoot, err := mutable.Get(root)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	mSubs := make([]*fst.MutableFst[Weight], len(subs))
	for i, sh := range subs {
		m, serr := mutable.Get(sh)
		if serr != nil {
			return handle.Invalid, StatusInvalidArg
		}
		mSubs[i] = m
	}
	result, rerr := ops.Replace[Weight](mRoot, labels, mSubs)
	if rerr != nil {
		return handle.Invalid, StatusInvalidState
	}
	return mutable.Insert(result), StatusOK
}

// ---- In-place mutating operations, via the optimistic-commit protocol ----

// Minimize replaces h's FST in place with its minimized equivalent.
func Minimize(h handle.Handle) Status {
	snap, gen, err := mutable.Snapshot(h)
	if err != nil {
		return StatusInvalidArg
	}
	result, merr := ops.Minimize[Weight](snap)
	if merr != nil {
		return StatusInvalidState
	}
	if err := mutable.Commit(h, result, gen); err != nil {
		return StatusInvalidArg
	}
	return StatusOK
}

// Union replaces a's FST in place with the union of a and b. b is
// unaffected.
func Union(a, b handle.Handle) Status {
	snap, gen, err := mutable.Snapshot(a)
	if err != nil {
		return StatusInvalidArg
	}
	mb, err := mutable.Get(b)
	if err != nil {
		return StatusInvalidArg
	}
	working := snap.Clone()
	ops.Union[Weight](working, mb)
	if err := mutable.Commit(a, working, gen); err != nil {
		return StatusInvalidArg
	}
	return StatusOK
}

// Concat replaces a's FST in place with the concatenation of a then b. b
// is unaffected.
func Concat(a, b handle.Handle) Status {
	snap, gen, err := mutable.Snapshot(a)
	if err != nil {
		return StatusInvalidArg
	}
	mb, err := mutable.Get(b)
	if err != nil {
		return StatusInvalidArg
	}
	working := snap.Clone()
	ops.Concat[Weight](working, mb)
	if err := mutable.Commit(a, working, gen); err != nil {
		return StatusInvalidArg
	}
	return StatusOK
}

// ClosureKind mirrors the documented closure-type enum; its numeric values
// match ops.ClosureKind's.
type ClosureKind = ops.ClosureKind

const (
	ClosureStar     = ops.ClosureStar
	ClosurePlus     = ops.ClosurePlus
	ClosureOptional = ops.ClosureOptional
)

// Closure replaces h's FST in place with its Kleene closure of the
// requested kind.
func Closure(h handle.Handle, kind ClosureKind) Status {
	snap, gen, err := mutable.Snapshot(h)
	if err != nil {
		return StatusInvalidArg
	}
	working := snap.Clone()
	ops.Closure[Weight](working, kind)
	if err := mutable.Commit(h, working, gen); err != nil {
		return StatusInvalidArg
	}
	return StatusOK
}

// Repeat replaces h's FST in place with min..max repetitions of itself.
func Repeat(h handle.Handle, min, max int) Status {
	snap, gen, err := mutable.Snapshot(h)
	if err != nil {
		return StatusInvalidArg
	}
	working := snap.Clone()
	if err := ops.Repeat[Weight](working, min, max); err != nil {
		return StatusInvalidArg
	}
	if err := mutable.Commit(h, working, gen); err != nil {
		return StatusInvalidArg
	}
	return StatusOK
}

// ProjectSide mirrors the documented tape-selector enum; its numeric
// values match ops.ProjectTape's.
type ProjectSide = ops.ProjectTape

const (
	ProjectInputSide  = ops.ProjectInput
	ProjectOutputSide = ops.ProjectOutput
)

// Project replaces h's FST in place with the requested tape projected
// onto both labels.
func Project(h handle.Handle, side ProjectSide) Status {
	snap, gen, err := mutable.Snapshot(h)
	if err != nil {
		return StatusInvalidArg
	}
	working := snap.Clone()
	ops.Project[Weight](working, side)
	if err := mutable.Commit(h, working, gen); err != nil {
		return StatusInvalidArg
	}
	return StatusOK
}

// Invert replaces h's FST in place with its labels swapped.
func Invert(h handle.Handle) Status {
	snap, gen, err := mutable.Snapshot(h)
	if err != nil {
		return StatusInvalidArg
	}
	working := snap.Clone()
	ops.Invert[Weight](working)
	if err := mutable.Commit(h, working, gen); err != nil {
		return StatusInvalidArg
	}
	return StatusOK
}
