// Package libfst is a library for building, optimizing, and evaluating
// Weighted Finite State Transducers (WFSTs) over a configurable numeric
// semiring, following the OpenFst algebraic model: states are connected by
// arcs bearing an input label, an output label, and a weight; strings over
// label sequences are accepted or rewritten with an accumulated weight.
//
// Under the hood, everything is organized under subpackages:
//
//	semiring/ — the algebraic weight types (tropical, log)
//	fst/      — the mutable FST builder
//	frozen/   — the immutable contiguous FST snapshot
//	stringfst/ — string-to-acceptor and character-class helpers
//	ops/      — composition, determinization, minimization, shortest path,
//	            union/concat/closure, projection, inversion, difference,
//	            replace, reverse, context-dependent rewrite, optimize
//	textio/   — the OpenFst AT&T tabular text format
//	binio/    — the bit-exact native binary container
//	handle/   — the slot-indexed handle table mediating concurrent access
//	boundary/ — the Go-native form of the documented C ABI surface
//
// Typical uses are text normalization, tokenization, pronunciation
// modeling, and any rule system expressible as regular relations.
package libfst
