// Package frozen implements the immutable contiguous FST snapshot: a
// single byte region partitioned into a header, a per-state table, and a
// per-arc table, with arcs grouped by source state and sorted by input
// label so FindArc and ArcsByIlabel can binary-search instead of scanning.
//
// The layout is bit-exact with the native binary container (also see
// package binio, which wraps Bytes/FromBytes around an io.Writer/
// io.Reader): a Frozen FST's in-memory representation and its on-disk
// representation are the same bytes, which is what lets FromBytes expose a
// view without copying — there is no intermediate per-state/per-arc struct
// allocation, only byte-offset arithmetic over a contiguous []byte.
//
// Uses a flat backing array addressed by computed offsets rather than a
// map-of-maps, trading a Mutable FST's mutability for strict immutability:
// any number of readers may traverse a Frozen FST concurrently without
// synchronization.
package frozen
