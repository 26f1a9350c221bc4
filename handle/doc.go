// Package handle implements the slot-indexed table that mediates
// concurrent access to owned objects (Mutable and Frozen FSTs) across the
// boundary surface, so raw pointers never cross the interop line.
//
// Each slot carries a generation counter, a pin count, and a pending-free
// flag, following the same "separate the thing readers touch from the
// bookkeeping a single mutex guards" shape as
// github.com/katalvlaran/lvlath's core.Graph (muVert/muEdgeAdj) and
// sync/atomic edge-id counter — here collapsed to one mutex since every
// Table[T] operation is already a short, bookkeeping-only critical
// section; the heavy work (an ops.* algorithm) happens outside the lock,
// between Snapshot and Commit.
package handle
