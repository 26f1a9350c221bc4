// Package ops implements the algebraic operations over Mutable FSTs:
// composition (with the three-valued epsilon-sequencing filter), epsilon
// removal, weighted determinization, Hopcroft-style minimization, shortest
// path (plain and lazy-over-composition), union/concat/closure/repeat,
// projection/inversion, the optimize pipeline, difference via complement,
// recursive replace, reverse, and obligatory context-dependent rewrite.
//
// Shortest path uses a container/heap priority queue with lazy decrease-key
// and a back-pointer map; replace's dependency check uses DFS coloring for
// cycle detection; connect uses forward/backward BFS for reachability.
package ops
