package ops

import (
	"container/heap"

	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// spItem is one entry in the shortest-path priority queue: a settled-or-
// candidate state, its accumulated weight, and the back-pointer needed to
// reconstruct the winning path.
type spItem[W semiring.Weight[W]] struct {
	state    fst.StateId
	dist     W
	prevID   fst.StateId // NoStateId for the start state
	prevArcI int         // index into prev state's Arcs(), for tie-breaking
}

// spPQ is a min-heap of *spItem ordered by dist, tie-broken by state id
// ascending. Uses a lazy decrease-key shape: stale entries are pushed over
// rather than fixed in place, and skipped on pop once the state is settled.
type spPQ[W semiring.Weight[W]] []*spItem[W]

func (pq spPQ[W]) Len() int { return len(pq) }
func (pq spPQ[W]) Less(i, j int) bool {
	if !pq[i].dist.Equal(pq[j].dist) {
		return pq[i].dist.Less(pq[j].dist)
	}
	return pq[i].state < pq[j].state
}
func (pq spPQ[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *spPQ[W]) Push(x any)   { *pq = append(*pq, x.(*spItem[W])) }
func (pq *spPQ[W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// ShortestPath runs Dijkstra over f from its start state and returns a
// fresh linear FST reproducing the single best-weight accepting path
//. n must be 1; n=0 returns an empty FST (no error); any
// other n returns ErrUnsupportedNShortest. Returns ErrNoStart if f has no
// start, ErrNoAcceptingPath if no final state is reachable.
func ShortestPath[W semiring.Weight[W]](f *fst.MutableFst[W], n int) (*fst.MutableFst[W], error) {
	if n == 0 {
		return fst.New[W](), nil
	}
	if n != 1 {
		return nil, ErrUnsupportedNShortest
	}
	if f.Start() == fst.NoStateId {
		return nil, ErrNoStart
	}

	var zero W
	zero = zero.Zero()
	var one W
	one = one.One()

	dist := map[fst.StateId]W{}
	settled := map[fst.StateId]bool{}
	pred := map[fst.StateId]spItem[W]{}

	pq := make(spPQ[W], 0, f.NumStates())
	heap.Init(&pq)
	dist[f.Start()] = one
	pred[f.Start()] = spItem[W]{state: f.Start(), dist: one, prevID: fst.NoStateId}
	heap.Push(&pq, &spItem[W]{state: f.Start(), dist: one, prevID: fst.NoStateId})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*spItem[W])
		u := item.state
		if settled[u] {
			continue
		}
		settled[u] = true

		for i, arc := range f.Arcs(u) {
			cand := item.dist.Times(arc.Weight)
			best, known := dist[arc.NextState]
			switch {
			case !known || cand.Less(best):
				dist[arc.NextState] = cand
				pred[arc.NextState] = spItem[W]{state: arc.NextState, dist: cand, prevID: u, prevArcI: i}
				heap.Push(&pq, &spItem[W]{state: arc.NextState, dist: cand, prevID: u, prevArcI: i})
			case cand.Equal(best):
				// Tie-break: smaller previous-state id wins, then smaller
				// arc index.
				p := pred[arc.NextState]
				if u < p.prevID || (u == p.prevID && i < p.prevArcI) {
					pred[arc.NextState] = spItem[W]{state: arc.NextState, dist: cand, prevID: u, prevArcI: i}
				}
			}
		}
	}
	back := pred

	bestState := fst.NoStateId
	bestTotal := zero
	haveBest := false
	for s, d := range dist {
		if !settled[s] || !f.IsFinal(s) {
			continue
		}
		fw, _ := f.FinalWeight(s)
		total := d.Times(fw)
		if !haveBest || total.Less(bestTotal) || (total.Equal(bestTotal) && s < bestState) {
			bestTotal = total
			bestState = s
			haveBest = true
		}
	}
	if !haveBest {
		return nil, ErrNoAcceptingPath
	}

	return backtrace(f, back, bestState, bestTotal)
}

// backtrace walks the back-pointer chain from bestState to the start and
// emits a linear FST: one state per hop, arcs carrying the original labels
// and weights, final weight at the last state equal to bestTotal's
// "remainder" after replaying every arc weight (i.e. the original final
// weight of bestState).
func backtrace[W semiring.Weight[W]](f *fst.MutableFst[W], back map[fst.StateId]spItem[W], bestState fst.StateId, bestTotal W) (*fst.MutableFst[W], error) {
	type hop struct {
		ilabel, olabel fst.Label
		weight         W
	}
	var hops []hop

	cur := bestState
	for {
		item := back[cur]
		if item.prevID == fst.NoStateId {
			break
		}
		arc := f.Arcs(item.prevID)[item.prevArcI]
		hops = append(hops, hop{arc.ILabel, arc.OLabel, arc.Weight})
		cur = item.prevID
	}
	// hops was collected end-to-start; reverse to start-to-end.
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}

	out := fst.New[W]()
	prev := out.AddState()
	_ = out.SetStart(prev)
	for _, h := range hops {
		next := out.AddState()
		_ = out.AddArc(prev, fst.Arc[W]{ILabel: h.ilabel, OLabel: h.olabel, Weight: h.weight, NextState: next})
		prev = next
	}
	fw, _ := f.FinalWeight(bestState)
	_ = out.SetFinal(prev, fw)
	return out, nil
}
