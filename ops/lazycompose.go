package ops

import (
	"container/heap"

	"github.com/ontypehq/libfst/fst"
	"github.com/ontypehq/libfst/semiring"
)

// lazyItem is one entry in ComposeShortestPath's priority queue. A state
// entry (isFinal == false) represents a candidate shortest distance to a
// product state of the implicit compose graph; a sink entry
// (isFinal == true) represents a candidate total weight of an accepting
// path that ends at prodId (distance-to-state times that state's combined
// final weight). Popping the first sink entry off the heap yields the
// global optimum by the same argument Dijkstra uses to stop at a single
// target: every entry still queued has distance no smaller than the one
// just popped, and Times is monotone with respect to the semiring order.
type lazyItem[W semiring.Weight[W]] struct {
	isFinal bool
	prodId  fst.StateId
	dist    W
}

type lazyPQ[W semiring.Weight[W]] []*lazyItem[W]

func (pq lazyPQ[W]) Len() int            { return len(pq) }
func (pq lazyPQ[W]) Less(i, j int) bool {
	if !pq[i].dist.Equal(pq[j].dist) {
		return pq[i].dist.Less(pq[j].dist)
	}
	return pq[i].prodId < pq[j].prodId
}
func (pq lazyPQ[W]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *lazyPQ[W]) Push(x any)         { *pq = append(*pq, x.(*lazyItem[W])) }
func (pq *lazyPQ[W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// lazyBackPtr is the back-pointer recorded for a product state: the
// predecessor's product id, the arc's labels, and the arc's weight (not
// the cumulative distance), needed to replay the winning path.
type lazyBackPtr[W semiring.Weight[W]] struct {
	prevId         fst.StateId
	ilabel, olabel fst.Label
	weight         W
}

// ComposeShortestPath is equivalent to ShortestPath(Compose(a, b), 1), but
// explores the product graph of §4.4 on demand via a priority queue keyed
// by (accumulated weight, tie-breaking id) instead of materializing the
// full composed FST first. Only n=1 is supported: n=0 returns an empty
// FST, any other n returns ErrUnsupportedNShortest. Returns an empty FST
// if either operand has no start state, and ErrNoAcceptingPath if no
// product state reachable from the start is final in both operands.
func ComposeShortestPath[W semiring.Weight[W]](a, b *fst.MutableFst[W], n int) (*fst.MutableFst[W], error) {
	if n == 0 {
		return fst.New[W](), nil
	}
	if n != 1 {
		return nil, ErrUnsupportedNShortest
	}
	if a.Start() == fst.NoStateId || b.Start() == fst.NoStateId {
		return fst.New[W](), nil
	}

	var one W
	one = one.One()

	ids := map[prodKey]fst.StateId{}
	keys := map[fst.StateId]prodKey{}
	nextId := fst.StateId(0)
	getId := func(key prodKey) fst.StateId {
		if id, ok := ids[key]; ok {
			return id
		}
		id := nextId
		nextId++
		ids[key] = id
		keys[id] = key
		return id
	}

	dist := map[fst.StateId]W{}
	pred := map[fst.StateId]lazyBackPtr[W]{}
	var pq lazyPQ[W]

	combinedFinal := func(key prodKey) (W, bool) {
		if !a.IsFinal(key.sa) || !b.IsFinal(key.sb) {
			var zero W
			return zero.Zero(), false
		}
		fwA, _ := a.FinalWeight(key.sa)
		fwB, _ := b.FinalWeight(key.sb)
		return fwA.Times(fwB), true
	}

	relax := func(id fst.StateId, key prodKey, d W, prevId fst.StateId, il, ol fst.Label, edgeW W) {
		cur, known := dist[id]
		replace := !known
		if known {
			if d.Less(cur) {
				replace = true
			} else if d.Equal(cur) {
				p := pred[id]
				if prevId < p.prevId || (prevId == p.prevId && (il < p.ilabel || (il == p.ilabel && ol < p.olabel))) {
					replace = true
				}
			}
		}
		if !replace {
			return
		}
		dist[id] = d
		pred[id] = lazyBackPtr[W]{prevId: prevId, ilabel: il, olabel: ol, weight: edgeW}
		heap.Push(&pq, &lazyItem[W]{prodId: id, dist: d})
		if fw, ok := combinedFinal(key); ok {
			heap.Push(&pq, &lazyItem[W]{isFinal: true, prodId: id, dist: d.Times(fw)})
		}
	}

	startKey := prodKey{a.Start(), b.Start(), 0}
	startId := getId(startKey)
	relax(startId, startKey, one, fst.NoStateId, 0, 0, one)

	settled := map[fst.StateId]bool{}
	var winner *lazyItem[W]

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*lazyItem[W])
		if item.isFinal {
			winner = item
			break
		}
		if settled[item.prodId] {
			continue
		}
		settled[item.prodId] = true
		key := keys[item.prodId]

		for _, t := range expandProduct(a, b, key.sa, key.sb, key.phi) {
			nextKey := prodKey{t.nextSA, t.nextSB, t.nextPhi}
			nid := getId(nextKey)
			cand := item.dist.Times(t.weight)
			relax(nid, nextKey, cand, item.prodId, t.ilabel, t.olabel, t.weight)
		}
	}

	if winner == nil {
		return nil, ErrNoAcceptingPath
	}
	return lazyBacktrace(pred, winner.prodId, keys, a, b)
}

// lazyBacktrace walks the back-pointer chain from the winning product id
// to the start and emits a linear FST reproducing the path, with the
// final state's weight set to the combined final weight of the winning
// product state.
func lazyBacktrace[W semiring.Weight[W]](pred map[fst.StateId]lazyBackPtr[W], winner fst.StateId, keys map[fst.StateId]prodKey, a, b *fst.MutableFst[W]) (*fst.MutableFst[W], error) {
	type hop struct {
		ilabel, olabel fst.Label
		weight         W
	}
	var hops []hop

	cur := winner
	for {
		bp := pred[cur]
		if bp.prevId == fst.NoStateId {
			break
		}
		hops = append(hops, hop{bp.ilabel, bp.olabel, bp.weight})
		cur = bp.prevId
	}
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

	key := keys[winner]
	fwA, _ := a.FinalWeight(key.sa)
	fwB, _ := b.FinalWeight(key.sb)
	_ = out.SetFinal(prev, fwA.Times(fwB))
	return out, nil
}
