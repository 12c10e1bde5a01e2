package refine

import (
	"container/heap"

	"github.com/chipletpart/chipletpart/hypergraph"
)

// swapItem is one candidate pairwise swap in the KL priority queue.
type swapItem struct {
	a, b int
	gain float64
}

type swapPQ []*swapItem

func (pq swapPQ) Len() int            { return len(pq) }
func (pq swapPQ) Less(i, j int) bool  { return pq[i].gain > pq[j].gain }
func (pq swapPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *swapPQ) Push(x interface{}) { *pq = append(*pq, x.(*swapItem)) }
func (pq *swapPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// KLPass runs one Kernighan-Lin pass over pairs of vertices in different
// partitions that share at least one net: repeatedly pop the
// highest-gain legal swap, lock both endpoints, and continue until no
// legal swap remains or MaxMovesPerPass is reached. As with FMPass, the
// final state rolls back to the best-prefix cumulative gain, and coords
// is refreshed every cfg.FloorplanEveryNMoves applied swaps when
// floorplan is non-nil.
func KLPass(h *hypergraph.Hypergraph, state *PartitionState, cfg Config, coords Coordinates, floorplan FloorplanRunner, obs Observer) (cumulativeGain float64, finalCoords Coordinates, feasible bool, err error) {
	if err := state.Validate(true); err != nil {
		return 0, nil, true, err
	}
	feasible = true
	part := state.Part
	gate := newBalanceGate(h, part, state.K, cfg.BalanceFactor)
	locked := make([]bool, len(part))

	pq := make(swapPQ, 0)
	heap.Init(&pq)

	candidatePairs := func() map[[2]int]bool {
		pairs := make(map[[2]int]bool)
		for eid := 0; eid < h.NumNets(); eid++ {
			blocks, err := h.NetBlocks(eid)
			if err != nil {
				continue
			}
			for i := 0; i < len(blocks); i++ {
				for j := i + 1; j < len(blocks); j++ {
					a, b := blocks[i], blocks[j]
					if part[a] == part[b] {
						continue
					}
					if a > b {
						a, b = b, a
					}
					pairs[[2]int{a, b}] = true
				}
			}
		}
		return pairs
	}

	pushAll := func() {
		for pair := range candidatePairs() {
			a, b := pair[0], pair[1]
			if locked[a] || locked[b] {
				continue
			}
			g := swapGain(h, part, a, b, coords, cfg.LongRangeMultiplier)
			heap.Push(&pq, &swapItem{a: a, b: b, gain: g})
		}
	}
	pushAll()

	type undo struct {
		a, b, pa, pb int
		gain         float64
	}
	var history []undo
	running := 0.0
	bestCum := 0.0
	bestIdx := 0

	moves := 0
	for pq.Len() > 0 && moves < cfg.MaxMovesPerPass {
		item := heap.Pop(&pq).(*swapItem)
		a, b := item.a, item.b
		if locked[a] || locked[b] || part[a] == part[b] {
			continue
		}
		cur := swapGain(h, part, a, b, coords, cfg.LongRangeMultiplier)
		if cur != item.gain {
			continue
		}
		pa, pb := part[a], part[b]
		if !gate.canSwap(a, pa, b, pb) {
			continue
		}

		gate.applySwap(a, pa, b, pb)
		part[a], part[b] = pb, pa
		locked[a], locked[b] = true, true
		running += item.gain
		history = append(history, undo{a: a, b: b, pa: pa, pb: pb, gain: item.gain})
		obs.move(a, pa, pb, item.gain)
		obs.move(b, pb, pa, item.gain)
		moves++

		if running > bestCum {
			bestCum = running
			bestIdx = len(history)
		}

		if floorplan != nil && cfg.FloorplanEveryNMoves > 0 && moves%cfg.FloorplanEveryNMoves == 0 {
			refreshed, ok := floorplan(*state)
			coords = refreshed
			feasible = ok
		}
	}

	for i := len(history) - 1; i >= bestIdx; i-- {
		u := history[i]
		gate.applySwap(u.a, part[u.a], u.b, part[u.b])
		part[u.a], part[u.b] = u.pa, u.pb
	}

	obs.pass(1, bestCum, bestIdx)
	return bestCum, coords, feasible, nil
}
