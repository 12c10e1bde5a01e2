package refine

import (
	"container/heap"

	"github.com/chipletpart/chipletpart/hypergraph"
)

// gainItem is one candidate move in the FM priority queue: move vertex v
// to part dest, worth gain. Stale entries (v already locked, or a
// superseded gain for the same (v,dest) pair) are left in the heap and
// discarded on pop, the same lazy-decrease-key approach used elsewhere
// for a min/max-heap over a changing key.
type gainItem struct {
	v, dest int
	gain    float64
}

// gainPQ is a max-heap of *gainItem ordered by descending gain.
type gainPQ []*gainItem

func (pq gainPQ) Len() int            { return len(pq) }
func (pq gainPQ) Less(i, j int) bool  { return pq[i].gain > pq[j].gain }
func (pq gainPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *gainPQ) Push(x interface{}) { *pq = append(*pq, x.(*gainItem)) }
func (pq *gainPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// FMPass runs one Fiduccia-Mattheyses pass: repeatedly pop the
// highest-gain legal move, lock the moved vertex, and continue until the
// queue is exhausted or MaxMovesPerPass is reached. It then rolls back to
// whichever prefix of the move sequence achieved the best cumulative
// gain, the standard FM "best prefix" rule that tolerates temporarily
// negative moves in pursuit of a better local optimum.
//
// state is mutated in place to the best-prefix partition. coords pins the
// reach-aware gain evaluation to the floorplanner's last reported
// coordinates; if floorplan is non-nil and cfg.FloorplanEveryNMoves is
// positive, coords is refreshed by calling floorplan every N applied
// moves (zero means coords stays fixed for the whole pass). FMPass
// returns the coordinates in effect when it finished, for the caller to
// carry into the next pass.
func FMPass(h *hypergraph.Hypergraph, state *PartitionState, cfg Config, coords Coordinates, floorplan FloorplanRunner, obs Observer) (cumulativeGain float64, finalCoords Coordinates, feasible bool, err error) {
	if err := state.Validate(true); err != nil {
		return 0, nil, true, err
	}
	feasible = true
	part := state.Part
	k := state.K
	gate := newBalanceGate(h, part, k, cfg.BalanceFactor)

	locked := make([]bool, len(part))
	pq := make(gainPQ, 0, len(part)*k)
	heap.Init(&pq)

	pushCandidates := func(v int) {
		if locked[v] {
			return
		}
		from := part[v]
		for dest := 0; dest < k; dest++ {
			if dest == from {
				continue
			}
			g := moveGain(h, part, v, dest, coords, cfg.LongRangeMultiplier)
			heap.Push(&pq, &gainItem{v: v, dest: dest, gain: g})
		}
	}
	for v := range part {
		pushCandidates(v)
	}

	type undo struct {
		v, from, dest int
		gain          float64
	}
	var history []undo
	running := 0.0
	bestCum := 0.0
	bestIdx := 0

	moves := 0
	for pq.Len() > 0 && moves < cfg.MaxMovesPerPass {
		item := heap.Pop(&pq).(*gainItem)
		v := item.v
		if locked[v] || part[v] == item.dest {
			continue
		}
		from := part[v]
		// Stale-gain check: recompute against current state; if it no
		// longer matches, the candidate is outdated and discarded.
		cur := moveGain(h, part, v, item.dest, coords, cfg.LongRangeMultiplier)
		if cur != item.gain {
			continue
		}
		if !gate.canMove(v, from, item.dest) {
			continue
		}

		gate.applyMove(v, from, item.dest)
		part[v] = item.dest
		locked[v] = true
		running += item.gain
		history = append(history, undo{v: v, from: from, dest: item.dest, gain: item.gain})
		obs.move(v, from, item.dest, item.gain)
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

		for _, eid := range blockNetsOrEmpty(h, v) {
			for _, u := range netBlocksOrEmpty(h, eid) {
				pushCandidates(u)
			}
		}
	}

	// Roll back every move after bestIdx.
	for i := len(history) - 1; i >= bestIdx; i-- {
		u := history[i]
		gate.applyMove(u.v, u.dest, u.from)
		part[u.v] = u.from
	}

	obs.pass(0, bestCum, bestIdx)
	return bestCum, coords, feasible, nil
}

func blockNetsOrEmpty(h *hypergraph.Hypergraph, v int) []int {
	nets, err := h.BlockNets(v)
	if err != nil {
		return nil
	}
	return nets
}

func netBlocksOrEmpty(h *hypergraph.Hypergraph, eid int) []int {
	blocks, err := h.NetBlocks(eid)
	if err != nil {
		return nil
	}
	return blocks
}
