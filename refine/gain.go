package refine

import (
	"math"

	"github.com/chipletpart/chipletpart/hypergraph"
)

// costContribution returns the cost a single net contributes to the cut
// under the given partition assignment: zero if every endpoint of the
// net lands in the same partition, otherwise the net's bandwidth weight
// times a multiplier that penalizes nets whose current endpoint
// coordinates exceed the net's reach.
//
// coords may be nil (no floorplan run yet); in that case every cut net
// is treated as short-range, deferring the reach penalty until the next
// floorplanner update.
func costContribution(h *hypergraph.Hypergraph, eid int, part []int, coords Coordinates, longRangeMult float64) float64 {
	blocks, err := h.NetBlocks(eid)
	if err != nil || len(blocks) == 0 {
		return 0
	}
	first := part[blocks[0]]
	cut := false
	for _, v := range blocks[1:] {
		if part[v] != first {
			cut = true
			break
		}
	}
	if !cut {
		return 0
	}

	net, err := h.Net(eid)
	if err != nil {
		return 0
	}
	weight := net.Bandwidth
	if weight == 0 {
		weight = 1
	}
	if coords == nil || net.Reach <= 0 {
		return weight
	}
	if withinReach(h, eid, part, coords, net.Reach) {
		return weight
	}
	return weight * longRangeMult
}

// withinReach reports whether every pair of partitions touched by net
// eid is within net's reach (Manhattan distance) of one another, using the most recent
// floorplanner coordinates.
func withinReach(h *hypergraph.Hypergraph, eid int, part []int, coords Coordinates, reach float64) bool {
	blocks, err := h.NetBlocks(eid)
	if err != nil {
		return true
	}
	seen := make(map[int]bool, len(blocks))
	parts := make([]int, 0, len(blocks))
	for _, v := range blocks {
		p := part[v]
		if !seen[p] {
			seen[p] = true
			parts = append(parts, p)
		}
	}
	for i := 0; i < len(parts); i++ {
		for j := i + 1; j < len(parts); j++ {
			pi, pj := parts[i], parts[j]
			if pi >= len(coords) || pj >= len(coords) {
				continue
			}
			dx := coords[pi][0] - coords[pj][0]
			dy := coords[pi][1] - coords[pj][1]
			if math.Abs(dx)+math.Abs(dy) > reach {
				return false
			}
		}
	}
	return true
}

// totalCost sums costContribution over every net in the hypergraph.
func totalCost(h *hypergraph.Hypergraph, part []int, coords Coordinates, longRangeMult float64) float64 {
	var total float64
	for eid := 0; eid < h.NumNets(); eid++ {
		total += costContribution(h, eid, part, coords, longRangeMult)
	}
	return total
}

// moveGain is the reduction in total cost from moving vertex v out of
// its current partition into dest: the cost of v's incident nets before
// the move minus their cost after, evaluated against the coordinates in
// effect when the pass started (coordinates are refreshed only every
// FloorplanEveryNMoves moves, not on every trial move).
func moveGain(h *hypergraph.Hypergraph, part []int, v, dest int, coords Coordinates, longRangeMult float64) float64 {
	nets, err := h.BlockNets(v)
	if err != nil {
		return 0
	}
	before := 0.0
	for _, eid := range nets {
		before += costContribution(h, eid, part, coords, longRangeMult)
	}
	orig := part[v]
	part[v] = dest
	after := 0.0
	for _, eid := range nets {
		after += costContribution(h, eid, part, coords, longRangeMult)
	}
	part[v] = orig
	return before - after
}

// swapGain is the reduction in total cost from swapping the partition
// assignments of vertices a and b.
func swapGain(h *hypergraph.Hypergraph, part []int, a, b int, coords Coordinates, longRangeMult float64) float64 {
	if part[a] == part[b] {
		return 0
	}
	touched := uniqueNets(h, a, b)
	before := 0.0
	for _, eid := range touched {
		before += costContribution(h, eid, part, coords, longRangeMult)
	}
	part[a], part[b] = part[b], part[a]
	after := 0.0
	for _, eid := range touched {
		after += costContribution(h, eid, part, coords, longRangeMult)
	}
	part[a], part[b] = part[b], part[a]
	return before - after
}

func uniqueNets(h *hypergraph.Hypergraph, a, b int) []int {
	seen := make(map[int]bool)
	out := make([]int, 0)
	an, _ := h.BlockNets(a)
	bn, _ := h.BlockNets(b)
	for _, eid := range an {
		if !seen[eid] {
			seen[eid] = true
			out = append(out, eid)
		}
	}
	for _, eid := range bn {
		if !seen[eid] {
			seen[eid] = true
			out = append(out, eid)
		}
	}
	return out
}
