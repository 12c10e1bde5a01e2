package refine

import "github.com/chipletpart/chipletpart/hypergraph"

// balanceGate tracks the running per-partition weight vectors so moves
// and swaps can be checked for legality in O(1) without rescanning the
// whole partition.
type balanceGate struct {
	h          *hypergraph.Hypergraph
	lower      []float64
	upper      []float64
	partWeight [][]float64 // per partition, per weight dimension
}

func newBalanceGate(h *hypergraph.Hypergraph, part []int, k int, factor float64) *balanceGate {
	lower, upper := h.BalanceBounds(k, factor)
	pw := make([][]float64, k)
	for i := range pw {
		pw[i] = make([]float64, hypergraphWeightDims)
	}
	for v, p := range part {
		b, err := h.Block(v)
		if err != nil {
			continue
		}
		w := b.Weight()
		for d := range w {
			pw[p][d] += w[d]
		}
	}
	return &balanceGate{h: h, lower: lower, upper: upper, partWeight: pw}
}

// canMove reports whether moving vertex v from its current partition to
// dest keeps both partitions within their balance bounds.
func (g *balanceGate) canMove(v, from, dest int) bool {
	b, err := g.h.Block(v)
	if err != nil {
		return false
	}
	w := b.Weight()
	for d := range w {
		if g.partWeight[from][d]-w[d] < g.lower[d] {
			return false
		}
		if g.partWeight[dest][d]+w[d] > g.upper[d] {
			return false
		}
	}
	return true
}

// applyMove commits the weight-vector bookkeeping for a move already
// judged legal by canMove.
func (g *balanceGate) applyMove(v, from, dest int) {
	b, _ := g.h.Block(v)
	w := b.Weight()
	for d := range w {
		g.partWeight[from][d] -= w[d]
		g.partWeight[dest][d] += w[d]
	}
}

// canSwap reports whether swapping a (currently in pa) and b (currently
// in pb) keeps both partitions within bounds.
func (g *balanceGate) canSwap(a, pa, b, pb int) bool {
	ba, errA := g.h.Block(a)
	bb, errB := g.h.Block(b)
	if errA != nil || errB != nil {
		return false
	}
	wa, wb := ba.Weight(), bb.Weight()
	for d := range wa {
		newPA := g.partWeight[pa][d] - wa[d] + wb[d]
		newPB := g.partWeight[pb][d] - wb[d] + wa[d]
		if newPA < g.lower[d] || newPA > g.upper[d] {
			return false
		}
		if newPB < g.lower[d] || newPB > g.upper[d] {
			return false
		}
	}
	return true
}

func (g *balanceGate) applySwap(a, pa, b, pb int) {
	ba, _ := g.h.Block(a)
	bb, _ := g.h.Block(b)
	wa, wb := ba.Weight(), bb.Weight()
	for d := range wa {
		g.partWeight[pa][d] += wb[d] - wa[d]
		g.partWeight[pb][d] += wa[d] - wb[d]
	}
}
