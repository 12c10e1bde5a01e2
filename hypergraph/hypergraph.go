package hypergraph

import "sort"

// New builds a Hypergraph from blocks, nets, and each net's incident block
// indices (netBlocks[i] lists the block indices spanned by nets[i]).
//
// Implementation:
//   - Stage 1: validate every block index referenced by a net is in range
//     and appears at most once within that net.
//   - Stage 2: derive net→blocks CSR directly from netBlocks (stable order
//     as given).
//   - Stage 3: derive block→nets CSR by inverting net→blocks, grouping by
//     block index and preserving ascending net-ID order within each group.
//
// Complexity: O(V + E + sum of net degrees).
func New(blocks []Block, nets []Net, netBlocks [][]int) (*Hypergraph, error) {
	if len(nets) != len(netBlocks) {
		return nil, ErrInvalidID
	}

	v := len(blocks)
	for _, b := range blocks {
		if err := b.Validate(); err != nil {
			return nil, err
		}
	}

	netBlockOffsets := make([]int, len(nets)+1)
	var netBlockList []int

	// blockNetPairs[vid] accumulates the net IDs incident to block vid.
	blockNetPairs := make([][]int, v)

	for eid, incident := range netBlocks {
		if len(incident) < 2 {
			return nil, ErrEmptyNet
		}
		seen := make(map[int]struct{}, len(incident))
		for _, vid := range incident {
			if vid < 0 || vid >= v {
				return nil, ErrInvalidID
			}
			if _, dup := seen[vid]; dup {
				return nil, ErrDuplicateBlockInNet
			}
			seen[vid] = struct{}{}
		}
		netBlockOffsets[eid] = len(netBlockList)
		netBlockList = append(netBlockList, incident...)
		for _, vid := range incident {
			blockNetPairs[vid] = append(blockNetPairs[vid], eid)
		}
	}
	netBlockOffsets[len(nets)] = len(netBlockList)

	blockNetOffsets := make([]int, v+1)
	var blockNetList []int
	for vid := 0; vid < v; vid++ {
		nids := blockNetPairs[vid]
		sort.Ints(nids)
		blockNetOffsets[vid] = len(blockNetList)
		blockNetList = append(blockNetList, nids...)
	}
	blockNetOffsets[v] = len(blockNetList)

	return &Hypergraph{
		blocks:          append([]Block(nil), blocks...),
		nets:            append([]Net(nil), nets...),
		netBlockOffsets: netBlockOffsets,
		netBlockList:    netBlockList,
		blockNetOffsets: blockNetOffsets,
		blockNetList:    blockNetList,
	}, nil
}

// NumBlocks returns V.
func (h *Hypergraph) NumBlocks() int { return len(h.blocks) }

// NumNets returns E.
func (h *Hypergraph) NumNets() int { return len(h.nets) }

// Block returns the block at vid, or ErrInvalidID if out of range.
func (h *Hypergraph) Block(vid int) (Block, error) {
	if vid < 0 || vid >= len(h.blocks) {
		return Block{}, ErrInvalidID
	}
	return h.blocks[vid], nil
}

// Net returns the net at eid, or ErrInvalidID if out of range.
func (h *Hypergraph) Net(eid int) (Net, error) {
	if eid < 0 || eid >= len(h.nets) {
		return Net{}, ErrInvalidID
	}
	return h.nets[eid], nil
}

// NetBlocks returns the (read-only) slice of block indices incident to eid.
// Complexity: O(1).
func (h *Hypergraph) NetBlocks(eid int) ([]int, error) {
	if eid < 0 || eid >= len(h.nets) {
		return nil, ErrInvalidID
	}
	return h.netBlockList[h.netBlockOffsets[eid]:h.netBlockOffsets[eid+1]], nil
}

// BlockNets returns the (read-only, ascending) slice of net indices
// incident to vid. Complexity: O(1).
func (h *Hypergraph) BlockNets(vid int) ([]int, error) {
	if vid < 0 || vid >= len(h.blocks) {
		return nil, ErrInvalidID
	}
	return h.blockNetList[h.blockNetOffsets[vid]:h.blockNetOffsets[vid+1]], nil
}

// TotalWeight returns the sum of Block.Weight() across all blocks, one
// entry per weight dimension.
func (h *Hypergraph) TotalWeight() []float64 {
	total := make([]float64, NumWeightDims)
	for _, b := range h.blocks {
		w := b.Weight()
		for d := range total {
			total[d] += w[d]
		}
	}
	return total
}

// BalanceBounds returns, for a k-way partition, the per-dimension
// [lower, upper] weight window each part must stay within: the ideal
// per-part share of TotalWeight scaled by (1±factor).
//
// factor is typically small (e.g. 0.05 for ±5%). k must be >= 1.
func (h *Hypergraph) BalanceBounds(k int, factor float64) (lower, upper []float64) {
	total := h.TotalWeight()
	lower = make([]float64, NumWeightDims)
	upper = make([]float64, NumWeightDims)
	for d, t := range total {
		base := t / float64(k)
		lower[d] = base * (1 - factor)
		upper[d] = base * (1 + factor)
	}
	return lower, upper
}
