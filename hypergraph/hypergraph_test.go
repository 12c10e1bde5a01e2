package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chipletpart/chipletpart/hypergraph"
)

func sampleBlocks() []hypergraph.Block {
	return []hypergraph.Block{
		{Name: "A", Area: 1, Power: 1, Tech: "7nm", LogicFrac: 1},
		{Name: "B", Area: 2, Power: 2, Tech: "7nm", LogicFrac: 1},
		{Name: "C", Area: 3, Power: 1, Tech: "7nm", MemoryFrac: 1},
	}
}

func TestNew_BuildsConsistentCSR(t *testing.T) {
	blocks := sampleBlocks()
	nets := []hypergraph.Net{
		{Weight: []float64{1}, IOType: "UCIe", Reach: 1, Bandwidth: 1},
		{Weight: []float64{2}, IOType: "UCIe", Reach: 1, Bandwidth: 2},
	}
	netBlocks := [][]int{{0, 1}, {1, 2}}

	h, err := hypergraph.New(blocks, nets, netBlocks)
	require.NoError(t, err)
	require.Equal(t, 3, h.NumBlocks())
	require.Equal(t, 2, h.NumNets())

	nb0, err := h.NetBlocks(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, nb0)

	bn1, err := h.BlockNets(1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, bn1)

	bn0, err := h.BlockNets(0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, bn0)
}

func TestNew_RejectsInvalidID(t *testing.T) {
	blocks := sampleBlocks()
	nets := []hypergraph.Net{{Weight: []float64{1}}}
	_, err := hypergraph.New(blocks, nets, [][]int{{0, 5}})
	require.ErrorIs(t, err, hypergraph.ErrInvalidID)
}

func TestNew_RejectsDuplicateBlockInNet(t *testing.T) {
	blocks := sampleBlocks()
	nets := []hypergraph.Net{{Weight: []float64{1}}}
	_, err := hypergraph.New(blocks, nets, [][]int{{0, 0}})
	require.ErrorIs(t, err, hypergraph.ErrDuplicateBlockInNet)
}

func TestNew_RejectsEmptyNet(t *testing.T) {
	blocks := sampleBlocks()
	nets := []hypergraph.Net{{Weight: []float64{1}}}
	_, err := hypergraph.New(blocks, nets, [][]int{{0}})
	require.ErrorIs(t, err, hypergraph.ErrEmptyNet)
}

func TestBlock_ValidateFractions(t *testing.T) {
	bad := hypergraph.Block{MemoryFrac: 0.5, LogicFrac: 0.6, AnalogFrac: 0}
	require.ErrorIs(t, bad.Validate(), hypergraph.ErrFractionsInvalid)

	good := hypergraph.Block{MemoryFrac: 0.5, LogicFrac: 0.25, AnalogFrac: 0.25}
	require.NoError(t, good.Validate())
}

func TestBalanceBounds(t *testing.T) {
	blocks := sampleBlocks()
	nets := []hypergraph.Net{{Weight: []float64{1}}}
	h, err := hypergraph.New(blocks, nets, [][]int{{0, 1}})
	require.NoError(t, err)

	lower, upper := h.BalanceBounds(2, 0.1)
	total := h.TotalWeight()
	for d := range total {
		base := total[d] / 2
		require.InDelta(t, base*0.9, lower[d], 1e-9)
		require.InDelta(t, base*1.1, upper[d], 1e-9)
	}
}
