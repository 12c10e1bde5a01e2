package refine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chipletpart/chipletpart/hypergraph"
	"github.com/chipletpart/chipletpart/refine"
)

// chainHypergraph builds 6 equal-weight blocks in a chain: net i connects
// block i and i+1. Balanced across 2 parts, the minimum cut is achieved
// by splitting the chain down the middle.
func chainHypergraph(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	blocks := make([]hypergraph.Block, 6)
	for i := range blocks {
		blocks[i] = hypergraph.Block{Name: "b", Area: 1, Power: 1, LogicFrac: 1}
	}
	nets := make([]hypergraph.Net, 5)
	netBlocks := make([][]int, 5)
	for i := 0; i < 5; i++ {
		nets[i] = hypergraph.Net{Weight: []float64{1}, Bandwidth: 1, Reach: 0}
		netBlocks[i] = []int{i, i + 1}
	}
	h, err := hypergraph.New(blocks, nets, netBlocks)
	require.NoError(t, err)
	return h
}

func TestFMPass_ImprovesOrHoldsCut(t *testing.T) {
	h := chainHypergraph(t)
	state := refine.PartitionState{Part: []int{0, 0, 0, 1, 1, 1}, K: 2}
	cfg := refine.DefaultConfig()
	cfg.BalanceFactor = 0.5

	before := 0
	for i := 0; i < 5; i++ {
		if state.Part[i] != state.Part[i+1] {
			before++
		}
	}

	gain, _, _, err := refine.FMPass(h, &state, cfg, nil, nil, refine.Observer{})
	require.NoError(t, err)
	require.GreaterOrEqual(t, gain, 0.0)
	require.NoError(t, state.Validate(false))

	after := 0
	for i := 0; i < 5; i++ {
		if state.Part[i] != state.Part[i+1] {
			after++
		}
	}
	require.LessOrEqual(t, after, before)
}

func TestKLPass_RespectsBalance(t *testing.T) {
	h := chainHypergraph(t)
	state := refine.PartitionState{Part: []int{0, 0, 0, 1, 1, 1}, K: 2}
	cfg := refine.DefaultConfig()
	cfg.BalanceFactor = 0.01 // effectively requires exact 3/3 split

	_, _, _, err := refine.KLPass(h, &state, cfg, nil, nil, refine.Observer{})
	require.NoError(t, err)

	counts := map[int]int{}
	for _, p := range state.Part {
		counts[p]++
	}
	require.Equal(t, 3, counts[0])
	require.Equal(t, 3, counts[1])
}

func TestRefiner_Run_Converges(t *testing.T) {
	h := chainHypergraph(t)
	cfg := refine.DefaultConfig()
	cfg.BalanceFactor = 0.5
	cfg.MaxPasses = 5

	r := &refine.Refiner{H: h, Cfg: cfg}
	initial := refine.PartitionState{Part: []int{0, 1, 0, 1, 0, 1}, K: 2}
	res, err := r.Run(initial, nil)
	require.NoError(t, err)
	require.True(t, res.Feasible)
	require.GreaterOrEqual(t, res.TotalGain, 0.0)
	require.LessOrEqual(t, res.PassesRun, cfg.MaxPasses)
}

func TestFMPass_InvalidPartitionRejected(t *testing.T) {
	h := chainHypergraph(t)
	state := refine.PartitionState{Part: []int{0, 0, 0, 1, 1, 9}, K: 2}
	_, _, _, err := refine.FMPass(h, &state, refine.DefaultConfig(), nil, nil, refine.Observer{})
	require.ErrorIs(t, err, refine.ErrInvalidPartition)
}
