package partition_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chipletpart/chipletpart/chiptree"
	"github.com/chipletpart/chipletpart/floorplan"
	"github.com/chipletpart/chipletpart/hypergraph"
	"github.com/chipletpart/chipletpart/partition"
	"github.com/chipletpart/chipletpart/refine"
	"github.com/chipletpart/chipletpart/techlib"
)

func chainHypergraph(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	blocks := make([]hypergraph.Block, 8)
	for i := range blocks {
		blocks[i] = hypergraph.Block{Name: "b", Area: 1, Power: 0.1, LogicFrac: 1}
	}
	nets := make([]hypergraph.Net, 7)
	netBlocks := make([][]int, 7)
	for i := 0; i < 7; i++ {
		nets[i] = hypergraph.Net{Weight: []float64{1}, Bandwidth: 1, IOType: "std", Reach: 1000}
		netBlocks[i] = []int{i, i + 1}
	}
	h, err := hypergraph.New(blocks, nets, netBlocks)
	require.NoError(t, err)
	return h
}

func smallCatalog(tech string) techlib.Catalog {
	wafer := &techlib.WaferProcess{
		DiameterMM: 300, EdgeExclusionMM: 3, ProcessYield: 0.95,
		DicingDistanceMM: 0.1, ReticleXMM: 26, ReticleYMM: 33,
	}
	assembly := &techlib.Assembly{
		PickAndPlaceLifetimeSec: 1, BondingLifetimeSec: 1,
		PickAndPlaceGroupSize: 1, BondingGroupSize: 1,
		AlignmentYield: 0.99, BondingYield: 0.999,
		BondingPitchMM: 0.1, MaxPadCurrentDensity: 1, CoreVoltageV: 1,
	}
	test := &techlib.Test{
		TimePerTestCycleSec: 1e-7, CostPerSecond: 0.01, SamplesPerInput: 1,
		Self:     techlib.TestConfig{DefectCoverage: 0.9},
		Assembly: techlib.TestConfig{DefectCoverage: 0.9},
	}
	layers := []techlib.Layer{{Active: true, CostPerMM2: 1, DefectDensityPerMM2: 0.001, CriticalAreaFraction: 1}}
	io := &techlib.IO{Type: "std", RxAreaMM2: 0.001, TxAreaMM2: 0.001, BandwidthBPS: 1e9, WireCount: 1, ReachMM: 1000}

	return techlib.Catalog{
		Techs: map[string]techlib.Library{
			tech: {Name: tech, Wafer: wafer, Assembly: assembly, Test: test, Layers: layers},
		},
		IOs: map[string]*techlib.IO{"std": io},
	}
}

func baseOptions() partition.Options {
	return partition.Options{
		MinParts: 2,
		MaxParts: 2,
		Tech:     "7nm",
		Seed:     1,
		Workers:  2,
		TopN:     3,
		EvalParams: chiptree.EvalParams{
			DieSeparationMM: 0.1,
			BondingPitchMM:  0.1,
			PadAspectRatio:  1,
		},
		FloorplanParams: floorplan.DefaultParams(),
		RefineCfg:       refine.DefaultConfig(),
	}
}

func TestMetisSeed_ProducesDensePartition(t *testing.T) {
	h := chainHypergraph(t)
	s, err := partition.MetisSeed(h, 3)
	require.NoError(t, err)
	require.NoError(t, s.Validate(true))
	require.Equal(t, 3, s.K)
}

func TestRandomSeed_EveryPartitionUsed(t *testing.T) {
	h := chainHypergraph(t)
	s := partition.RandomSeed(h, 4, rand.New(rand.NewSource(7)))
	require.NoError(t, s.Validate(true))
}

func TestSpectralSeed_ProducesDensePartition(t *testing.T) {
	h := chainHypergraph(t)
	s, err := partition.SpectralSeed(h, 3, 7)
	require.NoError(t, err)
	require.NoError(t, s.Validate(true))
}

func TestRun_FindsFeasibleSolution(t *testing.T) {
	h := chainHypergraph(t)
	catalog := smallCatalog("7nm")
	opts := baseOptions()

	report, err := partition.Run(h, catalog, opts)
	require.NoError(t, err)
	require.True(t, report.Best.Valid)
	require.Less(t, report.Best.Cost, 1e18)
}

func TestRun_EmptyHypergraph(t *testing.T) {
	h, err := hypergraph.New(nil, nil, nil)
	require.NoError(t, err)
	_, err = partition.Run(h, smallCatalog("7nm"), baseOptions())
	require.ErrorIs(t, err, partition.ErrEmptyHypergraph)
}
