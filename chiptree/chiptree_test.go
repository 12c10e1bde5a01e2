package chiptree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chipletpart/chipletpart/chiptree"
	"github.com/chipletpart/chipletpart/techlib"
)

func baseWafer() *techlib.WaferProcess {
	return &techlib.WaferProcess{
		DiameterMM: 300, EdgeExclusionMM: 3, ProcessYield: 0.95,
		DicingDistanceMM: 0.1, ReticleXMM: 26, ReticleYMM: 33,
	}
}

func baseAssembly() *techlib.Assembly {
	return &techlib.Assembly{
		PickAndPlaceLifetimeSec: 1, BondingLifetimeSec: 1,
		PickAndPlaceGroupSize: 1, BondingGroupSize: 1,
		AlignmentYield: 0.99, BondingYield: 0.999,
		BondingPitchMM: 0.1, MaxPadCurrentDensity: 1, CoreVoltageV: 1,
	}
}

func baseTest() *techlib.Test {
	return &techlib.Test{
		TimePerTestCycleSec: 1e-7, CostPerSecond: 0.01, SamplesPerInput: 1,
		Self:     techlib.TestConfig{DefectCoverage: 0.9},
		Assembly: techlib.TestConfig{DefectCoverage: 0.9},
	}
}

func singleChipTree(area float64, bbCost techlib.Optional[float64]) *chiptree.Tree {
	tree := chiptree.NewTree()
	chip := &chiptree.Chip{
		Name: "root", Wafer: baseWafer(), Assembly: baseAssembly(), Test: baseTest(),
		Layers:      []techlib.Layer{{Active: true, CostPerMM2: 1, DefectDensityPerMM2: 0.01, CriticalAreaFraction: 1}},
		CoreAreaMM2: area, AspectRatio: 1, Quantity: 1000,
		BBCost: bbCost,
	}
	_, _ = tree.AddChip(techlib.None[int](), chip)
	return tree
}

func TestInitialize_SingleChipYieldInRange(t *testing.T) {
	tree := singleChipTree(10, techlib.None[float64]())
	err := tree.Initialize(0.25, 0.1, 1, nil)
	require.NoError(t, err)

	root, err := tree.Chip(tree.Root())
	require.NoError(t, err)
	_, _, yield, cost, valid := root.Derived()
	require.True(t, valid)
	require.GreaterOrEqual(t, yield, 0.0)
	require.LessOrEqual(t, yield, 1.0)
	require.Greater(t, cost, 0.0)
}

func TestInitialize_ZeroLayerYieldGivesInfiniteCost(t *testing.T) {
	tree := chiptree.NewTree()
	chip := &chiptree.Chip{
		Name: "root", Wafer: baseWafer(), Assembly: baseAssembly(), Test: baseTest(),
		Layers:      []techlib.Layer{{Active: true, CostPerMM2: 1, DefectDensityPerMM2: 1e9, CriticalAreaFraction: 1}},
		CoreAreaMM2: 10, AspectRatio: 1, Quantity: 1,
	}
	_, _ = tree.AddChip(techlib.None[int](), chip)
	require.NoError(t, tree.Initialize(0.25, 0.1, 1, nil))

	root, _ := tree.Chip(tree.Root())
	_, _, yield, cost, valid := root.Derived()
	require.InDelta(t, 0, yield, 1e-9)
	require.True(t, math.IsInf(cost, 1))
	require.False(t, valid)
}

func TestInitialize_BBCostOverride(t *testing.T) {
	tree := singleChipTree(10, techlib.Some(42.0))
	require.NoError(t, tree.Initialize(0.25, 0.1, 1, nil))
	root, _ := tree.Chip(tree.Root())
	_, _, _, cost, _ := root.Derived()
	require.InDelta(t, 42.0, cost, 1e-9)
}

func TestDiesPerWafer_Positive(t *testing.T) {
	w := baseWafer()
	n := chiptree.DiesPerWafer(w, 10, 10)
	require.Greater(t, n, 0)
}

func TestDiesPerWafer_GridFlagIgnoresCircle(t *testing.T) {
	w := baseWafer()
	w.WaferFillGrid = false
	nCircle := chiptree.DiesPerWafer(w, 10, 10)
	w.WaferFillGrid = true
	nGrid := chiptree.DiesPerWafer(w, 10, 10)
	require.GreaterOrEqual(t, nGrid, nCircle)
}
