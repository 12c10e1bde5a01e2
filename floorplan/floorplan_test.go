package floorplan_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chipletpart/chipletpart/floorplan"
)

func smallInstance() *floorplan.Instance {
	return &floorplan.Instance{
		Chiplets: []floorplan.ChipletSpec{
			{Name: "p0", MinAreaMM2: 4, AspectRatios: []float64{1, 2, 0.5}},
			{Name: "p1", MinAreaMM2: 9, AspectRatios: []float64{1, 2, 0.5}},
			{Name: "p2", MinAreaMM2: 1, AspectRatios: []float64{1}},
		},
		Bundles: []floorplan.Bundle{
			{From: 0, To: 1, BandwidthWeight: 1, ReachMM: 100},
			{From: 1, To: 2, BandwidthWeight: 2, ReachMM: 100},
		},
	}
}

func TestAnneal_ProducesFeasibleLayout(t *testing.T) {
	inst := smallInstance()
	params := floorplan.DefaultParams()
	res, err := floorplan.Anneal(inst, params, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.True(t, res.Feasible)
	require.Len(t, res.X, 3)

	for i := range res.W {
		require.Greater(t, res.W[i], 0.0)
		require.Greater(t, res.H[i], 0.0)
	}
}

func TestAnneal_RespectsReachInfeasibility(t *testing.T) {
	inst := smallInstance()
	inst.Bundles[0].ReachMM = 0.0001
	params := floorplan.DefaultParams()
	res, _ := floorplan.Anneal(inst, params, rand.New(rand.NewSource(1)))
	// A near-zero reach on a net spanning non-trivial chiplets should be
	// infeasible for every layout this search can find.
	require.False(t, res.Feasible)
}

func TestRunPool_DeterministicForFixedSeed(t *testing.T) {
	inst := smallInstance()
	params := floorplan.DefaultParams()
	r1, err1 := floorplan.RunPool(inst, params, 42, 4)
	r2, err2 := floorplan.RunPool(inst, params, 42, 4)
	require.Equal(t, err1, err2)
	require.Equal(t, r1.Objective, r2.Objective)
	require.Equal(t, r1.X, r2.X)
	require.Equal(t, r1.Y, r2.Y)
}

func TestRunPool_EmptyInstance(t *testing.T) {
	_, err := floorplan.RunPool(&floorplan.Instance{}, floorplan.DefaultParams(), 1, 2)
	require.ErrorIs(t, err, floorplan.ErrEmptyInstance)
}
