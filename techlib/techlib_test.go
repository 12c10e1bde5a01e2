package techlib_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chipletpart/chipletpart/techlib"
)

func TestWaferProcess_StaticLatch(t *testing.T) {
	w := &techlib.WaferProcess{
		DiameterMM: 300, EdgeExclusionMM: 3, ProcessYield: 0.9,
		DicingDistanceMM: 0.1, ReticleXMM: 26, ReticleYMM: 33,
	}
	require.NoError(t, w.FullyDefined())
	w.MakeStatic()
	require.True(t, w.IsStatic())
	require.ErrorIs(t, w.SetProcessYield(0.5), techlib.ErrStaticMutation)
}

func TestWaferProcess_MissingField(t *testing.T) {
	w := &techlib.WaferProcess{}
	require.ErrorIs(t, w.FullyDefined(), techlib.ErrMissingField)
}

func TestLayer_Yield(t *testing.T) {
	l := &techlib.Layer{DefectDensityPerMM2: 0.1, CriticalAreaFraction: 1}
	require.NoError(t, l.FullyDefined())
	y := l.Yield(2)
	require.InDelta(t, math.Exp(-0.2), y, 1e-9)

	zeroDefect := &techlib.Layer{DefectDensityPerMM2: 0}
	require.InDelta(t, 1.0, zeroDefect.Yield(10), 1e-9)
}

func TestAssembly_PowerPerPad(t *testing.T) {
	a := &techlib.Assembly{
		MaxPadCurrentDensity: 1, BondingPitchMM: 4, CoreVoltageV: 1,
		PickAndPlaceLifetimeSec: 1, BondingLifetimeSec: 1,
		PickAndPlaceGroupSize: 1, BondingGroupSize: 1,
	}
	got := a.PowerPerPad()
	want := 1 * math.Pi * 1 * 1 * 1 // (4/4)^2 = 1
	require.InDelta(t, want, got, 1e-9)
}

func TestAssembly_MachineCostPerSecondOverride(t *testing.T) {
	a := &techlib.Assembly{
		BondingMachineCost: 1e9, BondingLifetimeSec: 1, BondingUptime: 1,
		PickAndPlaceLifetimeSec: 1, PickAndPlaceGroupSize: 1, BondingGroupSize: 1,
	}
	require.Greater(t, a.BondingCostPerSecond(), 0.0)

	a.BBCostPerSecond = techlib.Some(0.25)
	require.InDelta(t, 0.25, a.BondingCostPerSecond(), 1e-12)
}

func TestAssembly_Yield(t *testing.T) {
	a := &techlib.Assembly{
		AlignmentYield: 0.99, BondingYield: 0.999, DielectricBondDefectDensity: 0.01,
		PickAndPlaceLifetimeSec: 1, BondingLifetimeSec: 1,
		PickAndPlaceGroupSize: 1, BondingGroupSize: 1,
	}
	y := a.Yield(2, 4, 10)
	want := math.Pow(0.99, 2) * math.Pow(0.999, 4) / (1 + 0.01*10)
	require.InDelta(t, want, y, 1e-9)
}

func TestTest_SelfYieldAndQuality(t *testing.T) {
	tst := &techlib.Test{
		TimePerTestCycleSec: 1e-6, CostPerSecond: 1, SamplesPerInput: 1,
		Self: techlib.TestConfig{DefectCoverage: 0.9},
	}
	trueYield := 0.8
	sy := tst.SelfYield(trueYield)
	require.InDelta(t, 1-(1-0.8)*0.9, sy, 1e-9)

	require.InDelta(t, trueYield/sy, techlib.Quality(trueYield, sy), 1e-9)
	require.Equal(t, 0.0, techlib.Quality(trueYield, 0))
}

func TestTest_MissingSubconfig(t *testing.T) {
	tst := &techlib.Test{
		TimePerTestCycleSec: 1, CostPerSecond: 1, SamplesPerInput: 1,
		Self:     techlib.TestConfig{DefectCoverage: 2}, // invalid
		Assembly: techlib.TestConfig{DefectCoverage: 0.5},
	}
	require.ErrorIs(t, tst.FullyDefined(), techlib.ErrMissingField)
}
