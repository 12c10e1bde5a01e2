package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chipletpart/chipletpart/config"
)

func TestDefaultInt(t *testing.T) {
	require.Equal(t, 8, defaultInt(0, 8))
	require.Equal(t, 8, defaultInt(-1, 8))
	require.Equal(t, 3, defaultInt(3, 8))
}

func TestTechsFileFor(t *testing.T) {
	require.Equal(t, "design.techs.3", techsFileFor("design.cpart.3"))
	require.Equal(t, "no-marker.txt", techsFileFor("no-marker.txt"))
}

func TestUniqueTechs_PreservesFirstSeenOrder(t *testing.T) {
	got := uniqueTechs([]string{"7nm", "10nm", "7nm", "14nm", "10nm"})
	require.Equal(t, []string{"7nm", "10nm", "14nm"}, got)
}

func TestFlagOverrides_OnlyPacksNonZeroFlags(t *testing.T) {
	flagSeed = 0
	flagGenerations = 5
	flagPopulation = 0
	flagMinPartitions = 2
	flagMaxPartitions = 0
	flagMutationRate = 0
	flagCrossoverRate = 0
	defer func() {
		flagGenerations = 0
		flagMinPartitions = 0
	}()

	out := flagOverrides()
	require.Equal(t, config.Options{Generations: 5, MinPartitions: 2}, out)
}

func TestExecute_UnknownFlagIsNonZeroExit(t *testing.T) {
	rootCmd.SetArgs([]string{"--this-flag-does-not-exist"})
	defer rootCmd.SetArgs(nil)
	require.Equal(t, 2, Execute())
}
