package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chipletpart/chipletpart/config"
)

func TestDefault_SetsDocumentedRates(t *testing.T) {
	opts := config.Default()
	require.Equal(t, 0.2, opts.MutationRate)
	require.Equal(t, 0.65, opts.CrossoverRate)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opts.yaml")
	contents := "reach: 0.5\nseparation: 0.25\nseed: 7\nmutation_rate: 0.3\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	opts, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 0.5, opts.ReachMM)
	require.Equal(t, 0.25, opts.SeparationMM)
	require.Equal(t, int64(7), opts.Seed)
	require.Equal(t, 0.3, opts.MutationRate)
	// crossover_rate was not set in the file; Default()'s value survives.
	require.Equal(t, 0.65, opts.CrossoverRate)
}

func TestMerge_OverridesOnlyNonZeroFields(t *testing.T) {
	base := config.Options{ReachMM: 0.5, SeparationMM: 0.25, MutationRate: 0.2, CrossoverRate: 0.65}
	override := config.Options{SeparationMM: 0.4}
	merged := config.Merge(base, override)
	require.Equal(t, 0.5, merged.ReachMM)
	require.Equal(t, 0.4, merged.SeparationMM)
	require.Equal(t, 0.2, merged.MutationRate)
}

func TestWorkerPool_Count(t *testing.T) {
	require.Equal(t, 4, config.WorkerPool{Requested: 4}.Count())
	require.Greater(t, config.WorkerPool{}.Count(), 0)
}
