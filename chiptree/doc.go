// Package chiptree implements the Chip tree and its bottom-up cost
// oracle.
//
// A Tree is a flat arena of *Chip nodes; each Chip exclusively owns its
// children by arena index, and carries a non-owning Parent index back to
// its owner, avoiding cyclic ownership. Initialize performs the
// bottom-up pass: per-chip true-yield, test-yield/quality,
// assembled-chip yield, self-cost,
// total cost, and NRE cost. Area uses the three-way max (core+IO, pad-grid,
// stacked-die bounding box) and power composes bottom-up including
// per-IO-type adjacency power.
//
// Oracle runs Initialize on a caller-supplied Tree behind a single coarse
// mutex: all concurrent
// invocations serialize on Evaluate, collapsing what could be a
// multi-lock scheme into the one critical section the refiner's shared
// caches require.
package chiptree
