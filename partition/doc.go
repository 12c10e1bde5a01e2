// Package partition drives the multi-start hypergraph partitioning
// search: for each candidate k (number of chiplets), it seeds several
// trial partitions (a multilevel heavy-edge-matching coarsen/uncoarsen
// pass, a spectral bisection, and random assignments), polishes each
// with FM/KL refinement, evaluates it through the floorplanner and the
// cost oracle, and keeps the best feasible result across the whole
// k-sweep.
//
// Trials within a k run in parallel, and the k values are swept one after
// another; each trial
// owns its partition state, its RNG, and its own chip tree, so the only
// shared critical section is the cost oracle itself.
package partition
