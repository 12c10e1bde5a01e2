// Package gatech implements a genetic search over the joint space of
// (number-of-partitions, partition assignment, per-partition technology).
//
// An Individual pairs a refine.PartitionState with a technology choice per
// partition; its fitness is the partition driver's scored outcome after one
// floorplan-and-refine pass. The population loop follows the same
// incumbent-tracking shape as an iterative branch-and-bound search —
// generate candidates, track the best seen, stop on a no-improvement
// counter — generalized here from a single running best to a whole
// population with tournament selection, crossover, and mutation.
//
// Canonicalization renumbers a partition's IDs to the lexicographically
// least array consistent with a fixed per-partition technology ordering,
// so that two individuals differing only in partition-label permutation
// collapse to the same fitness-cache key.
package gatech
