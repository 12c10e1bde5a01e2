// Package floorplan implements a simulated-annealing sequence-pair
// placer for chiplets.
//
// A candidate placement is a sequence pair (Plus, Minus) — two
// permutations of the chiplet indices — plus a per-chiplet discrete
// aspect-ratio choice. Decode walks the horizontal/vertical constraint
// DAGs the sequence pair encodes (longest-path over a topologically
// ordered traversal) to produce (width, height, x, y) per chiplet.
// Anneal runs Metropolis simulated annealing over four move kinds (swap
// in Plus, swap in Minus, swap both, perturb an aspect ratio) with
// geometric cooling, using a dedicated engine/incumbent-tracking
// structure generalized from branch-and-bound to Metropolis acceptance.
// RunPool fans annealing
// starts out across a worker pool, each with its own RNG and candidate
// state, and reduces to the best feasible solution (ties broken by
// worker index).
package floorplan
