// Package refine implements Fiduccia-Mattheyses and Kernighan-Lin
// partition refinement over a hypergraph, with a reach-aware gain
// function and periodic floorplanner-driven coordinate updates.
//
// Both refiners share the same gain/cost machinery (gain.go) and the same
// balance gate: a move or swap is legal only if every weight dimension of
// the destination stays at or below its upper bound and the source at or
// above its lower bound. Each pass drains a gain-ordered priority queue
// built on container/heap, locking vertices as they move, then rolls back
// to the best-seen cumulative gain, the canonical FM "best prefix" rule.
package refine
