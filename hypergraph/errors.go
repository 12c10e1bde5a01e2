package hypergraph

import "errors"

// Sentinel errors for hypergraph construction and access.
var (
	// ErrInvalidID indicates a vertex or net index outside [0, n).
	ErrInvalidID = errors.New("hypergraph: id out of range")

	// ErrDuplicateBlockInNet indicates a net lists the same block twice,
	// violating the "a vertex appears at most once per hyperedge" invariant.
	ErrDuplicateBlockInNet = errors.New("hypergraph: block appears twice in one net")

	// ErrEmptyNet indicates a net with fewer than two distinct blocks.
	ErrEmptyNet = errors.New("hypergraph: net must span at least two blocks")

	// ErrFractionsInvalid indicates memory/logic/analog fractions do not
	// sum to 1 (within tolerance) or contain a negative component.
	ErrFractionsInvalid = errors.New("hypergraph: block fractions must be non-negative and sum to 1")
)
