package refine

import "errors"

// ErrBalanceInfeasible indicates no legal move/swap exists that keeps
// every partition within its balance bounds. Callers treat this as a
// local, recoverable condition and score the candidate as-is rather than
// failing outright.
var ErrBalanceInfeasible = errors.New("refine: no legal move satisfies balance bounds")

// ErrInvalidPartition indicates a corrupted partition state: an ID
// outside [0,K) or a length mismatch against the hypergraph.
var ErrInvalidPartition = errors.New("refine: corrupted partition state")
