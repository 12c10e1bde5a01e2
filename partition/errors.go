package partition

import "errors"

// ErrNoFeasibleSolution is returned when every trial across the whole
// k-sweep came back infeasible or invalid.
var ErrNoFeasibleSolution = errors.New("partition: no feasible solution found")

// ErrEmptyHypergraph is returned when the input hypergraph has no blocks.
var ErrEmptyHypergraph = errors.New("partition: hypergraph has no blocks")

// ErrTechMismatch is returned when a candidate's tech[] length does not
// equal its partition count before an oracle call.
var ErrTechMismatch = errors.New("partition: tech assignment length does not match partition count")
