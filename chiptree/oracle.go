package chiptree

import (
	"math"
	"sync"
)

// EvalParams configures one Initialize pass: pad-grid geometry plus the
// power-pad count function (depends on the candidate's current
// floorplan, so it is supplied per call rather than cached).
type EvalParams struct {
	DieSeparationMM float64
	BondingPitchMM  float64
	PadAspectRatio  float64
	PowerPads       func(*Chip) int
}

// Oracle is the cost-oracle critical section: every Evaluate call
// serializes on a single mutex, since the underlying caches are not safe
// for concurrent
// mutation).
type Oracle struct {
	mu sync.Mutex
}

// NewOracle returns a ready-to-use Oracle.
func NewOracle() *Oracle { return &Oracle{} }

// Evaluate runs Initialize on tree under the oracle's lock and returns the
// root chip's total cost and validity. Reach/balance/floorplan
// infeasibilities detected inside Initialize surface as cost=+Inf,
// valid=false rather than an error.
func (o *Oracle) Evaluate(tree *Tree, params EvalParams) (cost float64, valid bool, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if tree.Root() < 0 {
		return 0, false, ErrInvalidIndex
	}

	if ierr := tree.Initialize(params.DieSeparationMM, params.BondingPitchMM, params.PadAspectRatio, params.PowerPads); ierr != nil {
		if ierr == ErrReachInfeasible {
			return math.Inf(1), false, nil
		}
		return 0, false, ierr
	}

	root, _ := tree.Chip(tree.Root())
	_, _, _, cost, valid = root.Derived()
	return cost, valid, nil
}
