package chiptree

import "errors"

// Sentinel errors for chip-tree construction and evaluation.
var (
	// ErrInvalidIndex indicates an out-of-range arena index.
	ErrInvalidIndex = errors.New("chiptree: invalid chip index")

	// ErrReachInfeasible indicates pad-grid sizing found a bucket whose
	// reach, after subtracting die separation, is negative.
	ErrReachInfeasible = errors.New("chiptree: pad-grid reach infeasible")

	// ErrMissingProcess indicates a chip lacks a required wafer process,
	// assembly process, or test process before Initialize.
	ErrMissingProcess = errors.New("chiptree: chip missing a required process")
)
