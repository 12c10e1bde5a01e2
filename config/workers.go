package config

import "runtime"

// WorkerPool resolves how many concurrent workers a trial or genetic run
// should use: an explicit positive count, or runtime.NumCPU() when unset,
// shared by the partition driver and the genetic optimizer so both derive
// worker counts the same way.
type WorkerPool struct {
	Requested int
}

// Count returns the resolved worker count: Requested if positive,
// otherwise runtime.NumCPU().
func (w WorkerPool) Count() int {
	if w.Requested > 0 {
		return w.Requested
	}
	return runtime.NumCPU()
}
