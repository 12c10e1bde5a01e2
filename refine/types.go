package refine

import "github.com/chipletpart/chipletpart/hypergraph"

// PartitionState is the mutable partition the refiners operate on: a
// dense-ID assignment plus the partition count it spans.
type PartitionState struct {
	Part []int
	K    int
}

// Clone returns a deep copy.
func (p PartitionState) Clone() PartitionState {
	return PartitionState{Part: append([]int(nil), p.Part...), K: p.K}
}

// Validate checks every part[v] lies in [0,K), and, if requireDense is
// set, that every ID in [0,K) is actually used by some vertex.
func (p PartitionState) Validate(requireDense bool) error {
	used := make([]bool, p.K)
	for _, id := range p.Part {
		if id < 0 || id >= p.K {
			return ErrInvalidPartition
		}
		used[id] = true
	}
	if requireDense {
		for _, u := range used {
			if !u {
				return ErrInvalidPartition
			}
		}
	}
	return nil
}

// Coordinates holds one (x,y) center per partition, as last reported by
// the floorplanner; used by the reach-aware gain function.
type Coordinates [][2]float64

// FloorplanRunner re-floorplans a candidate partition and returns updated
// per-partition coordinates and feasibility. The refiner calls this every
// FloorplanEveryNMoves moves.
type FloorplanRunner func(PartitionState) (Coordinates, bool)

// Config tunes both the FM and KL refiners.
type Config struct {
	BalanceFactor        float64
	MaxMovesPerPass      int
	MaxPasses            int
	FloorplanEveryNMoves int // 0 means "once per pass"
	LongRangeMultiplier  float64
}

// DefaultConfig returns reasonable defaults: ±5% balance, one floorplan
// run per pass, a 10x penalty for reach-violating nets.
func DefaultConfig() Config {
	return Config{
		BalanceFactor:        0.05,
		MaxMovesPerPass:      1 << 20,
		MaxPasses:            10,
		FloorplanEveryNMoves: 0,
		LongRangeMultiplier:  10,
	}
}

// Observer hooks let tests and the CLI instrument refinement with
// per-move and per-pass callbacks.
type Observer struct {
	OnMove func(v, from, to int, gain float64)
	OnPass func(passIdx int, cumulativeGain float64, rolledBackTo int)
}

func (o Observer) move(v, from, to int, gain float64) {
	if o.OnMove != nil {
		o.OnMove(v, from, to, gain)
	}
}

func (o Observer) pass(idx int, gain float64, rollback int) {
	if o.OnPass != nil {
		o.OnPass(idx, gain, rollback)
	}
}

// hypergraphWeightDims is a local alias so gain.go doesn't need to import
// hypergraph just for the constant.
const hypergraphWeightDims = hypergraph.NumWeightDims
