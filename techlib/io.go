package techlib

// IO models one IO-cell technology: its physical footprint and electrical
// characteristics, keyed by IOType in the netlist and in Net.IOType.
type IO struct {
	Type string

	RxAreaMM2   float64
	TxAreaMM2   float64
	ShorelineUM float64
	BandwidthBPS float64
	WireCount   int
	Bidirectional bool
	EnergyPerBitPJ float64
	ReachMM     float64

	static bool
}

// FullyDefined validates required fields.
func (io *IO) FullyDefined() error {
	switch {
	case io.Type == "":
		return ErrMissingField
	case io.RxAreaMM2 < 0 || io.TxAreaMM2 < 0:
		return ErrMissingField
	case io.ShorelineUM < 0:
		return ErrMissingField
	case io.BandwidthBPS <= 0:
		return ErrMissingField
	case io.WireCount <= 0:
		return ErrMissingField
	case io.EnergyPerBitPJ < 0:
		return ErrMissingField
	case io.ReachMM < 0:
		return ErrMissingField
	}
	return nil
}

// MakeStatic latches the IO entity immutable.
func (io *IO) MakeStatic() { io.static = true }

// IsStatic reports whether the entity has been latched.
func (io *IO) IsStatic() bool { return io.static }

// SetReachMM sets the reach, failing if latched.
func (io *IO) SetReachMM(r float64) error {
	if io.static {
		return ErrStaticMutation
	}
	io.ReachMM = r
	return nil
}

// AreaPerPad returns the combined rx+tx footprint of one pad instance.
func (io *IO) AreaPerPad() float64 {
	return io.RxAreaMM2 + io.TxAreaMM2
}

// EnergyForBits returns the energy (in picojoules) to move n bits across
// this IO type, halved if the IO is bidirectional. chiptree's io_power
// computation does not call this; it applies the same halving itself,
// once per IO-type sum of connections.
func (io *IO) EnergyForBits(bits float64) float64 {
	e := bits * io.EnergyPerBitPJ
	if io.Bidirectional {
		e *= 0.5
	}
	return e
}
