package techlib

import "math"

// Layer is one entry of a chip's layer stackup.
type Layer struct {
	Name   string
	Active bool

	CostPerMM2          float64
	DefectDensityPerMM2 float64 // defects/mm²
	CriticalAreaFraction float64 // in [0,1]: fraction of area sensitive to defects
	GatesPerMM2         float64
	MaskCost            float64

	static bool
}

// FullyDefined validates required fields.
func (l *Layer) FullyDefined() error {
	switch {
	case l.CostPerMM2 < 0:
		return ErrMissingField
	case l.DefectDensityPerMM2 < 0:
		return ErrMissingField
	case l.CriticalAreaFraction < 0 || l.CriticalAreaFraction > 1:
		return ErrMissingField
	case l.GatesPerMM2 < 0:
		return ErrMissingField
	case l.MaskCost < 0:
		return ErrMissingField
	}
	return nil
}

// MakeStatic latches the Layer immutable.
func (l *Layer) MakeStatic() { l.static = true }

// IsStatic reports whether the entity has been latched.
func (l *Layer) IsStatic() bool { return l.static }

// SetCostPerMM2 sets the layer's per-area cost, failing if latched.
func (l *Layer) SetCostPerMM2(c float64) error {
	if l.static {
		return ErrStaticMutation
	}
	l.CostPerMM2 = c
	return nil
}

// Yield returns the Poisson (Seeds) defect-limited yield of this layer for
// a die of the given area: exp(-D0 * criticalAreaFraction * area). Returns
// 1 if area is non-positive. Active is not consulted: an inactive layer
// still returns its defect-limited yield; callers skip inactive layers
// entirely.
func (l *Layer) Yield(areaMM2 float64) float64 {
	if areaMM2 <= 0 {
		return 1
	}
	return math.Exp(-l.DefectDensityPerMM2 * l.CriticalAreaFraction * areaMM2)
}

// Cost returns the layer's raw cost contribution for the given area.
func (l *Layer) Cost(areaMM2 float64) float64 {
	return l.CostPerMM2 * areaMM2
}
