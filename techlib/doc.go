// Package techlib models the five technology library entities of the
// data model: WaferProcess, Layer, IO, Assembly, Test.
//
// Every entity follows the same lifecycle: construct with a zero value or
// builder, populate fields, call FullyDefined to check all required fields
// are present and in-range, then MakeStatic to latch it immutable. Any
// setter called after MakeStatic fails with ErrStaticMutation, the Go
// rendering of the "construct then freeze" pattern. Explicit Optional[T]
// fields replace a sentinel-float "-1 means unset" convention.
//
// AI-Hints:
//   - Check FullyDefined before MakeStatic; MakeStatic does not re-validate.
//   - Derived formulas (PowerPerPad, PickAndPlaceCostPerSecond,
//     BondingCostPerSecond, Assembly.Yield, Test yield/quality) are pure functions of already-validated fields.
package techlib
