// Package circuit reduces resistor networks and runs the two nodal
// analyses of the engine:
//
//   - EquivalentResistance — resistance between two named nodes by
//     unit-current injection into the reduced admittance matrix.
//   - Currents — branch current on every edge, given a partial
//     assignment of node potentials (KCL nodal analysis).
//
// Both analyses share one substrate: resistances and potentials are
// parsed into ratio.Expr values, zero-resistance edges are merged into
// single electrical nodes by a per-call union-find, conductances are
// stamped into a matrix of ratio.Expr entries, and gauss solves the
// resulting system. Any topology is handled, including bridge networks
// that defeat series/parallel reduction.
//
// Degenerate situations resolve to defined values, never faults:
// a disconnected pair is ∞, a merged pair is 0, an underdetermined
// current analysis is an empty map, and a short between unequal fixed
// potentials reports ∞ current on the shorting edges. The only errors
// are ErrNilCircuit and ErrUnknownNode, which signal caller mistakes
// rather than electrical conditions.
//
// Both entry points are pure functions: the Circuit value is never
// mutated, no state survives a call, and concurrent calls need no
// synchronization.
package circuit
