// Package resinet is an exact symbolic engine for resistor networks:
// equivalent resistance and branch currents over circuits whose values
// may be plain numbers, zero, infinite, or free symbols such as "r".
//
// 🔌 What is resinet?
//
//	A small, deterministic library that brings together:
//		• poly    — exact multivariate polynomial arithmetic
//		• ratio   — canonical polynomial ratios with first-class 0 and ∞
//		• gauss   — pivoted Gaussian elimination over symbolic entries
//		• circuit — union-find network reduction + nodal (KCL) analysis
//
// ✨ Why choose resinet?
//
//   - Exact results – 10Ω ∥ 20Ω is 20/3, "r" ∥ "r" is r/2, never a rounded float
//   - Total arithmetic – division by zero yields Infinity, not a panic
//   - Pure functions – no shared state, safe to call from any goroutine
//   - Handles bridges – nodal analysis, not series/parallel pattern matching
//
// Everything flows one way: a Circuit description enters the circuit
// package, resistances and potentials are parsed into ratio.Expr values,
// an admittance matrix is assembled and handed to gauss, and the solved
// unknowns come back as per-edge or per-pair ratio.Expr results.
//
// Quick ASCII example (balanced Wheatstone bridge, all edges 10Ω):
//
//	    A───B
//	    │ ╲ │
//	    C───D
//
//	EquivalentResistance(A, D) = 10 exactly, bridge edge included.
//
// Rendering, layout, persistence, and interactive editing are the
// caller's business; resinet computes values and nothing else.
//
//	go get github.com/varmir/resinet
package resinet
