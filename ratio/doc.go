// Package ratio implements field-like arithmetic over canonical ratios
// of polynomials, with explicit, total semantics for zero and infinity.
//
// An Expr is an immutable (numerator, denominator) pair of poly.Poly
// values, always held in simplified canonical form:
//
//   - value 0 ⇔ zero numerator (denominator forced to constant 1)
//   - value ∞ ⇔ zero denominator, nonzero numerator
//   - 0/0 never survives construction; it collapses to 0
//   - constant ratios reduce by integer gcd with a positive denominator
//
// Division by zero is not an error anywhere in this package: it yields
// the first-class Infinity value, which propagates through arithmetic.
// The single loud failure is Float on an expression that still carries
// a free symbol, which returns ErrNotNumeric.
//
// Two Expr values are equal iff cross-multiplying their pairs yields
// equal polynomials; this law holds regardless of how either side was
// constructed.
package ratio
