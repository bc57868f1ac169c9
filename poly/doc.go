// Package poly implements exact multivariate polynomials over real
// coefficients — the atomic algebraic value of the engine.
//
// A polynomial is an immutable mapping from a monomial key (the sorted
// multiset of variable names; the empty multiset is the constant term)
// to a nonzero coefficient. Every operation re-applies the pruning
// invariant: no coefficient with magnitude below Eps is ever stored, so
// the canonical zero polynomial is the empty mapping.
//
// Parsing is deliberately best-effort: an input that does not fit the
// grammar (sums of optionally signed coefficient·variable terms) is
// treated as one opaque single-variable symbol rather than rejected.
// See Parse for the exact contract.
//
// All values are safe to share across goroutines; methods never mutate
// their receiver or arguments.
package poly
