// Package gauss solves square linear systems A·x = b whose entries are
// ratio.Expr values, numeric and symbolic uniformly.
//
// The solver is Gaussian elimination with partial pivoting on an
// augmented matrix. It operates on a private copy — the caller's
// slices are never mutated — and reports an unsolvable system with the
// ErrSingular sentinel rather than a panic: for the circuit analyses
// built on top, a singular system is the designed signal for "nodes
// connected only through an open path".
package gauss
