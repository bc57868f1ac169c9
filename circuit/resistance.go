package circuit

import (
	"errors"

	"github.com/varmir/resinet/gauss"
	"github.com/varmir/resinet/ratio"
)

// EquivalentResistance computes the resistance between nodes a and b
// by the current-injection method:
//
//  1. a == b is exactly 0; an id absent from the circuit is
//     ErrUnknownNode.
//  2. If b is unreachable from a over the edge adjacency, the pair is
//     disconnected and the result is ∞.
//  3. Zero-resistance edges are merged by union-find; if the merge
//     joins a and b, the result is exactly 0.
//  4. b's representative becomes ground and is dropped from the
//     system; every other representative gets a matrix index, finite
//     nonzero conductances are stamped, and a unit test current is
//     injected at a's representative.
//  5. A singular system means the remaining paths are open: ∞.
//     Otherwise the answer is the solved potential at a's index —
//     R = V/I with I = 1 by construction.
//
// The result may be numeric ("30", "6.6666…"), symbolic ("r/2"),
// exact 0, or ∞. The circuit is never mutated.
func EquivalentResistance(c *Circuit, a, b string) (ratio.Expr, error) {
	if c == nil {
		return ratio.Expr{}, ErrNilCircuit
	}
	if !c.hasNode(a) || !c.hasNode(b) {
		return ratio.Expr{}, ErrUnknownNode
	}
	if a == b {
		return ratio.Zero(), nil
	}
	if !connected(c, a, b) {
		return ratio.Infinity(), nil
	}

	branches := parseBranches(c)
	ids := universe(c)
	d := newDSU(ids)
	mergeShorts(d, branches)

	rootA, rootB := d.rootOf(a), d.rootOf(b)
	if rootA == rootB {
		return ratio.Zero(), nil // a and b share a zero-resistance group
	}

	// Index the reduced nodes, grounding b's representative.
	idx := make(map[int]int)
	for _, id := range ids {
		rep := d.rootOf(id)
		if rep == rootB {
			continue
		}
		if _, ok := idx[rep]; !ok {
			idx[rep] = len(idx)
		}
	}

	n := len(idx)
	m := zeroMatrix(n)
	for _, br := range branches {
		if br.r.IsZero() || br.r.IsInfinity() {
			continue // already merged, or open
		}
		ra, rb := d.rootOf(br.from), d.rootOf(br.to)
		if ra == rb {
			continue
		}
		ia, ib := -1, -1
		if i, ok := idx[ra]; ok {
			ia = i
		}
		if i, ok := idx[rb]; ok {
			ib = i
		}
		stampConductance(m, br.r.Reciprocal(), ia, ib)
	}

	rhs := zeroVector(n)
	rhs[idx[rootA]] = ratio.FromFloat(1)

	x, err := gauss.Solve(m, rhs)
	if errors.Is(err, gauss.ErrSingular) {
		return ratio.Infinity(), nil // only open paths remain
	}
	if err != nil {
		return ratio.Expr{}, err
	}
	return x[idx[rootA]], nil
}
