package circuit

import (
	"errors"

	"github.com/varmir/resinet/gauss"
	"github.com/varmir/resinet/ratio"
)

// Currents computes the branch current of every edge from a partial
// assignment of node potentials, by KCL nodal analysis:
//
//  1. Nodes with a non-empty Potential are the boundary; fewer than
//     two of them, or no edges at all, leaves the problem
//     underdetermined and yields an empty map — never a guess.
//  2. Zero-resistance edges merge into electrical groups. A group
//     holding two different fixed potentials is a short between
//     unequal sources: its zero-resistance edges report ∞ current and
//     the group's fixed potentials are discarded for the solve.
//  3. Remaining groups either carry a boundary potential or become
//     unknowns; unknowns with no finite-resistance path to any fixed
//     potential are dropped (their edges stay undetermined).
//  4. Conductances are stamped; a boundary neighbor contributes
//     g·potential to the right-hand side instead of a matrix column.
//  5. Solved and boundary potentials merge into one lookup, and each
//     unresolved edge reports: ∞ resistance ⇒ 0 (open); zero
//     resistance ⇒ 0 or ∞ by potential equality; otherwise
//     (V(From) − V(To)) / R. Edges whose endpoints never obtained a
//     potential are omitted from the map.
//
// Absent keys therefore mean "undetermined"; present keys are
// guaranteed resolved values. The circuit is never mutated.
func Currents(c *Circuit) (map[string]ratio.Expr, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	result := make(map[string]ratio.Expr)

	boundary := 0
	for _, n := range c.Nodes {
		if n.Potential != "" {
			boundary++
		}
	}
	if boundary < 2 || len(c.Edges) == 0 {
		return result, nil // underdetermined by design
	}

	branches := parseBranches(c)
	ids := universe(c)
	d := newDSU(ids)
	mergeShorts(d, branches)

	// Fixed potential per reduced group; a group fed two different
	// values is a short-circuit conflict.
	groupPot := make(map[int]ratio.Expr)
	conflict := make(map[int]bool)
	for _, n := range c.Nodes {
		if n.Potential == "" {
			continue
		}
		p := ratio.Parse(n.Potential)
		rep := d.rootOf(n.ID)
		if prev, ok := groupPot[rep]; ok {
			if !prev.Equal(p) {
				conflict[rep] = true
			}
			continue
		}
		groupPot[rep] = p
	}
	for _, br := range branches {
		if br.r.IsZero() && conflict[d.rootOf(br.from)] {
			result[br.id] = ratio.Infinity()
		}
	}
	for rep := range conflict {
		delete(groupPot, rep)
	}

	// Reduced adjacency over current-carrying branches, to find which
	// unknown groups a fixed potential can actually drive.
	adj := make(map[int][]int)
	for _, br := range branches {
		if br.r.IsZero() || br.r.IsInfinity() {
			continue
		}
		ra, rb := d.rootOf(br.from), d.rootOf(br.to)
		if ra == rb {
			continue
		}
		adj[ra] = append(adj[ra], rb)
		adj[rb] = append(adj[rb], ra)
	}
	reach := make(map[int]bool, len(groupPot))
	queue := make([]int, 0, len(groupPot))
	for rep := range groupPot {
		reach[rep] = true
		queue = append(queue, rep)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range adj[cur] {
			if !reach[nbr] {
				reach[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	// Matrix indices for reachable unknowns, in deterministic id order.
	idx := make(map[int]int)
	for _, id := range ids {
		rep := d.rootOf(id)
		if !reach[rep] {
			continue
		}
		if _, fixed := groupPot[rep]; fixed {
			continue
		}
		if _, ok := idx[rep]; !ok {
			idx[rep] = len(idx)
		}
	}

	pot := make(map[int]ratio.Expr, len(groupPot)+len(idx))
	for rep, p := range groupPot {
		pot[rep] = p
	}

	if n := len(idx); n > 0 {
		m := zeroMatrix(n)
		rhs := zeroVector(n)
		for _, br := range branches {
			if br.r.IsZero() || br.r.IsInfinity() {
				continue
			}
			ra, rb := d.rootOf(br.from), d.rootOf(br.to)
			if ra == rb {
				continue
			}
			ia, okA := idx[ra]
			ib, okB := idx[rb]
			g := br.r.Reciprocal()
			switch {
			case okA && okB:
				stampConductance(m, g, ia, ib)
			case okA:
				if pb, ok := pot[rb]; ok {
					stampConductance(m, g, ia, -1)
					rhs[ia] = rhs[ia].Add(g.Mul(pb))
				}
			case okB:
				if pa, ok := pot[ra]; ok {
					stampConductance(m, g, ib, -1)
					rhs[ib] = rhs[ib].Add(g.Mul(pa))
				}
			}
		}
		x, err := gauss.Solve(m, rhs)
		if errors.Is(err, gauss.ErrSingular) {
			// Interior cannot be pinned down; keep only the
			// short-circuit reports and omit the rest.
			return result, nil
		}
		if err != nil {
			return nil, err
		}
		for rep, i := range idx {
			pot[rep] = x[i]
		}
	}

	for _, br := range branches {
		if _, done := result[br.id]; done {
			continue
		}
		if br.r.IsInfinity() {
			result[br.id] = ratio.Zero() // open branch
			continue
		}
		pa, okA := pot[d.rootOf(br.from)]
		pb, okB := pot[d.rootOf(br.to)]
		if !okA || !okB {
			continue // no path to any fixed potential
		}
		if br.r.IsZero() {
			if pa.Equal(pb) {
				result[br.id] = ratio.Zero()
			} else {
				result[br.id] = ratio.Infinity()
			}
			continue
		}
		result[br.id] = pa.Sub(pb).Div(br.r)
	}
	return result, nil
}
