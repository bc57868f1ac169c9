package circuit

import (
	"sort"

	"github.com/varmir/resinet/ratio"
)

// branch is one edge with its resistance parsed into an exact value.
type branch struct {
	id       string
	from, to string
	r        ratio.Expr
}

// parseBranches parses every edge's resistance once per analysis call.
func parseBranches(c *Circuit) []branch {
	out := make([]branch, len(c.Edges))
	for i, e := range c.Edges {
		out[i] = branch{id: e.ID, from: e.From, to: e.To, r: ratio.Parse(e.Resistance)}
	}
	return out
}

// universe returns the sorted set of every node id mentioned in the
// circuit, declared nodes and edge endpoints alike. Sorting keeps
// matrix indexing deterministic across calls.
func universe(c *Circuit) []string {
	seen := make(map[string]struct{}, len(c.Nodes))
	for _, n := range c.Nodes {
		seen[n.ID] = struct{}{}
	}
	for _, e := range c.Edges {
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// connected reports whether to is reachable from from over the
// undirected adjacency implied by all edges, resistance values
// notwithstanding. Plain breadth-first search.
func connected(c *Circuit, from, to string) bool {
	if from == to {
		return true
	}
	adj := make(map[string][]string, len(c.Nodes))
	for _, e := range c.Edges {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	visited := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			return true
		}
		for _, nbr := range adj[cur] {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}
	return false
}

// mergeShorts unions the endpoints of every zero-resistance edge,
// collapsing literal shorts into single electrical nodes.
func mergeShorts(d *dsu, branches []branch) {
	for _, b := range branches {
		if b.r.IsZero() {
			d.union(d.index[b.from], d.index[b.to])
		}
	}
}

// stampConductance adds a branch conductance g between reduced nodes
// ia and ib into the admittance matrix a. An index of -1 marks the
// grounded (or otherwise excluded) side: only the live node's diagonal
// entry receives the conductance then.
func stampConductance(a [][]ratio.Expr, g ratio.Expr, ia, ib int) {
	if ia >= 0 {
		a[ia][ia] = a[ia][ia].Add(g)
		if ib >= 0 {
			a[ia][ib] = a[ia][ib].Sub(g)
		}
	}
	if ib >= 0 {
		a[ib][ib] = a[ib][ib].Add(g)
		if ia >= 0 {
			a[ib][ia] = a[ib][ia].Sub(g)
		}
	}
}

// zeroMatrix allocates an n×n admittance matrix of exact zeros.
func zeroMatrix(n int) [][]ratio.Expr {
	m := make([][]ratio.Expr, n)
	for i := range m {
		m[i] = make([]ratio.Expr, n)
		for j := range m[i] {
			m[i][j] = ratio.Zero()
		}
	}
	return m
}

// zeroVector allocates a right-hand-side vector of exact zeros.
func zeroVector(n int) []ratio.Expr {
	v := make([]ratio.Expr, n)
	for i := range v {
		v[i] = ratio.Zero()
	}
	return v
}
