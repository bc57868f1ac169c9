package circuit

// dsu is an ephemeral disjoint-set union over node ids, built fresh
// for each analysis call and discarded after: an id→index arena plus
// parent/rank slices, with path compression and union by rank.
// Zero-resistance edges union their endpoints, so each set is one
// electrical node.
type dsu struct {
	index  map[string]int
	parent []int
	rank   []int
}

// newDSU builds the arena over the given ids.
func newDSU(ids []string) *dsu {
	d := &dsu{
		index:  make(map[string]int, len(ids)),
		parent: make([]int, len(ids)),
		rank:   make([]int, len(ids)),
	}
	for i, id := range ids {
		d.index[id] = i
		d.parent[i] = i
	}
	return d
}

// find returns the set representative of index i, compressing the
// path as it walks up.
func (d *dsu) find(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}
	return i
}

// union merges the sets of indices a and b, attaching the
// smaller-rank tree under the larger-rank root.
func (d *dsu) union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	if d.rank[ra] < d.rank[rb] {
		d.parent[ra] = rb
	} else {
		d.parent[rb] = ra
		if d.rank[ra] == d.rank[rb] {
			d.rank[ra]++
		}
	}
}

// rootOf returns the representative index for a node id.
// The id must be in the arena.
func (d *dsu) rootOf(id string) int {
	return d.find(d.index[id])
}
