package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/varmir/resinet/ratio"
)

func TestDSUBasics(t *testing.T) {
	d := newDSU([]string{"A", "B", "C", "D"})

	assert.NotEqual(t, d.rootOf("A"), d.rootOf("B"), "fresh ids are singletons")

	d.union(d.index["A"], d.index["B"])
	assert.Equal(t, d.rootOf("A"), d.rootOf("B"))
	assert.NotEqual(t, d.rootOf("A"), d.rootOf("C"))

	// Transitivity through a chain of unions.
	d.union(d.index["B"], d.index["C"])
	assert.Equal(t, d.rootOf("A"), d.rootOf("C"))
	assert.NotEqual(t, d.rootOf("A"), d.rootOf("D"))

	// Re-union of already joined sets is a no-op.
	d.union(d.index["A"], d.index["C"])
	assert.Equal(t, d.rootOf("A"), d.rootOf("C"))
}

func TestMergeShortsOnlyZeroEdges(t *testing.T) {
	c := &Circuit{
		Nodes: []Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Edges: []Edge{
			{ID: "e1", From: "A", To: "B", Resistance: "0"},
			{ID: "e2", From: "B", To: "C", Resistance: "5"},
		},
	}
	branches := parseBranches(c)
	d := newDSU(universe(c))
	mergeShorts(d, branches)

	assert.Equal(t, d.rootOf("A"), d.rootOf("B"), "0Ω edge merges endpoints")
	assert.NotEqual(t, d.rootOf("B"), d.rootOf("C"), "finite edge does not merge")
}

func TestUniverseIncludesEndpointOnlyNodes(t *testing.T) {
	c := &Circuit{
		Nodes: []Node{{ID: "B"}},
		Edges: []Edge{{ID: "e", From: "A", To: "B", Resistance: "1"}},
	}
	assert.Equal(t, []string{"A", "B"}, universe(c))
}

func TestConnectedBFS(t *testing.T) {
	c := &Circuit{
		Nodes: []Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}},
		Edges: []Edge{
			{ID: "e1", From: "A", To: "B", Resistance: "1"},
			{ID: "e2", From: "B", To: "C", Resistance: "Infinity"},
		},
	}
	assert.True(t, connected(c, "A", "C"), "adjacency ignores resistance values")
	assert.False(t, connected(c, "A", "D"))
	assert.True(t, connected(c, "D", "D"))
}

func TestStampConductanceGroundedSide(t *testing.T) {
	m := zeroMatrix(2)
	g := ratio.FromFloat(4)

	stampConductance(m, g, 0, 1)
	assert.True(t, m[0][0].Equal(g))
	assert.True(t, m[1][1].Equal(g))
	assert.True(t, m[0][1].Equal(ratio.FromFloat(-4)))
	assert.True(t, m[1][0].Equal(ratio.FromFloat(-4)))

	// Grounded neighbor: only the live diagonal accumulates.
	m = zeroMatrix(2)
	stampConductance(m, g, 0, -1)
	assert.True(t, m[0][0].Equal(g))
	assert.True(t, m[0][1].IsZero())
	assert.True(t, m[1][1].IsZero())
}
