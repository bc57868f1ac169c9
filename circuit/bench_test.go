package circuit_test

import (
	"fmt"
	"testing"

	"github.com/varmir/resinet/circuit"
)

// ladder builds an N-stage resistor ladder between "in" and "out":
// each stage adds a 10Ω series rung and a 20Ω shunt to the far rail.
func ladder(n int) *circuit.Circuit {
	c := &circuit.Circuit{Nodes: []circuit.Node{{ID: "n0"}, {ID: "out"}}}
	for i := 0; i < n; i++ {
		u := fmt.Sprintf("n%d", i)
		v := fmt.Sprintf("n%d", i+1)
		c.Nodes = append(c.Nodes, circuit.Node{ID: v})
		c.Edges = append(c.Edges,
			circuit.Edge{ID: "s" + v, From: u, To: v, Resistance: "10"},
			circuit.Edge{ID: "p" + v, From: v, To: "out", Resistance: "20"},
		)
	}
	return c
}

// BenchmarkEquivalentResistance_Ladder measures the full pipeline
// (parse, union-find, stamping, elimination) on ladders of growing size.
func BenchmarkEquivalentResistance_Ladder(b *testing.B) {
	for _, n := range []int{4, 8, 16} {
		c := ladder(n)
		b.Run(fmt.Sprintf("stages=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = circuit.EquivalentResistance(c, "n0", "out")
			}
		})
	}
}

// BenchmarkEquivalentResistance_Wheatstone measures the bridge case:
// five edges, no series/parallel shortcut, a dense 3×3 solve.
func BenchmarkEquivalentResistance_Wheatstone(b *testing.B) {
	c := &circuit.Circuit{
		Nodes: []circuit.Node{{ID: "A"}, {ID: "B"}, {ID: "N1"}, {ID: "N2"}},
		Edges: []circuit.Edge{
			{ID: "e1", From: "A", To: "N1", Resistance: "10"},
			{ID: "e2", From: "N1", To: "B", Resistance: "10"},
			{ID: "e3", From: "A", To: "N2", Resistance: "10"},
			{ID: "e4", From: "N2", To: "B", Resistance: "10"},
			{ID: "e5", From: "N1", To: "N2", Resistance: "10"},
		},
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = circuit.EquivalentResistance(c, "A", "B")
	}
}

// BenchmarkCurrents_Ladder measures nodal analysis with fixed boundary
// potentials on the same ladders.
func BenchmarkCurrents_Ladder(b *testing.B) {
	for _, n := range []int{4, 8, 16} {
		c := ladder(n)
		c.Nodes[0].Potential = "12" // n0
		c.Nodes[1].Potential = "0"  // out
		b.Run(fmt.Sprintf("stages=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = circuit.Currents(c)
			}
		})
	}
}
