// Package circuit: input value types and sentinel errors.
package circuit

import "errors"

// Sentinel errors for the circuit analyses. Match with errors.Is.
var (
	// ErrNilCircuit is returned when a nil *Circuit is passed.
	ErrNilCircuit = errors.New("circuit: circuit is nil")

	// ErrUnknownNode is returned when a requested node id is absent
	// from the circuit. It is a distinct failure kind: it signals a
	// caller mistake, not a zero or infinite electrical value.
	ErrUnknownNode = errors.New("circuit: unknown node id")
)

// Node is one circuit node.
type Node struct {
	// ID uniquely identifies the node within its Circuit.
	ID string

	// Potential, when non-empty, fixes the node's electric potential:
	// a decimal number, the literal "Infinity" (or "∞"), or a symbolic
	// expression such as "V". Empty means the potential is unknown.
	Potential string
}

// Edge is one resistor connecting two nodes. Multiple edges between
// the same node pair are legal and tracked independently by ID.
type Edge struct {
	// ID uniquely identifies the edge within its Circuit.
	ID string

	// From and To are the endpoint node ids. Orientation only fixes
	// the sign convention of the reported current (From → To).
	From string
	To   string

	// Resistance carries the edge's resistance: a decimal number
	// (zero and negative included), "Infinity"/"∞", or a symbolic
	// expression such as "r" or "2r+5".
	Resistance string
}

// Circuit is the value-level description both analyses consume.
// It is never mutated.
type Circuit struct {
	Nodes []Node
	Edges []Edge
}

// hasNode reports whether id is declared in the node list.
func (c *Circuit) hasNode(id string) bool {
	for _, n := range c.Nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}
