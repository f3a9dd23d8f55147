// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only query surface over an immutable Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported method returns copies; callers cannot mutate the graph.
//   - Enumeration follows snapshot order (see Graph.order in types.go).

package core

// Len returns the number of nodes in the graph.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Len() int {
	return len(g.order)
}

// EdgeCount returns the number of directed edges in the graph.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) EdgeCount() int {
	return g.edges
}

// HasNode reports whether id is part of the graph.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.index[id]
	return ok
}

// Node returns the node record stored under id.
//
// Returns:
//   - Node: a deep copy of the stored record (zero value when missing).
//   - bool: false if id is not part of the graph.
//
// Complexity:
//   - Time O(len(tags)), Space O(len(tags)).
func (g *Graph) Node(id NodeID) (Node, bool) {
	n, ok := g.index[id]
	if !ok {
		return Node{}, false
	}

	return n.Clone(), true
}

// Nodes returns all node records in snapshot order.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.index[id].Clone())
	}

	return out
}

// IDs returns all node IDs in snapshot order.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) IDs() []NodeID {
	return append([]NodeID(nil), g.order...)
}

// Edges returns a copy of the outgoing edges of id.
// Unknown IDs yield nil; use HasNode to tell "no edges" from "no node".
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) Edges(id NodeID) []Edge {
	out := g.adjacency[id]
	if out == nil {
		return nil
	}

	return append([]Edge(nil), out...)
}

// EachEdge calls fn for every outgoing edge of id without copying the
// adjacency list. Iteration stops early when fn returns false.
//
// Complexity:
//   - Time O(deg(id)), Space O(1).
func (g *Graph) EachEdge(id NodeID, fn func(e Edge) bool) {
	for _, e := range g.adjacency[id] {
		if !fn(e) {
			return
		}
	}
}
