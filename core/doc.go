// Package core provides the station data model and an immutable, weighted,
// directed Graph over a node snapshot.
//
// The Graph G = (V,E) is produced once per query and discarded afterwards:
//
//   - V is the set of included nodes, kept in snapshot order.
//   - E holds directed arcs (to, cost) with finite, non-negative cost.
//   - An ID → Node index gives O(1) access to the full node record.
//
// Why immutable?
//
//   - Node snapshots are supplied fresh on every query; there is no engine
//     owned registry to keep in sync.
//   - Concurrent queries may share one Graph without locks.
//   - Builders validate once in NewGraph; algorithms can rely on invariants
//     (no self-edges, no dangling targets, no negative costs).
//
// Core Methods:
//
//	NewGraph(nodes, adjacency) (*Graph, error) // O(V+E)
//	Len() int                                  // O(1)
//	EdgeCount() int                            // O(1)
//	HasNode(id) bool                           // O(1)
//	Node(id) (Node, bool)                      // O(1)
//	Nodes() []Node                             // O(V)
//	IDs() []NodeID                             // O(V)
//	Edges(id) []Edge                           // O(deg)
//	EachEdge(id, fn)                           // O(deg), no copy
//
// Errors:
//
//	ErrDuplicateNode, ErrNodeNotFound, ErrSelfEdge, ErrBadCost
//
// See builder.Build for the complete-graph constructor used by routing.
package core
