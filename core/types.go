// File: types.go
// Role: NodeID, Node, Edge and Graph plus the validating NewGraph constructor.
// Policy:
//   - A Graph is never mutated after NewGraph returns.
//   - Inputs are copied; callers keep ownership of their slices.

package core

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateNode indicates that two nodes in the same snapshot share an ID.
	ErrDuplicateNode = errors.New("core: duplicate node id")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfEdge indicates an edge whose source and target are the same node.
	ErrSelfEdge = errors.New("core: self-edge not allowed")

	// ErrBadCost indicates an edge cost that is negative, NaN or infinite.
	ErrBadCost = errors.New("core: edge cost must be finite and non-negative")
)

// NodeID identifies a station. IDs are assigned by the node source and are
// stable across snapshots.
type NodeID int

// Node represents a station.
//
// Level is the 1-based vertical tier (building floor). X and Y are planar
// coordinates in meters. Occupied is the availability flag: true means the
// station is currently unusable and is skipped by routing and ranking.
// Tags are free-form category labels; the routing math ignores them.
type Node struct {
	ID       NodeID
	Name     string
	Level    int
	X        float64
	Y        float64
	Occupied bool
	Tags     []string
}

// Point returns the planar position of the node.
func (n Node) Point() orb.Point {
	return orb.Point{n.X, n.Y}
}

// HasTag reports whether the node carries tag, compared case-insensitively.
func (n Node) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}

	return false
}

// Clone returns a copy of n that shares no memory with the original.
func (n Node) Clone() Node {
	if n.Tags != nil {
		n.Tags = append([]string(nil), n.Tags...)
	}

	return n
}

// String implements fmt.Stringer.
func (n Node) String() string {
	return fmt.Sprintf("#%d %q (L%d @ %.2f,%.2f)", n.ID, n.Name, n.Level, n.X, n.Y)
}

// Edge is a directed arc to another node with a non-negative travel cost.
type Edge struct {
	// To is the target node ID.
	To NodeID

	// Cost is the travel cost in seconds.
	Cost float64
}

// Graph is a weighted directed graph over a node snapshot plus an
// ID → Node index.
//
// order preserves snapshot order so that enumeration, and therefore every
// algorithm built on top of it, is deterministic.
type Graph struct {
	order     []NodeID
	index     map[NodeID]Node
	adjacency map[NodeID][]Edge
	edges     int
}

// NewGraph constructs an immutable Graph from nodes and their outgoing edges.
//
// Every node receives an adjacency entry, even when adjacency has none for it.
// The nodes and edge slices are copied; later changes by the caller do not
// affect the graph.
//
// Validation (in order):
//  1. node IDs are unique (ErrDuplicateNode).
//  2. every adjacency key and every Edge.To names a node (ErrNodeNotFound).
//  3. no edge targets its own source (ErrSelfEdge).
//  4. every cost is finite and >= 0 (ErrBadCost).
//
// Complexity: O(V + E) time and space.
func NewGraph(nodes []Node, adjacency map[NodeID][]Edge) (*Graph, error) {
	g := &Graph{
		order:     make([]NodeID, 0, len(nodes)),
		index:     make(map[NodeID]Node, len(nodes)),
		adjacency: make(map[NodeID][]Edge, len(nodes)),
	}

	for _, n := range nodes {
		if _, dup := g.index[n.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, n.ID)
		}
		g.index[n.ID] = n.Clone()
		g.order = append(g.order, n.ID)
	}

	for from, out := range adjacency {
		if _, ok := g.index[from]; !ok {
			return nil, fmt.Errorf("%w: edge source %d", ErrNodeNotFound, from)
		}
		for _, e := range out {
			if _, ok := g.index[e.To]; !ok {
				return nil, fmt.Errorf("%w: edge %d→%d target", ErrNodeNotFound, from, e.To)
			}
			if e.To == from {
				return nil, fmt.Errorf("%w: %d", ErrSelfEdge, from)
			}
			if e.Cost < 0 || math.IsNaN(e.Cost) || math.IsInf(e.Cost, 0) {
				return nil, fmt.Errorf("%w: edge %d→%d cost=%v", ErrBadCost, from, e.To, e.Cost)
			}
		}
		g.adjacency[from] = append([]Edge(nil), out...)
		g.edges += len(out)
	}

	for _, id := range g.order {
		if _, ok := g.adjacency[id]; !ok {
			g.adjacency[id] = nil
		}
	}

	return g, nil
}
