// Package dijkstra implements Dijkstra's shortest-path search over a
// core.Graph with non-negative edge costs.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a logarithmic queue (pq.NewHeap, pq.NewBTree).
//     On the complete graphs produced by builder.Build, E = V(V-1).
//   - Space: O(V + E) for distances, predecessors and lazy queue entries.
//
// Notes on implementation choices:
//
//   - core.NewGraph already rejects negative, NaN and infinite costs, so no
//     pre-scan is needed here.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     queue and ignoring stale entries once a node is settled.
//   - ShortestPath stops as soon as the target is settled.
package dijkstra

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/floorpath/core"
	"github.com/katalvlaran/floorpath/pq"
)

// ShortestPath returns a minimum-cost path from start to target in g.
//
// Behavior:
//   - start == target (present in g) → Found, Nodes = [start], Cost = 0.
//   - start or target missing from g (e.g. filtered out as occupied)
//     → Unreachable. This is a result, not an error.
//   - target not connected to start, or beyond WithMaxCost → Unreachable.
//
// When several frontier nodes share the minimum cost, the one queued first
// is settled first; only the shape among equal-cost paths depends on it.
//
// Errors:
//   - ErrNilGraph if g is nil.
func ShortestPath(g *core.Graph, start, target core.NodeID, opts ...Option) (Path, error) {
	if g == nil {
		return Path{}, ErrNilGraph
	}
	if !g.HasNode(start) || !g.HasNode(target) {
		return UnreachablePath(), nil
	}

	r := newRunner(g, resolve(opts))
	r.init(start)
	r.process(target, true)

	return r.path(start, target), nil
}

// Distances returns the minimum cost from start to every node of g that is
// reachable within the configured MaxCost. Nodes that cannot be reached are
// absent from the map. A start missing from g yields an empty map.
//
// Errors:
//   - ErrNilGraph if g is nil.
func Distances(g *core.Graph, start core.NodeID, opts ...Option) (map[core.NodeID]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := make(map[core.NodeID]float64)
	if !g.HasNode(start) {
		return out, nil
	}

	r := newRunner(g, resolve(opts))
	r.init(start)
	r.process(0, false)
	for id := range r.visited {
		out[id] = r.dist[id]
	}

	return out, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[core.NodeID]float64     // best-known cost from start
	prev    map[core.NodeID]core.NodeID // predecessor on that path
	visited map[core.NodeID]bool        // settled nodes
	queue   pq.Queue                    // frontier
}

func newRunner(g *core.Graph, cfg Options) *runner {
	v := g.Len()
	return &runner{
		g:       g,
		options: cfg,
		dist:    make(map[core.NodeID]float64, v),
		prev:    make(map[core.NodeID]core.NodeID, v),
		visited: make(map[core.NodeID]bool, v),
		queue:   cfg.Queue(v),
	}
}

// cost returns the tentative cost of id, +Inf when unseen.
func (r *runner) cost(id core.NodeID) float64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return math.Inf(1)
}

// init seeds the frontier with start at cost 0.
func (r *runner) init(start core.NodeID) {
	r.dist[start] = 0
	r.queue.Push(start, 0)
}

// process settles nodes in ascending cost order. With stopAtTarget it
// returns as soon as target is settled.
func (r *runner) process(target core.NodeID, stopAtTarget bool) {
	for r.queue.Len() > 0 {
		u, d, _ := r.queue.Pop()

		// Skip stale entries left behind by lazy decrease-key.
		if r.visited[u] {
			continue
		}
		// Everything left in the queue costs at least d.
		if d > r.options.MaxCost {
			return
		}

		r.visited[u] = true
		if stopAtTarget && u == target {
			return
		}

		r.relax(u)
	}
}

// relax tries to improve the cost of every unsettled neighbour of u.
func (r *runner) relax(u core.NodeID) {
	du := r.dist[u]
	r.g.EachEdge(u, func(e core.Edge) bool {
		if r.visited[e.To] || e.Cost >= r.options.ImpassableAbove {
			return true
		}

		alt := du + e.Cost
		if alt > r.options.MaxCost || alt >= r.cost(e.To) {
			return true
		}

		r.dist[e.To] = alt
		r.prev[e.To] = u
		r.queue.Push(e.To, alt)
		return true
	})
}

// path rebuilds the start → target path from the predecessor map.
func (r *runner) path(start, target core.NodeID) Path {
	if !r.visited[target] {
		return UnreachablePath()
	}

	nodes := []core.NodeID{target}
	for cur := target; cur != start; {
		cur = r.prev[cur]
		nodes = append(nodes, cur)
	}
	slices.Reverse(nodes)

	return Path{Outcome: Found, Nodes: nodes, Cost: r.dist[target]}
}
