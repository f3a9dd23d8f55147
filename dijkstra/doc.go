// Package dijkstra provides single-pair shortest-path search over the
// station graphs produced by builder.Build.
//
// Overview:
//
//   - ShortestPath(g, start, target, opts...) settles nodes in increasing
//     cost order and stops as soon as target is settled.
//   - Distances(g, start, opts...) runs the same search to exhaustion and
//     returns the cost of every reachable node.
//   - The frontier is a pq.Queue; pass WithQueue(pq.NewBTree) to swap the
//     binary heap for a B-tree without touching the algorithm.
//
// Results are tagged:
//
//	Path{Outcome: Found, Nodes: [start … target], Cost: c}
//	Path{Outcome: Unreachable, Nodes: nil, Cost: +Inf}
//
// Unreachable is a normal outcome on filtered graphs (for instance when the
// target is occupied and was left out by the builder) and is never reported
// as an error. The only error is ErrNilGraph.
//
// Key options:
//
//   - WithMaxCost(c): nodes costlier than c are not explored; targets
//     beyond c are Unreachable.
//   - WithImpassableAbove(t): edges with cost ≥ t are treated as walls.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V); O(V² log V) on complete graphs.
//   - Space: O(V + E) worst case, dominated by lazy queue entries.
//
// Concurrency:
//
//   - All search state lives in a per-call runner; the graph is read-only.
//     Concurrent searches over one graph are safe.
package dijkstra
