// Package builder turns a node snapshot into the complete weighted digraph
// the path planner searches.
//
// The package offers the following key components:
//
//   - Build(nodes, o, opts...): the single orchestrator. Validates the cost
//     options, applies the inclusion policy, emits all n(n-1) edges and hands
//     the result to core.NewGraph.
//   - Inclusion matchers (Matcher):
//     – MatchTag:   nodes carrying a category tag.
//     – MatchLevel: nodes on selected levels.
//     – MatchName:  case-insensitive substring on the display name.
//     – MatchAny:   an explicit ID set.
//     – Or:         union of matchers.
//   - Options:
//     – WithFilter:  add a matcher (filters combine with AND).
//     – WithCostFn:  replace cost.Travel as edge weight.
//
// Guarantees:
//
//   - Occupied nodes never appear in a graph built with ExcludeOccupied.
//   - Every included node has exactly |included|-1 outgoing edges.
//   - Deterministic edge order for a given snapshot order.
//   - Fast-fail on invalid cost options before any O(n²) work.
//
// Build is a pure function of its inputs; concurrent calls need no locking.
package builder
