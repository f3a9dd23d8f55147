// SPDX-License-Identifier: MIT
// Package: floorpath/builder
//
// impl_complete.go: emission of the complete digraph over included nodes.
//
// Contract:
//   • Emits every ordered pair (i,j) with i != j exactly once.
//   • Pair order: lexicographic by snapshot index (i,j).
//   • Cost policy: cfg.costFn(nodes[i], nodes[j], o); results that are
//     negative, NaN or infinite fail with ErrBadCostFn.
//
// Complexity:
//   • Time: O(n²) edges emission.
//   • Space: O(n²) for the adjacency lists.

package builder

import (
	"math"

	"github.com/katalvlaran/floorpath/core"
	"github.com/katalvlaran/floorpath/cost"
)

const methodComplete = "Complete"

// complete returns the adjacency of K_n over nodes, directed in both ways.
func complete(nodes []core.Node, o cost.Options, cfg builderConfig) (map[core.NodeID][]core.Edge, error) {
	n := len(nodes)
	adjacency := make(map[core.NodeID][]core.Edge, n)

	for i := 0; i < n; i++ {
		u := nodes[i]
		out := make([]core.Edge, 0, n-1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := nodes[j]

			w := cfg.costFn(u, v, o)
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, builderErrorf(methodComplete, ErrBadCostFn, "edge %d→%d cost=%v", u.ID, v.ID, w)
			}
			out = append(out, core.Edge{To: v.ID, Cost: w})
		}
		adjacency[u.ID] = out
	}

	return adjacency, nil
}
