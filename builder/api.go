// SPDX-License-Identifier: MIT
// Package: floorpath/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(nodes, o, opts...). Validates o, resolves cfg,
//     filters the snapshot and emits the complete digraph.
//   - Functional options (Option) resolve into an immutable builderConfig.
//   - Determinism: same snapshot order and options ⇒ identical graphs.
//   - Safety: never panic; return wrapped sentinel errors.

package builder

import (
	"github.com/katalvlaran/floorpath/core"
	"github.com/katalvlaran/floorpath/cost"
)

const methodBuild = "Build"

// Build returns the complete weighted digraph over every node of nodes that
// passes the inclusion policy, keyed by node ID, together with its ID index
// (see core.Graph.Node).
//
// Inclusion:
//   - o.ExcludeOccupied drops occupied nodes entirely: they appear neither as
//     keys nor as any edge target.
//   - Every WithFilter matcher must accept the node as well.
//
// Every included node i receives exactly n-1 edges i→j (j != i), weighted by
// cost.Travel(i, j, o) unless WithCostFn overrides it.
//
// Errors:
//   - cost.ErrBadWalkSpeed / cost.ErrBadFloorPenalty when o is invalid.
//     Checked before any pair is emitted.
//   - core.ErrDuplicateNode when two included nodes share an ID.
//   - ErrBadCostFn when a custom cost function yields an invalid cost.
//
// Complexity:
//   - Time O(n²), Space O(n²) for n included nodes. Node counts are expected
//     in the tens to low hundreds; past low thousands this needs spatial
//     pruning, which Build does not attempt.
func Build(nodes []core.Node, o cost.Options, opts ...Option) (*core.Graph, error) {
	if err := o.Validate(); err != nil {
		return nil, builderErrorf(methodBuild, err, "invalid cost options")
	}

	cfg := newBuilderConfig(opts...)

	included := make([]core.Node, 0, len(nodes))
	seen := make(map[core.NodeID]struct{}, len(nodes))
	for _, n := range nodes {
		// Duplicates are rejected before filtering so that an excluded copy
		// cannot hide a malformed snapshot.
		if _, dup := seen[n.ID]; dup {
			return nil, builderErrorf(methodBuild, core.ErrDuplicateNode, "node %d", n.ID)
		}
		seen[n.ID] = struct{}{}
		if cfg.include(n, o) {
			included = append(included, n)
		}
	}

	adjacency, err := complete(included, o, cfg)
	if err != nil {
		return nil, err
	}

	g, err := core.NewGraph(included, adjacency)
	if err != nil {
		return nil, builderErrorf(methodBuild, err, "assemble graph")
	}

	return g, nil
}
