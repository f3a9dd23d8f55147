// Package source supplies node snapshots to the routing engine.
//
// The engine never owns station state. Every query asks a Source for a fresh
// snapshot, builds what it needs from it, and throws the result away. Two
// implementations are provided:
//
//   - Memory: a concurrency-safe in-memory store with availability updates.
//   - File: a YAML document re-read on every snapshot.
//
// Snapshots are deep copies; callers may keep or modify them freely.
package source

import (
	"context"
	"strings"

	"github.com/katalvlaran/floorpath/core"
)

// Source yields the current set of stations.
type Source interface {
	// Snapshot returns the stations as of the call. Implementations must
	// return data the caller is free to retain.
	Snapshot(ctx context.Context) ([]core.Node, error)
}

// Func adapts an ordinary function to the Source interface.
type Func func(ctx context.Context) ([]core.Node, error)

// Snapshot calls f(ctx).
func (f Func) Snapshot(ctx context.Context) ([]core.Node, error) {
	return f(ctx)
}

// Static returns a Source that always yields copies of nodes.
func Static(nodes ...core.Node) Source {
	frozen := cloneAll(nodes)
	return Func(func(ctx context.Context) ([]core.Node, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return cloneAll(frozen), nil
	})
}

// Filter returns the nodes whose name contains name, ignoring case.
// An empty name keeps every node. Order is preserved.
func Filter(nodes []core.Node, name string) []core.Node {
	needle := strings.ToLower(name)
	out := make([]core.Node, 0, len(nodes))
	for _, n := range nodes {
		if strings.Contains(strings.ToLower(n.Name), needle) {
			out = append(out, n.Clone())
		}
	}

	return out
}

func cloneAll(nodes []core.Node) []core.Node {
	out := make([]core.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}

	return out
}
