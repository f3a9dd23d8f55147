// SPDX-License-Identifier: MIT
// Package: floorpath/builder
//
// options.go: functional options and inclusion matchers.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs (nil).
//     Build itself never panics.

package builder

import (
	"strings"

	"github.com/katalvlaran/floorpath/core"
)

// Option customizes Build by mutating a builderConfig before construction.
type Option func(*builderConfig)

// Matcher decides whether a node is included in the graph.
type Matcher func(n core.Node) bool

// WithFilter adds an inclusion filter. Multiple filters combine with AND.
// Panics on nil.
func WithFilter(m Matcher) Option {
	if m == nil {
		panic("builder: WithFilter(nil)")
	}
	return func(c *builderConfig) {
		c.filters = append(c.filters, m)
	}
}

// WithCostFn overrides the edge cost function (default cost.Travel).
// The function must be pure; Build rejects negative or non-finite results
// with ErrBadCostFn. Panics on nil.
func WithCostFn(fn CostFn) Option {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// MatchTag accepts nodes carrying tag (case-insensitive).
func MatchTag(tag string) Matcher {
	return func(n core.Node) bool {
		return n.HasTag(tag)
	}
}

// MatchLevel accepts nodes on one of the given levels.
func MatchLevel(levels ...int) Matcher {
	set := make(map[int]struct{}, len(levels))
	for _, l := range levels {
		set[l] = struct{}{}
	}
	return func(n core.Node) bool {
		_, ok := set[n.Level]
		return ok
	}
}

// MatchName accepts nodes whose name contains sub, compared
// case-insensitively. An empty sub matches every node.
func MatchName(sub string) Matcher {
	needle := strings.ToLower(sub)
	return func(n core.Node) bool {
		return strings.Contains(strings.ToLower(n.Name), needle)
	}
}

// MatchAny accepts nodes whose ID is in ids. Combined with Or it keeps fixed
// waypoints routable under a narrower filter, e.g. Or(MatchAny(start), MatchTag("legs")).
func MatchAny(ids ...core.NodeID) Matcher {
	set := make(map[core.NodeID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(n core.Node) bool {
		_, ok := set[n.ID]
		return ok
	}
}

// Or combines matchers: a node is accepted if any of them accepts it.
func Or(ms ...Matcher) Matcher {
	return func(n core.Node) bool {
		for _, m := range ms {
			if m(n) {
				return true
			}
		}
		return false
	}
}
