// SPDX-License-Identifier: MIT
// Package: floorpath/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • costFn  = cost.Travel
//   • filters = none (only the ExcludeOccupied policy from cost.Options)

package builder

import (
	"github.com/katalvlaran/floorpath/core"
	"github.com/katalvlaran/floorpath/cost"
)

// CostFn computes the directed edge cost a→b under o.
type CostFn func(a, b core.Node, o cost.Options) float64

// builderConfig aggregates all knobs used by Build.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// Edge cost strategy.
	costFn CostFn
	// Extra inclusion filters; a node must pass all of them.
	filters []Matcher
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		costFn: cost.Travel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// include reports whether n enters the graph under o and the configured filters.
func (cfg builderConfig) include(n core.Node, o cost.Options) bool {
	if o.ExcludeOccupied && n.Occupied {
		return false
	}
	for _, m := range cfg.filters {
		if !m(n) {
			return false
		}
	}

	return true
}
