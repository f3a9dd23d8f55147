package route

import (
	"errors"
	"math"

	"github.com/katalvlaran/floorpath/builder"
	"github.com/katalvlaran/floorpath/core"
	"github.com/katalvlaran/floorpath/dijkstra"
)

// ErrUnknownWaypoint is returned when a waypoint ID is not part of the
// supplied node collection at all. A waypoint that exists but is filtered
// out (e.g. occupied) is not an error: its leg is Unreachable.
var ErrUnknownWaypoint = errors.New("route: waypoint not in node collection")

// Route is the outcome of a strict-order multi-leg plan.
//
// Path concatenates the legs, keeping each junction waypoint once. Cost is
// the sum of the leg costs. Legs holds the per-leg search results in order.
//
// When Outcome == dijkstra.Unreachable, Path and Legs are nil and Cost is
// +Inf: no partial route is produced.
type Route struct {
	Outcome dijkstra.Outcome
	Path    []core.NodeID
	Cost    float64
	Legs    []dijkstra.Path
}

// Found reports whether r holds a complete route.
func (r Route) Found() bool { return r.Outcome == dijkstra.Found }

func unreachable() Route {
	return Route{Outcome: dijkstra.Unreachable, Cost: math.Inf(1)}
}

// Option configures Plan.
type Option func(*config)

type config struct {
	search []dijkstra.Option
	build  []builder.Option
}

// WithSearch forwards options to every leg's shortest-path search.
func WithSearch(opts ...dijkstra.Option) Option {
	return func(c *config) {
		c.search = append(c.search, opts...)
	}
}

// WithBuild forwards options to the graph builder, e.g.
// WithBuild(builder.WithFilter(builder.MatchLevel(1, 2))).
func WithBuild(opts ...builder.Option) Option {
	return func(c *config) {
		c.build = append(c.build, opts...)
	}
}
