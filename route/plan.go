package route

import (
	"fmt"

	"github.com/katalvlaran/floorpath/builder"
	"github.com/katalvlaran/floorpath/core"
	"github.com/katalvlaran/floorpath/cost"
	"github.com/katalvlaran/floorpath/dijkstra"
)

// Plan returns the route visiting waypoints in the given order over nodes.
//
// Behavior:
//   - Fewer than two waypoints: the waypoints are returned verbatim with
//     cost 0 and Outcome Found ("already there"); nothing is validated or built.
//   - Otherwise o and the waypoint IDs are validated before any graph work.
//   - A waypoint excluded from the graph (occupied under ExcludeOccupied, or
//     rejected by a builder filter) makes its leg, and so the route, Unreachable.
//
// Errors:
//   - cost.ErrBadWalkSpeed / cost.ErrBadFloorPenalty for invalid o.
//   - ErrUnknownWaypoint when a waypoint ID is absent from nodes.
//   - core.ErrDuplicateNode from the builder.
//
// Complexity: O(n²) to build plus O(k · n² log n) for k legs.
func Plan(nodes []core.Node, waypoints []core.NodeID, o cost.Options, opts ...Option) (Route, error) {
	if len(waypoints) < 2 {
		return Route{
			Outcome: dijkstra.Found,
			Path:    append([]core.NodeID{}, waypoints...),
		}, nil
	}

	if err := o.Validate(); err != nil {
		return Route{}, fmt.Errorf("route: %w", err)
	}
	if err := checkWaypoints(nodes, waypoints); err != nil {
		return Route{}, err
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := builder.Build(nodes, o, cfg.build...)
	if err != nil {
		return Route{}, fmt.Errorf("route: %w", err)
	}

	return chain(g, waypoints, cfg.search)
}

// PlanGraph chains legs over an already built graph. Waypoints missing from
// g are reported as Unreachable, since g carries no record of nodes it
// excluded.
func PlanGraph(g *core.Graph, waypoints []core.NodeID, opts ...dijkstra.Option) (Route, error) {
	if len(waypoints) < 2 {
		return Route{
			Outcome: dijkstra.Found,
			Path:    append([]core.NodeID{}, waypoints...),
		}, nil
	}
	if g == nil {
		return Route{}, fmt.Errorf("route: %w", dijkstra.ErrNilGraph)
	}

	return chain(g, waypoints, opts)
}

// checkWaypoints fails fast on IDs that are not in the snapshot.
func checkWaypoints(nodes []core.Node, waypoints []core.NodeID) error {
	known := make(map[core.NodeID]struct{}, len(nodes))
	for _, n := range nodes {
		known[n.ID] = struct{}{}
	}
	for i, id := range waypoints {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: waypoint[%d]=%d", ErrUnknownWaypoint, i, id)
		}
	}

	return nil
}

// chain runs one search per consecutive waypoint pair and joins the legs.
func chain(g *core.Graph, waypoints []core.NodeID, opts []dijkstra.Option) (Route, error) {
	r := Route{
		Outcome: dijkstra.Found,
		Legs:    make([]dijkstra.Path, 0, len(waypoints)-1),
	}

	for i := 0; i+1 < len(waypoints); i++ {
		leg, err := dijkstra.ShortestPath(g, waypoints[i], waypoints[i+1], opts...)
		if err != nil {
			return Route{}, fmt.Errorf("route: leg %d: %w", i, err)
		}
		if !leg.Found() {
			return unreachable(), nil
		}

		// The junction node is already the last element of the previous leg.
		if i == 0 {
			r.Path = append(r.Path, leg.Nodes...)
		} else {
			r.Path = append(r.Path, leg.Nodes[1:]...)
		}
		r.Cost += leg.Cost
		r.Legs = append(r.Legs, leg)
	}

	return r, nil
}
