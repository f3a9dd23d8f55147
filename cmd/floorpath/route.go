package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/floorpath/core"
)

type routeOutput struct {
	Outcome string      `yaml:"outcome"`
	Cost    float64     `yaml:"cost"`
	Stops   []stopEntry `yaml:"stops"`
}

type stopEntry struct {
	ID    int     `yaml:"id"`
	Name  string  `yaml:"name,omitempty"`
	Level int     `yaml:"level"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

func newRouteCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "route ID [ID...]",
		Short: "Plan a route visiting station IDs in the given order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			waypoints, err := parseIDs(args)
			if err != nil {
				return err
			}
			c, err := g.load(cmd)
			if err != nil {
				return err
			}
			p, nodes, err := g.planner(cmd, c)
			if err != nil {
				return err
			}

			ctx, cancel := g.queryContext(cmd)
			defer cancel()

			r, err := p.Route(ctx, waypoints)
			if err != nil {
				return err
			}

			out := routeOutput{Outcome: r.Outcome.String(), Cost: r.Cost, Stops: []stopEntry{}}
			for _, id := range r.Path {
				n := nodes[id]
				out.Stops = append(out.Stops, stopEntry{ID: int(id), Name: n.Name, Level: n.Level, X: n.X, Y: n.Y})
			}

			return writeYAML(cmd, out)
		},
	}
}

func parseIDs(args []string) ([]core.NodeID, error) {
	ids := make([]core.NodeID, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("station id %q: %w", a, err)
		}
		ids = append(ids, core.NodeID(v))
	}

	return ids, nil
}
