package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/floorpath/nearest"
)

type nearestOutput struct {
	Candidates int          `yaml:"candidates"`
	Matches    []matchEntry `yaml:"matches"`
}

type matchEntry struct {
	ID    int     `yaml:"id"`
	Name  string  `yaml:"name,omitempty"`
	Level int     `yaml:"level"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Score float64 `yaml:"score"`
}

func newNearestCmd(g *globals) *cobra.Command {
	var (
		level     int
		x, y      float64
		topK      int
		tags      []string
		penalty   float64
		costModel bool
	)

	cmd := &cobra.Command{
		Use:   "nearest [NAME]",
		Short: "Rank free stations whose name contains NAME by distance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			c, err := g.load(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("top-k") {
				c.Nearest.TopK = topK
			}
			if flags.Changed("nearest-penalty") {
				c.Nearest.FloorPenalty = penalty
			}
			if flags.Changed("cost-model") {
				c.Nearest.UseCostModel = costModel
			}
			var extra []nearest.Option
			for _, t := range tags {
				extra = append(extra, nearest.WithTag(t))
			}

			p, _, err := g.planner(cmd, c, extra...)
			if err != nil {
				return err
			}

			ctx, cancel := g.queryContext(cmd)
			defer cancel()

			res, err := p.Nearest(ctx, name, nearest.Origin(level, x, y))
			if err != nil {
				return err
			}

			out := nearestOutput{Candidates: res.Candidates, Matches: []matchEntry{}}
			for _, m := range res.Ranked {
				n := m.Node
				out.Matches = append(out.Matches, matchEntry{
					ID: int(n.ID), Name: n.Name, Level: n.Level, X: n.X, Y: n.Y, Score: m.Score,
				})
			}

			return writeYAML(cmd, out)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&level, "level", "l", 1, "current level")
	f.Float64VarP(&x, "x", "x", 0, "current x in meters")
	f.Float64VarP(&y, "y", "y", 0, "current y in meters")
	f.IntVarP(&topK, "top-k", "k", nearest.DefaultTopK, "number of matches")
	f.StringSliceVarP(&tags, "tag", "t", nil, "required tag (repeatable)")
	f.Float64Var(&penalty, "nearest-penalty", nearest.DefaultFloorPenalty, "meters added per level of difference")
	f.BoolVar(&costModel, "cost-model", false, "rank by travel seconds instead of meters")

	return cmd
}
