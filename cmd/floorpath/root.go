package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/floorpath/config"
	"github.com/katalvlaran/floorpath/core"
	"github.com/katalvlaran/floorpath/cost"
	"github.com/katalvlaran/floorpath/nearest"
	"github.com/katalvlaran/floorpath/service"
	"github.com/katalvlaran/floorpath/source"
)

var errNoStations = errors.New("no station file: set --stations or `stations` in the config file")

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	configPath      string
	stations        string
	verbose         bool
	timeout         time.Duration
	walkSpeed       float64
	floorPenalty    float64
	includeOccupied bool
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:          "floorpath",
		Short:        "Multi-level station routing and nearest-station lookup",
		SilenceUsage: true,
	}

	f := root.PersistentFlags()
	f.StringVarP(&g.configPath, "config", "c", "", "YAML config file")
	f.StringVarP(&g.stations, "stations", "s", "", "YAML station file (overrides config)")
	f.BoolVarP(&g.verbose, "verbose", "v", false, "debug logging to stderr")
	f.DurationVar(&g.timeout, "timeout", 5*time.Second, "per-query timeout")
	f.Float64Var(&g.walkSpeed, "walk-speed", cost.DefaultWalkSpeed, "walking speed in m/s")
	f.Float64Var(&g.floorPenalty, "floor-penalty", cost.DefaultFloorPenalty, "seconds per level changed")
	f.BoolVar(&g.includeOccupied, "include-occupied", false, "route through occupied stations")

	root.AddCommand(newRouteCmd(g), newNearestCmd(g))

	return root
}

// load merges the config file with flags that were set explicitly.
func (g *globals) load(cmd *cobra.Command) (config.Config, error) {
	c := config.Default()
	if g.configPath != "" {
		var err error
		if c, err = config.Load(g.configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("stations") {
		c.Stations = g.stations
	}
	if flags.Changed("walk-speed") {
		c.Cost.WalkSpeed = g.walkSpeed
	}
	if flags.Changed("floor-penalty") {
		c.Cost.FloorPenalty = g.floorPenalty
	}
	if flags.Changed("include-occupied") {
		c.Cost.IncludeOccupied = g.includeOccupied
	}

	return c, nil
}

// planner reads the station file once and builds a service.Planner over it.
// extra options come last so that subcommand flags win over the config file.
func (g *globals) planner(cmd *cobra.Command, c config.Config, extra ...nearest.Option) (*service.Planner, map[core.NodeID]core.Node, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	if c.Stations == "" {
		return nil, nil, errNoStations
	}
	nodes, err := source.LoadFile(c.Stations)
	if err != nil {
		return nil, nil, err
	}
	index := make(map[core.NodeID]core.Node, len(nodes))
	for _, n := range nodes {
		index[n.ID] = n
	}

	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	p, err := service.New(source.Static(nodes...),
		service.WithCost(c.CostOptions()),
		service.WithNearest(append(c.NearestOptions(), extra...)...),
		service.WithLogger(logger),
	)
	if err != nil {
		return nil, nil, err
	}

	return p, index, nil
}

func (g *globals) queryContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, g.timeout)
}

func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return enc.Close()
}
