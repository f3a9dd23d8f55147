// Package service wires a node Source to the pure routing engine.
//
// A Planner fetches a fresh snapshot per query, runs route.Plan or
// nearest.Find on it, and reports the result through structured logs and
// optional Prometheus metrics. The engine packages stay free of I/O; all
// of it lives here.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/floorpath/core"
	"github.com/katalvlaran/floorpath/cost"
	"github.com/katalvlaran/floorpath/nearest"
	"github.com/katalvlaran/floorpath/route"
	"github.com/katalvlaran/floorpath/source"
)

// ErrNilSource is returned by New when no Source is given.
var ErrNilSource = errors.New("service: nil source")

// Planner answers route and nearest-station queries against a Source.
// It is safe for concurrent use when its Source is.
type Planner struct {
	src     source.Source
	cost    cost.Options
	route   []route.Option
	nearest []nearest.Option
	log     *slog.Logger
	metrics *Metrics
}

// Option configures a Planner.
type Option func(*Planner)

// WithCost sets the travel-cost model used for routing.
func WithCost(o cost.Options) Option {
	return func(p *Planner) {
		p.cost = o
	}
}

// WithRoute appends options passed to every route.Plan call.
func WithRoute(opts ...route.Option) Option {
	return func(p *Planner) {
		p.route = append(p.route, opts...)
	}
}

// WithNearest appends options passed to every nearest.Find call.
func WithNearest(opts ...nearest.Option) Option {
	return func(p *Planner) {
		p.nearest = append(p.nearest, opts...)
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("service: WithLogger(nil)")
	}
	return func(p *Planner) {
		p.log = l
	}
}

// WithMetrics enables metric reporting to m.
func WithMetrics(m *Metrics) Option {
	return func(p *Planner) {
		p.metrics = m
	}
}

// New returns a Planner reading from src. The cost model defaults to
// cost.DefaultOptions and is validated here so that queries fail only on
// per-query problems.
func New(src source.Source, opts ...Option) (*Planner, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	p := &Planner{
		src:  src,
		cost: cost.DefaultOptions(),
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.cost.Validate(); err != nil {
		return nil, fmt.Errorf("service: New: %w", err)
	}

	return p, nil
}

// Route plans a visit of waypoints in the given order.
//
// Errors come from the snapshot, from a cancelled ctx, or from route.Plan
// (unknown waypoint). An unreachable route is a normal result.
func (p *Planner) Route(ctx context.Context, waypoints []core.NodeID) (route.Route, error) {
	start := time.Now()
	log := p.log.With(slog.String("query", uuid.New().String()), slog.String("kind", KindRoute))
	log.Debug("route query", slog.Any("waypoints", waypoints))

	nodes, err := p.snapshot(ctx)
	if err != nil {
		p.fail(log, KindRoute, start, -1, err)
		return route.Route{}, err
	}

	r, err := route.Plan(nodes, waypoints, p.cost, p.route...)
	if err != nil {
		p.fail(log, KindRoute, start, len(nodes), err)
		return route.Route{}, err
	}

	outcome := OutcomeFound
	if !r.Found() {
		outcome = OutcomeUnreachable
	}
	p.metrics.observe(KindRoute, outcome, time.Since(start).Seconds(), len(nodes))
	log.Debug("route done",
		slog.String("outcome", outcome),
		slog.Float64("cost", r.Cost),
		slog.Int("stops", len(r.Path)),
		slog.Int("stations", len(nodes)),
		slog.Duration("took", time.Since(start)),
	)

	return r, nil
}

// Nearest ranks the stations matching name as seen from origin.
// An empty result is a normal outcome.
func (p *Planner) Nearest(ctx context.Context, name string, origin core.Node) (nearest.Result, error) {
	start := time.Now()
	log := p.log.With(slog.String("query", uuid.New().String()), slog.String("kind", KindNearest))
	log.Debug("nearest query", slog.String("name", name), slog.Int("level", origin.Level))

	nodes, err := p.snapshot(ctx)
	if err != nil {
		p.fail(log, KindNearest, start, -1, err)
		return nearest.Result{}, err
	}

	res := nearest.Find(nodes, name, origin, p.nearest...)

	outcome := OutcomeFound
	if len(res.Ranked) == 0 {
		outcome = OutcomeEmpty
	}
	p.metrics.observe(KindNearest, outcome, time.Since(start).Seconds(), len(nodes))
	log.Debug("nearest done",
		slog.String("outcome", outcome),
		slog.Int("candidates", res.Candidates),
		slog.Int("returned", len(res.Ranked)),
		slog.Duration("took", time.Since(start)),
	)

	return res, nil
}

// snapshot fetches nodes and checks ctx once more before compute starts.
func (p *Planner) snapshot(ctx context.Context) ([]core.Node, error) {
	nodes, err := p.src.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: snapshot: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	return nodes, nil
}

func (p *Planner) fail(log *slog.Logger, kind string, start time.Time, stations int, err error) {
	p.metrics.observe(kind, OutcomeError, time.Since(start).Seconds(), stations)
	log.Warn(kind+" failed", slog.Any("error", err))
}
