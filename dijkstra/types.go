// Package dijkstra defines the result and configuration types for the
// single-pair shortest-path search.
//
// Options:
//
//	– WithQueue:            priority-queue implementation (default pq.NewHeap).
//	– WithMaxCost:          give up on nodes whose tentative cost exceeds the cap.
//	– WithImpassableAbove:  treat edges with cost >= threshold as walls.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrBadMaxCost      if WithMaxCost receives a negative or NaN value (panic).
//	– ErrBadImpassable   if WithImpassableAbove receives <= 0 or NaN (panic).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/floorpath/core"
	"github.com/katalvlaran/floorpath/pq"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to the search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxCost indicates a MaxCost that is negative or NaN.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadImpassable indicates an impassable threshold that is not positive.
	ErrBadImpassable = errors.New("dijkstra: impassable threshold must be positive")
)

// Outcome tags a search result.
type Outcome uint8

const (
	// Unreachable means no path exists between the endpoints in this graph.
	// It is the zero value, so an uninitialised Path never reads as found.
	Unreachable Outcome = iota

	// Found means Path.Nodes holds a shortest path and Path.Cost its cost.
	Found
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Path is the result of a single-pair search.
//
// When Outcome == Found, Nodes runs from source to target (inclusive) and
// Cost is the summed edge cost. When Outcome == Unreachable, Nodes is nil and
// Cost is +Inf; branch on Outcome (or Found()) rather than on Cost.
type Path struct {
	Outcome Outcome
	Nodes   []core.NodeID
	Cost    float64
}

// Found reports whether p holds a path.
func (p Path) Found() bool { return p.Outcome == Found }

// UnreachablePath returns the Unreachable sentinel result.
func UnreachablePath() Path {
	return Path{Outcome: Unreachable, Cost: math.Inf(1)}
}

// Options configures the behavior of the search.
//
// Queue          – factory for the frontier priority queue.
// MaxCost        – nodes whose tentative cost exceeds this are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// ImpassableAbove – edges with cost ≥ this threshold are skipped.
//
//	Must be > 0. Default is +Inf (no walls).
type Options struct {
	Queue           pq.Factory
	MaxCost         float64
	ImpassableAbove float64
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithQueue selects the priority-queue implementation.
// Panics on nil.
func WithQueue(f pq.Factory) Option {
	if f == nil {
		panic("dijkstra: WithQueue(nil)")
	}
	return func(o *Options) {
		o.Queue = f
	}
}

// WithMaxCost caps the explored cost. A target beyond the cap is reported
// Unreachable. Panics with ErrBadMaxCost on negative or NaN values.
func WithMaxCost(max float64) Option {
	if !(max >= 0) {
		panic(ErrBadMaxCost.Error())
	}
	return func(o *Options) {
		o.MaxCost = max
	}
}

// WithImpassableAbove treats edges with cost ≥ threshold as non-traversable.
// Panics with ErrBadImpassable on values <= 0 or NaN.
func WithImpassableAbove(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadImpassable.Error())
	}
	return func(o *Options) {
		o.ImpassableAbove = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//
//   - Queue:           pq.NewHeap
//   - MaxCost:         +Inf
//   - ImpassableAbove: +Inf
func DefaultOptions() Options {
	return Options{
		Queue:           pq.NewHeap,
		MaxCost:         math.Inf(1),
		ImpassableAbove: math.Inf(1),
	}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
