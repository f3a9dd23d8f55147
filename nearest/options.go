package nearest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/floorpath/core"
	"github.com/katalvlaran/floorpath/cost"
)

// Defaults for the ranker.
const (
	// DefaultFloorPenalty is the score, in meters of planar distance, added
	// per level of difference. It is deliberately large so that a station on
	// the current floor wins over a nearby one upstairs.
	DefaultFloorPenalty = 100.0

	// DefaultTopK is the number of ranked matches returned.
	DefaultTopK = 1
)

// Scorer computes the ranking score of candidate as seen from origin.
// Lower scores rank first.
type Scorer func(origin, candidate core.Node) float64

// Options configures Find.
//
// FloorPenalty – meters added per level of difference (DistanceScorer).
// TopK         – number of ranked matches kept (≥ 1).
// Tags         – candidates must carry every tag listed.
// Scorer       – overrides the distance-plus-penalty score when set.
type Options struct {
	FloorPenalty float64
	TopK         int
	Tags         []string
	Scorer       Scorer
}

// Option represents a functional option for configuring Find.
type Option func(*Options)

// DefaultOptions returns FloorPenalty = 100, TopK = 1, no tag filter and
// the distance scorer.
func DefaultOptions() Options {
	return Options{
		FloorPenalty: DefaultFloorPenalty,
		TopK:         DefaultTopK,
	}
}

// WithFloorPenalty sets the per-level penalty in meters.
// Panics if p is negative, NaN or infinite.
func WithFloorPenalty(p float64) Option {
	if !(p >= 0) || math.IsInf(p, 0) {
		panic(fmt.Sprintf("nearest: WithFloorPenalty(%v)", p))
	}
	return func(o *Options) {
		o.FloorPenalty = p
	}
}

// WithTopK sets how many ranked matches are returned. Panics if k < 1.
func WithTopK(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("nearest: WithTopK(%d)", k))
	}
	return func(o *Options) {
		o.TopK = k
	}
}

// WithTag limits candidates to stations carrying tag (case-insensitive).
// Repeated use requires all tags.
func WithTag(tag string) Option {
	return func(o *Options) {
		o.Tags = append(o.Tags, tag)
	}
}

// WithScorer replaces the default score. Panics on nil.
func WithScorer(s Scorer) Option {
	if s == nil {
		panic("nearest: WithScorer(nil)")
	}
	return func(o *Options) {
		o.Scorer = s
	}
}

// WithCostModel ranks by cost.Travel under co, in seconds, so that ranking
// and routing share one cost surface. FloorPenalty is then ignored.
// Panics if co is invalid.
func WithCostModel(co cost.Options) Option {
	if err := co.Validate(); err != nil {
		panic(fmt.Sprintf("nearest: WithCostModel: %v", err))
	}
	return WithScorer(func(origin, candidate core.Node) float64 {
		return cost.Travel(origin, candidate, co)
	})
}

// DistanceScorer returns the default score: planar distance plus penalty
// meters per level of difference.
func DistanceScorer(penalty float64) Scorer {
	return func(origin, candidate core.Node) float64 {
		return cost.Planar(origin, candidate) + penalty*float64(cost.FloorGap(origin, candidate))
	}
}

func (o Options) scorer() Scorer {
	if o.Scorer != nil {
		return o.Scorer
	}

	return DistanceScorer(o.FloorPenalty)
}
