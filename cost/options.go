// SPDX-License-Identifier: MIT
// Package: floorpath/cost
//
// options.go: travel-cost configuration and functional options.
//
// Contract (strict):
//   • Options is a plain value; DefaultOptions returns a fresh copy each call.
//   • New merges functional options over the defaults per call. Nothing in
//     this package holds mutable global state.
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Values written directly into the struct (config files, flags) are
//     checked by Validate, which returns sentinel errors instead.

package cost

import (
	"errors"
	"fmt"
	"math"
)

// Defaults for the travel-cost model.
const (
	// DefaultWalkSpeed is the walking speed in meters per second.
	DefaultWalkSpeed = 1.3

	// DefaultFloorPenalty is the cost in seconds of each level of difference.
	DefaultFloorPenalty = 20.0
)

// Sentinel errors returned by Options.Validate.
var (
	// ErrBadWalkSpeed indicates a walking speed that is not finite and > 0.
	ErrBadWalkSpeed = errors.New("cost: walk speed must be finite and positive")

	// ErrBadFloorPenalty indicates a floor penalty that is not finite and >= 0.
	ErrBadFloorPenalty = errors.New("cost: floor penalty must be finite and non-negative")
)

// Options configures the travel-cost model and the inclusion policy used
// when building a graph.
//
// WalkSpeed       – meters per second; converts planar distance to seconds.
// FloorPenalty    – seconds added per level of difference.
// ExcludeOccupied – drop occupied nodes from the graph entirely.
type Options struct {
	WalkSpeed       float64
	FloorPenalty    float64
	ExcludeOccupied bool
}

// Option represents a functional option for configuring Options.
type Option func(*Options)

// DefaultOptions returns the default cost configuration:
//
//   - WalkSpeed:       1.3 m/s
//   - FloorPenalty:    20 s per level
//   - ExcludeOccupied: true
func DefaultOptions() Options {
	return Options{
		WalkSpeed:       DefaultWalkSpeed,
		FloorPenalty:    DefaultFloorPenalty,
		ExcludeOccupied: true,
	}
}

// New returns DefaultOptions with opts applied left to right.
func New(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// With returns a copy of o with opts applied left to right.
func (o Options) With(opts ...Option) Options {
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithWalkSpeed sets the walking speed in m/s.
// Panics if mps is not finite and strictly positive.
func WithWalkSpeed(mps float64) Option {
	if !(mps > 0) || math.IsInf(mps, 0) {
		panic(fmt.Sprintf("cost: WithWalkSpeed(%v)", mps))
	}
	return func(o *Options) {
		o.WalkSpeed = mps
	}
}

// WithFloorPenalty sets the per-level penalty in seconds.
// Panics if sec is negative, NaN or infinite.
func WithFloorPenalty(sec float64) Option {
	if !(sec >= 0) || math.IsInf(sec, 0) {
		panic(fmt.Sprintf("cost: WithFloorPenalty(%v)", sec))
	}
	return func(o *Options) {
		o.FloorPenalty = sec
	}
}

// WithIncludeOccupied keeps occupied nodes in built graphs.
func WithIncludeOccupied() Option {
	return func(o *Options) {
		o.ExcludeOccupied = false
	}
}

// Validate reports whether o can produce finite, non-negative costs.
func (o Options) Validate() error {
	if !(o.WalkSpeed > 0) || math.IsInf(o.WalkSpeed, 0) {
		return fmt.Errorf("%w: got %v", ErrBadWalkSpeed, o.WalkSpeed)
	}
	if !(o.FloorPenalty >= 0) || math.IsInf(o.FloorPenalty, 0) {
		return fmt.Errorf("%w: got %v", ErrBadFloorPenalty, o.FloorPenalty)
	}

	return nil
}
