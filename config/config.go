// Package config loads floorpath settings from YAML.
//
// Example file:
//
//	stations: gym.yaml
//	cost:
//	  walk_speed: 1.3        # m/s
//	  floor_penalty: 20      # seconds per level
//	  include_occupied: false
//	nearest:
//	  floor_penalty: 100     # meters per level
//	  top_k: 3
//	  use_cost_model: false
//
// Keys left out keep their Default values.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/floorpath/cost"
	"github.com/katalvlaran/floorpath/nearest"
)

// Sentinel errors returned by Validate.
var (
	ErrBadNearestPenalty = errors.New("config: nearest.floor_penalty must be finite and >= 0")
	ErrBadTopK           = errors.New("config: nearest.top_k must be >= 1")
)

// Config is the file layout.
type Config struct {
	Stations string  `yaml:"stations"`
	Cost     Cost    `yaml:"cost"`
	Nearest  Nearest `yaml:"nearest"`
}

// Cost mirrors cost.Options.
type Cost struct {
	WalkSpeed       float64 `yaml:"walk_speed"`
	FloorPenalty    float64 `yaml:"floor_penalty"`
	IncludeOccupied bool    `yaml:"include_occupied"`
}

// Nearest mirrors the ranker options.
type Nearest struct {
	FloorPenalty float64 `yaml:"floor_penalty"`
	TopK         int     `yaml:"top_k"`
	UseCostModel bool    `yaml:"use_cost_model"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Cost: Cost{
			WalkSpeed:    cost.DefaultWalkSpeed,
			FloorPenalty: cost.DefaultFloorPenalty,
		},
		Nearest: Nearest{
			FloorPenalty: nearest.DefaultFloorPenalty,
			TopK:         nearest.DefaultTopK,
		},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks both option groups.
func (c Config) Validate() error {
	if err := c.CostOptions().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	p := c.Nearest.FloorPenalty
	if !(p >= 0) || math.IsInf(p, 0) {
		return ErrBadNearestPenalty
	}
	if c.Nearest.TopK < 1 {
		return ErrBadTopK
	}

	return nil
}

// CostOptions converts the cost section.
func (c Config) CostOptions() cost.Options {
	return cost.Options{
		WalkSpeed:       c.Cost.WalkSpeed,
		FloorPenalty:    c.Cost.FloorPenalty,
		ExcludeOccupied: !c.Cost.IncludeOccupied,
	}
}

// NearestOptions converts the nearest section. c must be valid; the option
// constructors panic otherwise.
func (c Config) NearestOptions() []nearest.Option {
	opts := []nearest.Option{nearest.WithTopK(c.Nearest.TopK)}
	if c.Nearest.UseCostModel {
		return append(opts, nearest.WithCostModel(c.CostOptions()))
	}

	return append(opts, nearest.WithFloorPenalty(c.Nearest.FloorPenalty))
}
