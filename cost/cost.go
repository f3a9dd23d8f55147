// Package cost implements the travel-cost model shared by graph building and
// ranking: planar walking time plus a fixed penalty per level changed.
//
//	Travel(a, b) = |ab| / WalkSpeed + |a.Level - b.Level| * FloorPenalty
//
// All functions are pure. The model has no directional bias, so
// Travel(a, b) == Travel(b, a), and it is zero only when a and b share both
// position and level.
package cost

import (
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/floorpath/core"
)

// Planar returns the Euclidean distance between a and b in the XY plane.
func Planar(a, b core.Node) float64 {
	return planar.Distance(a.Point(), b.Point())
}

// FloorGap returns the absolute level difference between a and b.
func FloorGap(a, b core.Node) int {
	d := a.Level - b.Level
	if d < 0 {
		return -d
	}

	return d
}

// Travel returns the travel cost in seconds between a and b under o.
//
// o is expected to be valid (see Options.Validate); builder.Build and
// route.Plan validate before calling Travel.
//
// Complexity: O(1).
func Travel(a, b core.Node, o Options) float64 {
	horizontal := Planar(a, b) / o.WalkSpeed
	vertical := float64(FloorGap(a, b)) * o.FloorPenalty

	return horizontal + vertical
}
