package builder_test

import (
	"errors"
	"math"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floorpath/builder"
	"github.com/katalvlaran/floorpath/core"
	"github.com/katalvlaran/floorpath/cost"
)

// gym returns a small two-level snapshot with one occupied station.
func gym() []core.Node {
	return []core.Node{
		{ID: 1, Name: "Bench Press", Level: 1, X: 0, Y: 0, Tags: []string{"Chest"}},
		{ID: 2, Name: "Squat Rack", Level: 1, X: 10, Y: 0, Tags: []string{"Legs"}},
		{ID: 3, Name: "Leg Press", Level: 2, X: 10, Y: 0, Tags: []string{"Legs"}, Occupied: true},
		{ID: 4, Name: "Rowing", Level: 2, X: 0, Y: 5, Tags: []string{"Back"}},
	}
}

func TestBuild_CompleteOverAvailable(t *testing.T) {
	g, err := builder.Build(gym(), cost.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, []core.NodeID{1, 2, 4}, g.IDs())
	assert.False(t, g.HasNode(3))
	assert.Equal(t, 6, g.EdgeCount())

	for _, id := range g.IDs() {
		out := g.Edges(id)
		require.Len(t, out, g.Len()-1)
		for _, e := range out {
			assert.NotEqual(t, id, e.To, "self edge on %d", id)
			assert.NotEqual(t, core.NodeID(3), e.To, "occupied node reachable from %d", id)
		}
	}
}

func TestBuild_EdgeCostsFollowModel(t *testing.T) {
	o := cost.New(cost.WithWalkSpeed(1), cost.WithFloorPenalty(20))
	g, err := builder.Build(gym(), o)
	require.NoError(t, err)

	a, _ := g.Node(1)
	b, _ := g.Node(4)
	for _, e := range g.Edges(1) {
		if e.To == 4 {
			assert.Equal(t, cost.Travel(a, b, o), e.Cost)
			assert.Equal(t, 25.0, e.Cost) // 5m at 1 m/s + 1 level * 20s
		}
	}
}

func TestBuild_IncludeOccupied(t *testing.T) {
	g, err := builder.Build(gym(), cost.New(cost.WithIncludeOccupied()))
	require.NoError(t, err)

	assert.True(t, g.HasNode(3))
	assert.Equal(t, 4*3, g.EdgeCount())
}

func TestBuild_Filters(t *testing.T) {
	o := cost.New(cost.WithIncludeOccupied())

	g, err := builder.Build(gym(), o, builder.WithFilter(builder.MatchTag("legs")))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{2, 3}, g.IDs())

	g, err = builder.Build(gym(), o,
		builder.WithFilter(builder.MatchLevel(2)),
		builder.WithFilter(builder.MatchName("ROW")),
	)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{4}, g.IDs())
	assert.Empty(t, g.Edges(4))

	g, err = builder.Build(gym(), o, builder.WithFilter(
		builder.Or(builder.MatchAny(1), builder.MatchTag("back")),
	))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 4}, g.IDs())
}

func TestBuild_EmptyAndSingle(t *testing.T) {
	g, err := builder.Build(nil, cost.DefaultOptions())
	require.NoError(t, err)
	assert.Zero(t, g.Len())

	g, err = builder.Build(gym()[:1], cost.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
	assert.Zero(t, g.EdgeCount())
}

func TestBuild_Errors(t *testing.T) {
	_, err := builder.Build(gym(), cost.Options{WalkSpeed: 0, FloorPenalty: 1})
	require.ErrorIs(t, err, cost.ErrBadWalkSpeed)

	_, err = builder.Build(gym(), cost.Options{WalkSpeed: 1, FloorPenalty: -3})
	require.ErrorIs(t, err, cost.ErrBadFloorPenalty)

	dup := append(gym(), core.Node{ID: 2, Name: "Clone"})
	_, err = builder.Build(dup, cost.DefaultOptions())
	require.ErrorIs(t, err, core.ErrDuplicateNode)

	// A duplicate is rejected even when one copy would be filtered out.
	dup = append(gym(), core.Node{ID: 2, Name: "Clone", Occupied: true})
	_, err = builder.Build(dup, cost.DefaultOptions())
	require.ErrorIs(t, err, core.ErrDuplicateNode)

	_, err = builder.Build(dup, cost.DefaultOptions(), builder.WithFilter(builder.MatchName("clone")))
	require.ErrorIs(t, err, core.ErrDuplicateNode)

	_, err = builder.Build(gym(), cost.DefaultOptions(), builder.WithCostFn(
		func(a, b core.Node, o cost.Options) float64 { return math.NaN() },
	))
	require.True(t, errors.Is(err, builder.ErrBadCostFn))
}

func TestBuild_CustomCostFn(t *testing.T) {
	flat := func(a, b core.Node, o cost.Options) float64 { return 1 }
	g, err := builder.Build(gym(), cost.DefaultOptions(), builder.WithCostFn(flat))
	require.NoError(t, err)
	for _, id := range g.IDs() {
		for _, e := range g.Edges(id) {
			assert.Equal(t, 1.0, e.Cost)
		}
	}
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithFilter(nil) })
	assert.Panics(t, func() { builder.WithCostFn(nil) })
}

// TestBuild_RandomCompleteness checks completeness and exclusion over random snapshots.
func TestBuild_RandomCompleteness(t *testing.T) {
	gofakeit.Seed(42)
	for round := 0; round < 20; round++ {
		size := gofakeit.Number(2, 40)
		nodes := make([]core.Node, 0, size)
		available := 0
		for i := 0; i < size; i++ {
			occupied := gofakeit.Number(0, 3) == 0
			if !occupied {
				available++
			}
			nodes = append(nodes, core.Node{
				ID:       core.NodeID(i + 1),
				Name:     gofakeit.Username(),
				Level:    gofakeit.Number(1, 5),
				X:        float64(gofakeit.Number(0, 100)),
				Y:        float64(gofakeit.Number(0, 100)),
				Occupied: occupied,
			})
		}

		g, err := builder.Build(nodes, cost.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, available, g.Len())
		require.Equal(t, available*(available-1), g.EdgeCount())
		for _, n := range nodes {
			require.Equal(t, !n.Occupied, g.HasNode(n.ID))
		}
	}
}
