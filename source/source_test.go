package source_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floorpath/core"
	"github.com/katalvlaran/floorpath/source"
)

const gym = `
stations:
  - id: 3
    name: Bench Press
    level: 2
    x: 4.5
    y: 10
    tags: [chest]
  - id: 1
    name: Squat Rack
    x: 1
    y: 2
    occupied: true
`

func TestDecode(t *testing.T) {
	nodes, err := source.Decode(strings.NewReader(gym))
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	assert.Equal(t, core.Node{ID: 3, Name: "Bench Press", Level: 2, X: 4.5, Y: 10, Tags: []string{"chest"}}, nodes[0])
	assert.Equal(t, source.DefaultLevel, nodes[1].Level, "missing level defaults")
	assert.True(t, nodes[1].Occupied)
}

func TestDecode_Errors(t *testing.T) {
	_, err := source.Decode(strings.NewReader("stations:\n  - id: 1\n  - id: 1\n"))
	assert.ErrorIs(t, err, core.ErrDuplicateNode)

	_, err = source.Decode(strings.NewReader("stations:\n  - id: 1\n    floor: 2\n"))
	assert.Error(t, err, "unknown field")

	nodes, err := source.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestEncodeDecode(t *testing.T) {
	in, err := source.Decode(strings.NewReader(gym))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, source.Encode(&buf, in))

	out, err := source.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gym.yaml")
	require.NoError(t, os.WriteFile(path, []byte(gym), 0o600))

	f := source.NewFile(path)
	nodes, err := f.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, nodes, 2)

	require.NoError(t, os.WriteFile(path, []byte("stations:\n  - id: 9\n    name: Rower\n"), 0o600))
	nodes, err = f.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, core.NodeID(9), nodes[0].ID)

	_, err = source.NewFile(filepath.Join(t.TempDir(), "missing.yaml")).Snapshot(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.Snapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemory(t *testing.T) {
	m := source.NewMemory(
		core.Node{ID: 2, Name: "Cable"},
		core.Node{ID: 1, Name: "Rower", Tags: []string{"cardio"}},
	)
	ctx := context.Background()

	snap, err := m.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap, 2)
	assert.Equal(t, core.NodeID(1), snap[0].ID, "ascending id order")

	snap[0].Tags[0] = "mutated"
	n, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "cardio", n.Tags[0], "snapshots are detached")

	require.NoError(t, m.SetOccupied(2, true))
	n, _ = m.Get(2)
	assert.True(t, n.Occupied)
	require.NoError(t, m.SetOccupied(2, false))
	n, _ = m.Get(2)
	assert.False(t, n.Occupied)

	assert.ErrorIs(t, m.SetOccupied(42, true), core.ErrNodeNotFound)
	assert.ErrorIs(t, m.Remove(42), core.ErrNodeNotFound)

	m.Put(core.Node{ID: 2, Name: "Cable Row"})
	n, _ = m.Get(2)
	assert.Equal(t, "Cable Row", n.Name)

	require.NoError(t, m.Remove(1))
	assert.Equal(t, 1, m.Len())
}

func TestMemory_Concurrent(t *testing.T) {
	gofakeit.Seed(7)
	const n = 50
	m := source.NewMemory()
	for i := 1; i <= n; i++ {
		m.Put(core.Node{ID: core.NodeID(i), Name: gofakeit.Username(), Level: gofakeit.Number(1, 4)})
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for i := 1; i <= n; i++ {
				_ = m.SetOccupied(core.NodeID(i), (i+w)%2 == 0)
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				snap, err := m.Snapshot(context.Background())
				assert.NoError(t, err)
				assert.Len(t, snap, n)
			}
		}()
	}
	wg.Wait()
}

func TestFilter(t *testing.T) {
	nodes := []core.Node{{ID: 1, Name: "Leg Press"}, {ID: 2, Name: "Bench"}, {ID: 3, Name: "leg curl"}}
	got := source.Filter(nodes, "LEG")
	require.Len(t, got, 2)
	assert.Equal(t, core.NodeID(1), got[0].ID)
	assert.Equal(t, core.NodeID(3), got[1].ID)
	assert.Len(t, source.Filter(nodes, ""), 3)
}

func TestStatic(t *testing.T) {
	src := source.Static(core.Node{ID: 1, Name: "A", Tags: []string{"x"}})
	a, err := src.Snapshot(context.Background())
	require.NoError(t, err)
	a[0].Tags[0] = "y"
	b, _ := src.Snapshot(context.Background())
	assert.Equal(t, "x", b[0].Tags[0])
}
