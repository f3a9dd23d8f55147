package pq_test

import (
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floorpath/core"
	"github.com/katalvlaran/floorpath/pq"
)

var factories = map[string]pq.Factory{
	"heap":  pq.NewHeap,
	"btree": pq.NewBTree,
}

func TestQueue_Order(t *testing.T) {
	for name, newQueue := range factories {
		t.Run(name, func(t *testing.T) {
			q := newQueue(4)
			_, _, ok := q.Pop()
			require.False(t, ok, "empty queue must report !ok")

			q.Push(1, 5)
			q.Push(2, 1.5)
			q.Push(3, 3)
			q.Push(2, 0.5) // lazy decrease-key duplicate
			require.Equal(t, 4, q.Len())

			var ids []core.NodeID
			var dists []float64
			for q.Len() > 0 {
				id, d, ok := q.Pop()
				require.True(t, ok)
				ids = append(ids, id)
				dists = append(dists, d)
			}
			assert.Equal(t, []core.NodeID{2, 2, 3, 1}, ids)
			assert.Equal(t, []float64{0.5, 1.5, 3, 5}, dists)
		})
	}
}

func TestQueue_TiesByInsertion(t *testing.T) {
	for name, newQueue := range factories {
		t.Run(name, func(t *testing.T) {
			q := newQueue(0)
			for _, id := range []core.NodeID{9, 4, 7, 1} {
				q.Push(id, 2)
			}
			var ids []core.NodeID
			for q.Len() > 0 {
				id, _, _ := q.Pop()
				ids = append(ids, id)
			}
			assert.Equal(t, []core.NodeID{9, 4, 7, 1}, ids)
		})
	}
}

// TestQueue_Equivalence feeds the same random workload to both queues.
func TestQueue_Equivalence(t *testing.T) {
	gofakeit.Seed(3)
	h, b := pq.NewHeap(64), pq.NewBTree(64)
	for i := 0; i < 2000; i++ {
		if gofakeit.Number(0, 2) > 0 || h.Len() == 0 {
			id := core.NodeID(gofakeit.Number(0, 50))
			d := float64(gofakeit.Number(0, 30))
			h.Push(id, d)
			b.Push(id, d)
			continue
		}
		hid, hd, hok := h.Pop()
		bid, bd, bok := b.Pop()
		require.Equal(t, hok, bok)
		require.Equal(t, hid, bid)
		require.Equal(t, hd, bd)
	}
	require.Equal(t, h.Len(), b.Len())
}

func TestNewHeap_NegativeCapacity(t *testing.T) {
	q := pq.NewHeap(-5)
	q.Push(1, 1)
	assert.Equal(t, 1, q.Len())
}
