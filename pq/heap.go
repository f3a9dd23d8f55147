package pq

import (
	"container/heap"

	"github.com/katalvlaran/floorpath/core"
)

// Heap is a binary min-heap Queue.
type Heap struct {
	items itemHeap
	seq   uint64
}

// NewHeap returns an empty Heap. It satisfies Factory.
func NewHeap(capacity int) Queue {
	if capacity < 0 {
		capacity = 0
	}
	return &Heap{items: make(itemHeap, 0, capacity)}
}

// Push adds id with priority dist. O(log n).
func (h *Heap) Push(id core.NodeID, dist float64) {
	heap.Push(&h.items, item{id: id, dist: dist, seq: h.seq})
	h.seq++
}

// Pop removes the minimum entry. O(log n).
func (h *Heap) Pop() (core.NodeID, float64, bool) {
	if h.items.Len() == 0 {
		return 0, 0, false
	}
	it := heap.Pop(&h.items).(item)

	return it.id, it.dist, true
}

// Len returns the number of queued entries.
func (h *Heap) Len() int { return h.items.Len() }

// itemHeap implements heap.Interface ordered by less.
type itemHeap []item

// Len returns the number of items in the heap.
func (pq itemHeap) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq itemHeap) Less(i, j int) bool { return less(pq[i], pq[j]) }

// Swap swaps two elements in the heap.
func (pq itemHeap) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type item.
func (pq *itemHeap) Push(x interface{}) { *pq = append(*pq, x.(item)) }

// Pop removes and returns the last element.
// Called by heap.Pop after it moved the minimum to the end.
func (pq *itemHeap) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
