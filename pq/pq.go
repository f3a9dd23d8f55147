// Package pq provides the min-priority queues used by the shortest-path
// search. The search depends only on the Queue interface, so the extraction
// cost is a swappable implementation detail:
//
//   - NewHeap:  binary heap (container/heap), lazy decrease-key.
//   - NewBTree: ordered B-tree (github.com/tidwall/btree), PopMin extraction.
//
// Both pop in ascending distance and break ties by insertion order, so a
// search produces the same path whichever queue it runs on.
package pq

import "github.com/katalvlaran/floorpath/core"

// Queue is a min-priority queue of node IDs keyed by tentative distance.
//
// Push never replaces an existing entry for the same ID; callers use the
// "lazy decrease-key" pattern and skip stale entries on Pop.
type Queue interface {
	// Push adds id with priority dist.
	Push(id core.NodeID, dist float64)

	// Pop removes and returns the entry with the smallest distance.
	// ok is false when the queue is empty.
	Pop() (id core.NodeID, dist float64, ok bool)

	// Len returns the number of queued entries, stale ones included.
	Len() int
}

// Factory creates an empty Queue sized for roughly capacity entries.
type Factory func(capacity int) Queue

// item is a queued (id, dist) pair. seq records insertion order for
// deterministic tie-breaking.
type item struct {
	id   core.NodeID
	dist float64
	seq  uint64
}

// less orders items by distance, then by insertion sequence.
func less(a, b item) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.seq < b.seq
}
