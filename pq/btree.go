package pq

import (
	"github.com/tidwall/btree"

	"github.com/katalvlaran/floorpath/core"
)

// BTree is a Queue backed by an ordered B-tree. Every entry carries a
// unique sequence number, so equal distances never collide as keys.
type BTree struct {
	tree *btree.BTreeG[item]
	seq  uint64
}

// NewBTree returns an empty BTree. It satisfies Factory; capacity is
// accepted for interface symmetry and ignored.
func NewBTree(capacity int) Queue {
	return &BTree{
		tree: btree.NewBTreeGOptions[item](less, btree.Options{NoLocks: true}),
	}
}

// Push adds id with priority dist. O(log n).
func (b *BTree) Push(id core.NodeID, dist float64) {
	b.tree.Set(item{id: id, dist: dist, seq: b.seq})
	b.seq++
}

// Pop removes the minimum entry. O(log n).
func (b *BTree) Pop() (core.NodeID, float64, bool) {
	it, ok := b.tree.PopMin()
	if !ok {
		return 0, 0, false
	}

	return it.id, it.dist, true
}

// Len returns the number of queued entries.
func (b *BTree) Len() int { return b.tree.Len() }
