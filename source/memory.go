// SPDX-License-Identifier: MIT
//
// File: memory.go
// Role: Mutable in-memory station store.
// Policy:
//   - All access is guarded by one RWMutex; Snapshot takes the read lock only.
//   - Snapshot order is ascending ID regardless of insertion order.

package source

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/floorpath/core"
)

// Memory is a Source backed by a map. The zero value is not usable; call
// NewMemory.
type Memory struct {
	mu    sync.RWMutex
	nodes map[core.NodeID]core.Node
}

// NewMemory returns a store seeded with nodes. Later duplicates replace
// earlier ones.
func NewMemory(nodes ...core.Node) *Memory {
	m := &Memory{nodes: make(map[core.NodeID]core.Node, len(nodes))}
	for _, n := range nodes {
		m.nodes[n.ID] = n.Clone()
	}

	return m
}

// Put inserts n or replaces the station with the same ID.
func (m *Memory) Put(n core.Node) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nodes[n.ID] = n.Clone()
}

// Remove deletes the station id. It returns core.ErrNodeNotFound if there
// is none.
func (m *Memory) Remove(id core.NodeID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.nodes[id]; !ok {
		return fmt.Errorf("Remove: %w: %d", core.ErrNodeNotFound, id)
	}
	delete(m.nodes, id)

	return nil
}

// SetOccupied flips the availability flag of station id. Occupied stations
// stay in snapshots; the engine skips them.
func (m *Memory) SetOccupied(id core.NodeID, occupied bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.nodes[id]
	if !ok {
		return fmt.Errorf("SetOccupied: %w: %d", core.ErrNodeNotFound, id)
	}
	n.Occupied = occupied
	m.nodes[id] = n

	return nil
}

// Get returns a copy of station id.
func (m *Memory) Get(id core.NodeID) (core.Node, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, ok := m.nodes[id]
	if !ok {
		return core.Node{}, false
	}

	return n.Clone(), true
}

// Len returns the number of stored stations.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.nodes)
}

// Snapshot implements Source.
func (m *Memory) Snapshot(ctx context.Context) ([]core.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	out := make([]core.Node, 0, len(m.nodes))
	for _, n := range m.nodes {
		out = append(out, n.Clone())
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b core.Node) int { return int(a.ID) - int(b.ID) })

	return out, nil
}
