package hashing

import (
	"sync"
)

type nodeKey struct {
	key   uint64
	depth int
}

// NodeCache is a mutex protected map from (position key, depth) to a perft
// leaf count, shared between perft workers.
type NodeCache struct {
	entries     map[nodeKey]uint64
	maxCapacity int
	hits        uint64
	mu          sync.RWMutex
}

// NewNodeCache creates a new cache.
// maxCapacity of 0 means unlimited capacity.
func NewNodeCache(maxCapacity int) *NodeCache {
	return &NodeCache{
		entries:     make(map[nodeKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the cached count for key at depth.
func (c *NodeCache) Get(key uint64, depth int) (uint64, bool) {
	c.mu.RLock()
	nodes, ok := c.entries[nodeKey{key, depth}]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
	}
	return nodes, ok
}

// Put stores a count. Once the cache is full new entries are dropped.
func (c *NodeCache) Put(key uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := nodeKey{key, depth}
	if _, ok := c.entries[k]; !ok && c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity {
		return
	}
	c.entries[k] = nodes
}

// Len returns the number of cached entries.
func (c *NodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Hits returns how many lookups were answered from the cache.
func (c *NodeCache) Hits() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *NodeCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}
