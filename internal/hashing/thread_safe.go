package hashing

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// nodeKey identifies a perft subtree: a position and the depth below it.
type nodeKey struct {
	hash     chess.HashCode
	weakHash chess.HashCode
	depth    int
}

// NodeCache memoizes perft node counts by position and depth.
// It is safe for concurrent use by multiple goroutines.
type NodeCache struct {
	mu          sync.RWMutex
	counts      map[nodeKey]uint64
	maxCapacity int
	hits        uint64
}

// NewNodeCache creates a node cache.
// maxCapacity of 0 means unlimited capacity.
func NewNodeCache(maxCapacity int) *NodeCache {
	return &NodeCache{
		counts:      make(map[nodeKey]uint64),
		maxCapacity: maxCapacity,
	}
}

func keyOf(board *chess.Board, depth int) nodeKey {
	return nodeKey{hash: GenerateZobristHash(board), weakHash: WeakHash(board), depth: depth}
}

// Lookup returns the cached count for board at depth.
func (c *NodeCache) Lookup(board *chess.Board, depth int) (uint64, bool) {
	key := keyOf(board, depth)
	c.mu.RLock()
	n, ok := c.counts[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
	}
	return n, ok
}

// Store records the count for board at depth unless the cache is full.
func (c *NodeCache) Store(board *chess.Board, depth int, nodes uint64) {
	key := keyOf(board, depth)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isFullLocked() {
		return
	}
	c.counts[key] = nodes
}

// Len returns the number of cached entries.
func (c *NodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.counts)
}

// Hits returns how many lookups found an entry.
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
	return c.isFullLocked()
}

func (c *NodeCache) isFullLocked() bool {
	return c.maxCapacity > 0 && len(c.counts) >= c.maxCapacity
}
