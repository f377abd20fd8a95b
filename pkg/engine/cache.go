package engine

import (
	"sync"

	"github.com/yourusername/bgcore/internal/boardkey"
)

// searchCacheEntry holds one memoized evaluation, keyed by board position,
// dice, and remaining search depth.
type searchCacheEntry struct {
	valid   bool
	key     boardkey.Key
	context uint32
	value   float64
}

// searchCacheNode holds a primary and secondary entry for a two-way
// associative cache slot: a colliding insert evicts the primary into the
// secondary slot instead of overwriting it outright, so a recently-useful
// entry survives one collision before being lost.
type searchCacheNode struct {
	primary   searchCacheEntry
	secondary searchCacheEntry
}

// searchCache memoizes alpha-beta node evaluations for the search of a
// single root move. BestMoveAlphaBeta creates one fresh for each root move
// it searches and discards it when that search ends: positions reachable
// from one root are rarely revisited from a different root, so holding entries across calls
// buys little and risks serving a stale value computed at a different
// search depth.
type searchCache struct {
	mu       sync.Mutex
	entries  []searchCacheNode
	hashMask uint64

	lookups uint64
	hits    uint64
}

// newSearchCache creates a cache sized to the nearest power of 2 at or
// above size.
func newSearchCache(size uint32) *searchCache {
	p := uint32(1)
	for p < size {
		p <<= 1
	}
	return &searchCache{
		entries:  make([]searchCacheNode, p/2),
		hashMask: uint64(p/2) - 1,
	}
}

// searchContext packs the dice roll and remaining search depth into the
// extra context folded into a cache key alongside the board position: two
// nodes with an identical board but a different roll or a different
// remaining depth must never collide.
func searchContext(dice Dice, depth int) uint32 {
	ctx := uint32(dice.d1)<<24 | uint32(dice.d2)<<16
	ctx |= uint32(dice.doubleUses) << 12
	if dice.used1 {
		ctx |= 1 << 9
	}
	if dice.used2 {
		ctx |= 1 << 8
	}
	ctx |= uint32(depth) & 0xFF
	return ctx
}

// lookup returns the cached value and true if board+dice+context was
// previously stored; otherwise it returns the slot index to pass to store.
func (c *searchCache) lookup(key boardkey.Key, context uint32) (value float64, slot uint64, hit bool) {
	slot = boardkey.Hash(key, context) & c.hashMask

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookups++

	node := &c.entries[slot]
	if node.primary.valid && node.primary.key == key && node.primary.context == context {
		c.hits++
		return node.primary.value, slot, true
	}
	if node.secondary.valid && node.secondary.key == key && node.secondary.context == context {
		c.hits++
		return node.secondary.value, slot, true
	}
	return 0, slot, false
}

// store records a value at the slot returned by a prior lookup miss,
// demoting whatever previously occupied the primary slot to secondary.
func (c *searchCache) store(slot uint64, key boardkey.Key, context uint32, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node := &c.entries[slot]
	node.secondary = node.primary
	node.primary = searchCacheEntry{valid: true, key: key, context: context, value: value}
}

// hitRate returns the fraction of lookups that hit, for diagnostics.
func (c *searchCache) hitRate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lookups == 0 {
		return 0
	}
	return float64(c.hits) / float64(c.lookups)
}
