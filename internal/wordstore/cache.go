package wordstore

import "sync"

// boundedCache is the per-store word->count memoization cache: bounded to a
// configurable size, with eviction done as a
// single bulk-drop of the oldest half rather than strict LRU bookkeeping.
// Misses are idempotent (re-reading the mmap is pure), so there is no
// correctness requirement beyond "don't let it grow forever" (this is
// deliberately simpler than a real LRU).
type boundedCache struct {
	mu       sync.Mutex
	limit    int
	values   map[string]uint64
	order    []string // insertion order, used to find the oldest half
}

func newBoundedCache(limit int) *boundedCache {
	if limit <= 0 {
		limit = 1000
	}
	return &boundedCache{
		limit:  limit,
		values: make(map[string]uint64, limit),
		order:  make([]string, 0, limit),
	}
}

func (c *boundedCache) get(term string) (uint64, bool) {
	c.mu.Lock()
	v, ok := c.values[term]
	c.mu.Unlock()
	return v, ok
}

func (c *boundedCache) put(term string, count uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.values[term]; exists {
		c.values[term] = count
		return
	}

	if len(c.values) >= c.limit {
		c.evictOldestHalf()
	}

	c.values[term] = count
	c.order = append(c.order, term)
}

// evictOldestHalf drops the oldest half of entries in a single step. Must be
// called with mu held.
func (c *boundedCache) evictOldestHalf() {
	drop := len(c.order) / 2
	if drop == 0 {
		drop = 1
	}
	for _, term := range c.order[:drop] {
		delete(c.values, term)
	}
	remaining := make([]string, 0, len(c.order)-drop)
	remaining = append(remaining, c.order[drop:]...)
	c.order = remaining
}

func (c *boundedCache) clear() {
	c.mu.Lock()
	c.values = make(map[string]uint64, c.limit)
	c.order = c.order[:0]
	c.mu.Unlock()
}
