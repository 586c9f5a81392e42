package cache

import (
	"sync"
	"time"

	"docsearch/internal/domain"
)

// QueryCache is an LRU of query results. Invalidate must be called whenever
// the index changes; entries from an older index generation are dropped on
// access.
type QueryCache struct {
	mu       sync.RWMutex
	entries  map[string]*cacheEntry
	order    []string
	maxSize  int
	ttl      time.Duration
	indexGen uint64
	hits     uint64
	misses   uint64
}

type cacheEntry struct {
	result    *domain.Word
	timestamp time.Time
	indexGen  uint64
}

func NewQueryCache(maxSize int, ttl time.Duration) *QueryCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &QueryCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// Get returns a copy of the cached result for query.
func (c *QueryCache) Get(query string) (*domain.Word, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[query]
	if !exists {
		c.misses++
		return nil, false
	}

	if time.Since(entry.timestamp) > c.ttl || entry.indexGen != c.indexGen {
		delete(c.entries, query)
		c.removeFromOrder(query)
		c.misses++
		return nil, false
	}

	c.moveToEnd(query)
	c.hits++
	return entry.result.Clone(), true
}

// Put stores a copy of result.
func (c *QueryCache) Put(query string, result *domain.Word) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &cacheEntry{
		result:    result.Clone(),
		timestamp: time.Now(),
		indexGen:  c.indexGen,
	}

	if _, exists := c.entries[query]; exists {
		c.entries[query] = entry
		c.moveToEnd(query)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[query] = entry
	c.order = append(c.order, query)
}

func (c *QueryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.indexGen++
}

func (c *QueryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counts.
func (c *QueryCache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func (c *QueryCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *QueryCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *QueryCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
