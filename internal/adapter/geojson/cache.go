package geojson

import (
	"context"
	"sync"
)

// CachedSource wraps a NameSource with an in-memory LRU cache keyed by URL.
// Geometry files change rarely, so a fetched name set is reused for the life
// of the process; the tiny LRU bound only matters when mapdiff probes several
// candidate resources in one run.
type CachedSource struct {
	inner NameSource
	cache *lruCache
}

// NewCachedSource creates a cache decorator around a name source.
func NewCachedSource(inner NameSource, maxEntries int) *CachedSource {
	return &CachedSource{
		inner: inner,
		cache: newLRUCache(maxEntries),
	}
}

func (c *CachedSource) RegionNames(ctx context.Context, url string) ([]string, error) {
	if names, ok := c.cache.get(url); ok {
		return names, nil
	}
	names, err := c.inner.RegionNames(ctx, url)
	if err != nil {
		return nil, err
	}
	// Only cache non-empty results so a transiently empty response can be retried.
	if len(names) > 0 {
		c.cache.put(url, names)
	}
	return names, nil
}

// lruCache is a small thread-safe LRU for geometry name sets.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value []string
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
