package cache

// LRU is a fixed-capacity cache with strict least-recently-used eviction.
// Get and Put on an existing key mark it most recently used. When the
// cache is full, Put evicts the least recently used entry; entries never
// touched after insertion age out in insertion order.
//
// LRU is not thread-safe; callers must handle synchronization.
type LRU[K comparable, V any] struct {
	capacity int
	entries  map[K]*lruEntry[K, V]
	order    *lruList[K]
}

// lruEntry pairs a cached value with its node in the recency list.
type lruEntry[K comparable, V any] struct {
	node  *lruNode[K]
	value V
}

// NewLRU creates an empty cache holding at most capacity entries.
// Capacity must be positive.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[K, V]{
		capacity: capacity,
		entries:  make(map[K]*lruEntry[K, V], capacity),
		order:    newLRUList[K](),
	}
}

// Get retrieves a value and marks it most recently used.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(entry.node)
	return entry.value, true
}

// Peek retrieves a value without touching its recency.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return entry.value, true
}

// Put stores a value and marks it most recently used.
// If the key is new and the cache is full, the least recently used
// entry is removed first and returned with evicted set to true.
func (c *LRU[K, V]) Put(key K, value V) (evictedKey K, evictedValue V, evicted bool) {
	if entry, ok := c.entries[key]; ok {
		entry.value = value
		c.order.MoveToFront(entry.node)
		return
	}

	if len(c.entries) >= c.capacity {
		evictedKey, evictedValue, evicted = c.RemoveOldest()
	}

	c.entries[key] = &lruEntry[K, V]{
		node:  c.order.PushFront(key),
		value: value,
	}
	return
}

// RemoveOldest removes and returns the least recently used entry.
// Returns zero values and false if the cache is empty.
func (c *LRU[K, V]) RemoveOldest() (K, V, bool) {
	key, ok := c.order.RemoveOldest()
	if !ok {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	entry := c.entries[key]
	delete(c.entries, key)
	return key, entry.value, true
}

// Oldest returns the least recently used entry without removing it.
func (c *LRU[K, V]) Oldest() (K, V, bool) {
	key, ok := c.order.Oldest()
	if !ok {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return key, c.entries[key].value, true
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *LRU[K, V]) Delete(key K) bool {
	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.Remove(entry.node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries from the cache.
func (c *LRU[K, V]) Clear() {
	c.entries = make(map[K]*lruEntry[K, V], c.capacity)
	c.order.Clear()
}

// Len returns the number of entries in the cache.
func (c *LRU[K, V]) Len() int {
	return len(c.entries)
}

// Cap returns the cache capacity.
func (c *LRU[K, V]) Cap() int {
	return c.capacity
}
