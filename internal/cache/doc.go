// Package cache provides a generic strict-LRU caching primitive.
//
// LRU[K, V] is a fixed-capacity cache with exact least-recently-used
// eviction. Recency order is maintained by a doubly-linked list, so
// Get, Put, Delete, and eviction are all O(1).
//
//	lru := cache.NewLRU[string, int](64)
//	lru.Put("key", 42)
//	value, ok := lru.Get("key")
//
// # Thread Safety
//
// LRU is not safe for concurrent use. Callers that share a cache
// across goroutines must wrap it with their own lock; this keeps the
// lock scope under the caller's control when eviction has side effects.
package cache
