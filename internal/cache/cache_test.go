package cache

import (
	"strconv"
	"testing"
)

func TestPutGet(t *testing.T) {
	lru := NewLRU[string, int](4)
	lru.Put("a", 1)
	lru.Put("b", 2)

	if v, ok := lru.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if _, ok := lru.Get("missing"); ok {
		t.Error("Get(missing) reported a hit")
	}
	if lru.Len() != 2 {
		t.Errorf("Len() = %d, want 2", lru.Len())
	}
}

func TestEvictionOrder(t *testing.T) {
	lru := NewLRU[string, int](4)
	lru.Put("a", 1)
	lru.Put("b", 2)
	lru.Put("c", 3)
	lru.Put("d", 4)

	// Touching b protects it; a is now the oldest.
	lru.Get("b")

	key, value, evicted := lru.Put("e", 5)
	if !evicted {
		t.Fatal("Put at capacity did not evict")
	}
	if key != "a" || value != 1 {
		t.Errorf("evicted %q=%d, want a=1", key, value)
	}
	if _, ok := lru.Get("b"); !ok {
		t.Error("recently used entry b was evicted")
	}
}

func TestUntouchedEntriesAgeByInsertion(t *testing.T) {
	lru := NewLRU[int, int](3)
	for i := 0; i < 3; i++ {
		lru.Put(i, i)
	}
	for i := 3; i < 6; i++ {
		key, _, evicted := lru.Put(i, i)
		if !evicted || key != i-3 {
			t.Errorf("inserting %d evicted %d, want %d", i, key, i-3)
		}
	}
}

func TestPutExistingUpdatesValue(t *testing.T) {
	lru := NewLRU[string, int](2)
	lru.Put("a", 1)
	lru.Put("b", 2)

	if _, _, evicted := lru.Put("a", 10); evicted {
		t.Error("updating an existing key evicted an entry")
	}
	if v, _ := lru.Get("a"); v != 10 {
		t.Errorf("Get(a) = %d after update, want 10", v)
	}

	// The update refreshed a, so b is the oldest.
	if key, _, _ := lru.Put("c", 3); key != "b" {
		t.Errorf("evicted %q, want b", key)
	}
}

func TestPeekDoesNotTouch(t *testing.T) {
	lru := NewLRU[string, int](2)
	lru.Put("a", 1)
	lru.Put("b", 2)
	lru.Peek("a")

	if key, _, _ := lru.Put("c", 3); key != "a" {
		t.Errorf("evicted %q, want a (Peek must not refresh)", key)
	}
}

func TestRemoveOldest(t *testing.T) {
	lru := NewLRU[string, int](4)
	if _, _, ok := lru.RemoveOldest(); ok {
		t.Error("RemoveOldest on empty cache returned an entry")
	}

	lru.Put("a", 1)
	lru.Put("b", 2)
	if key, v, ok := lru.RemoveOldest(); !ok || key != "a" || v != 1 {
		t.Errorf("RemoveOldest = %q=%d, %v, want a=1, true", key, v, ok)
	}
	if lru.Len() != 1 {
		t.Errorf("Len() = %d after RemoveOldest, want 1", lru.Len())
	}
}

func TestDelete(t *testing.T) {
	lru := NewLRU[string, int](2)
	lru.Put("a", 1)

	if !lru.Delete("a") {
		t.Error("Delete(a) = false for present key")
	}
	if lru.Delete("a") {
		t.Error("Delete(a) = true for absent key")
	}
	if lru.Len() != 0 {
		t.Errorf("Len() = %d after delete, want 0", lru.Len())
	}
}

func TestClear(t *testing.T) {
	lru := NewLRU[int, int](8)
	for i := 0; i < 8; i++ {
		lru.Put(i, i)
	}
	lru.Clear()

	if lru.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", lru.Len())
	}
	lru.Put(100, 100)
	if v, ok := lru.Get(100); !ok || v != 100 {
		t.Error("cache unusable after Clear")
	}
}

func BenchmarkLRUGet(b *testing.B) {
	lru := NewLRU[string, int](1000)
	for i := 0; i < 100; i++ {
		lru.Put(strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lru.Get("50")
	}
}

func BenchmarkLRUPut(b *testing.B) {
	lru := NewLRU[string, int](1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lru.Put(strconv.Itoa(i%100), i)
	}
}
