// Package atlas caches rasterized glyph tiles in a fixed-size texture grid.
//
// The cache is keyed by the exact parameter encoding plus the rune, so any
// change to a single axis produces a distinct tile. Capacity is fixed at
// construction; when full, the least recently used tile is evicted and its
// grid slot reused. Each slot carries a generation counter that advances on
// every eviction, letting GPU uploads detect stale tile references without
// holding the cache lock.
package atlas

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gogpu/metafont/glyph"
	"github.com/gogpu/metafont/internal/cache"
	"github.com/gogpu/metafont/param"
)

// Config holds tile cache configuration.
type Config struct {
	// TextureSize is the backing texture size in pixels (width = height).
	// Must be a positive multiple of TileSize. Default: 512
	TextureSize int

	// TileSize is the size of each tile cell in pixels.
	// Default: 32
	TileSize int

	// Resolution is the rasterized glyph size in pixels.
	// Must not exceed TileSize. Default: 32
	Resolution int
}

// DefaultConfig returns the default configuration: a 512x512 texture of
// 32x32 tiles, giving 256 slots.
func DefaultConfig() Config {
	return Config{
		TextureSize: 512,
		TileSize:    32,
		Resolution:  32,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.TextureSize < 1 {
		return &ConfigError{Field: "TextureSize", Reason: "must be positive"}
	}
	if c.TileSize < 1 {
		return &ConfigError{Field: "TileSize", Reason: "must be positive"}
	}
	if c.TileSize > c.TextureSize {
		return &ConfigError{Field: "TileSize", Reason: "must be at most TextureSize"}
	}
	if c.TextureSize%c.TileSize != 0 {
		return &ConfigError{Field: "TextureSize", Reason: "must be a multiple of TileSize"}
	}
	if c.Resolution < 1 {
		return &ConfigError{Field: "Resolution", Reason: "must be positive"}
	}
	if c.Resolution > c.TileSize {
		return &ConfigError{Field: "Resolution", Reason: "must be at most TileSize"}
	}
	return nil
}

// Capacity returns the number of tile slots the configuration provides.
func (c *Config) Capacity() int {
	cols := c.TextureSize / c.TileSize
	return cols * cols
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}

// Key uniquely identifies a cached tile.
type Key struct {
	// Params is the exact wire encoding of the parameter set.
	Params [param.EncodedSize]byte

	// Rune is the cached code point.
	Rune rune

	// Resolution is the rasterized size in pixels.
	Resolution uint16
}

// Tile is a cached glyph raster with its location in the texture grid.
// A Tile remains valid to read after eviction; Generation lets holders
// detect that its slot has been reassigned.
type Tile struct {
	Key  Key
	SDF  *glyph.SDF
	Slot int

	// X, Y are the tile origin in texture pixels.
	X, Y int

	// U0, V0, U1, V1 are texture coordinates of the tile cell.
	U0, V0, U1, V1 float32

	// Generation is the slot generation at insertion time.
	Generation uint64
}

// BuildFunc produces the raster for a missing key.
type BuildFunc func(Key) (*glyph.SDF, error)

// Stats contains cache statistics.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Len       int
	Capacity  int
}

// inflight tracks a tile build in progress so concurrent lookups of the
// same key share one rasterization.
type inflight struct {
	done chan struct{}
	tile *Tile
	err  error
}

// Cache is a fixed-capacity tile cache with strict LRU eviction.
// Cache is safe for concurrent use.
type Cache struct {
	config Config
	cols   int

	mu       sync.Mutex
	entries  *cache.LRU[Key, *Tile]
	free     []int
	gens     []uint64
	building map[Key]*inflight

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates a tile cache. Returns a ConfigError if the configuration
// is invalid.
func New(config Config) (*Cache, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	capacity := config.Capacity()
	free := make([]int, capacity)
	for i := range free {
		// Stack order: slot 0 is handed out first.
		free[i] = capacity - 1 - i
	}

	return &Cache{
		config:   config,
		cols:     config.TextureSize / config.TileSize,
		entries:  cache.NewLRU[Key, *Tile](capacity),
		free:     free,
		gens:     make([]uint64, capacity),
		building: make(map[Key]*inflight),
	}, nil
}

// Key builds the cache key for a parameter set and rune at the cache's
// configured resolution.
func (c *Cache) Key(p param.ParamSet, r rune) Key {
	return Key{
		Params:     p.Encode(),
		Rune:       r,
		Resolution: uint16(c.config.Resolution),
	}
}

// LookupOrInsert returns the tile for key, building it with build on a
// miss. Concurrent lookups of the same missing key block until the one
// in-flight build completes and then share its result; build runs at
// most once per miss. The context is consulted only while waiting on
// another goroutine's build.
func (c *Cache) LookupOrInsert(ctx context.Context, key Key, build BuildFunc) (*Tile, error) {
	c.mu.Lock()
	if tile, ok := c.entries.Get(key); ok {
		c.mu.Unlock()
		c.hits.Add(1)
		return tile, nil
	}
	if fl, ok := c.building[key]; ok {
		c.mu.Unlock()
		select {
		case <-fl.done:
			if fl.err != nil {
				return nil, fl.err
			}
			c.hits.Add(1)
			return fl.tile, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	fl := &inflight{done: make(chan struct{})}
	c.building[key] = fl
	c.mu.Unlock()

	c.misses.Add(1)
	sdf, err := build(key)

	c.mu.Lock()
	delete(c.building, key)
	if err != nil {
		c.mu.Unlock()
		fl.err = err
		close(fl.done)
		return nil, err
	}
	tile := c.insertLocked(key, sdf)
	c.mu.Unlock()

	fl.tile = tile
	close(fl.done)
	return tile, nil
}

// Lookup returns the tile for key if cached, without building.
// A hit refreshes the tile's recency.
func (c *Cache) Lookup(key Key) (*Tile, bool) {
	c.mu.Lock()
	tile, ok := c.entries.Get(key)
	c.mu.Unlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return tile, ok
}

// insertLocked assigns a slot (evicting if necessary) and stores the tile.
// Caller must hold c.mu.
func (c *Cache) insertLocked(key Key, sdf *glyph.SDF) *Tile {
	var slot int
	if n := len(c.free); n > 0 {
		slot = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		_, old, _ := c.entries.RemoveOldest()
		slot = old.Slot
		c.gens[slot]++
		c.evictions.Add(1)
	}

	tileSize := c.config.TileSize
	textureSize := float32(c.config.TextureSize)
	x := (slot % c.cols) * tileSize
	y := (slot / c.cols) * tileSize

	tile := &Tile{
		Key:        key,
		SDF:        sdf,
		Slot:       slot,
		X:          x,
		Y:          y,
		U0:         float32(x) / textureSize,
		V0:         float32(y) / textureSize,
		U1:         float32(x+tileSize) / textureSize,
		V1:         float32(y+tileSize) / textureSize,
		Generation: c.gens[slot],
	}
	c.entries.Put(key, tile)
	return tile
}

// Evict removes a tile and releases its slot, advancing the slot
// generation. Returns true if the key was cached.
func (c *Cache) Evict(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	tile, ok := c.entries.Peek(key)
	if !ok {
		return false
	}
	c.entries.Delete(key)
	c.free = append(c.free, tile.Slot)
	c.gens[tile.Slot]++
	c.evictions.Add(1)
	return true
}

// Clear removes all tiles and advances every slot generation, so
// previously issued tiles all read as stale.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Clear()
	capacity := c.config.Capacity()
	c.free = c.free[:0]
	for i := 0; i < capacity; i++ {
		c.free = append(c.free, capacity-1-i)
		c.gens[i]++
	}
}

// Generation returns the current generation of a slot.
// Returns 0 for out-of-range slots.
func (c *Cache) Generation(slot int) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if slot < 0 || slot >= len(c.gens) {
		return 0
	}
	return c.gens[slot]
}

// Stale reports whether a tile's slot has been reassigned since the
// tile was issued.
func (c *Cache) Stale(tile *Tile) bool {
	if tile == nil {
		return true
	}
	return c.Generation(tile.Slot) != tile.Generation
}

// Len returns the number of cached tiles.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Capacity returns the number of tile slots.
func (c *Cache) Capacity() int {
	return c.config.Capacity()
}

// Config returns the cache configuration.
func (c *Cache) Config() Config {
	return c.config
}

// Stats returns cache statistics.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	n := c.entries.Len()
	c.mu.Unlock()

	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Len:       n,
		Capacity:  c.config.Capacity(),
	}
}
