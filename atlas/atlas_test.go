package atlas

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gogpu/metafont/glyph"
	"github.com/gogpu/metafont/param"
)

// testCache returns a cache with the given number of slots in a single row.
func testCache(t *testing.T, slots int) *Cache {
	t.Helper()
	c, err := New(Config{TextureSize: slots * 32, TileSize: 32, Resolution: 32})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Capacity() < slots {
		t.Fatalf("Capacity() = %d, want at least %d", c.Capacity(), slots)
	}
	return c
}

func buildEmpty(Key) (*glyph.SDF, error) {
	return glyph.Empty(), nil
}

func keyFor(c *Cache, r rune) Key {
	return c.Key(param.SansRegular(), r)
}

func TestConfigValidate(t *testing.T) {
	tests := map[string]struct {
		config Config
		field  string
	}{
		"zero texture":         {Config{TextureSize: 0, TileSize: 32, Resolution: 32}, "TextureSize"},
		"zero tile":            {Config{TextureSize: 512, TileSize: 0, Resolution: 32}, "TileSize"},
		"tile exceeds texture": {Config{TextureSize: 16, TileSize: 32, Resolution: 16}, "TileSize"},
		"texture not multiple": {Config{TextureSize: 100, TileSize: 32, Resolution: 32}, "TextureSize"},
		"zero resolution":      {Config{TextureSize: 512, TileSize: 32, Resolution: 0}, "Resolution"},
		"resolution over tile": {Config{TextureSize: 512, TileSize: 32, Resolution: 48}, "Resolution"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(tt.config)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("New(%+v) error = %v, want ConfigError", tt.config, err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}

	if err := (&Config{TextureSize: 512, TileSize: 32, Resolution: 32}).Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestLookupOrInsertCachesTiles(t *testing.T) {
	c := testCache(t, 4)
	ctx := context.Background()
	key := keyFor(c, 'A')

	var builds atomic.Int32
	build := func(Key) (*glyph.SDF, error) {
		builds.Add(1)
		return glyph.Empty(), nil
	}

	first, err := c.LookupOrInsert(ctx, key, build)
	if err != nil {
		t.Fatalf("LookupOrInsert: %v", err)
	}
	second, err := c.LookupOrInsert(ctx, key, build)
	if err != nil {
		t.Fatalf("LookupOrInsert: %v", err)
	}
	if first != second {
		t.Error("repeat lookup returned a different tile")
	}
	if n := builds.Load(); n != 1 {
		t.Errorf("build ran %d times, want 1", n)
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("stats = %d hits, %d misses, want 1, 1", stats.Hits, stats.Misses)
	}
}

func TestLookupCountsMisses(t *testing.T) {
	c := testCache(t, 4)
	ctx := context.Background()

	if _, ok := c.Lookup(keyFor(c, 'A')); ok {
		t.Fatal("Lookup hit on an empty cache")
	}
	if stats := c.Stats(); stats.Misses != 1 {
		t.Errorf("misses = %d after failed Lookup, want 1", stats.Misses)
	}

	if _, err := c.LookupOrInsert(ctx, keyFor(c, 'A'), buildEmpty); err != nil {
		t.Fatalf("LookupOrInsert: %v", err)
	}
	if _, ok := c.Lookup(keyFor(c, 'A')); !ok {
		t.Fatal("Lookup missed a cached tile")
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 2 {
		t.Errorf("stats = %d hits, %d misses, want 1, 2", stats.Hits, stats.Misses)
	}
}

func TestLRUScenario(t *testing.T) {
	c := testCache(t, 4)
	ctx := context.Background()

	// Fill capacity with A, B, C, D.
	for _, r := range "ABCD" {
		if _, err := c.LookupOrInsert(ctx, keyFor(c, r), buildEmpty); err != nil {
			t.Fatalf("insert %q: %v", r, err)
		}
	}

	// Touch B, then insert E. A is least recently used and must go.
	if _, ok := c.Lookup(keyFor(c, 'B')); !ok {
		t.Fatal("B missing before eviction")
	}
	if _, err := c.LookupOrInsert(ctx, keyFor(c, 'E'), buildEmpty); err != nil {
		t.Fatalf("insert E: %v", err)
	}

	if _, ok := c.Lookup(keyFor(c, 'A')); ok {
		t.Error("A survived eviction")
	}
	for _, r := range "BCDE" {
		if _, ok := c.Lookup(keyFor(c, r)); !ok {
			t.Errorf("%q evicted, want retained", r)
		}
	}
}

func TestEvictionAdvancesGeneration(t *testing.T) {
	c := testCache(t, 1)
	ctx := context.Background()

	first, err := c.LookupOrInsert(ctx, keyFor(c, 'A'), buildEmpty)
	if err != nil {
		t.Fatalf("insert A: %v", err)
	}
	if c.Stale(first) {
		t.Error("fresh tile reads stale")
	}

	second, err := c.LookupOrInsert(ctx, keyFor(c, 'B'), buildEmpty)
	if err != nil {
		t.Fatalf("insert B: %v", err)
	}
	if second.Slot != first.Slot {
		t.Fatalf("B got slot %d, want reused slot %d", second.Slot, first.Slot)
	}
	if second.Generation != first.Generation+1 {
		t.Errorf("generation = %d, want %d", second.Generation, first.Generation+1)
	}
	if !c.Stale(first) {
		t.Error("evicted tile not stale")
	}
	if c.Stale(second) {
		t.Error("current tile reads stale")
	}
}

func TestExplicitEvict(t *testing.T) {
	c := testCache(t, 4)
	ctx := context.Background()
	key := keyFor(c, 'A')

	tile, err := c.LookupOrInsert(ctx, key, buildEmpty)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if !c.Evict(key) {
		t.Fatal("Evict = false for cached key")
	}
	if c.Evict(key) {
		t.Error("Evict = true for absent key")
	}
	if !c.Stale(tile) {
		t.Error("evicted tile not stale")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after evict, want 0", c.Len())
	}

	// The freed slot is reused by the next insert.
	next, err := c.LookupOrInsert(ctx, keyFor(c, 'B'), buildEmpty)
	if err != nil {
		t.Fatalf("insert B: %v", err)
	}
	if next.Slot != tile.Slot {
		t.Errorf("next insert got slot %d, want freed slot %d", next.Slot, tile.Slot)
	}
}

func TestClearInvalidatesAllTiles(t *testing.T) {
	c := testCache(t, 4)
	ctx := context.Background()

	tiles := make([]*Tile, 0, 3)
	for _, r := range "ABC" {
		tile, err := c.LookupOrInsert(ctx, keyFor(c, r), buildEmpty)
		if err != nil {
			t.Fatalf("insert %q: %v", r, err)
		}
		tiles = append(tiles, tile)
	}

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", c.Len())
	}
	for i, tile := range tiles {
		if !c.Stale(tile) {
			t.Errorf("tile %d not stale after Clear", i)
		}
	}
}

func TestParamChangeMissesCache(t *testing.T) {
	c := testCache(t, 4)
	ctx := context.Background()

	regular := c.Key(param.SansRegular(), 'A')
	if _, err := c.LookupOrInsert(ctx, regular, buildEmpty); err != nil {
		t.Fatalf("insert: %v", err)
	}

	bumped := param.SansRegular()
	bumped.Weight += 0.01
	if _, ok := c.Lookup(c.Key(bumped, 'A')); ok {
		t.Error("nudged weight hit the regular tile")
	}
	if _, ok := c.Lookup(regular); !ok {
		t.Error("original key missing")
	}
}

func TestConcurrentLookupBuildsOnce(t *testing.T) {
	c := testCache(t, 4)
	ctx := context.Background()
	key := keyFor(c, 'A')

	var builds atomic.Int32
	gate := make(chan struct{})
	build := func(Key) (*glyph.SDF, error) {
		builds.Add(1)
		<-gate
		return glyph.Empty(), nil
	}

	const workers = 8
	var wg sync.WaitGroup
	tiles := make([]*Tile, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tiles[i], errs[i] = c.LookupOrInsert(ctx, key, build)
		}(i)
	}

	// Let every worker reach the lookup before the build completes.
	close(gate)
	wg.Wait()

	if n := builds.Load(); n != 1 {
		t.Errorf("build ran %d times, want 1", n)
	}
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d: %v", i, errs[i])
		}
		if tiles[i] != tiles[0] {
			t.Errorf("worker %d got a different tile", i)
		}
	}
}

func TestBuildErrorNotCached(t *testing.T) {
	c := testCache(t, 4)
	ctx := context.Background()
	key := keyFor(c, 'A')

	boom := errors.New("raster failed")
	if _, err := c.LookupOrInsert(ctx, key, func(Key) (*glyph.SDF, error) {
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after failed build, want 0", c.Len())
	}

	// A later lookup retries the build.
	if _, err := c.LookupOrInsert(ctx, key, buildEmpty); err != nil {
		t.Fatalf("retry: %v", err)
	}
}

func TestWaitHonorsContext(t *testing.T) {
	c := testCache(t, 4)
	key := keyFor(c, 'A')

	started := make(chan struct{})
	gate := make(chan struct{})
	go func() {
		_, _ = c.LookupOrInsert(context.Background(), key, func(Key) (*glyph.SDF, error) {
			close(started)
			<-gate
			return glyph.Empty(), nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.LookupOrInsert(ctx, key, buildEmpty)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	close(gate)
}

func TestTileGeometry(t *testing.T) {
	c, err := New(Config{TextureSize: 128, TileSize: 32, Resolution: 32})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	// Slots are handed out in row-major order from slot 0.
	for i, r := range "ABCDE" {
		tile, err := c.LookupOrInsert(ctx, keyFor(c, r), buildEmpty)
		if err != nil {
			t.Fatalf("insert %q: %v", r, err)
		}
		if tile.Slot != i {
			t.Errorf("%q slot = %d, want %d", r, tile.Slot, i)
		}
		wantX := (i % 4) * 32
		wantY := (i / 4) * 32
		if tile.X != wantX || tile.Y != wantY {
			t.Errorf("%q origin = (%d, %d), want (%d, %d)", r, tile.X, tile.Y, wantX, wantY)
		}
		if got := tile.U0 * 128; got != float32(wantX) {
			t.Errorf("%q U0*128 = %v, want %d", r, got, wantX)
		}
		if got := tile.V1 * 128; got != float32(wantY+32) {
			t.Errorf("%q V1*128 = %v, want %d", r, got, wantY+32)
		}
	}
}
