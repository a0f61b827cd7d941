package gpu

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/metafont/atlas"
	"github.com/gogpu/metafont/glyph"
	"github.com/gogpu/metafont/param"
)

func testCache(t *testing.T, slots int) *atlas.Cache {
	t.Helper()
	c, err := atlas.New(atlas.Config{TextureSize: slots * 32, TileSize: 32, Resolution: 32})
	if err != nil {
		t.Fatalf("atlas.New: %v", err)
	}
	return c
}

func buildEmpty(atlas.Key) (*glyph.SDF, error) {
	return glyph.Empty(), nil
}

func insertTile(t *testing.T, c *atlas.Cache, r rune) *atlas.Tile {
	t.Helper()
	tile, err := c.LookupOrInsert(context.Background(), c.Key(param.SansRegular(), r), buildEmpty)
	if err != nil {
		t.Fatalf("LookupOrInsert(%q): %v", r, err)
	}
	return tile
}

func TestNewAtlasTexture(t *testing.T) {
	cache := testCache(t, 4)
	tex, err := NewAtlasTexture(NullDeviceHandle{}, cache, "glyph_atlas")
	if err != nil {
		t.Fatalf("NewAtlasTexture: %v", err)
	}
	defer tex.Close()

	if got := tex.Size(); got != 128 {
		t.Errorf("Size() = %d, want 128", got)
	}
	if tex.Label() != "glyph_atlas" {
		t.Errorf("Label() = %q", tex.Label())
	}
	if tex.IsReleased() {
		t.Error("new texture reports released")
	}
	if !strings.Contains(tex.String(), "glyph_atlas") {
		t.Errorf("String() = %q, want label included", tex.String())
	}
}

func TestNewAtlasTextureNilCache(t *testing.T) {
	if _, err := NewAtlasTexture(NullDeviceHandle{}, nil, "x"); err == nil {
		t.Fatal("expected error for nil cache")
	}
}

func TestUploadTile(t *testing.T) {
	cache := testCache(t, 4)
	tex, err := NewAtlasTexture(NullDeviceHandle{}, cache, "atlas")
	if err != nil {
		t.Fatalf("NewAtlasTexture: %v", err)
	}
	defer tex.Close()

	tile := insertTile(t, cache, 'A')
	if tex.IsCurrent(tile) {
		t.Error("tile current before upload")
	}
	if err := tex.UploadTile(tile); err != nil {
		t.Fatalf("UploadTile: %v", err)
	}
	if !tex.IsCurrent(tile) {
		t.Error("tile not current after upload")
	}
	if got := tex.Uploads(); got != 1 {
		t.Errorf("Uploads() = %d, want 1", got)
	}
}

func TestUploadTileErrors(t *testing.T) {
	cache := testCache(t, 4)
	tex, err := NewAtlasTexture(NullDeviceHandle{}, cache, "atlas")
	if err != nil {
		t.Fatalf("NewAtlasTexture: %v", err)
	}

	if err := tex.UploadTile(nil); !errors.Is(err, ErrNilTile) {
		t.Errorf("UploadTile(nil) = %v, want ErrNilTile", err)
	}

	out := &atlas.Tile{SDF: glyph.Empty(), X: 1000, Y: 0}
	if err := tex.UploadTile(out); !errors.Is(err, ErrTileOutOfBounds) {
		t.Errorf("out of bounds upload = %v, want ErrTileOutOfBounds", err)
	}

	tile := insertTile(t, cache, 'A')
	tex.Close()
	if err := tex.UploadTile(tile); !errors.Is(err, ErrTextureReleased) {
		t.Errorf("upload after Close = %v, want ErrTextureReleased", err)
	}
}

func TestEvictionInvalidatesUpload(t *testing.T) {
	cache := testCache(t, 1)
	tex, err := NewAtlasTexture(NullDeviceHandle{}, cache, "atlas")
	if err != nil {
		t.Fatalf("NewAtlasTexture: %v", err)
	}
	defer tex.Close()

	first := insertTile(t, cache, 'A')
	if err := tex.UploadTile(first); err != nil {
		t.Fatalf("UploadTile: %v", err)
	}

	// Single slot cache: the next insert reuses the slot.
	second := insertTile(t, cache, 'B')
	if second.Slot != first.Slot {
		t.Fatalf("expected slot reuse, got %d and %d", first.Slot, second.Slot)
	}
	if tex.IsCurrent(first) {
		t.Error("evicted tile still current")
	}
	if tex.IsCurrent(second) {
		t.Error("new tile current before upload")
	}

	if err := tex.UploadTile(second); err != nil {
		t.Fatalf("UploadTile: %v", err)
	}
	if !tex.IsCurrent(second) {
		t.Error("new tile not current after upload")
	}
	if tex.IsCurrent(first) {
		t.Error("stale tile current after slot reuse")
	}
}

func TestSyncSkipsCurrentTiles(t *testing.T) {
	cache := testCache(t, 4)
	tex, err := NewAtlasTexture(NullDeviceHandle{}, cache, "atlas")
	if err != nil {
		t.Fatalf("NewAtlasTexture: %v", err)
	}
	defer tex.Close()

	tiles := []*atlas.Tile{
		insertTile(t, cache, 'A'),
		insertTile(t, cache, 'B'),
		insertTile(t, cache, 'C'),
	}

	written, err := tex.Sync(tiles)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if written != 3 {
		t.Errorf("first Sync wrote %d tiles, want 3", written)
	}

	written, err = tex.Sync(tiles)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if written != 0 {
		t.Errorf("second Sync wrote %d tiles, want 0", written)
	}
}

func TestCloseIdempotent(t *testing.T) {
	cache := testCache(t, 4)
	tex, err := NewAtlasTexture(NullDeviceHandle{}, cache, "atlas")
	if err != nil {
		t.Fatalf("NewAtlasTexture: %v", err)
	}

	tex.Close()
	tex.Close()
	if !tex.IsReleased() {
		t.Error("texture not released after Close")
	}
	if !strings.Contains(tex.String(), "released") {
		t.Errorf("String() = %q, want released status", tex.String())
	}
}

func TestNullDeviceHandle(t *testing.T) {
	var h NullDeviceHandle
	if h.Device() != nil || h.Queue() != nil || h.Adapter() != nil {
		t.Error("null device returned non-nil resources")
	}
}
