package gpu

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/metafont/atlas"
)

// Texture-related errors.
var (
	// ErrTextureReleased is returned when operating on a released texture.
	ErrTextureReleased = errors.New("gpu: texture has been released")

	// ErrNilTile is returned when a nil tile is uploaded.
	ErrNilTile = errors.New("gpu: tile is nil")

	// ErrTileOutOfBounds is returned when a tile's region exceeds the texture.
	ErrTileOutOfBounds = errors.New("gpu: tile region exceeds texture bounds")
)

// AtlasTexture is the GPU backing texture of a tile cache: a square
// R8Unorm texture holding one quantized SDF per tile slot.
//
// Every upload records the tile's generation per slot, so a renderer
// holding a tile reference can ask the texture whether the slot still
// holds that tile's data before binding it.
//
// AtlasTexture is safe for concurrent use.
type AtlasTexture struct {
	mu sync.RWMutex

	// GPU resource IDs (stub until wgpu texture creation lands)
	textureID core.TextureID
	viewID    core.TextureViewID

	cache *atlas.Cache
	size  int
	label string

	// generations mirrors the cache's slot generations at upload time.
	generations []uint64
	uploads     atomic.Uint64
	released    atomic.Bool
}

// NewAtlasTexture creates the backing texture for a tile cache.
// A nil device handle creates a logical texture with no GPU resources.
func NewAtlasTexture(device DeviceHandle, cache *atlas.Cache, label string) (*AtlasTexture, error) {
	if cache == nil {
		return nil, errors.New("gpu: cache is nil")
	}

	// TODO: Real texture creation once wgpu exposes CreateTexture on
	// the shared device.
	//
	// desc := &gputypes.TextureDescriptor{
	//     Label: label,
	//     Size: gputypes.Extent3D{
	//         Width:              uint32(cache.Config().TextureSize),
	//         Height:             uint32(cache.Config().TextureSize),
	//         DepthOrArrayLayers: 1,
	//     },
	//     MipLevelCount: 1,
	//     SampleCount:   1,
	//     Dimension:     gputypes.TextureDimension2D,
	//     Format:        gputypes.TextureFormatR8Unorm,
	//     Usage:         gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding,
	// }
	// textureID, err := core.CreateTexture(device.Device(), desc)
	_ = device

	return &AtlasTexture{
		cache:       cache,
		size:        cache.Config().TextureSize,
		label:       label,
		generations: make([]uint64, cache.Capacity()),
	}, nil
}

// Size returns the texture dimension in pixels (width = height).
func (t *AtlasTexture) Size() int {
	return t.size
}

// Format returns the texture pixel format.
func (t *AtlasTexture) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatR8Unorm
}

// Label returns the debug label.
func (t *AtlasTexture) Label() string {
	return t.label
}

// IsReleased returns true if the texture has been released.
func (t *AtlasTexture) IsReleased() bool {
	return t.released.Load()
}

// TextureID returns the underlying wgpu texture ID.
// Returns a zero ID for logical textures.
func (t *AtlasTexture) TextureID() core.TextureID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.textureID
}

// ViewID returns the texture view ID.
// Returns a zero ID for logical textures.
func (t *AtlasTexture) ViewID() core.TextureViewID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.viewID
}

// Uploads returns the number of completed tile uploads.
func (t *AtlasTexture) Uploads() uint64 {
	return t.uploads.Load()
}

// UploadTile writes a tile's SDF bytes into its slot region and
// records the tile's generation for that slot.
func (t *AtlasTexture) UploadTile(tile *atlas.Tile) error {
	if t.released.Load() {
		return ErrTextureReleased
	}
	if tile == nil || tile.SDF == nil {
		return ErrNilTile
	}
	tileSize := t.cache.Config().TileSize
	if tile.X < 0 || tile.Y < 0 || tile.X+tileSize > t.size || tile.Y+tileSize > t.size {
		return fmt.Errorf("%w: (%d,%d)+%d in %d", ErrTileOutOfBounds, tile.X, tile.Y, tileSize, t.size)
	}

	// TODO: queue.WriteTexture with Origin3D{X: tile.X, Y: tile.Y} and
	// a square tile extent once the write path is wired.

	t.mu.Lock()
	if tile.Slot >= 0 && tile.Slot < len(t.generations) {
		t.generations[tile.Slot] = tile.Generation
	}
	t.mu.Unlock()

	t.uploads.Add(1)
	return nil
}

// IsCurrent reports whether the texture's slot content matches the
// given tile, i.e. the tile was uploaded and its slot has not been
// reused since.
func (t *AtlasTexture) IsCurrent(tile *atlas.Tile) bool {
	if tile == nil || t.released.Load() {
		return false
	}

	t.mu.RLock()
	uploaded := uint64(0)
	if tile.Slot >= 0 && tile.Slot < len(t.generations) {
		uploaded = t.generations[tile.Slot]
	}
	t.mu.RUnlock()

	return uploaded == tile.Generation && !t.cache.Stale(tile)
}

// Sync uploads any cached tile the texture has not seen yet and
// returns the number of tiles written. Tiles already current are
// skipped by generation comparison.
func (t *AtlasTexture) Sync(tiles []*atlas.Tile) (int, error) {
	written := 0
	for _, tile := range tiles {
		if t.IsCurrent(tile) {
			continue
		}
		if t.cache.Stale(tile) {
			// The slot was reassigned; the new owner will upload it.
			continue
		}
		if err := t.UploadTile(tile); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// Close releases the GPU texture resources.
// The texture must not be used after Close.
func (t *AtlasTexture) Close() {
	if t.released.Swap(true) {
		return
	}

	// TODO: core.TextureViewDrop / core.TextureDrop once real
	// resources are created.

	t.mu.Lock()
	t.textureID = core.TextureID{}
	t.viewID = core.TextureViewID{}
	t.mu.Unlock()
}

// String returns a string representation of the texture.
func (t *AtlasTexture) String() string {
	status := "active"
	if t.released.Load() {
		status = "released"
	}
	return fmt.Sprintf("AtlasTexture[%s %dx%d R8 %s]", t.label, t.size, t.size, status)
}
