package metafont

import (
	"context"
	"sync"

	"github.com/gogpu/metafont/atlas"
	"github.com/gogpu/metafont/glyph"
	"github.com/gogpu/metafont/param"
	"github.com/gogpu/metafont/render"
	"github.com/gogpu/metafont/shaper"
)

// Font binds a parameter set to a glyph generator and a tile cache.
// It is the main entry point: create one per font face and share it.
//
// Font implements shaper.MetricSource and render.TileSource, so it
// plugs directly into text shaping and software drawing.
//
// Font is safe for concurrent use.
type Font struct {
	mu     sync.RWMutex
	params param.ParamSet
	gen    *glyph.Generator
	style  *render.Style

	cache *atlas.Cache
}

// New creates a font with the given parameters and the default atlas
// configuration.
func New(params param.ParamSet) (*Font, error) {
	return NewWithConfig(params, atlas.DefaultConfig())
}

// NewWithConfig creates a font with an explicit atlas configuration.
func NewWithConfig(params param.ParamSet, config atlas.Config) (*Font, error) {
	cache, err := atlas.New(config)
	if err != nil {
		return nil, err
	}

	params.Clamp()
	f := &Font{
		params: params,
		gen:    glyph.NewGenerator(params),
		style:  render.DefaultStyle(),
		cache:  cache,
	}
	Logger().Debug("font created",
		"capacity", cache.Capacity(),
		"tile", config.TileSize)
	return f, nil
}

// Params returns the font's current parameter set.
func (f *Font) Params() param.ParamSet {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.params
}

// SetParams swaps the parameter set. Values are clamped to their
// valid ranges. Tiles generated under the old parameters stay cached
// under their old keys and age out through normal eviction.
func (f *Font) SetParams(params param.ParamSet) {
	params.Clamp()
	f.mu.Lock()
	f.params = params
	f.gen = glyph.NewGenerator(params)
	f.mu.Unlock()
	Logger().Debug("font params changed")
}

// Style returns the render style applied by StyledTile.
func (f *Font) Style() *render.Style {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.style
}

// SetStyle replaces the render style. A nil style restores the default.
func (f *Font) SetStyle(s *render.Style) {
	if s == nil {
		s = render.DefaultStyle()
	}
	f.mu.Lock()
	f.style = s
	f.mu.Unlock()
}

// Cache returns the underlying tile cache, e.g. for GPU upload sync.
func (f *Font) Cache() *atlas.Cache {
	return f.cache
}

// snapshot returns the params and generator under a read lock.
func (f *Font) snapshot() (param.ParamSet, *glyph.Generator) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.params, f.gen
}

// Glyph returns the cached SDF tile for a rune, generating it on a
// cache miss. Concurrent requests for the same rune share a single
// generation.
func (f *Font) Glyph(ctx context.Context, r rune) (*atlas.Tile, error) {
	params, gen := f.snapshot()
	key := f.cache.Key(params, r)
	return f.cache.LookupOrInsert(ctx, key, func(atlas.Key) (*glyph.SDF, error) {
		return gen.Generate(r), nil
	})
}

// GlyphMetrics returns the advance width and left side bearing of a
// rune in em units. Metrics come from the skeleton alone; no SDF is
// rasterized or cached.
//
// GlyphMetrics implements shaper.MetricSource.
func (f *Font) GlyphMetrics(ctx context.Context, r rune) (advance, lsb float32, err error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	_, gen := f.snapshot()
	skel := gen.BuildSkeleton(r)
	return skel.Advance, skel.LSB, nil
}

// StyledTile returns the rune's SDF tile with the font's style
// evaluated over it.
//
// StyledTile implements render.TileSource.
func (f *Font) StyledTile(ctx context.Context, r rune) (*render.StyledTile, error) {
	tile, err := f.Glyph(ctx, r)
	if err != nil {
		return nil, err
	}
	f.mu.RLock()
	style := f.style
	f.mu.RUnlock()
	return render.StyleTile(tile.SDF, style), nil
}

// Shaper returns a text shaper measuring with this font's metrics.
func (f *Font) Shaper() *shaper.Shaper {
	params, _ := f.snapshot()
	return shaper.New(params, f)
}

// Clear drops all cached tiles.
func (f *Font) Clear() {
	f.cache.Clear()
}

var (
	_ shaper.MetricSource = (*Font)(nil)
	_ render.TileSource   = (*Font)(nil)
)
