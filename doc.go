// Package metafont generates fonts procedurally from a 40-byte
// parameter set instead of loading outline files.
//
// # Overview
//
// metafont turns ten bounded parameters (weight, width, serif,
// contrast, slant and five vertical metrics) into signed-distance-field
// glyph images on demand, and caches them in a bounded tile atlas for
// GPU-friendly text rendering. There are no font files: every glyph is
// a stroke skeleton swept by a parametric pen.
//
// # Quick Start
//
//	import "github.com/gogpu/metafont"
//
//	// Create a font from a preset parameter set.
//	font, err := metafont.New(param.SansRegular())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Shape and measure text.
//	lines, err := font.Shaper().ShapeText(ctx, "Hello", 0)
//
//	// Fetch a cached glyph tile.
//	tile, err := font.Glyph(ctx, 'A')
//
// # Architecture
//
// The library is organized into:
//   - param: the 40-byte parameter set, wire codec and presets
//   - stroke: stroke primitives, pen model and distance evaluation
//   - glyph: per-rune skeleton recipes and the SDF rasterizer
//   - atlas: the LRU tile cache with generation tracking
//   - shaper: kerning, line breaking and bidi segmentation
//   - render: software styling and drawing of glyph tiles
//   - gpu: atlas texture upload and the SDF text shader
//   - license: the 32-byte license wire format and validation
//
// # Coordinate System
//
// Glyphs live in em-space: x grows right, y grows up, the baseline is
// y=0 and vertical metrics are fractions of one em. Tile rasters store
// row 0 at the glyph's bottom edge.
package metafont

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
