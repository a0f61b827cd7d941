package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/metafont/glyph"
	"github.com/gogpu/metafont/stroke"
)

// MaxEffects limits the effect stack depth.
const MaxEffects = 8

// Style is a complete text style: a base fill plus a stack of effects
// composited under it.
type Style struct {
	// BaseColor is the glyph fill color.
	BaseColor Color

	// Threshold shifts the SDF boundary. Default: 0
	Threshold float32

	// AAWidth is the anti-aliasing band width in em units. Default: 0.03
	AAWidth float32

	effects []Effect
}

// DefaultStyle returns white text with no effects.
func DefaultStyle() *Style {
	return &Style{BaseColor: White, AAWidth: 0.03}
}

// Outlined returns white text with a black outline.
func Outlined() *Style {
	s := DefaultStyle()
	s.Push(Outline{Color: Black, Width: 0.05})
	return s
}

// Shadowed returns white text with a soft drop shadow.
func Shadowed() *Style {
	s := DefaultStyle()
	s.Push(Shadow{
		Color:    Color{0, 0, 0, 0.6},
		OffsetX:  0.03,
		OffsetY:  -0.03,
		Softness: 0.04,
	})
	return s
}

// Neon returns green text with an outer glow.
func Neon() *Style {
	s := &Style{BaseColor: Color{0, 1, 0.5, 1}, AAWidth: 0.02}
	s.Push(Glow{Color: Color{0, 1, 0.5, 0.8}, Radius: 0.15, Falloff: 2})
	return s
}

// Push appends an effect to the stack. The first pushed effect is the
// bottom layer. Returns false if the stack is full.
func (s *Style) Push(e Effect) bool {
	if len(s.effects) >= MaxEffects {
		return false
	}
	s.effects = append(s.effects, e)
	return true
}

// Effects returns the effect stack, bottom first.
func (s *Style) Effects() []Effect {
	return s.effects
}

// ClearEffects empties the effect stack.
func (s *Style) ClearEffects() {
	s.effects = s.effects[:0]
}

// TileSize is the styled output tile size in pixels.
const TileSize = glyph.Size

// StyledTile is a styled glyph: a TileSize x TileSize RGBA raster.
type StyledTile struct {
	Pixels [TileSize * TileSize]Color

	// ContentHash identifies the pixel content for upload dedup.
	ContentHash uint64

	// Advance and bearing carried over from the source glyph.
	Advance float32
	LSB     float32

	// BBoxMin, BBoxMax are the glyph bounds in em units.
	BBoxMin, BBoxMax stroke.Point
}

// StyleTile evaluates a style over an SDF glyph.
func StyleTile(sdf *glyph.SDF, style *Style) *StyledTile {
	out := &StyledTile{
		Advance: sdf.Advance,
		LSB:     sdf.LSB,
		BBoxMin: sdf.BBoxMin,
		BBoxMax: sdf.BBoxMax,
	}
	invSize := float32(1) / (TileSize - 1)

	for py := 0; py < TileSize; py++ {
		for px := 0; px < TileSize; px++ {
			u := float32(px) * invSize
			v := float32(py) * invSize
			d := sdf.Sample(u, v) - style.Threshold

			color := Transparent
			for _, effect := range style.effects {
				if c := effect.evaluate(d, u, v, sdf, style.AAWidth); c.A > 1e-6 {
					color = c.Over(color)
				}
			}

			if baseAlpha := smoothstep(style.AAWidth, -style.AAWidth, d); baseAlpha > 1e-6 {
				base := style.BaseColor
				base.A *= baseAlpha
				color = base.Over(color)
			}

			out.Pixels[py*TileSize+px] = color
		}
	}

	out.ContentHash = contentHash(&out.Pixels)
	return out
}

// contentHash hashes a few representative pixels with FNV-1a.
func contentHash(pixels *[TileSize * TileSize]Color) uint64 {
	p0 := pixels[0]
	pm := pixels[len(pixels)/2]

	var buf [16]byte
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(p0.R))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(p0.A))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(pm.R))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(pm.A))

	h := uint64(0xcbf29ce484222325)
	for _, b := range buf {
		h ^= uint64(b)
		h *= 0x100000001b3
	}
	return h
}
