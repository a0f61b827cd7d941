package render

import (
	"math"

	"github.com/gogpu/metafont/glyph"
)

// Effect is a per-pixel SDF text effect. The set of effects is closed:
// Outline, Shadow, Glow, InnerShadow, and Gradient.
type Effect interface {
	// evaluate returns the effect's color contribution at a pixel with
	// signed distance d and tile coordinates (u, v).
	evaluate(d, u, v float32, sdf *glyph.SDF, aa float32) Color
}

// Outline draws a ring of the given width outside the glyph edge.
type Outline struct {
	Color Color
	Width float32
}

func (e Outline) evaluate(d, _, _ float32, _ *glyph.SDF, aa float32) Color {
	outer := smoothstep(-e.Width-aa, -e.Width, d)
	inner := smoothstep(-aa, 0, d)
	alpha := outer * (1 - inner)
	return Color{R: e.Color.R, G: e.Color.G, B: e.Color.B, A: e.Color.A * alpha}
}

// Shadow draws a soft drop shadow displaced by the offset, in tile
// coordinates.
type Shadow struct {
	Color    Color
	OffsetX  float32
	OffsetY  float32
	Softness float32
}

func (e Shadow) evaluate(_, u, v float32, sdf *glyph.SDF, _ float32) Color {
	sd := sampleOffset(sdf, u-e.OffsetX, v-e.OffsetY)
	alpha := smoothstep(e.Softness, -e.Softness, sd)
	return Color{R: e.Color.R, G: e.Color.G, B: e.Color.B, A: e.Color.A * alpha}
}

// Glow draws an outer glow fading over Radius with the given falloff
// exponent.
type Glow struct {
	Color   Color
	Radius  float32
	Falloff float32
}

func (e Glow) evaluate(d, _, _ float32, _ *glyph.SDF, _ float32) Color {
	if d <= 0 {
		// Inside the glyph the base fill wins.
		return Transparent
	}
	t := d / e.Radius
	if t > 1 {
		t = 1
	}
	alpha := 1 - float32(math.Pow(float64(t), float64(e.Falloff)))
	if alpha < 0 {
		alpha = 0
	}
	return Color{R: e.Color.R, G: e.Color.G, B: e.Color.B, A: e.Color.A * alpha}
}

// InnerShadow darkens the inside of the glyph where the displaced
// distance field is near the edge.
type InnerShadow struct {
	Color    Color
	OffsetX  float32
	OffsetY  float32
	Softness float32
}

func (e InnerShadow) evaluate(d, u, v float32, sdf *glyph.SDF, _ float32) Color {
	if d >= 0 {
		return Transparent
	}
	sd := sampleOffset(sdf, u-e.OffsetX, v-e.OffsetY)
	alpha := smoothstep(-e.Softness, e.Softness, sd)
	return Color{R: e.Color.R, G: e.Color.G, B: e.Color.B, A: e.Color.A * alpha}
}

// Gradient fills the glyph with a vertical gradient, optionally mixed
// with a radial component. RadialMix 0 is purely vertical, 1 purely
// radial.
type Gradient struct {
	Top       Color
	Bottom    Color
	RadialMix float32
}

func (e Gradient) evaluate(d, u, v float32, _ *glyph.SDF, _ float32) Color {
	if d >= 0 {
		return Transparent
	}
	linearT := v
	cu := u - 0.5
	cv := v - 0.5
	radialT := cu*cu + cv*cv
	if radialT > 0.25 {
		radialT = 0.25
	}
	radialT *= 4
	t := clamp01(linearT*(1-e.RadialMix) + radialT*e.RadialMix)
	return e.Bottom.Lerp(e.Top, t)
}

// sampleOffset samples the SDF at a displaced coordinate, treating
// anything outside the tile as far outside the glyph.
func sampleOffset(sdf *glyph.SDF, u, v float32) float32 {
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return 1
	}
	return sdf.Sample(u, v)
}

// smoothstep is the smooth Hermite interpolation on [edge0, edge1].
func smoothstep(edge0, edge1, x float32) float32 {
	r := edge1 - edge0
	if r > -1e-10 && r < 1e-10 {
		if x >= edge1 {
			return 1
		}
		return 0
	}
	t := clamp01((x - edge0) / r)
	return t * t * (3 - 2*t)
}
