// Package render evaluates SDF text effects into RGBA pixels.
//
// Effects (outline, shadow, glow, gradient) are computed per pixel
// from the signed distance value, then composited bottom to top with
// Porter-Duff "over" blending, with the base fill on top.
package render

import "image/color"

// Color is a straight-alpha RGBA color with float32 channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{}
)

// RGBA makes Color a color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	p := c.Premultiply()
	return uint32(clamp01(p.R) * 0xffff), uint32(clamp01(p.G) * 0xffff),
		uint32(clamp01(p.B) * 0xffff), uint32(clamp01(p.A) * 0xffff)
}

// NRGBA converts to 8-bit straight-alpha form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Lerp linearly interpolates toward other by t.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Premultiply multiplies the color channels by alpha.
func (c Color) Premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Over composites c over dst with Porter-Duff "over" blending.
func (c Color) Over(dst Color) Color {
	sa := c.A
	da := dst.A * (1 - sa)
	outA := sa + da
	if outA < 1e-6 {
		return Transparent
	}
	invA := 1 / outA
	return Color{
		R: (c.R*sa + dst.R*da) * invA,
		G: (c.G*sa + dst.G*da) * invA,
		B: (c.B*sa + dst.B*da) * invA,
		A: outA,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
