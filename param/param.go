// Package param defines the parameter space of the metafont system.
//
// A ParamSet is a point in a ten-dimensional design space. Every glyph
// the engine produces is a pure function of a ParamSet and a rune, so
// two sets that encode to the same bytes always render identically.
package param

import "math"

// Axis ranges. Values outside these bounds are clamped, never rejected.
const (
	WidthMin = 0.5
	WidthMax = 2.0
	SlantMin = -0.5
	SlantMax = 0.5
)

// EncodedSize is the wire size of a ParamSet in bytes: ten
// little-endian float32 values in field order.
const EncodedSize = 40

// ParamSet holds the ten design axes of a parametric font.
//
// Weight, Serif, Contrast, Roundness and the four vertical metrics live
// in [0, 1]. Width is a horizontal scale in [0.5, 2.0]. Slant is the
// shear angle in radians, in [-0.5, 0.5].
type ParamSet struct {
	Weight    float32 // stroke thickness
	Width     float32 // horizontal proportion
	Serif     float32 // serif prominence, 0 disables serifs
	Contrast  float32 // thick/thin stroke modulation
	Slant     float32 // italic shear angle in radians
	XHeight   float32 // lowercase body height
	CapHeight float32 // uppercase height
	Ascender  float32 // ascender height above baseline
	Descender float32 // descender depth below baseline
	Roundness float32 // preference for curved joins
}

// Clamp forces every axis into its valid range. Non-finite values
// collapse to the low bound of their axis.
func (p *ParamSet) Clamp() {
	p.Weight = clampUnit(p.Weight)
	p.Width = clampAxis(p.Width, WidthMin, WidthMax)
	p.Serif = clampUnit(p.Serif)
	p.Contrast = clampUnit(p.Contrast)
	p.Slant = clampAxis(p.Slant, SlantMin, SlantMax)
	p.XHeight = clampUnit(p.XHeight)
	p.CapHeight = clampUnit(p.CapHeight)
	p.Ascender = clampUnit(p.Ascender)
	p.Descender = clampUnit(p.Descender)
	p.Roundness = clampUnit(p.Roundness)
}

// Clamped returns a copy with every axis forced into range.
func (p ParamSet) Clamped() ParamSet {
	p.Clamp()
	return p
}

// Equal reports whether two sets have identical wire encodings. This is
// exact byte comparison, not epsilon comparison.
func (p ParamSet) Equal(o ParamSet) bool {
	return p.Encode() == o.Encode()
}

// Lerp interpolates componentwise between a and b and clamps the
// result. t outside [0, 1] extrapolates before clamping.
func Lerp(a, b ParamSet, t float32) ParamSet {
	r := ParamSet{
		Weight:    lerp(a.Weight, b.Weight, t),
		Width:     lerp(a.Width, b.Width, t),
		Serif:     lerp(a.Serif, b.Serif, t),
		Contrast:  lerp(a.Contrast, b.Contrast, t),
		Slant:     lerp(a.Slant, b.Slant, t),
		XHeight:   lerp(a.XHeight, b.XHeight, t),
		CapHeight: lerp(a.CapHeight, b.CapHeight, t),
		Ascender:  lerp(a.Ascender, b.Ascender, t),
		Descender: lerp(a.Descender, b.Descender, t),
		Roundness: lerp(a.Roundness, b.Roundness, t),
	}
	r.Clamp()
	return r
}

// StrokeHalfWidth derives the base pen half-width from Weight.
// Weight 0 still yields a visible hairline.
func (p ParamSet) StrokeHalfWidth() float32 {
	return 0.01 + p.Weight*0.08
}

// SerifLength derives the serif wedge length from Serif.
func (p ParamSet) SerifLength() float32 {
	return p.Serif * 0.06
}

// ThickWidth is the pen half-width at the thickest stroke angle.
func (p ParamSet) ThickWidth() float32 {
	return p.StrokeHalfWidth() * (1 + p.Contrast*0.8)
}

// ThinWidth is the pen half-width at the thinnest stroke angle.
func (p ParamSet) ThinWidth() float32 {
	return p.StrokeHalfWidth() * (1 - p.Contrast*0.5)
}

func clampUnit(v float32) float32 {
	return clampAxis(v, 0, 1)
}

func clampAxis(v, lo, hi float32) float32 {
	if math.IsNaN(float64(v)) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
