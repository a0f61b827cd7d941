// Package glyph synthesizes glyph skeletons and signed distance fields
// from font parameters.
//
// Every printable ASCII rune has a fixed recipe of stroke primitives
// defined in a normalized em square with the baseline at y=0. A recipe
// is a pure function of the parameter set: no state, no I/O, and no
// failure mode. Runes without a recipe get a deterministic placeholder
// so lookup never errors.
package glyph

import (
	"github.com/gogpu/metafont/param"
	"github.com/gogpu/metafont/stroke"
)

// MaxStrokes is the stroke capacity of a skeleton. Recipes that would
// exceed it silently drop the extra strokes.
const MaxStrokes = 16

// Skeleton is the centerline description of one glyph: a fixed-size
// list of cubic strokes plus horizontal metrics.
type Skeleton struct {
	Strokes [MaxStrokes]stroke.Stroke
	Count   int
	Advance float32
	LSB     float32
}

// EmptySkeleton returns a skeleton with no strokes and a half-em
// advance.
func EmptySkeleton() Skeleton {
	return Skeleton{Advance: 0.5}
}

// Add appends a stroke if capacity remains.
func (s *Skeleton) Add(st stroke.Stroke) {
	if s.Count < MaxStrokes {
		s.Strokes[s.Count] = st
		s.Count++
	}
}

// stretchX scales every stroke and the advance horizontally. Used to
// apply the width axis after a recipe is built.
func (s *Skeleton) stretchX(f float32) {
	if f == 1 {
		return
	}
	for i := 0; i < s.Count; i++ {
		st := &s.Strokes[i]
		st.P0.X *= f
		st.P1.X *= f
		st.P2.X *= f
		st.P3.X *= f
	}
	s.Advance *= f
	s.LSB *= f
}

// Generator builds skeletons and rasterizes them for one parameter
// set. It is immutable after construction and safe for concurrent use.
type Generator struct {
	pen       stroke.PenModel
	slant     float32
	width     float32
	xHeight   float32
	capHeight float32
	ascender  float32
	descender float32
	serifLen  float32
	roundness float32
}

// NewGenerator derives a generator from a parameter set. The set is
// clamped first so a generator is always well formed.
func NewGenerator(p param.ParamSet) *Generator {
	p.Clamp()
	return &Generator{
		pen:       stroke.NewPen(p),
		slant:     p.Slant,
		width:     p.Width,
		xHeight:   p.XHeight,
		capHeight: p.CapHeight,
		ascender:  p.Ascender,
		descender: p.Descender,
		serifLen:  p.SerifLength(),
		roundness: p.Roundness,
	}
}

// Pen returns the generator's pen model.
func (g *Generator) Pen() stroke.PenModel {
	return g.pen
}

// Generate builds and rasterizes the glyph for r.
func (g *Generator) Generate(r rune) *SDF {
	skel := g.BuildSkeleton(r)
	return g.Rasterize(&skel)
}

// BuildSkeleton returns the stroke skeleton for r. Unknown runes get
// the placeholder recipe; the result is identical for identical inputs.
func (g *Generator) BuildSkeleton(r rune) Skeleton {
	var skel Skeleton
	switch {
	case r >= 'A' && r <= 'Z':
		skel = g.buildUpper(r)
	case r >= 'a' && r <= 'z':
		skel = g.buildLower(r)
	case r >= '0' && r <= '9':
		skel = g.buildDigit(r)
	case r >= 0x21 && r <= 0x2F, r >= 0x3A && r <= 0x40,
		r >= 0x5B && r <= 0x60, r >= 0x7B && r <= 0x7E:
		skel = g.buildPunct(r)
	default:
		skel = g.buildPlaceholder()
	}
	skel.stretchX(g.width)
	return skel
}

// line adds a slanted straight stroke.
func (g *Generator) line(s *Skeleton, a, b stroke.Point) {
	s.Add(stroke.Line(a, b).ApplySlant(g.slant))
}

// curve adds a slanted cubic stroke.
func (g *Generator) curve(s *Skeleton, p0, p1, p2, p3 stroke.Point) {
	s.Add(stroke.Curve(p0, p1, p2, p3).ApplySlant(g.slant))
}

// corner joins a to b via the given corner point. With positive
// roundness the corner is cut by a small fillet arc sized
// proportionally; otherwise the two segments meet at a cusp.
func (g *Generator) corner(s *Skeleton, a, c, b stroke.Point) {
	r := g.roundness * 0.04
	la := c.Distance(a)
	lb := c.Distance(b)
	if r > la/3 {
		r = la / 3
	}
	if r > lb/3 {
		r = lb / 3
	}
	if r <= 1e-4 {
		g.line(s, a, c)
		g.line(s, c, b)
		return
	}
	in := c.Add(a.Sub(c).Normalize().Scale(r))
	out := c.Add(b.Sub(c).Normalize().Scale(r))
	g.line(s, a, in)
	g.curve(s, in,
		in.Lerp(c, kappa),
		out.Lerp(c, kappa),
		out)
	g.line(s, out, b)
}

// stemSerifs puts a serif wedge on each side of a stem end when the
// serif axis is active.
func (g *Generator) stemSerifs(s *Skeleton, at stroke.Point) {
	if g.serifLen <= 0 {
		return
	}
	g.serifAt(s, at, stroke.Pt(-1, 0))
	g.serifAt(s, at, stroke.Pt(1, 0))
}

func (g *Generator) buildPlaceholder() Skeleton {
	// Notched box: the standard missing-glyph tile.
	const w = 0.4
	h := g.xHeight
	skel := EmptySkeleton()
	skel.Advance = w + 0.08
	skel.Add(stroke.Line(stroke.Pt(0.04, 0), stroke.Pt(w, 0)))
	skel.Add(stroke.Line(stroke.Pt(w, 0), stroke.Pt(w, h)))
	skel.Add(stroke.Line(stroke.Pt(w, h), stroke.Pt(0.04, h)))
	skel.Add(stroke.Line(stroke.Pt(0.04, h), stroke.Pt(0.04, 0)))
	skel.Add(stroke.Line(stroke.Pt(0.04, h), stroke.Pt(w, 0)))
	return skel
}
