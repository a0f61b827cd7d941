package glyph

import "github.com/gogpu/metafont/stroke"

// CJKStroke identifies one of the eight elemental CJK stroke forms.
// These compose into simple han characters; this is not a full CJK
// layout engine.
type CJKStroke uint8

const (
	// Heng is the horizontal stroke with a slight upward slope.
	Heng CJKStroke = iota
	// Shu is the vertical stroke with an entry serif.
	Shu
	// Pie is the tapering left-falling stroke.
	Pie
	// Na is the right-falling stroke.
	Na
	// Dian is the short dot stroke.
	Dian
	// Zhe is the turning stroke, horizontal then vertical.
	Zhe
	// Ti is the upward flick.
	Ti
	// Gou is the vertical hook.
	Gou
)

// Placement is the bounding box a CJK stroke is fitted into, in em
// units.
type Placement struct {
	X, Y, W, H float32
}

// AddCJKStroke appends the stroke primitives for one elemental stroke
// fitted to the placement box. The pen model supplies the weight, so
// only geometry is emitted here.
func (g *Generator) AddCJKStroke(s *Skeleton, kind CJKStroke, p Placement) {
	switch kind {
	case Heng:
		rise := p.H * 0.03
		g.line(s, stroke.Pt(p.X, p.Y), stroke.Pt(p.X+p.W, p.Y+rise))
	case Shu:
		entry := p.W * 0.15
		g.line(s, stroke.Pt(p.X-entry, p.Y+p.H), stroke.Pt(p.X+entry, p.Y+p.H))
		g.line(s, stroke.Pt(p.X, p.Y), stroke.Pt(p.X, p.Y+p.H))
	case Pie:
		g.curve(s,
			stroke.Pt(p.X+p.W, p.Y+p.H),
			stroke.Pt(p.X+p.W*0.6, p.Y+p.H*0.6),
			stroke.Pt(p.X+p.W*0.2, p.Y+p.H*0.2),
			stroke.Pt(p.X, p.Y))
	case Na:
		g.curve(s,
			stroke.Pt(p.X, p.Y+p.H),
			stroke.Pt(p.X+p.W*0.3, p.Y+p.H*0.5),
			stroke.Pt(p.X+p.W*0.7, p.Y+p.H*0.15),
			stroke.Pt(p.X+p.W, p.Y))
	case Dian:
		g.curve(s,
			stroke.Pt(p.X, p.Y+p.H),
			stroke.Pt(p.X+p.W*0.3, p.Y+p.H*0.7),
			stroke.Pt(p.X+p.W*0.7, p.Y+p.H*0.3),
			stroke.Pt(p.X+p.W, p.Y))
	case Zhe:
		turnX := p.X + p.W
		turnY := p.Y + p.H
		g.line(s, stroke.Pt(p.X, turnY), stroke.Pt(turnX, turnY))
		g.line(s, stroke.Pt(turnX, turnY), stroke.Pt(turnX, p.Y))
	case Ti:
		g.curve(s,
			stroke.Pt(p.X, p.Y),
			stroke.Pt(p.X+p.W*0.3, p.Y+p.H*0.4),
			stroke.Pt(p.X+p.W*0.6, p.Y+p.H*0.7),
			stroke.Pt(p.X+p.W, p.Y+p.H))
	case Gou:
		g.line(s, stroke.Pt(p.X, p.Y+p.H), stroke.Pt(p.X, p.Y+p.H*0.15))
		g.curve(s,
			stroke.Pt(p.X, p.Y+p.H*0.15),
			stroke.Pt(p.X, p.Y),
			stroke.Pt(p.X-p.W*0.3, p.Y),
			stroke.Pt(p.X-p.W*0.4, p.Y+p.H*0.15))
	}
}
