package glyph

import "github.com/gogpu/metafont/stroke"

// kappa is the cubic Bezier quarter-circle constant, 4/3*tan(pi/8).
const kappa = 0.5523

// quarterArc adds one quadrant of an ellipse as a cubic stroke.
//
// Quadrants: 0 top-right (top to right), 1 bottom-right (right to
// bottom), 2 bottom-left (bottom to left), 3 top-left (left to top).
func (g *Generator) quarterArc(s *Skeleton, cx, cy, rx, ry float32, quadrant int) {
	kx := rx * kappa
	ky := ry * kappa
	var p0, p1, p2, p3 stroke.Point
	switch quadrant {
	case 0:
		p0 = stroke.Pt(cx, cy+ry)
		p1 = stroke.Pt(cx+kx, cy+ry)
		p2 = stroke.Pt(cx+rx, cy+ky)
		p3 = stroke.Pt(cx+rx, cy)
	case 1:
		p0 = stroke.Pt(cx+rx, cy)
		p1 = stroke.Pt(cx+rx, cy-ky)
		p2 = stroke.Pt(cx+kx, cy-ry)
		p3 = stroke.Pt(cx, cy-ry)
	case 2:
		p0 = stroke.Pt(cx, cy-ry)
		p1 = stroke.Pt(cx-kx, cy-ry)
		p2 = stroke.Pt(cx-rx, cy-ky)
		p3 = stroke.Pt(cx-rx, cy)
	case 3:
		p0 = stroke.Pt(cx-rx, cy)
		p1 = stroke.Pt(cx-rx, cy+ky)
		p2 = stroke.Pt(cx-kx, cy+ry)
		p3 = stroke.Pt(cx, cy+ry)
	default:
		return
	}
	g.curve(s, p0, p1, p2, p3)
}

// ellipse adds a full ellipse as four quarter arcs, clockwise from the
// top.
func (g *Generator) ellipse(s *Skeleton, cx, cy, rx, ry float32) {
	g.quarterArc(s, cx, cy, rx, ry, 0)
	g.quarterArc(s, cx, cy, rx, ry, 1)
	g.quarterArc(s, cx, cy, rx, ry, 2)
	g.quarterArc(s, cx, cy, rx, ry, 3)
}

// halfArc adds half an ellipse. Side 0 is the right bowl (quadrants 0
// then 1, for B, D, P), side 1 the left bowl (quadrants 2 then 3).
func (g *Generator) halfArc(s *Skeleton, cx, cy, rx, ry float32, side int) {
	switch side {
	case 0:
		g.quarterArc(s, cx, cy, rx, ry, 0)
		g.quarterArc(s, cx, cy, rx, ry, 1)
	case 1:
		g.quarterArc(s, cx, cy, rx, ry, 2)
		g.quarterArc(s, cx, cy, rx, ry, 3)
	}
}

// serifAt adds a serif wedge at base extending along dir.
func (g *Generator) serifAt(s *Skeleton, base, dir stroke.Point) {
	b := stroke.NewSerif(base, dir, g.serifLen, g.pen.BaseWidth*1.2)
	s.Add(b.ToStroke().ApplySlant(g.slant))
}
