package glyph

import "github.com/gogpu/metafont/stroke"

func (g *Generator) buildUpper(r rune) Skeleton {
	switch r {
	case 'A':
		return g.upperA()
	case 'B':
		return g.upperB()
	case 'C':
		return g.upperC()
	case 'D':
		return g.upperD()
	case 'E':
		return g.upperE()
	case 'F':
		return g.upperF()
	case 'G':
		return g.upperG()
	case 'H':
		return g.upperH()
	case 'I':
		return g.upperI()
	case 'J':
		return g.upperJ()
	case 'K':
		return g.upperK()
	case 'L':
		return g.upperL()
	case 'M':
		return g.upperM()
	case 'N':
		return g.upperN()
	case 'O':
		return g.upperO()
	case 'P':
		return g.upperP()
	case 'Q':
		return g.upperQ()
	case 'R':
		return g.upperR()
	case 'S':
		return g.upperS()
	case 'T':
		return g.upperT()
	case 'U':
		return g.upperU()
	case 'V':
		return g.upperV()
	case 'W':
		return g.upperW()
	case 'X':
		return g.upperX()
	case 'Y':
		return g.upperY()
	case 'Z':
		return g.upperZ()
	}
	return g.buildPlaceholder()
}

func (g *Generator) upperA() Skeleton {
	h := g.capHeight
	w := h * 0.65
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(w/2, h))
	g.line(&s, stroke.Pt(w/2, h), stroke.Pt(w-0.05, 0))
	// Crossbar sits below the optical midpoint so the two counters
	// carry equal visual weight.
	crossY := h * 0.42
	g.line(&s, stroke.Pt(0.15, crossY), stroke.Pt(w-0.15, crossY))
	return s
}

func (g *Generator) upperB() Skeleton {
	h := g.capHeight
	w := h * 0.55
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, h))
	// Upper bowl
	g.curve(&s, stroke.Pt(0.05, h), stroke.Pt(w, h),
		stroke.Pt(w, h*0.55), stroke.Pt(0.05, h*0.52))
	// Lower bowl, slightly wider
	g.curve(&s, stroke.Pt(0.05, h*0.52), stroke.Pt(w+0.02, h*0.52),
		stroke.Pt(w+0.02, 0), stroke.Pt(0.05, 0))
	return s
}

func (g *Generator) upperC() Skeleton {
	h := g.capHeight
	w := h * 0.65
	cx := w / 2
	cy := h / 2
	rx := w/2 - 0.05
	ry := h / 2
	s := EmptySkeleton()
	s.Advance = w + 0.1
	// Open arc, three quadrants
	g.quarterArc(&s, cx, cy, rx, ry, 3)
	g.quarterArc(&s, cx, cy, rx, ry, 2)
	g.quarterArc(&s, cx, cy, rx, ry, 0)
	if g.serifLen > 0 {
		g.serifAt(&s, stroke.Pt(cx+rx*0.7, h), stroke.Pt(1, 0))
	}
	return s
}

func (g *Generator) upperD() Skeleton {
	h := g.capHeight
	w := h * 0.6
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, h))
	g.halfArc(&s, 0.05, h/2, w-0.05, h/2, 0)
	return s
}

func (g *Generator) upperE() Skeleton {
	h := g.capHeight
	w := h * 0.5
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, h))
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(w, h))
	g.line(&s, stroke.Pt(0.05, h*0.5), stroke.Pt(w*0.85, h*0.5))
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(w, 0))
	return s
}

func (g *Generator) upperF() Skeleton {
	h := g.capHeight
	w := h * 0.48
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, h))
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(w, h))
	g.line(&s, stroke.Pt(0.05, h*0.5), stroke.Pt(w*0.8, h*0.5))
	g.stemSerifs(&s, stroke.Pt(0.05, 0))
	return s
}

func (g *Generator) upperG() Skeleton {
	h := g.capHeight
	w := h * 0.68
	cx := w / 2
	cy := h / 2
	rx := w/2 - 0.05
	ry := h / 2
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.quarterArc(&s, cx, cy, rx, ry, 3)
	g.quarterArc(&s, cx, cy, rx, ry, 2)
	g.quarterArc(&s, cx, cy, rx, ry, 1)
	// Spur bar at mid-height
	g.line(&s, stroke.Pt(cx, cy), stroke.Pt(cx+rx, cy))
	return s
}

func (g *Generator) upperH() Skeleton {
	h := g.capHeight
	w := h * 0.6
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, h))
	g.line(&s, stroke.Pt(w-0.05, 0), stroke.Pt(w-0.05, h))
	g.line(&s, stroke.Pt(0.05, h*0.5), stroke.Pt(w-0.05, h*0.5))
	return s
}

func (g *Generator) upperI() Skeleton {
	h := g.capHeight
	s := EmptySkeleton()
	s.Advance = 0.3
	g.line(&s, stroke.Pt(0.15, 0), stroke.Pt(0.15, h))
	g.stemSerifs(&s, stroke.Pt(0.15, 0))
	g.stemSerifs(&s, stroke.Pt(0.15, h))
	return s
}

func (g *Generator) upperJ() Skeleton {
	h := g.capHeight
	w := h * 0.4
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(w-0.05, h*0.2), stroke.Pt(w-0.05, h))
	g.quarterArc(&s, w*0.5, h*0.2, w*0.45, h*0.2, 1)
	return s
}

func (g *Generator) upperK() Skeleton {
	h := g.capHeight
	w := h * 0.58
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, h))
	g.line(&s, stroke.Pt(w, h), stroke.Pt(0.05, h*0.45))
	g.line(&s, stroke.Pt(0.15, h*0.52), stroke.Pt(w, 0))
	return s
}

func (g *Generator) upperL() Skeleton {
	h := g.capHeight
	w := h * 0.5
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, h))
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(w, 0))
	return s
}

func (g *Generator) upperM() Skeleton {
	h := g.capHeight
	w := h * 0.75
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, h))
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(w/2, h*0.3))
	g.line(&s, stroke.Pt(w/2, h*0.3), stroke.Pt(w-0.05, h))
	g.line(&s, stroke.Pt(w-0.05, h), stroke.Pt(w-0.05, 0))
	return s
}

func (g *Generator) upperN() Skeleton {
	h := g.capHeight
	w := h * 0.6
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, h))
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(w-0.05, 0))
	g.line(&s, stroke.Pt(w-0.05, 0), stroke.Pt(w-0.05, h))
	return s
}

func (g *Generator) upperO() Skeleton {
	h := g.capHeight
	w := h * 0.7
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.ellipse(&s, w/2, h/2, w/2-0.05, h/2)
	return s
}

func (g *Generator) upperP() Skeleton {
	h := g.capHeight
	w := h * 0.55
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, h))
	g.curve(&s, stroke.Pt(0.05, h), stroke.Pt(w, h),
		stroke.Pt(w, h*0.5), stroke.Pt(0.05, h*0.5))
	return s
}

func (g *Generator) upperQ() Skeleton {
	h := g.capHeight
	w := h * 0.7
	cx := w / 2
	cy := h / 2
	rx := w/2 - 0.05
	ry := h / 2
	s := EmptySkeleton()
	s.Advance = w + 0.12
	g.ellipse(&s, cx, cy, rx, ry)
	g.line(&s, stroke.Pt(cx+rx*0.3, cy-ry*0.3), stroke.Pt(cx+rx+0.05, cy-ry-0.02))
	return s
}

func (g *Generator) upperR() Skeleton {
	h := g.capHeight
	w := h * 0.55
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, h))
	g.curve(&s, stroke.Pt(0.05, h), stroke.Pt(w, h),
		stroke.Pt(w, h*0.5), stroke.Pt(0.05, h*0.5))
	g.line(&s, stroke.Pt(0.15, h*0.5), stroke.Pt(w, 0))
	return s
}

func (g *Generator) upperS() Skeleton {
	h := g.capHeight
	w := h * 0.55
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.curve(&s, stroke.Pt(w-0.05, h*0.85), stroke.Pt(w-0.05, h),
		stroke.Pt(0.05, h), stroke.Pt(0.05, h*0.7))
	g.curve(&s, stroke.Pt(0.05, h*0.7), stroke.Pt(0.05, h*0.5),
		stroke.Pt(w-0.05, h*0.5), stroke.Pt(w-0.05, h*0.3))
	g.curve(&s, stroke.Pt(w-0.05, h*0.3), stroke.Pt(w-0.05, 0),
		stroke.Pt(0.05, 0), stroke.Pt(0.05, h*0.15))
	return s
}

func (g *Generator) upperT() Skeleton {
	h := g.capHeight
	w := h * 0.6
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(w/2, 0), stroke.Pt(w/2, h))
	g.line(&s, stroke.Pt(0.02, h), stroke.Pt(w-0.02, h))
	g.stemSerifs(&s, stroke.Pt(w/2, 0))
	return s
}

func (g *Generator) upperU() Skeleton {
	h := g.capHeight
	w := h * 0.6
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(0.05, h*0.25))
	g.line(&s, stroke.Pt(w-0.05, h), stroke.Pt(w-0.05, h*0.25))
	g.curve(&s, stroke.Pt(0.05, h*0.25), stroke.Pt(0.05, 0),
		stroke.Pt(w-0.05, 0), stroke.Pt(w-0.05, h*0.25))
	return s
}

func (g *Generator) upperV() Skeleton {
	h := g.capHeight
	w := h * 0.65
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.corner(&s, stroke.Pt(0.05, h), stroke.Pt(w/2, 0), stroke.Pt(w-0.05, h))
	return s
}

func (g *Generator) upperW() Skeleton {
	h := g.capHeight
	w := h * 0.85
	q := w / 4
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.corner(&s, stroke.Pt(0.05, h), stroke.Pt(q, 0), stroke.Pt(w/2, h*0.5))
	g.corner(&s, stroke.Pt(w/2, h*0.5), stroke.Pt(w-q, 0), stroke.Pt(w-0.05, h))
	return s
}

func (g *Generator) upperX() Skeleton {
	h := g.capHeight
	w := h * 0.6
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(w-0.05, 0))
	g.line(&s, stroke.Pt(w-0.05, h), stroke.Pt(0.05, 0))
	return s
}

func (g *Generator) upperY() Skeleton {
	h := g.capHeight
	w := h * 0.6
	mid := h * 0.45
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(w/2, mid))
	g.line(&s, stroke.Pt(w-0.05, h), stroke.Pt(w/2, mid))
	g.line(&s, stroke.Pt(w/2, mid), stroke.Pt(w/2, 0))
	return s
}

func (g *Generator) upperZ() Skeleton {
	h := g.capHeight
	w := h * 0.55
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(w-0.05, h))
	g.line(&s, stroke.Pt(w-0.05, h), stroke.Pt(0.05, 0))
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(w-0.05, 0))
	return s
}
