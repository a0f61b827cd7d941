package glyph

import "github.com/gogpu/metafont/stroke"

func (g *Generator) buildLower(r rune) Skeleton {
	switch r {
	case 'a':
		return g.lowerA()
	case 'b':
		return g.lowerB()
	case 'c':
		return g.lowerC()
	case 'd':
		return g.lowerD()
	case 'e':
		return g.lowerE()
	case 'f':
		return g.lowerF()
	case 'g':
		return g.lowerG()
	case 'h':
		return g.lowerH()
	case 'i':
		return g.lowerI()
	case 'j':
		return g.lowerJ()
	case 'k':
		return g.lowerK()
	case 'l':
		return g.lowerL()
	case 'm':
		return g.lowerM()
	case 'n':
		return g.lowerN()
	case 'o':
		return g.lowerO()
	case 'p':
		return g.lowerP()
	case 'q':
		return g.lowerQ()
	case 'r':
		return g.lowerR()
	case 's':
		return g.lowerS()
	case 't':
		return g.lowerT()
	case 'u':
		return g.lowerU()
	case 'v':
		return g.lowerV()
	case 'w':
		return g.lowerW()
	case 'x':
		return g.lowerX()
	case 'y':
		return g.lowerY()
	case 'z':
		return g.lowerZ()
	}
	return g.buildPlaceholder()
}

func (g *Generator) lowerA() Skeleton {
	h := g.xHeight
	w := h * 0.8
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.line(&s, stroke.Pt(w-0.05, 0), stroke.Pt(w-0.05, h))
	g.curve(&s, stroke.Pt(w-0.05, h), stroke.Pt(0.05, h),
		stroke.Pt(0.05, 0), stroke.Pt(w-0.05, 0))
	return s
}

func (g *Generator) lowerB() Skeleton {
	h := g.xHeight
	asc := g.ascender
	w := h * 0.8
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, asc))
	g.halfArc(&s, 0.05, h/2, w-0.05, h/2, 0)
	return s
}

func (g *Generator) lowerC() Skeleton {
	h := g.xHeight
	w := h * 0.7
	s := EmptySkeleton()
	s.Advance = w + 0.06
	g.quarterArc(&s, w/2, h/2, w/2-0.03, h/2, 3)
	g.quarterArc(&s, w/2, h/2, w/2-0.03, h/2, 2)
	return s
}

func (g *Generator) lowerD() Skeleton {
	h := g.xHeight
	asc := g.ascender
	w := h * 0.8
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.line(&s, stroke.Pt(w-0.05, 0), stroke.Pt(w-0.05, asc))
	g.halfArc(&s, w-0.05, h/2, w-0.05, h/2, 1)
	return s
}

func (g *Generator) lowerE() Skeleton {
	h := g.xHeight
	w := h * 0.8
	cx := w / 2
	cy := h / 2
	rx := w/2 - 0.03
	ry := h / 2
	s := EmptySkeleton()
	s.Advance = w + 0.06
	g.line(&s, stroke.Pt(0.05, cy), stroke.Pt(w-0.05, cy))
	g.quarterArc(&s, cx, cy, rx, ry, 0)
	g.quarterArc(&s, cx, cy, rx, ry, 3)
	g.quarterArc(&s, cx, cy, rx, ry, 2)
	return s
}

func (g *Generator) lowerF() Skeleton {
	h := g.xHeight
	asc := g.ascender
	s := EmptySkeleton()
	s.Advance = 0.35
	g.line(&s, stroke.Pt(0.15, 0), stroke.Pt(0.15, asc*0.9))
	g.curve(&s, stroke.Pt(0.15, asc*0.9), stroke.Pt(0.15, asc),
		stroke.Pt(0.30, asc), stroke.Pt(0.30, asc*0.9))
	g.line(&s, stroke.Pt(0.02, h), stroke.Pt(0.28, h))
	return s
}

func (g *Generator) lowerG() Skeleton {
	h := g.xHeight
	desc := g.descender
	w := h * 0.8
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.curve(&s, stroke.Pt(w-0.05, h), stroke.Pt(0.05, h),
		stroke.Pt(0.05, 0), stroke.Pt(w-0.05, 0))
	g.line(&s, stroke.Pt(w-0.05, h), stroke.Pt(w-0.05, -desc))
	g.curve(&s, stroke.Pt(w-0.05, -desc), stroke.Pt(w-0.05, -desc-0.05),
		stroke.Pt(0.1, -desc-0.05), stroke.Pt(0.1, -desc))
	return s
}

func (g *Generator) lowerH() Skeleton {
	h := g.xHeight
	asc := g.ascender
	w := h * 0.75
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, asc))
	g.curve(&s, stroke.Pt(0.05, h), stroke.Pt(0.05, h+0.02),
		stroke.Pt(w-0.05, h+0.02), stroke.Pt(w-0.05, h))
	g.line(&s, stroke.Pt(w-0.05, h), stroke.Pt(w-0.05, 0))
	return s
}

func (g *Generator) lowerI() Skeleton {
	h := g.xHeight
	s := EmptySkeleton()
	s.Advance = 0.25
	g.line(&s, stroke.Pt(0.12, 0), stroke.Pt(0.12, h))
	dotY := h + 0.08
	g.line(&s, stroke.Pt(0.12, dotY), stroke.Pt(0.12, dotY+0.02))
	g.stemSerifs(&s, stroke.Pt(0.12, 0))
	return s
}

func (g *Generator) lowerJ() Skeleton {
	h := g.xHeight
	desc := g.descender
	s := EmptySkeleton()
	s.Advance = 0.28
	g.line(&s, stroke.Pt(0.14, -desc*0.5), stroke.Pt(0.14, h))
	g.curve(&s, stroke.Pt(0.14, -desc*0.5), stroke.Pt(0.14, -desc),
		stroke.Pt(0.02, -desc), stroke.Pt(0.02, -desc*0.5))
	dotY := h + 0.08
	g.line(&s, stroke.Pt(0.14, dotY), stroke.Pt(0.14, dotY+0.02))
	return s
}

func (g *Generator) lowerK() Skeleton {
	h := g.xHeight
	asc := g.ascender
	w := h * 0.6
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, asc))
	g.line(&s, stroke.Pt(w, h), stroke.Pt(0.05, h*0.4))
	g.line(&s, stroke.Pt(0.12, h*0.48), stroke.Pt(w, 0))
	return s
}

func (g *Generator) lowerL() Skeleton {
	asc := g.ascender
	s := EmptySkeleton()
	s.Advance = 0.25
	g.line(&s, stroke.Pt(0.12, 0), stroke.Pt(0.12, asc))
	g.stemSerifs(&s, stroke.Pt(0.12, 0))
	return s
}

func (g *Generator) lowerM() Skeleton {
	h := g.xHeight
	w := h * 1.1
	third := w / 3
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, h))
	g.curve(&s, stroke.Pt(0.05, h), stroke.Pt(0.05, h+0.02),
		stroke.Pt(third, h+0.02), stroke.Pt(third, h))
	g.line(&s, stroke.Pt(third, h), stroke.Pt(third, 0))
	g.curve(&s, stroke.Pt(third, h), stroke.Pt(third, h+0.02),
		stroke.Pt(third*2, h+0.02), stroke.Pt(third*2, h))
	g.line(&s, stroke.Pt(third*2, h), stroke.Pt(third*2, 0))
	return s
}

func (g *Generator) lowerN() Skeleton {
	h := g.xHeight
	w := h * 0.75
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, h))
	g.curve(&s, stroke.Pt(0.05, h), stroke.Pt(0.05, h+0.02),
		stroke.Pt(w-0.05, h+0.02), stroke.Pt(w-0.05, h))
	g.line(&s, stroke.Pt(w-0.05, h), stroke.Pt(w-0.05, 0))
	return s
}

func (g *Generator) lowerO() Skeleton {
	h := g.xHeight
	w := h * 0.85
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.ellipse(&s, w/2, h/2, w/2-0.03, h/2)
	return s
}

func (g *Generator) lowerP() Skeleton {
	h := g.xHeight
	desc := g.descender
	w := h * 0.8
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.line(&s, stroke.Pt(0.05, -desc), stroke.Pt(0.05, h))
	g.halfArc(&s, 0.05, h/2, w-0.05, h/2, 0)
	return s
}

func (g *Generator) lowerQ() Skeleton {
	h := g.xHeight
	desc := g.descender
	w := h * 0.8
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.line(&s, stroke.Pt(w-0.05, -desc), stroke.Pt(w-0.05, h))
	g.halfArc(&s, w-0.05, h/2, w-0.05, h/2, 1)
	return s
}

func (g *Generator) lowerR() Skeleton {
	h := g.xHeight
	w := h * 0.45
	s := EmptySkeleton()
	s.Advance = w + 0.06
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(0.05, h))
	g.curve(&s, stroke.Pt(0.05, h), stroke.Pt(0.05, h+0.02),
		stroke.Pt(w, h+0.02), stroke.Pt(w, h*0.7))
	return s
}

func (g *Generator) lowerS() Skeleton {
	h := g.xHeight
	w := h * 0.5
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.curve(&s, stroke.Pt(w-0.03, h*0.85), stroke.Pt(w-0.03, h),
		stroke.Pt(0.03, h), stroke.Pt(0.03, h*0.65))
	g.curve(&s, stroke.Pt(0.03, h*0.65), stroke.Pt(0.03, h*0.5),
		stroke.Pt(w-0.03, h*0.5), stroke.Pt(w-0.03, h*0.35))
	g.curve(&s, stroke.Pt(w-0.03, h*0.35), stroke.Pt(w-0.03, 0),
		stroke.Pt(0.03, 0), stroke.Pt(0.03, h*0.15))
	return s
}

func (g *Generator) lowerT() Skeleton {
	h := g.xHeight
	asc := h * 1.3
	s := EmptySkeleton()
	s.Advance = 0.35
	g.line(&s, stroke.Pt(0.15, 0), stroke.Pt(0.15, asc))
	g.line(&s, stroke.Pt(0.02, h), stroke.Pt(0.28, h))
	return s
}

func (g *Generator) lowerU() Skeleton {
	h := g.xHeight
	w := h * 0.75
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(0.05, h*0.25))
	g.curve(&s, stroke.Pt(0.05, h*0.25), stroke.Pt(0.05, 0),
		stroke.Pt(w-0.05, 0), stroke.Pt(w-0.05, h*0.25))
	g.line(&s, stroke.Pt(w-0.05, h*0.25), stroke.Pt(w-0.05, h))
	return s
}

func (g *Generator) lowerV() Skeleton {
	h := g.xHeight
	w := h * 0.6
	s := EmptySkeleton()
	s.Advance = w + 0.06
	g.corner(&s, stroke.Pt(0.05, h), stroke.Pt(w/2, 0), stroke.Pt(w-0.05, h))
	return s
}

func (g *Generator) lowerW() Skeleton {
	h := g.xHeight
	w := h * 0.9
	q := w / 4
	s := EmptySkeleton()
	s.Advance = w + 0.06
	g.corner(&s, stroke.Pt(0.05, h), stroke.Pt(q, 0), stroke.Pt(w/2, h*0.5))
	g.corner(&s, stroke.Pt(w/2, h*0.5), stroke.Pt(w-q, 0), stroke.Pt(w-0.05, h))
	return s
}

func (g *Generator) lowerX() Skeleton {
	h := g.xHeight
	w := h * 0.55
	s := EmptySkeleton()
	s.Advance = w + 0.06
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(w-0.05, 0))
	g.line(&s, stroke.Pt(w-0.05, h), stroke.Pt(0.05, 0))
	return s
}

func (g *Generator) lowerY() Skeleton {
	h := g.xHeight
	desc := g.descender
	w := h * 0.6
	s := EmptySkeleton()
	s.Advance = w + 0.06
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(w/2, 0))
	g.line(&s, stroke.Pt(w-0.05, h), stroke.Pt(0.1, -desc))
	return s
}

func (g *Generator) lowerZ() Skeleton {
	h := g.xHeight
	w := h * 0.5
	s := EmptySkeleton()
	s.Advance = w + 0.06
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(w-0.05, h))
	g.line(&s, stroke.Pt(w-0.05, h), stroke.Pt(0.05, 0))
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(w-0.05, 0))
	return s
}
