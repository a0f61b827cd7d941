package glyph

import "github.com/gogpu/metafont/stroke"

// DigitAdvance is the tabular advance shared by all digits so numeric
// columns align.
const DigitAdvance = 0.55

func (g *Generator) buildDigit(r rune) Skeleton {
	switch r {
	case '0':
		return g.digit0()
	case '1':
		return g.digit1()
	case '2':
		return g.digit2()
	case '3':
		return g.digit3()
	case '4':
		return g.digit4()
	case '5':
		return g.digit5()
	case '6':
		return g.digit6()
	case '7':
		return g.digit7()
	case '8':
		return g.digit8()
	case '9':
		return g.digit9()
	}
	return g.buildPlaceholder()
}

func (g *Generator) digit0() Skeleton {
	h := g.capHeight
	w := h * 0.55
	s := EmptySkeleton()
	s.Advance = DigitAdvance
	g.ellipse(&s, w/2, h/2, w/2-0.05, h/2)
	return s
}

func (g *Generator) digit1() Skeleton {
	h := g.capHeight
	s := EmptySkeleton()
	s.Advance = DigitAdvance
	x := float32(DigitAdvance / 2)
	g.line(&s, stroke.Pt(x, 0), stroke.Pt(x, h))
	g.line(&s, stroke.Pt(x-0.1, h*0.8), stroke.Pt(x, h))
	g.line(&s, stroke.Pt(x-0.08, 0), stroke.Pt(x+0.08, 0))
	return s
}

func (g *Generator) digit2() Skeleton {
	h := g.capHeight
	w := h * 0.5
	s := EmptySkeleton()
	s.Advance = DigitAdvance
	g.curve(&s, stroke.Pt(0.05, h*0.75), stroke.Pt(0.05, h),
		stroke.Pt(w, h), stroke.Pt(w, h*0.65))
	g.line(&s, stroke.Pt(w, h*0.65), stroke.Pt(0.05, 0))
	g.line(&s, stroke.Pt(0.05, 0), stroke.Pt(w, 0))
	return s
}

func (g *Generator) digit3() Skeleton {
	h := g.capHeight
	w := h * 0.5
	s := EmptySkeleton()
	s.Advance = DigitAdvance
	g.curve(&s, stroke.Pt(0.08, h*0.85), stroke.Pt(0.08, h),
		stroke.Pt(w, h), stroke.Pt(w, h*0.6))
	g.line(&s, stroke.Pt(w, h*0.6), stroke.Pt(w*0.6, h*0.5))
	g.curve(&s, stroke.Pt(w*0.6, h*0.5), stroke.Pt(w+0.02, h*0.4),
		stroke.Pt(w+0.02, 0), stroke.Pt(0.08, 0))
	return s
}

func (g *Generator) digit4() Skeleton {
	h := g.capHeight
	w := h * 0.55
	barY := h * 0.35
	s := EmptySkeleton()
	s.Advance = DigitAdvance
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(0.05, barY))
	g.line(&s, stroke.Pt(0.05, barY), stroke.Pt(w, barY))
	g.line(&s, stroke.Pt(w*0.7, 0), stroke.Pt(w*0.7, h))
	return s
}

func (g *Generator) digit5() Skeleton {
	h := g.capHeight
	w := h * 0.5
	s := EmptySkeleton()
	s.Advance = DigitAdvance
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(w, h))
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(0.05, h*0.55))
	g.curve(&s, stroke.Pt(0.05, h*0.55), stroke.Pt(w, h*0.55),
		stroke.Pt(w, 0), stroke.Pt(0.05, 0))
	return s
}

func (g *Generator) digit6() Skeleton {
	h := g.capHeight
	w := h * 0.52
	s := EmptySkeleton()
	s.Advance = DigitAdvance
	g.curve(&s, stroke.Pt(w-0.05, h*0.85), stroke.Pt(w*0.6, h),
		stroke.Pt(0.05, h*0.7), stroke.Pt(0.05, h*0.4))
	g.ellipse(&s, w/2, h*0.28, w/2-0.03, h*0.28)
	return s
}

func (g *Generator) digit7() Skeleton {
	h := g.capHeight
	w := h * 0.5
	s := EmptySkeleton()
	s.Advance = DigitAdvance
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(w, h))
	g.line(&s, stroke.Pt(w, h), stroke.Pt(w*0.35, 0))
	return s
}

func (g *Generator) digit8() Skeleton {
	h := g.capHeight
	w := h * 0.5
	rx := w/2 - 0.03
	s := EmptySkeleton()
	s.Advance = DigitAdvance
	g.ellipse(&s, w/2, h*0.73, rx*0.9, h*0.25)
	g.ellipse(&s, w/2, h*0.27, rx, h*0.27)
	return s
}

func (g *Generator) digit9() Skeleton {
	h := g.capHeight
	w := h * 0.52
	s := EmptySkeleton()
	s.Advance = DigitAdvance
	g.ellipse(&s, w/2, h*0.72, w/2-0.03, h*0.28)
	g.curve(&s, stroke.Pt(w-0.05, h*0.6), stroke.Pt(w-0.05, h*0.3),
		stroke.Pt(w*0.4, 0), stroke.Pt(0.08, h*0.15))
	return s
}
