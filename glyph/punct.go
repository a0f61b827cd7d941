package glyph

import "github.com/gogpu/metafont/stroke"

func (g *Generator) buildPunct(r rune) Skeleton {
	switch r {
	case '!':
		return g.exclamation()
	case '"':
		return g.doubleQuote()
	case '#':
		return g.hash()
	case '$':
		return g.dollar()
	case '%':
		return g.percent()
	case '&':
		return g.ampersand()
	case '\'':
		return g.singleQuote()
	case '(':
		return g.leftParen()
	case ')':
		return g.rightParen()
	case '*':
		return g.asterisk()
	case '+':
		return g.plus()
	case ',':
		return g.comma()
	case '-':
		return g.hyphen()
	case '.':
		return g.period()
	case '/':
		return g.slash()
	case ':':
		return g.colon()
	case ';':
		return g.semicolon()
	case '<':
		return g.lessThan()
	case '=':
		return g.equals()
	case '>':
		return g.greaterThan()
	case '?':
		return g.question()
	case '@':
		return g.at()
	case '[':
		return g.leftBracket()
	case '\\':
		return g.backslash()
	case ']':
		return g.rightBracket()
	case '^':
		return g.caret()
	case '_':
		return g.underscore()
	case '`':
		return g.backtick()
	case '{':
		return g.leftBrace()
	case '|':
		return g.pipe()
	case '}':
		return g.rightBrace()
	case '~':
		return g.tilde()
	}
	return g.buildPlaceholder()
}

func (g *Generator) exclamation() Skeleton {
	h := g.capHeight
	s := EmptySkeleton()
	s.Advance = 0.25
	g.line(&s, stroke.Pt(0.12, h*0.25), stroke.Pt(0.12, h))
	g.line(&s, stroke.Pt(0.12, 0), stroke.Pt(0.12, 0.02))
	return s
}

func (g *Generator) doubleQuote() Skeleton {
	h := g.capHeight
	s := EmptySkeleton()
	s.Advance = 0.3
	g.line(&s, stroke.Pt(0.08, h*0.7), stroke.Pt(0.08, h))
	g.line(&s, stroke.Pt(0.22, h*0.7), stroke.Pt(0.22, h))
	return s
}

func (g *Generator) hash() Skeleton {
	h := g.capHeight
	w := h * 0.5
	s := EmptySkeleton()
	s.Advance = w + 0.1
	x1, x2 := w*0.3, w*0.7
	y1, y2 := h*0.3, h*0.65
	g.line(&s, stroke.Pt(x1, 0), stroke.Pt(x1, h))
	g.line(&s, stroke.Pt(x2, 0), stroke.Pt(x2, h))
	g.line(&s, stroke.Pt(0.02, y1), stroke.Pt(w, y1))
	g.line(&s, stroke.Pt(0.02, y2), stroke.Pt(w, y2))
	return s
}

func (g *Generator) dollar() Skeleton {
	h := g.capHeight
	w := h * 0.5
	cx := w / 2
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.curve(&s, stroke.Pt(w-0.05, h*0.82), stroke.Pt(w-0.05, h*0.95),
		stroke.Pt(0.05, h*0.95), stroke.Pt(0.05, h*0.65))
	g.curve(&s, stroke.Pt(0.05, h*0.65), stroke.Pt(0.05, h*0.5),
		stroke.Pt(w-0.05, h*0.5), stroke.Pt(w-0.05, h*0.35))
	g.curve(&s, stroke.Pt(w-0.05, h*0.35), stroke.Pt(w-0.05, h*0.05),
		stroke.Pt(0.05, h*0.05), stroke.Pt(0.05, h*0.18))
	g.line(&s, stroke.Pt(cx, 0), stroke.Pt(cx, h))
	return s
}

func (g *Generator) percent() Skeleton {
	h := g.capHeight
	w := h * 0.6
	r := h * 0.12
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.line(&s, stroke.Pt(w-0.05, h), stroke.Pt(0.05, 0))
	g.ellipse(&s, 0.12, h*0.82, r, r)
	g.ellipse(&s, w-0.12, h*0.18, r, r)
	return s
}

func (g *Generator) ampersand() Skeleton {
	h := g.capHeight
	w := h * 0.6
	s := EmptySkeleton()
	s.Advance = w + 0.1
	r := h * 0.18
	g.ellipse(&s, w*0.35, h*0.78, r, r)
	g.curve(&s, stroke.Pt(w*0.2, h*0.6), stroke.Pt(0.02, h*0.3),
		stroke.Pt(0.02, 0), stroke.Pt(w*0.5, 0))
	g.line(&s, stroke.Pt(w*0.5, 0), stroke.Pt(w, h*0.4))
	return s
}

func (g *Generator) singleQuote() Skeleton {
	h := g.capHeight
	s := EmptySkeleton()
	s.Advance = 0.18
	g.line(&s, stroke.Pt(0.09, h*0.7), stroke.Pt(0.09, h))
	return s
}

func (g *Generator) leftParen() Skeleton {
	h := g.capHeight
	s := EmptySkeleton()
	s.Advance = 0.28
	g.curve(&s, stroke.Pt(0.22, h), stroke.Pt(0.05, h*0.75),
		stroke.Pt(0.05, h*0.25), stroke.Pt(0.22, 0))
	return s
}

func (g *Generator) rightParen() Skeleton {
	h := g.capHeight
	s := EmptySkeleton()
	s.Advance = 0.28
	g.curve(&s, stroke.Pt(0.06, h), stroke.Pt(0.23, h*0.75),
		stroke.Pt(0.23, h*0.25), stroke.Pt(0.06, 0))
	return s
}

func (g *Generator) asterisk() Skeleton {
	h := g.capHeight
	cy := h * 0.75
	r := h * 0.12
	s := EmptySkeleton()
	s.Advance = 0.35
	const cx = 0.175
	// Three spokes at 60 degree steps
	g.line(&s, stroke.Pt(cx, cy-r), stroke.Pt(cx, cy+r))
	g.line(&s, stroke.Pt(cx-r*0.866, cy-r*0.5), stroke.Pt(cx+r*0.866, cy+r*0.5))
	g.line(&s, stroke.Pt(cx-r*0.866, cy+r*0.5), stroke.Pt(cx+r*0.866, cy-r*0.5))
	return s
}

func (g *Generator) plus() Skeleton {
	h := g.capHeight
	cy := h * 0.4
	w := h * 0.45
	r := h * 0.18
	cx := w / 2
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.line(&s, stroke.Pt(cx, cy-r), stroke.Pt(cx, cy+r))
	g.line(&s, stroke.Pt(cx-r, cy), stroke.Pt(cx+r, cy))
	return s
}

func (g *Generator) comma() Skeleton {
	s := EmptySkeleton()
	s.Advance = 0.2
	g.curve(&s, stroke.Pt(0.1, 0.06), stroke.Pt(0.1, 0),
		stroke.Pt(0.06, -0.06), stroke.Pt(0.04, -0.08))
	return s
}

func (g *Generator) hyphen() Skeleton {
	h := g.xHeight
	s := EmptySkeleton()
	s.Advance = 0.35
	g.line(&s, stroke.Pt(0.05, h*0.5), stroke.Pt(0.3, h*0.5))
	return s
}

func (g *Generator) period() Skeleton {
	s := EmptySkeleton()
	s.Advance = 0.2
	g.line(&s, stroke.Pt(0.1, 0), stroke.Pt(0.1, 0.02))
	return s
}

func (g *Generator) slash() Skeleton {
	h := g.capHeight
	s := EmptySkeleton()
	s.Advance = 0.35
	g.line(&s, stroke.Pt(0.28, h), stroke.Pt(0.05, 0))
	return s
}

func (g *Generator) colon() Skeleton {
	h := g.xHeight
	s := EmptySkeleton()
	s.Advance = 0.2
	g.line(&s, stroke.Pt(0.1, 0), stroke.Pt(0.1, 0.02))
	g.line(&s, stroke.Pt(0.1, h-0.02), stroke.Pt(0.1, h))
	return s
}

func (g *Generator) semicolon() Skeleton {
	h := g.xHeight
	s := EmptySkeleton()
	s.Advance = 0.2
	g.curve(&s, stroke.Pt(0.1, 0.06), stroke.Pt(0.1, 0),
		stroke.Pt(0.06, -0.06), stroke.Pt(0.04, -0.08))
	g.line(&s, stroke.Pt(0.1, h-0.02), stroke.Pt(0.1, h))
	return s
}

func (g *Generator) lessThan() Skeleton {
	h := g.capHeight
	w := h * 0.4
	mid := h * 0.4
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.corner(&s, stroke.Pt(w, h*0.7), stroke.Pt(0.05, mid), stroke.Pt(w, h*0.1))
	return s
}

func (g *Generator) equals() Skeleton {
	h := g.xHeight
	w := h * 0.55
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.line(&s, stroke.Pt(0.05, h*0.65), stroke.Pt(w, h*0.65))
	g.line(&s, stroke.Pt(0.05, h*0.35), stroke.Pt(w, h*0.35))
	return s
}

func (g *Generator) greaterThan() Skeleton {
	h := g.capHeight
	w := h * 0.4
	mid := h * 0.4
	s := EmptySkeleton()
	s.Advance = w + 0.1
	g.corner(&s, stroke.Pt(0.05, h*0.7), stroke.Pt(w, mid), stroke.Pt(0.05, h*0.1))
	return s
}

func (g *Generator) question() Skeleton {
	h := g.capHeight
	w := h * 0.45
	cx := w / 2
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.curve(&s, stroke.Pt(0.05, h*0.78), stroke.Pt(0.05, h),
		stroke.Pt(w, h), stroke.Pt(w, h*0.6))
	g.line(&s, stroke.Pt(w, h*0.6), stroke.Pt(cx, h*0.25))
	g.line(&s, stroke.Pt(cx, 0), stroke.Pt(cx, 0.02))
	return s
}

func (g *Generator) at() Skeleton {
	h := g.capHeight
	w := h * 0.75
	cx := w / 2
	cy := h / 2
	rx := w/2 - 0.05
	ry := h/2 - 0.02
	s := EmptySkeleton()
	s.Advance = w + 0.1
	// Outer ring, open at bottom-right
	g.quarterArc(&s, cx, cy, rx, ry, 0)
	g.quarterArc(&s, cx, cy, rx, ry, 3)
	g.quarterArc(&s, cx, cy, rx, ry, 2)
	// Inner counter
	ir := ry * 0.5
	g.ellipse(&s, cx+0.02, cy, ir, ir)
	return s
}

func (g *Generator) leftBracket() Skeleton {
	h := g.capHeight
	s := EmptySkeleton()
	s.Advance = 0.25
	g.line(&s, stroke.Pt(0.06, 0), stroke.Pt(0.06, h))
	g.line(&s, stroke.Pt(0.06, h), stroke.Pt(0.2, h))
	g.line(&s, stroke.Pt(0.06, 0), stroke.Pt(0.2, 0))
	return s
}

func (g *Generator) backslash() Skeleton {
	h := g.capHeight
	s := EmptySkeleton()
	s.Advance = 0.35
	g.line(&s, stroke.Pt(0.05, h), stroke.Pt(0.28, 0))
	return s
}

func (g *Generator) rightBracket() Skeleton {
	h := g.capHeight
	s := EmptySkeleton()
	s.Advance = 0.25
	g.line(&s, stroke.Pt(0.18, 0), stroke.Pt(0.18, h))
	g.line(&s, stroke.Pt(0.04, h), stroke.Pt(0.18, h))
	g.line(&s, stroke.Pt(0.04, 0), stroke.Pt(0.18, 0))
	return s
}

func (g *Generator) caret() Skeleton {
	h := g.capHeight
	w := h * 0.4
	s := EmptySkeleton()
	s.Advance = w + 0.08
	g.corner(&s, stroke.Pt(0.05, h*0.6), stroke.Pt(w/2, h), stroke.Pt(w, h*0.6))
	return s
}

func (g *Generator) underscore() Skeleton {
	const w = 0.45
	s := EmptySkeleton()
	s.Advance = w + 0.06
	g.line(&s, stroke.Pt(0.02, -0.02), stroke.Pt(w, -0.02))
	return s
}

func (g *Generator) backtick() Skeleton {
	h := g.capHeight
	s := EmptySkeleton()
	s.Advance = 0.2
	g.line(&s, stroke.Pt(0.06, h), stroke.Pt(0.12, h*0.75))
	return s
}

func (g *Generator) leftBrace() Skeleton {
	h := g.capHeight
	mid := h * 0.5
	s := EmptySkeleton()
	s.Advance = 0.3
	g.curve(&s, stroke.Pt(0.22, h), stroke.Pt(0.12, h),
		stroke.Pt(0.12, mid+0.05), stroke.Pt(0.05, mid))
	g.curve(&s, stroke.Pt(0.05, mid), stroke.Pt(0.12, mid-0.05),
		stroke.Pt(0.12, 0), stroke.Pt(0.22, 0))
	return s
}

func (g *Generator) pipe() Skeleton {
	h := g.capHeight
	s := EmptySkeleton()
	s.Advance = 0.2
	g.line(&s, stroke.Pt(0.1, 0), stroke.Pt(0.1, h))
	return s
}

func (g *Generator) rightBrace() Skeleton {
	h := g.capHeight
	mid := h * 0.5
	s := EmptySkeleton()
	s.Advance = 0.3
	g.curve(&s, stroke.Pt(0.08, h), stroke.Pt(0.18, h),
		stroke.Pt(0.18, mid+0.05), stroke.Pt(0.25, mid))
	g.curve(&s, stroke.Pt(0.25, mid), stroke.Pt(0.18, mid-0.05),
		stroke.Pt(0.18, 0), stroke.Pt(0.08, 0))
	return s
}

func (g *Generator) tilde() Skeleton {
	h := g.xHeight
	cy := h * 0.8
	const w = 0.4
	s := EmptySkeleton()
	s.Advance = w + 0.06
	g.curve(&s, stroke.Pt(0.05, cy-0.03), stroke.Pt(0.15, cy+0.05),
		stroke.Pt(0.25, cy-0.05), stroke.Pt(w, cy+0.03))
	return s
}
