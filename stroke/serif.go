package stroke

// SerifBracket describes a serif wedge attached at an open stroke
// endpoint.
type SerifBracket struct {
	Base      Point   // attachment point on the stem
	Direction Point   // unit direction the serif extends along
	Length    float32 // extent along Direction
	Width     float32 // pen half-width for the wedge
}

// NewSerif builds a bracket at base extending along dir. dir need not
// be normalized.
func NewSerif(base, dir Point, length, width float32) SerifBracket {
	return SerifBracket{
		Base:      base,
		Direction: dir.Normalize(),
		Length:    length,
		Width:     width,
	}
}

// ToStroke renders the bracket as a bracketed cubic: the curve bows
// away from the stem by a quarter of the serif length, giving the
// classic concave transition.
func (b SerifBracket) ToStroke() Stroke {
	end := b.Base.Add(b.Direction.Scale(b.Length))
	bracket := b.Length * 0.25
	perp := Point{-b.Direction.Y, b.Direction.X}
	return Stroke{
		P0: b.Base,
		P1: b.Base.Lerp(end, 0.33).Add(perp.Scale(bracket)),
		P2: b.Base.Lerp(end, 0.66).Add(perp.Scale(bracket)),
		P3: end,
	}
}
