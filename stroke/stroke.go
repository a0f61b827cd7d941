package stroke

// Stroke is one centerline primitive of a glyph skeleton: a cubic
// Bezier from P0 to P3. Straight segments are stored as degenerate
// cubics so the rasterizer handles a single curve kind.
type Stroke struct {
	P0, P1, P2, P3 Point
}

// Curve builds a cubic stroke from its four control points.
func Curve(p0, p1, p2, p3 Point) Stroke {
	return Stroke{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Line builds a straight stroke from a to b, with control points at
// the 1/3 and 2/3 marks so Position stays affine in t.
func Line(a, b Point) Stroke {
	return Stroke{
		P0: a,
		P1: a.Lerp(b, 1.0/3.0),
		P2: a.Lerp(b, 2.0/3.0),
		P3: b,
	}
}

// Position evaluates the curve at t in [0, 1].
func (s Stroke) Position(t float32) Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Point{
		s.P0.X*b0 + s.P1.X*b1 + s.P2.X*b2 + s.P3.X*b3,
		s.P0.Y*b0 + s.P1.Y*b1 + s.P2.Y*b2 + s.P3.Y*b3,
	}
}

// Tangent evaluates the curve derivative at t. The result is not
// normalized; degenerate curves can return the zero vector.
func (s Stroke) Tangent(t float32) Point {
	u := 1 - t
	d0 := 3 * u * u
	d1 := 6 * u * t
	d2 := 3 * t * t
	return Point{
		(s.P1.X-s.P0.X)*d0 + (s.P2.X-s.P1.X)*d1 + (s.P3.X-s.P2.X)*d2,
		(s.P1.Y-s.P0.Y)*d0 + (s.P2.Y-s.P1.Y)*d1 + (s.P3.Y-s.P2.Y)*d2,
	}
}

// ArcLength approximates the curve length with an 8-segment polyline.
func (s Stroke) ArcLength() float32 {
	const segs = 8
	var total float32
	prev := s.P0
	for i := 1; i <= segs; i++ {
		p := s.Position(float32(i) / segs)
		total += prev.Distance(p)
		prev = p
	}
	return total
}

// ApplySlant shears every control point by the given angle.
func (s Stroke) ApplySlant(angle float32) Stroke {
	return Stroke{
		P0: s.P0.Slant(angle),
		P1: s.P1.Slant(angle),
		P2: s.P2.Slant(angle),
		P3: s.P3.Slant(angle),
	}
}

// ScaleBy scales every control point about the origin.
func (s Stroke) ScaleBy(f float32) Stroke {
	return Stroke{
		P0: s.P0.Scale(f),
		P1: s.P1.Scale(f),
		P2: s.P2.Scale(f),
		P3: s.P3.Scale(f),
	}
}

// Translate shifts every control point by d.
func (s Stroke) Translate(d Point) Stroke {
	return Stroke{
		P0: s.P0.Add(d),
		P1: s.P1.Add(d),
		P2: s.P2.Add(d),
		P3: s.P3.Add(d),
	}
}
