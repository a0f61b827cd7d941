// Package stroke provides the pen and skeleton primitives of the
// glyph synthesizer: 2D points, cubic Bezier strokes, the
// contrast-aware pen model and serif brackets.
//
// All geometry lives in a normalized em coordinate system with the
// baseline at y=0 and y growing upward.
package stroke

import "math"

// Point is a 2D position or direction in em units.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float32) Point {
	return Point{p.X * s, p.Y * s}
}

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		p.X + (q.X-p.X)*t,
		p.Y + (q.Y-p.Y)*t,
	}
}

// Distance returns the Euclidean distance to q.
func (p Point) Distance(q Point) float32 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// Length returns the vector magnitude.
func (p Point) Length() float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

// Normalize returns a unit vector in the direction of p, or the zero
// point when p has no length.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Normal returns the counterclockwise perpendicular (-y, x).
func (p Point) Normal() Point {
	return Point{-p.Y, p.X}
}

// Slant shears the point horizontally by the given angle in radians:
// x' = x + y*tan(slant).
func (p Point) Slant(angle float32) Point {
	return Point{p.X + p.Y*float32(math.Tan(float64(angle))), p.Y}
}
