package stroke

import (
	"math"

	"github.com/gogpu/metafont/param"
)

// penAngle is the nib rotation in radians. Strokes drawn along this
// angle get the full pen width; strokes perpendicular to it get the
// thinnest width.
const penAngle = 0.5

// PenModel describes a broad-nib pen whose width varies with stroke
// direction. Contrast 0 degenerates to a round pen of constant width.
type PenModel struct {
	BaseWidth float32 // half-width along the pen angle
	Contrast  float32
	Angle     float32
}

// NewPen derives the pen for a parameter set.
func NewPen(p param.ParamSet) PenModel {
	return PenModel{
		BaseWidth: p.StrokeHalfWidth(),
		Contrast:  p.Contrast,
		Angle:     penAngle,
	}
}

// HalfWidthAtAngle returns the pen half-width for a stroke travelling
// at the given angle in radians.
func (m PenModel) HalfWidthAtAngle(angle float32) float32 {
	rel := float64(angle - m.Angle)
	s := math.Abs(math.Sin(rel))
	return m.BaseWidth * (1 - m.Contrast*float32(s))
}

// HalfWidth returns the pen half-width for a stroke with the given
// tangent direction. A zero tangent gets the base width.
func (m PenModel) HalfWidth(tangent Point) float32 {
	if tangent.X == 0 && tangent.Y == 0 {
		return m.BaseWidth
	}
	a := float32(math.Atan2(float64(tangent.Y), float64(tangent.X)))
	return m.HalfWidthAtAngle(a)
}
