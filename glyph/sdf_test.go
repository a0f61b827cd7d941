package glyph

import (
	"math"
	"testing"

	"github.com/gogpu/metafont/param"
	"github.com/gogpu/metafont/stroke"
)

func TestEmptySDF(t *testing.T) {
	s := Empty()
	if s.Sample(0.5, 0.5) <= 0 {
		t.Error("empty field samples inside")
	}
	if s.Advance != 0.5 {
		t.Errorf("empty advance = %v", s.Advance)
	}
}

func TestQuantizeEdge(t *testing.T) {
	if got := Quantize(0); got != 128 {
		t.Errorf("Quantize(0) = %d, want 128", got)
	}
	if got := Quantize(-ClampRange * 2); got != 0 {
		t.Errorf("deep inside quantized to %d", got)
	}
	if got := Quantize(ClampRange * 2); got != 255 {
		t.Errorf("far outside quantized to %d", got)
	}
	// Round trip stays within one quantization step.
	for _, d := range []float32{-0.3, -0.01, 0, 0.02, 0.4} {
		back := Dequantize(Quantize(d))
		if math.Abs(float64(back-d)) > float64(ClampRange)/127 {
			t.Errorf("round trip %v -> %v", d, back)
		}
	}
}

func TestRasterizeDeterminism(t *testing.T) {
	p := param.SerifRegular()
	a := NewGenerator(p).Generate('R')
	b := NewGenerator(p).Generate('R')
	if a.Data != b.Data {
		t.Error("same inputs produced different fields")
	}
	if a.Advance != b.Advance || a.BBoxMin != b.BBoxMin {
		t.Error("metrics differ between identical generations")
	}
}

func TestFallbackStability(t *testing.T) {
	g := NewGenerator(param.SansRegular())
	a := g.Generate('☃')
	b := g.Generate('☄')
	if a.Data != b.Data {
		t.Error("placeholder field differs between unknown runes")
	}
}

func TestGenerateCenterCoverage(t *testing.T) {
	g := NewGenerator(param.SansRegular())
	sdf := g.Generate('A')
	if sdf.Advance <= 0 {
		t.Fatalf("advance = %v", sdf.Advance)
	}
	inside := 0
	for _, b := range sdf.Data {
		if b < 128 {
			inside++
		}
	}
	if inside == 0 {
		t.Error("glyph A rasterized with no interior pixels")
	}
}

// Two parallel vertical hairlines with zero contrast have an exact
// analytic distance, so the rasterized union must match the pointwise
// minimum within grid tolerance.
func TestUnionMatchesAnalyticDistance(t *testing.T) {
	p := param.MonoRegular()
	p.Width = 1
	g := NewGenerator(p)
	hw := g.Pen().BaseWidth

	s := EmptySkeleton()
	s.Add(stroke.Line(stroke.Pt(0.2, 0), stroke.Pt(0.2, 0.5)))
	s.Add(stroke.Line(stroke.Pt(0.6, 0), stroke.Pt(0.6, 0.5)))
	sdf := g.Rasterize(&s)

	w := sdf.BBoxMax.X - sdf.BBoxMin.X
	h := sdf.BBoxMax.Y - sdf.BBoxMin.Y
	probe := func(wx, wy float32) float32 {
		return sdf.Sample((wx-sdf.BBoxMin.X)/w, (wy-sdf.BBoxMin.Y)/h)
	}

	for _, wx := range []float32{0.3, 0.4, 0.5} {
		d1 := float32(math.Abs(float64(wx-0.2))) - hw
		d2 := float32(math.Abs(float64(wx-0.6))) - hw
		want := d1
		if d2 < want {
			want = d2
		}
		got := probe(wx, 0.25)
		if math.Abs(float64(got-want)) > 0.03 {
			t.Errorf("distance at x=%v: got %v, want %v", wx, got, want)
		}
	}
}

// The stored depth must be the full minimum over every centerline
// sample, not just the first sample that dips inside; styling reads
// interior magnitudes, so a shallow minimum is a rendering defect.
func TestInteriorDepthMatchesSampledMinimum(t *testing.T) {
	p := param.MonoRegular()
	p.Contrast = 0
	g := NewGenerator(p)

	s := EmptySkeleton()
	s.Add(stroke.Line(stroke.Pt(0.3, 0), stroke.Pt(0.3, 0.7)))
	sdf := g.Rasterize(&s)

	st := &s.Strokes[0]
	var cx, cy, chw [steps + 1]float32
	for i := 0; i <= steps; i++ {
		tt := float32(i) / steps
		pt := st.Position(tt)
		cx[i], cy[i] = pt.X, pt.Y
		chw[i] = g.Pen().HalfWidth(st.Tangent(tt))
	}

	w := sdf.BBoxMax.X - sdf.BBoxMin.X
	h := sdf.BBoxMax.Y - sdf.BBoxMin.Y
	const quantStep = 2 * ClampRange / 255
	const invSize1 = 1.0 / float32(Size-1)

	for py := 0; py < Size; py++ {
		for px := 0; px < Size; px++ {
			wx := sdf.BBoxMin.X + float32(px)*invSize1*w
			wy := sdf.BBoxMin.Y + float32(py)*invSize1*h

			want := float32(math.MaxFloat32)
			for i := 0; i <= steps; i++ {
				dx := wx - cx[i]
				dy := wy - cy[i]
				if d := float32(math.Sqrt(float64(dx*dx+dy*dy))) - chw[i]; d < want {
					want = d
				}
			}
			if want < -ClampRange {
				want = -ClampRange
			}
			if want > ClampRange {
				want = ClampRange
			}

			got := sdf.At(px, py)
			if math.Abs(float64(got-want)) > quantStep {
				t.Fatalf("depth at (%d,%d): got %v, want %v", px, py, got, want)
			}
		}
	}
}

func TestZeroWeightHairline(t *testing.T) {
	p := param.SansRegular()
	p.Weight = 0
	g := NewGenerator(p)
	sdf := g.Generate('I')
	inside := 0
	var deepest float32
	for i, b := range sdf.Data {
		if b < 128 {
			inside++
		}
		if d := sdf.At(i%Size, i/Size); d < deepest {
			deepest = d
		}
	}
	if inside == 0 {
		t.Error("hairline stem vanished entirely")
	}
	// The deepest interior point of a hairline is only a hairline's
	// half-width below the surface.
	if deepest < -0.02 {
		t.Errorf("hairline depth %v, want near zero", deepest)
	}
}

func TestBoldFillsAtLeastRegular(t *testing.T) {
	reg := NewGenerator(param.SansRegular())
	bold := NewGenerator(param.SansBold())
	for _, r := range []rune{'H', 'o', '8'} {
		ri := 0
		for _, b := range reg.Generate(r).Data {
			if b < 128 {
				ri++
			}
		}
		bi := 0
		for _, b := range bold.Generate(r).Data {
			if b < 128 {
				bi++
			}
		}
		if bi < ri {
			t.Errorf("glyph %q: bold fill %d below regular fill %d", r, bi, ri)
		}
	}
}

func TestDegeneratePointStroke(t *testing.T) {
	g := NewGenerator(param.SansRegular())
	s := EmptySkeleton()
	s.Add(stroke.Line(stroke.Pt(0.3, 0.3), stroke.Pt(0.3, 0.3)))
	sdf := g.Rasterize(&s)
	// A point still has pen coverage at its own location.
	if !sdf.IsInside(0.5, 0.5) {
		t.Error("degenerate stroke produced no coverage at its center")
	}
}

func TestSampleClampsCoordinates(t *testing.T) {
	g := NewGenerator(param.SansRegular())
	sdf := g.Generate('x')
	for _, uv := range [][2]float32{{-1, 0.5}, {2, 0.5}, {0.5, -1}, {0.5, 2}} {
		// Must not panic and must return a stored value.
		v := sdf.Sample(uv[0], uv[1])
		if v < -ClampRange || v > ClampRange {
			t.Errorf("Sample(%v, %v) = %v out of window", uv[0], uv[1], v)
		}
	}
}
