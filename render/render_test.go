package render

import (
	"context"
	"image"
	"math"
	"testing"

	"github.com/gogpu/metafont/glyph"
	"github.com/gogpu/metafont/param"
	"github.com/gogpu/metafont/shaper"
)

func approxEq(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func TestColorLerp(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	if !approxEq(mid.R, 0.5, 0.01) || !approxEq(mid.G, 0.5, 0.01) || !approxEq(mid.B, 0.5, 0.01) {
		t.Errorf("midpoint = %+v, want 0.5 channels", mid)
	}
	if Black.Lerp(White, 0) != Black {
		t.Error("lerp at 0 moved off the start color")
	}
}

func TestColorPremultiply(t *testing.T) {
	pm := Color{1, 0.5, 0, 0.5}.Premultiply()
	if !approxEq(pm.R, 0.5, 0.01) || !approxEq(pm.G, 0.25, 0.01) || pm.A != 0.5 {
		t.Errorf("premultiply = %+v", pm)
	}
}

func TestColorOver(t *testing.T) {
	// Opaque over anything is the source.
	if got := White.Over(Black); !approxEq(got.R, 1, 0.01) {
		t.Errorf("white over black R = %v, want 1", got.R)
	}
	// Transparent over opaque keeps the destination.
	got := Transparent.Over(Black)
	if !approxEq(got.R, 0, 0.01) || !approxEq(got.A, 1, 0.01) {
		t.Errorf("transparent over black = %+v, want opaque black", got)
	}
	// Transparent over transparent stays transparent.
	if got := Transparent.Over(Transparent); got.A != 0 {
		t.Errorf("transparent over transparent A = %v", got.A)
	}
}

func TestSmoothstep(t *testing.T) {
	if got := smoothstep(0, 1, -0.1); got != 0 {
		t.Errorf("below edge0 = %v, want 0", got)
	}
	if got := smoothstep(0, 1, 0.5); !approxEq(got, 0.5, 0.01) {
		t.Errorf("midpoint = %v, want 0.5", got)
	}
	if got := smoothstep(0, 1, 1.1); got != 1 {
		t.Errorf("above edge1 = %v, want 1", got)
	}
}

func TestEffectStackCapacity(t *testing.T) {
	s := DefaultStyle()
	for i := 0; i < MaxEffects; i++ {
		if !s.Push(Outline{Color: Black, Width: 0.05}) {
			t.Fatalf("push %d rejected below capacity", i)
		}
	}
	if s.Push(Outline{Color: Black, Width: 0.05}) {
		t.Error("push beyond capacity accepted")
	}
	if len(s.Effects()) != MaxEffects {
		t.Errorf("len = %d, want %d", len(s.Effects()), MaxEffects)
	}
}

func TestStyleTileDefault(t *testing.T) {
	sdf := glyph.NewGenerator(param.SansBold()).Generate('A')
	tile := StyleTile(sdf, DefaultStyle())

	if tile.Advance <= 0 {
		t.Errorf("advance = %v, want positive", tile.Advance)
	}
	visible := false
	for _, p := range tile.Pixels {
		if p.A > 0.1 {
			visible = true
			break
		}
	}
	if !visible {
		t.Error("styled glyph has no visible pixels")
	}
}

func TestNeonGlowsOutsideGlyph(t *testing.T) {
	sdf := glyph.NewGenerator(param.SansRegular()).Generate('A')
	tile := StyleTile(sdf, Neon())

	hasGlow := false
	inv := float32(1) / (TileSize - 1)
	for py := 0; py < TileSize && !hasGlow; py++ {
		for px := 0; px < TileSize; px++ {
			u := float32(px) * inv
			v := float32(py) * inv
			if sdf.Sample(u, v) > 0 && tile.Pixels[py*TileSize+px].A > 0.01 {
				hasGlow = true
				break
			}
		}
	}
	if !hasGlow {
		t.Error("neon style produced no glow outside the glyph")
	}
}

func TestOutlineRing(t *testing.T) {
	e := Outline{Color: Black, Width: 0.05}

	// Deep inside and far outside contribute nothing; the ring does.
	if c := e.evaluate(-0.2, 0, 0, nil, 0.01); c.A > 0.01 {
		t.Errorf("inside alpha = %v, want 0", c.A)
	}
	if c := e.evaluate(0.2, 0, 0, nil, 0.01); c.A > 0.01 {
		t.Errorf("outside alpha = %v, want 0", c.A)
	}
	if c := e.evaluate(-0.025, 0, 0, nil, 0.01); c.A < 0.9 {
		t.Errorf("ring alpha = %v, want near 1", c.A)
	}
}

func TestGradientMixesVertically(t *testing.T) {
	e := Gradient{Top: White, Bottom: Black}

	bottom := e.evaluate(-0.1, 0.5, 0, nil, 0.03)
	top := e.evaluate(-0.1, 0.5, 1, nil, 0.03)
	if bottom.R >= top.R {
		t.Errorf("bottom R %v not below top R %v", bottom.R, top.R)
	}
	if c := e.evaluate(0.1, 0.5, 0.5, nil, 0.03); c != Transparent {
		t.Error("gradient leaked outside the glyph")
	}
}

func TestContentHashDeterminism(t *testing.T) {
	sdf := glyph.NewGenerator(param.SansBold()).Generate('A')
	a := StyleTile(sdf, DefaultStyle())
	b := StyleTile(sdf, DefaultStyle())

	if a.ContentHash != b.ContentHash {
		t.Error("hash differs across identical renders")
	}
	if a.ContentHash == 0 {
		t.Error("hash is zero")
	}
}

func TestStylePresets(t *testing.T) {
	for name, style := range map[string]*Style{
		"default":  DefaultStyle(),
		"outlined": Outlined(),
		"shadowed": Shadowed(),
		"neon":     Neon(),
	} {
		if style.AAWidth <= 0 {
			t.Errorf("%s AAWidth = %v, want positive", name, style.AAWidth)
		}
	}
}

// styleSource adapts a generator and style for drawing tests.
type styleSource struct {
	gen   *glyph.Generator
	style *Style
}

func (s *styleSource) StyledTile(_ context.Context, r rune) (*StyledTile, error) {
	return StyleTile(s.gen.Generate(r), s.style), nil
}

type fixedMetrics struct {
	gen *glyph.Generator
}

func (f *fixedMetrics) GlyphMetrics(_ context.Context, r rune) (float32, float32, error) {
	skel := f.gen.BuildSkeleton(r)
	return skel.Advance, skel.LSB, nil
}

func TestDrawLine(t *testing.T) {
	p := param.SansBold()
	gen := glyph.NewGenerator(p)
	sh := shaper.New(p, &fixedMetrics{gen: gen})
	line, err := sh.ShapeLine(context.Background(), "HI")
	if err != nil {
		t.Fatalf("ShapeLine: %v", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, 256, 96))
	src := &styleSource{gen: gen, style: DefaultStyle()}
	if err := DrawLine(context.Background(), dst, line, image.Pt(16, 72), 64, src); err != nil {
		t.Fatalf("DrawLine: %v", err)
	}

	painted := 0
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] > 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Error("DrawLine painted nothing")
	}
}
