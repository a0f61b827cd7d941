// Package shaper converts strings into positioned glyphs.
//
// Shaping handles horizontal advance accumulation, kerning pair
// adjustments, word wrapping, and text metrics. Positions are in em
// units; the caller scales them to pixels. Glyph metrics come from a
// MetricSource, typically an atlas-backed font that rasterizes on
// first use.
package shaper

import (
	"context"
	"strings"

	"github.com/gogpu/metafont/param"
)

// MetricSource supplies advance metrics for shaping.
type MetricSource interface {
	// GlyphMetrics returns the advance width and left side bearing of a
	// rune in em units. Unknown runes report placeholder metrics, not
	// an error.
	GlyphMetrics(ctx context.Context, r rune) (advance, lsb float32, err error)
}

// ShapedGlyph is a positioned glyph ready for rendering.
type ShapedGlyph struct {
	// Rune is the shaped code point.
	Rune rune
	// X, Y position the glyph origin in em units from the text origin.
	X, Y float32
	// Advance is the glyph advance width.
	Advance float32
	// LSB is the left side bearing.
	LSB float32
}

// Line is a shaped line of text.
type Line struct {
	Glyphs []ShapedGlyph
	// Width is the total line width in em units.
	Width float32
	// YOffset is the line's vertical offset from the first baseline.
	YOffset float32
}

type kernKey struct {
	left  rune
	right rune
}

// defaultKernPairs holds adjustments for common Latin pairs, in em units.
var defaultKernPairs = map[kernKey]float32{
	// Diagonal pairs
	{'A', 'V'}: -0.04,
	{'A', 'W'}: -0.03,
	{'A', 'Y'}: -0.04,
	{'A', 'T'}: -0.04,
	{'V', 'A'}: -0.04,
	{'W', 'A'}: -0.03,
	{'Y', 'A'}: -0.04,
	{'T', 'A'}: -0.04,
	// Round after straight
	{'T', 'o'}: -0.03,
	{'T', 'a'}: -0.03,
	{'T', 'e'}: -0.03,
	{'L', 'T'}: -0.03,
	{'L', 'V'}: -0.03,
	{'L', 'Y'}: -0.03,
	// Lowercase
	{'r', 'a'}: -0.01,
	{'r', 'o'}: -0.01,
	{'f', 'a'}: -0.01,
	{'f', 'o'}: -0.01,
}

// Shaper lays out text for a single parameter set.
//
// The exported fields may be adjusted between calls; a Shaper must not
// be shared across goroutines while being reconfigured.
type Shaper struct {
	// LineHeight is the baseline-to-baseline multiplier. Default: 1.2
	LineHeight float32

	// LetterSpacing is additional spacing after every glyph, in em units.
	LetterSpacing float32

	// WordSpacing multiplies the space advance. Default: 1.0
	WordSpacing float32

	// BaseDirection is the paragraph direction for bidi resolution.
	BaseDirection Direction

	params param.ParamSet
	source MetricSource
	kern   map[kernKey]float32
}

// New creates a shaper with the default kerning table.
func New(params param.ParamSet, source MetricSource) *Shaper {
	params.Clamp()
	kern := make(map[kernKey]float32, len(defaultKernPairs))
	for k, v := range defaultKernPairs {
		kern[k] = v
	}
	return &Shaper{
		LineHeight:  1.2,
		WordSpacing: 1.0,
		params:      params,
		source:      source,
		kern:        kern,
	}
}

// Kern returns the kerning adjustment for a character pair, in em units.
// Unlisted pairs return 0.
func (s *Shaper) Kern(left, right rune) float32 {
	return s.kern[kernKey{left, right}]
}

// AddKernPair adds or replaces a kerning pair.
func (s *Shaper) AddKernPair(left, right rune, adjustment float32) {
	s.kern[kernKey{left, right}] = adjustment
}

// LineStep returns the baseline-to-baseline distance in em units.
func (s *Shaper) LineStep() float32 {
	return s.LineHeight * (s.params.Ascender + s.params.Descender)
}

// spaceAdvance is the advance of the space character, derived from the
// width axis rather than a glyph recipe.
func (s *Shaper) spaceAdvance() float32 {
	return s.params.Width * 0.3
}

// ShapeLine shapes a single line of text. Bidi runs are laid out in
// visual order; within right-to-left runs glyphs are emitted from the
// logically last rune first.
func (s *Shaper) ShapeLine(ctx context.Context, text string) (Line, error) {
	var line Line
	cursor := float32(0)
	prev := rune(0)
	hasPrev := false

	for _, run := range SplitRuns(text, s.BaseDirection) {
		runes := []rune(run.Text)
		if run.Direction == RightToLeft {
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
		}
		for _, ch := range runes {
			if ch == ' ' {
				cursor += s.spaceAdvance()*s.WordSpacing + s.LetterSpacing
				prev, hasPrev = ch, true
				continue
			}

			if hasPrev {
				cursor += s.Kern(prev, ch)
			}

			advance, lsb, err := s.source.GlyphMetrics(ctx, ch)
			if err != nil {
				return Line{}, err
			}

			line.Glyphs = append(line.Glyphs, ShapedGlyph{
				Rune:    ch,
				X:       cursor + lsb,
				Advance: advance,
				LSB:     lsb,
			})

			cursor += advance + s.LetterSpacing
			prev, hasPrev = ch, true
		}
	}

	line.Width = cursor
	return line, nil
}

// ShapeText shapes text with automatic word wrapping at maxWidth em
// units. A maxWidth of zero or less disables wrapping; explicit
// newlines always break.
func (s *Shaper) ShapeText(ctx context.Context, text string, maxWidth float32) ([]Line, error) {
	var lines []Line
	step := s.LineStep()

	for _, raw := range strings.Split(text, "\n") {
		if maxWidth <= 0 {
			shaped, err := s.ShapeLine(ctx, raw)
			if err != nil {
				return nil, err
			}
			shaped.YOffset = float32(len(lines)) * step
			lines = append(lines, shaped)
			continue
		}

		words := strings.Split(raw, " ")
		current := ""
		for i, word := range words {
			test := word
			if current != "" {
				test = current + " " + word
			}

			shaped, err := s.ShapeLine(ctx, test)
			if err != nil {
				return nil, err
			}

			if shaped.Width > maxWidth && current != "" {
				emitted, err := s.ShapeLine(ctx, current)
				if err != nil {
					return nil, err
				}
				emitted.YOffset = float32(len(lines)) * step
				lines = append(lines, emitted)
				current = word
			} else {
				current = test
			}

			if i == len(words)-1 && current != "" {
				emitted, err := s.ShapeLine(ctx, current)
				if err != nil {
					return nil, err
				}
				emitted.YOffset = float32(len(lines)) * step
				lines = append(lines, emitted)
			}
		}
	}

	return lines, nil
}

// MeasureWidth returns the width of a single line in em units.
func (s *Shaper) MeasureWidth(ctx context.Context, text string) (float32, error) {
	line, err := s.ShapeLine(ctx, text)
	if err != nil {
		return 0, err
	}
	return line.Width, nil
}

// MeasureText returns the bounding box of multi-line text in em units.
func (s *Shaper) MeasureText(ctx context.Context, text string, maxWidth float32) (w, h float32, err error) {
	lines, err := s.ShapeText(ctx, text, maxWidth)
	if err != nil {
		return 0, 0, err
	}
	for _, line := range lines {
		if line.Width > w {
			w = line.Width
		}
	}
	h = float32(len(lines)) * s.LineStep()
	return w, h, nil
}
