package shaper

import "golang.org/x/text/unicode/bidi"

// Direction is a text direction.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// Run is a contiguous span of text with a single direction.
type Run struct {
	Text string
	// Start, End are byte offsets into the source string.
	Start, End int
	Direction  Direction
	// Level is the resolved bidi embedding level.
	Level int
}

// SplitRuns resolves bidi embedding levels and returns the runs of
// text in visual order, left to right. Pure left-to-right text yields
// a single run.
func SplitRuns(text string, base Direction) []Run {
	if text == "" {
		return nil
	}

	defaultDir := bidi.Neutral
	if base == RightToLeft {
		defaultDir = bidi.RightToLeft
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(defaultDir)); err != nil {
		return []Run{{Text: text, End: len(text), Direction: base}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []Run{{Text: text, End: len(text), Direction: base}}
	}

	// Run positions are rune indices; map them back to byte offsets.
	runes := []rune(text)
	byteAt := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		byteAt[i] = off
		off += len(string(r))
	}
	byteAt[len(runes)] = len(text)

	runs := make([]Run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		if startRune > endRune || endRune >= len(runes) {
			continue
		}

		dir := LeftToRight
		level := 0
		if run.Direction() == bidi.RightToLeft {
			dir = RightToLeft
			level = 1
		}

		start := byteAt[startRune]
		end := byteAt[endRune+1]
		runs = append(runs, Run{
			Text:      text[start:end],
			Start:     start,
			End:       end,
			Direction: dir,
			Level:     level,
		})
	}
	return runs
}
