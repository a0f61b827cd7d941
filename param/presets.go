package param

// Named presets spanning the design space. Values are hand-tuned
// starting points; callers typically Lerp between them.

// SansRegular is a neutral low-contrast sans.
func SansRegular() ParamSet {
	return ParamSet{
		Weight:    0.45,
		Width:     1.0,
		Serif:     0.0,
		Contrast:  0.15,
		Slant:     0.0,
		XHeight:   0.52,
		CapHeight: 0.72,
		Ascender:  0.80,
		Descender: 0.22,
		Roundness: 0.3,
	}
}

// SansBold is SansRegular pushed to a heavy weight.
func SansBold() ParamSet {
	return ParamSet{
		Weight:    0.75,
		Width:     1.02,
		Serif:     0.0,
		Contrast:  0.10,
		Slant:     0.0,
		XHeight:   0.54,
		CapHeight: 0.72,
		Ascender:  0.80,
		Descender: 0.22,
		Roundness: 0.3,
	}
}

// SerifRegular is a high-contrast bracketed serif text face.
func SerifRegular() ParamSet {
	return ParamSet{
		Weight:    0.42,
		Width:     1.0,
		Serif:     0.8,
		Contrast:  0.55,
		Slant:     0.0,
		XHeight:   0.45,
		CapHeight: 0.68,
		Ascender:  0.78,
		Descender: 0.22,
		Roundness: 0.1,
	}
}

// SerifItalic slants SerifRegular and narrows it slightly.
func SerifItalic() ParamSet {
	return ParamSet{
		Weight:    0.42,
		Width:     0.98,
		Serif:     0.7,
		Contrast:  0.55,
		Slant:     0.21,
		XHeight:   0.45,
		CapHeight: 0.68,
		Ascender:  0.78,
		Descender: 0.22,
		Roundness: 0.1,
	}
}

// MonoRegular is a narrow slab-tending monospace with zero contrast.
func MonoRegular() ParamSet {
	return ParamSet{
		Weight:    0.40,
		Width:     0.6,
		Serif:     0.5,
		Contrast:  0.0,
		Slant:     0.0,
		XHeight:   0.53,
		CapHeight: 0.70,
		Ascender:  0.80,
		Descender: 0.25,
		Roundness: 0.0,
	}
}

// DisplayHeavy is an ultra-black condensed display face.
func DisplayHeavy() ParamSet {
	return ParamSet{
		Weight:    0.95,
		Width:     0.7,
		Serif:     0.0,
		Contrast:  0.05,
		Slant:     0.0,
		XHeight:   0.60,
		CapHeight: 0.75,
		Ascender:  0.80,
		Descender: 0.18,
		Roundness: 0.1,
	}
}
