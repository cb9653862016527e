package scope

import "github.com/rileyhilliard/livescope/internal/theme"

// DensityGlyphs are ordered from empty to solid.
var DensityGlyphs = [8]rune{' ', '·', '░', '▒', '▓', '▆', '▇', '█'}

const (
	// MemoryGlyph marks the memory wave.
	MemoryGlyph = '▓'
	// MemoryIntensity is the gradient position used for the memory wave.
	MemoryIntensity = 0.7
	// rippleFrequency and rippleAmplitude shape the static memory ripple.
	rippleFrequency = 0.1
	rippleAmplitude = 3
)

// DensityIndex buckets an intensity into one of the eight density bands.
// Intensity is clamped first, so 1.0 and anything above it is solid.
func DensityIndex(intensity float64) int {
	idx := int(theme.Clamp(intensity) * float64(len(DensityGlyphs)))
	if idx >= len(DensityGlyphs) {
		idx = len(DensityGlyphs) - 1
	}
	return idx
}

// Glyph returns the density glyph for an intensity.
func Glyph(intensity float64) rune {
	return DensityGlyphs[DensityIndex(intensity)]
}
