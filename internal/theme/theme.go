// Package theme maps normalized intensities to colors.
//
// A Theme is one of a closed set of presets. Each preset owns an immutable
// Gradient that is safe to share and always returns the same color for the
// same input. Gradients do not clamp; callers are expected to pass values
// in [0, 1] (see Clamp).
package theme

import "math"

// Theme identifies a built-in color preset.
type Theme int

const (
	Fire Theme = iota
	Ocean
	Matrix
	Rainbow
)

// Default is used whenever a theme name isn't recognized.
const Default = Fire

var themeNames = map[Theme]string{
	Fire:    "fire",
	Ocean:   "ocean",
	Matrix:  "matrix",
	Rainbow: "rainbow",
}

// String returns the name used on the command line and in config files.
func (t Theme) String() string {
	if name, ok := themeNames[t]; ok {
		return name
	}
	return themeNames[Default]
}

// Description returns a short human-readable summary of the preset.
func (t Theme) Description() string {
	switch t {
	case Ocean:
		return "cool, perceptually ordered (viridis)"
	case Matrix:
		return "black to green"
	case Rainbow:
		return "full-spectrum, cyclic"
	default:
		return "warm, perceptually ordered (turbo)"
	}
}

// All returns every theme in display order.
func All() []Theme {
	return []Theme{Fire, Ocean, Matrix, Rainbow}
}

// Names returns the names of all themes in display order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.String()
	}
	return names
}

// Lookup resolves a theme name. Matching is exact and case-sensitive.
func Lookup(name string) (Theme, bool) {
	for t, n := range themeNames {
		if n == name {
			return t, true
		}
	}
	return Default, false
}

// Parse resolves a theme name, falling back to Fire for anything unrecognized.
// It never fails.
func Parse(name string) Theme {
	t, _ := Lookup(name)
	return t
}

// Gradient returns the preset's color mapping.
func (t Theme) Gradient() Gradient {
	switch t {
	case Ocean:
		return viridis
	case Matrix:
		return matrix
	case Rainbow:
		return rainbow
	default:
		return turbo
	}
}

// Clamp limits t to [0, 1]. NaN maps to 0.
func Clamp(t float64) float64 {
	switch {
	case math.IsNaN(t) || t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
