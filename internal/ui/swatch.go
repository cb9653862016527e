package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/livescope/internal/theme"
)

// swatchBlock is drawn once per sampled gradient position.
const swatchBlock = '█'

// RenderSwatch samples g at width evenly spaced points from 0 to 1 and
// renders one colored block per point. A width of 1 samples only t=0.
func RenderSwatch(g theme.Gradient, width int) string {
	if g == nil || width <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(width * 24)

	for i := 0; i < width; i++ {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		c := g.At(t)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Clamped().Hex()))
		sb.WriteString(style.Render(string(swatchBlock)))
	}
	return sb.String()
}

// RenderDensityRamp renders glyphs left to right, each colored by g at
// its position in the ramp. Used to preview how a theme shades intensity.
func RenderDensityRamp(g theme.Gradient, glyphs []rune) string {
	if g == nil || len(glyphs) == 0 {
		return ""
	}

	var sb strings.Builder
	last := len(glyphs) - 1
	for i, r := range glyphs {
		t := 0.0
		if last > 0 {
			t = float64(i) / float64(last)
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(g.At(t).Clamped().Hex()))
		sb.WriteString(style.Render(string(r)))
	}
	return sb.String()
}
